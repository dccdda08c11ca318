package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/lgbarn/san-english-go/internal/english"
	"github.com/lgbarn/san-english-go/internal/repl"
)

func newReplCmd(a *app) *cobra.Command {
	var (
		flagMode english.Mode
		direct   bool
	)

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Translate moves interactively",
		Long: `Start an interactive session. Type a SAN move to translate it, or
:help for the list of commands.

Line editing and history are used when stdin is a terminal. Use --direct to
read plain lines instead, e.g. when piping input.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var in repl.LineReader
			if direct || !readline.IsTerminal(int(os.Stdin.Fd())) {
				in = repl.NewDirectReader(cmd.InOrStdin())
			} else {
				ir, err := repl.NewInteractiveReader()
				if err != nil {
					return err
				}
				in = ir
				fmt.Fprintln(cmd.OutOrStdout(), "Type :help for commands, :quit to leave.")
			}
			defer in.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			session := repl.NewSession(in, cmd.OutOrStdout(), a.resolveMode(cmd.Flags(), flagMode), a.log())
			return session.Run(ctx)
		},
	}

	addModeFlag(cmd.Flags(), &flagMode)
	cmd.Flags().BoolVarP(&direct, "direct", "d", false, "read plain lines without readline")

	return cmd
}
