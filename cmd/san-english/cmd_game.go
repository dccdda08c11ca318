package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/lgbarn/san-english-go/internal/english"
	"github.com/lgbarn/san-english-go/internal/movetext"
	"github.com/lgbarn/san-english-go/internal/output"
	"github.com/lgbarn/san-english-go/internal/translate"
)

func newGameCmd(a *app) *cobra.Command {
	var (
		flagMode english.Mode
		asJSON   bool
		workers  int
	)

	cmd := &cobra.Command{
		Use:   "game [file]",
		Short: "Translate a whole game's movetext",
		Long: `Translate every move of a game and print a numbered White | Black table.

Movetext is read from the file argument or stdin. Move numbers, results,
tag pairs, comments and NAGs are ignored. A move that fails to translate
is shown as an error in its cell and does not stop the game.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			name := "stdin"
			if len(args) == 1 {
				name = args[0]
				f, err := os.Open(name)
				if err != nil {
					return fmt.Errorf("open movetext: %w", err)
				}
				defer f.Close()
				in = f
			}

			moves, err := movetext.Read(in)
			if err != nil {
				return fmt.Errorf("read movetext: %w", err)
			}

			if changed(cmd.Flags(), "workers") {
				a.cfg.Workers = workers
				if err := a.cfg.Validate(); err != nil {
					return err
				}
			}
			mode := a.resolveMode(cmd.Flags(), flagMode)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			results := translate.Batch(ctx, moves, translate.Options{
				Mode:       mode,
				Workers:    a.cfg.Workers,
				BufferSize: a.cfg.BufferSize,
				File:       name,
				Logger:     a.log(),
			})
			if err := ctx.Err(); err != nil {
				return err
			}

			w := output.NewGameWriter(cmd.OutOrStdout(), mode, asJSON)
			if err := w.WriteGame(results); err != nil {
				return fmt.Errorf("write game: %w", err)
			}
			return w.Close()
		},
	}

	addModeFlag(cmd.Flags(), &flagMode)
	cmd.Flags().BoolVar(&asJSON, "json", false, "write the game as JSON")
	cmd.Flags().IntVarP(&workers, "workers", "w", 1, "number of translation workers")

	return cmd
}
