package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lgbarn/san-english-go/internal/english"
	"github.com/lgbarn/san-english-go/internal/output"
	"github.com/lgbarn/san-english-go/internal/translate"
)

func newTranslateCmd(a *app) *cobra.Command {
	var (
		flagMode   english.Mode
		showFields bool
		details    bool
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "translate <move>...",
		Short: "Translate one or more SAN moves",
		Long: `Translate each SAN move argument into English, one line per move.

With --details, print the stage-by-stage report for each move: tokens,
parsed move, fields, and both renderings.

The command exits with status 1 if any move fails to translate; the other
moves are still printed.`,
		Example: `  san-english translate Nf3 exd8=Q# O-O-O+
  san-english translate -m verbose Nbd7`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := a.resolveMode(cmd.Flags(), flagMode)
			out := cmd.OutOrStdout()
			errOut := cmd.ErrOrStderr()

			var jsonMoves []output.JSONMove
			failed := 0
			for _, arg := range args {
				r := translate.Move(arg, mode)
				if r.Failed() {
					failed++
					a.log().Debug("translate failed", "san", r.SAN, "error", r.Err)
				}

				switch {
				case asJSON:
					jsonMoves = append(jsonMoves, output.MoveToJSON(r))
				case r.Failed():
					fmt.Fprintf(errOut, "%s: %v\n", r.SAN, r.Err)
				case details:
					if err := output.WriteDetails(out, r); err != nil {
						return err
					}
				default:
					fmt.Fprintln(out, r.Text)
					if showFields {
						fmt.Fprintln(out, english.DescribeFields(r.Move))
					}
				}
			}

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(jsonMoves); err != nil {
					return fmt.Errorf("write json: %w", err)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d moves failed to translate", failed, len(args))
			}
			return nil
		},
	}

	addModeFlag(cmd.Flags(), &flagMode)
	cmd.Flags().BoolVar(&showFields, "fields", false, "list the parsed fields after each move")
	cmd.Flags().BoolVar(&details, "details", false, "print the full stage-by-stage report")
	cmd.Flags().BoolVar(&asJSON, "json", false, "write moves as a JSON array")

	return cmd
}
