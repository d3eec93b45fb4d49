package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-stickies/cmd/config"
	"github.com/mattsolo1/grove-stickies/internal/logging"
	"github.com/mattsolo1/grove-stickies/pkg/board"
	"github.com/mattsolo1/grove-stickies/pkg/script"
)

// NewReplayCmd creates the `stickies replay` command.
func NewReplayCmd(cfg **config.Config) *cobra.Command {
	var (
		format string
		steps  bool
	)

	cmd := &cobra.Command{
		Use:   "replay <script.yaml>",
		Short: "Replay scripted board events and print the result",
		Long: `Replay a YAML script of board events without a terminal UI and print
the render model the board would draw. Use "-" to read the script from stdin.

Events that refer to notes that no longer exist are skipped, exactly as
stale clicks are in the interactive board.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := script.ParseFormat(format)
			if err != nil {
				return err
			}

			var in io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open script: %w", err)
				}
				defer f.Close()
				in = f
			}

			s, err := script.Decode(in)
			if err != nil {
				return fmt.Errorf("failed to read script %s: %w", args[0], err)
			}

			c := *cfg
			logger, closeLog, err := newLogger(c, "")
			if err != nil {
				return err
			}
			defer closeLog()

			store, err := c.NewStore()
			if err != nil {
				return fmt.Errorf("failed to create board: %w", err)
			}
			router := board.NewRouter(store, logging.Component(logger, "stickies.board.router"))

			w := cmd.OutOrStdout()
			var writeErr error
			var each func(int, script.Event, board.RenderModel)
			if steps {
				each = func(step int, ev script.Event, m board.RenderModel) {
					if writeErr != nil {
						return
					}
					if out != script.FormatJSON {
						fmt.Fprintf(w, "# step %d: %s\n", step, ev.Op)
					}
					writeErr = script.Write(w, m, out)
				}
			}

			final := s.Run(router, logging.Component(logger, "stickies.replay"), each)
			if writeErr != nil {
				return fmt.Errorf("failed to write render model: %w", writeErr)
			}
			if steps {
				return nil
			}
			if err := script.Write(w, final, out); err != nil {
				return fmt.Errorf("failed to write render model: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "Output format (yaml, json, text)")
	cmd.Flags().BoolVar(&steps, "steps", false, "Print the render model after every event")

	return cmd
}
