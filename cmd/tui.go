package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mattsolo1/grove-stickies/cmd/config"
	"github.com/mattsolo1/grove-stickies/internal/logging"
	"github.com/mattsolo1/grove-stickies/internal/tui/notes"
	"github.com/mattsolo1/grove-stickies/pkg/board"
)

// NewTuiCmd creates the `stickies tui` command.
func NewTuiCmd(cfg **config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive sticky-note board",
		Long: `Open the sticky-note board in the terminal.
Notes live only for the session; quitting discards them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Check for TTY
			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				return fmt.Errorf("TUI mode requires an interactive terminal")
			}

			c := *cfg
			logger, closeLog, err := newLogger(c, config.DefaultLogFile())
			if err != nil {
				return err
			}
			defer closeLog()

			store, err := c.NewStore()
			if err != nil {
				return fmt.Errorf("failed to create board: %w", err)
			}
			router := board.NewRouter(store, logging.Component(logger, "stickies.board.router"))

			model := notes.New(router, logging.Component(logger, "stickies.tui"), notes.Options{
				CardWidth: c.TUI.CardWidth,
				Mouse:     c.TUI.Mouse,
			})
			p := tea.NewProgram(model, model.ProgramOptions()...)

			config.Watch(viper.GetViper(), logging.Component(logger, "stickies.config"), func(next *config.Config) {
				palette, err := next.ParsedPalette()
				if err != nil {
					logger.WithError(err).Warn("Ignoring invalid palette")
					return
				}
				p.Send(notes.PaletteChangedMsg{Palette: palette})
			})

			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running TUI: %w", err)
			}
			return nil
		},
	}
	return cmd
}
