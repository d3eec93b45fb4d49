package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-stickies/cmd/config"
	"github.com/mattsolo1/grove-stickies/pkg/models"
	"github.com/mattsolo1/grove-stickies/pkg/script"
)

// NewPaletteCmd creates the `stickies palette` command.
func NewPaletteCmd(cfg **config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "palette",
		Short: "List the configured note colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := *cfg
			palette, err := c.ParsedPalette()
			if err != nil {
				return err
			}
			def := models.Color(c.DefaultColor)

			w := cmd.OutOrStdout()
			for i, color := range palette {
				marker := ""
				if color == def {
					marker = " (default)"
				}
				fmt.Fprintf(w, "%d  %s  %s%s\n", i+1, script.ColorSample(color, "    "), script.ColorLabel(color), marker)
			}
			return nil
		},
	}
	return cmd
}
