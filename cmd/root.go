package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mattsolo1/grove-stickies/cmd/config"
	"github.com/mattsolo1/grove-stickies/internal/logging"
)

// NewRootCmd creates the `stickies` command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	var cfg *config.Config

	rootCmd := &cobra.Command{
		Use:           "stickies",
		Short:         "A sticky-note board for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// This runs once before any subcommand
			loaded, err := config.Load(viper.GetViper())
			if err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
	}

	cobra.OnInitialize(config.InitConfig)
	config.AddGlobalFlags(rootCmd)

	rootCmd.AddCommand(NewTuiCmd(&cfg))
	rootCmd.AddCommand(NewReplayCmd(&cfg))
	rootCmd.AddCommand(NewPaletteCmd(&cfg))
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// newLogger builds the logger for a command. logFile is used when log.file
// is unset, so interactive sessions never write to the terminal they draw
// on.
func newLogger(cfg *config.Config, logFile string) (*logrus.Logger, func(), error) {
	lc := cfg.Log
	if logFile != "" && lc.File == "" {
		lc.File = logFile
	}
	logger, closer, err := logging.New(lc)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logging: %w", err)
	}
	return logger, func() { _ = closer.Close() }, nil
}
