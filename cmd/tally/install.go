package main

import (
	"github.com/joho/godotenv"
	"github.com/sandevgo/tallybot/internal/config"
	"github.com/sandevgo/tallybot/internal/service/installer"
	"github.com/sandevgo/tallybot/pkg/log"
	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:           "install",
	Short:         "Create the TallyBot configuration",
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting installation process")

		state, err := installer.RunWizard()
		if err != nil {
			return err
		}

		// Export the saved settings into this process
		cfg := config.NewAppConfig(ctx)
		if err := godotenv.Load(cfg.GetEnvPath()); err != nil {
			logger.Warn().Err(err).Str("path", cfg.GetEnvPath()).Msg("failed to load .env file")
		}

		logger.Info().
			Bool("telegram", state.Settings.EnableTelegram).
			Bool("cli", state.Settings.EnableCLI).
			Str("port", state.Settings.Port).
			Msgf("initialized runtime directory at: %s", cfg.GetRuntimePath())
		logger.Info().Msg("Installation complete! You can now run 'tally start'.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
}
