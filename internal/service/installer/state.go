package installer

import "time"

// Settings mirrors the environment variables read by internal/config.
type Settings struct {
	EnableTelegram bool          `env:"ENABLE_TELEGRAM" envDefault:"true"`
	EnableCLI      bool          `env:"ENABLE_CLI" envDefault:"false"`
	EnableHealth   bool          `env:"ENABLE_HEALTH" envDefault:"true"`
	TelegramToken  string        `env:"TELEGRAM_TOKEN"`
	PollTimeout    time.Duration `env:"TELEGRAM_POLL_TIMEOUT"`
	Port           string        `env:"PORT"`
}

type InstallState struct {
	Settings Settings
}

func NewInstallState() *InstallState {
	return &InstallState{
		Settings: Settings{
			EnableTelegram: true,
			EnableHealth:   true,
			PollTimeout:    10 * time.Second,
		},
	}
}
