package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_SERVER_ADDR points the scenario at an already-running server.
	// Empty means the scenario boots its own engine on a loopback port.
	ServerAddr string `envconfig:"E2E_SERVER_ADDR"`
	// E2E_COLOURS enables colorized client output for log readability.
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
	// E2E_QUIT_WORD is the phrase that ends a scripted participant.
	QuitWord string `envconfig:"E2E_QUIT_WORD" default:"sair"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
