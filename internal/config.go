package internal

import (
	"fmt"
	"strings"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	Host            string        `env:"HOST,default=127.0.0.1" validate:"required"`
	Port            int           `env:"PORT,default=8080" validate:"gte=1,lte=65535"`
	StartingDept    string        `env:"STARTING_DEPT,default=RH" validate:"oneof=RH TI"`
	LogLevel        string        `env:"LOG_LEVEL,default=INFO"`
	CensoredWords   string        `env:"CENSORED_WORDS"`
	CharReplacement string        `env:"CHARACTER_REPLACEMENT,default=*"`
	MetricInterval  time.Duration `env:"METRIC_INTERVAL,default=5s" validate:"gte=0"`
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Words splits the comma-separated censored word list, dropping blanks.
func (c Config) Words() []string {
	if strings.TrimSpace(c.CensoredWords) == "" {
		return nil
	}
	parts := strings.Split(c.CensoredWords, ",")
	words := make([]string, 0, len(parts))
	for _, p := range parts {
		if w := strings.TrimSpace(p); w != "" {
			words = append(words, w)
		}
	}
	return words
}

// CharacterRune enforces a single-rune replacement character.
func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
