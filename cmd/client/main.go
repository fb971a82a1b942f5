package main

import (
	"fmt"
	"os"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"turn-chat/client"
)

// Exit codes for the client application.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// Config defines the client-side environment variables.
type Config struct {
	ServerAddress string `env:"CHAT_SERVER_ADDR,default=127.0.0.1:8080"`
	QuitWord      string `env:"CHAT_QUIT_WORD,default=sair"`
	LogLevel      string `env:"LOG_LEVEL,default=INFO"`
}

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v\n", err)
	}
	os.Exit(code)
}

func run() (int, error) {
	_ = godotenv.Load()

	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	logger := logs.GetLoggerFromString(cfg.LogLevel)

	c := client.New(logger, cfg.ServerAddress, cfg.QuitWord)
	if err := c.Connect(); err != nil {
		return exitRuntime, err
	}
	defer c.Close()

	if err := c.Run(os.Stdin); err != nil {
		return exitRuntime, err
	}

	// Wait for the server's shutdown frame so the final notices are shown.
	<-c.Done()
	return exitOK, nil
}
