package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/BrandonKowalski/simplestack/pkg/simplestack"
	"github.com/BrandonKowalski/simplestack/pkg/simplestack/constants"
	"github.com/BrandonKowalski/simplestack/pkg/simplestack/focus"
	"github.com/BrandonKowalski/simplestack/pkg/simplestack/header"
	"github.com/BrandonKowalski/simplestack/pkg/simplestack/i18n"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: simplestack [flags]\n\nFlags:\n")
		flag.PrintDefaults()
	}

	configPath := flag.String("config", "simplestack.toml", "path to configuration file (ignored if missing)")
	envFile := flag.String("env", ".env", "path to .env file (ignored if missing)")
	flag.Parse()

	if err := loadDotEnv(*envFile); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// loadDotEnv loads environment variables from path. Missing files are ignored.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func run(configPath string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := simplestack.LoadConfig(configPath)
	if err != nil {
		return err
	}

	simplestack.Init(simplestack.Options{
		LogPath:  cfg.LogPath,
		LogLevel: cfg.LogLevel,
	})
	defer simplestack.Close()
	logger := simplestack.GetLogger()

	catalog, err := i18n.NewCatalog()
	if err != nil {
		return simplestack.NewInfrastructureError("load_messages", err)
	}

	platform := cfg.PlatformValue()
	announcer := &focusAnnouncer{}

	nav := simplestack.NewNavigator(simplestack.NavigatorOptions{
		Platform:      platform,
		InitialAuthor: cfg.InitialAuthor,
		Translator:    catalog.Localizer(cfg.Locale),
		Icons:         header.NewIconCache(),
		Focus:         focus.ForPlatform(platform, announcer.request),
		Bodies:        demoBodies(),
		AutoSettle:    cfg.Transition == 0,
		Logger:        simplestack.GetInternalLogger(),
	})
	if err := nav.Mount(); err != nil {
		return err
	}
	defer nav.Unmount()

	logger.Info("starting", "platform", platform.String(), "locale", cfg.Locale, "transition", cfg.Transition.String())

	p := tea.NewProgram(newModel(nav, announcer, cfg.Transition), tea.WithContext(ctx))

	if cfg.Input.Device != "" {
		go func() {
			err := simplestack.ListenInput(ctx, cfg.Input.Device, func(b constants.VirtualButton) {
				p.Send(buttonMsg{button: b})
			})
			if err != nil {
				logger.Error("hardware input stopped", "error", simplestack.NewInfrastructureError("open_input", err))
			}
		}()
	}

	_, err = p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
