package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/mail"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cli/browser"
	"github.com/julez-dev/pinotui/httputil"
	"github.com/julez-dev/pinotui/pinot"
	"github.com/julez-dev/pinotui/save"
	"github.com/julez-dev/pinotui/ui/mainui"
	"github.com/julez-dev/pinotui/ui/tableview"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

func init() {
	browser.Stderr = io.Discard
	browser.Stdout = io.Discard
}

const (
	logFileName = "log.txt"
)

//go:generate go run github.com/vektra/mockery/v2@latest
func main() {
	f, err := setupLogFile()
	if err != nil {
		fmt.Printf("error while opening log file: %v\n", err)
		os.Exit(1)
	}

	defer func() {
		_ = f.Close()
	}()

	logger := zerolog.New(f).With().Timestamp().Logger()
	log.Logger = logger

	app := &cli.Command{
		Name:        "pinotui",
		Description: "pinotui Apache Pinot terminal client",
		Usage:       "Browse the tables, schemas, databases and instances of a Pinot cluster",
		Authors: []any{
			&mail.Address{
				Name:    "julez-dev",
				Address: "julez-dev@pm.me",
			},
		},
		Commands: []*cli.Command{
			versionCMD,
			listCMD,
			tokenCMD,
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "controller",
				Aliases: []string{"c"},
				Usage:   "Base URL of the Pinot controller, overrides the settings file",
				Sources: cli.EnvVars("PINOTUI_CONTROLLER"),
			},
			&cli.StringFlag{
				Name:    "database",
				Aliases: []string{"d"},
				Usage:   "Database to scope tables and schemas to",
				Sources: cli.EnvVars("PINOTUI_DATABASE"),
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "Timeout of a single controller request",
				Value: time.Second * 10,
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			env, err := loadEnvironment(command, logger)
			if err != nil {
				return err
			}

			keys, err := save.CreateReadKeyMap(env.fs)
			if err != nil {
				return fmt.Errorf("error while reading keymap: %w", err)
			}

			states := save.NewAppStateManager(env.fs)

			deps := &mainui.DependencyContainer{
				UserConfig: mainui.UserConfiguration{
					Settings: env.settings,
					Theme:    env.theme,
				},
				Keymap:   keys,
				Database: env.settings.Controller.Database,
				SourceFor: func(database string) tableview.Source {
					return pinot.NewCache(logger, env.client.ForDatabase(database), env.settings.Cache.TTL)
				},
				OpenURL:         browser.OpenURL,
				AppStateManager: states,
			}

			p := tea.NewProgram(
				mainui.NewUI(logger, deps),
				tea.WithContext(ctx),
				tea.WithAltScreen(),
				tea.WithMouseAllMotion(),
			)

			final, err := p.Run()
			if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
				return fmt.Errorf("error while running TUI: %w", err)
			}

			if final, ok := final.(*mainui.Root); ok {
				state := final.TakeStateSnapshot()

				if err := states.SaveAppState(state); err != nil {
					return fmt.Errorf("error while saving state: %w", err)
				}
			}

			return nil
		},
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Printf("error while running pinotui: %v\n", err)
		os.Exit(1)
	}
}

type environment struct {
	fs       afero.Fs
	settings save.Settings
	theme    save.Theme
	client   *pinot.Client
}

// loadEnvironment reads the settings and theme files, applies the command line
// overrides and builds the controller client.
func loadEnvironment(command *cli.Command, logger zerolog.Logger) (environment, error) {
	fs := afero.NewOsFs()

	settings, err := save.SettingsFromDisk(fs)
	if err != nil {
		return environment{}, fmt.Errorf("error while reading settings: %w", err)
	}

	if controller := command.String("controller"); controller != "" {
		settings.Controller.URL = controller
	}

	if database := command.String("database"); database != "" {
		settings.Controller.Database = database
	}

	if command.IsSet("timeout") {
		settings.Controller.RequestTimeout = command.Duration("timeout")
	}

	theme, err := save.ThemeFromDisk(fs)
	if err != nil {
		return environment{}, fmt.Errorf("error while reading theme: %w", err)
	}

	token, err := save.NewTokenStore(save.NewKeyringWrapper()).Token()
	if err != nil && !errors.Is(err, save.ErrTokenNotFound) {
		// keyring may be unavailable in headless sessions
		logger.Warn().Err(err).Msg("failed to read controller token, continuing without authentication")
	}

	httpClient := &http.Client{
		Timeout:   settings.Controller.RequestTimeout,
		Transport: httputil.NewLoggingRoundTrip(http.DefaultTransport, logger, Version),
	}

	client := pinot.NewClient(
		settings.Controller.URL,
		httpClient,
		pinot.WithToken(token),
		pinot.WithDatabase(settings.Controller.Database),
	)

	return environment{
		fs:       fs,
		settings: settings,
		theme:    theme,
		client:   client,
	}, nil
}

func setupLogFile() (*os.File, error) {
	f, err := os.OpenFile(logFileName, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0o600)
	if err != nil {
		return nil, err
	}

	return f, nil
}
