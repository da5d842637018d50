package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/julez-dev/pinotui/save"
	"github.com/urfave/cli/v3"
)

var tokenCMD = &cli.Command{
	Name:  "token",
	Usage: "Manage the controller token stored in the system keyring",
	Commands: []*cli.Command{
		{
			Name:      "set",
			Usage:     "Store the bearer token, read from stdin when no argument is given",
			ArgsUsage: "[token]",
			Action: func(_ context.Context, command *cli.Command) error {
				token := command.Args().First()

				if token == "" {
					scanner := bufio.NewScanner(command.Root().Reader)
					if scanner.Scan() {
						token = scanner.Text()
					}

					if err := scanner.Err(); err != nil {
						return fmt.Errorf("failed to read token: %w", err)
					}
				}

				token = strings.TrimSpace(token)
				if token == "" {
					return errors.New("token must not be empty")
				}

				if err := save.NewTokenStore(save.NewKeyringWrapper()).SetToken(token); err != nil {
					return fmt.Errorf("failed to store token: %w", err)
				}

				_, err := fmt.Fprintln(command.Root().Writer, "token stored")
				return err
			},
		},
		{
			Name:  "delete",
			Usage: "Remove the stored bearer token",
			Action: func(_ context.Context, command *cli.Command) error {
				if err := save.NewTokenStore(save.NewKeyringWrapper()).DeleteToken(); err != nil {
					return fmt.Errorf("failed to delete token: %w", err)
				}

				_, err := fmt.Fprintln(command.Root().Writer, "token deleted")
				return err
			},
		},
	},
}
