package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/julez-dev/pinotui/pinot"
	"github.com/julez-dev/pinotui/save"
	"github.com/julez-dev/pinotui/ui/component"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
)

var listableResources = []pinot.Resource{
	pinot.ResourceTables,
	pinot.ResourceSchemas,
	pinot.ResourceDatabases,
	pinot.ResourceInstances,
}

var listCMD = &cli.Command{
	Name:      "list",
	Aliases:   []string{"ls"},
	Usage:     "Print a controller listing without starting the TUI",
	ArgsUsage: "<tables|schemas|databases|instances>",
	Action: func(ctx context.Context, command *cli.Command) error {
		resource := pinot.Resource(command.Args().First())
		if !slices.Contains(listableResources, resource) {
			return fmt.Errorf("unknown resource %q, expected one of tables, schemas, databases or instances", resource)
		}

		env, err := loadEnvironment(command, log.Logger)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(ctx, env.settings.Controller.RequestTimeout)
		defer cancel()

		cache := pinot.NewCache(log.Logger, env.client, env.settings.Cache.TTL)

		names, err := cache.List(ctx, resource)
		if err != nil {
			return err
		}

		var sizes map[string]pinot.TableSize
		if resource == pinot.ResourceTables {
			sizes = cache.TableSizes(ctx, names)
		}

		width, err := terminalWidth(os.Stdout)
		if err != nil {
			width = 0
		}

		return printListing(command.Root().Writer, env.theme, width, resource, names, sizes)
	},
}

// printListing writes a count toolbar followed by one line per entry.
func printListing(w io.Writer, theme save.Theme, width int, resource pinot.Resource, names []string, sizes map[string]pinot.TableSize) error {
	names = slices.Clone(names)
	slices.Sort(names)

	count := len(names)
	toolbar, err := component.NewToolbar(theme, component.ToolbarProps{
		Name: string(resource),
		Mode: component.CountMode{Count: &count},
	})
	if err != nil {
		return err
	}
	toolbar.SetWidth(width)

	b := &strings.Builder{}
	_, _ = b.WriteString(toolbar.View())
	_, _ = b.WriteRune('\n')

	for _, name := range names {
		_, _ = b.WriteString(name)

		switch resource {
		case pinot.ResourceTables:
			size := "-"
			if s, ok := sizes[name]; ok && s.ReportedSizeInBytes >= 0 {
				size = humanize.Bytes(uint64(s.ReportedSizeInBytes))
			}
			_, _ = b.WriteString("\t" + size)
		case pinot.ResourceInstances:
			_, _ = b.WriteString("\t" + pinot.InstanceRole(name))
		}

		_, _ = b.WriteRune('\n')
	}

	_, err = io.WriteString(w, b.String())
	return err
}
