package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"truckctl/pkg/directory"
	"truckctl/pkg/foodtruck"
	"truckctl/pkg/geocode"
	"truckctl/pkg/msg"
	"truckctl/pkg/proximity"
	"truckctl/pkg/schedule"
	"truckctl/pkg/whttp"
)

func newApp() *cli.Command {
	app := &cli.Command{
		Name:  "truckctl",
		Usage: "Find food trucks in Seattle",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "host",
				Usage: "base URL of the food-truck service",
				Sources: cli.NewValueSourceChain(
					cli.EnvVar("TRUCKCTL_HOST"),
				),
				Value: foodtruck.DefaultHost,
			},
		},
	}

	app.Commands = append(app.Commands,
		locationsCommand(),
		nearestCommand(),
		trucksCommand("trucks-today", "list the trucks booked for today", schedule.Today),
		trucksCommand("trucks-tomorrow", "list the trucks booked for tomorrow", schedule.Tomorrow),
		trucksCommand("trucks-yesterday", "list yesterday's trucks so you can be sad you missed them", schedule.Yesterday),
	)

	return app
}

func locationsCommand() *cli.Command {
	return &cli.Command{
		Name:  "locations",
		Usage: "list every known food-truck location",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir, _ := newDirectory(cmd)

			locations, err := dir.All()
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.Root().Writer, msg.LocationsTable(locations))
			return nil
		},
	}
}

func nearestCommand() *cli.Command {
	return &cli.Command{
		Name:  "nearest",
		Usage: "find the food-truck location closest to an address",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "address",
				Aliases: []string{"a"},
				Usage:   "street address to measure from",
				Sources: cli.NewValueSourceChain(
					cli.EnvVar("TRUCKCTL_ADDRESS"),
				),
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "all",
				Usage: "show every location ranked by distance",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir, _ := newDirectory(cmd)
			ranker := proximity.NewRanker(dir, geocode.NewOpenstreetmapClient())

			if cmd.Bool("all") {
				ranked, err := ranker.RankByDistance(cmd.String("address"))
				if err != nil {
					return err
				}

				fmt.Fprint(cmd.Root().Writer, msg.RankedTable(ranked))
				return nil
			}

			location, err := ranker.Nearest(cmd.String("address"))
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.Root().Writer, msg.NearestMessage(location))
			return nil
		},
	}
}

func trucksCommand(name, usage string, day schedule.Day) *cli.Command {
	return &cli.Command{
		Name:  name,
		Usage: usage,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "location-uid",
				Aliases:  []string{"l"},
				Usage:    "uid of the food-truck location",
				Required: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir, client := newDirectory(cmd)
			lookup := schedule.NewLookup(dir, client)

			trucks, err := lookup.TrucksOn(int(cmd.Int("location-uid")), day)
			if err != nil {
				return err
			}

			if len(trucks) == 0 {
				fmt.Fprintln(cmd.Root().Writer, msg.MsgNoTrucks)
				return nil
			}

			fmt.Fprint(cmd.Root().Writer, msg.TrucksTable(trucks))
			return nil
		},
	}
}

func newDirectory(cmd *cli.Command) (*directory.Directory, foodtruck.Client) {
	client := foodtruck.NewSeattleClient(
		whttp.NewLoggingClient(),
		foodtruck.WithHost(cmd.String("host")),
	)

	return directory.New(client), client
}
