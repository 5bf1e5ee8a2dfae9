package main

import (
	"context"
	"math/rand/v2"

	"github.com/urfave/cli/v3"

	"github.com/allisson/cuid2/cmd/app/commands"
	"github.com/allisson/cuid2/internal/app"
	"github.com/allisson/cuid2/internal/config"
)

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "text",
		Usage:   "Output format: 'text' or 'json'",
	}
}

func getIdentifierCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "generate",
			Usage: "Print one or more identifiers",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "length",
					Aliases: []string{"l"},
					Usage:   "Identifier length between 2 and 32 (default: CUID2_LENGTH)",
				},
				&cli.IntFlag{
					Name:    "count",
					Aliases: []string{"n"},
					Value:   1,
					Usage:   "Number of identifiers to print",
				},
				&cli.StringFlag{
					Name:  "fingerprint",
					Usage: "Fingerprint mixed into every identifier (default: CUID2_FINGERPRINT or random)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				if fingerprint := cmd.String("fingerprint"); fingerprint != "" {
					cfg.IDFingerprint = fingerprint
				}
				if err := cfg.Validate(); err != nil {
					return err
				}

				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				useCase, err := container.IdentifierUseCase()
				if err != nil {
					return err
				}

				return commands.RunGenerate(
					ctx,
					useCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					int(cmd.Int("length")),
					int(cmd.Int("count")),
					cmd.String("format"),
				)
			},
		},
		{
			Name:      "validate",
			Usage:     "Check whether candidates are well-formed identifiers",
			ArgsUsage: "<candidate>...",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "min-length",
					Usage: "Shortest accepted candidate (default: 2)",
				},
				&cli.IntFlag{
					Name:  "max-length",
					Usage: "Longest accepted candidate (default: 32)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				useCase, err := container.IdentifierUseCase()
				if err != nil {
					return err
				}

				return commands.RunValidate(
					ctx,
					useCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.Args().Slice(),
					int(cmd.Int("min-length")),
					int(cmd.Int("max-length")),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "fingerprint",
			Usage: "Print a freshly computed fingerprint suitable for CUID2_FINGERPRINT",
			Flags: []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunFingerprint(commands.DefaultIO().Writer, rand.Float64, cmd.String("format"))
			},
		},
	}
}
