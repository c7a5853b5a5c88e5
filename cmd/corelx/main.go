package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/retrocoderamen/corelx-boy/internal/debug"
	"github.com/retrocoderamen/corelx-boy/internal/machine"
)

func main() {
	app := &cli.App{
		Name:  "corelx",
		Usage: "run Game Boy cartridge images against the corelx-boy core",
		Commands: []*cli.Command{
			runCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "corelx: %v\n", err)
		os.Exit(1)
	}
}

func runCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "load a cartridge and run it for a fixed number of frames",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "rom", Required: true, Usage: "path to the cartridge image"},
			&cli.StringFlag{Name: "boot", Usage: "path to an optional boot ROM image"},
			&cli.IntFlag{Name: "frames", Value: 60, Usage: "number of frames to run before exiting"},
			&cli.BoolFlag{Name: "trace", Usage: "enable trace-level logging to stderr"},
		},
		Action: func(ctx *cli.Context) error {
			cart, err := os.ReadFile(ctx.String("rom"))
			if err != nil {
				return fmt.Errorf("reading cartridge: %w", err)
			}

			var boot []byte
			if path := ctx.String("boot"); path != "" {
				boot, err = os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("reading boot ROM: %w", err)
				}
			}

			logger := debug.NewLogger(4096)
			if ctx.Bool("trace") {
				logger.SetMinLevel(debug.LogLevelTrace)
				for _, c := range []debug.Component{
					debug.ComponentCPU, debug.ComponentPPU, debug.ComponentMemory,
					debug.ComponentTimer, debug.ComponentInput, debug.ComponentSystem,
				} {
					logger.SetComponentEnabled(c, true)
				}
			}

			mac, err := machine.New(cart, boot, logger)
			if err != nil {
				return fmt.Errorf("initializing machine: %w", err)
			}

			frames := ctx.Int("frames")
			for i := 0; i < frames; i++ {
				mac.RunFrame()
			}

			if ctx.Bool("trace") {
				for _, entry := range logger.GetEntries() {
					fmt.Fprintln(os.Stderr, entry.Format())
				}
			}

			return nil
		},
	}
}
