// Command projectile solves batches of projectile launches given on the
// command line or in an HCL scenario file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"lifekit/internal/cli"
	"lifekit/pkg/projectile"
)

type shotList []string

func (l *shotList) String() string { return strings.Join(*l, " ") }

func (l *shotList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			if exitErr.Message != "" {
				fmt.Fprintln(os.Stderr, exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(out io.Writer, args []string) error {
	fs := flag.NewFlagSet("projectile", flag.ContinueOnError)
	fs.SetOutput(out)
	unitsFlag := fs.String("units", "SI", "unit system for labels: SI or US")
	file := fs.String("file", "", "HCL file with projectile blocks")
	trajectory := fs.Bool("trajectory", false, "print trajectory samples")
	logLevel := fs.String("log-level", "warn", "log level: debug, info, warn, error")
	var shots shotList
	fs.Var(&shots, "shot", "launch as speed,angle,gravity with angle in degrees (repeatable)")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return cli.Usage(err)
	}

	logger, err := cli.NewLogger(os.Stderr, *logLevel)
	if err != nil {
		return cli.Usage(err)
	}
	units, err := projectile.ParseUnitSystem(*unitsFlag)
	if err != nil {
		return cli.Usage(err)
	}
	if *file == "" && len(shots) == 0 {
		return cli.Usage(errors.New("nothing to simulate: pass -shot speed,angle,gravity or -file scenarios.hcl"))
	}

	var (
		scenarios []projectile.Scenario
		rejected  []projectile.Rejection
	)
	if *file != "" {
		batch, err := projectile.LoadFile(*file)
		if err != nil {
			return err
		}
		if !flagSet(fs, "units") {
			units = batch.Units
		}
		scenarios = append(scenarios, batch.Scenarios...)
		rejected = append(rejected, batch.Rejected...)
		logger.Debug("loaded scenario file", "path", *file, "accepted", len(batch.Scenarios), "rejected", len(batch.Rejected))
	}
	for i, shot := range shots {
		s, err := projectile.ParseTriple("", shot)
		if err != nil {
			rejected = append(rejected, projectile.Rejection{Label: fmt.Sprintf("shot %d", i+1), Err: err})
			continue
		}
		scenarios = append(scenarios, s)
	}

	fmt.Fprintf(out, "Units: %s (speed %s, gravity %s)\n", units, units.Velocity(), units.Acceleration())
	for _, r := range rejected {
		fmt.Fprintf(out, "%s - rejected: %v\n", r.Label, r.Err)
	}

	failed := len(rejected)
	for _, res := range projectile.Simulate(scenarios, units) {
		fmt.Fprintln(out, res.Summary())
		if res.Err != nil {
			failed++
			logger.Warn("scenario rejected", "name", res.Name(), "err", res.Err)
			continue
		}
		if *trajectory {
			printTrajectory(out, res)
		}
	}
	if failed > 0 {
		return &cli.ExitError{Code: 1, Message: fmt.Sprintf("%d scenario(s) rejected", failed)}
	}
	logger.Debug("all scenarios solved", "count", len(scenarios))
	return nil
}

func printTrajectory(out io.Writer, res projectile.Result) {
	l := res.Units.Length()
	for _, p := range res.Trajectory {
		fmt.Fprintf(out, "  t=%.1f %s  x=%.3f %s  y=%.3f %s\n", p.T, res.Units.Time(), p.X, l, p.Y, l)
	}
}

func flagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
