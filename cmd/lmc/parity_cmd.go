package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/xynxynxyn/lmc/internal/cliconfig"
	"github.com/xynxynxyn/lmc/internal/cliutil"
	"github.com/xynxynxyn/lmc/parity"
	"github.com/xynxynxyn/lmc/parity/gameparse"
	"github.com/xynxynxyn/lmc/solve"
	"github.com/xynxynxyn/lmc/solve/fpi"
	"github.com/xynxynxyn/lmc/solve/spm"
	"github.com/xynxynxyn/lmc/solve/tangle"
	"github.com/xynxynxyn/lmc/solve/zielonka"
)

func runParity(args []string, cfg cliconfig.Config, log zerolog.Logger) error {
	defaultAlgo := cfg.Algorithm
	if defaultAlgo == "" {
		defaultAlgo = "fpi"
	}

	fs := pflag.NewFlagSet("parity", pflag.ContinueOnError)
	algorithm := fs.String("algorithm", defaultAlgo, "solver to use: fpi, zielonka, tangle, or spm")
	wantRegions := fs.Bool("regions", false, "print each region's vertices")
	wantStrategy := fs.Bool("strategy", false, "print the full solution (winner + strategy per vertex)")
	target := fs.String("target", cfg.Target, "write the solution to this file instead of stdout")
	noColor := fs.Bool("no-color", false, "disable colored region/verdict output")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return fmt.Errorf("lmc parity: no game file given")
	}

	data, err := os.ReadFile(rest[0])
	if err != nil {
		return fmt.Errorf("lmc parity: %w", err)
	}
	g, err := gameparse.ParseGame(string(data))
	if err != nil {
		return fmt.Errorf("lmc parity: %w", err)
	}

	solver, err := resolveSolver(*algorithm)
	if err != nil {
		return fmt.Errorf("lmc parity: %w", err)
	}
	log.Info().Str("algorithm", *algorithm).Int("vertices", g.NumVertices()).Msg("solving parity game")
	sol := solver.Solve(g)

	if *target != "" {
		if err := os.WriteFile(*target, []byte(gameparse.WriteSolution(sol)), 0o644); err != nil {
			return fmt.Errorf("lmc parity: %w", err)
		}
		return nil
	}

	printer := cliutil.NewPrinter(*noColor || !cfg.ColorEnabled(true))
	if *wantStrategy {
		fmt.Print(gameparse.WriteSolution(sol))
		return nil
	}
	// Default to --regions' view when neither flag was given, so the
	// command is never silent on success.
	if *wantRegions || !*wantStrategy {
		printRegions(sol, printer)
	}
	return nil
}

func resolveSolver(name string) (solve.Solver, error) {
	switch name {
	case "fpi":
		return fpi.Algorithm{}, nil
	case "zielonka":
		return zielonka.Algorithm{}, nil
	case "spm":
		return spm.Algorithm{}, nil
	case "tangle":
		return tangle.Algorithm{}, nil
	default:
		return nil, fmt.Errorf("unknown algorithm %q", name)
	}
}

func printRegions(sol *parity.Solution, printer *cliutil.Printer) {
	var evens, odds []parity.VertexID
	for v, entry := range sol.Strategy {
		if entry.Winner == parity.Even {
			evens = append(evens, v)
		} else {
			odds = append(odds, v)
		}
	}
	sort.Slice(evens, func(i, j int) bool { return evens[i] < evens[j] })
	sort.Slice(odds, func(i, j int) bool { return odds[i] < odds[j] })

	fmt.Printf("%s: %s\n", printer.Winner("Even", true), joinVertices(evens))
	fmt.Printf("%s: %s\n", printer.Winner("Odd", false), joinVertices(odds))
}

func joinVertices(vs []parity.VertexID) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(int(v))
	}
	return strings.Join(parts, ", ")
}
