/*
Lmc is a formal verification toolkit: it model-checks LTL formulas against
Büchi automata and solves parity games, with a Petri-net reachability front
end for feeding nets into the LTL side.

Usage:

	lmc petri-analyse [flags] FILE
	lmc ltl [flags] FORMULA
	lmc parity [flags] FILE

Run `lmc <command> -h` for the flags a given subcommand recognizes.
*/
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/xynxynxyn/lmc/internal/cliconfig"
	"github.com/xynxynxyn/lmc/internal/obs"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "lmc: expected a command: petri-analyse, ltl, or parity")
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	if cmd == "-h" || cmd == "--help" || cmd == "help" {
		fmt.Println("usage: lmc <petri-analyse|ltl|parity> [flags]")
		return
	}

	cfg, err := cliconfig.Load(os.Getenv("LMC_CONFIG"))
	if err != nil {
		fail(err)
	}

	var run func([]string, cliconfig.Config, zerolog.Logger) error
	switch cmd {
	case "petri-analyse":
		run = runPetriAnalyse
	case "ltl":
		run = runLTL
	case "parity":
		run = runParity
	default:
		fmt.Fprintf(os.Stderr, "lmc: unknown command %q\n", cmd)
		os.Exit(1)
	}

	logger := obs.New(cfg.Verbose)
	if err := run(args, cfg, logger); err != nil {
		fail(err)
	}
}

// fail prints err once to stderr and exits non-zero — the single error path
// every subcommand funnels into.
func fail(err error) {
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}
