package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/xynxynxyn/lmc/internal/cliconfig"
	"github.com/xynxynxyn/lmc/internal/cliutil"
	"github.com/xynxynxyn/lmc/ltl"
	"github.com/xynxynxyn/lmc/ltlparse"
	"github.com/xynxynxyn/lmc/translate"
)

func runLTL(args []string, cfg cliconfig.Config, log zerolog.Logger) error {
	fs := pflag.NewFlagSet("ltl", pflag.ContinueOnError)
	wantPNF := fs.Bool("pnf", false, "emit the formula's positive normal form")
	wantGNBA := fs.Bool("gnba", false, "emit HOA for the translated GNBA")
	wantNBA := fs.Bool("nba", false, "emit HOA for the degeneralized NBA")
	wantSat := fs.Bool("satisfiable", false, "build an NBA for the negated formula and check emptiness")
	wantDot := fs.Bool("dot", false, "also emit Graphviz DOT alongside any HOA output")
	noColor := fs.Bool("no-color", false, "disable colored verdict output")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return fmt.Errorf("lmc ltl: no formula given")
	}

	phi, err := ltlparse.Parse(rest[0])
	if err != nil {
		return fmt.Errorf("lmc ltl: %w", err)
	}
	log.Debug().Str("formula", phi.String()).Msg("parsed formula")

	printer := cliutil.NewPrinter(*noColor || !cfg.ColorEnabled(true))

	if *wantPNF {
		fmt.Println(ltl.PNF(phi).String())
	}

	if *wantGNBA {
		gnba := translate.LTLToGNBA(phi)
		fmt.Print(gnba.HOA())
		if *wantDot {
			fmt.Print(gnba.DOT())
		}
	}

	if *wantNBA {
		nba := translate.LTLToGNBA(phi).Degeneralize()
		fmt.Print(nba.HOA())
		if *wantDot {
			fmt.Print(nba.DOT())
		}
	}

	if *wantSat {
		// Build the NBA for ¬φ and run the emptiness check on it; a
		// non-empty result names a trace (the witness for ¬φ), reported as
		// "True"; an empty result has no trace to show, reported as
		// "False".
		nba := translate.LTLToGNBA(ltl.Negate(phi)).Degeneralize()
		empty, trace := nba.Verify()
		fmt.Println(printer.Verdict(!empty))
		if !empty && trace != nil {
			fmt.Println(trace.String())
		}
	}

	return nil
}
