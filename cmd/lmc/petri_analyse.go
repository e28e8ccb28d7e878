package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/xynxynxyn/lmc/internal/cliconfig"
	"github.com/xynxynxyn/lmc/ltlparse"
	"github.com/xynxynxyn/lmc/petri"
	"github.com/xynxynxyn/lmc/translate"
)

// defaultPNMLPath mirrors the original tool's fallback input when no file
// argument is given.
const defaultPNMLPath = "inputs/philosophers/Philosophers-5.pnml"

func runPetriAnalyse(args []string, cfg cliconfig.Config, log zerolog.Logger) error {
	fs := pflag.NewFlagSet("petri-analyse", pflag.ContinueOnError)
	analyse := fs.Bool("analyse", false, "enumerate reachable markings and count deadlocks")
	ltlFile := fs.String("ltl", "", "parse a newline-separated LTL property set and build one GNBA per property")
	if err := fs.Parse(args); err != nil {
		return err
	}

	path := defaultPNMLPath
	if rest := fs.Args(); len(rest) > 0 {
		path = rest[0]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("lmc petri-analyse: %w", err)
	}
	net, err := petri.FromPNML(strings.NewReader(string(data)))
	if err != nil {
		return fmt.Errorf("lmc petri-analyse: %w", err)
	}
	log.Info().Str("path", path).Int("places", net.NumPlaces()).Msg("loaded petri net")

	if *analyse {
		reportReachability(net)
	}

	if *ltlFile != "" {
		if err := reportLTLProperties(*ltlFile, log); err != nil {
			return fmt.Errorf("lmc petri-analyse: %w", err)
		}
	}

	return nil
}

// reportReachability prints "N reachable marking(s)" / "N deadlock
// marking(s)" with an indexed marking list after each.
func reportReachability(net *petri.PetriNet) {
	markings := petri.Reachable(net)
	fmt.Printf("%d reachable %s\n", len(markings), plural(len(markings), "marking", "markings"))
	for i, m := range markings {
		fmt.Printf("\t[%2d] (%s)\n", i, m)
	}

	deadlocks := petri.Deadlocks(net, markings)
	fmt.Printf("%d deadlock %s\n", len(deadlocks), plural(len(deadlocks), "marking", "markings"))
	for i, m := range deadlocks {
		fmt.Printf("\t[%2d] (%s)\n", i, m)
	}
}

func plural(n int, singular, plural string) string {
	if n < 2 {
		return singular
	}
	return plural
}

// reportLTLProperties parses one LTL formula per non-blank line of path and
// prints each property's translated GNBA as HOA.
func reportLTLProperties(path string, log zerolog.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	i := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		phi, err := ltlparse.Parse(line)
		if err != nil {
			return fmt.Errorf("property %d: %w", i, err)
		}
		gnba := translate.LTLToGNBA(phi)
		log.Debug().Int("property", i).Int("states", gnba.NumStates()).Msg("translated property")
		fmt.Printf("property %d: %s\n%s", i, line, gnba.HOA())
		i++
	}
	return scanner.Err()
}
