// Command stones is a non-interactive driver for the rules engine: paste a
// grid string, give it a sequence of actions, and see the resulting hash,
// termination flags, and reward signal after each one. It is the direct
// analogue of the reference engine's own paste-a-map-string, print-hash
// main().
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"stonesgems/cell"
	"stonesgems/config"
	"stonesgems/engine"
)

var (
	gridPath *string
	cfgPath  *string
	seed     *int64
)

func init() {
	gridPath = flag.String("grid", "", "path to a file holding the grid init string; if empty, read from stdin")
	cfgPath = flag.String("config", "", "path to a YAML engine config; overrides -grid and default params")
	seed = flag.Int64("seed", 1, "RNG seed, if not set by -config")
	flag.Parse()
}

func readGrid() (string, error) {
	if *gridPath != "" {
		b, err := os.ReadFile(*gridPath)
		return string(b), err
	}

	fmt.Println("Paste grid string, blank line to finish:")
	var lines []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			break
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n") + "\n", scanner.Err()
}

func parseActions(args []string) ([]cell.Action, error) {
	actions := make([]cell.Action, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid action %q: %w", a, err)
		}
		actions = append(actions, cell.Action(n))
	}
	return actions, nil
}

func run() error {
	var (
		initStr string
		params  engine.Params
		err     error
	)

	if *cfgPath != "" {
		initStr, params, err = config.Load(*cfgPath)
		if err != nil {
			return err
		}
	} else {
		initStr, err = readGrid()
		if err != nil {
			return err
		}
		params = engine.DefaultParams()
		params.Seed = *seed
	}

	s, err := engine.New(initStr, params)
	if err != nil {
		return err
	}

	actions, err := parseActions(flag.Args())
	if err != nil {
		return err
	}

	fmt.Printf("initial hash: %s\n", s.Hash().String())
	for i, a := range actions {
		if err := s.ApplyAction(a); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		fmt.Printf("step %d: hash=%s terminal=%v solved=%v reward=%d signal=%#b\n",
			i, s.Hash().String(), s.IsTerminal(), s.IsSolution(), s.CurrentReward(), s.GetRewardSignal())
		if s.IsTerminal() {
			break
		}
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
