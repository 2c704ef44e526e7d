// Command boardsrv starts the live board viewer: it loads a grid and engine
// params from a YAML config, then serves a single page that renders the
// board over a websocket as a test driver steps through it.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"stonesgems/config"
	"stonesgems/engine"
	"stonesgems/server"
)

var (
	cfgPath *string
	host    *string
	port    *string
	addr    string
)

func init() {
	cfgPath = flag.String("config", "./game.yaml", "path to the YAML engine config")
	host = flag.String("host", "", "the host ip")
	port = flag.String("port", "8080", "the host port")
	flag.Parse()
	addr = *host + ":" + *port
}

func runApp() error {
	initStr, params, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}

	s, err := engine.New(initStr, params)
	if err != nil {
		return err
	}

	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	updates := make(chan *engine.State)
	srv := server.NewServer(appCtx, addr, s.Clone(), updates)

	// Drive a no-op episode so the viewer has something to watch: ticks the
	// world forward on ActionNone, letting gravity/enemies/blob run, and
	// publishes a snapshot (a Clone) of the state after each tick. A real driver (cmd/stones, a
	// search agent) would publish to the same channel from its own loop
	// instead.
	go func() {
		for !s.IsTerminal() {
			if err := s.ApplyAction(0); err != nil {
				return
			}
			select {
			case updates <- s.Clone():
			case <-appCtx.Done():
				return
			}
		}
	}()

	return srv.Serve()
}

func main() {
	if err := runApp(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
