// Package server serves a single live-updating page displaying a board
// viewer, pushed over a websocket, plus a small JSON API for polling the
// current observation. Intentionally minimal: one page and one update
// stream, which every attached websocket client reads from directly, so each
// update frame reaches only one of several attached clients — enough for a
// single viewer to watch a CLI or search driver step through an episode in
// real time.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
	"sync"

	"stonesgems/engine"
	"stonesgems/server/boardview"
	"stonesgems/server/fastview"
	"stonesgems/server/root_view"

	"github.com/gorilla/mux"
	channerics "github.com/niceyeti/channerics/channels"
)

// Server serves the board viewer page and its websocket feed, and exposes
// the live engine.State over a small JSON API.
type Server struct {
	addr string

	mu        sync.Mutex
	state     *engine.State
	lastCells [][]boardview.Cell

	rootView *root_view.RootView
}

// NewServer builds the root view and returns a Server ready to Serve.
// updates should receive a *engine.State snapshot after every
// engine.State.ApplyAction call the caller wants reflected in the viewer.
func NewServer(
	ctx context.Context,
	addr string,
	initial *engine.State,
	updates <-chan *engine.State,
) *Server {
	srv := &Server{addr: addr, state: initial, lastCells: boardview.Convert(initial)}

	toView := make(chan *engine.State)
	go func() {
		defer close(toView)
		for s := range channerics.OrDone(ctx.Done(), updates) {
			srv.mu.Lock()
			srv.state = s
			srv.lastCells = boardview.Convert(s)
			srv.mu.Unlock()

			select {
			case toView <- s:
			case <-ctx.Done():
				return
			}
		}
	}()

	srv.rootView = root_view.NewRootView(ctx, toView)
	return srv
}

// Serve blocks, serving the page, websocket, and API routes on Server's addr.
func (s *Server) Serve() error {
	r := mux.NewRouter()
	r.HandleFunc("/", s.serveIndex).Methods(http.MethodGet)
	r.HandleFunc("/ws", s.serveWebsocket).Methods(http.MethodGet)
	r.HandleFunc("/api/observation", s.serveObservation).Methods(http.MethodGet)

	if err := http.ListenAndServe(s.addr, r); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

func (s *Server) serveIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")

	s.mu.Lock()
	cells := s.lastCells
	s.mu.Unlock()

	if err := renderTemplate(w, s.rootView, cells); err != nil {
		_, _ = w.Write([]byte(err.Error()))
	}
}

func (s *Server) serveWebsocket(w http.ResponseWriter, r *http.Request) {
	log.Printf("websocket connection from %s", r.RemoteAddr)

	cli, err := fastview.NewClient(s.rootView.Updates(), w, r)
	if err != nil {
		log.Println("upgrade:", err)
		return
	}

	if err := cli.Sync(); err != nil {
		log.Println("sync:", err)
	}
	log.Printf("websocket connection from %s closed", r.RemoteAddr)
}

// observationPayload is the JSON shape returned by /api/observation.
type observationPayload struct {
	Observation    [][][]int `json:"observation"`
	Terminal       bool      `json:"terminal"`
	Solved         bool      `json:"solved"`
	GemsCollected  int       `json:"gemsCollected"`
	StepsRemaining int       `json:"stepsRemaining"`
}

func (s *Server) serveObservation(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	state := s.state
	s.mu.Unlock()

	payload := observationPayload{
		Observation:    state.GetObservation(),
		Terminal:       state.IsTerminal(),
		Solved:         state.IsSolution(),
		GemsCollected:  state.GemsCollected(),
		StepsRemaining: state.StepsRemaining(),
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payload)
}

func renderTemplate(w io.Writer, vc fastview.ViewComponent, data interface{}) (err error) {
	t := template.New("index.html")
	var tname string
	if tname, err = vc.Parse(t); err != nil {
		return
	}
	if _, err = t.Parse(`{{ template "` + tname + `" . }}`); err != nil {
		return
	}
	return t.Execute(w, data)
}
