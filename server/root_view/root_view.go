package root_view

import (
	"context"
	"html/template"
	"log"
	"time"

	"stonesgems/engine"
	"stonesgems/server/boardview"
	"stonesgems/server/fastview"

	channerics "github.com/niceyeti/channerics/channels"
)

// RootView is the main page's index.html, the container for all view
// components and the wiring for their channels.
type RootView struct {
	views   []fastview.ViewComponent
	updates <-chan []fastview.EleUpdate
}

// NewRootView builds the main page and the views it contains, fed by a
// stream of engine.State snapshots taken after each ApplyAction.
func NewRootView(
	ctx context.Context,
	stateUpdates <-chan *engine.State,
) *RootView {
	views, err := fastview.NewViewBuilder[*engine.State, [][]boardview.Cell]().
		WithContext(ctx).
		WithModel(stateUpdates, boardview.Convert).
		WithView(func(
			done <-chan struct{},
			cellUpdates <-chan [][]boardview.Cell) fastview.ViewComponent {
			return boardview.NewBoard(done, cellUpdates)
		}).
		Build()

	if err != nil {
		log.Fatal(err)
	}

	updates := fanIn(ctx.Done(), views)

	return &RootView{
		views:   views,
		updates: updates,
	}
}

// Updates returns the main ele-update channel for all the views.
func (rt *RootView) Updates() <-chan []fastview.EleUpdate {
	return rt.updates
}

// Parse builds the main page's template, with websocket bootstrap code.
func (rv *RootView) Parse(
	parent *template.Template,
) (name string, err error) {
	rt := parent.Funcs(
		template.FuncMap{
			"add":  func(i, j int) int { return i + j },
			"sub":  func(i, j int) int { return i - j },
			"mult": func(i, j int) int { return i * j },
			"div":  func(i, j int) int { return i / j },
			"max": func(i, j int) int {
				if i > j {
					return i
				}
				return j
			},
		})

	viewTemplates := []string{}
	for _, vc := range rv.views {
		if tname, parseErr := vc.Parse(rt); parseErr != nil {
			err = parseErr
			return
		} else {
			viewTemplates = append(viewTemplates, tname)
		}
	}

	var bodySpec string
	for _, tname := range viewTemplates {
		bodySpec += (`{{ template "` + tname + `" . }}`)
	}

	name = "mainpage"
	indexTemplate := `
	{{ define "` + name + `" }}
	<!DOCTYPE html>
	<html>
		<head>
			<link rel="icon" href="data:,">
			<script>
				const ws = new WebSocket("ws://" + window.location.host + "/ws");
				ws.onopen = function (event) {
					console.log("Web socket opened")
				};

				ws.onerror = function (event) {
					console.log('WebSocket error: ', event);
				};

				ws.onmessage = function (event) {
					items = JSON.parse(event.data)
					for (const update of items) {
						const ele = document.getElementById(update.eleId)
						for (const op of update.ops) {
							if (op.key === "textContent") {
								ele.textContent = op.value;
							} else {
								ele.setAttribute(op.key, op.value)
							}
						}
					}
				}
			</script>
		</head>
		<body>
		` + bodySpec + `
		</body></html>
	{{ end }}
	`

	_, err = rt.Parse(indexTemplate)
	return
}

// fanIn aggregates the views' ele-update channels into a single channel and
// throttles its output.
func fanIn(
	done <-chan struct{},
	views []fastview.ViewComponent,
) <-chan []fastview.EleUpdate {
	inputs := make([]<-chan []fastview.EleUpdate, len(views))
	for i, view := range views {
		inputs[i] = view.Updates()
	}
	return batchify(
		done,
		channerics.Merge(done, inputs...),
		time.Millisecond*20)
}

// batchify batches within the passed time frame before sending, overwriting
// previously received values for the same ele-id so only the latest update
// for any element is sent per batch.
func batchify(
	done <-chan struct{},
	source <-chan []fastview.EleUpdate,
	rate time.Duration,
) <-chan []fastview.EleUpdate {
	output := make(chan []fastview.EleUpdate)

	go func() {
		defer close(output)

		data := map[string]fastview.EleUpdate{}
		last := time.Now()
		for updates := range channerics.OrDone(done, source) {
			for _, update := range updates {
				data[update.EleId] = update
			}

			if time.Since(last) > rate && len(updates) > 0 {
				select {
				case output <- slicedVals(data):
					data = map[string]fastview.EleUpdate{}
					last = time.Now()
				case <-done:
					return
				}
			}
		}
	}()

	return output
}

func slicedVals[T1 comparable, T2 any](mp map[T1]T2) (sliced []T2) {
	for _, v := range mp {
		sliced = append(sliced, v)
	}
	return
}
