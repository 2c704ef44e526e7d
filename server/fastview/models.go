package fastview

import "html/template"

// Op is a single DOM attribute/property mutation targeting one element,
// e.g. {Key: "fill", Value: "#3a7"} for an SVG rect's fill color.
type Op struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// EleUpdate batches the Ops to apply to a single page element, addressed by
// its DOM id. A frame of view updates is a []EleUpdate.
type EleUpdate struct {
	EleId string `json:"eleId"`
	Ops   []Op   `json:"ops"`
}

// ViewComponent is anything that can render an initial html/template
// fragment and thereafter stream incremental EleUpdate frames describing
// how that fragment's elements should mutate in place.
type ViewComponent interface {
	// Parse adds this component's templates to t and returns the name of
	// the template to execute for its initial render.
	Parse(t *template.Template) (name string, err error)
	// Updates streams frames of element mutations for the page's websocket
	// client to apply, one frame per publish tick.
	Updates() <-chan []EleUpdate
}
