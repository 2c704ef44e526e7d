// Package boardview renders a board.Board snapshot as a grid of colored
// <rect> elements, one per cell, keyed by the cell's visible kind. It plays
// the role the racetrack's cell_views package played for the teacher's
// value-function surface, but for a discrete tile grid instead of a
// continuous value function: there is no height field to project, just a
// categorical color per cell.
package boardview

import (
	"fmt"
	"html/template"
	"strings"

	"stonesgems/cell"
	"stonesgems/engine"
	"stonesgems/server/fastview"

	channerics "github.com/niceyeti/channerics/channels"
)

// Cell is the view-model for a single board position: its coordinates and
// the color its visible kind should render as.
type Cell struct {
	X, Y int
	Fill string
}

// Convert projects an engine.State's observation into a 2d grid of Cells,
// one per board position, for consumption by the Board view.
func Convert(s *engine.State) [][]Cell {
	b := s.Board()
	cells := make([][]Cell, b.Rows)
	for r := 0; r < b.Rows; r++ {
		cells[r] = make([]Cell, b.Cols)
		for c := 0; c < b.Cols; c++ {
			vk := cell.ToVisible[b.Get(c, r)]
			cells[r][c] = Cell{X: c, Y: r, Fill: fillFor(vk)}
		}
	}
	return cells
}

// fillFor maps a visible cell kind to an svg color. Unlisted kinds (rare,
// internal-only values) fall back to a neutral gray rather than failing.
func fillFor(vk cell.Visible) string {
	switch vk {
	case cell.VEmpty:
		return "white"
	case cell.VDirt:
		return "sienna"
	case cell.VWallBrick:
		return "dimgray"
	case cell.VWallSteel:
		return "gray"
	case cell.VStone:
		return "slategray"
	case cell.VDiamond:
		return "deepskyblue"
	case cell.VNut:
		return "peru"
	case cell.VBomb:
		return "black"
	case cell.VAgent:
		return "gold"
	case cell.VAgentInExit:
		return "lightyellow"
	case cell.VFirefly:
		return "red"
	case cell.VButterfly:
		return "purple"
	case cell.VOrange:
		return "orange"
	case cell.VBlob:
		return "limegreen"
	case cell.VWallMagicOn:
		return "magenta"
	case cell.VWallMagicOff:
		return "lightgray"
	case cell.VExplosion:
		return "orangered"
	case cell.VExitClosed:
		return "saddlebrown"
	case cell.VExitOpen:
		return "springgreen"
	case cell.VKeyRed, cell.VKeyBlue, cell.VKeyGreen, cell.VKeyYellow:
		return "khaki"
	case cell.VGateRedClosed, cell.VGateBlueClosed, cell.VGateGreenClosed, cell.VGateYellowClosed:
		return "maroon"
	case cell.VGateRedOpen, cell.VGateBlueOpen, cell.VGateGreenOpen, cell.VGateYellowOpen:
		return "lightgreen"
	default:
		return "gray"
	}
}

// Board is the ViewComponent rendering the board grid as svg rects, one
// ele-update per cell per frame.
type Board struct {
	id      string
	updates <-chan []fastview.EleUpdate
}

// NewBoard builds a Board view fed by a stream of [][]Cell snapshots.
func NewBoard(done <-chan struct{}, cells <-chan [][]Cell) *Board {
	id := "board"
	bv := &Board{id: template.HTMLEscapeString(id)}
	bv.updates = channerics.Convert(done, cells, bv.onUpdate)
	return bv
}

// Updates returns the view's ele-update stream.
func (bv *Board) Updates() <-chan []fastview.EleUpdate {
	return bv.updates
}

func (bv *Board) onUpdate(cells [][]Cell) (ops []fastview.EleUpdate) {
	for _, row := range cells {
		for _, c := range row {
			ops = append(ops, fastview.EleUpdate{
				EleId: rectID(c.X, c.Y),
				Ops: []fastview.Op{
					{Key: "fill", Value: c.Fill},
				},
			})
		}
	}
	return
}

func rectID(x, y int) string {
	return fmt.Sprintf("cell-%d-%d-rect", x, y)
}

const cellDim = 24

// Parse builds the svg grid template: one <rect> per cell, addressable by
// rectID for incremental fill updates.
func (bv *Board) Parse(t *template.Template) (name string, err error) {
	name = bv.id
	var b strings.Builder
	fmt.Fprintf(&b, `{{ define "%s" }}<div style="padding:20px;">`, name)
	fmt.Fprintf(&b, `{{ $rows := len . }}{{ $cols := len (index . 0) }}`)
	fmt.Fprintf(&b, `<svg id="%s" xmlns='http://www.w3.org/2000/svg' `, bv.id)
	fmt.Fprintf(&b, `width="{{ mult $cols %d }}px" height="{{ mult $rows %d }}px" `, cellDim, cellDim)
	b.WriteString(`style="shape-rendering: crispEdges; stroke: lightgrey; stroke-width: 1;">`)
	b.WriteString(`{{ range $ri, $row := . }}{{ range $ci, $c := $row }}`)
	fmt.Fprintf(&b,
		`<rect id="cell-{{ $ci }}-{{ $ri }}-rect" x="{{ mult $ci %d }}" y="{{ mult $ri %d }}" width="%d" height="%d" fill="{{ $c.Fill }}" />`,
		cellDim, cellDim, cellDim, cellDim)
	b.WriteString(`{{ end }}{{ end }}`)
	b.WriteString(`</svg></div>{{ end }}`)

	_, err = t.Parse(b.String())
	return
}
