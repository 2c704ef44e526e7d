// Package board implements the Grid Store: a fixed-size tile grid with
// per-cell stable identifiers, parsed from and serialized back to the wire
// init-string format.
package board

import (
	"fmt"
	"strconv"
	"strings"

	"stonesgems/cell"

	"github.com/bits-and-blooms/bitset"
)

// ConfigError is returned when an init string is malformed.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("board: invalid grid configuration: %s", e.Reason)
}

// Board is a Cols x Rows tile grid. Cells are addressed (col, row), row 0 at
// the top, matching the wire format's row-major layout.
type Board struct {
	Cols, Rows   int
	MaxSteps     int
	GemsRequired int

	// TrackIDs controls whether Set mints fresh per-cell ids. When false
	// (id-tracking disabled, matching Params.ObsShowIDs == false) every cell
	// stays pinned at id 1, so the grid is eligible for the packed
	// between-tick representation (see Pack/Unpack).
	TrackIDs bool

	kind       [][]cell.Hidden
	id         [][]int
	hasUpdated [][]bool
	nextID     int
}

// Parse reads the header+rows init-string format described by the wire
// spec: "cols,rows,max_steps,gems_required" (or the same fields
// pipe-delimited) followed by one row per line of comma/pipe separated
// cell-kind integers.
func Parse(s string) (*Board, error) {
	lines := splitNonEmpty(s, "\n")
	if len(lines) < 1 {
		return nil, &ConfigError{Reason: "empty input"}
	}

	delim := ","
	if !strings.Contains(lines[0], ",") && strings.Contains(lines[0], "|") {
		delim = "|"
	}

	header := splitNonEmpty(lines[0], delim)
	if len(header) < 4 {
		return nil, &ConfigError{Reason: "header must have 4 fields: cols,rows,max_steps,gems_required"}
	}

	cols, err := strconv.Atoi(strings.TrimSpace(header[0]))
	if err != nil {
		return nil, &ConfigError{Reason: "cols: " + err.Error()}
	}
	rows, err := strconv.Atoi(strings.TrimSpace(header[1]))
	if err != nil {
		return nil, &ConfigError{Reason: "rows: " + err.Error()}
	}
	maxSteps, err := strconv.Atoi(strings.TrimSpace(header[2]))
	if err != nil {
		return nil, &ConfigError{Reason: "max_steps: " + err.Error()}
	}
	gemsRequired, err := strconv.Atoi(strings.TrimSpace(header[3]))
	if err != nil {
		return nil, &ConfigError{Reason: "gems_required: " + err.Error()}
	}

	rowLines := lines[1:]
	if len(rowLines) != rows {
		return nil, &ConfigError{Reason: fmt.Sprintf("expected %d rows, got %d", rows, len(rowLines))}
	}

	b := New(cols, rows, maxSteps, gemsRequired)
	for r, line := range rowLines {
		fields := splitNonEmpty(line, delim)
		if len(fields) != cols {
			return nil, &ConfigError{Reason: fmt.Sprintf("row %d: expected %d cols, got %d", r, cols, len(fields))}
		}
		for c, f := range fields {
			v, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return nil, &ConfigError{Reason: fmt.Sprintf("row %d col %d: %s", r, c, err.Error())}
			}
			b.Set(c, r, cell.Hidden(v))
		}
	}
	return b, nil
}

// New allocates an empty (all cell.Empty) board of the given dimensions.
func New(cols, rows, maxSteps, gemsRequired int) *Board {
	b := &Board{
		Cols:         cols,
		Rows:         rows,
		MaxSteps:     maxSteps,
		GemsRequired: gemsRequired,
		TrackIDs:     true,
		kind:         make([][]cell.Hidden, rows),
		id:           make([][]int, rows),
		hasUpdated:   make([][]bool, rows),
		nextID:       2,
	}
	for r := 0; r < rows; r++ {
		b.kind[r] = make([]cell.Hidden, cols)
		b.id[r] = make([]int, cols)
		b.hasUpdated[r] = make([]bool, cols)
		for c := 0; c < cols; c++ {
			b.kind[r][c] = cell.Empty
		}
	}
	return b
}

// InBounds reports whether (col, row) addresses a cell of the board.
func (b *Board) InBounds(col, row int) bool {
	return col >= 0 && col < b.Cols && row >= 0 && row < b.Rows
}

// Get returns the kind at (col, row). Panics if out of bounds, mirroring
// slice semantics: callers must check InBounds first on untrusted coords.
func (b *Board) Get(col, row int) cell.Hidden {
	return b.kind[row][col]
}

// ID returns the stable identifier of the cell occupant at (col, row).
func (b *Board) ID(col, row int) int {
	return b.id[row][col]
}

// mintID returns the next stable id to assign, or 1 unconditionally when
// TrackIDs is disabled.
func (b *Board) mintID() int {
	if !b.TrackIDs {
		return 1
	}
	id := b.nextID
	b.nextID++
	return id
}

// Set overwrites the kind at (col, row), minting a fresh stable id for the
// new occupant. Empty and Dirt always pin id 1, never mint.
func (b *Board) Set(col, row int, k cell.Hidden) {
	b.kind[row][col] = k
	if k == cell.Empty || k == cell.Dirt {
		b.id[row][col] = 1
		return
	}
	b.id[row][col] = b.mintID()
}

// SetWithID overwrites the kind at (col, row) while keeping an existing id,
// used when a kind transitions in place (e.g. Stone -> StoneFalling).
func (b *Board) SetWithID(col, row int, k cell.Hidden, id int) {
	b.kind[row][col] = k
	b.id[row][col] = id
}

// Move relocates the occupant at (from) to (to), leaving cell.Empty (id 1)
// behind. The destination keeps the moving occupant's id.
func (b *Board) Move(fromCol, fromRow, toCol, toRow int) {
	k := b.kind[fromRow][fromCol]
	id := b.id[fromRow][fromCol]
	b.kind[fromRow][fromCol] = cell.Empty
	b.id[fromRow][fromCol] = 1
	b.kind[toRow][toCol] = k
	b.id[toRow][toCol] = id
}

// HasUpdated reports whether the cell at (col, row) has already been
// processed during the current scan.
func (b *Board) HasUpdated(col, row int) bool {
	return b.hasUpdated[row][col]
}

// MarkUpdated flags the cell at (col, row) as processed for the current scan.
func (b *Board) MarkUpdated(col, row int) {
	b.hasUpdated[row][col] = true
}

// ResetScan clears the has-updated bookkeeping ahead of a new tick's scan.
func (b *Board) ResetScan() {
	for r := range b.hasUpdated {
		for c := range b.hasUpdated[r] {
			b.hasUpdated[r][c] = false
		}
	}
}

// IsAdjacent reports whether any of the four orthogonal neighbors of
// (col, row) holds a kind satisfying want.
func (b *Board) IsAdjacent(col, row int, want func(cell.Hidden) bool) bool {
	for _, d := range []cell.Direction{cell.DirUp, cell.DirDown, cell.DirLeft, cell.DirRight} {
		off := cell.Offsets[d]
		nc, nr := col+off.DCol, row+off.DRow
		if b.InBounds(nc, nr) && want(b.Get(nc, nr)) {
			return true
		}
	}
	return false
}

// Clone returns a deep, independent copy of the board.
func (b *Board) Clone() *Board {
	nb := New(b.Cols, b.Rows, b.MaxSteps, b.GemsRequired)
	nb.nextID = b.nextID
	nb.TrackIDs = b.TrackIDs
	for r := 0; r < b.Rows; r++ {
		copy(nb.kind[r], b.kind[r])
		copy(nb.id[r], b.id[r])
		copy(nb.hasUpdated[r], b.hasUpdated[r])
	}
	return nb
}

// String serializes the board back to the header+rows wire format.
func (b *Board) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d,%d,%d,%d\n", b.Cols, b.Rows, b.MaxSteps, b.GemsRequired)
	for r := 0; r < b.Rows; r++ {
		row := make([]string, b.Cols)
		for c := 0; c < b.Cols; c++ {
			row[c] = strconv.Itoa(int(b.kind[r][c]))
		}
		sb.WriteString(strings.Join(row, ","))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Pack bit-packs the board's occupancy into a one-bit-per-cell-per-kind
// bitset, used when id-tracking is disabled to cut between-tick memory
// roughly eightfold versus a byte-per-cell-per-kind tensor.
func (b *Board) Pack() *bitset.BitSet {
	bs := bitset.New(uint(b.Rows * b.Cols * cell.NumHidden))
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			k := int(b.kind[r][c])
			if k < 0 {
				continue
			}
			idx := uint((r*b.Cols+c)*cell.NumHidden + k)
			bs.Set(idx)
		}
	}
	return bs
}

// Unpack restores kinds from a bitset produced by Pack. Stable ids are not
// recoverable from the packed form; each cell gets an id as Set assigns it
// (1 throughout when TrackIDs is false), so this is only safe to call when
// id-tracking (ObsShowIDs) is disabled.
func (b *Board) Unpack(bs *bitset.BitSet) {
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			base := uint((r*b.Cols + c) * cell.NumHidden)
			for k := 0; k < cell.NumHidden; k++ {
				if bs.Test(base + uint(k)) {
					b.Set(c, r, cell.Hidden(k))
					break
				}
			}
		}
	}
}

func splitNonEmpty(s, sep string) []string {
	raw := strings.Split(strings.TrimSpace(s), sep)
	if sep == "\n" {
		out := make([]string, 0, len(raw))
		for _, l := range raw {
			l = strings.TrimRight(l, "\r")
			if strings.TrimSpace(l) == "" {
				continue
			}
			out = append(out, l)
		}
		return out
	}
	out := make([]string, 0, len(raw))
	for _, f := range raw {
		if strings.TrimSpace(f) == "" {
			continue
		}
		out = append(out, f)
	}
	return out
}
