package cell

// Direction is a facing or movement heading. The diagonals are used only by
// the adjacency/explosion neighborhood scan, never as a movement heading.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirRight
	DirDown
	DirLeft
	DirUpRight
	DirDownRight
	DirDownLeft
	DirUpLeft

	NumDirections
)

// Offset is a (dCol, dRow) displacement.
type Offset struct {
	DCol, DRow int
}

// Offsets maps a direction to its (col, row) displacement.
var Offsets = map[Direction]Offset{
	DirNone:      {0, 0},
	DirUp:        {0, -1},
	DirUpLeft:    {-1, -1},
	DirLeft:      {-1, 0},
	DirDownLeft:  {-1, 1},
	DirDown:      {0, 1},
	DirDownRight: {1, 1},
	DirRight:     {1, 0},
	DirUpRight:   {1, -1},
}

// RotateRight maps a cardinal facing to the next one clockwise.
var RotateRight = map[Direction]Direction{
	DirNone:  DirNone,
	DirUp:    DirRight,
	DirRight: DirDown,
	DirDown:  DirLeft,
	DirLeft:  DirUp,
}

// RotateLeft maps a cardinal facing to the next one counterclockwise.
var RotateLeft = map[Direction]Direction{
	DirNone:  DirNone,
	DirUp:    DirLeft,
	DirLeft:  DirDown,
	DirDown:  DirRight,
	DirRight: DirUp,
}

// FireflyToDirection maps a firefly's hidden kind to its current facing.
var FireflyToDirection = map[Hidden]Direction{
	FireflyUp: DirUp, FireflyRight: DirRight, FireflyDown: DirDown, FireflyLeft: DirLeft,
}

// DirectionToFirefly maps a facing to the firefly hidden kind with that facing.
var DirectionToFirefly = map[Direction]Hidden{
	DirUp: FireflyUp, DirRight: FireflyRight, DirDown: FireflyDown, DirLeft: FireflyLeft,
}

// ButterflyToDirection maps a butterfly's hidden kind to its current facing.
var ButterflyToDirection = map[Hidden]Direction{
	ButterflyUp: DirUp, ButterflyRight: DirRight, ButterflyDown: DirDown, ButterflyLeft: DirLeft,
}

// DirectionToButterfly maps a facing to the butterfly hidden kind with that facing.
var DirectionToButterfly = map[Direction]Hidden{
	DirUp: ButterflyUp, DirRight: ButterflyRight, DirDown: ButterflyDown, DirLeft: ButterflyLeft,
}

// OrangeToDirection maps an orange's hidden kind to its current facing.
var OrangeToDirection = map[Hidden]Direction{
	OrangeUp: DirUp, OrangeRight: DirRight, OrangeDown: DirDown, OrangeLeft: DirLeft,
}

// DirectionToOrange maps a facing to the orange hidden kind with that facing.
var DirectionToOrange = map[Direction]Hidden{
	DirUp: OrangeUp, DirRight: OrangeRight, DirDown: OrangeDown, DirLeft: OrangeLeft,
}

// IsFirefly reports whether k is a firefly in any facing.
func IsFirefly(k Hidden) bool {
	_, ok := FireflyToDirection[k]
	return ok
}

// IsButterfly reports whether k is a butterfly in any facing.
func IsButterfly(k Hidden) bool {
	_, ok := ButterflyToDirection[k]
	return ok
}

// IsOrange reports whether k is an orange in any facing.
func IsOrange(k Hidden) bool {
	_, ok := OrangeToDirection[k]
	return ok
}

// IsExplosion reports whether k is any of the three explosion kinds.
func IsExplosion(k Hidden) bool {
	return k == ExplosionDiamond || k == ExplosionBoulder || k == ExplosionEmpty
}

// IsMagicWall reports whether k is any magic wall state.
func IsMagicWall(k Hidden) bool {
	return k == WallMagicDormant || k == WallMagicOn || k == WallMagicExpired
}

// IsOpenGate reports whether k is any open gate.
func IsOpenGate(k Hidden) bool {
	switch k {
	case GateRedOpen, GateBlueOpen, GateGreenOpen, GateYellowOpen:
		return true
	}
	return false
}

// IsKey reports whether k is any key.
func IsKey(k Hidden) bool {
	switch k {
	case KeyRed, KeyBlue, KeyGreen, KeyYellow:
		return true
	}
	return false
}
