package grid

// Direction is anything with a unit delta vector.
// Both Direction4 and Direction8 satisfy it.
type Direction interface {
	Delta() Xy
}

// Direction4 is one of the four cardinal compass directions.
type Direction4 int

const (
	N4 Direction4 = iota // north, (0,-1)
	E4                   // east, (1,0)
	S4                   // south, (0,1)
	W4                   // west, (-1,0)
)

var (
	all4    = [...]Direction4{N4, E4, S4, W4}
	deltas4 = [...]Xy{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	names4  = [...]string{"N", "E", "S", "W"}
)

// AllDirection4 returns N, E, S, W in that order.
// A fresh slice is returned on each call.
func AllDirection4() []Direction4 {
	out := make([]Direction4, len(all4))
	copy(out, all4[:])
	return out
}

// Delta returns the unit vector of d.
func (d Direction4) Delta() Xy {
	return deltas4[d]
}

// Clockwise rotates a quarter turn: N→E→S→W→N.
func (d Direction4) Clockwise() Direction4 {
	return (d + 1) % 4
}

// Anticlockwise rotates a quarter turn the other way: N→W→S→E→N.
func (d Direction4) Anticlockwise() Direction4 {
	return (d + 3) % 4
}

// Reverse returns the opposite direction.
func (d Direction4) Reverse() Direction4 {
	return (d + 2) % 4
}

// Eight lifts d into the 8-way enumeration.
func (d Direction4) Eight() Direction8 {
	return Direction8(d * 2)
}

// String returns "N", "E", "S" or "W".
func (d Direction4) String() string {
	if d < 0 || int(d) >= len(names4) {
		return "Direction4(?)"
	}
	return names4[d]
}

// Direction8 is one of the eight compass directions, including diagonals.
type Direction8 int

const (
	N8  Direction8 = iota // (0,-1)
	NE8                   // (1,-1)
	E8                    // (1,0)
	SE8                   // (1,1)
	S8                    // (0,1)
	SW8                   // (-1,1)
	W8                    // (-1,0)
	NW8                   // (-1,-1)
)

var (
	all8    = [...]Direction8{N8, NE8, E8, SE8, S8, SW8, W8, NW8}
	deltas8 = [...]Xy{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	names8  = [...]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}
)

// AllDirection8 returns N, NE, E, SE, S, SW, W, NW in that order.
func AllDirection8() []Direction8 {
	out := make([]Direction8, len(all8))
	copy(out, all8[:])
	return out
}

// Cardinal returns the four non-diagonal directions: N, E, S, W.
func Cardinal() []Direction8 {
	return []Direction8{N8, E8, S8, W8}
}

// Diagonal returns the four diagonal directions: NE, SE, SW, NW.
func Diagonal() []Direction8 {
	return []Direction8{NE8, SE8, SW8, NW8}
}

// Delta returns the unit vector of d.
func (d Direction8) Delta() Xy {
	return deltas8[d]
}

// Clockwise rotates an eighth turn: N→NE→E→…→NW→N.
func (d Direction8) Clockwise() Direction8 {
	return (d + 1) % 8
}

// Anticlockwise rotates an eighth turn the other way.
func (d Direction8) Anticlockwise() Direction8 {
	return (d + 7) % 8
}

// Reverse returns the opposite direction.
func (d Direction8) Reverse() Direction8 {
	return (d + 4) % 8
}

// IsDiagonal reports whether d is one of NE, SE, SW, NW.
func (d Direction8) IsDiagonal() bool {
	return d%2 == 1
}

// String returns the compass abbreviation, e.g. "NE".
func (d Direction8) String() string {
	if d < 0 || int(d) >= len(names8) {
		return "Direction8(?)"
	}
	return names8[d]
}

// neighborDeltas returns the unit deltas for 4- or 8-connectivity,
// in AllDirection4 / AllDirection8 order.
func neighborDeltas(diagonals bool) []Xy {
	if diagonals {
		return deltas8[:]
	}
	return deltas4[:]
}

// Neighbors returns xy moved one step in every direction, in AllDirection4
// order, or AllDirection8 order when diagonals is true.
func Neighbors(xy Xy, diagonals bool) []Xy {
	ds := neighborDeltas(diagonals)
	out := make([]Xy, len(ds))
	for i, d := range ds {
		out[i] = xy.Add(d)
	}
	return out
}
