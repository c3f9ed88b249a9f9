package duosnake

// Body is the snake: a fixed-capacity ordered run of cells, head first.
// Occupied slots always form a prefix of the array; nothing is allocated
// after construction.
type Body struct {
	slots    [CellCount]Coordinate
	length   int
	capacity int
}

// NewBody returns a single-segment body with the given capacity.
func NewBody(capacity int, head Coordinate) Body {
	if capacity < 1 || capacity > CellCount {
		panic("duosnake: body capacity out of range")
	}
	b := Body{capacity: capacity}
	b.ResetToSingle(head)
	return b
}

// Len returns the number of occupied slots.
func (b *Body) Len() int {
	return b.length
}

// Cap returns the maximum number of segments.
func (b *Body) Cap() int {
	return b.capacity
}

// Head returns slot 0. Panics on an empty body, which New never produces.
func (b *Body) Head() Coordinate {
	if b.length == 0 {
		panic("duosnake: snake has no head")
	}
	return b.slots[0]
}

// Contains returns true if any occupied slot holds c.
func (b *Body) Contains(c Coordinate) bool {
	for _, seg := range b.slots[:b.length] {
		if seg == c {
			return true
		}
	}
	return false
}

// InsertHead pushes every segment one slot toward the tail and writes c into
// the head slot. At capacity the last segment falls off.
func (b *Body) InsertHead(c Coordinate) {
	if b.length < b.capacity {
		b.length++
	}
	copy(b.slots[1:b.length], b.slots[:b.length-1])
	b.slots[0] = c
}

// TrimTail drops the last segment. The head is never trimmed.
func (b *Body) TrimTail() {
	if b.length <= 1 {
		return
	}
	b.length--
	b.slots[b.length] = Coordinate{}
}

// ResetToSingle clears every slot and leaves only c as the head.
func (b *Body) ResetToSingle(c Coordinate) {
	b.slots = [CellCount]Coordinate{}
	b.slots[0] = c
	b.length = 1
}

// Segments returns a copy of the occupied slots, head first.
func (b *Body) Segments() []Coordinate {
	out := make([]Coordinate, b.length)
	copy(out, b.slots[:b.length])
	return out
}
