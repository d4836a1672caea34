package hexgrid

// TileStorage maps tile positions to entity handles. Handles are the raw
// uint64 value of an ecs.Entity, since package ecs imports hexgrid for its
// event payloads and hexgrid cannot import it back. Zero means empty.
type TileStorage struct {
	size  TilemapSize
	tiles []uint64
}

func NewTileStorage(size TilemapSize) *TileStorage {
	return &TileStorage{size: size, tiles: make([]uint64, size.Count())}
}

func (s *TileStorage) Size() TilemapSize {
	if s == nil {
		return TilemapSize{}
	}
	return s.size
}

// Get returns the handle at pos.
func (s *TileStorage) Get(pos TilePos) (uint64, bool) {
	if s == nil || !pos.Within(s.size) {
		return 0, false
	}
	e := s.tiles[pos.Index(s.size)]
	return e, e != 0
}

// CheckedSet stores e at pos. Out-of-bounds positions are ignored and
// reported as false.
func (s *TileStorage) CheckedSet(pos TilePos, e uint64) bool {
	if s == nil || !pos.Within(s.size) {
		return false
	}
	s.tiles[pos.Index(s.size)] = e
	return true
}

// Remove clears pos and returns the handle that was stored there.
func (s *TileStorage) Remove(pos TilePos) (uint64, bool) {
	e, ok := s.Get(pos)
	if !ok {
		return 0, false
	}
	s.tiles[pos.Index(s.size)] = 0
	return e, true
}

// Len returns the number of occupied positions.
func (s *TileStorage) Len() int {
	if s == nil {
		return 0
	}
	n := 0
	for _, e := range s.tiles {
		if e != 0 {
			n++
		}
	}
	return n
}

// Each calls fn for every occupied position in row-major order.
func (s *TileStorage) Each(fn func(pos TilePos, e uint64)) {
	if s == nil || fn == nil {
		return
	}
	for i, e := range s.tiles {
		if e == 0 {
			continue
		}
		fn(TilePos{X: uint32(i % int(s.size.X)), Y: uint32(i / int(s.size.X))}, e)
	}
}
