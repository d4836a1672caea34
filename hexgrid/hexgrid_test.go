package hexgrid

import (
	"errors"
	"math"
	"testing"
)

var testGrid = TilemapGridSize{X: 58, Y: 50}

var allSystems = []HexCoordSystem{Row, RowEven, RowOdd, Column, ColumnEven, ColumnOdd}

func TestGenerateHexagon(t *testing.T) {
	cases := []struct {
		radius uint32
		want   int
	}{
		{0, 1},
		{1, 7},
		{2, 19},
		{5, 91},
	}

	for _, c := range cases {
		center := AxialPos{Q: 3, R: -2}
		got := GenerateHexagon(center, c.radius)
		if len(got) != c.want {
			t.Fatalf("radius %d: expected %d positions, got %d", c.radius, c.want, len(got))
		}
		seen := make(map[AxialPos]struct{}, len(got))
		for _, a := range got {
			if d := a.Distance(center); d > int(c.radius) {
				t.Fatalf("radius %d: %v is %d steps from center", c.radius, a, d)
			}
			if _, dup := seen[a]; dup {
				t.Fatalf("radius %d: duplicate position %v", c.radius, a)
			}
			seen[a] = struct{}{}
		}
	}
}

func TestFillHexagon(t *testing.T) {
	cases := []struct {
		name string
		size TilemapSize
		want int
	}{
		{"fits", MapSizeForRadius(5), 91},
		{"clipped_by_2r_storage", TilemapSize{X: 10, Y: 10}, 79},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := FillHexagon(TilePos{X: 5, Y: 5}, 5, Column, c.size)
			if len(got) != c.want {
				t.Fatalf("expected %d tiles, got %d", c.want, len(got))
			}
			for _, p := range got {
				if !p.Within(c.size) {
					t.Fatalf("%v outside %v", p, c.size)
				}
			}
		})
	}
}

func TestAxialRoundTrip(t *testing.T) {
	for _, sys := range allSystems {
		t.Run(sys.String(), func(t *testing.T) {
			for y := uint32(0); y < 7; y++ {
				for x := uint32(0); x < 7; x++ {
					p := TilePos{X: x, Y: y}
					back, ok := AxialFromTilePos(p, sys).TilePos(sys)
					if !ok || back != p {
						t.Fatalf("%v -> %v ok=%v", p, back, ok)
					}
				}
			}
		})
	}
}

func TestAxialTilePosNegative(t *testing.T) {
	if _, ok := (AxialPos{Q: -1, R: 0}).TilePos(Column); ok {
		t.Fatalf("expected negative column to be rejected")
	}
	if _, ok := (AxialPos{Q: 0, R: -1}).TilePos(Row); ok {
		t.Fatalf("expected negative row to be rejected")
	}
}

func TestCenterInWorldColumn(t *testing.T) {
	cases := []struct {
		pos   TilePos
		wantX float64
		wantY float64
	}{
		{TilePos{0, 0}, 0, 0},
		{TilePos{1, 0}, 43.5, 25},
		{TilePos{0, 1}, 0, 50},
		{TilePos{2, 3}, 87, 200},
	}

	for _, c := range cases {
		x, y := CenterInWorld(c.pos, testGrid, Column)
		if !near(x, c.wantX) || !near(y, c.wantY) {
			t.Fatalf("%v: expected (%v, %v), got (%v, %v)", c.pos, c.wantX, c.wantY, x, y)
		}
	}
}

func TestFromWorldPosRoundTrip(t *testing.T) {
	size := TilemapSize{X: 7, Y: 7}
	for _, sys := range allSystems {
		t.Run(sys.String(), func(t *testing.T) {
			for y := uint32(0); y < size.Y; y++ {
				for x := uint32(0); x < size.X; x++ {
					p := TilePos{X: x, Y: y}
					cx, cy := CenterInWorld(p, testGrid, sys)
					offsets := [][2]float64{{0, 0}, {7, 0}, {-7, 0}, {0, 7}, {0, -7}, {5, 5}, {-5, -5}}
					for _, off := range offsets {
						got, ok := FromWorldPos(cx+off[0], cy+off[1], size, testGrid, sys)
						if !ok || got != p {
							t.Fatalf("%v offset %v: got %v ok=%v", p, off, got, ok)
						}
					}
				}
			}
		})
	}
}

func TestFromWorldPosOutside(t *testing.T) {
	size := MapSizeForRadius(5)
	cases := []struct {
		name string
		x, y float64
	}{
		{"far_negative", -1000, -1000},
		{"far_positive", 10000, 10000},
		{"nan", math.NaN(), 0},
		{"inf", math.Inf(1), 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if p, ok := FromWorldPos(c.x, c.y, size, testGrid, Column); ok {
				t.Fatalf("expected no tile, got %v", p)
			}
		})
	}
}

func TestCenterTransformCentersBoard(t *testing.T) {
	radius := uint32(5)
	size := MapSizeForRadius(radius)
	tx, ty := CenterTransform(size, testGrid, Column)

	cx, cy := CenterInWorld(TilePos{X: radius, Y: radius}, testGrid, Column)
	if !near(cx+tx, 0) || !near(cy+ty, 0) {
		t.Fatalf("board center lands at (%v, %v), expected origin", cx+tx, cy+ty)
	}

	if x, y := CenterTransform(TilemapSize{}, testGrid, Column); x != 0 || y != 0 {
		t.Fatalf("empty map should not move, got (%v, %v)", x, y)
	}
}

func TestCorners(t *testing.T) {
	corners := Corners(100, 200, testGrid, Column)
	if !near(corners[0][0], 129) || !near(corners[0][1], 200) {
		t.Fatalf("flat-top corner 0 expected (129, 200), got %v", corners[0])
	}
	if !near(corners[1][0], 114.5) || !near(corners[1][1], 225) {
		t.Fatalf("flat-top corner 1 expected (114.5, 225), got %v", corners[1])
	}

	pointy := Corners(0, 0, TilemapGridSize{X: 50, Y: 58}, Row)
	if !near(pointy[2][0], 0) || !near(pointy[2][1], 29) {
		t.Fatalf("pointy-top corner 2 expected (0, 29), got %v", pointy[2])
	}
}

func TestParseHexCoordSystem(t *testing.T) {
	cases := []struct {
		in      string
		want    HexCoordSystem
		wantErr bool
	}{
		{"column", Column, false},
		{"Column", Column, false},
		{" row-odd ", RowOdd, false},
		{"column_even", ColumnEven, false},
		{"diagonal", 0, true},
	}
	for _, c := range cases {
		got, err := ParseHexCoordSystem(c.in)
		if c.wantErr {
			if !errors.Is(err, ErrUnknownCoordSystem) {
				t.Fatalf("%q: expected ErrUnknownCoordSystem, got %v", c.in, err)
			}
			continue
		}
		if err != nil || got != c.want {
			t.Fatalf("%q: expected %v, got %v err=%v", c.in, c.want, got, err)
		}
	}
}

func TestTileStorage(t *testing.T) {
	s := NewTileStorage(TilemapSize{X: 3, Y: 2})

	if s.CheckedSet(TilePos{X: 3, Y: 0}, 9) {
		t.Fatalf("out-of-bounds set should be ignored")
	}
	if !s.CheckedSet(TilePos{X: 2, Y: 1}, 7) || !s.CheckedSet(TilePos{X: 0, Y: 0}, 4) {
		t.Fatalf("in-bounds set failed")
	}
	if e, ok := s.Get(TilePos{X: 2, Y: 1}); !ok || e != 7 {
		t.Fatalf("expected 7, got %d ok=%v", e, ok)
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 tiles, got %d", s.Len())
	}

	var order []TilePos
	s.Each(func(pos TilePos, _ uint64) { order = append(order, pos) })
	if len(order) != 2 || order[0] != (TilePos{}) || order[1] != (TilePos{X: 2, Y: 1}) {
		t.Fatalf("unexpected iteration order %v", order)
	}

	if e, ok := s.Remove(TilePos{X: 0, Y: 0}); !ok || e != 4 {
		t.Fatalf("remove returned %d ok=%v", e, ok)
	}
	if _, ok := s.Get(TilePos{X: 0, Y: 0}); ok {
		t.Fatalf("tile should be gone after remove")
	}
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
