package hexgrid

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownCoordSystem = errors.New("hexgrid: unknown coord system")

// HexCoordSystem selects the hexagon orientation and how storage positions
// map onto axial coordinates.
//
// Row systems use pointy-top hexagons laid out in rows, Column systems use
// flat-top hexagons laid out in columns. The plain variants store axial
// coordinates directly; Even and Odd store offset coordinates where every
// even or odd row (column) is shoved by half a hexagon.
type HexCoordSystem int

const (
	Row HexCoordSystem = iota
	RowEven
	RowOdd
	Column
	ColumnEven
	ColumnOdd
)

var coordSystemNames = map[HexCoordSystem]string{
	Row:        "row",
	RowEven:    "row_even",
	RowOdd:     "row_odd",
	Column:     "column",
	ColumnEven: "column_even",
	ColumnOdd:  "column_odd",
}

func (s HexCoordSystem) String() string {
	if name, ok := coordSystemNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s HexCoordSystem) IsValid() bool {
	_, ok := coordSystemNames[s]
	return ok
}

// IsColumn reports whether the system uses flat-top hexagons.
func (s HexCoordSystem) IsColumn() bool {
	switch s {
	case Column, ColumnEven, ColumnOdd:
		return true
	default:
		return false
	}
}

// ParseHexCoordSystem parses names such as "column" or "row_odd". Dashes and
// case are ignored.
func ParseHexCoordSystem(name string) (HexCoordSystem, error) {
	clean := strings.ToLower(strings.TrimSpace(name))
	clean = strings.ReplaceAll(clean, "-", "_")
	for sys, n := range coordSystemNames {
		if n == clean {
			return sys, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCoordSystem, name)
}

func (s HexCoordSystem) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCoordSystem, int(s))
	}
	return []byte(s.String()), nil
}

func (s *HexCoordSystem) UnmarshalText(text []byte) error {
	parsed, err := ParseHexCoordSystem(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
