package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-battleship/internal/battleship"
)

// LayoutFile is the YAML form of a fleet layout.
//
//	ships:
//	  - ship: Carrier
//	    row: 2
//	    col: 1
//	    direction: horizontal
type LayoutFile struct {
	Ships []ShipEntry `yaml:"ships"`
}

// ShipEntry places one ship. Rows and columns are zero-based.
type ShipEntry struct {
	Ship      string `yaml:"ship"`
	Row       int    `yaml:"row"`
	Col       int    `yaml:"col"`
	Direction string `yaml:"direction"`
}

// ErrInvalidLayout wraps every layout validation failure.
var ErrInvalidLayout = errors.New("config: invalid layout")

// LoadLayout resolves ref to a fleet layout. ref is either a path to a YAML
// file or the name of a built-in layout (see LayoutNames).
func LoadLayout(ref string) ([]battleship.Placement, error) {
	data, err := os.ReadFile(ref)
	if err != nil {
		builtin, berr := fs.ReadFile(builtinLayouts, path.Join("defaults", "layouts", ref+".yaml"))
		if berr != nil {
			return nil, fmt.Errorf("failed to read layout %s: %w", ref, err)
		}
		data = builtin
	}

	placements, err := ParseLayout(data)
	if err != nil {
		return nil, fmt.Errorf("layout %s: %w", ref, err)
	}
	return placements, nil
}

// LayoutNames lists the built-in layouts.
func LayoutNames() []string {
	entries, err := fs.ReadDir(builtinLayouts, path.Join("defaults", "layouts"))
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// ParseLayout decodes and validates a layout. Each ship may appear at most
// once and the ships must fit on the board without overlapping. A layout may
// leave ships out; they are placed some other way.
func ParseLayout(data []byte) ([]battleship.Placement, error) {
	var file LayoutFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}
	if len(file.Ships) == 0 {
		return nil, fmt.Errorf("%w: no ships", ErrInvalidLayout)
	}

	placements := make([]battleship.Placement, 0, len(file.Ships))
	for i, e := range file.Ships {
		ship, err := battleship.ParseShipType(e.Ship)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %w", ErrInvalidLayout, i, err)
		}
		dir, err := battleship.ParseDirection(e.Direction)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %w", ErrInvalidLayout, i, err)
		}
		placements = append(placements, battleship.Placement{
			Ship:      ship,
			Origin:    battleship.At(e.Row, e.Col),
			Direction: dir,
		})
	}

	// Dry run on a scratch game to catch duplicates, overlap and bounds.
	scratch := battleship.NewGame(battleship.NewHuman("layout"), battleship.NewHuman("scratch"))
	if err := scratch.ApplyLayout(scratch.Player1(), placements); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLayout, err)
	}
	return placements, nil
}
