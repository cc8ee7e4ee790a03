package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/benoitkugler/gridtracks/html/layout"
)

// fixture describes grid containers and the placement of their items.
//
//	[[container]]
//	name = "cards"
//	style = "width: 300px; grid-template-columns: repeat(auto-fit, 100px)"
//	items = 2
//
//	[container.rows]
//	negative-implicit = 1
//	occupied = [1]
type fixture struct {
	Containers []containerFixture `toml:"container"`
}

type containerFixture struct {
	Name  string `toml:"name"`
	Style string `toml:"style"`
	// Items are auto placed, see [layout.AutoPlace].
	Items   int               `toml:"items"`
	Columns *placementFixture `toml:"columns"`
	Rows    *placementFixture `toml:"rows"`
}

// placementFixture overrides the automatic placement in one axis.
type placementFixture struct {
	NegativeImplicit int `toml:"negative-implicit"`
	PositiveImplicit int `toml:"positive-implicit"`
	// absolute indices of the tracks with items
	Occupied []int `toml:"occupied"`
}

func (pf placementFixture) placement() layout.Placement {
	occupied := make(map[int]bool, len(pf.Occupied))
	for _, index := range pf.Occupied {
		occupied[index] = true
	}
	return layout.Placement{
		NegativeImplicit: pf.NegativeImplicit,
		PositiveImplicit: pf.PositiveImplicit,
		HasItems:         func(trackIndex int) bool { return occupied[trackIndex] },
	}
}

// place is used as [layout.Grid.Layout] callback.
func (cf containerFixture) place(explicitColumns, explicitRows int) (columns, rows layout.Placement) {
	columns, rows = layout.AutoPlace(cf.Items, explicitColumns, explicitRows)
	if cf.Columns != nil {
		columns = cf.Columns.placement()
	}
	if cf.Rows != nil {
		rows = cf.Rows.placement()
	}
	return columns, rows
}

func (cf containerFixture) validate() error {
	if cf.Items < 0 {
		return fmt.Errorf("negative item count %d", cf.Items)
	}
	for _, pf := range [2]*placementFixture{cf.Columns, cf.Rows} {
		if pf != nil && (pf.NegativeImplicit < 0 || pf.PositiveImplicit < 0) {
			return errors.New("negative implicit track count")
		}
	}
	return nil
}

// decodeFixture parses a TOML fixture, returning the keys
// which are not used.
func decodeFixture(data string) (fixture, []string, error) {
	var f fixture
	md, err := toml.Decode(data, &f)
	if err != nil {
		return f, nil, err
	}
	for i, cf := range f.Containers {
		if err := cf.validate(); err != nil {
			return f, nil, fmt.Errorf("container %d: %w", i+1, err)
		}
		if cf.Name == "" {
			f.Containers[i].Name = fmt.Sprintf("container %d", i+1)
		}
	}
	var undecoded []string
	for _, key := range md.Undecoded() {
		undecoded = append(undecoded, key.String())
	}
	return f, undecoded, nil
}

func loadFixture(path string) (fixture, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fixture{}, nil, err
	}
	f, undecoded, err := decodeFixture(string(data))
	if err != nil {
		return f, nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, undecoded, nil
}

func (f fixture) names() string {
	names := make([]string, len(f.Containers))
	for i, cf := range f.Containers {
		names[i] = cf.Name
	}
	return strings.Join(names, ", ")
}
