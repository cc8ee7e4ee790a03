package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	pr "github.com/benoitkugler/gridtracks/css/properties"
	"github.com/benoitkugler/gridtracks/html/layout"
)

var (
	colorCyan   = lipgloss.Color("36")  // Teal - titles
	colorYellow = lipgloss.Color("220") // Amber - flexible tracks
	colorGray   = lipgloss.Color("245") // Gray - gutters
	colorDim    = lipgloss.Color("240") // Dim gray - collapsed tracks
)

// palette holds the styles used to write to one output.
type palette struct {
	title, number lipgloss.Style
	header        lipgloss.Style
	gutter, flex  lipgloss.Style
	dim, plain    lipgloss.Style
}

// newPalette detects the color support of [w].
func newPalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)
	return palette{
		title:  r.NewStyle().Bold(true).Foreground(colorCyan),
		number: r.NewStyle().Foreground(colorCyan),
		header: r.NewStyle().Foreground(colorGray).Bold(true),
		gutter: r.NewStyle().Foreground(colorGray),
		flex:   r.NewStyle().Foreground(colorYellow),
		dim:    r.NewStyle().Foreground(colorDim),
		plain:  r.NewStyle(),
	}
}

var trackHeaders = []string{"Slot", "Track", "Kind", "Region", "Min", "Max", "Collapsed"}

// trackRows returns one row per entry of the track list, gutters included.
func trackRows(at layout.AxisTracks) [][]string {
	rows := make([][]string, len(at.Tracks))
	for slot, track := range at.Tracks {
		index, region, collapsed := "", "", ""
		if track.Kind == layout.KindTrack {
			trackIndex := slot / 2
			index = strconv.Itoa(trackIndex)
			region = at.Counts.Region(trackIndex).String()
		}
		if track.IsCollapsed {
			collapsed = "yes"
		}
		rows[slot] = []string{
			strconv.Itoa(slot), index, track.Kind.String(), region,
			track.MinTrackSizingFunction.String(), track.MaxTrackSizingFunction.String(), collapsed,
		}
	}
	return rows
}

// renderTracks renders the track list as a table, dimming collapsed entries.
func (p palette) renderTracks(at layout.AxisTracks) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(p.dim).
		Headers(trackHeaders...).
		Rows(trackRows(at)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return p.header
			}
			if row < 0 || row >= len(at.Tracks) {
				return p.plain
			}
			track := at.Tracks[row]
			switch {
			case track.IsCollapsed:
				return p.dim
			case track.Kind == layout.KindGutter:
				return p.gutter
			case track.MaxTrackSizingFunction.Kind == pr.BreadthFlex:
				return p.flex
			}
			return p.plain
		})
	return t.Render()
}

// printGrid writes the summary and the tracks of both axis.
func printGrid(w io.Writer, name string, grid *layout.Grid) {
	p := newPalette(w)
	fmt.Fprintln(w, p.title.Render(name))
	for _, axis := range [2]*layout.AxisTracks{&grid.Columns, &grid.Rows} {
		fmt.Fprintf(w, "%s: %s explicit, %s before, %s after\n", axis.Axis,
			p.number.Render(strconv.Itoa(axis.Counts.Explicit)),
			p.number.Render(strconv.Itoa(axis.Counts.NegativeImplicit)),
			p.number.Render(strconv.Itoa(axis.Counts.PositiveImplicit)))
		fmt.Fprintln(w, p.renderTracks(*axis))
	}
}
