// Build the rows and columns of grid containers, before the
// track sizing algorithm runs.
//
// For each axis, the number of explicit tracks is first resolved
// from the container style ([ExplicitGridSize]); once items are placed,
// the implicit track counts are known and the final list of tracks and gutters
// is built ([InitializeGridTracks]).
//
// Item placement and track sizing are not handled by this package.
package layout

import (
	pr "github.com/benoitkugler/gridtracks/css/properties"
	"github.com/benoitkugler/gridtracks/logger"
)

// Placement is the result of the item placement in one axis.
type Placement struct {
	// HasItems reports whether at least one item is placed
	// in the track with the given absolute index.
	HasItems         func(trackIndex int) bool
	NegativeImplicit int
	PositiveImplicit int
}

// AxisTracks stores the tracks of one axis of a grid container.
// It is meant to be kept between layouts, so that
// its storage is reused.
type AxisTracks struct {
	Tracks []GridTrack
	Counts TrackCounts
	Axis   pr.Axis
}

// Update rebuilds the tracks for the given style and placement.
// [explicit] is the result of [ExplicitGridSize], computed before placement.
func (at *AxisTracks) Update(style *pr.Style, explicit int, placement Placement) {
	at.Counts = TrackCounts{
		NegativeImplicit: placement.NegativeImplicit,
		Explicit:         explicit,
		PositiveImplicit: placement.PositiveImplicit,
	}
	at.Tracks = InitializeGridTracks(at.Tracks, at.Counts, style.TemplateTracks(at.Axis),
		style.AutoTracks(at.Axis), style.Gap(at.Axis), placement.HasItems)
	logger.ProgressLogger.Printf("%s: %d tracks (%d explicit)", at.Axis, at.Counts.Len(), at.Counts.Explicit)
}

// Track returns the track with absolute index [trackIndex].
func (at *AxisTracks) Track(trackIndex int) GridTrack { return at.Tracks[TrackSlot(trackIndex)] }

// Grid stores the tracks of both axis.
type Grid struct {
	Columns, Rows AxisTracks
}

// NewGrid returns an empty grid, ready for [Grid.Layout].
func NewGrid() *Grid {
	return &Grid{Columns: AxisTracks{Axis: pr.Horizontal}, Rows: AxisTracks{Axis: pr.Vertical}}
}

// ExplicitSizes returns the number of explicit columns and rows.
func ExplicitSizes(style GridStyle) (columns, rows int) {
	return ExplicitGridSize(style, pr.Horizontal), ExplicitGridSize(style, pr.Vertical)
}

// Layout resolves the explicit grid, calls [place] with the explicit sizes,
// and builds the tracks of both axis.
func (g *Grid) Layout(style *pr.Style, place func(explicitColumns, explicitRows int) (columns, rows Placement)) {
	explicitColumns, explicitRows := ExplicitSizes(style)
	columns, rows := place(explicitColumns, explicitRows)
	g.Columns.Update(style, explicitColumns, columns)
	g.Rows.Update(style, explicitRows, rows)
}
