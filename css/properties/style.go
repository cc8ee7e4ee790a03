package properties

// Style stores the properties of a grid container
// used to build its tracks.
//
// Sizes are "auto" (or "none" for maximums) when not specified.
// Padding and border widths are stored in top, right, bottom, left order.
type Style struct {
	Display string

	Width, Height       DimOrS
	MinWidth, MinHeight DimOrS
	MaxWidth, MaxHeight DimOrS

	Padding     [4]Dimension
	BorderWidth [4]Dimension

	RowGap, ColumnGap Dimension

	GridTemplateColumns, GridTemplateRows []TrackSizingFunction
	GridAutoColumns, GridAutoRows         []TrackSize
}

const (
	top = iota
	right
	bottom
	left
)

var zeroPixels = Dimension{Unit: Px}

// NewStyle returns the initial values of the properties.
func NewStyle() Style {
	return Style{
		Display:     "block",
		Width:       SToV("auto"),
		Height:      SToV("auto"),
		MinWidth:    SToV("auto"),
		MinHeight:   SToV("auto"),
		MaxWidth:    SToV("none"),
		MaxHeight:   SToV("none"),
		Padding:     [4]Dimension{zeroPixels, zeroPixels, zeroPixels, zeroPixels},
		BorderWidth: [4]Dimension{zeroPixels, zeroPixels, zeroPixels, zeroPixels},
		RowGap:      zeroPixels,
		ColumnGap:   zeroPixels,
	}
}

// IsGrid returns true for grid and inline-grid containers.
func (s *Style) IsGrid() bool { return s.Display == "grid" || s.Display == "inline-grid" }

func (s *Style) TemplateTracks(axis Axis) []TrackSizingFunction {
	if axis == Horizontal {
		return s.GridTemplateColumns
	}
	return s.GridTemplateRows
}

func (s *Style) AutoTracks(axis Axis) []TrackSize {
	if axis == Horizontal {
		return s.GridAutoColumns
	}
	return s.GridAutoRows
}

func (s *Style) Size(axis Axis) DimOrS {
	if axis == Horizontal {
		return s.Width
	}
	return s.Height
}

func (s *Style) MinSize(axis Axis) DimOrS {
	if axis == Horizontal {
		return s.MinWidth
	}
	return s.MinHeight
}

func (s *Style) MaxSize(axis Axis) DimOrS {
	if axis == Horizontal {
		return s.MaxWidth
	}
	return s.MaxHeight
}

// PaddingEdges returns the start and end padding in [axis].
func (s *Style) PaddingEdges(axis Axis) [2]Dimension {
	if axis == Horizontal {
		return [2]Dimension{s.Padding[left], s.Padding[right]}
	}
	return [2]Dimension{s.Padding[top], s.Padding[bottom]}
}

// BorderEdges returns the start and end border widths in [axis].
func (s *Style) BorderEdges(axis Axis) [2]Dimension {
	if axis == Horizontal {
		return [2]Dimension{s.BorderWidth[left], s.BorderWidth[right]}
	}
	return [2]Dimension{s.BorderWidth[top], s.BorderWidth[bottom]}
}

// Gap returns the gutter size between tracks of [axis], that is
// column-gap for columns and row-gap for rows.
func (s *Style) Gap(axis Axis) Dimension {
	if axis == Horizontal {
		return s.ColumnGap
	}
	return s.RowGap
}
