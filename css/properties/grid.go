package properties

import (
	"fmt"
	"strings"

	"github.com/benoitkugler/gridtracks/utils"
)

// Axis selects the per-axis grid properties.
type Axis uint8

const (
	Horizontal Axis = iota // columns
	Vertical               // rows
)

func (a Axis) String() string {
	if a == Horizontal {
		return "columns"
	}
	return "rows"
}

// Other returns the orthogonal axis.
func (a Axis) Other() Axis { return 1 - a }

// BreadthKind is the type of a [TrackBreadth].
type BreadthKind uint8

const (
	BreadthAuto BreadthKind = iota
	BreadthFixed
	BreadthMinContent
	BreadthMaxContent
	BreadthFitContent
	BreadthFlex
)

// TrackBreadth is one side (min or max) of a track sizing function.
// [Length] is used by BreadthFixed and BreadthFitContent, [Flex] by BreadthFlex.
type TrackBreadth struct {
	Length Dimension
	Flex   Fl
	Kind   BreadthKind
}

var (
	Auto       = TrackBreadth{Kind: BreadthAuto}
	MinContent = TrackBreadth{Kind: BreadthMinContent}
	MaxContent = TrackBreadth{Kind: BreadthMaxContent}
)

// Length returns a fixed breadth. [d] must be a length or a percentage.
func Length(d Dimension) TrackBreadth { return TrackBreadth{Kind: BreadthFixed, Length: d} }

// Flex returns a <flex> breadth, like 2fr.
func Flex(factor Fl) TrackBreadth { return TrackBreadth{Kind: BreadthFlex, Flex: factor} }

// FitContentLimit returns the max breadth of fit-content(limit).
func FitContentLimit(limit Dimension) TrackBreadth {
	return TrackBreadth{Kind: BreadthFitContent, Length: limit}
}

// IsFixed returns true for length-percentage breadths.
func (tb TrackBreadth) IsFixed() bool { return tb.Kind == BreadthFixed }

// DefiniteValue resolves fixed breadths against [parent].
// Content based and flexible breadths are always indefinite.
func (tb TrackBreadth) DefiniteValue(parent MaybeFloat) MaybeFloat {
	if tb.Kind != BreadthFixed {
		return Indefinite
	}
	return tb.Length.Resolve(parent)
}

func (tb TrackBreadth) String() string {
	switch tb.Kind {
	case BreadthAuto:
		return "auto"
	case BreadthFixed:
		return tb.Length.String()
	case BreadthMinContent:
		return "min-content"
	case BreadthMaxContent:
		return "max-content"
	case BreadthFitContent:
		return fmt.Sprintf("fit-content(%s)", tb.Length)
	case BreadthFlex:
		return utils.FormatFl(tb.Flex) + "fr"
	default:
		return "<invalid breadth>"
	}
}

// TrackSizingFunction is one entry of a grid-template-rows or
// grid-template-columns list. It is either
//   - a [TrackSize], defining exactly one track
//   - an [AutoRepeat], repeated a number of times depending on the container size
type TrackSizingFunction interface {
	fmt.Stringer
	isTrackSizingFunction()
}

func (TrackSize) isTrackSizingFunction()  {}
func (AutoRepeat) isTrackSizingFunction() {}

// TrackSize is a non repeated track sizing function, that is
// a single value V (Min = Max = V), minmax(Min, Max) or fit-content().
type TrackSize struct {
	Min, Max TrackBreadth
}

// Single returns the track size for a single breadth value.
func Single(b TrackBreadth) TrackSize { return TrackSize{Min: b, Max: b} }

// Minmax returns minmax(min, max).
func Minmax(min, max TrackBreadth) TrackSize { return TrackSize{Min: min, Max: max} }

// FitContent returns fit-content(limit).
func FitContent(limit Dimension) TrackSize {
	return TrackSize{Min: Auto, Max: FitContentLimit(limit)}
}

// HasFixedComponent returns true if at least one of the min or max
// breadth is a length-percentage.
func (ts TrackSize) HasFixedComponent() bool { return ts.Min.IsFixed() || ts.Max.IsFixed() }

// MinSizingFunction returns the breadth used as minimum track sizing
// function: flexible and fit-content breadths are not valid minimums
// and are replaced by auto.
func (ts TrackSize) MinSizingFunction() TrackBreadth {
	if ts.Min.Kind == BreadthFlex || ts.Min.Kind == BreadthFitContent {
		return Auto
	}
	return ts.Min
}

// MaxSizingFunction returns the breadth used as maximum track sizing function.
func (ts TrackSize) MaxSizingFunction() TrackBreadth { return ts.Max }

func (ts TrackSize) String() string {
	if ts.Max.Kind == BreadthFitContent && ts.Min.Kind == BreadthAuto {
		return ts.Max.String()
	}
	if ts.Min == ts.Max {
		return ts.Min.String()
	}
	return fmt.Sprintf("minmax(%s, %s)", ts.Min, ts.Max)
}

// RepetitionKind is the kind of an auto repeat() notation.
type RepetitionKind uint8

const (
	AutoFill RepetitionKind = iota + 1
	// AutoFit behaves like AutoFill, but the repeated tracks
	// without items are collapsed.
	AutoFit
)

func (rk RepetitionKind) String() string {
	switch rk {
	case AutoFill:
		return "auto-fill"
	case AutoFit:
		return "auto-fit"
	default:
		return "<invalid repetition>"
	}
}

// AutoRepeat is repeat(auto-fill, ...) or repeat(auto-fit, ...).
type AutoRepeat struct {
	Tracks []TrackSize
	Kind   RepetitionKind
}

// Repeat returns an auto repetition of [tracks].
func Repeat(kind RepetitionKind, tracks ...TrackSize) AutoRepeat {
	return AutoRepeat{Kind: kind, Tracks: tracks}
}

func (ar AutoRepeat) String() string {
	chunks := make([]string, len(ar.Tracks))
	for i, track := range ar.Tracks {
		chunks[i] = track.String()
	}
	return fmt.Sprintf("repeat(%s, %s)", ar.Kind, strings.Join(chunks, " "))
}

// TemplateString returns the CSS like representation of a template list.
func TemplateString(template []TrackSizingFunction) string {
	if len(template) == 0 {
		return "none"
	}
	chunks := make([]string, len(template))
	for i, tsf := range template {
		chunks[i] = tsf.String()
	}
	return strings.Join(chunks, " ")
}
