package layout

import (
	"fmt"

	pr "github.com/benoitkugler/gridtracks/css/properties"
	"github.com/benoitkugler/gridtracks/utils"
)

// GridTrackKind distinguishes tracks from gutters.
type GridTrackKind uint8

const (
	KindTrack GridTrackKind = iota
	KindGutter
)

func (k GridTrackKind) String() string {
	if k == KindGutter {
		return "gutter"
	}
	return "track"
}

// GridTrack is a row, a column, or a gutter between them,
// with its sizing functions, as consumed by the track sizing algorithm.
type GridTrack struct {
	MinTrackSizingFunction pr.TrackBreadth
	MaxTrackSizingFunction pr.TrackBreadth
	Kind                   GridTrackKind
	// IsCollapsed tracks are kept so that track indices are stable,
	// but take no space.
	IsCollapsed bool
}

func newGridTrack(sizingFunction pr.TrackSize) GridTrack {
	return GridTrack{
		Kind:                   KindTrack,
		MinTrackSizingFunction: sizingFunction.MinSizingFunction(),
		MaxTrackSizingFunction: sizingFunction.MaxSizingFunction(),
	}
}

func newGutter(gap pr.Dimension) GridTrack {
	if gap.IsNone() {
		gap = pr.Dimension{Unit: pr.Px}
	}
	size := pr.Length(gap)
	return GridTrack{Kind: KindGutter, MinTrackSizingFunction: size, MaxTrackSizingFunction: size}
}

// Collapse marks the track as collapsed and sets
// its sizing functions to 0px.
func (gt *GridTrack) Collapse() {
	zero := pr.Length(pr.Dimension{Unit: pr.Px})
	gt.IsCollapsed = true
	gt.MinTrackSizingFunction = zero
	gt.MaxTrackSizingFunction = zero
}

func (gt GridTrack) String() string {
	s := fmt.Sprintf("%s minmax(%s, %s)", gt.Kind, gt.MinTrackSizingFunction, gt.MaxTrackSizingFunction)
	if gt.IsCollapsed {
		s += " (collapsed)"
	}
	return s
}

// TrackCounts stores the number of tracks of one axis,
// before, inside and after the explicit grid.
type TrackCounts struct {
	NegativeImplicit int
	Explicit         int
	PositiveImplicit int
}

// Len returns the total number of tracks (gutters excluded).
func (tc TrackCounts) Len() int { return tc.NegativeImplicit + tc.Explicit + tc.PositiveImplicit }

// TrackRegion is the part of the grid a track belongs to.
type TrackRegion uint8

const (
	NegativeImplicitRegion TrackRegion = iota
	ExplicitRegion
	PositiveImplicitRegion
)

func (r TrackRegion) String() string {
	switch r {
	case NegativeImplicitRegion:
		return "negative implicit"
	case ExplicitRegion:
		return "explicit"
	default:
		return "positive implicit"
	}
}

// Region returns the region of the track with absolute index [trackIndex]
// (0 is the first negative implicit track).
func (tc TrackCounts) Region(trackIndex int) TrackRegion {
	switch {
	case trackIndex < tc.NegativeImplicit:
		return NegativeImplicitRegion
	case trackIndex < tc.NegativeImplicit+tc.Explicit:
		return ExplicitRegion
	default:
		return PositiveImplicitRegion
	}
}

// TrackSlot returns the position in the track list of the track
// with absolute index [trackIndex]. Gutters are at even positions.
func TrackSlot(trackIndex int) int { return 2*trackIndex + 1 }

// autoTrackAt returns the sizing function of the [index]-th track generated
// from the grid-auto-rows or grid-auto-columns list, which is cycled.
// An empty list is treated as a single "auto" value.
func autoTrackAt(autoTracks []pr.TrackSize, index int) pr.TrackSize {
	if len(autoTracks) == 0 {
		return pr.Single(pr.Auto)
	}
	return autoTracks[index%len(autoTracks)]
}

// negativeImplicitOffset returns the position in [autoTracks] of the first
// negative implicit track, so that the auto tracks pattern seems to extend
// continuously before the explicit grid.
func negativeImplicitOffset(autoTracks []pr.TrackSize, negativeImplicit int) int {
	minCount := utils.MinInt(len(autoTracks), negativeImplicit)
	if minCount == 0 {
		return 0
	}
	maxCount := utils.MaxInt(len(autoTracks), negativeImplicit)
	return maxCount % minCount
}

// InitializeGridTracks fills [tracks] with the gutters and the tracks (negative implicit,
// explicit, and positive implicit) described by [counts], and returns the updated slice.
// The backing array of [tracks] is reused, so that the same slice may be passed
// at each layout.
//
// [trackHasItems] is called with the absolute index of each track generated by
// a repeat(auto-fit, ...) notation; empty tracks are collapsed with their following gutter.
// A nil [trackHasItems] reports every track as empty.
//
// The resulting slice has 2 * counts.Len() + 1 elements, alternating gutters and tracks,
// and its first and last gutters are always collapsed.
func InitializeGridTracks(tracks []GridTrack, counts TrackCounts, trackTemplate []pr.TrackSizingFunction,
	autoTracks []pr.TrackSize, gap pr.Dimension, trackHasItems func(trackIndex int) bool,
) []GridTrack {
	if needed := 2*counts.Len() + 1; cap(tracks) < needed {
		tracks = make([]GridTrack, 0, needed)
	} else {
		tracks = tracks[:0]
	}
	if trackHasItems == nil {
		trackHasItems = func(int) bool { return false }
	}
	tracks = append(tracks, newGutter(gap))

	// negative implicit tracks
	offset := negativeImplicitOffset(autoTracks, counts.NegativeImplicit)
	for i := 0; i < counts.NegativeImplicit; i++ {
		tracks = append(tracks, newGridTrack(autoTrackAt(autoTracks, offset+i)), newGutter(gap))
	}

	currentTrackIndex := counts.NegativeImplicit

	// explicit tracks : a zero count means the template is invalid,
	// and must be ignored, even if not empty
	if counts.Explicit > 0 {
		for _, trackDef := range trackTemplate {
			switch trackDef := trackDef.(type) {
			case pr.TrackSize:
				tracks = append(tracks, newGridTrack(trackDef), newGutter(gap))
				currentTrackIndex++
			case pr.AutoRepeat:
				if len(trackDef.Tracks) == 0 {
					continue
				}
				autoRepeatedTrackCount := counts.Explicit - (len(trackTemplate) - 1)
				for i := 0; i < autoRepeatedTrackCount; i++ {
					track := newGridTrack(trackDef.Tracks[i%len(trackDef.Tracks)])
					gutter := newGutter(gap)
					if trackDef.Kind == pr.AutoFit && !trackHasItems(currentTrackIndex) {
						track.Collapse()
						gutter.Collapse()
					}
					tracks = append(tracks, track, gutter)
					currentTrackIndex++
				}
			}
		}
	}

	// positive implicit tracks
	for i := 0; i < counts.PositiveImplicit; i++ {
		tracks = append(tracks, newGridTrack(autoTrackAt(autoTracks, i)), newGutter(gap))
	}

	tracks[0].Collapse()
	tracks[len(tracks)-1].Collapse()

	return tracks
}
