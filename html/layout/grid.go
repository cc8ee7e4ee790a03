package layout

import (
	"math"

	pr "github.com/benoitkugler/gridtracks/css/properties"
	"github.com/benoitkugler/gridtracks/logger"
	"github.com/benoitkugler/gridtracks/utils"
)

// Resolution of the number of explicit tracks of a grid container,
// see https://www.w3.org/TR/css-grid-1/#auto-repeat

// maxAutoRepetitions bounds the number of repetitions of an auto repeat().
const maxAutoRepetitions = math.MaxUint16

// GridStyle gives access to the properties of a grid container
// needed to resolve its explicit grid. It is implemented by
// *properties.Style.
type GridStyle interface {
	TemplateTracks(axis pr.Axis) []pr.TrackSizingFunction
	Size(axis pr.Axis) pr.DimOrS
	MinSize(axis pr.Axis) pr.DimOrS
	MaxSize(axis pr.Axis) pr.DimOrS
	PaddingEdges(axis pr.Axis) [2]pr.Dimension
	BorderEdges(axis pr.Axis) [2]pr.Dimension
	Gap(axis pr.Axis) pr.Dimension
}

// ExplicitGridSize returns the number of explicit tracks in [axis].
//
// Invalid templates (several auto repetitions, an auto repetition mixed with
// tracks without fixed component, or an empty repetition) are disregarded
// and yield 0.
func ExplicitGridSize(style GridStyle, axis pr.Axis) int {
	template := style.TemplateTracks(axis)
	if len(template) == 0 {
		return 0
	}

	var (
		repetition                  pr.AutoRepeat
		autoRepetitionCount         int
		allTracksHaveFixedComponent = true
	)
	for _, trackDef := range template {
		switch trackDef := trackDef.(type) {
		case pr.TrackSize:
			allTracksHaveFixedComponent = allTracksHaveFixedComponent && trackDef.HasFixedComponent()
		case pr.AutoRepeat:
			if autoRepetitionCount == 0 {
				repetition = trackDef
			}
			autoRepetitionCount++
			for _, sizingFunction := range trackDef.Tracks {
				allTracksHaveFixedComponent = allTracksHaveFixedComponent && sizingFunction.HasFixedComponent()
			}
		}
	}

	// Each entry is one track.
	if autoRepetitionCount == 0 {
		return len(template)
	}

	if autoRepetitionCount > 1 {
		logger.WarningLogger.Printf("grid-template-%s: only one auto repetition is allowed, template %s ignored",
			axis, pr.TemplateString(template))
		return 0
	}
	if !allTracksHaveFixedComponent {
		logger.WarningLogger.Printf("grid-template-%s: auto repetition requires fixed sizes, template %s ignored",
			axis, pr.TemplateString(template))
		return 0
	}
	if len(repetition.Tracks) == 0 {
		logger.WarningLogger.Printf("grid-template-%s: empty auto repetition, template ignored", axis)
		return 0
	}

	nonRepeatingTrackCount := len(template) - 1
	repetitions := autoRepetitions(style, axis, template, repetition.Tracks)
	return nonRepeatingTrackCount + len(repetition.Tracks)*repetitions
}

// autoRepetitions returns the number of times the auto repeated tracks are used :
//   - with a definite size or max size, the largest number of repetitions
//     that does not overflow the content box
//   - otherwise, with a definite min size, the smallest number of repetitions
//     that fills the content box
//   - otherwise, 1
//
// The result is always at least 1, and at most [maxAutoRepetitions].
func autoRepetitions(style GridStyle, axis pr.Axis, template []pr.TrackSizingFunction, repeated []pr.TrackSize) int {
	outerSize, sizeIsMaximum := resolveOuterSize(style, axis)
	if !outerSize.Definite {
		return 1
	}
	innerSize := resolveInnerSize(style, axis, outerSize.Value)

	parentSize := pr.Definite(innerSize)
	gap := style.Gap(axis).ResolveOrZero(parentSize)

	var nonRepeatingUsedSpace, repetitionUsedSpace pr.Fl
	for _, trackDef := range template {
		if sizingFunction, ok := trackDef.(pr.TrackSize); ok {
			nonRepeatingUsedSpace += trackDefiniteValue(sizingFunction, parentSize)
		}
	}
	for _, sizingFunction := range repeated {
		repetitionUsedSpace += trackDefiniteValue(sizingFunction, parentSize)
	}

	// the number of gaps in the first repetition depends on the
	// number of non repeating tracks
	nonRepeatingTrackCount := len(template) - 1
	firstRepetitionGaps := utils.MaxInt(nonRepeatingTrackCount+len(repeated)-1, 0)
	firstRepetitionUsedSpace := nonRepeatingUsedSpace + repetitionUsedSpace + pr.Fl(firstRepetitionGaps)*gap

	if firstRepetitionUsedSpace >= innerSize {
		return 1
	}

	perRepetitionUsedSpace := repetitionUsedSpace + pr.Fl(len(repeated))*gap
	if perRepetitionUsedSpace <= 0 {
		// no progress is made by adding repetitions
		return 1
	}

	repetitionsThatFit := (innerSize - firstRepetitionUsedSpace) / perRepetitionUsedSpace
	if sizeIsMaximum {
		repetitionsThatFit = utils.Floor(repetitionsThatFit)
	} else {
		repetitionsThatFit = utils.Ceil(repetitionsThatFit)
	}
	// the first repetition, handled above, is added back
	repetitionsThatFit = utils.MinF(repetitionsThatFit, maxAutoRepetitions-1)
	return int(repetitionsThatFit) + 1
}

// trackDefiniteValue returns the space used by [sizingFunction] when counting
// auto repetitions : its max breadth if definite, floored by its min breadth.
//
// Both candidates are read from the max breadth, so that the min breadth
// never takes part, and a max breadth without definite value counts as 0.
// Reading sizingFunction.Min for minSize changes that.
func trackDefiniteValue(sizingFunction pr.TrackSize, parentSize pr.MaybeFloat) pr.Fl {
	maxSize := sizingFunction.Max.DefiniteValue(parentSize)
	minSize := sizingFunction.Max.DefiniteValue(parentSize)
	return maxSize.Min(minSize).Or(minSize).OrZero()
}
