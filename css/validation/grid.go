package validation

import (
	pa "github.com/benoitkugler/gridtracks/css/parser"
	pr "github.com/benoitkugler/gridtracks/css/properties"
	"github.com/benoitkugler/gridtracks/utils"
)

// maxRepetitions limits the number of tracks created by
// an integer repeat().
const maxRepetitions = 10000

// Parse “inflexible-breadth“.
func parseInflexibleBreadth(token Token) (pr.TrackBreadth, bool) {
	switch getKeyword(token) {
	case "auto":
		return pr.Auto, true
	case "min-content":
		return pr.MinContent, true
	case "max-content":
		return pr.MaxContent, true
	case "":
		length := getLength(token, false, true)
		if !length.IsNone() {
			return pr.Length(length), true
		}
	}
	return pr.TrackBreadth{}, false
}

// Parse “track-breadth“.
func parseTrackBreadth(token Token) (pr.TrackBreadth, bool) {
	if dim, ok := token.(pa.Dimension); ok && dim.Value >= 0 && dim.Unit == "fr" {
		return pr.Flex(dim.Value), true
	}
	return parseInflexibleBreadth(token)
}

// Parse “track-size“.
func parseTrackSize(token Token) (pr.TrackSize, bool) {
	if trackBreadth, ok := parseTrackBreadth(token); ok {
		return pr.Single(trackBreadth), true
	}
	name, args := pa.ParseFunction(token)
	switch name {
	case "minmax":
		if len(args) == 2 && len(args[0]) == 1 && len(args[1]) == 1 {
			inflexibleBreadth, ok1 := parseInflexibleBreadth(args[0][0])
			trackBreadth, ok2 := parseTrackBreadth(args[1][0])
			if ok1 && ok2 {
				return pr.Minmax(inflexibleBreadth, trackBreadth), true
			}
		}
	case "fit-content":
		if len(args) == 1 && len(args[0]) == 1 {
			length := getLength(args[0][0], false, true)
			if !length.IsNone() {
				return pr.FitContent(length), true
			}
		}
	}
	return pr.TrackSize{}, false
}

// Parse “fixed-size“, that is a track size with
// at least one length-percentage component, and no
// flexible minimum.
func parseFixedSize(token Token) (pr.TrackSize, bool) {
	length := getLength(token, false, true)
	if !length.IsNone() {
		return pr.Single(pr.Length(length)), true
	}
	name, args := pa.ParseFunction(token)
	if name == "minmax" && len(args) == 2 && len(args[0]) == 1 && len(args[1]) == 1 {
		minBreadth, ok := parseInflexibleBreadth(args[0][0])
		if !ok {
			return pr.TrackSize{}, false
		}
		maxBreadth, ok := parseTrackBreadth(args[1][0])
		if !ok {
			return pr.TrackSize{}, false
		}
		if minBreadth.IsFixed() || maxBreadth.IsFixed() {
			return pr.Minmax(minBreadth, maxBreadth), true
		}
	}
	return pr.TrackSize{}, false
}

// parseLineNames returns false if [token] is not a valid “line-names“.
// Line names are not used for track sizing and are discarded.
func parseLineNames(token Token) bool {
	block, ok := token.(pa.SquareBracketsBlock)
	if !ok {
		return false
	}
	for _, token := range block.Content {
		switch token.(type) {
		case pa.Ident, pa.Whitespace, pa.Comment:
		default:
			return false
		}
	}
	return true
}

// parseRepeatCount returns the number of repetitions,
// or the kind of auto repetition.
func parseRepeatCount(tokens []Token) (count int, kind pr.RepetitionKind, ok bool) {
	if len(tokens) != 1 {
		return 0, 0, false
	}
	if nb, isNumber := tokens[0].(pa.Number); isNumber && nb.IsInteger && nb.Value >= 1 {
		return int(nb.Value), 0, true
	}
	switch getKeyword(tokens[0]) {
	case "auto-fill":
		return 0, pr.AutoFill, true
	case "auto-fit":
		return 0, pr.AutoFit, true
	}
	return 0, 0, false
}

// trackList accumulates the tracks of a “grid-template-*“ value.
type trackList struct {
	out            []pr.TrackSizingFunction
	lastIsLineName bool
	hasAutoRepeat  bool
	hasNonFixed    bool // a track which is not a <fixed-size>
}

// parseSize parses the track sizes found in and outside
// a repeat() notation.
func (tl *trackList) parseSize(token Token) (pr.TrackSize, bool) {
	if fixedSize, ok := parseFixedSize(token); ok {
		return fixedSize, true
	}
	if trackSize, ok := parseTrackSize(token); ok {
		tl.hasNonFixed = true
		return trackSize, true
	}
	return pr.TrackSize{}, false
}

// parseRepeat handles a repeat() function, already split on commas.
func (tl *trackList) parseRepeat(args [][]Token) bool {
	if len(args) != 2 || len(args[1]) == 0 {
		return false
	}
	count, kind, ok := parseRepeatCount(args[0])
	if !ok {
		return false
	}

	var (
		tracks         []pr.TrackSize
		lastIsLineName = false
	)
	for _, arg := range args[1] {
		if parseLineNames(arg) {
			if lastIsLineName {
				return false
			}
			lastIsLineName = true
			continue
		}
		lastIsLineName = false
		trackSize, ok := tl.parseSize(arg)
		if !ok {
			return false
		}
		tracks = append(tracks, trackSize)
	}
	if len(tracks) == 0 {
		return false
	}

	if kind != 0 {
		if tl.hasAutoRepeat {
			return false
		}
		tl.hasAutoRepeat = true
		tl.out = append(tl.out, pr.Repeat(kind, tracks...))
		return true
	}

	// integer repetitions are expanded
	count = utils.MinInt(count, maxRepetitions/len(tracks))
	for i := 0; i < count; i++ {
		for _, track := range tracks {
			tl.out = append(tl.out, track)
		}
	}
	return true
}

// parseTrackList parses a “grid-template-columns“ or “grid-template-rows“
// value. 'none' is returned as an empty (non nil) list.
func parseTrackList(tokens []Token) ([]pr.TrackSizingFunction, bool) {
	if len(tokens) == 0 {
		return nil, false
	}
	if getSingleKeyword(tokens) == "none" {
		return []pr.TrackSizingFunction{}, true
	}

	var tl trackList
	for _, token := range tokens {
		if parseLineNames(token) {
			if tl.lastIsLineName {
				return nil, false
			}
			tl.lastIsLineName = true
			continue
		}
		tl.lastIsLineName = false

		if trackSize, ok := tl.parseSize(token); ok {
			tl.out = append(tl.out, trackSize)
			continue
		}
		if name, args := pa.ParseFunction(token); name == "repeat" && tl.parseRepeat(args) {
			continue
		}
		return nil, false
	}
	// <auto-track-list> only accepts fixed sizes
	if tl.hasAutoRepeat && tl.hasNonFixed {
		return nil, false
	}
	if len(tl.out) == 0 { // only line names
		return nil, false
	}
	return tl.out, true
}

// “grid-template-columns“ and “grid-template-rows“ validation.
func templateValidator(field func(*pr.Style) *[]pr.TrackSizingFunction) validator {
	return func(tokens []Token, style *pr.Style) bool {
		template, ok := parseTrackList(tokens)
		if !ok {
			return false
		}
		if len(template) == 0 {
			template = nil
		}
		*field(style) = template
		return true
	}
}

// “grid-auto-columns“ and “grid-auto-rows“ validation.
func autoValidator(field func(*pr.Style) *[]pr.TrackSize) validator {
	return func(tokens []Token, style *pr.Style) bool {
		var out []pr.TrackSize
		for _, token := range tokens {
			trackSize, ok := parseTrackSize(token)
			if !ok {
				return false
			}
			out = append(out, trackSize)
		}
		*field(style) = out
		return true
	}
}
