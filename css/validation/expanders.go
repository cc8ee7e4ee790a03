package validation

import (
	"errors"
	"fmt"
	"strings"

	pa "github.com/benoitkugler/gridtracks/css/parser"
)

type namedTokens struct {
	name   string
	tokens []Token
}

// expander splits a shorthand property into its longhands,
// which are then validated as usual.
type expander func(name string, tokens []Token) ([]namedTokens, error)

var expanders = map[string]expander{
	"padding":       expandFourSides,
	"border-width":  expandFourSides,
	"gap":           expandGap,
	"grid-gap":      expandGap,
	"grid-template": expandGridTemplate,
}

// Expand properties setting a token for the four sides of a box.
// "border-width", "padding"
func expandFourSides(name string, tokens []Token) ([]namedTokens, error) {
	// Define expanded names
	indexM := strings.LastIndex(name, "-")
	var expandedNames [4]string
	for i, suffix := range [4]string{"-top", "-right", "-bottom", "-left"} {
		if indexM == -1 {
			expandedNames[i] = name + suffix
		} else {
			// eg. border-width becomes border-*-width, not border-width-*
			expandedNames[i] = name[:indexM] + suffix + name[indexM:]
		}
	}

	// Make sure we have 4 tokens
	switch len(tokens) {
	case 1:
		tokens = []Token{tokens[0], tokens[0], tokens[0], tokens[0]}
	case 2:
		tokens = []Token{tokens[0], tokens[1], tokens[0], tokens[1]} // (bottom, left) defaults to (top, right)
	case 3:
		tokens = append(tokens[:3:3], tokens[1]) // left defaults to right
	case 4:
	default:
		return nil, fmt.Errorf("expected 1 to 4 token components got %d", len(tokens))
	}

	out := make([]namedTokens, 4)
	for i, expandedName := range expandedNames {
		out[i] = namedTokens{name: expandedName, tokens: []Token{tokens[i]}}
	}
	return out, nil
}

// Expand the “gap“ property: <row-gap> <column-gap>?
func expandGap(_ string, tokens []Token) ([]namedTokens, error) {
	switch len(tokens) {
	case 1:
		return []namedTokens{{"row-gap", tokens}, {"column-gap", tokens}}, nil
	case 2:
		return []namedTokens{{"row-gap", tokens[:1]}, {"column-gap", tokens[1:]}}, nil
	default:
		return nil, fmt.Errorf("expected 1 or 2 token components got %d", len(tokens))
	}
}

// Expand the “grid-template“ property, restricted to
// 'none' and <grid-template-rows> / <grid-template-columns>.
func expandGridTemplate(_ string, tokens []Token) ([]namedTokens, error) {
	if getSingleKeyword(tokens) == "none" {
		return []namedTokens{{"grid-template-rows", tokens}, {"grid-template-columns", tokens}}, nil
	}
	for i, token := range tokens {
		if lit, ok := token.(pa.Literal); ok && lit.Value == "/" {
			rows, columns := tokens[:i], tokens[i+1:]
			if len(rows) == 0 || len(columns) == 0 {
				return nil, errors.New("expected value on both sides of '/'")
			}
			return []namedTokens{{"grid-template-rows", rows}, {"grid-template-columns", columns}}, nil
		}
	}
	return nil, errors.New("grid template areas are not supported")
}
