// Package validation converts CSS declarations into the
// properties of a grid container.
//
// Invalid declarations are ignored, and a warning is
// logged for each of them.
package validation

import (
	"errors"
	"fmt"
	"strings"

	pa "github.com/benoitkugler/gridtracks/css/parser"
	pr "github.com/benoitkugler/gridtracks/css/properties"
	"github.com/benoitkugler/gridtracks/logger"
	"github.com/benoitkugler/gridtracks/utils"
)

type Token = pa.Token

// validator checks [tokens] and, if valid, stores
// the value in [style]. [style] is not modified for invalid values.
type validator func(tokens []Token, style *pr.Style) bool

// longhand property validators
var validators = map[string]validator{
	"display": display,

	"width":      sizeValidator(widthHeight, func(s *pr.Style) *pr.DimOrS { return &s.Width }),
	"height":     sizeValidator(widthHeight, func(s *pr.Style) *pr.DimOrS { return &s.Height }),
	"min-width":  sizeValidator(widthHeight, func(s *pr.Style) *pr.DimOrS { return &s.MinWidth }),
	"min-height": sizeValidator(widthHeight, func(s *pr.Style) *pr.DimOrS { return &s.MinHeight }),
	"max-width":  sizeValidator(maxWidthHeight, func(s *pr.Style) *pr.DimOrS { return &s.MaxWidth }),
	"max-height": sizeValidator(maxWidthHeight, func(s *pr.Style) *pr.DimOrS { return &s.MaxHeight }),

	"padding-top":    sideValidator(padding, func(s *pr.Style) *[4]pr.Dimension { return &s.Padding }, 0),
	"padding-right":  sideValidator(padding, func(s *pr.Style) *[4]pr.Dimension { return &s.Padding }, 1),
	"padding-bottom": sideValidator(padding, func(s *pr.Style) *[4]pr.Dimension { return &s.Padding }, 2),
	"padding-left":   sideValidator(padding, func(s *pr.Style) *[4]pr.Dimension { return &s.Padding }, 3),

	"border-top-width":    sideValidator(borderWidth, func(s *pr.Style) *[4]pr.Dimension { return &s.BorderWidth }, 0),
	"border-right-width":  sideValidator(borderWidth, func(s *pr.Style) *[4]pr.Dimension { return &s.BorderWidth }, 1),
	"border-bottom-width": sideValidator(borderWidth, func(s *pr.Style) *[4]pr.Dimension { return &s.BorderWidth }, 2),
	"border-left-width":   sideValidator(borderWidth, func(s *pr.Style) *[4]pr.Dimension { return &s.BorderWidth }, 3),

	"row-gap":    gapValidator(func(s *pr.Style) *pr.Dimension { return &s.RowGap }),
	"column-gap": gapValidator(func(s *pr.Style) *pr.Dimension { return &s.ColumnGap }),

	"grid-template-columns": templateValidator(func(s *pr.Style) *[]pr.TrackSizingFunction { return &s.GridTemplateColumns }),
	"grid-template-rows":    templateValidator(func(s *pr.Style) *[]pr.TrackSizingFunction { return &s.GridTemplateRows }),
	"grid-auto-columns":     autoValidator(func(s *pr.Style) *[]pr.TrackSize { return &s.GridAutoColumns }),
	"grid-auto-rows":        autoValidator(func(s *pr.Style) *[]pr.TrackSize { return &s.GridAutoRows }),
}

// IsSupported returns true if [name] is a known longhand or shorthand property.
func IsSupported(name string) bool {
	_, isLonghand := validators[name]
	_, isShorthand := expanders[name]
	return isLonghand || isShorthand
}

// ParseStyle parses the content of a “style“ attribute and returns
// the resulting properties, starting from [pr.NewStyle].
func ParseStyle(css string) pr.Style {
	declarations, errs := pa.ParseDeclarationListString(css)
	for _, err := range errs {
		logger.WarningLogger.Printf("Error: %s \n", err.Error())
	}
	style := pr.NewStyle()
	ApplyDeclarations(&style, declarations)
	return style
}

// ApplyDeclarations validates and expands [declarations], storing the
// valid values in [style].
// !important declarations are applied after the normal ones.
//
// Log a warning for every ignored declaration.
func ApplyDeclarations(style *pr.Style, declarations []pa.Declaration) {
	for _, important := range [2]bool{false, true} {
		for _, declaration := range declarations {
			if declaration.Important != important {
				continue
			}
			if err := applyDeclaration(style, declaration); err != nil {
				logger.WarningLogger.Printf("Ignored `%s:%s` , %s. \n",
					declaration.Name, pa.Serialize(declaration.Value), err)
			}
		}
	}
}

func applyDeclaration(style *pr.Style, declaration pa.Declaration) error {
	name := utils.AsciiLower(declaration.Name)
	if strings.HasPrefix(name, "-") {
		return errors.New("prefixed properties are ignored")
	}

	tokens := pa.RemoveWhitespace(declaration.Value)
	// Having no tokens is allowed by grammar but refused by all
	// properties and expanders.
	if len(tokens) == 0 {
		return errors.New("no value")
	}

	if expander := expanders[name]; expander != nil {
		longhands, err := expander(name, tokens)
		if err != nil {
			return err
		}
		// validate everything before storing anything
		tmp := *style
		for _, longhand := range longhands {
			if err := validateLonghand(&tmp, longhand.name, longhand.tokens); err != nil {
				return err
			}
		}
		*style = tmp
		return nil
	}

	return validateLonghand(style, name, tokens)
}

func validateLonghand(style *pr.Style, name string, tokens []Token) error {
	function := validators[name]
	if function == nil {
		return errors.New("unknown property")
	}
	if !function(tokens, style) {
		return fmt.Errorf("invalid value for %s", name)
	}
	return nil
}

// If `token` is [pa.Ident], return its lower name.
// Otherwise return empty string.
func getKeyword(token Token) string {
	if ident, ok := token.(pa.Ident); ok {
		return utils.AsciiLower(ident.Value)
	}
	return ""
}

// If `tokens` is a 1-element list of [pa.Ident], return its name.
// Otherwise return empty string.
func getSingleKeyword(tokens []Token) string {
	if len(tokens) == 1 {
		return getKeyword(tokens[0])
	}
	return ""
}

// getLength returns an empty dimension for invalid tokens.
// A unitless zero is accepted as 0px.
func getLength(token Token, negative, percentage bool) pr.Dimension {
	switch token := token.(type) {
	case pa.Percentage:
		if percentage && (negative || token.Value >= 0) {
			return pr.NewDim(token.Value, pr.Perc)
		}
	case pa.Dimension:
		unit := pr.UnitFromString(token.Unit)
		isLength := unit != 0 && unit != pr.Perc && unit != pr.Fr
		if isLength && (negative || token.Value >= 0) {
			return pr.NewDim(token.Value, unit)
		}
	case pa.Number:
		if token.Value == 0 {
			return pr.NewDim(0, pr.Px)
		}
	}
	return pr.Dimension{}
}

func sizeValidator(parse func([]Token) pr.DimOrS, field func(*pr.Style) *pr.DimOrS) validator {
	return func(tokens []Token, style *pr.Style) bool {
		v := parse(tokens)
		if v.IsNone() {
			return false
		}
		*field(style) = v
		return true
	}
}

func sideValidator(parse func([]Token) pr.Dimension, field func(*pr.Style) *[4]pr.Dimension, side int) validator {
	return func(tokens []Token, style *pr.Style) bool {
		v := parse(tokens)
		if v.IsNone() {
			return false
		}
		field(style)[side] = v
		return true
	}
}

// Validation for the “width“ and “height“ properties,
// also used by “min-width“ and “min-height“.
func widthHeight(tokens []Token) pr.DimOrS {
	if len(tokens) != 1 {
		return pr.DimOrS{}
	}
	token := tokens[0]
	length := getLength(token, false, true)
	if !length.IsNone() {
		return length.ToValue()
	}
	if getKeyword(token) == "auto" {
		return pr.SToV("auto")
	}
	return pr.DimOrS{}
}

// Validation for the “max-width“ and “max-height“ properties.
func maxWidthHeight(tokens []Token) pr.DimOrS {
	if len(tokens) != 1 {
		return pr.DimOrS{}
	}
	token := tokens[0]
	length := getLength(token, false, true)
	if !length.IsNone() {
		return length.ToValue()
	}
	if getKeyword(token) == "none" {
		return pr.SToV("none")
	}
	return pr.DimOrS{}
}

// “padding-*“ properties validation.
func padding(tokens []Token) pr.Dimension {
	if len(tokens) != 1 {
		return pr.Dimension{}
	}
	return getLength(tokens[0], false, true)
}

// Widths of the border keywords, in pixels.
var borderWidthKeywords = map[string]pr.Fl{
	"thin":   1,
	"medium": 3,
	"thick":  5,
}

// “border-*-width“ properties validation.
func borderWidth(tokens []Token) pr.Dimension {
	if len(tokens) != 1 {
		return pr.Dimension{}
	}
	token := tokens[0]
	length := getLength(token, false, false)
	if !length.IsNone() {
		return length
	}
	if w, ok := borderWidthKeywords[getKeyword(token)]; ok {
		return pr.NewDim(w, pr.Px)
	}
	return pr.Dimension{}
}

// Validation for the “column-gap“ and "row-gap" properties.
// "normal" is 0 for grid containers.
func gapValidator(field func(*pr.Style) *pr.Dimension) validator {
	return func(tokens []Token, style *pr.Style) bool {
		if len(tokens) != 1 {
			return false
		}
		token := tokens[0]
		length := getLength(token, false, true)
		if length.IsNone() {
			if getKeyword(token) != "normal" {
				return false
			}
			length = pr.NewDim(0, pr.Px)
		}
		*field(style) = length
		return true
	}
}

var displayKeywords = utils.NewSet(
	"inline", "block", "inline-block", "flow-root", "flex", "inline-flex",
	"grid", "inline-grid", "table", "inline-table", "list-item", "contents", "none",
)

// “display“ property validation, restricted to the
// single keyword syntax plus “block grid“ and “inline grid“.
func display(tokens []Token, style *pr.Style) bool {
	var keyword string
	switch len(tokens) {
	case 1:
		keyword = getKeyword(tokens[0])
	case 2:
		switch [2]string{getKeyword(tokens[0]), getKeyword(tokens[1])} {
		case [2]string{"block", "grid"}, [2]string{"grid", "block"}:
			keyword = "grid"
		case [2]string{"inline", "grid"}, [2]string{"grid", "inline"}:
			keyword = "inline-grid"
		}
	}
	if !displayKeywords.Has(keyword) {
		return false
	}
	style.Display = keyword
	return true
}
