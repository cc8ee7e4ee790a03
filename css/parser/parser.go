package parser

import (
	"fmt"

	"github.com/benoitkugler/gridtracks/utils"
)

// Declaration is a `name: value` pair, as found in
// a style attribute.
type Declaration struct {
	Name      string // lowered
	Value     []Token
	pos       Pos
	Important bool
}

func (d Declaration) Pos() Pos { return d.pos }

// ParseDeclarationListString tokenizes `css` and calls [ParseDeclarationList].
func ParseDeclarationListString(css string) ([]Declaration, []ParseError) {
	return ParseDeclarationList(Tokenize([]byte(css), true))
}

// ParseDeclarationList parses a list of declarations separated by ';',
// like the content of a “style“ attribute.
//
// Invalid declarations are reported as errors and skipped, the
// valid ones are still returned.
func ParseDeclarationList(input []Token) (out []Declaration, errs []ParseError) {
	var current []Token
	flush := func() {
		tokens := current
		current = nil
		if len(RemoveWhitespace(tokens)) == 0 {
			return
		}
		decl, err := parseDeclaration(tokens)
		if err != nil {
			errs = append(errs, *err)
			return
		}
		out = append(out, decl)
	}
	for _, token := range input {
		if lit, ok := token.(Literal); ok && lit.Value == ";" {
			flush()
			continue
		}
		current = append(current, token)
	}
	flush()
	return out, errs
}

// parseDeclaration expects at least one significant token.
func parseDeclaration(tokens []Token) (Declaration, *ParseError) {
	i := 0
	for !IsSignificant(tokens[i]) {
		i++
	}
	name, ok := tokens[i].(Ident)
	if !ok {
		return Declaration{}, &ParseError{
			pos:     tokens[i].Pos(),
			Message: fmt.Sprintf("Expected <ident> for declaration name, got %s.", tokens[i].Kind()),
		}
	}
	i++
	for i < len(tokens) && !IsSignificant(tokens[i]) {
		i++
	}
	if i == len(tokens) {
		return Declaration{}, &ParseError{pos: name.pos, Message: "Expected ':' after declaration name, got EOF"}
	}
	if lit, ok := tokens[i].(Literal); !ok || lit.Value != ":" {
		return Declaration{}, &ParseError{
			pos:     tokens[i].Pos(),
			Message: fmt.Sprintf("Expected ':' after declaration name, got %s.", tokens[i].Kind()),
		}
	}
	value := tokens[i+1:]
	for _, token := range value {
		if err, ok := token.(ParseError); ok {
			return Declaration{}, &err
		}
	}

	// look for a trailing !important
	significant := RemoveWhitespace(value)
	important := false
	if L := len(significant); L >= 2 {
		bang, isLiteral := significant[L-2].(Literal)
		ident, isIdent := significant[L-1].(Ident)
		if isLiteral && bang.Value == "!" && isIdent && utils.AsciiLower(ident.Value) == "important" {
			important = true
			for j := len(value) - 1; j >= 0; j-- {
				if value[j] == Token(bang) {
					value = value[:j]
					break
				}
			}
		}
	}

	return Declaration{pos: name.pos, Name: name.Value, Value: value, Important: important}, nil
}
