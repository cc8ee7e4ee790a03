package parser

import (
	"fmt"

	"github.com/benoitkugler/gridtracks/utils"
)

// Pos is the position of a token in the input,
// with 1-based line and column.
type Pos struct {
	Line, Column int
}

func (p Pos) String() string { return fmt.Sprintf("%d:%d", p.Line, p.Column) }

type Kind uint8

const (
	KWhitespace Kind = iota + 1
	KComment
	KIdent
	KNumber
	KPercentage
	KDimension
	KString
	KLiteral
	KFunctionBlock
	KParenthesesBlock
	KSquareBracketsBlock
	KCurlyBracketsBlock
	KParseError
)

func (k Kind) String() string {
	switch k {
	case KWhitespace:
		return "whitespace"
	case KComment:
		return "comment"
	case KIdent:
		return "ident"
	case KNumber:
		return "number"
	case KPercentage:
		return "percentage"
	case KDimension:
		return "dimension"
	case KString:
		return "string"
	case KLiteral:
		return "literal"
	case KFunctionBlock:
		return "function"
	case KParenthesesBlock:
		return "() block"
	case KSquareBracketsBlock:
		return "[] block"
	case KCurlyBracketsBlock:
		return "{} block"
	case KParseError:
		return "error"
	default:
		return "<invalid token>"
	}
}

// Token is a CSS component value.
type Token interface {
	Pos() Pos
	Kind() Kind
}

type (
	Whitespace struct {
		Value string
		pos   Pos
	}
	Comment struct {
		Value string
		pos   Pos
	}
	// Ident value is lowered for ASCII letters.
	Ident struct {
		Value string
		pos   Pos
	}
	NumericToken struct {
		Representation string
		pos            Pos
		Value          utils.Fl
		IsInteger      bool
	}
	Number     NumericToken
	Percentage NumericToken
	Dimension  struct {
		Unit string // lowered
		NumericToken
	}
	String struct {
		Value string
		pos   Pos
	}
	// Literal is a single char like ',' or ':'.
	Literal struct {
		Value string
		pos   Pos
	}
	FunctionBlock struct {
		Name      string // lowered
		Arguments []Token
		pos       Pos
	}
	ParenthesesBlock struct {
		Content []Token
		pos     Pos
	}
	SquareBracketsBlock struct {
		Content []Token
		pos     Pos
	}
	CurlyBracketsBlock struct {
		Content []Token
		pos     Pos
	}
	ParseError struct {
		Message string
		pos     Pos
	}
)

func (t Whitespace) Pos() Pos          { return t.pos }
func (t Comment) Pos() Pos             { return t.pos }
func (t Ident) Pos() Pos               { return t.pos }
func (t Number) Pos() Pos              { return t.pos }
func (t Percentage) Pos() Pos          { return t.pos }
func (t Dimension) Pos() Pos           { return t.pos }
func (t String) Pos() Pos              { return t.pos }
func (t Literal) Pos() Pos             { return t.pos }
func (t FunctionBlock) Pos() Pos       { return t.pos }
func (t ParenthesesBlock) Pos() Pos    { return t.pos }
func (t SquareBracketsBlock) Pos() Pos { return t.pos }
func (t CurlyBracketsBlock) Pos() Pos  { return t.pos }
func (t ParseError) Pos() Pos          { return t.pos }

func (Whitespace) Kind() Kind          { return KWhitespace }
func (Comment) Kind() Kind             { return KComment }
func (Ident) Kind() Kind               { return KIdent }
func (Number) Kind() Kind              { return KNumber }
func (Percentage) Kind() Kind          { return KPercentage }
func (Dimension) Kind() Kind           { return KDimension }
func (String) Kind() Kind              { return KString }
func (Literal) Kind() Kind             { return KLiteral }
func (FunctionBlock) Kind() Kind       { return KFunctionBlock }
func (ParenthesesBlock) Kind() Kind    { return KParenthesesBlock }
func (SquareBracketsBlock) Kind() Kind { return KSquareBracketsBlock }
func (CurlyBracketsBlock) Kind() Kind  { return KCurlyBracketsBlock }
func (ParseError) Kind() Kind          { return KParseError }

func (t ParseError) Error() string { return fmt.Sprintf("%s at %s", t.Message, t.pos) }

// IsSignificant returns false for whitespace and comments.
func IsSignificant(t Token) bool {
	k := t.Kind()
	return k != KWhitespace && k != KComment
}

// RemoveWhitespace returns the significant tokens of [tokens].
func RemoveWhitespace(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		if IsSignificant(t) {
			out = append(out, t)
		}
	}
	return out
}

// SplitOnComma splits [tokens] on top level commas,
// removing whitespace.
func SplitOnComma(tokens []Token) [][]Token {
	var (
		out     [][]Token
		current []Token
	)
	for _, t := range tokens {
		if lit, ok := t.(Literal); ok && lit.Value == "," {
			out = append(out, current)
			current = nil
			continue
		}
		if IsSignificant(t) {
			current = append(current, t)
		}
	}
	return append(out, current)
}

// ParseFunction returns the lowered name and the comma separated
// arguments of a function token, or an empty name if [token]
// is not a function.
func ParseFunction(token Token) (name string, args [][]Token) {
	fn, ok := token.(FunctionBlock)
	if !ok {
		return "", nil
	}
	return fn.Name, SplitOnComma(fn.Arguments)
}
