package parser

import (
	"strings"
)

// Serialize writes back [l] as CSS text. The output is not
// guaranteed to tokenize to the same list, but is good enough
// for error messages.
func Serialize(l []Token) string {
	var w strings.Builder
	serializeTo(l, &w)
	return w.String()
}

func serializeTo(l []Token, w *strings.Builder) {
	for _, token := range l {
		switch token := token.(type) {
		case Whitespace:
			w.WriteByte(' ')
		case Comment:
			w.WriteString("/*" + token.Value + "*/")
		case Ident:
			w.WriteString(token.Value)
		case Number:
			w.WriteString(token.Representation)
		case Percentage:
			w.WriteString(token.Representation + "%")
		case Dimension:
			w.WriteString(token.Representation + token.Unit)
		case String:
			w.WriteString(`"` + strings.ReplaceAll(token.Value, `"`, `\"`) + `"`)
		case Literal:
			w.WriteString(token.Value)
		case FunctionBlock:
			w.WriteString(token.Name + "(")
			serializeTo(token.Arguments, w)
			w.WriteByte(')')
		case ParenthesesBlock:
			w.WriteByte('(')
			serializeTo(token.Content, w)
			w.WriteByte(')')
		case SquareBracketsBlock:
			w.WriteByte('[')
			serializeTo(token.Content, w)
			w.WriteByte(']')
		case CurlyBracketsBlock:
			w.WriteByte('{')
			serializeTo(token.Content, w)
			w.WriteByte('}')
		}
	}
}
