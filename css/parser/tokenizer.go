package parser

import (
	"bytes"
	"regexp"
	"strconv"
	"unicode/utf8"

	"github.com/benoitkugler/gridtracks/utils"
)

var (
	numberRe = regexp.MustCompile(`^[-+]?([0-9]*\.)?[0-9]+([eE][+-]?[0-9]+)?`)

	closingChars = map[byte]byte{'(': ')', '[': ']', '{': '}'}
)

type tokenizer struct {
	css         []byte
	pos         int
	line        int
	lastNewline int // index of the last '\n' seen
}

// Tokenize parses a list of component values.
// If `skipComments` is true, ignore CSS comments :
// the return values (and recursively its blocks and functions)
// will not contain any `Comment` object.
func Tokenize(css []byte, skipComments bool) []Token {
	css = bytes.ReplaceAll(css, []byte("\u0000"), []byte("\uFFFD"))
	css = bytes.ReplaceAll(css, []byte("\r\n"), []byte("\n"))
	css = bytes.ReplaceAll(css, []byte("\r"), []byte("\n"))
	css = bytes.ReplaceAll(css, []byte("\f"), []byte("\n"))

	tk := tokenizer{css: css, line: 1, lastNewline: -1}
	out, _ := tk.consumeUntil(0, skipComments)
	return out
}

func (tk *tokenizer) position() Pos {
	return Pos{Line: tk.line, Column: tk.pos - tk.lastNewline}
}

// advance moves the cursor of [n] bytes, tracking lines.
func (tk *tokenizer) advance(n int) {
	for _, c := range tk.css[tk.pos : tk.pos+n] {
		if c == '\n' {
			tk.line++
		}
	}
	if i := bytes.LastIndexByte(tk.css[tk.pos:tk.pos+n], '\n'); i != -1 {
		tk.lastNewline = tk.pos + i
	}
	tk.pos += n
}

// consumeUntil reads tokens until [endChar] (excluded) or EOF,
// and returns false if EOF was reached first.
// The top level [endChar] is 0.
func (tk *tokenizer) consumeUntil(endChar byte, skipComments bool) (out []Token, closed bool) {
	css := tk.css
	for tk.pos < len(css) {
		tokenPos := tk.position()
		start := tk.pos
		c := css[tk.pos]

		if endChar != 0 && c == endChar {
			tk.advance(1)
			return out, true
		}

		switch {
		case c == ' ' || c == '\n' || c == '\t':
			end := tk.pos
			for end < len(css) && (css[end] == ' ' || css[end] == '\n' || css[end] == '\t') {
				end++
			}
			tk.advance(end - tk.pos)
			out = append(out, Whitespace{pos: tokenPos, Value: string(css[start:tk.pos])})
		case bytes.HasPrefix(css[tk.pos:], []byte("/*")):
			index := bytes.Index(css[tk.pos+2:], []byte("*/"))
			if index == -1 {
				tk.advance(len(css) - tk.pos)
				if !skipComments {
					out = append(out, Comment{pos: tokenPos, Value: string(css[start+2:])})
				}
				continue
			}
			tk.advance(index + 4)
			if !skipComments {
				out = append(out, Comment{pos: tokenPos, Value: string(css[start+2 : start+2+index])})
			}
		case isIdentStart(css, tk.pos):
			value := consumeIdent(css, tk.pos)
			tk.advance(len(value))
			if tk.pos < len(css) && css[tk.pos] == '(' {
				tk.advance(1)
				args, closed := tk.consumeUntil(')', skipComments)
				out = append(out, FunctionBlock{pos: tokenPos, Name: utils.AsciiLower(value), Arguments: args})
				if !closed {
					out = append(out, ParseError{pos: tokenPos, Message: "eof in function " + value})
				}
				continue
			}
			out = append(out, Ident{pos: tokenPos, Value: utils.AsciiLower(value)})
		case numberRe.Match(css[tk.pos:]):
			out = append(out, tk.consumeNumeric(tokenPos))
		case c == '(' || c == '[' || c == '{':
			tk.advance(1)
			content, closed := tk.consumeUntil(closingChars[c], skipComments)
			switch c {
			case '(':
				out = append(out, ParenthesesBlock{pos: tokenPos, Content: content})
			case '[':
				out = append(out, SquareBracketsBlock{pos: tokenPos, Content: content})
			case '{':
				out = append(out, CurlyBracketsBlock{pos: tokenPos, Content: content})
			}
			if !closed {
				out = append(out, ParseError{pos: tokenPos, Message: "eof in block"})
			}
		case c == ')' || c == ']' || c == '}':
			tk.advance(1)
			out = append(out, ParseError{pos: tokenPos, Message: "Unmatched " + string(rune(c))})
		case c == '"' || c == '\'':
			value, ok := tk.consumeQuotedString()
			if !ok {
				out = append(out, ParseError{pos: tokenPos, Message: "bad string token"})
				continue
			}
			out = append(out, String{pos: tokenPos, Value: value})
		default:
			_, w := utf8.DecodeRune(css[tk.pos:])
			tk.advance(w)
			out = append(out, Literal{pos: tokenPos, Value: string(css[start:tk.pos])})
		}
	}
	return out, endChar == 0
}

func (tk *tokenizer) consumeNumeric(tokenPos Pos) Token {
	match := numberRe.Find(tk.css[tk.pos:])
	repr := string(match)
	tk.advance(len(match))
	value, _ := strconv.ParseFloat(repr, 32)
	if value == 0 {
		value = 0 // workaround -0
	}
	_, err := strconv.ParseInt(repr, 10, 0)
	n := NumericToken{pos: tokenPos, Representation: repr, IsInteger: err == nil, Value: utils.Fl(value)}
	if tk.pos < len(tk.css) && isIdentStart(tk.css, tk.pos) {
		unit := consumeIdent(tk.css, tk.pos)
		tk.advance(len(unit))
		return Dimension{NumericToken: n, Unit: utils.AsciiLower(unit)}
	} else if tk.pos < len(tk.css) && tk.css[tk.pos] == '%' {
		tk.advance(1)
		return Percentage(n)
	}
	return Number(n)
}

// consumeQuotedString returns false for an unescaped newline.
// Escapes are kept as is.
func (tk *tokenizer) consumeQuotedString() (string, bool) {
	quote := tk.css[tk.pos]
	end := tk.pos + 1
	for end < len(tk.css) {
		switch tk.css[end] {
		case quote:
			value := string(tk.css[tk.pos+1 : end])
			tk.advance(end + 1 - tk.pos)
			return value, true
		case '\\':
			end += 2
			continue
		case '\n':
			tk.advance(end - tk.pos)
			return "", false
		}
		end++
	}
	end = utils.MinInt(end, len(tk.css))
	value := string(tk.css[tk.pos+1 : end])
	tk.advance(end - tk.pos)
	return value, true // EOF closes the string
}

// Return true if the given character is a name-start code point.
func isNameStart(css []byte, pos int) bool {
	// https://www.w3.org/TR/css-syntax-3/#name-start-code-point
	c, _ := utf8.DecodeRune(css[pos:])
	return c > 0x7F || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_'
}

// Return true if the given position is the start of a CSS identifier.
// Escapes are not supported.
func isIdentStart(css []byte, pos int) bool {
	// https://www.w3.org/TR/css-syntax-3/#would-start-an-identifier
	if isNameStart(css, pos) {
		return true
	} else if css[pos] == '-' {
		pos += 1
		return pos < len(css) && (isNameStart(css, pos) || css[pos] == '-')
	}
	return false
}

func consumeIdent(css []byte, pos int) string {
	// http://dev.w3.org/csswg/css-syntax/#consume-a-name
	start := pos
	for pos < len(css) {
		c, w := utf8.DecodeRune(css[pos:])
		if 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' || c == '-' || c == '_' || c > 0x7F {
			pos += w
		} else {
			break
		}
	}
	return string(css[start:pos])
}
