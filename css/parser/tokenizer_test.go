package parser

import (
	"testing"

	tu "github.com/benoitkugler/gridtracks/utils/testutils"
)

func kinds(tokens []Token) []Kind {
	out := make([]Kind, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind()
	}
	return out
}

func TestTokenizeTrackList(t *testing.T) {
	tokens := Tokenize([]byte("100px repeat(auto-fill, 10px 1fr) 25%"), true)
	tu.AssertEqual(t, kinds(tokens), []Kind{KDimension, KWhitespace, KFunctionBlock, KWhitespace, KPercentage})

	fn := tokens[2].(FunctionBlock)
	tu.AssertEqual(t, fn.Name, "repeat")
	tu.AssertEqual(t, kinds(fn.Arguments), []Kind{KIdent, KLiteral, KWhitespace, KDimension, KWhitespace, KDimension})
	tu.AssertEqual(t, fn.Arguments[0].(Ident).Value, "auto-fill")
	tu.AssertEqual(t, fn.Arguments[5].(Dimension).Unit, "fr")

	name, args := ParseFunction(fn)
	tu.AssertEqual(t, name, "repeat")
	tu.AssertEqual(t, len(args), 2)
	tu.AssertEqual(t, kinds(args[1]), []Kind{KDimension, KDimension})

	name, _ = ParseFunction(tokens[0])
	tu.AssertEqual(t, name, "")

	tu.AssertEqual(t, Serialize(tokens), "100px repeat(auto-fill, 10px 1fr) 25%")
}

func TestTokenizeNumbers(t *testing.T) {
	tokens := RemoveWhitespace(Tokenize([]byte("3 -2.5em +4 1.0 1e2px -0"), true))
	tu.AssertEqual(t, kinds(tokens), []Kind{KNumber, KDimension, KNumber, KNumber, KDimension, KNumber})

	dim := tokens[1].(Dimension)
	tu.AssertEqual(t, dim.Value, float32(-2.5))
	tu.AssertEqual(t, dim.Unit, "em")
	tu.AssertEqual(t, dim.IsInteger, false)

	tu.AssertEqual(t, tokens[0].(Number).IsInteger, true)
	tu.AssertEqual(t, tokens[2].(Number).Value, float32(4))
	tu.AssertEqual(t, tokens[3].(Number).IsInteger, false)
	tu.AssertEqual(t, tokens[3].(Number).Representation, "1.0")
	tu.AssertEqual(t, tokens[4].(Dimension).Value, float32(100))
	tu.AssertEqual(t, tokens[5].(Number).Value, float32(0))
}

func TestTokenizeCase(t *testing.T) {
	tokens := Tokenize([]byte("MinMax(10PX, Auto)"), true)
	fn := tokens[0].(FunctionBlock)
	tu.AssertEqual(t, fn.Name, "minmax")
	tu.AssertEqual(t, fn.Arguments[0].(Dimension).Unit, "px")
	tu.AssertEqual(t, fn.Arguments[3].(Ident).Value, "auto")
}

func TestTokenizeComments(t *testing.T) {
	css := []byte("a/* c */b /* unclosed")
	tu.AssertEqual(t, kinds(Tokenize(css, true)), []Kind{KIdent, KIdent, KWhitespace})

	tokens := Tokenize(css, false)
	tu.AssertEqual(t, kinds(tokens), []Kind{KIdent, KComment, KIdent, KWhitespace, KComment})
	tu.AssertEqual(t, tokens[1].(Comment).Value, " c ")
	tu.AssertEqual(t, tokens[4].(Comment).Value, " unclosed")
}

func TestTokenizePositions(t *testing.T) {
	tokens := RemoveWhitespace(Tokenize([]byte("a\n  b\r\nc(\n d)"), true))
	tu.AssertEqual(t, tokens[0].Pos(), Pos{Line: 1, Column: 1})
	tu.AssertEqual(t, tokens[1].Pos(), Pos{Line: 2, Column: 3})
	tu.AssertEqual(t, tokens[2].Pos(), Pos{Line: 3, Column: 1})
	arg := RemoveWhitespace(tokens[2].(FunctionBlock).Arguments)[0]
	tu.AssertEqual(t, arg.Pos(), Pos{Line: 4, Column: 2})
}

func TestTokenizeErrors(t *testing.T) {
	for _, test := range []struct {
		css     string
		message string
	}{
		{"a)", "Unmatched )"},
		{"minmax(1px", "eof in function minmax"},
		{"[a", "eof in block"},
		{"'abc\nd'", "bad string token"},
	} {
		var errs []ParseError
		for _, token := range Tokenize([]byte(test.css), true) {
			if err, ok := token.(ParseError); ok {
				errs = append(errs, err)
			}
		}
		if len(errs) == 0 {
			t.Fatalf("expected an error for %q", test.css)
		}
		tu.AssertEqual(t, errs[0].Message, test.message)
	}
}

func TestTokenizeStrings(t *testing.T) {
	tokens := RemoveWhitespace(Tokenize([]byte(`"a b" 'c\'d' "eof`), true))
	tu.AssertEqual(t, kinds(tokens), []Kind{KString, KString, KString})
	tu.AssertEqual(t, tokens[0].(String).Value, "a b")
	tu.AssertEqual(t, tokens[1].(String).Value, `c\'d`)
	tu.AssertEqual(t, tokens[2].(String).Value, "eof")
}

func TestSplitOnComma(t *testing.T) {
	tokens := Tokenize([]byte("a b, c,,d"), true)
	parts := SplitOnComma(tokens)
	tu.AssertEqual(t, len(parts), 4)
	tu.AssertEqual(t, kinds(parts[0]), []Kind{KIdent, KIdent})
	tu.AssertEqual(t, len(parts[2]), 0)
}
