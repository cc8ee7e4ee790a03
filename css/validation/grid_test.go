package validation

import (
	"testing"

	pa "github.com/benoitkugler/gridtracks/css/parser"
	pr "github.com/benoitkugler/gridtracks/css/properties"
	tu "github.com/benoitkugler/gridtracks/utils/testutils"
)

func tokens(css string) []Token {
	return pa.RemoveWhitespace(pa.Tokenize([]byte(css), true))
}

func TestTrackList(t *testing.T) {
	for _, test := range []struct {
		css      string
		expected string
	}{
		{"none", "none"},
		{"100px 1fr auto", "100px 1fr auto"},
		{"[a] 10% [b c] min-content [d]", "10% min-content"},
		{"minmax(10px, 1fr) fit-content(2in) max-content", "minmax(10px, 1fr) fit-content(2in) max-content"},
		{"repeat(2, 10px [a] 1fr)", "10px 1fr 10px 1fr"},
		{"10px repeat(auto-fill, 20px minmax(30px, auto)) 40px", "10px repeat(auto-fill, 20px minmax(30px, auto)) 40px"},
		{"repeat(auto-fit, minmax(auto, 10px))", "repeat(auto-fit, minmax(auto, 10px))"},
		{"REPEAT(Auto-Fit, 1px)", "repeat(auto-fit, 1px)"},
	} {
		template, ok := parseTrackList(tokens(test.css))
		if !ok {
			t.Fatalf("%s should be valid", test.css)
		}
		tu.AssertEqual(t, pr.TemplateString(template), test.expected)
	}
}

func TestTrackListValues(t *testing.T) {
	template, _ := parseTrackList(tokens("10% repeat(auto-fill, minmax(10px, 2fr))"))
	tu.AssertEqual(t, template, []pr.TrackSizingFunction{
		pr.Single(pr.Length(pr.NewDim(10, pr.Perc))),
		pr.Repeat(pr.AutoFill, pr.Minmax(pr.Length(px(10)), pr.Flex(2))),
	})
	// auto-repeat is not allowed with a flexible track
	_, ok := parseTrackList(tokens("1fr repeat(auto-fill, minmax(10px, 2fr))"))
	tu.AssertEqual(t, ok, false)
}

func TestInvalidTrackList(t *testing.T) {
	for _, css := range []string{
		"",
		"[a]",
		"[a] [b] 10px",
		"-10px",
		"1fr 2",
		"none 10px",
		"minmax(1fr, 10px)",
		"minmax(10px)",
		"fit-content(1fr)",
		"repeat(0, 10px)",
		"repeat(1.5, 10px)",
		"repeat(2)",
		"repeat(2, [a])",
		"repeat(2, 10px, 20px)",
		"repeat(auto-fill, 1fr)",
		"repeat(auto-fill, 10px) repeat(auto-fit, 10px)",
		"repeat(auto-fill, 10px) auto",
		"fit-content(10px) repeat(auto-fill, 10px)",
		"repeat(2, repeat(2, 10px))",
		"[a 1]",
	} {
		if _, ok := parseTrackList(tokens(css)); ok {
			t.Fatalf("%q should be invalid", css)
		}
	}
}

func TestRepeatLimit(t *testing.T) {
	template, ok := parseTrackList(tokens("repeat(100000, 1px 2px)"))
	tu.AssertEqual(t, ok, true)
	tu.AssertEqual(t, len(template), maxRepetitions)
}

func TestGridTemplateProperties(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	style := ParseStyle(`grid-template-columns: repeat(auto-fill, 40px); grid-template-rows: 10px 20px;
		grid-auto-columns: 1fr minmax(auto, 30px); grid-auto-rows: fit-content(5px)`)
	tu.AssertEqual(t, pr.TemplateString(style.GridTemplateColumns), "repeat(auto-fill, 40px)")
	tu.AssertEqual(t, pr.TemplateString(style.GridTemplateRows), "10px 20px")
	tu.AssertEqual(t, style.GridAutoColumns, []pr.TrackSize{
		pr.Single(pr.Flex(1)),
		pr.Minmax(pr.Auto, pr.Length(px(30))),
	})
	tu.AssertEqual(t, style.GridAutoRows, []pr.TrackSize{pr.FitContent(px(5))})

	// none resets the template
	style = ParseStyle("grid-template-rows: 10px; grid-template-rows: none")
	tu.AssertEqual(t, style.GridTemplateRows == nil, true)
}

func TestInvalidGridProperties(t *testing.T) {
	capt := tu.CaptureLogs()
	style := ParseStyle("grid-template-columns: 10px; grid-template-columns: repeat(auto-fill, auto); grid-auto-rows: repeat(2, 1px)")
	capt.CheckLogs(t,
		"invalid value for grid-template-columns",
		"invalid value for grid-auto-rows",
	)
	tu.AssertEqual(t, pr.TemplateString(style.GridTemplateColumns), "10px")
	tu.AssertEqual(t, style.GridAutoRows == nil, true)
}
