package validation

import (
	"testing"

	pr "github.com/benoitkugler/gridtracks/css/properties"
	tu "github.com/benoitkugler/gridtracks/utils/testutils"
)

func TestExpandFourSides(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	for _, test := range []struct {
		css      string
		expected [4]pr.Dimension
	}{
		{"padding: 1px", [4]pr.Dimension{px(1), px(1), px(1), px(1)}},
		{"padding: 1px 2px", [4]pr.Dimension{px(1), px(2), px(1), px(2)}},
		{"padding: 1px 2px 3px", [4]pr.Dimension{px(1), px(2), px(3), px(2)}},
		{"padding: 1px 2px 3px 4%", [4]pr.Dimension{px(1), px(2), px(3), pr.NewDim(4, pr.Perc)}},
		{"padding: 1px; padding-left: 7px", [4]pr.Dimension{px(1), px(1), px(1), px(7)}},
	} {
		tu.AssertEqual(t, ParseStyle(test.css).Padding, test.expected)
	}

	style := ParseStyle("border-width: thin 2px")
	tu.AssertEqual(t, style.BorderWidth, [4]pr.Dimension{px(1), px(2), px(1), px(2)})
}

func TestExpandFourSidesNames(t *testing.T) {
	out, err := expandFourSides("border-width", tokens("1px"))
	tu.AssertNoErr(t, err)
	var names []string
	for _, nt := range out {
		names = append(names, nt.name)
	}
	tu.AssertEqual(t, names, []string{"border-top-width", "border-right-width", "border-bottom-width", "border-left-width"})
}

func TestInvalidShorthands(t *testing.T) {
	capt := tu.CaptureLogs()
	style := ParseStyle("padding: 1px 2px 3px 4px 5px; padding: 1px -2px; gap: 1px 2px 3px; grid-template: 10px; grid-template: / 10px")
	capt.CheckLogs(t,
		"expected 1 to 4 token components got 5",
		"invalid value for padding-right",
		"expected 1 or 2 token components got 3",
		"grid template areas are not supported",
		"expected value on both sides of '/'",
	)
	// an invalid side invalidates the whole shorthand
	tu.AssertEqual(t, style.Padding, pr.NewStyle().Padding)
}

func TestExpandGap(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	style := ParseStyle("gap: 10px")
	tu.AssertEqual(t, [2]pr.Dimension{style.RowGap, style.ColumnGap}, [2]pr.Dimension{px(10), px(10)})

	style = ParseStyle("grid-gap: 10px 5%")
	tu.AssertEqual(t, [2]pr.Dimension{style.RowGap, style.ColumnGap}, [2]pr.Dimension{px(10), pr.NewDim(5, pr.Perc)})
}

func TestExpandGridTemplate(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	style := ParseStyle("grid-template: 10px 20px / repeat(auto-fit, 30px)")
	tu.AssertEqual(t, pr.TemplateString(style.GridTemplateRows), "10px 20px")
	tu.AssertEqual(t, pr.TemplateString(style.GridTemplateColumns), "repeat(auto-fit, 30px)")

	style = ParseStyle("grid-template: 1px / 2px; grid-template: none")
	tu.AssertEqual(t, style.GridTemplateRows == nil && style.GridTemplateColumns == nil, true)
}
