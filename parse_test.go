package deck

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	const config = `{
		"presentation": [
			{"type": "title", "title": "Quarterly Report", "content": "Q1 2026"},
			{"type": "text", "title": "Summary", "content": "All targets met."},
			{"type": "list", "title": "Highlights", "content": [
				{"level": 0, "text": "A"},
				{"level": 1, "text": "B"}
			]},
			{"type": "picture", "title": "Team", "content": "team.png"},
			{"type": "plot", "title": "Velocity", "configuration": {"x-label": "time (s)", "y-label": "speed"}}
		]
	}`

	expected := &Deck{
		Slides: []Slide{
			{Type: TypeTitle, Title: "Quarterly Report", Text: "Q1 2026"},
			{Type: TypeText, Title: "Summary", Text: "All targets met."},
			{Type: TypeList, Title: "Highlights", Items: []ListItem{
				{Level: 0, Text: "A"},
				{Level: 1, Text: "B"},
			}},
			{Type: TypePicture, Title: "Team", ImagePath: "team.png"},
			{Type: TypePlot, Title: "Velocity", Plot: &PlotConfig{XLabel: "time (s)", YLabel: "speed"}},
		},
	}

	d, err := Parse(strings.NewReader(config))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(expected, d); diff != "" {
		t.Errorf("unexpected deck (-want +got):\n%s", diff)
	}
}

func TestParseBOM(t *testing.T) {
	d, err := Parse(strings.NewReader("\ufeff" + `{"presentation": []}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Slides) != 0 {
		t.Errorf("expected empty deck, got %d slides", len(d.Slides))
	}
}

func TestParsePlotDefaults(t *testing.T) {
	cases := []struct {
		name   string
		config string
		want   PlotConfig
	}{
		{
			"no configuration",
			`{"presentation": [{"type": "plot", "title": "p"}]}`,
			PlotConfig{XLabel: "x", YLabel: "y"},
		}, {
			"partial configuration",
			`{"presentation": [{"type": "plot", "title": "p", "configuration": {"x-label": "t"}}]}`,
			PlotConfig{XLabel: "t", YLabel: "y"},
		},
	}

	for _, tc := range cases {
		d, err := Parse(strings.NewReader(tc.config))
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if got := *d.Slides[0].Plot; got != tc.want {
			t.Errorf("%s: got %+v, expected %+v", tc.name, got, tc.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name   string
		config string
	}{
		{"empty input", ``},
		{"invalid json", `{`},
		{"missing presentation key", `{"slides": []}`},
		{"unknown type", `{"presentation": [{"type": "foo", "title": "x", "content": "y"}]}`},
		{"missing content", `{"presentation": [{"type": "text", "title": "x"}]}`},
		{"content not a string", `{"presentation": [{"type": "title", "title": "x", "content": 3}]}`},
		{"empty image path", `{"presentation": [{"type": "picture", "title": "x", "content": ""}]}`},
		{"list content not a list", `{"presentation": [{"type": "list", "title": "x", "content": "a"}]}`},
		{"list item missing level", `{"presentation": [{"type": "list", "title": "x", "content": [{"text": "a"}]}]}`},
		{"list item missing text", `{"presentation": [{"type": "list", "title": "x", "content": [{"level": 0}]}]}`},
	}

	for _, tc := range cases {
		if _, err := Parse(strings.NewReader(tc.config)); err == nil {
			t.Errorf("%s: expected an error", tc.name)
		}
	}
}
