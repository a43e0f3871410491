package markup_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-flux/pkg/dom"
	"github.com/goliatone/go-flux/pkg/markup"
)

func TestHTML(t *testing.T) {
	cases := []struct {
		name      string
		fragments []string
		values    []any
		want      string
	}{
		{
			name:      "nil renders empty",
			fragments: []string{"<a>", "</a>"},
			values:    []any{nil},
			want:      "<a></a>",
		},
		{
			name:      "mixed values",
			fragments: []string{"<h1>Count: ", " (", ")</h1>"},
			values:    []any{3, true},
			want:      "<h1>Count: 3 (true)</h1>",
		},
		{
			name:      "zero values are not dropped",
			fragments: []string{"[", "|", "]"},
			values:    []any{0, ""},
			want:      "[0|]",
		},
		{
			name:      "missing values",
			fragments: []string{"<p>", "</p>"},
			want:      "<p></p>",
		},
		{
			name:      "values beyond fragment count ignored",
			fragments: []string{"x"},
			values:    []any{"y", "z"},
			want:      "xy",
		},
		{
			name: "no fragments",
			want: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := markup.HTML(tc.fragments, tc.values...); got != tc.want {
				t.Fatalf("HTML() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestHTMLDoesNotEscape(t *testing.T) {
	got := markup.HTML([]string{"<p>", "</p>"}, "<b>raw</b>")
	if got != "<p><b>raw</b></p>" {
		t.Fatalf("values must be interpolated verbatim, got %q", got)
	}
}

func TestEscape(t *testing.T) {
	escaped := markup.Escape("<script>")
	if strings.ContainsAny(escaped, "<>") {
		t.Fatalf("escaped output still contains markup characters: %q", escaped)
	}

	doc := dom.NewDocument()
	body := doc.Body()
	if err := body.SetInnerHTML("<p>" + escaped + "</p>"); err != nil {
		t.Fatalf("set inner html: %v", err)
	}
	if got := body.TextContent(); got != "<script>" {
		t.Fatalf("escaped text should display as %q, got %q", "<script>", got)
	}
	if children := body.Children(); len(children) != 1 || children[0].TagName() != "p" {
		t.Fatalf("escaped text must not create elements")
	}
}

func TestEscapeEntities(t *testing.T) {
	cases := map[string]string{
		"":            "",
		"plain":       "plain",
		`a & "b" 'c'`: "a &amp; &#34;b&#34; &#39;c&#39;",
		"&amp;":       "&amp;amp;",
		"<img src=x>": "&lt;img src=x&gt;",
	}
	for input, want := range cases {
		if got := markup.Escape(input); got != want {
			t.Errorf("Escape(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestWhen(t *testing.T) {
	if got := markup.When(false, "A", "B"); got != "B" {
		t.Fatalf("When(false, A, B) = %q", got)
	}
	if got := markup.When(true, "A", "B"); got != "A" {
		t.Fatalf("When(true, A, B) = %q", got)
	}
	if got := markup.When(false, "A"); got != "" {
		t.Fatalf("When(false, A) = %q, want empty", got)
	}
}

func TestEach(t *testing.T) {
	calls := 0
	render := func(item string) string {
		calls++
		return "<li>" + item + "</li>"
	}

	if got := markup.Each([]string{}, render); got != "" {
		t.Fatalf("Each(empty) = %q", got)
	}
	if got := markup.Each[string](nil, render); got != "" {
		t.Fatalf("Each(nil) = %q", got)
	}
	if calls != 0 {
		t.Fatalf("render called for empty input")
	}

	if got := markup.Each([]string{"a", "b"}, render); got != "<li>a</li><li>b</li>" {
		t.Fatalf("Each() = %q", got)
	}
}

func TestSanitize(t *testing.T) {
	got := markup.Sanitize(`<b onclick="steal()">hi</b><script>alert(1)</script><span data-flux-input="h">x</span>`)
	want := `<b>hi</b><span>x</span>`
	if got != want {
		t.Fatalf("Sanitize() = %q, want %q", got, want)
	}
}

func TestStripTags(t *testing.T) {
	if got := markup.StripTags("<b>x</b> & y"); got != "x &amp; y" {
		t.Fatalf("StripTags() = %q", got)
	}
}
