package sanitizehtml

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func TestClassifyTag(t *testing.T) {
	tests := []struct {
		name     string
		expected TagClass
	}{
		{name: "script", expected: Forbidden},
		{name: "SCRIPT", expected: Forbidden},
		{name: "Style", expected: Forbidden},
		{name: "iframe", expected: Forbidden},
		{name: "head", expected: Forbidden},
		{name: "html", expected: Forbidden},
		{name: "a", expected: Allowed},
		{name: "IMG", expected: Allowed},
		{name: "input", expected: Allowed},
		{name: "h3", expected: Allowed},
		{name: "tt", expected: Allowed},
		{name: "marquee", expected: Unknown},
		{name: "body", expected: Unknown},
		{name: "svg", expected: Unknown},
		{name: "", expected: Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyTag(tt.name))
		})
	}
}

func TestTagTables(t *testing.T) {
	for _, name := range ForbiddenTags() {
		assert.Equal(t, Forbidden, ClassifyTag(name), name)
	}
	for _, name := range AllowedTags() {
		assert.Equal(t, Allowed, ClassifyTag(name), name)
	}

	tags := ForbiddenTags()
	tags[0] = "b"
	assert.Equal(t, Forbidden, ClassifyTag("head"))
}

func firstElement(t *testing.T, s string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(s))
	require.NoError(t, err)
	body := findBody(doc)
	require.NotNil(t, body)
	require.NotNil(t, body.FirstChild)
	return body.FirstChild
}

func TestClassifyNode(t *testing.T) {
	tests := []struct {
		in       string
		expected Directive
	}{
		{in: `text`, expected: Keep},
		{in: `<p>x</p>`, expected: Keep},
		{in: `<input type="checkbox">`, expected: Keep},
		{in: `<input type="radio">`, expected: Unwrap},
		{in: `<input>`, expected: Unwrap},
		{in: `<marquee>x</marquee>`, expected: Unwrap},
		{in: `<object></object>`, expected: Eliminate},
		{in: `<!-- c -->`, expected: Eliminate},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			n := firstElement(t, "<div>"+tt.in+"</div>").FirstChild
			require.NotNil(t, n)
			assert.Equal(t, tt.expected, classifyNode(n))
		})
	}
}

func TestClassifyNodeForeign(t *testing.T) {
	svg := firstElement(t, `<div><svg><input type="checkbox">x</input></svg></div>`).FirstChild
	require.NotNil(t, svg)
	input := svg.FirstChild
	require.NotNil(t, input)
	require.Equal(t, "svg", input.Namespace)
	assert.Equal(t, Unwrap, classifyNode(input))

	// a void element built by hand with a child
	br := &html.Node{Type: html.ElementNode, Data: "br", DataAtom: atom.Br}
	br.AppendChild(&html.Node{Type: html.TextNode, Data: "x"})
	assert.Equal(t, Unwrap, classifyNode(br))
	br.RemoveChild(br.FirstChild)
	assert.Equal(t, Keep, classifyNode(br))
}

func TestStringers(t *testing.T) {
	assert.Equal(t, "keep", Keep.String())
	assert.Equal(t, "unwrap", Unwrap.String())
	assert.Equal(t, "eliminate", Eliminate.String())
	assert.Equal(t, "allowed", Allowed.String())
	assert.Equal(t, "forbidden", Forbidden.String())
	assert.Equal(t, "unknown", Unknown.String())
}
