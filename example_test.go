package sanitizehtml_test

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/mariosant/sanitizehtml"
)

func ExampleSanitize() {
	clean, _ := sanitizehtml.Sanitize(
		`<b>Hello</b> <script>alert('xss')</script><marquee>world</marquee>`)
	fmt.Println(clean)
	// Output: <b>Hello</b> world
}

func ExampleSanitize_links() {
	clean, _ := sanitizehtml.Sanitize(
		`<a href="https://example.com" onclick="evil()">site</a> <a href="mailto:user@example.com">mail</a>`)
	fmt.Println(clean)
	// Output: <a href="https://example.com" target="_blank" rel="noopener noreferrer">site</a> <a href="mailto:user@example.com">mail</a>
}

func ExamplePolicy_SanitizeTree() {
	doc, err := html.Parse(strings.NewReader(
		`<p><input type="checkbox" checked> done <input type="text"></p>`))
	if err != nil {
		fmt.Println(err)
		return
	}
	body := doc.FirstChild.LastChild

	sanitizehtml.NewPolicy().SanitizeTree(body)

	var b strings.Builder
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&b, c); err != nil {
			fmt.Println(err)
			return
		}
	}
	fmt.Println(b.String())
	// Output: <p><input type="checkbox" checked=""/> done </p>
}
