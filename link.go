package sanitizehtml

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// normalizeLink makes a kept anchor open in a new browsing context which
// can't reach back to this page or learn its URL. Anchors without href and
// mailto: links are left alone. Any target or rel given by the input is
// replaced.
//
// target="_blank" alone lets the opened page drive window.opener, see
// https://dev.to/ben/the-targetblank-vulnerability-by-example
func normalizeLink(n *html.Node) bool {
	if n.DataAtom != atom.A {
		return false
	}

	href := attrRef(n, "href")
	if href == nil || strings.HasPrefix(href.Val, mailtoPrefix) {
		return false
	}

	forceAttr(n, "target", targetBlank)
	forceAttr(n, "rel", relNoOpenerNoReferrer)
	return true
}
