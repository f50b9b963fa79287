package sanitizehtml

import (
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/net/html"
)

// validate is safe for concurrent use and caches nothing per call.
var validate = validator.New()

// IsAttributeAllowed reports whether an attribute may stay on an allowed
// element.
//
// The href and src attributes are accepted on any element, but only when
// their value is an absolute http or https URL. An href may also hold a
// mailto: link with a valid email address. Every other attribute must be
// listed for the element in the static per-tag table.
func IsAttributeAllowed(tag, name, value string) bool {
	tag, name = strings.ToLower(tag), strings.ToLower(name)
	switch name {
	case "href":
		if rest, ok := strings.CutPrefix(value, mailtoPrefix); ok {
			return validEmail(rest)
		}
		return validHTTPURL(value)
	case "src":
		return validHTTPURL(value)
	}

	attrs, ok := attrSets[tag]
	if !ok {
		return false
	}
	_, ok = attrs[name]
	return ok
}

// validHTTPURL reports whether s is an absolute URL with the http or https
// scheme and a host.
func validHTTPURL(s string) bool {
	if validate.Var(s, "required,url") != nil {
		return false
	}

	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return false
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return true
	}
	return false
}

func validEmail(s string) bool {
	return validate.Var(s, "required,email") == nil
}

// sanitizeAttrs removes from n every attribute the attribute policy rejects
// and returns the names of removed attributes.
func sanitizeAttrs(n *html.Node) (stripped []string) {
	for _, attr := range attrSnapshot(n) {
		// namespaced attributes, like xlink:href, are never allowed
		if attr.Namespace == "" && IsAttributeAllowed(n.Data, attr.Key, attr.Val) {
			continue
		}
		deleteAttr(n, attr)
		stripped = append(stripped, attr.Key)
	}
	return stripped
}
