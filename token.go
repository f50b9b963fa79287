package sanitizehtml

import (
	"slices"

	"golang.org/x/net/html"
)

// attrSnapshot returns a copy of the attributes of n, so the live attribute
// slice can be changed while the copy is iterated.
func attrSnapshot(n *html.Node) []html.Attribute {
	return slices.Clone(n.Attr)
}

func attrRef(n *html.Node, key string) *html.Attribute {
	i := slices.IndexFunc(n.Attr, func(a html.Attribute) bool {
		return a.Namespace == "" && a.Key == key
	})
	if i < 0 {
		return nil
	}
	return &n.Attr[i]
}

// deleteAttr removes attributes with the same namespace and name as attr.
func deleteAttr(n *html.Node, attr html.Attribute) {
	n.Attr = slices.DeleteFunc(n.Attr, func(a html.Attribute) bool {
		return a.Namespace == attr.Namespace && a.Key == attr.Key
	})
}

// forceAttr replaces any attribute named key with a single one holding val,
// placed after all other attributes.
func forceAttr(n *html.Node, key, val string) {
	deleteAttr(n, html.Attribute{Key: key})
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}
