// Package sanitizehtml removes markup capable of running script, loading
// remote content on its own or escaping the surrounding document from
// untrusted HTML, keeping a fixed set of formatting and content elements.
//
// Input is parsed with golang.org/x/net/html and only the content of the
// body is returned. Every element is handled in one of three ways:
//
//   - forbidden elements (script, style, iframe, object, ...) are removed
//     together with everything inside them;
//   - allowed elements are kept with a small set of attributes: href and
//     src must be absolute http or https URLs, or a mailto: link with a
//     valid address for href;
//   - any other element is unwrapped: its markup goes away and its content
//     stays.
//
// Kept links, other than mailto: ones, always open in a new browsing
// context with rel="noopener noreferrer".
//
// Some markup moves when its rendered form is parsed again, like text left
// directly inside a table. The string entry points sanitize their own output
// until it reads back unchanged, so sanitizing it a second time returns the
// same string. Elements inside svg or math are unwrapped even when their
// name is allowed.
//
//	clean, err := sanitizehtml.Sanitize(userInput)
package sanitizehtml
