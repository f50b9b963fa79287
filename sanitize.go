// Copyright (c) 2014, David Kitchen <david@buro9.com>
//
// All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are met:
//
// * Redistributions of source code must retain the above copyright notice, this
//   list of conditions and the following disclaimer.
//
// * Redistributions in binary form must reproduce the above copyright notice,
//   this list of conditions and the following disclaimer in the documentation
//   and/or other materials provided with the distribution.
//
// * Neither the name of the organisation (Microcosm) nor the names of its
//   contributors may be used to endorse or promote products derived from
//   this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
// AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
// IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
// DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
// FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
// DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
// SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
// CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
// OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
// OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

package sanitizehtml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const genericErrMsg = "sanitizehtml: %w: %w"

var (
	// ErrParse is returned when the input can't be read into a document
	// tree.
	ErrParse = errors.New("parse html")

	// ErrRender is returned when the sanitized tree can't be written out.
	ErrRender = errors.New("render html")
)

// Sanitize applies the default policy to a HTML fragment or document and
// returns the sanitized content of its body. Input made only of whitespace
// is the exception: it is returned unchanged, without parsing.
func Sanitize(s string) (string, error) {
	return defaultPolicy.Sanitize(s)
}

// Sanitize takes a string that contains a HTML fragment or document and
// returns the sanitized content of its body.
//
// Input made only of whitespace is the exception: it is returned unchanged,
// without parsing, so "  \n" comes back as "  \n" rather than "".
func (self *Policy) Sanitize(s string) (string, error) {
	if strings.TrimSpace(s) == "" {
		return s, nil
	}

	buff, err := self.sanitizeWithBuff(strings.NewReader(s))
	if err != nil {
		return "", err
	}
	return buff.String(), nil
}

// SanitizeBytes takes a []byte that contains a HTML fragment or document and
// returns the sanitized content of its body.
//
// Input made only of whitespace is the exception: the same slice is returned
// unchanged, without parsing.
func (self *Policy) SanitizeBytes(b []byte) ([]byte, error) {
	if len(bytes.TrimSpace(b)) == 0 {
		return b, nil
	}

	buff, err := self.sanitizeWithBuff(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	return buff.Bytes(), nil
}

// SanitizeReader takes an io.Reader that contains a HTML fragment or document
// and returns a bytes.Buffer with the sanitized content of its body.
// Whitespace-only input is parsed like any other and gives an empty buffer.
func (self *Policy) SanitizeReader(r io.Reader) (*bytes.Buffer, error) {
	return self.sanitizeWithBuff(r)
}

// SanitizeReaderToWriter takes an io.Reader that contains a HTML fragment or
// document and writes the sanitized content of its body to w.
//
// Nothing is written if the input can't be parsed or rendered. A failed
// write may leave w holding part of the output.
func (self *Policy) SanitizeReaderToWriter(r io.Reader, w io.Writer) error {
	return self.sanitize(r, w)
}

func (self *Policy) sanitizeWithBuff(r io.Reader) (*bytes.Buffer, error) {
	buff := new(bytes.Buffer)
	if err := self.sanitize(r, buff); err != nil {
		return nil, err
	}
	return buff, nil
}

// maxPasses bounds the re-sanitizing of output which doesn't parse back into
// the tree it was rendered from.
const maxPasses = 8

// sanitize runs passes until the output reads back unchanged. The parser
// moves some markup when it reads rendered output, like a caption left
// after its table was unwrapped, so one pass is not always stable.
func (self *Policy) sanitize(r io.Reader, w io.Writer) error {
	out, err := self.sanitizePass(r)
	if err != nil {
		return err
	}

	for i := 1; i < maxPasses; i++ {
		next, err := self.sanitizePass(bytes.NewReader(out))
		if err != nil {
			return err
		}
		if bytes.Equal(next, out) {
			break
		}
		out = next
	}

	if _, err := w.Write(out); err != nil {
		return fmt.Errorf(genericErrMsg, ErrRender, err)
	}
	return nil
}

func (self *Policy) sanitizePass(r io.Reader) ([]byte, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf(genericErrMsg, ErrParse, err)
	}

	// A frameset document has no body and nothing we would keep.
	body := findBody(doc)
	if body == nil {
		return nil, nil
	}

	self.SanitizeTree(body)
	var buff bytes.Buffer
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buff, c); err != nil {
			return nil, fmt.Errorf(genericErrMsg, ErrRender, err)
		}
	}
	return buff.Bytes(), nil
}

func findBody(doc *html.Node) *html.Node {
	for n := doc; n != nil; n = nextNode(n, doc) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Body {
			return n
		}
	}
	return nil
}

// SanitizeTree sanitizes the descendants of root in place. The root itself,
// usually a body element, is kept as is.
//
// It runs a single pass. Rendering the result and parsing it again can give
// a slightly different tree, which the string entry points sanitize again.
//
// Every node is classified before anything is removed, so the call never
// changes the structure it is walking. The caller must not access the tree
// from other goroutines until SanitizeTree returns.
func (self *Policy) SanitizeTree(root *html.Node) {
	w := walker{log: self.log(), reach: make(map[*html.Node]bool)}
	w.collect(root)
	w.apply(root)
}

type walker struct {
	log *slog.Logger

	// nodes waiting for removal, in document order
	eliminate []*html.Node
	unwrap    []*html.Node

	// reach remembers nodes known to be attached to (true) or detached from
	// (false) the root. Eliminated nodes are recorded as detached.
	reach map[*html.Node]bool
}

// collect classifies every descendant of root in document order. It changes
// attributes of kept elements but never the tree structure.
func (self *walker) collect(root *html.Node) {
	for n := root.FirstChild; n != nil; n = nextNode(n, root) {
		switch classifyNode(n) {
		case Eliminate:
			self.eliminate = append(self.eliminate, n)
		case Unwrap:
			self.unwrap = append(self.unwrap, n)
		case Keep:
			if n.Type == html.ElementNode {
				self.keepElement(n)
			}
		}
	}
}

func (self *walker) keepElement(n *html.Node) {
	if stripped := sanitizeAttrs(n); len(stripped) != 0 {
		self.log.Debug("sanitizehtml: stripped attributes",
			slog.String("tag", n.Data), slog.Any("attrs", stripped))
	}
	normalizeLink(n)
}

// apply removes queued nodes, eliminated subtrees first. Nodes inside an
// already removed subtree are skipped.
func (self *walker) apply(root *html.Node) {
	for _, n := range self.eliminate {
		if !self.attached(n, root) {
			continue
		}
		n.Parent.RemoveChild(n)
		self.reach[n] = false
		if n.Type == html.ElementNode {
			self.log.Debug("sanitizehtml: eliminated element",
				slog.String("tag", n.Data))
		}
	}

	for _, n := range self.unwrap {
		if !self.attached(n, root) {
			continue
		}
		parent := n.Parent
		for c := n.FirstChild; c != nil; c = n.FirstChild {
			n.RemoveChild(c)
			parent.InsertBefore(c, n)
		}
		parent.RemoveChild(n)
		self.log.Debug("sanitizehtml: unwrapped element",
			slog.String("tag", n.Data))
	}
}

// attached reports whether n can still be reached from root by following
// parent links. Every ancestor visited on the way is remembered, which keeps
// checks on deeply nested removals linear overall.
func (self *walker) attached(n, root *html.Node) bool {
	var path []*html.Node
	ok := false
	for p := n.Parent; p != nil; p = p.Parent {
		if p == root {
			ok = true
			break
		}
		if known, found := self.reach[p]; found {
			ok = known
			break
		}
		path = append(path, p)
	}

	for _, p := range path {
		self.reach[p] = ok
	}
	return ok
}

// nextNode returns the node following n in document order, staying inside
// the subtree of root, or nil when the subtree is exhausted.
func nextNode(n, root *html.Node) *html.Node {
	if n.FirstChild != nil {
		return n.FirstChild
	}
	for ; n != root; n = n.Parent {
		if n.NextSibling != nil {
			return n.NextSibling
		}
	}
	return nil
}
