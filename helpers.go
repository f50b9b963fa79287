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

import "slices"

// Policy tables. They are process-wide constants: nothing writes to them
// after package initialization, so every Policy shares them without
// copying or locking.
var (
	// forbiddenTags contains elements that are removed together with their
	// entire subtree. Membership here wins over every other rule.
	forbiddenTags = [...]string{
		"head",
		"html",
		"iframe",
		"link",
		"meta",
		"object",
		"script",
		"style",
	}

	// allowedTags contains elements kept in the output. Text nodes are
	// always kept and don't appear here. "input" is further restricted to
	// checkboxes, see classifyNode.
	allowedTags = [...]string{
		"a",
		"article",
		"b",
		"blockquote",
		"br",
		"cite",
		"code",
		"dd",
		"del",
		"div",
		"dt",
		"em",
		"h1", "h2", "h3", "h4", "h5", "h6",
		"hr",
		"i",
		"img",
		"input",
		"ins",
		"li",
		"ol",
		"p",
		"pre",
		"s",
		"span",
		"strong",
		"sub",
		"sup",
		"table",
		"tbody",
		"td",
		"th",
		"thead",
		"tr",
		"tt",
		"ul",
	}

	// allowedAttrs maps an allowed element to attributes it may carry.
	// Elements missing here carry no attributes, except href and src which
	// are checked by value on any element, see IsAttributeAllowed.
	allowedAttrs = map[string][]string{
		"a":     {"alt", "href", "rel", "title"},
		"img":   {"alt", "src", "title"},
		"input": {"checked", "type"},
	}

	forbiddenSet = toSet(forbiddenTags[:])
	allowedSet   = toSet(allowedTags[:])
	attrSets     = toAttrSets(allowedAttrs)
)

const (
	mailtoPrefix = "mailto:"

	targetBlank = "_blank"

	// relNoOpenerNoReferrer stops the opened page from reaching
	// window.opener and from receiving the referring URL.
	relNoOpenerNoReferrer = "noopener noreferrer"
)

func toSet(names []string) map[string]struct{} {
	m := make(map[string]struct{}, len(names))
	for _, name := range names {
		m[name] = struct{}{}
	}
	return m
}

func toAttrSets(attrs map[string][]string) map[string]map[string]struct{} {
	m := make(map[string]map[string]struct{}, len(attrs))
	for tag, names := range attrs {
		m[tag] = toSet(names)
	}
	return m
}

// ForbiddenTags returns the elements that are removed with their content.
func ForbiddenTags() []string { return slices.Clone(forbiddenTags[:]) }

// AllowedTags returns the elements that are kept in sanitized output.
func AllowedTags() []string { return slices.Clone(allowedTags[:]) }
