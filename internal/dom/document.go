// Copyright 2026 The Workboard Authors
// SPDX-License-Identifier: MIT

// Package dom applies board filters, sorts and toggles to a rendered
// dashboard document. It is the adapter between the pure functions in
// package board and the element attributes the dashboard carries: rows are
// read from data-* attributes, results are written back as classes, text
// and sort-state attributes. Every lookup is optional; a missing element
// turns the operation into a no-op.
package dom

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
)

// Element ids and classes shared with the rendered dashboard.
const (
	SearchID         = "board-search"
	OwnerSelectID    = "board-owner"
	StageSelectID    = "board-stage"
	HideUnassignedID = "board-hide-unassigned"
	VisibleCountID   = "board-visible-count"

	RowClass    = "board-row"
	HiddenClass = "hidden"
	ArrowClass  = "sort-arrow"

	SortColumnAttr    = "data-sort-col"
	SortDirectionAttr = "data-sort-dir"
	ExpandedAttr      = "data-expanded"
)

// Document is a parsed dashboard.
type Document struct {
	root *html.Node
}

// Parse reads an HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return &Document{root: root}, nil
}

// Render writes the document back out as HTML.
func (d *Document) Render(w io.Writer) error {
	if err := html.Render(w, d.root); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

// elementByID returns the first element with the given id, or nil.
func (d *Document) elementByID(id string) *html.Node {
	if id == "" {
		return nil
	}
	var found *html.Node
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode {
			if v, ok := attr(n, "id"); ok && v == id {
				found = n
				return false
			}
		}
		return true
	})
	return found
}

// HasElement reports whether an element with id exists.
func (d *Document) HasElement(id string) bool {
	return d.elementByID(id) != nil
}

// IsHidden reports whether the element with id carries the hidden class.
// Missing elements report false.
func (d *Document) IsHidden(id string) bool {
	n := d.elementByID(id)
	return n != nil && hasClass(n, HiddenClass)
}

// Text returns the text content of the element with id.
func (d *Document) Text(id string) string {
	n := d.elementByID(id)
	if n == nil {
		return ""
	}
	return textContent(n)
}
