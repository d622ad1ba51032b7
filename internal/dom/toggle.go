// Copyright 2026 The Workboard Authors
// SPDX-License-Identifier: MIT

package dom

import (
	"golang.org/x/net/html"

	"github.com/davetashner/workboard/internal/board"
)

// ToggleGroup flips the visibility of the board group body with id. It
// reports false when no such element exists.
func (d *Document) ToggleGroup(id string) bool {
	n := d.elementByID(id)
	if n == nil {
		return false
	}
	setClass(n, HiddenClass, !hasClass(n, HiddenClass))
	return true
}

// ToggleList expands or collapses a truncated list. Collapsed lists show
// their first limit items; the button's label and data-expanded attribute
// track the state. It reports false when the list or button is missing.
func (d *Document) ToggleList(listID, buttonID string, total, limit int) bool {
	list := d.elementByID(listID)
	btn := d.elementByID(buttonID)
	if list == nil || btn == nil {
		return false
	}

	expanded := attrOr(btn, ExpandedAttr, "") != "true"
	toggle := board.ListToggle{Total: total, Limit: limit}
	visible := toggle.Visible(expanded)

	for i, item := range listItems(list) {
		setClass(item, HiddenClass, i >= visible)
	}
	if expanded {
		setAttr(btn, ExpandedAttr, "true")
	} else {
		setAttr(btn, ExpandedAttr, "false")
	}
	setText(btn, toggle.Label(expanded))
	return true
}

func listItems(list *html.Node) []*html.Node {
	var items []*html.Node
	for c := list.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			items = append(items, c)
		}
	}
	return items
}
