// Copyright (C) 2026 WaitingWall
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package feed

import "github.com/melakufr/waiting-wall/internal/model"

// DefaultPageSize is how many posts each reveal step adds.
const DefaultPageSize = 10

// Pager reproduces the feed's incremental reveal: a window that starts at
// one page and grows by a page at a time as the reader scrolls, clamped
// to the filtered result size. It is plain presentation state; there is
// no data source behind it to paginate against.
type Pager struct {
	visible  int
	pageSize int
}

// NewPager creates a pager showing one page.
func NewPager() *Pager {
	return &Pager{visible: DefaultPageSize, pageSize: DefaultPageSize}
}

// Window returns the currently revealed prefix of posts.
func (p *Pager) Window(posts []model.Post) []model.Post {
	if len(posts) <= p.visible {
		return posts
	}
	return posts[:p.visible]
}

// HasMore reports whether the window is smaller than the input.
func (p *Pager) HasMore(posts []model.Post) bool {
	return p.visible < len(posts)
}

// Advance grows the window by one page, clamped to total.
func (p *Pager) Advance(total int) {
	p.visible += p.pageSize
	if p.visible > total {
		p.visible = total
	}
	if p.visible < p.pageSize {
		p.visible = p.pageSize
	}
}

// Reset shrinks the window back to one page.
func (p *Pager) Reset() {
	p.visible = p.pageSize
}
