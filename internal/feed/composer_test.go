// Copyright (C) 2026 WaitingWall
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/melakufr/waiting-wall/internal/model"
)

var author = model.User{
	ID:       "42",
	Name:     "Asha Okafor",
	Username: "asha",
	Avatar:   "/avatars/asha.png",
}

var composeNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

// =============================================================================
// Compose
// =============================================================================

func TestCompose_NamedPost(t *testing.T) {
	p := Compose(author, "  Finally through the queue!  ", false, composeNow)

	assert.Equal(t, model.IDFromTime(composeNow), p.ID)
	assert.Equal(t, "Finally through the queue!", p.Content)
	assert.Equal(t, DefaultTimeLeft, p.TimeLeft)
	assert.Equal(t, composeNow, p.CreatedAt)
	assert.Zero(t, p.Likes)
	assert.Zero(t, p.Comments)
	assert.Zero(t, p.Shares)
	assert.False(t, p.IsLiked)

	assert.Equal(t, "42", p.Author.ID)
	assert.Equal(t, "Asha Okafor", p.Author.Name)
	assert.Equal(t, "asha", p.Author.Username)
	assert.False(t, p.Author.IsAnonymous)
}

func TestCompose_AnonymousKeepsRealAuthorID(t *testing.T) {
	p := Compose(author, "a secret", true, composeNow)

	// The display identity is substituted wholesale...
	assert.Equal(t, AnonymousName, p.Author.Name)
	assert.Equal(t, AnonymousUsername, p.Author.Username)
	assert.Equal(t, AnonymousAvatar, p.Author.Avatar)
	assert.True(t, p.Author.IsAnonymous)
	// ...while the real ID stays for edit/delete authorization.
	assert.Equal(t, "42", p.Author.ID)
}

func TestCompose_ExtractsMentionsAndHashtags(t *testing.T) {
	p := Compose(author, "shoutout @jo_99 and @ana, this #visa_queue #2026 thing! @@ #", false, composeNow)

	assert.Equal(t, []string{"jo_99", "ana"}, p.Mentions)
	assert.Equal(t, []string{"visa_queue", "2026"}, p.Hashtags)
}

func TestCompose_NoTokens(t *testing.T) {
	p := Compose(author, "plain text only", false, composeNow)

	assert.Nil(t, p.Mentions)
	assert.Nil(t, p.Hashtags)
}

// =============================================================================
// ComposeComment
// =============================================================================

func TestComposeComment(t *testing.T) {
	c := ComposeComment(author, "p7", "  agree with @jo!  ", composeNow)

	assert.Equal(t, model.IDFromTime(composeNow), c.ID)
	assert.Equal(t, "p7", c.PostID)
	assert.Equal(t, "agree with @jo!", c.Content)
	assert.Equal(t, composeNow, c.CreatedAt)
	assert.Equal(t, []string{"jo"}, c.Mentions)
	assert.Zero(t, c.Likes)
	assert.False(t, c.IsLiked)

	// Comments never get the anonymity substitution.
	assert.Equal(t, "asha", c.Author.Username)
}

// =============================================================================
// Token Extraction
// =============================================================================

func TestExtractTokens(t *testing.T) {
	tests := []struct {
		name    string
		content string
		marker  byte
		want    []string
	}{
		{"single", "hi @bob", '@', []string{"bob"}},
		{"multiple in order", "@a then @b then @c", '@', []string{"a", "b", "c"}},
		{"stops at punctuation", "thanks @ana!", '@', []string{"ana"}},
		{"underscore and digits run", "#tag_1x rest", '#', []string{"tag_1x"}},
		{"bare marker skipped", "lonely @ sign", '@', nil},
		{"adjacent markers", "@@double", '@', []string{"double"}},
		{"marker at end", "trailing @", '@', nil},
		{"empty content", "", '@', nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractTokens(tt.content, tt.marker)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompose_IDMatchesMillisecondScheme(t *testing.T) {
	p := Compose(author, "x", false, composeNow)
	require.Equal(t, "1773576000000", p.ID)
}
