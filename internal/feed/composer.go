// Copyright (C) 2026 WaitingWall
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package feed

import (
	"strings"
	"time"

	"github.com/melakufr/waiting-wall/internal/model"
)

// Anonymous identity placeholders substituted into the author snapshot
// when a post is composed anonymously. The real author ID is kept so
// edit/delete authorization still works.
const (
	AnonymousName     = "Anonymous"
	AnonymousUsername = "anonymous"
	AnonymousAvatar   = "/anonymous-avatar.png"
)

// DefaultTimeLeft is the lifetime label stamped on new posts.
const DefaultTimeLeft = "24 h left"

// Compose builds a fully-formed post for the store: trimmed content,
// millisecond-derived ID, author snapshot with anonymity substitution,
// zeroed counters, and extracted mentions and hashtags. The caller is
// expected to have validated the content first (forms.PostForm).
func Compose(author model.User, content string, anonymous bool, now time.Time) model.Post {
	snapshot := author.Ref()
	if anonymous {
		snapshot.Name = AnonymousName
		snapshot.Username = AnonymousUsername
		snapshot.Avatar = AnonymousAvatar
	}
	snapshot.IsAnonymous = anonymous

	trimmed := strings.TrimSpace(content)
	return model.Post{
		ID:        model.IDFromTime(now),
		Author:    snapshot,
		Content:   trimmed,
		TimeLeft:  DefaultTimeLeft,
		CreatedAt: now,
		Mentions:  extractTokens(trimmed, '@'),
		Hashtags:  extractTokens(trimmed, '#'),
	}
}

// ComposeComment builds a comment on the given post. Comments never carry
// the anonymity substitution.
func ComposeComment(author model.User, postID, content string, now time.Time) model.Comment {
	trimmed := strings.TrimSpace(content)
	return model.Comment{
		ID:        model.IDFromTime(now),
		PostID:    postID,
		Author:    author.Ref(),
		Content:   trimmed,
		CreatedAt: now,
		Mentions:  extractTokens(trimmed, '@'),
	}
}

// extractTokens collects the words introduced by the marker rune, in
// order of appearance, without the marker. A token runs over letters,
// digits, and underscores; empty tokens are skipped.
func extractTokens(content string, marker byte) []string {
	var out []string
	for i := 0; i < len(content); i++ {
		if content[i] != marker {
			continue
		}
		j := i + 1
		for j < len(content) && isTokenByte(content[j]) {
			j++
		}
		if j > i+1 {
			out = append(out, content[i+1:j])
		}
		i = j - 1
	}
	return out
}

func isTokenByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z':
		return true
	case b >= 'A' && b <= 'Z':
		return true
	case b >= '0' && b <= '9':
		return true
	case b == '_':
		return true
	}
	return false
}
