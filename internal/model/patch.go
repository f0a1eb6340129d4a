// Copyright (C) 2026 WaitingWall
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package model

// PostPatch is a shallow-merge update for a Post. Nil fields are left
// untouched; set fields overwrite, including zero values.
type PostPatch struct {
	Content      *string
	TimeLeft     *string
	Likes        *int
	Comments     *int
	Shares       *int
	IsLiked      *bool
	IsBookmarked *bool
	IsShared     *bool
	Mentions     []string
	Hashtags     []string
}

// Apply merges the patch into a copy of the post and returns it.
func (p PostPatch) Apply(post Post) Post {
	out := post.Clone()
	if p.Content != nil {
		out.Content = *p.Content
	}
	if p.TimeLeft != nil {
		out.TimeLeft = *p.TimeLeft
	}
	if p.Likes != nil {
		out.Likes = *p.Likes
	}
	if p.Comments != nil {
		out.Comments = *p.Comments
	}
	if p.Shares != nil {
		out.Shares = *p.Shares
	}
	if p.IsLiked != nil {
		out.IsLiked = *p.IsLiked
	}
	if p.IsBookmarked != nil {
		out.IsBookmarked = *p.IsBookmarked
	}
	if p.IsShared != nil {
		out.IsShared = *p.IsShared
	}
	if p.Mentions != nil {
		out.Mentions = cloneStrings(p.Mentions)
	}
	if p.Hashtags != nil {
		out.Hashtags = cloneStrings(p.Hashtags)
	}
	return out
}

// UserPatch is a shallow-merge update for the principal's profile.
type UserPatch struct {
	Name       *string
	Username   *string
	Avatar     *string
	Bio        *string
	Email      *string
	Location   *string
	Website    *string
	Followers  *int
	Following  *int
	Posts      *int
	IsVerified *bool
}

// Apply merges the patch into a copy of the user and returns it.
func (p UserPatch) Apply(user User) User {
	out := user
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Username != nil {
		out.Username = *p.Username
	}
	if p.Avatar != nil {
		out.Avatar = *p.Avatar
	}
	if p.Bio != nil {
		out.Bio = *p.Bio
	}
	if p.Email != nil {
		out.Email = *p.Email
	}
	if p.Location != nil {
		out.Location = *p.Location
	}
	if p.Website != nil {
		out.Website = *p.Website
	}
	if p.Followers != nil {
		out.Followers = *p.Followers
	}
	if p.Following != nil {
		out.Following = *p.Following
	}
	if p.Posts != nil {
		out.Posts = *p.Posts
	}
	if p.IsVerified != nil {
		out.IsVerified = *p.IsVerified
	}
	return out
}

// StringPtr returns a pointer to s. Convenience for building patches.
func StringPtr(s string) *string { return &s }

// IntPtr returns a pointer to i.
func IntPtr(i int) *int { return &i }

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool { return &b }
