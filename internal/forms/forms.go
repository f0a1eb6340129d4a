// Copyright (C) 2026 WaitingWall
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package forms performs the field-level validation the view layer runs
// before it ever invokes a store operation. The store itself validates
// nothing; every length, pattern, and required-field rule lives here.
package forms

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Field constraints.
const (
	// MaxPostLength is the post/comment content ceiling in characters.
	MaxPostLength = 280

	// MaxBioLength is the profile bio ceiling in characters.
	MaxBioLength = 160

	// MinNameLength is the minimum display name length.
	MinNameLength = 2

	// MinUsernameLength is the minimum username length.
	MinUsernameLength = 3

	// MinPasswordLength is the minimum password length.
	MinPasswordLength = 6
)

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	websitePattern  = regexp.MustCompile(`^https?://.+`)
)

// validate is the shared validator instance, initialized with the custom
// rules in init.
var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("username", validateUsername)
	_ = validate.RegisterValidation("website", validateWebsite)
}

// validateUsername restricts usernames to letters, digits, and underscores.
func validateUsername(fl validator.FieldLevel) bool {
	return usernamePattern.MatchString(fl.Field().String())
}

// validateWebsite requires an explicit http or https scheme.
func validateWebsite(fl validator.FieldLevel) bool {
	return websitePattern.MatchString(fl.Field().String())
}

// =============================================================================
// Forms
// =============================================================================

// SignupForm carries the signup fields with the original form rules.
type SignupForm struct {
	Name            string `validate:"required,min=2"`
	Username        string `validate:"required,min=3,username"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=6"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
}

// Validate checks the form and returns validator errors, nil when valid.
func (f SignupForm) Validate() error {
	return validate.Struct(f)
}

// LoginForm carries the login fields.
type LoginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// Validate checks the form.
func (f LoginForm) Validate() error {
	return validate.Struct(f)
}

// ProfileForm carries the editable profile fields. Location is free-form;
// Website, when present, must carry an http or https scheme.
type ProfileForm struct {
	Name     string `validate:"required,min=2"`
	Bio      string `validate:"max=160"`
	Location string `validate:"-"`
	Website  string `validate:"omitempty,website"`
}

// Validate checks the form.
func (f ProfileForm) Validate() error {
	return validate.Struct(f)
}

// PostForm carries the composer fields. Content is measured after
// trimming, matching what the composer actually submits.
type PostForm struct {
	Content     string
	IsAnonymous bool
}

// Validate checks that the trimmed content is non-empty and within the
// length ceiling.
func (f PostForm) Validate() error {
	trimmed := strings.TrimSpace(f.Content)
	return validate.Var(trimmed, "required,max=280")
}
