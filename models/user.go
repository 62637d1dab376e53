// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// UserType is the role of an account. It is stored as text in the "type"
// column of the users table and embedded into issued tokens.
type UserType string

const (
	// Blogger is the role every self-registered account receives.
	Blogger UserType = "blogger"

	// Admin is the privileged role. Admins see every account in listings
	// and may create users and delete posts of other authors.
	Admin UserType = "admin"
)

// IsValid reports whether t is one of the known roles.
func (t UserType) IsValid() bool {
	return t == Blogger || t == Admin
}

// User represents an account entity used for authentication and authorization.
// PasswordHash must never leave the server, so it is excluded from JSON.
type User struct {
	// ID is the server-assigned identifier of the user.
	ID int64 `json:"id"`

	// Name is the unique display name of the user.
	Name string `json:"name"`

	// Email is the unique e-mail address used to log in.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`

	// Type is the role of the user.
	Type UserType `json:"type"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsAdmin reports whether the user has the [Admin] role.
func (u User) IsAdmin() bool {
	return u.Type == Admin
}

// UserFilter narrows a users listing.
type UserFilter struct {
	// ExcludeType, when set, drops every user of that role from the result.
	ExcludeType *UserType
}

// UserListItem is the public projection of a user returned by the users
// listing. ID is only populated for admin callers.
type UserListItem struct {
	ID    *int64 `json:"id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
