// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the payload of a credential token.
//
// It embeds [jwt.RegisteredClaims] for the standard claim set
// (sub, exp, iat, iss) and adds the identity of the token owner.
type TokenClaims struct {
	// UserID is the identifier of the token owner.
	UserID int64 `json:"id"`

	// Type is the role of the owner at the moment the token was issued.
	Type UserType `json:"type"`

	jwt.RegisteredClaims
}

// GetUserID returns UserID, falling back to the "sub" claim when the
// custom "id" claim is absent.
func (c *TokenClaims) GetUserID() (int64, error) {
	if c.UserID != 0 {
		return c.UserID, nil
	}

	userIDString, err := c.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting user id from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting user id from token to int64: %w", err)
	}

	return userID, nil
}

// Token is an issued credential token.
type Token struct {
	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// Claims holds the decoded payload.
	Claims TokenClaims `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}

// RequestIdentity is the authenticated identity of a single request.
// It is created by the auth middleware and lives in the request context.
type RequestIdentity struct {
	// Token is the raw bearer token the request was authenticated with.
	Token string

	// User is the account resolved from the token.
	User User
}
