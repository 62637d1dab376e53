// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-blog/models"
)

var (
	ErrInvalidTokenParams = errors.New("invalid params for generating JWT token")
	ErrEmptySubject       = errors.New("empty subject")
)

// GenerateJWTToken creates an HMAC-SHA256 signed token for user.
//
// The token carries the user id and type as custom claims, plus the
// standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID encoded as a string
//   - ID        (jti): a random UUID, unique per issued token
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now plus tokenDuration
//
// Returns [ErrInvalidTokenParams] if issuer, tokenDuration or signKey are
// empty.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("go-blog", user, 12*time.Hour, key, time.Now())
func GenerateJWTToken(issuer string, user models.User, tokenDuration time.Duration, signKey string, now time.Time) (models.Token, error) {
	if issuer == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	claims := models.TokenClaims{
		UserID: user.ID,
		Type:   user.Type,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(user.ID, 10),
			ID:        NewUUIDGenerator().Generate(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{SignedString: signed, Claims: claims}, nil
}

// ValidateAndParseJWTToken verifies tokenString and returns its claims.
//
// Validation includes:
//   - strict base64url decoding of every segment
//   - HS256 as the only accepted signing method
//   - signature verification with tokenSignKey
//   - iss equal to tokenIssuer
//   - exp present and not elapsed
//   - a user id resolvable from the claims
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.TokenClaims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithStrictDecoding(),
	)

	var claims models.TokenClaims
	_, err := parser.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	})
	if err != nil {
		return models.TokenClaims{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" && claims.UserID == 0 {
		return models.TokenClaims{}, ErrEmptySubject
	}

	userID, err := claims.GetUserID()
	if err != nil {
		return models.TokenClaims{}, err
	}
	claims.UserID = userID

	return claims, nil
}

// ParseAuthorizationHeader splits an "Authorization" header value into its
// scheme and credentials. Consecutive spaces produce empty segments, so
// "Bearer  x" yields an empty token.
func ParseAuthorizationHeader(header string) (scheme, token string) {
	parts := strings.Split(header, " ")
	scheme = parts[0]
	if len(parts) > 1 {
		token = parts[1]
	}
	return scheme, token
}
