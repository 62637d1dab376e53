// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

// credentialService is the concrete implementation of CredentialService.
// All state is read-only after construction.
type credentialService struct {
	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	// passwordHashCost is the bcrypt cost of new password hashes.
	passwordHashCost int

	now func() time.Time
}

// NewCredentialService constructs a CredentialService populated with the
// security parameters from cfg.
func NewCredentialService(cfg config.App) CredentialService {
	return &credentialService{
		tokenSignKey:     cfg.TokenSignKey,
		tokenIssuer:      cfg.TokenIssuer,
		tokenDuration:    cfg.TokenDuration,
		passwordHashCost: cfg.PasswordHashCost,
		now:              time.Now,
	}
}

// HashPassword hashes password. A password bcrypt cannot hash is reported
// as [validators.ErrInvalidPassword].
func (c *credentialService) HashPassword(password string) (string, error) {
	hash, err := utils.HashPassword(password, c.passwordHashCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", fmt.Errorf("%w: %w", validators.ErrInvalidPassword, err)
	}
	return hash, err
}

func (c *credentialService) VerifyPassword(password, hash string) bool {
	return utils.CheckPassword(password, hash)
}

// IssueToken signs a token for user that expires after the configured
// duration.
func (c *credentialService) IssueToken(user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(c.tokenIssuer, user, c.tokenDuration, c.tokenSignKey, c.now())
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

func (c *credentialService) IsValid(token string) bool {
	_, err := c.TryDecode(token)
	return err == nil
}

// TryDecode normalises every validation failure (expired, wrong issuer,
// tampered, malformed) to ErrTokenInvalid.
func (c *credentialService) TryDecode(token string) (models.TokenClaims, error) {
	claims, err := utils.ValidateAndParseJWTToken(token, c.tokenSignKey, c.tokenIssuer)
	if err != nil {
		return models.TokenClaims{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	return claims, nil
}
