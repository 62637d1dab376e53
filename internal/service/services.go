// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

// Services aggregates every service the transport layer depends on.
type Services struct {
	CredentialService CredentialService
	UserService       UserService
	PostService       PostService
	HealthService     HealthService
	AppInfoService    AppInfoService
}

// NewServices wires the services on top of storages. User and post services
// are wrapped with request validation.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewRequestValidator()
	credentialService := NewCredentialService(cfg.App)

	userService := NewUserValidationService(validator).
		Wrap(NewUserService(storages.UserRepository, credentialService, logger))
	postService := NewPostValidationService(validator).
		Wrap(NewPostService(storages.PostRepository, utils.NewUUIDGenerator(), logger))

	return &Services{
		CredentialService: credentialService,
		UserService:       userService,
		PostService:       postService,
		HealthService:     NewHealthService(storages),
		AppInfoService:    appInfoService,
	}, nil
}
