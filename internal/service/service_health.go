// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/logger"
)

type healthService struct {
	storage Pinger
}

func NewHealthService(storage Pinger) HealthService {
	return &healthService{storage: storage}
}

func (h *healthService) Check(ctx context.Context) error {
	if err := h.storage.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "healthService.Check").Msg("storage is unreachable")
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return nil
}
