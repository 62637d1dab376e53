// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
)

// ServiceName is the name under which the blog reports its health. Probes
// may also ask for the empty name, which means the whole server.
const ServiceName = "blog.v1.Blog"

// Handler is the root gRPC transport handler. It implements
// [grpc_health_v1.HealthServer] on top of [service.HealthService].
type Handler struct {
	grpc_health_v1.UnimplementedHealthServer

	// services provides access to all application business operations.
	services *service.Services

	// logger is used for diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// Check reports SERVING while the storage answers and NOT_SERVING otherwise.
// Unknown service names are answered with codes.NotFound.
func (h *Handler) Check(ctx context.Context, req *grpc_health_v1.HealthCheckRequest) (*grpc_health_v1.HealthCheckResponse, error) {
	if name := req.GetService(); name != "" && name != ServiceName {
		return nil, status.Errorf(codes.NotFound, "unknown service %q", name)
	}

	return &grpc_health_v1.HealthCheckResponse{Status: h.servingStatus(ctx)}, nil
}

// List reports the status of every service this server knows about.
func (h *Handler) List(ctx context.Context, _ *grpc_health_v1.HealthListRequest) (*grpc_health_v1.HealthListResponse, error) {
	resp := &grpc_health_v1.HealthCheckResponse{Status: h.servingStatus(ctx)}

	return &grpc_health_v1.HealthListResponse{
		Statuses: map[string]*grpc_health_v1.HealthCheckResponse{
			"":          resp,
			ServiceName: resp,
		},
	}, nil
}

func (h *Handler) servingStatus(ctx context.Context) grpc_health_v1.HealthCheckResponse_ServingStatus {
	if err := h.services.HealthService.Check(ctx); err != nil {
		h.logger.Warn().Err(err).Str("func", "grpc.Handler.Check").Msg("health check failed")
		return grpc_health_v1.HealthCheckResponse_NOT_SERVING
	}
	return grpc_health_v1.HealthCheckResponse_SERVING
}
