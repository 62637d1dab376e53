// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the blog's health over the standard gRPC health
// checking protocol (grpc.health.v1) so that load balancers and orchestrators
// can probe the server without speaking HTTP.
package grpc
