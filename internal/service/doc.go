// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the business rules of the blog: credential
// handling, user registration and login, post management and health
// reporting.
//
// Services depend on the repositories of package store and never on the
// transport. Request validation is layered on top of the core services by
// wrappers (see [UserServiceWrapper] and [PostServiceWrapper]), so the core
// implementations can assume well-formed input.
package service
