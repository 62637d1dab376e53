// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"github.com/MKhiriev/go-blog/internal/logger"
)

// restyLogger routes resty's own diagnostics into the client logger.
type restyLogger struct {
	*logger.Logger
}

func (l restyLogger) Errorf(format string, v ...any) {
	l.Error().Msgf(format, v...)
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.Warn().Msgf(format, v...)
}

func (l restyLogger) Debugf(format string, v ...any) {
	l.Debug().Msgf(format, v...)
}
