// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"strings"
)

// validate checks that the merged [StructuredConfig] carries everything the
// server needs before it is used at startup. All violations are reported
// together.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if strings.TrimSpace(cfg.App.TokenSignKey) == "" ||
		strings.TrimSpace(cfg.App.TokenIssuer) == "" ||
		strings.TrimSpace(cfg.App.TokenAudience) == "" {
		errs = append(errs, ErrInvalidTokenConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		errs = append(errs, ErrInvalidServerConfigs)
	}

	if cfg.Server.RateLimit < 0 || cfg.Server.RateBurst < 0 {
		errs = append(errs, ErrInvalidRateLimitConfigs)
	}

	return errors.Join(errs...)
}
