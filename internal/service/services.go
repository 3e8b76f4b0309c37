// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business layer of the user registry: token
// verification, validated user CRUD and application info.
package service

import (
	"github.com/MKhiriev/go-user-registry/internal/config"
	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/internal/store"
	"github.com/MKhiriev/go-user-registry/models"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(cfg.App.TokenValidationParams(), logger),
		UserService:    NewUserValidationService().Wrap(NewUserService(storages.UserStorage, logger)),
		AppInfoService: NewAppInfoService(cfg.App.Version, buildInfo, logger),
	}
}
