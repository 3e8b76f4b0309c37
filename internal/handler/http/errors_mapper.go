// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/internal/service"
	"github.com/MKhiriev/go-user-registry/internal/store"
	"github.com/MKhiriev/go-user-registry/internal/utils"
	"github.com/MKhiriev/go-user-registry/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSONBody: http.StatusBadRequest,
	ErrInvalidSkip:     http.StatusBadRequest,
	ErrInvalidTake:     http.StatusBadRequest,

	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrUserNotFound:            http.StatusNotFound,
	service.ErrTokenIsExpired:          http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrUserNotFound: http.StatusNotFound,
	store.ErrUserNotSaved: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError maps err to a status and writes the matching envelope.
// userID names the record in 404 messages. Details of 5xx errors are only
// logged.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, userID int64) {
	status := statusFromError(err)

	switch status {
	case http.StatusBadRequest:
		var vErr *validators.ValidationError
		if errors.As(err, &vErr) {
			utils.WriteError(w, vErr.Message, status)
			return
		}
		utils.WriteError(w, badRequestMessage(err), status)
	case http.StatusNotFound:
		utils.WriteError(w, fmt.Sprintf(messageUserNotFound, userID), status)
	case http.StatusUnauthorized:
		w.WriteHeader(status)
	default:
		logger.FromRequest(r).Err(err).Str("func", "writeServiceError").Msg("request failed")
		utils.WriteError(w, messageInternalServerError, http.StatusInternalServerError)
	}
}

var badRequestMessages = map[error]string{
	ErrInvalidJSONBody: "invalid JSON body.",
	ErrInvalidSkip:     "query parameter 'skip' must be an integer.",
	ErrInvalidTake:     "query parameter 'take' must be an integer.",
}

func badRequestMessage(err error) string {
	for target, message := range badRequestMessages {
		if errors.Is(err, target) {
			return message
		}
	}
	return "invalid request."
}
