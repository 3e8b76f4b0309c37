// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/internal/utils"
	"github.com/MKhiriev/go-user-registry/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	params, err := parseListParams(r.URL.Query())
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Str("func", "*Handler.listUsers").Msg("invalid query parameters")
		writeServiceError(w, r, err, 0)
		return
	}

	users, err := h.services.UserService.ListUsers(r.Context(), params)
	if err != nil {
		writeServiceError(w, r, err, 0)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, id)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	user, err := decodeUser(r)
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Str("func", "*Handler.createUser").Msg("invalid JSON was passed")
		writeServiceError(w, r, err, 0)
		return
	}

	created, err := h.services.UserService.CreateUser(r.Context(), user)
	if err != nil {
		writeServiceError(w, r, err, 0)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/users/%d", created.ID))
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	user, err := decodeUser(r)
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Str("func", "*Handler.updateUser").Msg("invalid JSON was passed")
		writeServiceError(w, r, err, id)
		return
	}
	user.ID = id

	updated, err := h.services.UserService.UpdateUser(r.Context(), user)
	if err != nil {
		writeServiceError(w, r, err, id)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.UserService.DeleteUser(r.Context(), id); err != nil {
		writeServiceError(w, r, err, id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// userIDFromRequest reads the {id} route parameter. The route pattern only
// admits digits, so a failure here means the value overflows int64 and no
// such user can exist.
func userIDFromRequest(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.WriteError(w, messageResourceNotFound, http.StatusNotFound)
		return 0, false
	}
	return id, true
}

// decodeUser reads exactly one JSON value from the body; anything after it
// makes the body invalid.
func decodeUser(r *http.Request) (models.User, error) {
	var user models.User
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&user); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidJSONBody, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return models.User{}, fmt.Errorf("%w: unexpected data after JSON value", ErrInvalidJSONBody)
	}
	return user, nil
}

// parseListParams reads the optional skip and take query parameters.
// Negative values are clamped to zero.
func parseListParams(query url.Values) (models.ListParams, error) {
	var params models.ListParams

	if raw := query.Get("skip"); raw != "" {
		skip, err := strconv.Atoi(raw)
		if err != nil {
			return models.ListParams{}, fmt.Errorf("%w: %w", ErrInvalidSkip, err)
		}
		params.Skip = max(skip, 0)
	}

	if raw := query.Get("take"); raw != "" {
		take, err := strconv.Atoi(raw)
		if err != nil {
			return models.ListParams{}, fmt.Errorf("%w: %w", ErrInvalidTake, err)
		}
		take = max(take, 0)
		params.Take = &take
	}

	return params, nil
}
