// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ListParams describes the window of users requested by a list call.
type ListParams struct {
	// Skip is the number of users to skip from the start of the collection.
	// Negative values are treated as zero.
	Skip int

	// Take limits the number of users returned. A nil Take means
	// "everything from Skip onward"; negative values yield an empty page.
	Take *int
}

// ErrorResponse is the uniform JSON envelope for every non-success response
// that carries a body.
type ErrorResponse struct {
	Error string `json:"error"`
}
