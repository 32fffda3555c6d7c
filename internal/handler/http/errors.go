// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Request errors raised while decoding input, before the service layer is
// reached.
var (
	// ErrInvalidJSON is returned when a request body is not valid JSON for
	// the endpoint.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidQueryParam is returned when a numeric query parameter does
	// not parse.
	ErrInvalidQueryParam = errors.New("invalid query parameter")

	// ErrUnknownOperationClass is returned for a status lookup of a class
	// that does not exist.
	ErrUnknownOperationClass = errors.New("unknown operation class")
)
