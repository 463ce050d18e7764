// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks staged create requests before they are queued
// or sent to the server.
//
// Rules are declared as `validate` struct tags on the models and evaluated by
// go-playground/validator. Field names in reported errors use the JSON name
// of the field, which is also the Fineract parameter name.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
