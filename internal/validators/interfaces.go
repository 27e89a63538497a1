// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it reaches the ledger.
//
// A Validator receives a model and an optional list of field names. When no
// fields are given a default set for that model is checked. Validation never
// touches the network, so a rejected command costs nothing remotely.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
