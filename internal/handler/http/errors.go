// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrInvalidReportRange is returned when the "range" query parameter is not
// one of all, daily, weekly or monthly.
var ErrInvalidReportRange = errors.New("invalid report range")
