package server

import "errors"

// errReportSurfaceDisabled is returned when no HTTP address is configured.
var errReportSurfaceDisabled = errors.New("report surface is disabled: no http address configured")
