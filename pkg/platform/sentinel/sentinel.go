package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Sources and infrastructure layers
// return these (optionally wrapped) so callers can branch on the failure kind
// without string matching.
//
// These represent factual states about backing resources, not rule
// violations; field normalization and rule checks never produce errors at all.
var (
	ErrUnavailable = errors.New("unavailable")
	ErrCorrupt     = errors.New("corrupt data")
)
