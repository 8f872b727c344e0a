package presentation

import "errors"

// ErrNoEquivalent is returned when a presentation value has no counterpart
// among the protocol-level enums.
var ErrNoEquivalent = errors.New("presentation: no protocol equivalent")
