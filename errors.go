package g3d

import "errors"

// ErrParameterLengthMismatch is returned by the matrix constructors when the
// supplied backing slice does not hold exactly N*N components. The input is
// never truncated or padded.
var ErrParameterLengthMismatch = errors.New("g3d: parameter length mismatch")

// ErrInvalidHexColor is returned by Hex for malformed color strings.
var ErrInvalidHexColor = errors.New("g3d: invalid hex color")
