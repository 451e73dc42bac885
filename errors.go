package refstore

import (
	"os"
)

// ErrNotFound is returned when a requested blob or file is absent.
//
// It aliases os.ErrNotExist so that errors coming straight from the
// filesystem satisfy `errors.Is(err, ErrNotFound)` without translation.
// Callers treat it as "no prior state", never as a fault.
//
// Decode failures live in the codec package as [codec.DecodeError]; all
// current callers treat them exactly like ErrNotFound.
var ErrNotFound = os.ErrNotExist
