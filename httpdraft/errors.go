package httpdraft

import "errors"

// ErrInvalidConfiguration is returned by Build (and therefore New) when a
// required field was not properly set before finalization. Match it with
// errors.Is; the wrapping message names the offending field.
var ErrInvalidConfiguration = errors.New("invalid configuration")
