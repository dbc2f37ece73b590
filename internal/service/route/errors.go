package route

import "errors"

// ErrGenerationInFlight is returned when a generation request arrives while a
// previous one is still running. The new request is dropped, never queued.
var ErrGenerationInFlight = errors.New("route generation already in flight")
