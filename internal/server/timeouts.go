package server

import "time"

const (
	readTimeout = 10 * time.Second
	// A triggered run holds its response open through renders and uploads,
	// so the write timeout has to cover a full slate.
	writeTimeout = 5 * time.Minute
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
