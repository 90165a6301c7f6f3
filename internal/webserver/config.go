package webserver

import "time"

type Config struct {
	// SessionSecret signs the visitor session cookie carrying the pending
	// invitation code and the transient messages.
	SessionSecret     []byte
	SessionTimeout    time.Duration
	MinPasswordLength int
}
