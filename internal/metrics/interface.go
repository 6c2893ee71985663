package metrics

import "net/http"

// Recorder is what handlers report to. The Prometheus-backed Service
// implements it; Nop discards everything.
type Recorder interface {
	AddExportRows(n int)
	IncTokensIssued()
	IncAuthFailures()
	IncThrottled(scope string)
	Middleware(next http.Handler) http.Handler
}

// Nop is a Recorder that records nothing.
type Nop struct{}

func (Nop) AddExportRows(int)                         {}
func (Nop) IncTokensIssued()                          {}
func (Nop) IncAuthFailures()                          {}
func (Nop) IncThrottled(string)                       {}
func (Nop) Middleware(next http.Handler) http.Handler { return next }
