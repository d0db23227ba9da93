package agent

import (
	"fmt"
	"strings"
	"time"

	"github.com/poiesic/hospitium/core"
)

const (
	minResponseLen = 20
	maxResponseLen = 500

	// fallbackHospitals is how many hospitals the fallback sentence names.
	fallbackHospitals = 3
)

// RetryPolicy bounds response generation: how many attempts are made and how
// long each one may run.
type RetryPolicy struct {
	MaxAttempts    int
	AttemptTimeout time.Duration
}

// DefaultRetryPolicy mirrors voice latency expectations: a few short tries,
// then give up and fall back.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:    3,
		AttemptTimeout: 10 * time.Second,
	}
}

// AcceptResponse reports whether a generated reply is usable: long enough to
// say something, short enough to speak, and not an apology refusal.
func AcceptResponse(s string) bool {
	if len(s) <= minResponseLen || len(s) >= maxResponseLen {
		return false
	}
	return !strings.HasPrefix(s, "I apologize")
}

// FallbackSentence is the deterministic reply used when generation never
// produces an acceptable answer. It names up to three retrieved hospitals
// with their cities, or asks for more detail when nothing was found.
func FallbackSentence(results []core.SearchResult) string {
	if len(results) == 0 {
		return "I couldn't find that hospital. Could you provide more details?"
	}

	names := make([]string, 0, fallbackHospitals)
	for i, r := range results {
		if i == fallbackHospitals {
			break
		}
		names = append(names, fmt.Sprintf("%s in %s", r.Record.Name, r.Record.City))
	}
	return fmt.Sprintf("I found %d hospitals: %s.", len(results), strings.Join(names, ", "))
}
