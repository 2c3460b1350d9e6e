package middleware

import (
	"strings"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewTraceEntry,
	NewCors,
	NewLogger,
	NewRecovery,
	NewResponse,
	NewRateLimit,
)

const requestStartKey = "requestDuration"

// 這些路徑不做 tracing / request log / 回應封裝
var skipPrefixes = []string{"/swagger", "/metrics", "/version", "/health-check", "/health/", "/static", "/debug/pprof"}

func skipObservability(endpoint string) bool {
	for _, p := range skipPrefixes {
		if strings.HasPrefix(endpoint, p) {
			return true
		}
	}
	return false
}
