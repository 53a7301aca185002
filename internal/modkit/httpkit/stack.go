package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"genailab/internal/platform/config"
	"genailab/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack; zero values take the defaults
type StackOptions struct {
	Timeout     time.Duration // per request deadline, default 30s
	Slow        time.Duration // access log warns at or above this, default 500ms
	MaxInFlight int           // concurrent request cap, 0 disables
	Origins     []string      // CORS allowed origins, default any
}

// StackFromConfig reads REQUEST_TIMEOUT, SLOW_REQUEST, MAX_IN_FLIGHT and CORS_ORIGINS
func StackFromConfig(cfg config.Conf) StackOptions {
	return StackOptions{
		Timeout:     cfg.MayDuration("REQUEST_TIMEOUT", 30*time.Second),
		Slow:        cfg.MayDuration("SLOW_REQUEST", 500*time.Millisecond),
		MaxInFlight: cfg.MayInt("MAX_IN_FLIGHT", 0),
		Origins:     cfg.MayCSV("CORS_ORIGINS", nil),
	}
}

// CommonStack is the middleware every API route runs behind
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	if o.Slow <= 0 {
		o.Slow = 500 * time.Millisecond
	}

	stack := []func(http.Handler) http.Handler{
		// correlation first so every later line carries the id
		middleware.RequestID(),
		middleware.LogContext,
		middleware.RealIP(),

		middleware.RecoverJSON,
		middleware.NoCache(),
		middleware.AccessLog(o.Slow),

		middleware.CORS(o.Origins),
		middleware.Compress(flate.BestSpeed),
		middleware.StripSlashes(),
		middleware.Timeout(o.Timeout),
	}
	if o.MaxInFlight > 0 {
		stack = append(stack, middleware.Throttle(o.MaxInFlight))
	}
	return stack
}
