package httpapi

import (
	"net/http"

	"github.com/riskibarqy/nfl-fantasy-pickem/internal/platform/logging"
)

type RouterConfig struct {
	Handler            *Handler
	Verifier           TokenVerifier
	Logger             *logging.Logger
	SwaggerEnabled     bool
	CORSAllowedOrigins []string
}

func NewRouter(cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, cfg.Handler, cfg.SwaggerEnabled)
	registerAuthRoutes(mux, cfg.Handler, cfg.Verifier)
	registerUserRoutes(mux, cfg.Handler, cfg.Verifier)
	registerNFLRoutes(mux, cfg.Handler, cfg.Verifier)
	registerFantasyRoutes(mux, cfg.Handler, cfg.Verifier)
	registerPickemRoutes(mux, cfg.Handler, cfg.Verifier)

	return RequestTracing(RequestLogging(logger, CORS(cfg.CORSAllowedOrigins, recoverPanic(logger, mux))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec, "path", r.URL.Path)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
