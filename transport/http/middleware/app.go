package middleware

import (
	"fmt"
	"net/http"

	"staysync/config"
	"staysync/infras/otel"
	"staysync/shared/cache"
	"staysync/shared/constant"
	"staysync/shared/failure"
	"staysync/transport/http/response"

	gomiddleware "github.com/go-chi/chi/v5/middleware"
)

const (
	otelHTTPScopeName = "http"
)

type AppMiddleware interface {
	Tracing(next http.Handler) http.Handler
	RateLimit() func(http.Handler) http.Handler
	APIKey(next http.Handler) http.Handler
}

type appMiddleware struct {
	otel   otel.Otel
	config *config.Config
	cache  cache.RedisCache
}

func NewAppMiddleware(otel otel.Otel, config *config.Config, cache cache.RedisCache) AppMiddleware {
	return &appMiddleware{
		otel:   otel,
		config: config,
		cache:  cache,
	}
}

func (a *appMiddleware) Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		spanName := fmt.Sprintf("%s %s", r.Method, r.URL.Path)

		ctx, scope := a.otel.NewScope(r.Context(), otelHTTPScopeName, spanName)
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"app.name":        a.config.App.Name,
			"http.path":       r.URL.Path,
			"http.method":     r.Method,
			"http.user_agent": r.Header.Get(constant.RequestHeaderUserAgent),
			"http.host":       r.Host,
			"http.source":     a.getClientIP(r),
		})

		recorder := gomiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(recorder, r.WithContext(ctx))

		scope.SetAttributes(map[string]any{
			"http.status_code": recorder.Status(),
		})
	})
}

// APIKey protects mutating endpoints. When no key is configured the guard is
// a no-op, which keeps local development friction-free.
func (a *appMiddleware) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a.config.App.APIKey == "" {
			next.ServeHTTP(w, r)

			return
		}

		_, scope := a.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, "api_key.middleware")
		defer scope.End()

		apiKey := r.Header.Get(constant.RequestHeaderAPIKey)
		if apiKey != a.config.App.APIKey {
			err := failure.Forbidden("invalid api key")
			scope.TraceError(err)

			response.WithError(w, err)

			return
		}

		next.ServeHTTP(w, r)
	})
}
