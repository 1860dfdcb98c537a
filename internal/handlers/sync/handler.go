package sync

import (
	"net/http"

	"staysync/infras/otel"
	"staysync/internal/domains/sync/service"
	"staysync/shared/constant"
	"staysync/transport/http/middleware"
	"staysync/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Sync
	middleware middleware.AppMiddleware
	otel       otel.Otel
}

func New(service service.Sync, middleware middleware.AppMiddleware, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/sync", func(routerGroup chi.Router) {
		routerGroup.Get("/status", handler.GetStatus)

		routerGroup.Group(func(protected chi.Router) {
			protected.Use(handler.middleware.APIKey)
			protected.Post("/trigger", handler.TriggerSync)
		})
	})
}

// GetStatus reports the sync ledger for every synced domain.
func (handler *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStatus")
	defer scope.End()

	res, err := handler.service.Status(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read sync status")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// TriggerSync starts a full sync in the background. Responds with 202 once
// the run is claimed; a run already in flight yields a conflict.
func (handler *Handler) TriggerSync(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".TriggerSync")
	defer scope.End()

	if err := handler.service.Trigger(ctx); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("sync trigger rejected")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("sync run accepted")

	response.WithMessage(w, http.StatusAccepted, "Sync started")
}
