package analytics

import (
	"net/http"
	"time"

	"staysync/infras/otel"
	"staysync/internal/domains/analytics/service"
	"staysync/shared"
	"staysync/shared/constant"
	"staysync/shared/failure"
	"staysync/shared/timezone"
	"staysync/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Analytics
	otel    otel.Otel
}

func New(service service.Analytics, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/dashboard", handler.GetDashboard)
	router.Get("/calendar", handler.GetCalendar)

	router.Route("/financials", func(routerGroup chi.Router) {
		routerGroup.Get("/summary", handler.GetFinancialSummary)
		routerGroup.Get("/occupancy", handler.GetOccupancy)
	})

	router.Route("/statistics", func(routerGroup chi.Router) {
		routerGroup.Get("/overview", handler.GetStatistics)
	})
}

// GetDashboard returns today's operational position.
func (handler *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDashboard")
	defer scope.End()

	res, err := handler.service.Dashboard(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build dashboard")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetCalendar returns guest movements per day. Defaults to the week starting
// today.
func (handler *Handler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCalendar")
	defer scope.End()

	today := timezone.Now()
	from, to, err := parseWindow(r, today, today.AddDate(0, 0, 6))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.Calendar(ctx, from, to)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build calendar")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetFinancialSummary returns revenue, ADR, RevPAR and occupancy for a
// window. Defaults to the current month.
func (handler *Handler) GetFinancialSummary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFinancialSummary")
	defer scope.End()

	defaultFrom, defaultTo := currentMonth()
	from, to, err := parseWindow(r, defaultFrom, defaultTo)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.FinancialSummary(ctx, from, to)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build financial summary")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetOccupancy returns the day-by-day occupancy trend. Defaults to the next
// thirty days.
func (handler *Handler) GetOccupancy(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOccupancy")
	defer scope.End()

	today := timezone.Now()
	from, to, err := parseWindow(r, today, today.AddDate(0, 0, 29))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.Occupancy(ctx, from, to)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build occupancy trend")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetStatistics returns booking composition for a window. Defaults to the
// trailing ninety days.
func (handler *Handler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStatistics")
	defer scope.End()

	today := timezone.Now()
	from, to, err := parseWindow(r, today.AddDate(0, 0, -89), today)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.Statistics(ctx, from, to)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build statistics")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func parseWindow(r *http.Request, defaultFrom, defaultTo time.Time) (time.Time, time.Time, error) {
	from, err := shared.ParseDateParam(r.URL.Query().Get(constant.RequestParamFrom), defaultFrom)
	if err != nil {
		return time.Time{}, time.Time{}, failure.BadRequestFromString("invalid from date, expected " + constant.DateOnlyFormat) // nolint:wrapcheck
	}

	to, err := shared.ParseDateParam(r.URL.Query().Get(constant.RequestParamTo), defaultTo)
	if err != nil {
		return time.Time{}, time.Time{}, failure.BadRequestFromString("invalid to date, expected " + constant.DateOnlyFormat) // nolint:wrapcheck
	}

	return from, to, nil
}

func currentMonth() (time.Time, time.Time) {
	now := timezone.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, timezone.GetLocation())

	return start, start.AddDate(0, 1, -1)
}
