package booking

import (
	"net/http"

	"staysync/infras/otel"
	"staysync/internal/domains/mirror/model"
	"staysync/internal/domains/mirror/model/dto"
	"staysync/internal/domains/mirror/service"
	"staysync/shared/constant"
	gDto "staysync/shared/dto"
	"staysync/shared/validator"
	"staysync/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Mirror
	otel    otel.Otel
}

func New(service service.Mirror, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
	})

	router.Route("/listings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetListings)
	})
}

// GetBookings lists mirrored bookings with optional filtering and
// pagination. The mirror is read-only over HTTP; writes only happen through
// the sync pipeline.
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	req := dto.GetBookingsRequest{
		ListingID: r.URL.Query().Get(model.FieldListingID),
		Type:      r.URL.Query().Get(model.FieldType),
		Status:    r.URL.Query().Get(model.FieldStatus),
		From:      r.URL.Query().Get(constant.RequestParamFrom),
		To:        r.URL.Query().Get(constant.RequestParamTo),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if req.ListingID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldListingID,
			Operator: gDto.FilterOperatorEq,
			Value:    req.ListingID,
			Table:    model.TableName,
		})
	}

	if req.Type != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldType,
			Operator: gDto.FilterOperatorEq,
			Value:    req.Type,
			Table:    model.TableName,
		})
	}

	if req.Status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    req.Status,
			Table:    model.TableName,
		})
	}

	// A stay overlaps [from, to] when it ends on or after from and starts
	// on or before to.
	if req.From != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCheckOut,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    req.From,
			Table:    model.TableName,
		})
	}

	if req.To != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCheckIn,
			Operator: gDto.FilterOperatorLessEq,
			Value:    req.To,
			Table:    model.TableName,
		})
	}

	res, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetBookingByID returns one mirrored booking.
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(r, "id")

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetListings lists the mirrored rental units.
func (handler *Handler) GetListings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetListings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res, err := handler.service.GetListings(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get listings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
