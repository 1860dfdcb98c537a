package hostaway

//go:generate go run go.uber.org/mock/mockgen -source=./hostaway.go -destination=./mocks/hostaway_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"staysync/config"
	"staysync/infras/otel"
	"staysync/shared/constant"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	// DateTypeArrival filters reservation listings by arrival date,
	// DateTypeDeparture by departure date.
	DateTypeArrival   = "arrivalDate"
	DateTypeDeparture = "departureDate"

	maxErrorBodyBytes = 4096
)

// RemoteAPIError is returned for any non-2xx response from the PMS. It keeps
// a truncated copy of the response body so callers can log what the remote
// actually said.
type RemoteAPIError struct {
	StatusCode int
	Message    string
	RawBody    string
}

func (e *RemoteAPIError) Error() string {
	return fmt.Sprintf("remote api error: status %d: %s", e.StatusCode, e.Message)
}

type Hostaway interface {
	ListReservations(ctx context.Context, from, to time.Time, dateType string, offset int) ([]RemoteBooking, error)
	GetReservation(ctx context.Context, id int64) (RemoteBooking, error)
	ListListings(ctx context.Context, offset int) ([]RemoteListing, error)
	GetListing(ctx context.Context, id int64) (RemoteListing, error)
	PageSize() int
}

type clientImpl struct {
	baseURL    string
	authHeader string
	pageSize   int
	http       *http.Client
	otel       otel.Otel
}

func New(cfg *config.Config, otl otel.Otel) Hostaway {
	return &clientImpl{
		baseURL:    cfg.External.Hostaway.BaseURL,
		authHeader: "Bearer " + cfg.External.Hostaway.APIKey,
		pageSize:   cfg.Sync.PageSize,
		http: &http.Client{
			Timeout: time.Duration(cfg.External.Hostaway.TimeoutSeconds) * time.Second,
		},
		otel: otl,
	}
}

func (c *clientImpl) PageSize() int {
	return c.pageSize
}

func (c *clientImpl) ListReservations(ctx context.Context, from, to time.Time, dateType string, offset int) (bookings []RemoteBooking, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".ListReservations")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := url.Values{}
	query.Set("limit", strconv.Itoa(c.pageSize))
	query.Set("offset", strconv.Itoa(offset))
	query.Set("dateType", dateType)
	query.Set("fromDate", from.Format(constant.DateOnlyFormat))
	query.Set("toDate", to.Format(constant.DateOnlyFormat))

	err = c.get(ctx, "/v1/reservations", query, &bookings)
	return bookings, err
}

func (c *clientImpl) GetReservation(ctx context.Context, id int64) (booking RemoteBooking, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".GetReservation")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = c.get(ctx, "/v1/reservations/"+strconv.FormatInt(id, 10), nil, &booking)
	return booking, err
}

func (c *clientImpl) ListListings(ctx context.Context, offset int) (listings []RemoteListing, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".ListListings")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := url.Values{}
	query.Set("limit", strconv.Itoa(c.pageSize))
	query.Set("offset", strconv.Itoa(offset))

	err = c.get(ctx, "/v1/listings", query, &listings)
	return listings, err
}

func (c *clientImpl) GetListing(ctx context.Context, id int64) (listing RemoteListing, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".GetListing")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = c.get(ctx, "/v1/listings/"+strconv.FormatInt(id, 10), nil, &listing)
	return listing, err
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

// get performs an authenticated GET and decodes the result field of the
// response envelope into out.
func (c *clientImpl) get(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.Wrap(err, "building remote request")
	}
	req.Header.Set("Authorization", c.authHeader)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "calling %s", path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		apiErr := &RemoteAPIError{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
			RawBody:    string(raw),
		}

		var env envelope
		if jsonErr := json.Unmarshal(raw, &env); jsonErr == nil && env.Message != "" {
			apiErr.Message = env.Message
		}

		log.Warn().
			Int("status", resp.StatusCode).
			Str("path", path).
			Msg("[hostaway] remote returned an error")
		return apiErr
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return errors.Wrapf(err, "decoding response from %s", path)
	}
	if err := json.Unmarshal(env.Result, out); err != nil {
		return errors.Wrapf(err, "decoding result from %s", path)
	}

	return nil
}
