package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/KananVyas/flyGPT/internal/adapter/http/response"
	"github.com/KananVyas/flyGPT/internal/domain"
	"github.com/KananVyas/flyGPT/internal/infrastructure/logger"
	"github.com/KananVyas/flyGPT/internal/infrastructure/timeutil"
	"github.com/KananVyas/flyGPT/internal/usecase"
)

// HealthFunc reports the live state shown by the health endpoint.
type HealthFunc func() response.HealthResponse

// FlightHandler handles HTTP requests for the search endpoints.
type FlightHandler struct {
	search usecase.DateSearchUseCase
	ranker domain.Ranker
	store  domain.SnapshotStore
	limit  int
	clock  timeutil.Clock
	health HealthFunc
	log    *logger.Logger
}

// HandlerOption configures a FlightHandler.
type HandlerOption func(*FlightHandler)

// WithSelectionLimit sets how many flights a search returns when the
// request does not say.
func WithSelectionLimit(n int) HandlerOption {
	return func(h *FlightHandler) {
		if n > 0 {
			h.limit = n
		}
	}
}

// WithClock sets the clock used for snapshot timestamps and relative dates.
func WithClock(c timeutil.Clock) HandlerOption {
	return func(h *FlightHandler) {
		if c != nil {
			h.clock = c
		}
	}
}

// WithHealth sets the health reporter.
func WithHealth(fn HealthFunc) HandlerOption {
	return func(h *FlightHandler) {
		if fn != nil {
			h.health = fn
		}
	}
}

// WithLogger sets the handler logger.
func WithLogger(l *logger.Logger) HandlerOption {
	return func(h *FlightHandler) {
		if l != nil {
			h.log = l
		}
	}
}

// NewFlightHandler creates a new FlightHandler.
func NewFlightHandler(search usecase.DateSearchUseCase, ranker domain.Ranker, store domain.SnapshotStore, opts ...HandlerOption) *FlightHandler {
	h := &FlightHandler{
		search: search,
		ranker: ranker,
		store:  store,
		limit:  usecase.DefaultSelectionLimit,
		clock:  timeutil.NewRealClock(),
		health: func() response.HealthResponse { return response.HealthResponse{} },
		log:    logger.Nop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// SearchFlights handles POST /api/v1/searchFlights/:search_id
//
// @Summary Search flights across many dates
// @Description Searches every date of the window in parallel, merges the best flights per date and ranks them by the price preference. The outcome is stored under search_id.
// @Tags flights
// @Accept json
// @Produce json
// @Param search_id path string true "Client-chosen search id"
// @Param request body SearchFlightsRequest true "Search criteria"
// @Success 200 {object} SearchResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.ErrorDetail "No date could be fetched"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/searchFlights/{search_id} [post]
func (h *FlightHandler) SearchFlights(c echo.Context) error {
	searchID := c.Param("search_id")
	if !validSearchID(searchID) {
		return response.BadRequest(c, response.MsgInvalidSearchID)
	}

	var req SearchFlightsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	searchReq, err := ToDomainRequest(&req, h.clock.Now().Year())
	if err != nil {
		return h.handleError(c, err)
	}

	agg, err := h.search.Search(c.Request().Context(), searchReq)
	if err != nil {
		return h.handleError(c, err)
	}

	limit := h.limit
	if req.Limit > 0 {
		limit = req.Limit
	}

	snap := domain.Snapshot{
		SearchID:  searchID,
		Aggregate: agg,
		Selection: h.ranker.Rank(agg, limit),
		CreatedAt: h.clock.Now(),
	}

	// A failed save is logged only; the caller still gets the result.
	if err := h.store.Save(c.Request().Context(), snap); err != nil {
		h.log.Error().Err(err).Str("search_id", searchID).Msg("Failed to store search snapshot")
	}

	return response.SearchResults(c, ToSearchResponseDTO(&snap))
}

// GetSearch handles GET /api/v1/searchFlights/:search_id
//
// @Summary Get a stored search
// @Description Returns the ranked flights and merged aggregate of an earlier search
// @Tags flights
// @Produce json
// @Param search_id path string true "Search id"
// @Success 200 {object} SearchResponseDTO
// @Failure 400 {object} response.ErrorDetail "Invalid search id"
// @Failure 404 {object} response.ErrorDetail "Not found"
// @Router /api/v1/searchFlights/{search_id} [get]
func (h *FlightHandler) GetSearch(c echo.Context) error {
	searchID := c.Param("search_id")
	if !validSearchID(searchID) {
		return response.BadRequest(c, response.MsgInvalidSearchID)
	}

	snap, err := h.store.Get(c.Request().Context(), searchID)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToSearchResponseDTO(snap))
}

// ExpandDates handles POST /api/v1/dates/expand
//
// @Summary Expand a date window
// @Description Resolves an explicit date list, a month or the next N days to the dates a search would query
// @Tags dates
// @Accept json
// @Produce json
// @Param request body ExpandDatesRequest true "Date window"
// @Success 200 {object} ExpandDatesResponseDTO
// @Failure 400 {object} response.ErrorDetail "Invalid date window"
// @Router /api/v1/dates/expand [post]
func (h *FlightHandler) ExpandDates(c echo.Context) error {
	var req ExpandDatesRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	var (
		dates []string
		err   error
	)
	now := h.clock.Now()
	if req.NextDays > 0 {
		dates, err = domain.NextDays(now, req.NextDays)
	} else {
		dates, err = ToDateWindow(req.DateList, req.Month, req.Year, now.Year()).Expand()
	}
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, &ExpandDatesResponseDTO{Dates: dates, Count: len(dates)})
}

// Health handles GET /health
//
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func (h *FlightHandler) Health(c echo.Context) error {
	return response.Health(c, h.health())
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *FlightHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to HTTP responses.
func (h *FlightHandler) handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidDateSpec):
		return response.InvalidDates(c, err.Error())
	case errors.Is(err, domain.ErrUnsupportedTripType):
		return response.UnsupportedTripType(c, err.Error())
	case errors.Is(err, domain.ErrInvalidRequest):
		return response.ValidationErrorWithMessage(c, err.Error())
	case errors.Is(err, domain.ErrSnapshotNotFound):
		return response.NotFound(c)
	case errors.Is(err, domain.ErrAllFetchesFailed):
		return response.ServiceUnavailable(c)
	case errors.Is(err, context.DeadlineExceeded):
		return response.GatewayTimeout(c)
	case errors.Is(err, context.Canceled):
		return response.RequestCancelled(c)
	}

	h.log.Error().Err(err).Msg("Unhandled error")
	return response.InternalServerError(c)
}
