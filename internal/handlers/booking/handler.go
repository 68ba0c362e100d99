package booking

import (
	"errors"
	"net/http"
	"strconv"

	"reserve/infras/otel"
	"reserve/internal/domains/booking/model/dto"
	"reserve/internal/domains/booking/service"
	"reserve/internal/domains/booking/session"
	"reserve/shared"
	"reserve/shared/constant"
	"reserve/shared/failure"
	"reserve/shared/validator"
	"reserve/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/history/{requestNumber}", handler.GetHistory)
		routerGroup.Get("/{calendarEventId}", handler.GetBooking)
		routerGroup.Post("/{calendarEventId}/events", handler.SendEvent)
	})

	router.Get("/users/{netId}/violations", handler.GetViolations)
}

// CreateBooking submits a new booking.
// @Summary Create a new booking
// @Description Submit a booking request. Auto-approval is evaluated against the selected rooms.
// @Tags Booking
// @Accept json
// @Produce json
// @Param X-Tenant header string false "Tenant"
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse] "Created booking"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking " + res.CalendarEventID + " created by " + shared.ActorFromContext(ctx))

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetBooking retrieves a booking with its current state.
// @Summary Get a booking
// @Tags Booking
// @Produce json
// @Param X-Tenant header string false "Tenant"
// @Param calendarEventId path string true "Calendar event ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{calendarEventId} [get]
// @Security BearerAuth
func (handler *Handler) GetBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBooking")
	defer scope.End()

	calendarEventID := chi.URLParam(r, constant.RequestParamCalendarEventID)

	res, err := handler.service.Get(ctx, shared.TenantFromContext(ctx), calendarEventID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("calendarEventId", calendarEventID).Msg("failed to get booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// SendEvent sends a lifecycle event to a booking. A rejected event answers 200 with accepted false.
// @Summary Send a lifecycle event
// @Description Events: approve, decline, cancel, checkIn, checkOut, noShow, edit, and per-service
// @Description approve<Service>, decline<Service>, closeout<Service>.
// @Tags Booking
// @Accept json
// @Produce json
// @Param X-Tenant header string false "Tenant"
// @Param calendarEventId path string true "Calendar event ID"
// @Param request body dto.SendEventRequest true "Event"
// @Success 200 {object} response.Data[dto.EventResponse] "Transition outcome"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/bookings/{calendarEventId}/events [post]
// @Security BearerAuth
func (handler *Handler) SendEvent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SendEvent")
	defer scope.End()

	req := dto.SendEventRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	event, err := req.ToEvent()
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.BadRequest(err))

		return
	}

	calendarEventID := chi.URLParam(r, constant.RequestParamCalendarEventID)

	sess, err := session.Open(ctx, handler.service, shared.TenantFromContext(ctx), calendarEventID, shared.ActorFromContext(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("calendarEventId", calendarEventID).Msg("failed to open booking session")

		response.WithError(w, err)

		return
	}
	defer sess.Close()

	sess.Subscribe(func(state session.State) {
		log.Info().Str("calendarEventId", calendarEventID).Str("event", event.Name()).
			Str("state", string(state.State)).Msg("booking state changed")
	})

	out, err := sess.Send(ctx, event)
	if err != nil {
		if errors.Is(err, session.ErrClosed) {
			err = failure.Unprocessable(err.Error())
		}

		scope.TraceError(err)
		log.Error().Err(err).Str("calendarEventId", calendarEventID).Str("event", event.Name()).Msg("failed to send booking event")

		response.WithError(w, err)

		return
	}

	res := dto.EventResponse{}
	res.FromOutcome(out)

	response.WithJSON(w, http.StatusOK, res)
}

// GetHistory returns the status history of a request.
// @Summary Get booking history
// @Tags Booking
// @Produce json
// @Param X-Tenant header string false "Tenant"
// @Param requestNumber path integer true "Request number"
// @Success 200 {object} response.Data[dto.HistoryResponse] "History, oldest first"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/history/{requestNumber} [get]
// @Security BearerAuth
func (handler *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHistory")
	defer scope.End()

	requestNumber, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamRequestNumber), 10, 64)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.BadRequestFromString("requestNumber must be a number"))

		return
	}

	res, err := handler.service.History(ctx, shared.TenantFromContext(ctx), requestNumber)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("requestNumber", requestNumber).Msg("failed to get booking history")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetViolations returns how many policy violations a user has accumulated.
// @Summary Get violation count
// @Tags Booking
// @Produce json
// @Param X-Tenant header string false "Tenant"
// @Param netId path string true "Net ID"
// @Success 200 {object} response.Data[dto.ViolationResponse] "Violation count"
// @Failure 500 {object} response.Error
// @Router /v1/users/{netId}/violations [get]
// @Security BearerAuth
func (handler *Handler) GetViolations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetViolations")
	defer scope.End()

	netID := chi.URLParam(r, constant.RequestParamNetID)

	res, err := handler.service.ViolationCount(ctx, shared.TenantFromContext(ctx), netID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("netId", netID).Msg("failed to count violations")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
