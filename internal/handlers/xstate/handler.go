package xstate

import (
	"net/http"

	"reserve/infras/otel"
	"reserve/internal/domains/booking/gateway"
	"reserve/internal/domains/booking/machine"
	"reserve/internal/domains/booking/repository"
	"reserve/shared"
	"reserve/shared/constant"
	"reserve/shared/failure"
	"reserve/shared/validator"
	"reserve/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// Handler exposes this instance's machine to other instances running the remote gateway. It only decides
// transitions; the caller persists them and runs the side effects.
type Handler struct {
	gateway gateway.Gateway
	otel    otel.Otel
}

func New(repo repository.Booking, m *machine.Machine, otel otel.Otel) Handler {
	return Handler{
		gateway: gateway.NewLocal(repo, m, otel),
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/xstate/transition", handler.Transition)
}

// Transition runs one event against the stored snapshot of a booking.
// @Summary Run a machine transition
// @Description Internal endpoint used by the remote transition gateway. Requires X-API-Key.
// @Tags XState
// @Accept json
// @Produce json
// @Param X-API-Key header string true "API key"
// @Param request body gateway.TransitionRequest true "Transition request"
// @Success 200 {object} response.Data[gateway.TransitionResponse] "Transition result"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/xstate/transition [post]
func (handler *Handler) Transition(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Transition")
	defer scope.End()

	req := gateway.TransitionRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate transition request")

		response.WithError(w, err)

		return
	}

	if req.Tenant == constant.Empty {
		req.Tenant = shared.TenantFromContext(ctx)
	}

	cmd, err := req.Command()
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.BadRequest(err))

		return
	}

	res := handler.gateway.Transition(ctx, cmd)
	if !res.Success {
		scope.TraceError(res.Err)
		log.Error().Err(res.Err).Str("calendarEventId", cmd.CalendarEventID).Msg("failed to run transition")

		response.WithError(w, res.Err)

		return
	}

	response.WithJSON(w, http.StatusOK, gateway.NewTransitionResponse(res))
}
