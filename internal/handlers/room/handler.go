package room

import (
	"net/http"

	"reserve/infras/otel"
	"reserve/internal/domains/room/model"
	"reserve/internal/domains/room/model/dto"
	"reserve/internal/domains/room/service"
	"reserve/shared"
	"reserve/shared/constant"
	gDto "reserve/shared/dto"
	"reserve/shared/validator"
	"reserve/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.RoomSetting
	otel    otel.Otel
}

func New(service service.RoomSetting, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/room-settings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRoomSetting)
		routerGroup.Get("/", handler.GetRoomSettings)
		routerGroup.Get("/{roomId}", handler.GetRoomSetting)
		routerGroup.Patch("/{roomId}", handler.UpdateRoomSetting)
		routerGroup.Delete("/{roomId}", handler.DeleteRoomSetting)
	})
}

// CreateRoomSetting handles the creation of a room's approval settings.
// @Summary Create room settings
// @Description Register a room of the current tenant with its auto-approval rules.
// @Tags RoomSetting
// @Accept json
// @Produce json
// @Param X-Tenant header string false "Tenant"
// @Param request body dto.CreateRoomSettingRequest true "Create Room Setting Request"
// @Success 201 {object} response.Message "Room setting created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-settings [post]
// @Security BearerAuth
func (handler *Handler) CreateRoomSetting(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoomSetting")
	defer scope.End()

	req := dto.CreateRoomSettingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room setting")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Room setting created by " + shared.ActorFromContext(ctx))

	response.WithMessage(writer, http.StatusCreated, "Room setting created successfully")
}

// GetRoomSettings lists the room settings of the current tenant.
// @Summary Get room settings
// @Tags RoomSetting
// @Produce json
// @Param X-Tenant header string false "Tenant"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Success 200 {object} response.Data[dto.GetRoomSettingsResponse] "List of room settings"
// @Failure 500 {object} response.Error
// @Router /v1/room-settings [get]
// @Security BearerAuth
func (handler *Handler) GetRoomSettings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomSettings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if name := r.URL.Query().Get(model.FieldName); name != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	rooms, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room settings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetRoomSetting retrieves the settings of one room.
// @Summary Get a room setting
// @Tags RoomSetting
// @Produce json
// @Param X-Tenant header string false "Tenant"
// @Param roomId path string true "Room ID"
// @Success 200 {object} response.Data[dto.RoomSettingResponse] "Room setting"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-settings/{roomId} [get]
// @Security BearerAuth
func (handler *Handler) GetRoomSetting(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomSetting")
	defer scope.End()

	room, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamRoomID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room setting")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, room)
}

// UpdateRoomSetting updates the settings of one room.
// @Summary Update a room setting
// @Tags RoomSetting
// @Accept json
// @Produce json
// @Param X-Tenant header string false "Tenant"
// @Param roomId path string true "Room ID"
// @Param request body dto.UpdateRoomSettingRequest true "Update Room Setting Request"
// @Success 200 {object} response.Message "Room setting updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-settings/{roomId} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRoomSetting(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoomSetting")
	defer scope.End()

	req := dto.UpdateRoomSettingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamRoomID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room setting")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Room setting updated successfully")
}

// DeleteRoomSetting removes the settings of one room.
// @Summary Delete a room setting
// @Tags RoomSetting
// @Produce json
// @Param X-Tenant header string false "Tenant"
// @Param roomId path string true "Room ID"
// @Success 200 {object} response.Message "Room setting deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-settings/{roomId} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRoomSetting(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoomSetting")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamRoomID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete room setting")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room setting deleted by " + shared.ActorFromContext(ctx))

	response.WithMessage(w, http.StatusOK, "Room setting deleted successfully")
}
