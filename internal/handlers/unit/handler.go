package unit

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"

	"stayhub/infras/otel"
	"stayhub/internal/domains/unit/model"
	"stayhub/internal/domains/unit/model/dto"
	"stayhub/internal/domains/unit/service"
	"stayhub/shared"
	"stayhub/shared/constant"
	gDto "stayhub/shared/dto"
	"stayhub/shared/validator"
	"stayhub/transport/http/response"
)

type Handler struct {
	service service.Unit
	otel    otel.Otel
}

func New(service service.Unit, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/units", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateUnit)
		routerGroup.Get("/", handler.GetUnits)
		routerGroup.Get("/{id}", handler.GetUnitByID)
		routerGroup.Patch("/{id}", handler.UpdateUnit)
		routerGroup.Put("/{id}/housekeeping", handler.SetHousekeepingStatus)
	})
}

// CreateUnit registers a physical room under a room type.
// @Summary Create a new unit
// @Description Register a physical unit; it inherits the room type's default housekeeping status.
// @Tags Unit
// @Accept json
// @Produce json
// @Param request body dto.CreateUnitRequest true "Create Unit Request"
// @Success 201 {object} response.Data[dto.UnitResponse] "Unit created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/units [post]
// @Security BearerAuth
func (handler *Handler) CreateUnit(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateUnit")
	defer scope.End()

	req := dto.CreateUnitRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	unit, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create unit")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Unit created successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, unit)
}

// GetUnits retrieves all units based on query parameters.
// @Summary Get all units
// @Description Retrieve all units with optional filtering and pagination.
// @Tags Unit
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param room_type_id query string false "Filter by room type ID"
// @Param housekeeping_status query string false "Filter by housekeeping status"
// @Param is_active query boolean false "Filter by active status"
// @Success 200 {object} response.Data[dto.GetUnitsResponse] "List of units"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/units [get]
// @Security BearerAuth
func (handler *Handler) GetUnits(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUnits")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if roomTypeID := r.URL.Query().Get(model.FieldRoomTypeID); roomTypeID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRoomTypeID,
			Operator: gDto.FilterOperatorEq,
			Value:    roomTypeID,
			Table:    model.TableName,
		})
	}

	if status := r.URL.Query().Get(model.FieldHousekeepingStatus); status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldHousekeepingStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldIsActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldIsActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	units, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get units")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Units retrieved successfully")

	response.WithJSON(w, http.StatusOK, units)
}

// GetUnitByID retrieves a unit by its ID.
// @Summary Get a unit by ID
// @Description Retrieve a unit by its unique identifier.
// @Tags Unit
// @Accept json
// @Produce json
// @Param id path string true "Unit ID"
// @Success 200 {object} response.Data[dto.UnitResponse] "Unit details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/units/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetUnitByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUnitByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	unit, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get unit by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Unit retrieved successfully")

	response.WithJSON(w, http.StatusOK, unit)
}

// UpdateUnit updates an existing unit by its ID.
// @Summary Update a unit by ID
// @Description Update the label, housekeeping status or active flag of a unit.
// @Tags Unit
// @Accept json
// @Produce json
// @Param id path string true "Unit ID"
// @Param request body dto.UpdateUnitRequest true "Update Unit Request"
// @Success 200 {object} response.Message "Unit updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/units/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateUnit(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateUnit")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateUnitRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update unit")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Unit updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Unit updated successfully")
}

// SetHousekeepingStatus moves a unit through the housekeeping cycle.
// @Summary Set the housekeeping status of a unit
// @Description Transition a unit between clean, dirty, maintenance and inspecting.
// @Tags Unit
// @Accept json
// @Produce json
// @Param id path string true "Unit ID"
// @Param request body dto.HousekeepingStatusRequest true "Housekeeping Status Request"
// @Success 200 {object} response.Message "Housekeeping status updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/units/{id}/housekeeping [put]
// @Security BearerAuth
func (handler *Handler) SetHousekeepingStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetHousekeepingStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.HousekeepingStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.SetHousekeepingStatus(ctx, id, req.Status); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set housekeeping status")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Housekeeping status updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Housekeeping status updated successfully")
}
