package admin

import (
	"net/http"

	"lodge/infras/otel"
	"lodge/internal/domains/admin/model"
	"lodge/internal/domains/admin/model/dto"
	"lodge/internal/domains/admin/service"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/validator"
	"lodge/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Administrator
	otel    otel.Otel
}

func New(service service.Administrator, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/administrators", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateAdministrator)
		routerGroup.Get("/", handler.GetAdministrators)
		routerGroup.Get("/{id}", handler.GetAdministratorByID)
		routerGroup.Patch("/{id}", handler.UpdateAdministrator)
		routerGroup.Delete("/{id}", handler.DeleteAdministrator)
	})
}

// CreateAdministrator registers a new administrator and returns the
// stored record. The password hash never appears in the response.
func (handler *Handler) CreateAdministrator(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAdministrator")
	defer scope.End()

	var req dto.CreateAdministratorRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	admin, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create administrator")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Administrator created successfully")

	response.WithJSON(w, http.StatusCreated, admin)
}

// GetAdministrators retrieves administrators with optional username and
// role filters.
func (handler *Handler) GetAdministrators(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAdministrators")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if username := r.URL.Query().Get(model.FieldUsername); username != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldUsername,
			Operator: gDto.FilterOperatorLike,
			Value:    username,
			Table:    model.TableName,
		})
	}

	if role := r.URL.Query().Get(model.FieldRole); role != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRole,
			Operator: gDto.FilterOperatorEq,
			Value:    role,
			Table:    model.TableName,
		})
	}

	admins, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get administrators")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Administrators retrieved successfully")

	response.WithJSON(w, http.StatusOK, admins)
}

// GetAdministratorByID retrieves an administrator by its ID.
func (handler *Handler) GetAdministratorByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAdministratorByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	admin, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get administrator by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Administrator retrieved successfully")

	response.WithJSON(w, http.StatusOK, admin)
}

// UpdateAdministrator applies a partial update to an administrator by its ID.
func (handler *Handler) UpdateAdministrator(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateAdministrator")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateAdministratorRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	admin, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update administrator")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Administrator updated successfully")

	response.WithJSON(w, http.StatusOK, admin)
}

// DeleteAdministrator deletes an administrator by its ID.
func (handler *Handler) DeleteAdministrator(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteAdministrator")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete administrator")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Administrator deleted successfully")

	response.WithMessage(w, http.StatusOK, "Administrator deleted successfully")
}
