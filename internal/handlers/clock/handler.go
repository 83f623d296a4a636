package clock

import (
	"net/http"

	"dualzone/internal/domains/clock/model/dto"
	"dualzone/internal/domains/clock/service"
	"dualzone/shared/constant"
	"dualzone/shared/validator"
	"dualzone/transport/http/middleware"
	"dualzone/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Clock
	middleware middleware.Timezone
}

func New(service service.Clock, middleware middleware.Timezone) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/time", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Timezone)

		routerGroup.Get("/now", handler.GetNow)
		routerGroup.Get("/zones", handler.GetZones)
		routerGroup.Put("/zones", handler.UpdateZones)
		routerGroup.Post("/convert", handler.Convert)
	})
}

// GetNow returns the current instant in the request's current zone.
// @Summary Current time
// @Tags Time
// @Produce json
// @Param X-Timezone header string false "Current zone for this request"
// @Success 200 {object} dto.NowResponse
// @Failure 400 {object} response.Error
// @Router /v1/time/now [get]
func (handler *Handler) GetNow(writer http.ResponseWriter, request *http.Request) {
	response.WithJSON(writer, http.StatusOK, handler.service.Now(request.Context()))
}

// GetZones returns the current and storage zones.
// @Summary Configured zones
// @Tags Time
// @Produce json
// @Success 200 {object} dto.ZonesResponse
// @Router /v1/time/zones [get]
func (handler *Handler) GetZones(writer http.ResponseWriter, request *http.Request) {
	response.WithJSON(writer, http.StatusOK, handler.service.Zones(request.Context()))
}

// UpdateZones replaces the application wide current and/or storage zone.
// @Summary Update zones
// @Tags Time
// @Accept json
// @Produce json
// @Param request body dto.UpdateZonesRequest true "Zones"
// @Success 200 {object} dto.ZonesResponse
// @Failure 400 {object} response.Error
// @Router /v1/time/zones [put]
func (handler *Handler) UpdateZones(writer http.ResponseWriter, request *http.Request) {
	req := dto.UpdateZonesRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.UpdateZones(request.Context(), req)
	if err != nil {
		log.Error().Err(err).Msg("failed to update zones")

		response.WithError(writer, err)

		return
	}

	response.WithJSONAndMessage(writer, http.StatusOK, res, constant.ResponseMessageZonesUpdated)
}

// Convert converts or constructs a date in the current or storage zone.
// @Summary Convert a date
// @Tags Time
// @Accept json
// @Produce json
// @Param request body dto.ConvertRequest true "Value and target zone"
// @Success 200 {object} dto.TimeResponse
// @Failure 400 {object} response.Error
// @Router /v1/time/convert [post]
func (handler *Handler) Convert(writer http.ResponseWriter, request *http.Request) {
	req := dto.ConvertRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Convert(request.Context(), req)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
