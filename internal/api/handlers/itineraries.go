package handlers

import (
	"errors"
	"itinerary-planner/internal/api/dto"
	"itinerary-planner/internal/platform/obs"
	"itinerary-planner/internal/platform/validator"
	"itinerary-planner/internal/ports"
	"itinerary-planner/internal/services"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type ItineraryHandler struct {
	Source ports.CitySource
	Logger *zap.Logger
	// Now seeds the shuffle strategy when the request has no seed.
	Now func() time.Time
}

// Plan generates a day-by-day itinerary for one city.
func (h *ItineraryHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.ItineraryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := validator.Validate(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, validator.Message(err))
		return
	}

	now := time.Now
	if h.Now != nil {
		now = h.Now
	}

	svcReq := services.NormalizeItineraryRequest(req.Input(uint64(now().UnixNano())))

	itinerary, err := services.PlanItinerary(r.Context(), svcReq, h.Source)
	if errors.Is(err, ports.ErrCityNotFound) {
		writeError(w, r, http.StatusNotFound, "city not found")
		return
	}
	if err != nil {
		loggerOrGlobal(h.Logger).Error("plan itinerary failed",
			zap.String("req_id", obs.RequestID(r.Context())),
			zap.Int("city_id", req.CityID),
			zap.Error(err),
		)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewItineraryResponse(itinerary))
}
