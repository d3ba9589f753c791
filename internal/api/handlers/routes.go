package handlers

import (
	"itinerary-planner/internal/api/dto"
	"itinerary-planner/internal/platform/validator"
	"itinerary-planner/internal/services"
	"net/http"
)

// OptimizeRoute orders arbitrary named points into a nearest-neighbor route
// starting from the first point.
func OptimizeRoute(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.OptimizeRouteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := validator.Validate(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, validator.Message(err))
		return
	}

	res := services.OptimizeRoute(req.Attractions())
	writeJSON(w, r, http.StatusOK, dto.NewOptimizeRouteResponse(res))
}
