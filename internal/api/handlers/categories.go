package handlers

import (
	"itinerary-planner/internal/api/dto"
	"itinerary-planner/internal/platform/obs"
	"itinerary-planner/internal/ports"
	"net/http"

	"go.uber.org/zap"
)

type CategoryHandler struct {
	Source ports.CitySource
	Logger *zap.Logger
}

// List returns the distinct attraction categories known to the source.
// Sources that cannot list categories yield an empty list.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	lister, ok := h.Source.(ports.CategoryLister)
	if !ok {
		writeJSON(w, r, http.StatusOK, dto.CategoriesResponse{Categories: []string{}})
		return
	}

	categories, err := lister.ListCategories(r.Context())
	if err != nil {
		loggerOrGlobal(h.Logger).Error("list categories failed",
			zap.String("req_id", obs.RequestID(r.Context())),
			zap.Error(err),
		)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	if categories == nil {
		categories = []string{}
	}

	writeJSON(w, r, http.StatusOK, dto.CategoriesResponse{Categories: categories})
}
