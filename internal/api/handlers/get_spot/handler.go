package get_spot

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/api/handlers/list_spots"
	spotsService "github.com/m04kA/SMC-ParkingService/internal/service/spots"
)

const (
	msgSpotNotFound = "parking spot not found"
)

type Handler struct {
	service SpotsService
	logger  Logger
}

func NewHandler(service SpotsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/parking-spots/{spotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	spotID := mux.Vars(r)["spotId"]

	spot, err := h.service.Get(r.Context(), spotID)
	if err != nil {
		switch {
		case errors.Is(err, spotsService.ErrSpotNotFound):
			h.logger.Warn("GET /parking-spots/{id} - Spot not found: spot_id=%s", spotID)
			handlers.RespondNotFound(w, msgSpotNotFound)

		default:
			h.logger.Error("GET /parking-spots/{id} - Failed to get spot: spot_id=%s, error=%v", spotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /parking-spots/{id} - Returned spot: spot_id=%s", spotID)
	handlers.RespondJSON(w, http.StatusOK, list_spots.FromDomainSpot(spot))
}
