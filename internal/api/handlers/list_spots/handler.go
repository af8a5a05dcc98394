package list_spots

import (
	"net/http"
	"strings"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
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

// Handle GET /api/parking-spots?search=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("search"))

	var (
		spots []SpotResponse
		err   error
	)

	if query != "" {
		result, searchErr := h.service.Search(r.Context(), query)
		if searchErr != nil {
			err = searchErr
		} else {
			spots = FromDomainSpotList(result)
		}
	} else {
		result, listErr := h.service.List(r.Context())
		if listErr != nil {
			err = listErr
		} else {
			spots = FromDomainSpotList(result)
		}
	}

	if err != nil {
		h.logger.Error("GET /parking-spots - Failed to list spots: query=%q, error=%v", query, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /parking-spots - Returned %d spots, query=%q", len(spots), query)
	handlers.RespondJSON(w, http.StatusOK, spots)
}
