package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"solar-system-server/internal/planet"
	"solar-system-server/internal/shared/errors"
	"solar-system-server/internal/shared/response"
)

const (
	dataSource  = "NASA/IAU Planetary Fact Sheets"
	lastUpdated = "2024"
	scaleNote   = "Sizes and distances are scaled for visualization"

	retrievePlanetsFailed = "Failed to retrieve planet data"
	retrieveSystemFailed  = "Failed to retrieve system information"
)

type ScaleInfo struct {
	SizeScaleFactor     float64 `json:"size_scale_factor"`
	DistanceScaleFactor float64 `json:"distance_scale_factor"`
	Note                string  `json:"note"`
}

type ListMetadata struct {
	ScaleInfo   ScaleInfo `json:"scale_info"`
	DataSource  string    `json:"data_source"`
	LastUpdated string    `json:"last_updated"`
}

type ListResponse struct {
	Success  bool                `json:"success"`
	Count    int                 `json:"count"`
	Planets  []planet.Serialized `json:"planets"`
	Metadata ListMetadata        `json:"metadata"`
}

type DetailResponse struct {
	Success bool           `json:"success"`
	Planet  *planet.Detail `json:"planet"`
}

type SystemInfoResponse struct {
	Success    bool               `json:"success"`
	SystemInfo *planet.SystemInfo `json:"system_info"`
}

type PlanetHandler struct {
	service *planet.Service
	logger  *slog.Logger
}

func NewPlanetHandler(service *planet.Service, logger *slog.Logger) *PlanetHandler {
	return &PlanetHandler{service: service, logger: logger}
}

// fail sends client errors as they are and replaces the message of server
// errors with a fixed one
func fail(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, serverMessage string) {
	switch errors.GetType(err) {
	case errors.ErrorTypeNotFound, errors.ErrorTypeValidation, errors.ErrorTypeMethodNotAllowed:
		response.Error(w, r, logger, err)
	default:
		response.ErrorWithMessage(w, r, logger, err, serverMessage)
	}
}

// List serves every active body. ?type=<planet_type> and ?dwarf=true narrow it.
func (h *PlanetHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.logger.With("handler", "list_planets")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	var (
		bodies []planet.CelestialBody
		err    error
	)

	query := r.URL.Query()
	switch {
	case query.Get("type") != "":
		bodies, err = h.service.ListByType(ctx, query.Get("type"))
	case query.Get("dwarf") != "":
		dwarf, parseErr := strconv.ParseBool(query.Get("dwarf"))
		if parseErr != nil {
			response.Error(w, r, logger, errors.WrapValidation("invalid dwarf filter", parseErr))
			return
		}
		if dwarf {
			bodies, err = h.service.ListDwarfPlanets(ctx)
		} else {
			bodies, err = h.service.ListActive(ctx)
		}
	default:
		bodies, err = h.service.ListActive(ctx)
	}
	if err != nil {
		fail(w, r, logger, err, retrievePlanetsFailed)
		return
	}

	planets := planet.SerializeAll(bodies)
	logger.Info("Served planet data", "count", len(planets))

	response.Success(w, http.StatusOK, ListResponse{
		Success: true,
		Count:   len(planets),
		Planets: planets,
		Metadata: ListMetadata{
			ScaleInfo: ScaleInfo{
				SizeScaleFactor:     planet.DefaultSizeScale,
				DistanceScaleFactor: planet.DefaultDistanceScale,
				Note:                scaleNote,
			},
			DataSource:  dataSource,
			LastUpdated: lastUpdated,
		},
	})
}

func (h *PlanetHandler) Detail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.logger.With("handler", "planet_detail")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	idStr := r.PathValue("id")
	if idStr == "" {
		response.Error(w, r, logger, errors.Validation("planet ID is required"))
		return
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		response.Error(w, r, logger, errors.WrapValidation("invalid planet ID format", err))
		return
	}

	detail, err := h.service.GetDetail(ctx, id)
	if err != nil {
		fail(w, r, logger, err, retrievePlanetsFailed)
		return
	}

	response.Success(w, http.StatusOK, DetailResponse{Success: true, Planet: detail})
}

func (h *PlanetHandler) SystemInfo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.logger.With("handler", "system_info")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	info, err := h.service.SystemInfo(ctx)
	if err != nil {
		fail(w, r, logger, err, retrieveSystemFailed)
		return
	}

	response.Success(w, http.StatusOK, SystemInfoResponse{Success: true, SystemInfo: info})
}
