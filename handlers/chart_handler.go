package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"league-history/chart"
	"league-history/interfaces"
	"league-history/logging"
	"league-history/services"
)

// ChartHandler serves the rendered averages chart
type ChartHandler struct {
	charts interfaces.ChartServiceInterface
	logger *logging.Logger
}

// NewChartHandler creates a new chart handler
func NewChartHandler(charts interfaces.ChartServiceInterface) *ChartHandler {
	return &ChartHandler{
		charts: charts,
		logger: logging.WithPrefix("ChartHandler"),
	}
}

// AveragesChart handles GET /charts/averages.{format}
func (h *ChartHandler) AveragesChart(w http.ResponseWriter, r *http.Request) {
	format, err := chart.ParseFormat(mux.Vars(r)["format"])
	if err != nil {
		http.NotFound(w, r)
		return
	}

	data, err := h.charts.RenderAverages(r.Context(), format)
	if err != nil {
		h.logger.Errorf("Failed to render averages chart: %v", err)
		http.Error(w, services.LoadFailureMessage, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
