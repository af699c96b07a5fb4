package stubserver

import (
	"net/http"
	"strconv"

	"github.com/vats147/Inventory-mobile-app/internal/backend"
)

func (s *Service) handleDashboard(w http.ResponseWriter, r *http.Request) {
	metrics, err := s.backend.Analytics.Dashboard(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, metrics)
}

func (s *Service) handleSales(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	points, err := s.backend.Analytics.Sales(r.Context(), backend.SalesParams{
		StartDate: query.Get("startDate"),
		EndDate:   query.Get("endDate"),
		GroupBy:   query.Get("groupBy"),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, points)
}

func (s *Service) handleTopProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	limit, _ := strconv.Atoi(query.Get("limit"))

	tops, err := s.backend.Analytics.TopProducts(r.Context(), backend.TopProductsParams{
		Limit:  limit,
		Period: query.Get("period"),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, tops)
}

func (s *Service) handleInventoryValue(w http.ResponseWriter, r *http.Request) {
	value, err := s.backend.Analytics.InventoryValue(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, value)
}

func (s *Service) handleStockMovement(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	moves, err := s.backend.Analytics.StockMovement(r.Context(), backend.StockMovementParams{
		StartDate: query.Get("startDate"),
		EndDate:   query.Get("endDate"),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, moves)
}

func (s *Service) handleActivityLogs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	params := backend.ActivityLogsParams{
		Action:    query.Get("action"),
		StartDate: query.Get("startDate"),
		EndDate:   query.Get("endDate"),
	}
	params.Page, _ = strconv.Atoi(query.Get("page"))
	params.Limit, _ = strconv.Atoi(query.Get("limit"))

	logs, err := s.backend.Activity.Logs(r.Context(), params)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, logs)
}
