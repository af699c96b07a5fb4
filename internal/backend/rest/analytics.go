package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/vats147/Inventory-mobile-app/internal/backend"
	"github.com/vats147/Inventory-mobile-app/internal/model"
)

func (c *Client) Dashboard(ctx context.Context) (model.DashboardMetrics, error) {
	var m model.DashboardMetrics
	if err := c.do(ctx, http.MethodGet, "/analytics/dashboard", nil, nil, &m); err != nil {
		return model.DashboardMetrics{}, err
	}
	return m, nil
}

func (c *Client) Sales(ctx context.Context, params backend.SalesParams) ([]model.SalesPoint, error) {
	query := url.Values{}
	if params.StartDate != "" {
		query.Set("startDate", params.StartDate)
	}
	if params.EndDate != "" {
		query.Set("endDate", params.EndDate)
	}
	if params.GroupBy != "" {
		query.Set("groupBy", params.GroupBy)
	}

	var points []model.SalesPoint
	if err := c.do(ctx, http.MethodGet, "/analytics/sales", query, nil, &points); err != nil {
		return nil, err
	}
	return points, nil
}

func (c *Client) TopProducts(ctx context.Context, params backend.TopProductsParams) ([]model.TopProduct, error) {
	query := url.Values{}
	if params.Limit > 0 {
		query.Set("limit", intParam(params.Limit))
	}
	if params.Period != "" {
		query.Set("period", params.Period)
	}

	var tops []model.TopProduct
	if err := c.do(ctx, http.MethodGet, "/analytics/top-products", query, nil, &tops); err != nil {
		return nil, err
	}
	return tops, nil
}

func (c *Client) InventoryValue(ctx context.Context) (model.InventoryValue, error) {
	var v model.InventoryValue
	if err := c.do(ctx, http.MethodGet, "/analytics/inventory-value", nil, nil, &v); err != nil {
		return model.InventoryValue{}, err
	}
	return v, nil
}

func (c *Client) StockMovement(ctx context.Context, params backend.StockMovementParams) ([]model.StockMovement, error) {
	query := url.Values{}
	if params.StartDate != "" {
		query.Set("startDate", params.StartDate)
	}
	if params.EndDate != "" {
		query.Set("endDate", params.EndDate)
	}

	var moves []model.StockMovement
	if err := c.do(ctx, http.MethodGet, "/analytics/stock-movement", query, nil, &moves); err != nil {
		return nil, err
	}
	return moves, nil
}

func (c *Client) Logs(ctx context.Context, params backend.ActivityLogsParams) ([]model.ActivityLog, error) {
	query := url.Values{}
	if params.Page > 0 {
		query.Set("page", intParam(params.Page))
	}
	if params.Limit > 0 {
		query.Set("limit", intParam(params.Limit))
	}
	if params.Action != "" {
		query.Set("action", params.Action)
	}
	if params.StartDate != "" {
		query.Set("startDate", params.StartDate)
	}
	if params.EndDate != "" {
		query.Set("endDate", params.EndDate)
	}

	var logs []model.ActivityLog
	if err := c.do(ctx, http.MethodGet, "/activity-logs", query, nil, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}
