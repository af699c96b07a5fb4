package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/vats147/Inventory-mobile-app/internal/apperr"
	"github.com/vats147/Inventory-mobile-app/internal/backend"
	"github.com/vats147/Inventory-mobile-app/internal/model"
)

// productsEnvelope is the list shape the backend uses.
type productsEnvelope struct {
	Products []model.Product `json:"products"`
}

func (c *Client) List(ctx context.Context, params backend.ListProductsParams) ([]model.Product, error) {
	query := url.Values{}
	if params.Category != "" {
		query.Set("category", params.Category)
	}
	if params.Search != "" {
		query.Set("search", params.Search)
	}
	if params.Page > 0 {
		query.Set("page", intParam(params.Page))
	}
	if params.Limit > 0 {
		query.Set("limit", intParam(params.Limit))
	}

	var env productsEnvelope
	if err := c.do(ctx, http.MethodGet, "/products", query, nil, &env); err != nil {
		return nil, err
	}
	return env.Products, nil
}

func (c *Client) Get(ctx context.Context, id string) (model.Product, error) {
	var p model.Product
	if err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(id), nil, nil, &p); err != nil {
		if apperr.IsNotFound(err) {
			return model.Product{}, apperr.ErrProductNotFound.WrapParent(err)
		}
		return model.Product{}, err
	}
	return p, nil
}

func (c *Client) GetByCode(ctx context.Context, code string) (model.Product, error) {
	var p model.Product
	if err := c.do(ctx, http.MethodGet, "/products/barcode/"+url.PathEscape(code), nil, nil, &p); err != nil {
		if apperr.IsNotFound(err) {
			return model.Product{}, apperr.ErrProductNotFound.WrapParent(err)
		}
		return model.Product{}, err
	}
	return p, nil
}

func (c *Client) AdjustQuantity(ctx context.Context, id string, delta int) error {
	body := struct {
		QuantityChange int `json:"quantityChange"`
	}{QuantityChange: delta}

	err := c.do(ctx, http.MethodPatch, "/products/"+url.PathEscape(id)+"/quantity", nil, body, nil)
	if apperr.IsNotFound(err) {
		return apperr.ErrProductNotFound.WrapParent(err)
	}
	return err
}

func (c *Client) ReduceStock(ctx context.Context, params backend.ReduceStockParams) error {
	err := c.do(ctx, http.MethodPost, "/stock/reduce", nil, params, nil)
	if apperr.IsNotFound(err) {
		return apperr.ErrProductNotFound.WrapParent(err)
	}
	return err
}

func (c *Client) Create(ctx context.Context, form backend.ProductForm) (model.Product, error) {
	return c.sendProductForm(ctx, http.MethodPost, "/products", form)
}

func (c *Client) Update(ctx context.Context, id string, form backend.ProductForm) (model.Product, error) {
	return c.sendProductForm(ctx, http.MethodPut, "/products/"+url.PathEscape(id), form)
}

func (c *Client) sendProductForm(ctx context.Context, method, path string, form backend.ProductForm) (model.Product, error) {
	body, contentType, err := writeMultipart(form)
	if err != nil {
		return model.Product{}, err
	}

	req, err := c.newRequest(ctx, method, path, nil, body)
	if err != nil {
		return model.Product{}, err
	}
	req.Header.Set("Content-Type", contentType)

	var p model.Product
	if err := c.send(req, &p); err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	err := c.do(ctx, http.MethodDelete, "/products/"+url.PathEscape(id), nil, nil, nil)
	if apperr.IsNotFound(err) {
		return apperr.ErrProductNotFound.WrapParent(err)
	}
	return err
}

func (c *Client) LowStock(ctx context.Context) ([]model.Product, error) {
	return c.productList(ctx, "/products/low-stock")
}

func (c *Client) Expired(ctx context.Context) ([]model.Product, error) {
	return c.productList(ctx, "/products/expired")
}

func (c *Client) ExpiringSoon(ctx context.Context) ([]model.Product, error) {
	return c.productList(ctx, "/products/expiring-soon")
}

func (c *Client) productList(ctx context.Context, path string) ([]model.Product, error) {
	var env productsEnvelope
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &env); err != nil {
		return nil, err
	}
	return env.Products, nil
}
