package stubserver

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vats147/Inventory-mobile-app/internal/apperr"
	"github.com/vats147/Inventory-mobile-app/internal/backend"
	"github.com/vats147/Inventory-mobile-app/internal/model"
)

// maxProductFormSize bounds multipart product bodies, image included.
const maxProductFormSize = 10 << 20

type productsResponse struct {
	Products []model.Product `json:"products"`
}

func (s *Service) handleListProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	params := backend.ListProductsParams{
		Category: query.Get("category"),
		Search:   query.Get("search"),
	}
	params.Page, _ = strconv.Atoi(query.Get("page"))
	params.Limit, _ = strconv.Atoi(query.Get("limit"))

	products, err := s.backend.Products.List(r.Context(), params)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, productsResponse{Products: products})
}

func (s *Service) handleProductByID(w http.ResponseWriter, r *http.Request) {
	p, err := s.backend.Products.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, p)
}

func (s *Service) handleProductByCode(w http.ResponseWriter, r *http.Request) {
	p, err := s.backend.Products.GetByCode(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, p)
}

func (s *Service) handleAdjustQuantity(w http.ResponseWriter, r *http.Request) {
	var body struct {
		QuantityChange int `json:"quantityChange"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, r, apperr.ValidationErr.WrapParent(err))
		return
	}

	if err := s.backend.Products.AdjustQuantity(r.Context(), chi.URLParam(r, "id"), body.QuantityChange); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, map[string]bool{"success": true})
}

func (s *Service) handleReduceStock(w http.ResponseWriter, r *http.Request) {
	var params backend.ReduceStockParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		s.writeError(w, r, apperr.ValidationErr.WrapParent(err))
		return
	}
	if err := s.validate.Validate(params); err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := s.backend.Products.ReduceStock(r.Context(), params); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, map[string]bool{"success": true})
}

func (s *Service) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	form, err := s.parseProductForm(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	p, err := s.backend.Products.Create(r.Context(), form)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusCreated, p)
}

func (s *Service) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	form, err := s.parseProductForm(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	p, err := s.backend.Products.Update(r.Context(), chi.URLParam(r, "id"), form)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, p)
}

func (s *Service) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := s.backend.Products.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, map[string]bool{"success": true})
}

func (s *Service) handleLowStock(w http.ResponseWriter, r *http.Request) {
	s.productList(w, r, s.backend.Products.LowStock)
}

func (s *Service) handleExpired(w http.ResponseWriter, r *http.Request) {
	s.productList(w, r, s.backend.Products.Expired)
}

func (s *Service) handleExpiringSoon(w http.ResponseWriter, r *http.Request) {
	s.productList(w, r, s.backend.Products.ExpiringSoon)
}

func (s *Service) productList(w http.ResponseWriter, r *http.Request, fetch func(ctx context.Context) ([]model.Product, error)) {
	products, err := fetch(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, productsResponse{Products: products})
}

// parseProductForm reads the multipart create/update body: plain fields plus
// an optional image file.
func (s *Service) parseProductForm(r *http.Request) (backend.ProductForm, error) {
	if err := r.ParseMultipartForm(maxProductFormSize); err != nil {
		return backend.ProductForm{}, apperr.ValidationErr.WrapParent(err)
	}

	form := backend.ProductForm{
		Name:        r.FormValue("name"),
		Category:    r.FormValue("category"),
		Code:        r.FormValue("code"),
		Description: r.FormValue("description"),
	}
	form.Price, _ = strconv.ParseFloat(r.FormValue("price"), 64)
	form.Quantity, _ = strconv.Atoi(r.FormValue("quantity"))
	form.LowStockThreshold, _ = strconv.Atoi(r.FormValue("lowStockThreshold"))

	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()
		image, err := io.ReadAll(file)
		if err != nil {
			return backend.ProductForm{}, apperr.ValidationErr.WrapParent(err)
		}
		form.Image = image
		form.ImageName = header.Filename
	}

	if err := s.validate.Validate(form); err != nil {
		return backend.ProductForm{}, err
	}
	return form, nil
}
