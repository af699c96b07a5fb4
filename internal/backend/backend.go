// Package backend defines the capability interface every data source of the
// app satisfies. Two implementations exist: the live REST client and the
// in-memory demo fixture. Which one a session uses is decided once, at
// dispatch construction, never per call.
package backend

import (
	"context"

	"github.com/vats147/Inventory-mobile-app/internal/model"
)

type Auth interface {
	// Login exchanges credentials for a session. Persisting the session is
	// the caller's responsibility.
	Login(ctx context.Context, creds model.Credentials) (model.Session, error)
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (model.UserProfile, error)
}

type ListProductsParams struct {
	Category string
	Search   string
	Page     int
	Limit    int
}

type ReduceStockParams struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
	Reason    string `json:"reason,omitempty"`
}

// ProductForm carries the fields of a product create/update, which go over
// the wire as multipart form data (the only non-JSON bodies in the API).
type ProductForm struct {
	Name              string  `validate:"required"`
	Price             float64 `validate:"gte=0"`
	Quantity          int     `validate:"gte=0"`
	Category          string  `validate:"required"`
	Code              string  `validate:"required"`
	Description       string
	LowStockThreshold int `validate:"gte=0"`

	// Optional product image; ImageName is the multipart file name.
	Image     []byte
	ImageName string
}

type Products interface {
	List(ctx context.Context, params ListProductsParams) ([]model.Product, error)
	Get(ctx context.Context, id string) (model.Product, error)
	// GetByCode looks a product up by its scan code. Matching is exact but
	// case-insensitive.
	GetByCode(ctx context.Context, code string) (model.Product, error)
	// AdjustQuantity applies a signed delta to the product's quantity. The
	// result is clamped at zero; the low-stock flag is recomputed.
	AdjustQuantity(ctx context.Context, id string, delta int) error
	// ReduceStock always decreases, with the same clamping semantics.
	ReduceStock(ctx context.Context, params ReduceStockParams) error
	Create(ctx context.Context, form ProductForm) (model.Product, error)
	Update(ctx context.Context, id string, form ProductForm) (model.Product, error)
	Delete(ctx context.Context, id string) error
	LowStock(ctx context.Context) ([]model.Product, error)
	Expired(ctx context.Context) ([]model.Product, error)
	ExpiringSoon(ctx context.Context) ([]model.Product, error)
}

type SalesParams struct {
	StartDate string
	EndDate   string
	GroupBy   string
}

type TopProductsParams struct {
	Limit  int
	Period string
}

type StockMovementParams struct {
	StartDate string
	EndDate   string
}

type Analytics interface {
	// Dashboard aggregates the current product set. Never cached.
	Dashboard(ctx context.Context) (model.DashboardMetrics, error)
	Sales(ctx context.Context, params SalesParams) ([]model.SalesPoint, error)
	TopProducts(ctx context.Context, params TopProductsParams) ([]model.TopProduct, error)
	InventoryValue(ctx context.Context) (model.InventoryValue, error)
	StockMovement(ctx context.Context, params StockMovementParams) ([]model.StockMovement, error)
}

type ActivityLogsParams struct {
	Page      int
	Limit     int
	Action    string
	StartDate string
	EndDate   string
}

type Activity interface {
	Logs(ctx context.Context, params ActivityLogsParams) ([]model.ActivityLog, error)
}

type CreateUserParams struct {
	Username  string     `json:"username" validate:"required"`
	Email     string     `json:"email" validate:"required,email"`
	Password  string     `json:"password" validate:"required,min=6"`
	Role      model.Role `json:"role" validate:"required,enum"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
}

type UpdateUserParams struct {
	Email     string     `json:"email,omitempty" validate:"omitempty,email"`
	Role      model.Role `json:"role,omitempty" validate:"omitempty,enum"`
	FirstName string     `json:"firstName,omitempty"`
	LastName  string     `json:"lastName,omitempty"`
}

// Users is the admin-only user management surface.
type Users interface {
	ListUsers(ctx context.Context) ([]model.UserProfile, error)
	CreateUser(ctx context.Context, params CreateUserParams) (model.UserProfile, error)
	UpdateUser(ctx context.Context, id string, params UpdateUserParams) (model.UserProfile, error)
	DeleteUser(ctx context.Context, id string) error
}

// Backend bundles one implementation of every capability. The demo service
// and the REST client each fill all five slots.
type Backend struct {
	Auth      Auth
	Products  Products
	Analytics Analytics
	Activity  Activity
	Users     Users
}
