// Package demo is the in-process stand-in for the remote backend: a seeded
// catalog, fabricated sessions and simulated latency. Everything resolves
// locally; nothing in this package ever touches the network.
package demo

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vats147/Inventory-mobile-app/internal/apperr"
	"github.com/vats147/Inventory-mobile-app/internal/backend"
	"github.com/vats147/Inventory-mobile-app/internal/model"
)

const (
	// demoTodaysSales is the fixed placeholder the dashboard shows; the demo
	// fixture has no real sales ledger behind it.
	demoTodaysSales = 42

	defaultLoginLatency = time.Second
	defaultOpLatency    = 500 * time.Millisecond

	defaultTopProductsLimit = 5
)

type productFields = backend.ProductForm

// Service serves every backend capability from the in-memory catalog.
type Service struct {
	logger *slog.Logger
	now    func() time.Time

	loginLatency time.Duration
	opLatency    time.Duration

	mu      sync.Mutex
	cat     *catalog
	current model.UserProfile
}

type Option func(*Service)

// WithoutLatency disables the simulated network delay. Tests use this.
func WithoutLatency() Option {
	return func(s *Service) {
		s.loginLatency = 0
		s.opLatency = 0
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func New(logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		logger:       logger.With(slog.String("service", "demo")),
		now:          time.Now,
		loginLatency: defaultLoginLatency,
		opLatency:    defaultOpLatency,
		cat:          newCatalog(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var (
	_ backend.Auth      = (*Service)(nil)
	_ backend.Products  = (*Service)(nil)
	_ backend.Analytics = (*Service)(nil)
	_ backend.Activity  = (*Service)(nil)
	_ backend.Users     = (*Service)(nil)
)

// Backend bundles the service into every capability slot.
func (s *Service) Backend() backend.Backend {
	return backend.Backend{
		Auth:      s,
		Products:  s,
		Analytics: s,
		Activity:  s,
		Users:     s,
	}
}

// FabricateSession builds a demo session for the given username. The role is
// admin exactly when the username contains "admin"; anything else is staff.
func FabricateSession(username string) model.Session {
	role := model.RoleStaff
	if strings.Contains(username, "admin") {
		role = model.RoleAdmin
	}

	return model.Session{
		Token: "demo-token-" + uuid.NewString(),
		User: model.UserProfile{
			ID:        "demo-user-" + uuid.NewString(),
			Username:  username,
			Email:     username,
			Role:      role,
			FirstName: "Demo",
			LastName:  "User",
		},
	}
}

// simulate pauses for the configured latency, honoring cancellation.
func (s *Service) simulate(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (s *Service) Login(ctx context.Context, creds model.Credentials) (model.Session, error) {
	if err := s.simulate(ctx, s.loginLatency); err != nil {
		return model.Session{}, err
	}

	sess := FabricateSession(creds.Email)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = sess.User
	if len(s.cat.users) == 0 || s.cat.users[len(s.cat.users)-1].Username != sess.User.Username {
		s.cat.users = append(s.cat.users, sess.User)
	}
	s.cat.appendLog("login", "", sess.User.ID, "demo login", s.now())

	s.logger.InfoContext(ctx, "demo login", slog.String("username", creds.Email), slog.String("role", string(sess.User.Role)))
	return sess, nil
}

func (s *Service) Logout(ctx context.Context) error {
	if err := s.simulate(ctx, s.opLatency); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cat.appendLog("logout", "", s.current.ID, "", s.now())
	s.current = model.UserProfile{}
	return nil
}

func (s *Service) Profile(ctx context.Context) (model.UserProfile, error) {
	if err := s.simulate(ctx, s.opLatency); err != nil {
		return model.UserProfile{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current.ID == "" {
		return model.UserProfile{}, apperr.ErrUnauthorized
	}
	return s.current, nil
}

// List ignores the filter params; the products screen filters client-side.
func (s *Service) List(ctx context.Context, _ backend.ListProductsParams) ([]model.Product, error) {
	if err := s.simulate(ctx, s.opLatency); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cat.list(), nil
}

func (s *Service) Get(ctx context.Context, id string) (model.Product, error) {
	if err := s.simulate(ctx, s.opLatency); err != nil {
		return model.Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.cat.byID(id)
	if err != nil {
		return model.Product{}, err
	}
	return *p, nil
}

func (s *Service) GetByCode(ctx context.Context, code string) (model.Product, error) {
	if err := s.simulate(ctx, s.opLatency); err != nil {
		return model.Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.cat.byCode(code)
	if err != nil {
		return model.Product{}, err
	}
	return *p, nil
}

func (s *Service) AdjustQuantity(ctx context.Context, id string, delta int) error {
	if err := s.simulate(ctx, s.opLatency); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	applied, err := s.cat.adjust(id, delta, s.now())
	if err != nil {
		return err
	}
	s.cat.appendLog("stock_adjust", id, s.current.ID, fmt.Sprintf("delta %+d applied %+d", delta, applied), s.now())

	s.logger.InfoContext(ctx, "demo quantity adjusted",
		slog.String("product_id", id), slog.Int("delta", delta), slog.Int("applied", applied))
	return nil
}

func (s *Service) ReduceStock(ctx context.Context, params backend.ReduceStockParams) error {
	if err := s.simulate(ctx, s.opLatency); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	applied, err := s.cat.adjust(params.ProductID, -params.Quantity, s.now())
	if err != nil {
		return err
	}
	detail := fmt.Sprintf("reduced %d applied %+d", params.Quantity, applied)
	if params.Reason != "" {
		detail += " reason " + params.Reason
	}
	s.cat.appendLog("stock_reduce", params.ProductID, s.current.ID, detail, s.now())

	s.logger.InfoContext(ctx, "demo stock reduced",
		slog.String("product_id", params.ProductID), slog.Int("quantity", params.Quantity), slog.String("reason", params.Reason))
	return nil
}

func (s *Service) Create(ctx context.Context, form backend.ProductForm) (model.Product, error) {
	if err := s.simulate(ctx, s.opLatency); err != nil {
		return model.Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.cat.create(form, s.now())
	s.cat.appendLog("product_create", p.ID, s.current.ID, p.Name, s.now())
	return p, nil
}

func (s *Service) Update(ctx context.Context, id string, form backend.ProductForm) (model.Product, error) {
	if err := s.simulate(ctx, s.opLatency); err != nil {
		return model.Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.cat.update(id, form)
	if err != nil {
		return model.Product{}, err
	}
	s.cat.appendLog("product_update", id, s.current.ID, p.Name, s.now())
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.simulate(ctx, s.opLatency); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.cat.delete(id); err != nil {
		return err
	}
	s.cat.appendLog("product_delete", id, s.current.ID, "", s.now())
	return nil
}

func (s *Service) LowStock(ctx context.Context) ([]model.Product, error) {
	if err := s.simulate(ctx, s.opLatency); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cat.filter(func(p model.Product) bool { return p.IsLowStock }), nil
}

func (s *Service) Expired(ctx context.Context) ([]model.Product, error) {
	if err := s.simulate(ctx, s.opLatency); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cat.filter(func(p model.Product) bool { return p.IsExpired }), nil
}

func (s *Service) ExpiringSoon(ctx context.Context) ([]model.Product, error) {
	if err := s.simulate(ctx, s.opLatency); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cat.filter(func(p model.Product) bool { return p.IsExpiringSoon }), nil
}

func (s *Service) Dashboard(ctx context.Context) (model.DashboardMetrics, error) {
	if err := s.simulate(ctx, s.opLatency); err != nil {
		return model.DashboardMetrics{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cat.metrics(), nil
}

func (s *Service) Sales(ctx context.Context, _ backend.SalesParams) ([]model.SalesPoint, error) {
	if err := s.simulate(ctx, s.opLatency); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cat.sales(), nil
}

func (s *Service) TopProducts(ctx context.Context, params backend.TopProductsParams) ([]model.TopProduct, error) {
	if err := s.simulate(ctx, s.opLatency); err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultTopProductsLimit
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cat.topProducts(limit), nil
}

func (s *Service) InventoryValue(ctx context.Context) (model.InventoryValue, error) {
	if err := s.simulate(ctx, s.opLatency); err != nil {
		return model.InventoryValue{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cat.inventoryValue(), nil
}

func (s *Service) StockMovement(ctx context.Context, _ backend.StockMovementParams) ([]model.StockMovement, error) {
	if err := s.simulate(ctx, s.opLatency); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cat.stockMovement(), nil
}

func (s *Service) Logs(ctx context.Context, params backend.ActivityLogsParams) ([]model.ActivityLog, error) {
	if err := s.simulate(ctx, s.opLatency); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.ActivityLog, 0, len(s.cat.logs))
	for _, l := range s.cat.logs {
		if params.Action != "" && l.Action != params.Action {
			continue
		}
		out = append(out, l)
	}
	if params.Limit > 0 && len(out) > params.Limit {
		out = out[len(out)-params.Limit:]
	}
	return out, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]model.UserProfile, error) {
	if err := s.simulate(ctx, s.opLatency); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.UserProfile, len(s.cat.users))
	copy(out, s.cat.users)
	return out, nil
}

func (s *Service) CreateUser(ctx context.Context, params backend.CreateUserParams) (model.UserProfile, error) {
	if err := s.simulate(ctx, s.opLatency); err != nil {
		return model.UserProfile{}, err
	}

	user := model.UserProfile{
		ID:        "demo-user-" + uuid.NewString(),
		Username:  params.Username,
		Email:     params.Email,
		Role:      params.Role,
		FirstName: params.FirstName,
		LastName:  params.LastName,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cat.users = append(s.cat.users, user)
	s.cat.appendLog("user_create", "", user.ID, user.Username, s.now())
	return user, nil
}

func (s *Service) UpdateUser(ctx context.Context, id string, params backend.UpdateUserParams) (model.UserProfile, error) {
	if err := s.simulate(ctx, s.opLatency); err != nil {
		return model.UserProfile{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cat.users {
		if s.cat.users[i].ID != id {
			continue
		}
		if params.Email != "" {
			s.cat.users[i].Email = params.Email
		}
		if params.Role != "" {
			s.cat.users[i].Role = params.Role
		}
		if params.FirstName != "" {
			s.cat.users[i].FirstName = params.FirstName
		}
		if params.LastName != "" {
			s.cat.users[i].LastName = params.LastName
		}
		return s.cat.users[i], nil
	}
	return model.UserProfile{}, apperr.ErrUserNotFound
}

func (s *Service) DeleteUser(ctx context.Context, id string) error {
	if err := s.simulate(ctx, s.opLatency); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cat.users {
		if s.cat.users[i].ID == id {
			s.cat.users = append(s.cat.users[:i], s.cat.users[i+1:]...)
			return nil
		}
	}
	return apperr.ErrUserNotFound
}
