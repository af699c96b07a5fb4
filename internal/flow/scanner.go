package flow

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/vats147/Inventory-mobile-app/internal/apperr"
	"github.com/vats147/Inventory-mobile-app/internal/backend"
	"github.com/vats147/Inventory-mobile-app/internal/model"
	"github.com/vats147/Inventory-mobile-app/pkg/zerror"
)

// ScannerState is where the stock-adjustment flow currently stands.
type ScannerState uint8

const (
	StateIdle ScannerState = iota
	StateSearching
	StateProductFound
	StateAdjusting
)

func (s ScannerState) String() string {
	return []string{"idle", "searching", "product_found", "adjusting"}[s]
}

// Operation is what the user wants to do with the found product.
type Operation string

const (
	OperationAdd    Operation = "add"
	OperationReduce Operation = "reduce"
)

const reduceReasonSale = "Sale"

// Scanner drives the scan → lookup → adjust loop. A scan or manual code
// submission triggers the lookup; from a found product the user picks an
// operation and a quantity and confirms. All transient state is cleared
// when the adjustment finishes, whether it worked or not.
//
// Not safe for concurrent use; one scanner serves one screen.
type Scanner struct {
	products backend.Products
	logger   *slog.Logger

	state    ScannerState
	lastCode string
	product  *model.Product
	op       Operation
	quantity int
}

func NewScanner(products backend.Products, logger *slog.Logger) *Scanner {
	return &Scanner{
		products: products,
		logger:   logger.With(slog.String("flow", "scanner")),
		op:       OperationReduce,
		quantity: 1,
	}
}

func (s *Scanner) State() ScannerState { return s.state }

// Product returns the currently held product, if any.
func (s *Scanner) Product() (model.Product, bool) {
	if s.product == nil {
		return model.Product{}, false
	}
	return *s.product, true
}

// Scan handles input from a scan source. Continuous scanners fire the same
// code repeatedly; an identical code to the last seen one is a no-op so the
// lookup is not redone.
func (s *Scanner) Scan(ctx context.Context, code string) (model.Product, error) {
	if code == "" {
		return model.Product{}, apperr.ValidationErr.WithMsg("empty scan code")
	}
	if code == s.lastCode {
		if s.product != nil {
			return *s.product, nil
		}
		return model.Product{}, apperr.ErrProductNotFound
	}

	return s.search(ctx, code)
}

// Submit handles manual code entry. Unlike Scan it has no de-duplication:
// the user pressing search again means search again.
func (s *Scanner) Submit(ctx context.Context, code string) (model.Product, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return model.Product{}, apperr.ValidationErr.WithMsg("please enter a code")
	}

	return s.search(ctx, code)
}

func (s *Scanner) search(ctx context.Context, code string) (model.Product, error) {
	s.state = StateSearching
	s.lastCode = code

	p, err := s.products.GetByCode(ctx, code)
	if err != nil {
		// Back to idle, but the last-seen code is kept so a continuously
		// firing scanner does not hammer the backend with the same miss.
		s.state = StateIdle
		s.product = nil
		s.logger.WarnContext(ctx, "lookup failed", slog.String("code", code), slog.Any("error", err))
		return model.Product{}, err
	}

	s.state = StateProductFound
	s.product = &p
	s.logger.InfoContext(ctx, "product found",
		slog.String("code", code), slog.String("product_id", p.ID), slog.Int("quantity", p.Quantity))
	return p, nil
}

// SelectOperation picks add or reduce. Only valid while holding a product.
func (s *Scanner) SelectOperation(op Operation) error {
	if s.state != StateProductFound {
		return apperr.ValidationErr.WithMsg("no product selected")
	}
	if op != OperationAdd && op != OperationReduce {
		return apperr.ValidationErr.WithMsg("unknown operation")
	}
	s.op = op
	return nil
}

// SetQuantity parses and checks the quantity input. Anything that is not a
// positive integer is rejected here, before any dispatch call is made.
func (s *Scanner) SetQuantity(input string) error {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n <= 0 {
		return apperr.ValidationErr.WithMsg("please enter a valid quantity")
	}
	s.quantity = n
	return nil
}

// Confirm applies the selected operation and resets the flow. The transient
// state (code, product, quantity) is cleared on success and on failure.
func (s *Scanner) Confirm(ctx context.Context) error {
	if s.state != StateProductFound || s.product == nil {
		return apperr.ValidationErr.WithMsg("nothing to confirm")
	}

	s.state = StateAdjusting
	product := *s.product
	defer s.reset()

	var err error
	switch s.op {
	case OperationAdd:
		err = s.products.AdjustQuantity(ctx, product.ID, s.quantity)
	case OperationReduce:
		err = s.products.ReduceStock(ctx, backend.ReduceStockParams{
			ProductID: product.ID,
			Quantity:  s.quantity,
			Reason:    reduceReasonSale,
		})
	}

	if err != nil {
		s.logger.WarnContext(ctx, "stock adjustment failed",
			slog.String("product_id", product.ID), slog.String("operation", string(s.op)), slog.Any("error", err))
		return err
	}

	s.logger.InfoContext(ctx, "stock adjusted",
		slog.String("product_id", product.ID), slog.String("operation", string(s.op)), slog.Int("quantity", s.quantity))
	return nil
}

// Cancel abandons the current product and clears transient state.
func (s *Scanner) Cancel() {
	s.reset()
}

func (s *Scanner) reset() {
	s.state = StateIdle
	s.lastCode = ""
	s.product = nil
	s.op = OperationReduce
	s.quantity = 1
}

// UserMessage translates a flow error into what the screen shows. NotFound
// is distinguished from everything else, as the scanner alerts differently.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case apperr.IsNotFound(err):
		return "No product found with this code."
	case apperr.IsUnauthorized(err):
		return "Invalid credentials. Please check your username and password."
	case apperr.IsUnavailable(err):
		return "Cannot connect to server."
	}

	var zErr zerror.ZError
	if errors.As(err, &zErr) && zErr.Msg() != "" {
		return zErr.Msg()
	}
	return "Something went wrong. Please try again."
}
