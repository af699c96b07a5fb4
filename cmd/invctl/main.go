// invctl is the terminal face of the inventory client: sign in (or fall
// back to demo mode), browse products, scan codes to adjust stock and read
// the dashboard, all through the same flows the app uses.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/vats147/Inventory-mobile-app/internal/apperr"
	"github.com/vats147/Inventory-mobile-app/internal/backend"
	"github.com/vats147/Inventory-mobile-app/internal/backend/demo"
	"github.com/vats147/Inventory-mobile-app/internal/backend/rest"
	"github.com/vats147/Inventory-mobile-app/internal/config"
	"github.com/vats147/Inventory-mobile-app/internal/dispatch"
	"github.com/vats147/Inventory-mobile-app/internal/flow"
	"github.com/vats147/Inventory-mobile-app/internal/log"
	"github.com/vats147/Inventory-mobile-app/internal/model"
	"github.com/vats147/Inventory-mobile-app/internal/session"
	"github.com/vats147/Inventory-mobile-app/pkg/validator"
)

// Preset accounts matching the backend's seeded users, for quick sign-in
// during development.
const (
	quickAdminEmail = "admin@offlicense.com"
	quickStaffEmail = "staff@offlicense.com"
	quickPassword   = "password123"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("error running invctl: %v\n", err)
		os.Exit(1)
	}
}

type app struct {
	in      *bufio.Reader
	logger  *slog.Logger
	store   *session.Store
	login   *flow.Login
	demoSvc *demo.Service
	live    *rest.Client
	backend backend.Backend
	scanner *flow.Scanner
	user    model.UserProfile
}

func run() error {
	type Config struct {
		Log     config.Log
		API     config.API
		Session config.Session
		Demo    config.Demo
	}
	cfg, err := config.New[Config]()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logger := log.NewSlogLogger(cfg.Log)

	store, err := session.Open(cfg.Session.Path)
	if err != nil {
		return fmt.Errorf("error opening session store: %w", err)
	}
	defer store.Close()

	v, err := validator.NewDefaultValidator()
	if err != nil {
		return fmt.Errorf("error creating validator: %w", err)
	}

	var demoOpts []demo.Option
	if !cfg.Demo.SimulateLatency {
		demoOpts = append(demoOpts, demo.WithoutLatency())
	}

	a := &app{
		in:      bufio.NewReader(os.Stdin),
		logger:  logger,
		store:   store,
		demoSvc: demo.New(logger, demoOpts...),
		live:    rest.New(cfg.API, store, logger),
	}
	a.login = flow.NewLogin(store, a.live, v, logger)

	if err := a.ensureSignedIn(); err != nil {
		return err
	}

	ctx := log.WithUsername(context.Background(), a.user.Username)
	if on, _ := store.DemoMode(); on {
		ctx = log.WithDemoMode(ctx)
	}

	a.backend, err = dispatch.Select(store, a.demoSvc.Backend(), a.live.Backend())
	if err != nil {
		return err
	}
	a.scanner = flow.NewScanner(a.backend.Products, logger)

	return a.menu(ctx)
}

// ensureSignedIn reuses a stored session or walks the login flow, offering
// demo mode when the backend cannot be reached.
func (a *app) ensureSignedIn() error {
	if user, ok, err := a.store.User(); err == nil && ok {
		if token, _ := a.store.Token(); token != "" {
			a.user = user
			fmt.Printf("Signed in as %s (%s)\n", user.Username, user.Role)
			return nil
		}
	}

	for {
		email := a.prompt("Email (or 'admin'/'staff' for the preset accounts): ")
		password := ""
		switch email {
		case "admin":
			email, password = quickAdminEmail, quickPassword
		case "staff":
			email, password = quickStaffEmail, quickPassword
		default:
			password = a.prompt("Password: ")
		}

		sess, err := a.login.Run(context.Background(), email, password)
		if err == nil {
			a.user = sess.User
			fmt.Printf("Welcome, %s %s!\n", sess.User.FirstName, sess.User.LastName)
			return nil
		}

		if apperr.IsUnavailable(err) {
			if a.confirm("Cannot connect to server. Continue in demo mode? [y/N] ") {
				sess, err := a.login.EnterDemoMode(context.Background(), email)
				if err != nil {
					return err
				}
				a.user = sess.User
				fmt.Println("Demo mode enabled. All data is local.")
				return nil
			}
			continue
		}

		fmt.Println(flow.UserMessage(err))
	}
}

func (a *app) menu(ctx context.Context) error {
	for {
		fmt.Println("\n[p] products  [s] scan  [d] dashboard  [a] analytics  [l] logout  [q] quit")
		switch a.prompt("> ") {
		case "p":
			a.showProducts(ctx)
		case "s":
			a.scan(ctx)
		case "d":
			a.showDashboard(ctx)
		case "a":
			a.showAnalytics(ctx)
		case "l":
			if err := a.login.Logout(ctx, a.backend.Auth); err != nil {
				return err
			}
			fmt.Println("Signed out.")
			return nil
		case "q":
			return nil
		}
	}
}

func (a *app) showProducts(ctx context.Context) {
	browser := flow.NewProducts(a.backend.Products)
	search := a.prompt("Search (blank for all): ")

	products, err := browser.Browse(ctx, search, flow.CategoryAll)
	if err != nil {
		fmt.Println(flow.UserMessage(err))
		return
	}

	for _, p := range products {
		flags := ""
		if p.IsLowStock {
			flags += " LOW"
		}
		if p.IsExpired {
			flags += " EXPIRED"
		}
		fmt.Printf("%-24s £%.2f  qty %d  [%s]%s\n", p.Name, p.Price, p.Quantity, p.Code, flags)
	}
}

func (a *app) scan(ctx context.Context) {
	sc := a.scanner

	code := a.prompt("Scan or enter code: ")
	p, err := sc.Submit(ctx, code)
	if err != nil {
		fmt.Println(flow.UserMessage(err))
		return
	}
	fmt.Printf("%s — £%.2f, %d in stock\n", p.Name, p.Price, p.Quantity)

	op := flow.OperationReduce
	if strings.EqualFold(a.prompt("Operation [a]dd/[r]educe (default r): "), "a") {
		op = flow.OperationAdd
	}
	if err := sc.SelectOperation(op); err != nil {
		fmt.Println(flow.UserMessage(err))
		return
	}

	if err := sc.SetQuantity(a.prompt("Quantity: ")); err != nil {
		fmt.Println(flow.UserMessage(err))
		return
	}

	if err := sc.Confirm(ctx); err != nil {
		fmt.Println(flow.UserMessage(err))
		return
	}
	fmt.Println("Stock updated.")
}

func (a *app) showDashboard(ctx context.Context) {
	metrics, err := flow.NewAnalytics(a.backend.Analytics).Dashboard(ctx)
	if err != nil {
		fmt.Println(flow.UserMessage(err))
		return
	}

	fmt.Printf("Products: %d   Value: £%.2f   Today's sales: %d\n",
		metrics.TotalProducts, metrics.TotalValue, metrics.TodaysSales)
	fmt.Printf("Low stock: %d   Expired: %d   Expiring soon: %d\n",
		metrics.LowStock, metrics.ExpiredProducts, metrics.ExpiringSoon)
}

func (a *app) showAnalytics(ctx context.Context) {
	report, err := flow.NewAnalytics(a.backend.Analytics).Report(ctx,
		backend.SalesParams{}, backend.TopProductsParams{Limit: 5})
	if err != nil {
		fmt.Println(flow.UserMessage(err))
		return
	}

	fmt.Printf("Inventory value: £%.2f over %d items\n",
		report.InventoryValue.TotalValue, report.InventoryValue.TotalItems)
	for _, top := range report.TopProducts {
		fmt.Printf("  %-24s sold %d (£%.2f)\n", top.Name, top.Sold, top.Revenue)
	}
	for _, point := range report.Sales {
		fmt.Printf("  %s  £%.2f (%d items)\n", point.Date, point.Total, point.Count)
	}
}

func (a *app) prompt(label string) string {
	fmt.Print(label)
	line, _ := a.in.ReadString('\n')
	return strings.TrimSpace(line)
}

func (a *app) confirm(label string) bool {
	return strings.EqualFold(a.prompt(label), "y")
}
