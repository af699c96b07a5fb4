package config

import "time"

// API configures the connection to the remote inventory backend.
//
// LoginEndpoints is an ordered list of candidate login paths. Login attempts
// them in sequence and keeps the first success; only one is configured today
// but the backend has moved its auth routes before.
type API struct {
	BaseURL        string        `env:"API_BASE_URL" envDefault:"https://inventory-management-backend-ghgqe3ddavdqd0f8.centralindia-01.azurewebsites.net/api"`
	Timeout        time.Duration `env:"API_TIMEOUT" envDefault:"10s"`
	LoginEndpoints []string      `env:"API_LOGIN_ENDPOINTS" envDefault:"/users/login" envSeparator:","`
}
