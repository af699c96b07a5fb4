package config

type Demo struct {
	// SimulateLatency makes the demo backend pause before answering, the
	// way a real network round trip would feel.
	SimulateLatency bool `env:"DEMO_SIMULATE_LATENCY" envDefault:"true"`
}
