package config

type Session struct {
	// Path is the location of the local session database file.
	Path string `env:"SESSION_PATH" envDefault:"inventory-session.db"`
}
