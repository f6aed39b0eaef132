package config

import (
	"os"

	"github.com/joho/godotenv"
)

// DefaultPort is the port bound in production when PORT is not set.
const DefaultPort = "3000"

// DefaultFrontendDir is where the pre-built frontend bundle lives,
// relative to the server's working directory.
const DefaultFrontendDir = "../frontend/dist"

// EnvProduction is the NODE_ENV value that enables listening and
// static-bundle serving.
const EnvProduction = "production"

// Value is a snapshot of one environment variable: its raw string and
// whether it was set at all. An unset variable is absent, never the
// empty string.
type Value struct {
	raw string
	set bool
}

// String returns the raw value; empty when absent.
func (v Value) String() string { return v.raw }

// IsSet reports whether the variable was present in the environment.
func (v Value) IsSet() bool { return v.set }

// Or returns the raw value when set, otherwise def.
func (v Value) Or(def string) string {
	if v.set {
		return v.raw
	}
	return def
}

// Config is the application configuration record. It exposes exactly the
// three variables this service reads — PORT, DB_URL and NODE_ENV —
// captured once at startup. Values pass through verbatim; nothing is
// validated or coerced.
type Config struct {
	Port        Value // PORT: TCP port to bind in production
	DatabaseURL Value // DB_URL: reserved for future persistence, unused by handlers
	Environment Value // NODE_ENV: mode flag

	// FrontendDir is the static bundle directory served in production.
	// Not environment-driven; tests point it at a fixture directory.
	FrontendDir string
}

// New loads a .env file if one exists and snapshots the three
// environment variables. Missing variables are not an error; absence is
// a valid, representable state.
func New() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		Port:        lookup("PORT"),
		DatabaseURL: lookup("DB_URL"),
		Environment: lookup("NODE_ENV"),
		FrontendDir: DefaultFrontendDir,
	}
}

// IsProduction reports whether NODE_ENV selects production behavior.
func (c *Config) IsProduction() bool {
	return c.Environment.String() == EnvProduction
}

// ListenAddr returns the HTTP bind address, falling back to DefaultPort
// when PORT is absent.
func (c *Config) ListenAddr() string {
	return ":" + c.Port.Or(DefaultPort)
}

func lookup(key string) Value {
	raw, ok := os.LookupEnv(key)
	return Value{raw: raw, set: ok}
}
