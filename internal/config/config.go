package config

import (
	"fmt"
	"net/url"
	"regexp"

	"github.com/kelseyhightower/envconfig"
)

// Config contains runtime configuration required by the service.
type Config struct {
	Environment string `envconfig:"APP_ENV" default:"development"`
	Port        string `envconfig:"PORT" default:"3000"`
	StaticDir   string `envconfig:"STATIC_DIR"`
	DB          DB
}

// DB holds the database coordinates. AdminName is the maintenance database
// used only while checking/creating the target database at startup.
type DB struct {
	Host      string `envconfig:"DB_HOST" default:"localhost"`
	Port      int    `envconfig:"DB_PORT" default:"5432"`
	User      string `envconfig:"DB_USER" default:"postgres"`
	Password  string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name      string `envconfig:"DB_NAME" default:"ticketing"`
	AdminName string `envconfig:"DB_ADMIN_NAME" default:"postgres"`
	SSLMode   string `envconfig:"DB_SSLMODE" default:"disable"`
}

// identPattern limits the database name to a plain identifier. The name is
// the one value interpolated into SQL (CREATE DATABASE does not take bind
// parameters), so anything fancier is rejected up front.
var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Load reads configuration from environment variables. Defaults are chosen
// so the service runs out-of-the-box against a local Postgres.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if !identPattern.MatchString(cfg.DB.Name) {
		return Config{}, fmt.Errorf("DB_NAME %q is not a valid identifier", cfg.DB.Name)
	}
	return cfg, nil
}

// URL returns the DSN for the target database.
func (d DB) URL() string {
	return d.dsn(d.Name)
}

// AdminURL returns the DSN for the maintenance database.
func (d DB) AdminURL() string {
	return d.dsn(d.AdminName)
}

func (d DB) dsn(database string) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     "/" + database,
		RawQuery: "sslmode=" + url.QueryEscape(d.SSLMode),
	}
	return u.String()
}
