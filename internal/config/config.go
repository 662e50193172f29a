package config

import (
	"context"
	"fmt"
	"net/netip"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
	"golang.org/x/crypto/bcrypt"
)

const minSecretLength = 32

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Auth      AuthConfig
	Log       LogConfig
	Bootstrap BootstrapConfig

	CORSOrigins      []string `env:"CORS_ORIGINS, default=*"`
	RateLimitRPM     int      `env:"RATE_LIMIT_RPM, default=300"`
	AuthRateLimitRPM int      `env:"AUTH_RATE_LIMIT_RPM, default=20"`

	// Peers whose X-Forwarded-For / X-Real-IP headers are believed. Empty
	// means the connection address is always the client.
	TrustedProxies []string `env:"TRUSTED_PROXIES"`
}

type ServerConfig struct {
	Port              string        `env:"SERVER_PORT, default=8080"`
	ReadHeaderTimeout time.Duration `env:"SERVER_READ_HEADER_TIMEOUT, default=10s"`
	WriteTimeout      time.Duration `env:"SERVER_WRITE_TIMEOUT, default=30s"`
	IdleTimeout       time.Duration `env:"SERVER_IDLE_TIMEOUT, default=120s"`
	RequestTimeout    time.Duration `env:"REQUEST_TIMEOUT, default=30s"`
}

type DatabaseConfig struct {
	URL      string `env:"DATABASE_URL"`
	MaxConns int32  `env:"DB_MAX_CONNS, default=10"`
	MinConns int32  `env:"DB_MIN_CONNS, default=1"`
}

type AuthConfig struct {
	JWTSecret           string        `env:"JWT_SECRET"`
	JWTAlgorithm        string        `env:"JWT_ALGORITHM, default=HS256"`
	AccessTTL           time.Duration `env:"JWT_ACCESS_TTL, default=30m"`
	RefreshTTL          time.Duration `env:"JWT_REFRESH_TTL, default=168h"`
	BcryptCost          int           `env:"BCRYPT_COST, default=12"`
	RefreshCookieSecure bool          `env:"REFRESH_COOKIE_SECURE, default=true"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL, default=info"`
	Format string `env:"LOG_FORMAT, default=pretty"`
}

// BootstrapConfig seeds the first account when the users table is empty.
type BootstrapConfig struct {
	AdminUsername string `env:"BOOTSTRAP_ADMIN_USERNAME"`
	AdminEmail    string `env:"BOOTSTRAP_ADMIN_EMAIL"`
	AdminPassword string `env:"BOOTSTRAP_ADMIN_PASSWORD"`
}

func (b BootstrapConfig) Enabled() bool {
	return b.AdminUsername != "" && b.AdminPassword != ""
}

func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom reads configuration through lookuper, so tests can supply a map.
func LoadFrom(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) normalize() {
	c.Auth.JWTSecret = strings.TrimSpace(c.Auth.JWTSecret)
	c.Auth.JWTAlgorithm = strings.ToUpper(strings.TrimSpace(c.Auth.JWTAlgorithm))
	c.Database.URL = strings.TrimSpace(c.Database.URL)
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))

	origins := make([]string, 0, len(c.CORSOrigins))
	for _, origin := range c.CORSOrigins {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	c.CORSOrigins = origins

	proxies := make([]string, 0, len(c.TrustedProxies))
	for _, proxy := range c.TrustedProxies {
		if trimmed := strings.TrimSpace(proxy); trimmed != "" {
			proxies = append(proxies, trimmed)
		}
	}
	c.TrustedProxies = proxies
}

// TrustedProxyPrefixes parses TrustedProxies. Entries are CIDRs or bare
// addresses; a bare address is a single-host prefix.
func (c *Config) TrustedProxyPrefixes() ([]netip.Prefix, error) {
	prefixes := make([]netip.Prefix, 0, len(c.TrustedProxies))
	for _, entry := range c.TrustedProxies {
		entry = strings.TrimSpace(entry)
		if strings.Contains(entry, "/") {
			prefix, err := netip.ParsePrefix(entry)
			if err != nil {
				return nil, fmt.Errorf("TRUSTED_PROXIES: invalid CIDR %q", entry)
			}
			prefixes = append(prefixes, prefix.Masked())
			continue
		}

		addr, err := netip.ParseAddr(entry)
		if err != nil {
			return nil, fmt.Errorf("TRUSTED_PROXIES: invalid address %q", entry)
		}
		addr = addr.Unmap()
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return prefixes, nil
}

func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}

	if len(c.Auth.JWTSecret) < minSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d bytes", minSecretLength)
	}

	switch c.Auth.JWTAlgorithm {
	case "HS256", "HS384", "HS512":
	default:
		return fmt.Errorf("JWT_ALGORITHM must be one of HS256, HS384, HS512")
	}

	if c.Auth.AccessTTL <= 0 || c.Auth.RefreshTTL <= 0 {
		return fmt.Errorf("JWT_ACCESS_TTL and JWT_REFRESH_TTL must be positive")
	}

	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}

	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	if c.Database.MaxConns <= 0 || c.Database.MinConns < 0 || c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("DB_MIN_CONNS must be between 0 and DB_MAX_CONNS")
	}

	if c.Server.Port == "" {
		return fmt.Errorf("SERVER_PORT cannot be empty")
	}

	if c.Server.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive")
	}

	switch c.Log.Format {
	case "pretty", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be pretty or json")
	}

	if _, err := c.TrustedProxyPrefixes(); err != nil {
		return err
	}

	if (c.Bootstrap.AdminUsername == "") != (c.Bootstrap.AdminPassword == "") {
		return fmt.Errorf("BOOTSTRAP_ADMIN_USERNAME and BOOTSTRAP_ADMIN_PASSWORD must be set together")
	}

	return nil
}

// Hostname is used in log output to tell replicas apart.
func Hostname() string {
	name, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return name
}
