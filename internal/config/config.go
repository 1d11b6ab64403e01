package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application level configuration aggregated from env/config files.
type Config struct {
	Server struct {
		Addr string
	}
	Environment string
	Database    struct {
		Path string
	}
	Auth struct {
		JWTSecret         string
		TokenTTLHours     int
		AdminUsername     string
		AdminPassword     string
		AdminPasswordHash string
	}
	CORS struct {
		Origins []string
	}
	RateLimit struct {
		Requests      int
		WindowMinutes int
	}
	Storage struct {
		Bucket        string
		KeyPrefix     string
		Region        string
		Endpoint      string
		PublicBaseURL string
	}
	AWS struct {
		Profile string
	}
}

// Load reads configuration from environment variables and optional config files.
func Load() (Config, error) {
	_ = godotenv.Load() // optional .env

	v := viper.New()
	v.SetEnvPrefix("PORTFOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.addr", "0.0.0.0:5000")
	v.SetDefault("environment", "development")
	v.SetDefault("database.path", "data/portfolio.db")
	v.SetDefault("auth.jwtsecret", "")
	v.SetDefault("auth.tokenttlhours", 24)
	v.SetDefault("auth.adminusername", "")
	v.SetDefault("auth.adminpassword", "")
	v.SetDefault("auth.adminpasswordhash", "")
	v.SetDefault("cors.origins", []string{"http://localhost:3000", "http://localhost:5173", "http://127.0.0.1:5173"})
	v.SetDefault("ratelimit.requests", 100)
	v.SetDefault("ratelimit.windowminutes", 15)
	v.SetDefault("storage.bucket", "")
	v.SetDefault("storage.keyprefix", "portfolio-assets")
	v.SetDefault("storage.region", "us-east-1")
	v.SetDefault("storage.endpoint", "")
	v.SetDefault("storage.publicbaseurl", "")
	v.SetDefault("aws.profile", "")

	v.SetConfigName("config")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional file

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// origins arrive comma separated from the environment; normalize entries
	origins := make([]string, 0, len(cfg.CORS.Origins))
	for _, o := range cfg.CORS.Origins {
		for _, p := range strings.Split(o, ",") {
			if p = strings.TrimSpace(p); p != "" {
				origins = append(origins, p)
			}
		}
	}
	cfg.CORS.Origins = origins

	if cfg.Auth.TokenTTLHours <= 0 {
		cfg.Auth.TokenTTLHours = 24
	}

	return cfg, nil
}
