package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	MongoURI        string
	MongoDB         string
	AdminEmails     []string
	RedisAddr       string
	RabbitURL       string
	LatestCacheTTLn int // seconds; 0 disables caching even with Redis configured
}

func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:            getenv("APP_PORT", "4000"),
		MongoURI:        getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:         getenv("MONGO_DB", "trade_db"),
		AdminEmails:     splitList(getenv("ADMIN_EMAILS", "admin@trade.local")),
		RedisAddr:       getenv("REDIS_ADDR", ""),
		RabbitURL:       getenv("RABBIT_URL", ""),
		LatestCacheTTLn: atoi(getenv("LATEST_CACHE_TTL_SECONDS", "30")),
	}
}

// IsAdminEmail reports whether email is on the bootstrap-admin allowlist.
func (c Config) IsAdminEmail(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, a := range c.AdminEmails {
		if a == email {
			return true
		}
	}
	return false
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func atoi(s string) int {
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return 0
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
