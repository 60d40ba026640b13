package cmd

import (
	"fmt"
	"strconv"
	"time"
)

// Config carries every knob the service reads from the environment. All
// values arrive as strings; the typed getters parse the ones that are not.
type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisAddr     string
	RedisPassword string

	StripeSecretKey string

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string

	AWSRegion    string
	S3Bucket     string
	S3PublicURL  string
	DocumentsDir string

	JWTSecret  string
	JWTTTL     string
	BcryptCost string

	CompanyName string

	CartAbandonAfter string
	CartExpireAfter  string

	LogFile string
}

// DSN builds the Postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// TokenTTL parses the JWT lifetime, defaulting to 24 hours.
func (c Config) TokenTTL() time.Duration {
	return durationOr(c.JWTTTL, 24*time.Hour)
}

// HashCost parses the bcrypt cost. Zero means the adapter's default cost.
func (c Config) HashCost() int {
	cost, err := strconv.Atoi(c.BcryptCost)
	if err != nil {
		return 0
	}
	return cost
}

// AbandonAfter is how long a cart may sit idle before the sweep marks it
// abandoned. Defaults to 30 minutes.
func (c Config) AbandonAfter() time.Duration {
	return durationOr(c.CartAbandonAfter, 30*time.Minute)
}

// ExpireAfter is how long an abandoned cart survives before the sweep expires
// it. Defaults to 7 days.
func (c Config) ExpireAfter() time.Duration {
	return durationOr(c.CartExpireAfter, 7*24*time.Hour)
}

func durationOr(raw string, fallback time.Duration) time.Duration {
	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}
