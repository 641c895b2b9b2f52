package config

import (
	"fmt"
	"os"
)

// Config holds everything the server reads from the environment.
type Config struct {
	MongoURI     string
	DBName       string
	TokenSecret  string
	StripeSecret string
	ServerPort   string
	CORSOrigin   string
}

// Load reads configuration from environment variables. MONGODB_URI takes
// precedence; otherwise DB_USER/DB_PASS compose an Atlas connection string
// the way the original deployment did.
func Load() (*Config, error) {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		user := os.Getenv("DB_USER")
		pass := os.Getenv("DB_PASS")
		if user == "" || pass == "" {
			return nil, fmt.Errorf("database environment variables not set (MONGODB_URI or DB_USER, DB_PASS)")
		}
		uri = fmt.Sprintf("mongodb+srv://%s:%s@cluster0.tu2ve.mongodb.net/?retryWrites=true&w=majority&appName=Cluster0", user, pass)
	}

	secret := os.Getenv("ACCESS_TOKEN_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("ACCESS_TOKEN_SECRET not set in environment")
	}

	stripeSecret := os.Getenv("STRIPE_SECRET_KEY")
	if stripeSecret == "" {
		return nil, fmt.Errorf("STRIPE_SECRET_KEY not set in environment")
	}

	return &Config{
		MongoURI:     uri,
		DBName:       getEnv("DB_NAME", "bistro-DB"),
		TokenSecret:  secret,
		StripeSecret: stripeSecret,
		ServerPort:   getEnv("SERVER_PORT", "5000"),
		CORSOrigin:   getEnv("CORS_ORIGIN", "http://localhost:5173"),
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
