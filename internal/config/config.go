package config // package config loads application configuration from environment variables

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values.  It is built once at
// startup and passed by value; nothing mutates it afterwards.
type Config struct {
	Env                string        // application environment (e.g. "dev", "prod")
	Port               string        // HTTP port to listen on
	ChannelAccessToken string        // LINE channel access token used for replies
	ChannelSecret      string        // LINE channel secret used to verify webhook signatures
	APIBaseURL         string        // base URL of the status API queried by the status page
	LineAPIEndpoint    string        // Messaging API base URL override; empty uses the SDK default
	LineHTTPTimeout    time.Duration // timeout of one reply call
	StatusHTTPTimeout  time.Duration // timeout of one status API call
}

// LookupFunc has the shape of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Load reads an optional .env file, then builds a Config from the
// environment.  Variables already set in the environment win over .env.
// Missing required variables cause the program to exit with a fatal log
// message.
func Load() Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("config: .env not loaded: %v", err)
	}
	cfg, err := Parse(os.LookupEnv)
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

// Parse builds a Config from lookup.  CHANNEL_ACCESS_TOKEN and
// CHANNEL_SECRET are required; every other value has a default.
func Parse(lookup LookupFunc) (Config, error) {
	var missing []string
	must := func(key string) string {
		v, ok := lookup(key)
		if !ok || v == "" {
			missing = append(missing, key)
		}
		return v
	}
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && v != "" {
			return v
		}
		return def
	}

	cfg := Config{
		Env:                get("APP_ENV", "dev"),
		Port:               get("APP_PORT", "5000"),
		ChannelAccessToken: must("CHANNEL_ACCESS_TOKEN"),
		ChannelSecret:      must("CHANNEL_SECRET"),
		APIBaseURL:         strings.TrimRight(get("API_BASE_URL", "http://127.0.0.1:5000"), "/"),
		LineAPIEndpoint:    get("LINE_API_ENDPOINT", ""),
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing required env var: %s", strings.Join(missing, ", "))
	}

	var err error
	if cfg.LineHTTPTimeout, err = parseDuration("LINE_HTTP_TIMEOUT", get("LINE_HTTP_TIMEOUT", "10s")); err != nil {
		return Config{}, err
	}
	if cfg.StatusHTTPTimeout, err = parseDuration("STATUS_HTTP_TIMEOUT", get("STATUS_HTTP_TIMEOUT", "5s")); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func parseDuration(key, s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("invalid duration for %s: %q", key, s)
	}
	return d, nil
}
