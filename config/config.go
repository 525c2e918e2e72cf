package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"wagerbot/database"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken string
	GuildID      string

	// Database configuration
	DatabaseURL  string
	DatabaseName string

	// Wallet defaults for lazily created accounts
	StartingBalance    int64
	DefaultWalletLimit int64

	// Cooldowns keyed by command name (flip, dice, slots, rps, beg)
	Cooldowns map[string]time.Duration

	// NATS servers for wager event forwarding; empty disables forwarding
	NATSServers string

	// Address for the Prometheus /metrics listener; empty disables it
	MetricsAddr string

	LogLevel string

	// Discord IDs allowed to grant gambling bonuses
	BonusAdminDiscordIDs []int64

	// Environment
	Environment string // "development", "production" or "test"
}

// DefaultCooldowns are the per-command windows used when no override is set.
var DefaultCooldowns = map[string]time.Duration{
	"flip":  3 * time.Second,
	"dice":  4 * time.Second,
	"slots": 5 * time.Second,
	"rps":   3 * time.Second,
	"beg":   300 * time.Second,
}

var (
	instance *Config
	once     sync.Once
	mu       sync.Mutex // Protects instance for test setup
)

// Get returns the global configuration instance
func Get() *Config {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance
	}

	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			if os.Getenv("ENVIRONMENT") == "test" {
				instance = NewTestConfig()
			} else {
				panic(fmt.Sprintf("failed to load config: %v", err))
			}
		}
	})
	return instance
}

// GetDatabaseURL constructs the full database URL by combining base URL and database name
func (c *Config) GetDatabaseURL() string {
	return database.ConstructDatabaseURL(c.DatabaseURL, c.DatabaseName)
}

// CooldownFor returns the cooldown window for a command. Unknown commands have none.
func (c *Config) CooldownFor(command string) time.Duration {
	if d, ok := c.Cooldowns[command]; ok {
		return d
	}
	return DefaultCooldowns[command]
}

// load loads configuration from environment variables, reading a .env file first if present
func load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("Failed to read .env file")
	}

	config := &Config{
		// Discord
		DiscordToken: os.Getenv("DISCORD_TOKEN"),
		GuildID:      os.Getenv("GUILD_ID"),

		// Database
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: os.Getenv("DATABASE_NAME"),

		StartingBalance:    500,
		DefaultWalletLimit: 50000,
		Cooldowns:          make(map[string]time.Duration, len(DefaultCooldowns)),

		NATSServers: os.Getenv("NATS_SERVERS"),
		MetricsAddr: os.Getenv("METRICS_ADDR"),
		LogLevel:    getEnvWithDefault("LOG_LEVEL", "info"),

		Environment: os.Getenv("ENVIRONMENT"),
	}

	if balance := os.Getenv("STARTING_BALANCE"); balance != "" {
		if parsedBalance, err := strconv.ParseInt(balance, 10, 64); err == nil {
			config.StartingBalance = parsedBalance
		}
	}
	if limit := os.Getenv("DEFAULT_WALLET_LIMIT"); limit != "" {
		if parsedLimit, err := strconv.ParseInt(limit, 10, 64); err == nil {
			config.DefaultWalletLimit = parsedLimit
		}
	}

	if adminIDs := os.Getenv("BONUS_ADMIN_DISCORD_IDS"); adminIDs != "" {
		for _, idStr := range strings.Split(adminIDs, ",") {
			idStr = strings.TrimSpace(idStr)
			if idStr == "" {
				continue
			}
			id, err := strconv.ParseInt(idStr, 10, 64)
			if err != nil {
				log.WithField("value", idStr).Warn("Ignoring invalid bonus admin Discord ID")
				continue
			}
			config.BonusAdminDiscordIDs = append(config.BonusAdminDiscordIDs, id)
		}
	}

	for command, fallback := range DefaultCooldowns {
		config.Cooldowns[command] = getDurationSeconds("COOLDOWN_"+strings.ToUpper(command)+"_SECONDS", fallback)
	}

	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		if config.DiscordToken == "" {
			return nil, fmt.Errorf("DISCORD_TOKEN is required")
		}
		if config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
	}

	return config, nil
}

// getEnvWithDefault returns the environment variable value or a default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDurationSeconds parses a whole number of seconds, falling back on absent or invalid values
func getDurationSeconds(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	seconds, err := strconv.Atoi(value)
	if err != nil || seconds < 0 {
		log.WithFields(log.Fields{
			"key":   key,
			"value": value,
		}).Warn("Ignoring invalid cooldown override")
		return defaultValue
	}
	return time.Duration(seconds) * time.Second
}

// Test helpers - only use in tests

// SetTestConfig overrides the global config instance for testing
func SetTestConfig(testConfig *Config) {
	mu.Lock()
	defer mu.Unlock()
	instance = testConfig
}

// ResetConfig resets the global config instance and sync.Once for testing
func ResetConfig() {
	mu.Lock()
	defer mu.Unlock()
	instance = nil
	once = sync.Once{}
}

// NewTestConfig creates a minimal config suitable for unit tests
func NewTestConfig() *Config {
	cooldowns := make(map[string]time.Duration, len(DefaultCooldowns))
	for command, d := range DefaultCooldowns {
		cooldowns[command] = d
	}
	return &Config{
		Environment:        "test",
		StartingBalance:    500,
		DefaultWalletLimit: 50000,
		Cooldowns:          cooldowns,
		LogLevel:           "debug",
	}
}
