package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Discord  DiscordConfig
	Redis    RedisConfig
	Catalog  CatalogConfig
	Battle   BattleConfig
	Spectate SpectateConfig
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token   string
	AppID   string
	GuildID string // Optional: for guild-specific commands
}

// RedisConfig holds Redis-specific configuration. An empty URL selects the
// in-memory battle repository.
type RedisConfig struct {
	URL string
	TTL time.Duration
}

// CatalogConfig locates the species, moves and type chart files
type CatalogConfig struct {
	Dir           string
	SpriteBaseURL string
}

// BattleConfig holds battle engine configuration
type BattleConfig struct {
	// Seed for the dice roller, 0 seeds from the clock
	Seed         int64
	DefaultLevel int
}

// SpectateConfig holds spectator websocket configuration. An empty Addr
// disables the listener.
type SpectateConfig struct {
	Addr string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	ttl, err := getEnvAsDurationOrDefault("BATTLE_TTL", 24*time.Hour)
	if err != nil {
		return nil, err
	}
	seed, err := getEnvAsInt64OrDefault("RNG_SEED", 0)
	if err != nil {
		return nil, err
	}
	level, err := getEnvAsIntOrDefault("DEFAULT_LEVEL", 50)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Discord: DiscordConfig{
			Token:   os.Getenv("DISCORD_TOKEN"),
			AppID:   os.Getenv("DISCORD_APP_ID"),
			GuildID: os.Getenv("DISCORD_GUILD_ID"),
		},
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
			TTL: ttl,
		},
		Catalog: CatalogConfig{
			Dir:           getEnvOrDefault("CATALOG_DIR", "data"),
			SpriteBaseURL: os.Getenv("SPRITE_BASE_URL"),
		},
		Battle: BattleConfig{
			Seed:         seed,
			DefaultLevel: level,
		},
		Spectate: SpectateConfig{
			Addr: getEnvOrDefault("SPECTATE_ADDR", ":8090"),
		},
	}

	if cfg.Redis.TTL <= 0 {
		return nil, fmt.Errorf("BATTLE_TTL must be positive, got %s", cfg.Redis.TTL)
	}
	if cfg.Battle.DefaultLevel < 1 || cfg.Battle.DefaultLevel > 100 {
		return nil, fmt.Errorf("DEFAULT_LEVEL must be between 1 and 100, got %d", cfg.Battle.DefaultLevel)
	}

	return cfg, nil
}

// LoadBot loads configuration and requires the Discord credentials
func LoadBot() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	// Validate required fields
	if cfg.Discord.Token == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN is required")
	}
	if cfg.Discord.AppID == "" {
		return nil, fmt.Errorf("DISCORD_APP_ID is required")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return intValue, nil
}

func getEnvAsInt64OrDefault(key string, defaultValue int64) (int64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	intValue, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return intValue, nil
}

func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}
	return d, nil
}
