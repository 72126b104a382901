package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string   `mapstructure:"APP_PORT"`
	DatabaseURL       string   `mapstructure:"DATABASE_URL"`
	MongoDBName       string   `mapstructure:"MONGO_DB_NAME"`
	Env               string   `mapstructure:"ENV"`
	LogLevel          string   `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int      `mapstructure:"MAX_REQUESTS_PER_MIN"`
	CORSOrigins       []string `mapstructure:"CORS_ORIGINS"`

	// Redis configuration. An empty addr disables Redis and falls back to
	// the in-process cache; the background warm worker needs Redis.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`

	// Google Calendar access. Credentials and token come from files by
	// default; the *_JSON variants override them with inline payloads.
	GoogleCredentialsFile string `mapstructure:"GOOGLE_CREDENTIALS_FILE"`
	GoogleTokenFile       string `mapstructure:"GOOGLE_TOKEN_FILE"`
	GoogleCredentialsJSON string `mapstructure:"GOOGLE_CREDENTIALS_JSON"`
	GoogleTokenJSON       string `mapstructure:"GOOGLE_TOKEN_JSON"`
	CalendarID            string `mapstructure:"CALENDAR_ID"`
	HolidayCalendarID     string `mapstructure:"HOLIDAY_CALENDAR_ID"`
	Timezone              string `mapstructure:"TIMEZONE"`

	// Free-block window: clock strings "HH:MM", inclusive start, exclusive end.
	DayWindowStart  string `mapstructure:"DAY_WINDOW_START"`
	DayWindowEnd    string `mapstructure:"DAY_WINDOW_END"`
	MinBlockMinutes int    `mapstructure:"MIN_BLOCK_MINUTES"`

	// Read-through cache for calendar and horizon queries.
	CacheTTLSeconds int `mapstructure:"CACHE_TTL_SECONDS"`
	CacheCapacity   int `mapstructure:"CACHE_CAPACITY"`

	// Cron expression for the calendar warm task; empty disables it.
	CacheWarmSchedule string `mapstructure:"CACHE_WARM_SCHEDULE"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8000")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("CORS_ORIGINS", []string{"http://localhost:8080", "http://127.0.0.1:8080"})
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DB_NAME", "eventhorizon")
	viper.SetDefault("GOOGLE_CREDENTIALS_FILE", "credentials.json")
	viper.SetDefault("GOOGLE_TOKEN_FILE", "token.json")
	viper.SetDefault("GOOGLE_CREDENTIALS_JSON", "")
	viper.SetDefault("GOOGLE_TOKEN_JSON", "")
	viper.SetDefault("CALENDAR_ID", "primary")
	viper.SetDefault("HOLIDAY_CALENDAR_ID", "en.usa#holiday@group.v.calendar.google.com")
	viper.SetDefault("TIMEZONE", "US/Pacific")
	viper.SetDefault("DAY_WINDOW_START", "06:00")
	viper.SetDefault("DAY_WINDOW_END", "18:00")
	viper.SetDefault("MIN_BLOCK_MINUTES", 30)
	viper.SetDefault("CACHE_TTL_SECONDS", 300)
	viper.SetDefault("CACHE_CAPACITY", 512)
	viper.SetDefault("CACHE_WARM_SCHEDULE", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
