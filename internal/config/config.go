package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"github.com/terraincognita07/cyclewise/internal/security"
)

const (
	DefaultPort               = "8080"
	DefaultLanguage           = "en"
	DefaultReminderSchedule   = "0 9 * * *"
	DefaultReminderDaysBefore = 2
)

var insecureSecretPlaceholders = map[string]struct{}{
	"change_me_in_production":                    {},
	"replace_with_at_least_32_random_characters": {},
}

type Config struct {
	Port            string
	DBPath          string
	Location        *time.Location
	LogLevel        logrus.Level
	DefaultLanguage string
	CookieSecure    bool
	// CORSAllowedOrigins is a comma separated origin list; empty disables CORS.
	CORSAllowedOrigins string

	// SecretKey signs unlock tokens. When SECRET_KEY is unset a random key
	// is generated and SecretKeyEphemeral is true.
	SecretKey          []byte
	SecretKeyEphemeral bool

	ReminderSchedule   string
	ReminderDaysBefore int
	TelegramBotToken   string
	TelegramChatID     string
}

// Load reads the optional .env files first (existing environment variables
// win) and then resolves every setting.
func Load(envFiles ...string) (Config, error) {
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	port, err := resolvePort()
	if err != nil {
		return Config{}, err
	}
	location, err := resolveLocation()
	if err != nil {
		return Config{}, err
	}
	level, err := resolveLogLevel()
	if err != nil {
		return Config{}, err
	}
	secretKey, ephemeral, err := resolveSecretKey()
	if err != nil {
		return Config{}, err
	}
	schedule, err := resolveReminderSchedule()
	if err != nil {
		return Config{}, err
	}
	daysBefore, err := resolveReminderDaysBefore()
	if err != nil {
		return Config{}, err
	}
	origins, err := resolveCORSAllowedOrigins()
	if err != nil {
		return Config{}, err
	}

	return Config{
		Port:               port,
		DBPath:             getEnv("DB_PATH", filepath.Join("data", "cyclewise.db")),
		Location:           location,
		LogLevel:           level,
		DefaultLanguage:    strings.ToLower(getEnv("DEFAULT_LANGUAGE", DefaultLanguage)),
		CookieSecure:       parseBoolEnv(os.Getenv("COOKIE_SECURE")),
		CORSAllowedOrigins: origins,
		SecretKey:          secretKey,
		SecretKeyEphemeral: ephemeral,
		ReminderSchedule:   schedule,
		ReminderDaysBefore: daysBefore,
		TelegramBotToken:   strings.TrimSpace(os.Getenv("TELEGRAM_BOT_TOKEN")),
		TelegramChatID:     strings.TrimSpace(os.Getenv("TELEGRAM_CHAT_ID")),
	}, nil
}

// TelegramEnabled reports whether reminders go to Telegram instead of the log.
func (config Config) TelegramEnabled() bool {
	return config.TelegramBotToken != "" && config.TelegramChatID != ""
}

func resolveSecretKey() ([]byte, bool, error) {
	secret := strings.TrimSpace(os.Getenv("SECRET_KEY"))
	if secret == "" {
		generated, err := security.EphemeralSecretKey()
		if err != nil {
			return nil, false, fmt.Errorf("generate secret key: %w", err)
		}
		return generated, true, nil
	}
	if _, insecure := insecureSecretPlaceholders[strings.ToLower(secret)]; insecure {
		return nil, false, errors.New("SECRET_KEY uses an insecure placeholder value")
	}
	if len(secret) < security.MinSecretKeyLength {
		return nil, false, fmt.Errorf("SECRET_KEY must be at least %d characters", security.MinSecretKeyLength)
	}
	return []byte(secret), false, nil
}

func resolvePort() (string, error) {
	raw := strings.TrimSpace(getEnv("PORT", DefaultPort))
	port, err := strconv.Atoi(raw)
	if err != nil || port < 1 || port > 65535 {
		return "", fmt.Errorf("invalid PORT %q", raw)
	}
	return strconv.Itoa(port), nil
}

func resolveLocation() (*time.Location, error) {
	name := strings.TrimSpace(getEnv("TZ", "UTC"))
	location, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid TZ %q: %w", name, err)
	}
	return location, nil
}

func resolveLogLevel() (logrus.Level, error) {
	raw := strings.TrimSpace(getEnv("LOG_LEVEL", "info"))
	level, err := logrus.ParseLevel(raw)
	if err != nil {
		return logrus.InfoLevel, fmt.Errorf("invalid LOG_LEVEL %q: %w", raw, err)
	}
	return level, nil
}

func resolveReminderSchedule() (string, error) {
	schedule := strings.TrimSpace(getEnv("REMINDER_SCHEDULE", DefaultReminderSchedule))
	if _, err := cron.ParseStandard(schedule); err != nil {
		return "", fmt.Errorf("invalid REMINDER_SCHEDULE %q: %w", schedule, err)
	}
	return schedule, nil
}

func resolveReminderDaysBefore() (int, error) {
	raw := strings.TrimSpace(getEnv("REMINDER_DAYS_BEFORE", strconv.Itoa(DefaultReminderDaysBefore)))
	days, err := strconv.Atoi(raw)
	if err != nil || days < 0 {
		return 0, fmt.Errorf("invalid REMINDER_DAYS_BEFORE %q", raw)
	}
	return days, nil
}

// resolveCORSAllowedOrigins rejects "*": the unlock cookie needs credentialed
// requests, which browsers and fiber refuse for a wildcard origin.
func resolveCORSAllowedOrigins() (string, error) {
	raw := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS"))
	if HasWildcardOrigin(raw) {
		return "", errors.New("CORS_ALLOWED_ORIGINS must list explicit origins, not *")
	}
	return raw, nil
}

// HasWildcardOrigin reports whether a comma separated origin list contains *.
func HasWildcardOrigin(origins string) bool {
	for _, origin := range strings.Split(origins, ",") {
		if strings.TrimSpace(origin) == "*" {
			return true
		}
	}
	return false
}

func parseBoolEnv(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
