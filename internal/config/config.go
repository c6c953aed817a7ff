package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	TelegramToken string

	// FootChatID is the main group where players sign up; AdminChatID
	// receives finalized teams and withdrawal alerts.
	FootChatID  int64
	AdminChatID int64

	AdminTGIDs map[int64]bool

	// StorageBackend selects where match info and ratings live:
	// memory, redis or sheets.
	StorageBackend string

	RedisURL string

	SpreadsheetID            string
	GoogleServiceAccountJSON string

	ExportSecret string

	HTTPAddr      string
	BasePublicURL string
}

func FromEnv() (Config, error) {
	var c Config
	c.TelegramToken = strings.TrimSpace(os.Getenv("TELEGRAM_BOT_TOKEN"))

	var err error
	if c.FootChatID, err = parseChatID(os.Getenv("FOOT_CHAT_ID")); err != nil {
		return c, fmt.Errorf("FOOT_CHAT_ID: %w", err)
	}
	if c.AdminChatID, err = parseChatID(os.Getenv("ADMIN_CHAT_ID")); err != nil {
		return c, fmt.Errorf("ADMIN_CHAT_ID: %w", err)
	}

	c.StorageBackend = strings.TrimSpace(os.Getenv("STORAGE_BACKEND"))
	if c.StorageBackend == "" {
		c.StorageBackend = "memory"
	}

	c.RedisURL = strings.TrimSpace(os.Getenv("REDIS_URL"))
	c.SpreadsheetID = strings.TrimSpace(os.Getenv("GOOGLE_SHEETS_SPREADSHEET_ID"))
	c.GoogleServiceAccountJSON = strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))

	c.ExportSecret = strings.TrimSpace(os.Getenv("EXPORT_SECRET"))
	if c.ExportSecret == "" {
		c.ExportSecret = "change-me"
	}

	c.HTTPAddr = strings.TrimSpace(os.Getenv("HTTP_ADDR"))
	if c.HTTPAddr == "" {
		c.HTTPAddr = ":8080"
	}

	c.BasePublicURL = strings.TrimRight(strings.TrimSpace(os.Getenv("BASE_PUBLIC_URL")), "/")

	if c.TelegramToken == "" {
		return c, fmt.Errorf("TELEGRAM_BOT_TOKEN is empty")
	}
	switch c.StorageBackend {
	case "memory":
	case "redis":
		if c.RedisURL == "" {
			return c, fmt.Errorf("REDIS_URL is required when STORAGE_BACKEND=redis")
		}
	case "sheets":
		if c.SpreadsheetID == "" {
			return c, fmt.Errorf("GOOGLE_SHEETS_SPREADSHEET_ID is required when STORAGE_BACKEND=sheets")
		}
		if c.GoogleServiceAccountJSON == "" {
			return c, fmt.Errorf("GOOGLE_SERVICE_ACCOUNT_JSON is required when STORAGE_BACKEND=sheets")
		}
	default:
		return c, fmt.Errorf("unknown storage backend: %s", c.StorageBackend)
	}

	c.AdminTGIDs = parseAdminIDs(os.Getenv("ADMIN_TG_IDS"))

	return c, nil
}

func parseChatID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("is empty")
	}
	return strconv.ParseInt(raw, 10, 64)
}

func parseAdminIDs(raw string) map[int64]bool {
	m := map[int64]bool{}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return m
	}
	parts := strings.Split(raw, ",")
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			continue
		}
		m[v] = true
	}
	return m
}
