package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Server    ServerConfig
	Fireflies FirefliesConfig
	Vertex    VertexConfig
	Sheets    SheetsConfig
	Notion    NotionConfig
	Sync      SyncConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string
	Host            string
	Environment     string
	ShutdownTimeout int
}

// FirefliesConfig holds transcription provider configuration
type FirefliesConfig struct {
	APIKey        string
	BaseURL       string
	WebhookSecret string
}

// VertexConfig holds generative model configuration
type VertexConfig struct {
	ProjectID       string
	Location        string
	Model           string
	CredentialsJSON string
}

// SheetsConfig holds spreadsheet destination configuration
type SheetsConfig struct {
	SpreadsheetID   string
	MeetingSheet    string
	TaskSheet       string
	FilterSheet     string
	CredentialsJSON string
}

// NotionConfig holds record-store destination configuration
type NotionConfig struct {
	APIKey            string
	MeetingDatabaseID string
	TaskDatabaseID    string
	ParentPageID      string
}

// SyncConfig holds pipeline pacing configuration
type SyncConfig struct {
	CallDelay time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "3000"),
			Host:            getEnv("HOST", "0.0.0.0"),
			Environment:     getEnv("ENVIRONMENT", "development"),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 10),
		},
		Fireflies: FirefliesConfig{
			APIKey:        getEnv("FIREFLIES_API_KEY", ""),
			BaseURL:       getEnv("FIREFLIES_API_URL", "https://api.fireflies.ai/graphql"),
			WebhookSecret: getEnv("FIREFLIES_WEBHOOK_SECRET", ""),
		},
		Vertex: VertexConfig{
			ProjectID:       getEnv("PROJECT_ID", ""),
			Location:        getEnv("VERTEX_LOCATION", "us-central1"),
			Model:           getEnv("VERTEX_MODEL", "gemini-1.5-pro"),
			CredentialsJSON: getEnv("GOOGLE_CREDENTIALS", ""),
		},
		Sheets: SheetsConfig{
			SpreadsheetID:   getEnv("SPREADSHEET_ID", ""),
			MeetingSheet:    getEnv("MEETING_SHEET_NAME", "Meetings"),
			TaskSheet:       getEnv("TASK_SHEET_NAME", "Tasks"),
			FilterSheet:     getEnv("FILTER_SHEET_NAME", "ClientView"),
			CredentialsJSON: getEnv("GOOGLE_CREDENTIALS", ""),
		},
		Notion: NotionConfig{
			APIKey:            getEnv("NOTION_API_KEY", ""),
			MeetingDatabaseID: getEnv("NOTION_MEETING_DATABASE_ID", ""),
			TaskDatabaseID:    getEnv("NOTION_TASK_DATABASE_ID", ""),
			ParentPageID:      getEnv("NOTION_PARENT_PAGE_ID", ""),
		},
		Sync: SyncConfig{
			CallDelay: getEnvAsDuration("SYNC_CALL_DELAY", "10s"),
		},
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration. Absence of a required value is a
// startup-time fatal condition for the feature that needs it.
func (c *Config) Validate() error {
	if c.Fireflies.WebhookSecret == "" {
		return fmt.Errorf("FIREFLIES_WEBHOOK_SECRET is required")
	}
	if c.Fireflies.APIKey == "" {
		return fmt.Errorf("FIREFLIES_API_KEY is required")
	}
	if c.Vertex.ProjectID == "" {
		return fmt.Errorf("PROJECT_ID is required")
	}
	if c.Vertex.CredentialsJSON == "" {
		return fmt.Errorf("GOOGLE_CREDENTIALS is required")
	}
	if c.Sheets.SpreadsheetID == "" {
		return fmt.Errorf("SPREADSHEET_ID is required")
	}
	if c.Notion.APIKey == "" {
		return fmt.Errorf("NOTION_API_KEY is required")
	}
	if c.Notion.MeetingDatabaseID == "" {
		return fmt.Errorf("NOTION_MEETING_DATABASE_ID is required")
	}
	if c.Notion.TaskDatabaseID == "" {
		return fmt.Errorf("NOTION_TASK_DATABASE_ID is required")
	}
	return nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}
	return duration
}
