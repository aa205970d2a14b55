package models

import "time"

// SiteSettings is a singleton row (always pk=1) holding API keys and the
// document-parsing feature flag. No domain logic hangs off it.
type SiteSettings struct {
	ID              uint      `gorm:"primaryKey"`
	ClaudeAPIKey    string    `gorm:"column:claude_api_key"`
	OpenAIAPIKey    string    `gorm:"column:open_ai_api_key"`
	EnableAIParsing bool      `gorm:"column:enable_ai_parsing;not null;default:false"`
	UpdatedAt       time.Time
}
