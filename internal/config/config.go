// Package config loads server configuration from the environment.
//
// Two groups live here: the BookStack API connection settings and the
// style guide driving document assembly and auto-tagging. Values are read
// via viper once per process start and passed by value into the
// components that need them; nothing else in the codebase reads the
// environment directly.
package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Style holds the formatting rules applied by the markdown assembler and
// the keyword list used for automatic tagging. Immutable after Load.
type Style struct {
	HeadingLevel1 string
	HeadingLevel2 string
	LogoMarkdown  string

	InfoPrefix    string
	WarningPrefix string
	SuccessPrefix string
	DangerPrefix  string

	LegalFooterMarkdown    string
	AutoLegalFooterEnabled bool

	AutoTagsEnabled  bool
	AutoTagsKeywords []string
}

// Config is the full server configuration.
type Config struct {
	// BaseURL is the BookStack instance root, without trailing slash.
	BaseURL   string
	APIToken  string
	APISecret string

	Style Style
}

// Load reads configuration from the environment. Every style setting has
// a default; the three API settings are required and checked by Validate.
func Load() Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("STYLEGUIDE_HEADING_LEVEL_1", "##")
	v.SetDefault("STYLEGUIDE_HEADING_LEVEL_2", "###")
	v.SetDefault("STYLEGUIDE_LOGO_MARKDOWN", "")
	v.SetDefault("STYLEGUIDE_INFO_PREFIX", ":information_source: **Info:** ")
	v.SetDefault("STYLEGUIDE_WARN_PREFIX", ":warning: **Warning:** ")
	v.SetDefault("STYLEGUIDE_SUCCESS_PREFIX", ":white_check_mark: **Success:** ")
	v.SetDefault("STYLEGUIDE_DANGER_PREFIX", ":x: **Danger:** ")
	v.SetDefault("STYLEGUIDE_LEGAL_FOOTER_MD", "")
	v.SetDefault("AUTO_LEGAL_FOOTER_ENABLED", false)
	v.SetDefault("AUTO_TAGS_ENABLED", false)
	v.SetDefault("AUTO_TAGS_KEYWORDS", "")

	return Config{
		BaseURL:   strings.TrimRight(v.GetString("BOOKSTACK_API_URL"), "/"),
		APIToken:  v.GetString("BOOKSTACK_API_TOKEN"),
		APISecret: v.GetString("BOOKSTACK_API_KEY"),
		Style: Style{
			HeadingLevel1:          v.GetString("STYLEGUIDE_HEADING_LEVEL_1"),
			HeadingLevel2:          v.GetString("STYLEGUIDE_HEADING_LEVEL_2"),
			LogoMarkdown:           v.GetString("STYLEGUIDE_LOGO_MARKDOWN"),
			InfoPrefix:             v.GetString("STYLEGUIDE_INFO_PREFIX"),
			WarningPrefix:          v.GetString("STYLEGUIDE_WARN_PREFIX"),
			SuccessPrefix:          v.GetString("STYLEGUIDE_SUCCESS_PREFIX"),
			DangerPrefix:           v.GetString("STYLEGUIDE_DANGER_PREFIX"),
			LegalFooterMarkdown:    v.GetString("STYLEGUIDE_LEGAL_FOOTER_MD"),
			AutoLegalFooterEnabled: v.GetBool("AUTO_LEGAL_FOOTER_ENABLED"),
			AutoTagsEnabled:        v.GetBool("AUTO_TAGS_ENABLED"),
			AutoTagsKeywords:       splitKeywords(v.GetString("AUTO_TAGS_KEYWORDS")),
		},
	}
}

// Validate checks the settings that have no sensible default.
func (c Config) Validate() error {
	var missing []string
	if c.BaseURL == "" {
		missing = append(missing, "BOOKSTACK_API_URL")
	}
	if c.APIToken == "" {
		missing = append(missing, "BOOKSTACK_API_TOKEN")
	}
	if c.APISecret == "" {
		missing = append(missing, "BOOKSTACK_API_KEY")
	}
	if len(missing) > 0 {
		return errors.New("missing required environment variables: " + strings.Join(missing, ", "))
	}
	return nil
}

// splitKeywords turns the comma-separated AUTO_TAGS_KEYWORDS value into a
// list, trimming whitespace and dropping empty entries. Casing is kept
// and becomes the tag name as written.
func splitKeywords(raw string) []string {
	if raw == "" {
		return nil
	}
	var keywords []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			keywords = append(keywords, trimmed)
		}
	}
	return keywords
}
