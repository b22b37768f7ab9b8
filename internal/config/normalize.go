package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeStyle()
	c.normalizeTiming()
	c.normalizeNotifications()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		c.Paths.OutputDir = defaultOutputDir
	}
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.DatabaseDir) == "" {
		c.Paths.DatabaseDir = defaultDatabaseDir
	}
	if c.Paths.DatabaseDir, err = expandPath(c.Paths.DatabaseDir); err != nil {
		return fmt.Errorf("paths.database_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.TemplatePath) != "" {
		if c.Paths.TemplatePath, err = expandPath(c.Paths.TemplatePath); err != nil {
			return fmt.Errorf("paths.template_path: %w", err)
		}
	} else {
		c.Paths.TemplatePath = ""
	}
	return nil
}

func (c *Config) normalizeStyle() {
	c.Style.FontName = strings.TrimSpace(c.Style.FontName)
	if c.Style.FontName == "" {
		c.Style.FontName = defaultFontName
	}
	if c.Style.FontSize <= 0 {
		c.Style.FontSize = defaultFontSize
	}
	c.Style.Alignment = strings.ToLower(strings.TrimSpace(c.Style.Alignment))
	if c.Style.Alignment == "" {
		c.Style.Alignment = defaultAlignment
	}
}

func (c *Config) normalizeTiming() {
	if c.Timing.EpsilonSeconds <= 0 {
		c.Timing.EpsilonSeconds = defaultEpsilonSeconds
	}
	if c.Timing.FallbackSeconds <= 0 {
		c.Timing.FallbackSeconds = defaultFallbackSeconds
	}
}

func (c *Config) normalizeNotifications() {
	c.Notifications.NtfyTopic = strings.TrimSpace(c.Notifications.NtfyTopic)
	if c.Notifications.NtfyTopic == "" {
		if value, ok := os.LookupEnv("SUBSTATION_NTFY_TOPIC"); ok {
			c.Notifications.NtfyTopic = strings.TrimSpace(value)
		}
	}
	if c.Notifications.RequestTimeout <= 0 {
		c.Notifications.RequestTimeout = 10
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
