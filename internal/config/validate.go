package config

import (
	"errors"
	"fmt"
	"os"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateStyle(); err != nil {
		return err
	}
	if err := c.validateVideo(); err != nil {
		return err
	}
	if err := c.validateWorkflow(); err != nil {
		return err
	}
	if err := c.validateTemplate(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateStyle() error {
	switch c.Style.Alignment {
	case "top", "middle", "bottom":
	default:
		return fmt.Errorf("style.alignment must be top, middle, or bottom (got %q)", c.Style.Alignment)
	}
	if c.Style.FontSize <= 0 {
		return errors.New("style.font_size must be positive")
	}
	return nil
}

func (c *Config) validateVideo() error {
	if c.Video.Width <= 0 {
		return errors.New("video.width must be positive")
	}
	if c.Video.Height <= 0 {
		return errors.New("video.height must be positive")
	}
	return nil
}

func (c *Config) validateWorkflow() error {
	if c.Workflow.QueuePollInterval <= 0 {
		return errors.New("workflow.queue_poll_interval must be positive")
	}
	if c.Workflow.ErrorRetryInterval <= 0 {
		return errors.New("workflow.error_retry_interval must be positive")
	}
	if c.Notifications.RequestTimeout <= 0 {
		return errors.New("notifications.request_timeout must be positive")
	}
	return nil
}

func (c *Config) validateTemplate() error {
	if c.Paths.TemplatePath == "" {
		return nil
	}
	info, err := os.Stat(c.Paths.TemplatePath)
	if err != nil {
		return fmt.Errorf("paths.template_path: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("paths.template_path %q is a directory", c.Paths.TemplatePath)
	}
	return nil
}
