package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode"

	"github.com/ZebulonRouseFrantzich/minisig64/internal/dockerline"
)

// ErrConfig matches every error produced while loading a config.
var ErrConfig = errors.New("config error")

// Config holds the settings a config file may provide.
type Config struct {
	// Shell variable naming the file the echoed lines write to
	Variable string

	// User-Agent header for the signature download
	UserAgent string

	// Request timeout; zero means none
	Timeout time.Duration

	// Zig release used when no URL is given on the command line
	Zig ZigConfig
}

// ZigConfig selects a Zig release archive.
type ZigConfig struct {
	Mirror  string
	Version string
	OS      string
	Arch    string
}

// Merge returns c with every empty field taken from fallback.
func (c Config) Merge(fallback Config) Config {
	if c.Variable == "" {
		c.Variable = fallback.Variable
	}
	if c.UserAgent == "" {
		c.UserAgent = fallback.UserAgent
	}
	if c.Timeout == 0 {
		c.Timeout = fallback.Timeout
	}
	if c.Zig.Mirror == "" {
		c.Zig.Mirror = fallback.Zig.Mirror
	}
	if c.Zig.Version == "" {
		c.Zig.Version = fallback.Zig.Version
	}
	if c.Zig.OS == "" {
		c.Zig.OS = fallback.Zig.OS
	}
	if c.Zig.Arch == "" {
		c.Zig.Arch = fallback.Zig.Arch
	}
	return c
}

// Validate performs basic validation on a Config.
func (c *Config) Validate() error {
	if c.Variable != "" {
		if err := dockerline.ValidateVariable(c.Variable); err != nil {
			return &ValidationError{Field: luaFieldVariable, Message: err.Error()}
		}
	}

	if len(c.UserAgent) > MaxUserAgentLength {
		return &ValidationError{
			Field:   luaFieldUserAgent,
			Message: fmt.Sprintf("too long (%d chars, max %d)", len(c.UserAgent), MaxUserAgentLength),
		}
	}
	if strings.IndexFunc(c.UserAgent, unicode.IsControl) >= 0 {
		return &ValidationError{Field: luaFieldUserAgent, Message: "must not contain control characters"}
	}

	if c.Timeout < 0 {
		return &ValidationError{Field: luaFieldTimeout, Message: "must not be negative"}
	}

	if c.Zig.Mirror != "" {
		u, err := url.Parse(c.Zig.Mirror)
		if err != nil || (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
			return &ValidationError{
				Field:   luaFieldZig + "." + luaFieldMirror,
				Message: fmt.Sprintf("must be an http(s) URL, got %q", c.Zig.Mirror),
			}
		}
	}

	return nil
}

// ValidationError represents a config validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "config validation failed for " + e.Field + ": " + e.Message
	}
	return "config validation failed: " + e.Message
}

// Unwrap lets errors.Is match ErrConfig.
func (e *ValidationError) Unwrap() error {
	return ErrConfig
}

// ParseError represents a config parsing error with friendly message.
type ParseError struct {
	Message string // User-friendly message
	Detail  string // Technical details (raw Lua error)
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Message, e.Detail)
}

// Unwrap lets errors.Is match ErrConfig.
func (e *ParseError) Unwrap() error {
	return ErrConfig
}
