package config

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/ZebulonRouseFrantzich/minisig64/internal/platform"
	lua "github.com/yuin/gopher-lua"
)

// Parser represents a Lua config parser with platform detection.
type Parser struct {
	detector platform.Detector
	logger   *slog.Logger
}

// NewParser creates a new config parser with the given platform detector.
// A nil detector leaves the platform table undefined.
func NewParser(detector platform.Detector) *Parser {
	return &Parser{
		detector: detector,
		logger:   slog.New(slog.DiscardHandler),
	}
}

// WithLogger sets the logger used to trace config loading.
func (p *Parser) WithLogger(logger *slog.Logger) *Parser {
	if logger != nil {
		p.logger = logger
	}
	return p
}

// ParseFile reads and parses the config file at path.
func (p *Parser) ParseFile(ctx context.Context, path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrConfig, path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxConfigSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrConfig, path, err)
	}
	if len(data) > MaxConfigSize {
		return nil, &ValidationError{Message: fmt.Sprintf("%s exceeds %d bytes", path, MaxConfigSize)}
	}

	p.logger.Debug("loading config", "path", path, "size", len(data))
	return p.ParseString(ctx, string(data))
}

// ParseString parses a Lua config from a string.
func (p *Parser) ParseString(ctx context.Context, luaCode string) (*Config, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultParseTimeout)
		defer cancel()
	}

	L := newSandboxedVM(p.logger)
	defer L.Close()
	L.SetContext(ctx)

	if p.detector != nil {
		platformInfo, err := p.detector.Detect(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: platform detection failed: %w", ErrConfig, err)
		}
		if err := platform.InjectPlatformTable(L, platformInfo); err != nil {
			return nil, fmt.Errorf("%w: inject platform table: %w", ErrConfig, err)
		}
	}

	if err := L.DoString(luaCode); err != nil {
		if ctx.Err() != nil {
			return nil, &ParseError{Message: "config evaluation timed out", Detail: ctx.Err().Error()}
		}
		return nil, &ParseError{Message: "Lua error", Detail: trimTraceback(err.Error())}
	}

	cfg, err := extractConfig(L)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("config loaded",
		"variable", cfg.Variable,
		"zig_version", cfg.Zig.Version,
		"timeout", cfg.Timeout,
	)
	return cfg, nil
}

// extractConfig reads the global config table from a Lua state.
func extractConfig(L *lua.LState) (*Config, error) {
	global := L.GetGlobal(luaGlobal)
	if global.Type() != lua.LTTable {
		return nil, &ParseError{
			Message: fmt.Sprintf("missing or invalid '%s' table", luaGlobal),
			Detail:  fmt.Sprintf("expected table, got %s", global.Type()),
		}
	}
	table := global.(*lua.LTable)

	cfg := &Config{}
	var err error

	if cfg.Variable, err = optString(table, luaFieldVariable, ""); err != nil {
		return nil, err
	}
	if cfg.UserAgent, err = optString(table, luaFieldUserAgent, ""); err != nil {
		return nil, err
	}
	if cfg.Timeout, err = optDuration(table, luaFieldTimeout); err != nil {
		return nil, err
	}

	switch zigVal := table.RawGetString(luaFieldZig); zigVal.Type() {
	case lua.LTNil:
	case lua.LTTable:
		zigTable := zigVal.(*lua.LTable)
		prefix := luaFieldZig + "."
		if cfg.Zig.Mirror, err = optString(zigTable, luaFieldMirror, prefix); err != nil {
			return nil, err
		}
		if cfg.Zig.Version, err = optString(zigTable, luaFieldVersion, prefix); err != nil {
			return nil, err
		}
		if cfg.Zig.OS, err = optString(zigTable, luaFieldOS, prefix); err != nil {
			return nil, err
		}
		if cfg.Zig.Arch, err = optString(zigTable, luaFieldArch, prefix); err != nil {
			return nil, err
		}
	default:
		return nil, &ValidationError{
			Field:   luaFieldZig,
			Message: fmt.Sprintf("expected table, got %s", zigVal.Type()),
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// optString returns a string field, "" when it is nil.
func optString(table *lua.LTable, field, prefix string) (string, error) {
	v := table.RawGetString(field)
	switch v.Type() {
	case lua.LTNil:
		return "", nil
	case lua.LTString:
		return strings.TrimSpace(v.String()), nil
	default:
		return "", &ValidationError{
			Field:   prefix + field,
			Message: fmt.Sprintf("expected string, got %s", v.Type()),
		}
	}
}

// optDuration accepts a Go duration string ("30s") or a number of seconds.
func optDuration(table *lua.LTable, field string) (time.Duration, error) {
	v := table.RawGetString(field)
	switch v.Type() {
	case lua.LTNil:
		return 0, nil
	case lua.LTNumber:
		return time.Duration(float64(v.(lua.LNumber)) * float64(time.Second)), nil
	case lua.LTString:
		d, err := time.ParseDuration(v.String())
		if err != nil {
			return 0, &ValidationError{Field: field, Message: err.Error()}
		}
		return d, nil
	default:
		return 0, &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("expected duration string or seconds, got %s", v.Type()),
		}
	}
}

// trimTraceback drops the Lua stack traceback from an error message.
func trimTraceback(msg string) string {
	if idx := strings.Index(msg, "stack traceback"); idx > 0 {
		return strings.TrimSpace(msg[:idx])
	}
	return msg
}

// ResolvePath returns the config path to load: explicit wins, then the
// MINISIG64_CONFIG environment variable. Empty means no config.
func ResolvePath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return os.Getenv(EnvConfigPath)
}
