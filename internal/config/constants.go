package config

import "time"

const (
	// DefaultParseTimeout bounds config evaluation when ctx has no deadline
	DefaultParseTimeout = 5 * time.Second

	// MaxConfigSize is the largest config file accepted, in bytes
	MaxConfigSize = 1 << 20

	// MaxUserAgentLength bounds the user_agent field
	MaxUserAgentLength = 256

	// EnvConfigPath names the environment variable pointing at a config file
	EnvConfigPath = "MINISIG64_CONFIG"
)

// Lua schema field names and globals
const (
	luaGlobal         = "minisig64"
	luaFieldVariable  = "variable"
	luaFieldUserAgent = "user_agent"
	luaFieldTimeout   = "timeout"
	luaFieldZig       = "zig"
	luaFieldMirror    = "mirror"
	luaFieldVersion   = "version"
	luaFieldOS        = "os"
	luaFieldArch      = "arch"
)
