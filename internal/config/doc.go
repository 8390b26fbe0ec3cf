// Package config loads minisig64's optional Lua configuration file.
//
// The file runs in a sandboxed gopher-lua VM with a read-only "platform"
// table injected (see internal/platform), so defaults can depend on the
// host:
//
//	minisig64 = {
//	  variable   = "ZIG_ARCHIVE_SIGNATURE_BASE64_FILENAME",
//	  user_agent = "minisig64/1.0",
//	  timeout    = "30s",            -- or a number of seconds
//	  zig = {
//	    mirror  = "https://ziglang.org",
//	    version = "0.15.1",
//	    os      = "linux",
//	    arch    = platform.is_arm64 and "aarch64" or "x86_64",
//	  },
//	}
//
// platform.when(cond, value) yields value or nil, so a field can be set on
// some hosts and left to flags and defaults elsewhere:
//
//	user_agent = platform.when(platform.is_linux, "ci-linux/1.0"),
//
// Every field is optional. Unset fields keep their zero value so callers
// can layer flags over config over built-in defaults.
//
// # Sandbox
//
// The os, io, debug and package loading globals (require, dofile,
// loadfile, load, loadstring) are removed before user code runs, and print
// writes debug log records instead of stdout. Parsing is
// bounded by the context deadline, or DefaultParseTimeout if there is none.
//
// # Errors
//
// Lua failures are reported as *ParseError and schema violations as
// *ValidationError. Both match ErrConfig with errors.Is.
package config
