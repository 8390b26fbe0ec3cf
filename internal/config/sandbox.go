package config

import (
	"log/slog"
	"strings"

	lua "github.com/yuin/gopher-lua"
)

// blockedGlobals are removed from every config VM. string, table and math
// stay available, as do the basic functions (type, tostring, pairs, ...).
var blockedGlobals = []string{
	"os",
	"io",
	"debug",
	"require",
	"dofile",
	"loadfile",
	"load",
	"loadstring",
	"module",
	"package",
}

// newSandboxedVM creates a Lua VM with the standard libraries opened and
// everything that reaches outside the VM removed. print is redirected to
// logger since stdout carries only rendered lines.
func newSandboxedVM(logger *slog.Logger) *lua.LState {
	L := lua.NewState(lua.Options{
		CallStackSize: 256,
		RegistrySize:  1024 * 8,
	})
	for _, name := range blockedGlobals {
		L.SetGlobal(name, lua.LNil)
	}
	L.SetGlobal("print", L.NewFunction(logPrint(logger)))
	return L
}

// logPrint returns a print replacement emitting one debug record per call.
func logPrint(logger *slog.Logger) lua.LGFunction {
	return func(L *lua.LState) int {
		args := make([]string, 0, L.GetTop())
		for i := 1; i <= L.GetTop(); i++ {
			args = append(args, L.ToStringMeta(L.Get(i)).String())
		}
		logger.Debug("config print", "message", strings.Join(args, "\t"))
		return 0
	}
}
