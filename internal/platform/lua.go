package platform

import (
	lua "github.com/yuin/gopher-lua"
)

// luaFields lists the values a config sees as platform.<name>.
func luaFields(info *Info) map[string]lua.LValue {
	return map[string]lua.LValue{
		"os":          lua.LString(info.OS),
		"arch":        lua.LString(info.Arch),
		"kernel_arch": lua.LString(info.KernelArch),
		"zig_os":      lua.LString(info.ZigOS),
		"zig_arch":    lua.LString(info.ZigArch),
		"is_linux":    lua.LBool(info.IsLinux()),
		"is_macos":    lua.LBool(info.IsMacOS()),
		"is_windows":  lua.LBool(info.IsWindows()),
		"is_amd64":    lua.LBool(info.IsAMD64()),
		"is_arm64":    lua.LBool(info.IsARM64()),
	}
}

// InjectPlatformTable sets the global "platform" to a read-only view of
// info. Call it before running any config code.
//
// Besides the fields of luaFields the table has when(cond, value), which
// yields value or nil. Since unset config fields fall back to flags and
// defaults, when() lets a config override a setting on some hosts only:
//
//	user_agent = platform.when(platform.is_arm64, "ci-arm/1.0")
func InjectPlatformTable(L *lua.LState, info *Info) error {
	fields := L.NewTable()
	for name, value := range luaFields(info) {
		fields.RawSetString(name, value)
	}
	fields.RawSetString("when", L.NewFunction(luaWhen))

	L.SetGlobal("platform", readOnly(L, fields))
	return nil
}

func luaWhen(L *lua.LState) int {
	if L.CheckBool(1) {
		L.Push(L.Get(2))
	} else {
		L.Push(lua.LNil)
	}
	return 1
}

// readOnly wraps fields in an empty proxy whose metatable forwards reads
// and raises on writes. __metatable hides the metatable from getmetatable.
func readOnly(L *lua.LState, fields *lua.LTable) *lua.LTable {
	mt := L.NewTable()
	mt.RawSetString("__index", fields)
	mt.RawSetString("__newindex", L.NewFunction(func(L *lua.LState) int {
		L.RaiseError("platform table is read-only and cannot be modified")
		return 0
	}))
	mt.RawSetString("__metatable", lua.LString("protected"))

	proxy := L.NewTable()
	L.SetMetatable(proxy, mt)
	return proxy
}
