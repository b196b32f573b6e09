// Package lua exposes the nox pipeline to Lua scripts via gopher-lua.
//
// Register the module on a state and require it from script code:
//
//	L.PreloadModule("nox", noxlua.Loader)
//
//	local nox = require("nox")
//	local toks = nox.scan('name="value"')
//	local exprs = nox.expressions('  $player<torch>.equipped')
//
// Both functions return a table on success and nil plus an error string
// on failure. Inputs with no tokens yield an empty table rather than an
// error.
package lua

import (
	nox "github.com/ernieIzde8ski/not-oblivion-xml"
	lua "github.com/yuin/gopher-lua"
)

// Loader builds the module table. Pass it to L.PreloadModule.
func Loader(L *lua.LState) int {
	mod := L.SetFuncs(L.NewTable(), exports)
	L.Push(mod)
	return 1
}

var exports = map[string]lua.LGFunction{
	"scan":        scan,
	"expressions": expressions,
}

// scan(text) -> {token-string...} | nil, errmsg
//
// Tokenizes the whole input, block structure included. Each token is
// rendered the way the token stream printer renders it, so indentation
// shows up as "<indent>" and "<dedent>" entries.
func scan(L *lua.LState) int {
	src := L.CheckString(1)

	tokens, err := nox.ParseString(src)
	if err != nil {
		if nox.IsNoTokens(err) {
			L.Push(L.NewTable())
			return 1
		}
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}

	t := L.NewTable()
	for _, tok := range tokens {
		t.Append(lua.LString(tok.String()))
	}
	L.Push(t)
	return 1
}

// expressions(line) -> {expr-string..., indent=n} | nil, errmsg
//
// Runs one line through the full pipeline. The array part holds the
// rendered expressions; the "indent" key holds the count of leading
// whitespace characters.
func expressions(L *lua.LState) int {
	line := L.CheckString(1)

	reduced, err := nox.ExtractLine(line)
	if err != nil {
		if nox.IsNoTokens(err) {
			L.Push(L.NewTable())
			return 1
		}
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}

	t := L.NewTable()
	for _, e := range reduced.Members {
		t.Append(lua.LString(e.String()))
	}
	t.RawSetString("indent", lua.LNumber(reduced.LeadingWhitespace))
	L.Push(t)
	return 1
}
