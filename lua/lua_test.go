package lua

import (
	"reflect"
	"strings"
	"testing"

	lua "github.com/yuin/gopher-lua"
)

func newState(t *testing.T) *lua.LState {
	t.Helper()
	L := lua.NewState(lua.Options{})
	L.PreloadModule("nox", Loader)
	if err := L.DoString(`nox = require("nox")`); err != nil {
		L.Close()
		t.Fatal(err)
	}
	return L
}

func call(t *testing.T, L *lua.LState, fn, arg string) (lua.LValue, string) {
	t.Helper()
	err := L.CallByParam(
		lua.P{
			Fn:      L.GetField(L.GetGlobal("nox"), fn),
			NRet:    2,
			Protect: true,
		},
		lua.LString(arg),
	)
	if err != nil {
		t.Fatalf("glua error: %v", err)
	}
	res, perr := L.Get(-2), L.Get(-1)
	L.Pop(2)

	errStr := ""
	if perr != lua.LNil {
		errStr = string(perr.(lua.LString))
	}
	return res, errStr
}

func arrayPart(v lua.LValue) []string {
	tb, ok := v.(*lua.LTable)
	if !ok {
		return nil
	}
	out := []string{}
	tb.ForEach(func(key, val lua.LValue) {
		if key.Type() == lua.LTNumber {
			out = append(out, val.String())
		}
	})
	return out
}

func TestLuaScan(t *testing.T) {
	type test struct {
		name    string
		src     string
		wantErr string
		want    []string
	}
	var cases = []test{
		{
			name: "attribute line",
			src:  `name="value"`,
			want: []string{"name", "=", `"value"`},
		},
		{
			name: "composite operators",
			src:  "a <= b != c",
			want: []string{"a", "<=", "b", "!=", "c"},
		},
		{
			name: "block structure",
			src:  "door:\n  locked",
			want: []string{"door", ":", "<indent>", "locked", "<dedent>"},
		},
		{
			name: "blank input",
			src:  "   ",
			want: []string{},
		},
		{
			name:    "unterminated string",
			src:     `"abc`,
			wantErr: "UnterminatedStringLiteral",
		},
		{
			name:    "square bracket rejected",
			src:     "[",
			wantErr: "InvalidCharacter",
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			L := newState(t)
			defer L.Close()

			res, errStr := call(t, L, "scan", tt.src)

			if tt.wantErr != "" {
				if !strings.Contains(errStr, tt.wantErr) {
					t.Fatalf("want err containing %q, got %q", tt.wantErr, errStr)
				}
				if res != lua.LNil {
					t.Fatalf("want nil result, got %v", res)
				}
				return
			}
			if errStr != "" {
				t.Fatalf("unexpected error: %s", errStr)
			}
			if got := arrayPart(res); !reflect.DeepEqual(tt.want, got) {
				t.Fatalf("want %q got %q", tt.want, got)
			}
		})
	}
}

func TestLuaExpressions(t *testing.T) {
	type test struct {
		name       string
		line       string
		wantErr    string
		want       []string
		wantIndent int
	}
	var cases = []test{
		{
			name: "attribute",
			line: "width=0.0",
			want: []string{`width="0.0"`},
		},
		{
			name:       "selector trait with argument",
			line:       "  $me<child>.width",
			want:       []string{"$me<child>.width"},
			wantIndent: 2,
		},
		{
			name: "attribute then trait",
			line: `class="button" label.text`,
			want: []string{`class="button"`, "label.text"},
		},
		{
			name: "blank line",
			line: "",
			want: []string{},
		},
		{
			name:    "dangling attribute operator",
			line:    "name=",
			wantErr: "expected token after attribute operator",
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			L := newState(t)
			defer L.Close()

			res, errStr := call(t, L, "expressions", tt.line)

			if tt.wantErr != "" {
				if !strings.Contains(errStr, tt.wantErr) {
					t.Fatalf("want err containing %q, got %q", tt.wantErr, errStr)
				}
				return
			}
			if errStr != "" {
				t.Fatalf("unexpected error: %s", errStr)
			}
			if got := arrayPart(res); !reflect.DeepEqual(tt.want, got) {
				t.Fatalf("want %q got %q", tt.want, got)
			}
			if tt.wantIndent > 0 {
				tb := res.(*lua.LTable)
				indent := tb.RawGetString("indent")
				if n, ok := indent.(lua.LNumber); !ok || int(n) != tt.wantIndent {
					t.Fatalf("want indent %d got %v", tt.wantIndent, indent)
				}
			}
		})
	}
}
