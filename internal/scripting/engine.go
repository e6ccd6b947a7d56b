package scripting

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/vizbridge/server/internal/backend"
	"github.com/vizbridge/server/internal/gui"
)

// Engine wraps a single gopher-lua VM exposing the scene-graph facade as a
// `gui` module, so operator scripts drive the viewer. Single-goroutine
// access only, like the facade itself.
type Engine struct {
	vm  *lua.LState
	ctx context.Context
	gui *gui.Gui
	log *zap.Logger
}

// NewEngine creates a Lua engine bound to the facade. The context is used
// for every facade call a script makes.
func NewEngine(ctx context.Context, g *gui.Gui, log *zap.Logger) *Engine {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, ctx: ctx, gui: g, log: log}
	vm.PreloadModule("gui", e.loadModule)
	return e
}

func (e *Engine) Close() {
	e.vm.Close()
}

// LoadDir loads all .lua files in a directory. Missing directories are
// skipped so library dirs stay optional.
func (e *Engine) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// RunFile executes one script file.
func (e *Engine) RunFile(path string) error {
	return e.vm.DoFile(path)
}

// RunString executes an inline chunk.
func (e *Engine) RunString(src string) error {
	return e.vm.DoString(src)
}

func (e *Engine) loadModule(L *lua.LState) int {
	mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"create_window":       e.createWindow,
		"create_scene":        e.createScene,
		"add_scene_to_window": e.addSceneToWindow,
		"add_box":             e.addBox,
		"add_arrow":           e.addArrow,
		"add_capsule":         e.addCapsule,
		"add_line":            e.addLine,
		"add_square_face":     e.addSquareFace,
		"add_triangle_face":   e.addTriangleFace,
		"add_sphere":          e.addSphere,
		"add_floor":           e.addFloor,
		"add_mesh_from_path":  e.addMeshFromPath,
		"add_to_group":        e.addToGroup,
		"resize_arrow":        e.resizeArrow,
	})
	L.Push(mod)
	return 1
}

// checkColor reads a 4-entry numeric table. Shape violations are programmer
// errors and raise a Lua error immediately instead of returning one.
func checkColor(L *lua.LState, n int) backend.Color {
	tbl := L.CheckTable(n)
	if tbl.Len() != 4 {
		L.ArgError(n, "color must be a table of 4 numbers")
	}
	var c backend.Color
	for i := 1; i <= 4; i++ {
		v, ok := tbl.RawGetInt(i).(lua.LNumber)
		if !ok {
			L.ArgError(n, "color must be a table of 4 numbers")
		}
		c[i-1] = uint8(v)
	}
	return c
}

// checkVec3 reads a 3-entry numeric table as a position.
func checkVec3(L *lua.LState, n int) backend.Vec3 {
	tbl := L.CheckTable(n)
	if tbl.Len() != 3 {
		L.ArgError(n, "position must be a table of 3 numbers")
	}
	var v backend.Vec3
	for i := 1; i <= 3; i++ {
		num, ok := tbl.RawGetInt(i).(lua.LNumber)
		if !ok {
			L.ArgError(n, "position must be a table of 3 numbers")
		}
		v[i-1] = float64(num)
	}
	return v
}

// pushResult converts a facade error to the Lua convention: true on
// success, false plus a message on recoverable failure.
func pushResult(L *lua.LState, err error) int {
	if err != nil {
		L.Push(lua.LFalse)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(lua.LTrue)
	return 1
}

func (e *Engine) createWindow(L *lua.LState) int {
	name := L.CheckString(1)
	wid, err := e.gui.CreateWindow(e.ctx, name)
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(lua.LString(wid))
	return 1
}

func (e *Engine) createScene(L *lua.LState) int {
	return pushResult(L, e.gui.CreateScene(e.ctx, L.CheckString(1)))
}

func (e *Engine) addSceneToWindow(L *lua.LState) int {
	return pushResult(L, e.gui.AddSceneToWindow(e.ctx, L.CheckString(1), L.CheckString(2)))
}

func (e *Engine) addBox(L *lua.LState) int {
	name := L.CheckString(1)
	sx := float64(L.CheckNumber(2))
	sy := float64(L.CheckNumber(3))
	sz := float64(L.CheckNumber(4))
	color := checkColor(L, 5)
	return pushResult(L, e.gui.AddBox(e.ctx, name, sx, sy, sz, color))
}

func (e *Engine) addArrow(L *lua.LState) int {
	name := L.CheckString(1)
	radius := float64(L.CheckNumber(2))
	length := float64(L.CheckNumber(3))
	color := checkColor(L, 4)
	return pushResult(L, e.gui.AddArrow(e.ctx, name, radius, length, color))
}

func (e *Engine) addCapsule(L *lua.LState) int {
	name := L.CheckString(1)
	radius := float64(L.CheckNumber(2))
	height := float64(L.CheckNumber(3))
	color := checkColor(L, 4)
	return pushResult(L, e.gui.AddCapsule(e.ctx, name, radius, height, color))
}

func (e *Engine) addLine(L *lua.LState) int {
	name := L.CheckString(1)
	p1 := checkVec3(L, 2)
	p2 := checkVec3(L, 3)
	color := checkColor(L, 4)
	return pushResult(L, e.gui.AddLine(e.ctx, name, p1, p2, color))
}

func (e *Engine) addSquareFace(L *lua.LState) int {
	name := L.CheckString(1)
	p1 := checkVec3(L, 2)
	p2 := checkVec3(L, 3)
	p3 := checkVec3(L, 4)
	p4 := checkVec3(L, 5)
	color := checkColor(L, 6)
	return pushResult(L, e.gui.AddSquareFace(e.ctx, name, p1, p2, p3, p4, color))
}

func (e *Engine) addTriangleFace(L *lua.LState) int {
	name := L.CheckString(1)
	p1 := checkVec3(L, 2)
	p2 := checkVec3(L, 3)
	p3 := checkVec3(L, 4)
	color := checkColor(L, 5)
	return pushResult(L, e.gui.AddTriangleFace(e.ctx, name, p1, p2, p3, color))
}

func (e *Engine) addSphere(L *lua.LState) int {
	name := L.CheckString(1)
	radius := float64(L.CheckNumber(2))
	color := checkColor(L, 3)
	return pushResult(L, e.gui.AddSphere(e.ctx, name, radius, color))
}

func (e *Engine) addFloor(L *lua.LState) int {
	return pushResult(L, e.gui.AddFloor(e.ctx, L.CheckString(1)))
}

func (e *Engine) addMeshFromPath(L *lua.LState) int {
	return pushResult(L, e.gui.AddMeshFromPath(e.ctx, L.CheckString(1), L.CheckString(2)))
}

func (e *Engine) addToGroup(L *lua.LState) int {
	return pushResult(L, e.gui.AddToGroup(e.ctx, L.CheckString(1), L.CheckString(2)))
}

func (e *Engine) resizeArrow(L *lua.LState) int {
	name := L.CheckString(1)
	radius := float64(L.CheckNumber(2))
	length := float64(L.CheckNumber(3))
	return pushResult(L, e.gui.ResizeArrow(e.ctx, name, radius, length))
}
