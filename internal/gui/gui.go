package gui

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/vizbridge/server/internal/backend"
	"github.com/vizbridge/server/internal/world"
)

// Journal receives catalog notifications for declared windows/scenes and
// logged entities. Journal failures never fail the originating operation;
// the viewer's recordings stay the source of truth.
type Journal interface {
	WindowCreated(ctx context.Context, name string) error
	SceneCreated(ctx context.Context, name string) error
	SceneBound(ctx context.Context, scene, window string) error
	EntityLogged(ctx context.Context, entity, archetype, scene string) error
}

// Gui is the legacy scene-graph facade: windows, scenes, and named entities
// on top of the remote logging viewer. All methods are synchronous and meant
// to be driven from a single control goroutine.
type Gui struct {
	state   *world.State
	backend backend.Backend
	journal Journal // nil = catalog disabled
	log     *zap.Logger
}

func New(st *world.State, be backend.Backend, journal Journal, log *zap.Logger) *Gui {
	return &Gui{state: st, backend: be, journal: journal, log: log}
}

// State exposes the registry aggregate, mainly for startup reporting.
func (g *Gui) State() *world.State { return g.state }

// CreateWindow declares a window name and returns it. The viewer creates the
// actual window only when a scene is attached via AddSceneToWindow.
func (g *Gui) CreateWindow(ctx context.Context, name string) (string, error) {
	if !validGroupName(name) {
		g.log.Error("createWindow: invalid window name", zap.String("name", name))
		return "", fmt.Errorf("window %q: %w", name, ErrInvalidName)
	}
	g.state.AddWindow(name)
	g.log.Info("window declared; the viewer opens it when a scene is attached",
		zap.String("window", name))
	g.journalWindow(ctx, name)
	return name, nil
}

// CreateScene declares a scene with no recording. The recording is acquired
// when the scene is attached to a window.
func (g *Gui) CreateScene(ctx context.Context, name string) error {
	if !validGroupName(name) {
		g.log.Error("createScene: invalid scene name", zap.String("name", name))
		return fmt.Errorf("scene %q: %w", name, ErrInvalidName)
	}
	if g.state.FindScene(name) != nil {
		g.log.Warn("duplicate scene name; lookups return the first registration",
			zap.String("scene", name))
	}
	g.state.AddScene(name)
	g.log.Info("scene declared; attach it to a window to start recording",
		zap.String("scene", name))
	g.journalScene(ctx, name)
	return nil
}

// AddSceneToWindow binds a scene to a window: it acquires a recording from
// the viewer keyed by (window, scene) and attaches it to the scene. Binding
// an already-bound scene overwrites the recording handle.
func (g *Gui) AddSceneToWindow(ctx context.Context, sceneName, windowName string) error {
	sc := g.state.FindScene(sceneName)
	if sc == nil {
		g.log.Error("addSceneToWindow: unknown scene", zap.String("scene", sceneName))
		return fmt.Errorf("scene %q: %w", sceneName, ErrSceneNotFound)
	}
	if !g.state.HasWindow(windowName) {
		g.log.Error("addSceneToWindow: unknown window", zap.String("window", windowName))
		return fmt.Errorf("window %q: %w", windowName, ErrWindowNotFound)
	}

	rec, err := g.backend.AcquireRecording(ctx, windowName, sceneName)
	if err != nil {
		return fmt.Errorf("acquire recording %s/%s: %w", windowName, sceneName, err)
	}
	if sc.Bound() {
		g.log.Warn("scene rebound; previous recording handle overwritten",
			zap.String("scene", sceneName),
			zap.String("old_window", sc.Rec.ApplicationID()),
			zap.String("new_window", windowName))
	}
	sc.Rec = rec
	g.log.Info("scene attached to window",
		zap.String("scene", sceneName), zap.String("window", windowName))
	g.journalBinding(ctx, sceneName, windowName)
	return nil
}

// add runs the shared primitive-creation protocol: resolve the identifier,
// register the entity, and either log it immediately (scene prefix resolved)
// or hold it until AddToGroup.
func (g *Gui) add(ctx context.Context, ident string, p backend.Payload) error {
	if ident == "" {
		g.log.Error("add: empty entity name", zap.Stringer("archetype", p.Kind()))
		return fmt.Errorf("%s: %w", p.Kind(), ErrInvalidName)
	}
	t := g.resolveTarget(ident)
	if g.state.FindEntity(t.name) != nil {
		g.log.Warn("duplicate entity name; lookups return the first registration",
			zap.String("entity", t.name))
	}
	e := &world.Entity{Name: t.name, Payload: p}
	g.state.Register(e)

	if t.scene == nil {
		g.log.Info("entity held; call AddToGroup to log it into a scene",
			zap.String("entity", t.name), zap.Stringer("archetype", p.Kind()))
		return nil
	}

	e.AddScene(t.scene)
	if err := g.logEntity(ctx, e, t.scene); err != nil {
		return err
	}
	g.log.Info("entity logged",
		zap.String("entity", t.name),
		zap.String("scene", t.scene.Name),
		zap.Stringer("archetype", p.Kind()))
	return nil
}

// logEntity publishes an entity's payload into one scene's recording.
// Mesh-from-path payloads go through the file ingestion entry point, which
// takes the native stream id instead of the recording wrapper.
func (g *Gui) logEntity(ctx context.Context, e *world.Entity, sc *world.Scene) error {
	rec := sc.Rec
	if rec == nil {
		g.log.Error("scene has no recording; attach it to a window first",
			zap.String("scene", sc.Name))
		return fmt.Errorf("scene %q: %w", sc.Name, ErrSceneNotBound)
	}

	switch p := e.Payload.(type) {
	case *backend.MeshFromPath:
		if err := g.backend.LogFile(ctx, p.Path, rec.Native()); err != nil {
			return fmt.Errorf("log file %q: %w", p.Path, err)
		}
	default:
		if err := g.backend.Log(ctx, e.Name, e.Payload, rec); err != nil {
			return fmt.Errorf("log %q: %w", e.Name, err)
		}
	}
	g.journalEntity(ctx, e, sc)
	return nil
}

// AddToGroup completes the deferred path: it adds the named scene to the
// entity's membership set and logs the entity into that scene. Membership is
// idempotent; the log call is re-issued on every invocation.
func (g *Gui) AddToGroup(ctx context.Context, entityName, sceneName string) error {
	sc := g.state.FindScene(sceneName)
	if sc == nil {
		g.log.Error("addToGroup: unknown scene", zap.String("scene", sceneName))
		return fmt.Errorf("scene %q: %w", sceneName, ErrSceneNotFound)
	}
	e := g.state.FindEntity(entityName)
	if e == nil {
		g.log.Error("addToGroup: unknown entity", zap.String("entity", entityName))
		return fmt.Errorf("entity %q: %w", entityName, ErrEntityNotFound)
	}

	e.AddScene(sc)
	if err := g.logEntity(ctx, e, sc); err != nil {
		return err
	}
	g.log.Info("entity logged",
		zap.String("entity", entityName),
		zap.String("scene", sceneName),
		zap.Stringer("archetype", e.Payload.Kind()))
	return nil
}

// ResizeArrow rebuilds an arrow's payload with a new radius and length,
// keeping its colors, and re-logs it. With a scene-prefixed identifier the
// arrow must already be a member of that scene and is re-logged there only;
// with a bare identifier it is re-logged to every scene in its membership
// set (none is fine: the payload is updated, nothing is logged).
func (g *Gui) ResizeArrow(ctx context.Context, ident string, radius, length float64) error {
	if i := strings.IndexByte(ident, '/'); i != -1 && i != len(ident)-1 {
		if sc := g.state.FindScene(ident[:i]); sc != nil {
			return g.resizeArrowInScene(ctx, ident[i+1:], sc, radius, length)
		}
	}

	e := g.state.FindEntity(ident)
	if e == nil {
		g.log.Error("resizeArrow: unknown arrow", zap.String("entity", ident))
		return fmt.Errorf("arrow %q: %w", ident, ErrEntityNotFound)
	}
	p, err := g.rebuildArrow(e, radius, length)
	if err != nil {
		return err
	}
	e.Payload = p
	if len(e.Scenes) == 0 {
		g.log.Info("arrow resized; not logged anywhere yet", zap.String("entity", e.Name))
		return nil
	}
	for _, sc := range e.Scenes {
		if err := g.logEntity(ctx, e, sc); err != nil {
			return err
		}
		g.log.Info("resized arrow re-logged",
			zap.String("entity", e.Name), zap.String("scene", sc.Name))
	}
	return nil
}

func (g *Gui) resizeArrowInScene(ctx context.Context, name string, sc *world.Scene, radius, length float64) error {
	e := g.state.FindEntity(name)
	if e == nil {
		g.log.Error("resizeArrow: unknown arrow",
			zap.String("entity", name), zap.String("scene", sc.Name))
		return fmt.Errorf("arrow %q: %w", name, ErrEntityNotFound)
	}
	if !e.MemberOf(sc) {
		g.log.Error("resizeArrow: arrow not logged in scene",
			zap.String("entity", name), zap.String("scene", sc.Name))
		return fmt.Errorf("arrow %q in scene %q: %w", name, sc.Name, ErrNotInScene)
	}
	p, err := g.rebuildArrow(e, radius, length)
	if err != nil {
		return err
	}
	e.Payload = p
	if err := g.logEntity(ctx, e, sc); err != nil {
		return err
	}
	g.log.Info("resized arrow re-logged",
		zap.String("entity", e.Name), zap.String("scene", sc.Name))
	return nil
}

// rebuildArrow constructs a replacement arrow payload, copying the colors of
// the existing one. The entity's payload is not touched on failure.
func (g *Gui) rebuildArrow(e *world.Entity, radius, length float64) (*backend.Arrows, error) {
	old, ok := e.Payload.(*backend.Arrows)
	if !ok {
		g.log.Error("resizeArrow: entity is not an arrow",
			zap.String("entity", e.Name), zap.Stringer("archetype", e.Payload.Kind()))
		return nil, fmt.Errorf("entity %q is %s: %w", e.Name, e.Payload.Kind(), ErrWrongArchetype)
	}
	p := backend.NewArrow(e.Name, radius, length, backend.Color{})
	p.Colors = append([]backend.Color(nil), old.Colors...)
	return p, nil
}

// Journal helpers. Failures are logged and swallowed.

func (g *Gui) journalWindow(ctx context.Context, name string) {
	if g.journal == nil {
		return
	}
	if err := g.journal.WindowCreated(ctx, name); err != nil {
		g.log.Warn("catalog: record window failed", zap.String("window", name), zap.Error(err))
	}
}

func (g *Gui) journalScene(ctx context.Context, name string) {
	if g.journal == nil {
		return
	}
	if err := g.journal.SceneCreated(ctx, name); err != nil {
		g.log.Warn("catalog: record scene failed", zap.String("scene", name), zap.Error(err))
	}
}

func (g *Gui) journalBinding(ctx context.Context, scene, window string) {
	if g.journal == nil {
		return
	}
	if err := g.journal.SceneBound(ctx, scene, window); err != nil {
		g.log.Warn("catalog: record binding failed",
			zap.String("scene", scene), zap.String("window", window), zap.Error(err))
	}
}

func (g *Gui) journalEntity(ctx context.Context, e *world.Entity, sc *world.Scene) {
	if g.journal == nil {
		return
	}
	if err := g.journal.EntityLogged(ctx, e.Name, e.Payload.Kind().String(), sc.Name); err != nil {
		g.log.Warn("catalog: record entity failed",
			zap.String("entity", e.Name), zap.Error(err))
	}
}
