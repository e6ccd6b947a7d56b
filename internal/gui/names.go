package gui

import (
	"strings"

	"github.com/vizbridge/server/internal/world"
)

// target is the outcome of resolving an entity identifier against the scene
// registry.
type target struct {
	scene *world.Scene // nil when the identifier is bare
	name  string       // entity name with any scene prefix stripped
}

// resolveTarget splits an identifier of the form [<scene>/]<path> at the
// first '/'. Three outcomes:
//
//   - no '/', or the '/' is the last character: bare name, no scene;
//   - the prefix matches a registered scene: the remainder is the entity
//     name and the scene is the immediate log target;
//   - the prefix matches nothing: the whole identifier is kept as a bare
//     name, interior slashes and all (the viewer treats them as a grouping
//     hierarchy, the registry does not).
//
// Resolution is re-evaluated on every call; scene registration can change
// between calls, so the result is never cached.
func (g *Gui) resolveTarget(ident string) target {
	i := strings.IndexByte(ident, '/')
	if i == -1 || i == len(ident)-1 {
		return target{name: ident}
	}
	if sc := g.state.FindScene(ident[:i]); sc != nil {
		return target{scene: sc, name: ident[i+1:]}
	}
	return target{name: ident}
}

// validGroupName checks a window or scene name: non-empty, no separator.
func validGroupName(name string) bool {
	return name != "" && !strings.ContainsRune(name, '/')
}
