package story

import (
	"github.com/kestrel-tales/loom/constraint"
	"github.com/kestrel-tales/loom/directive"
	"github.com/kestrel-tales/loom/world"
)

// RenderDirective renders n's directive template, substituting alias and world
// property references. Returns a *directive.AliasError naming the
// offending token on the first delimiter that fails to resolve.
func (n Node) RenderDirective(binding constraint.AliasMap, w world.World) (string, error) {
	return directive.Render(n.Directive, binding, w)
}
