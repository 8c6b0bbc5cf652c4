package directive

import (
	"strconv"
	"strings"

	"github.com/kestrel-tales/loom/constraint"
	"github.com/kestrel-tales/loom/entity"
	"github.com/kestrel-tales/loom/world"
)

// aliasEntityPrefix marks the "<a>ALIAS" substitution form: the stringified
// EntityId bound to ALIAS.
const aliasEntityPrefix = "<a>"

// Render substitutes every {…} delimiter in template and returns the
// result. Text outside delimiters is copied verbatim; delimiters are
// resolved left-to-right, trying in order:
//
//  1. "<a>ALIAS" — the EntityId bound to ALIAS, in decimal.
//  2. "ALIAS.PROP" — the display form of entity ALIAS's positive property
//     PROP.
//  3. "PROP" — the display form of the world's global property PROP.
//
// Render returns an *AliasError naming the offending token on the first
// delimiter that fails to resolve.
func Render(template string, binding constraint.AliasMap, w world.World) (string, error) {
	var out strings.Builder
	rest := template

	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			out.WriteString(rest)
			return out.String(), nil
		}
		out.WriteString(rest[:open])
		rest = rest[open+1:]

		closeIdx := strings.IndexByte(rest, '}')
		if closeIdx < 0 {
			return "", &AliasError{Token: rest, Reason: "unterminated directive token"}
		}
		token := rest[:closeIdx]
		rest = rest[closeIdx+1:]

		resolved, err := resolveToken(token, binding, w)
		if err != nil {
			return "", err
		}
		out.WriteString(resolved)
	}
}

func resolveToken(token string, binding constraint.AliasMap, w world.World) (string, error) {
	if alias, ok := strings.CutPrefix(token, aliasEntityPrefix); ok {
		return resolveAliasEntity(token, alias, binding)
	}
	if aliasName, propName, ok := strings.Cut(token, "."); ok {
		return resolveAliasProperty(token, aliasName, propName, binding, w)
	}
	return resolveWorldProperty(token, token, w)
}

func resolveAliasEntity(token, alias string, binding constraint.AliasMap) (string, error) {
	id, ok := binding.Get(alias)
	if !ok {
		return "", &AliasError{Token: token, Reason: "alias " + alias + " is not bound"}
	}
	return formatEntityID(id), nil
}

// formatEntityID renders an entity.ID in its default decimal form.
func formatEntityID(id entity.ID) string {
	return strconv.FormatInt(int64(id), 10)
}

func resolveAliasProperty(token, aliasName, propName string, binding constraint.AliasMap, w world.World) (string, error) {
	id, ok := binding.Get(aliasName)
	if !ok {
		return "", &AliasError{Token: token, Reason: "alias " + aliasName + " is not bound"}
	}
	e, ok := w.Entity(id)
	if !ok {
		return "", &AliasError{Token: token, Reason: "entity bound to alias " + aliasName + " is not in the world"}
	}
	v, ok := e.Properties.Get(propName)
	if !ok {
		return "", &AliasError{Token: token, Reason: "entity bound to alias " + aliasName + " has no property " + propName}
	}
	return v.Display(), nil
}

func resolveWorldProperty(token, propName string, w world.World) (string, error) {
	v, ok := w.Global().Get(propName)
	if !ok {
		return "", &AliasError{Token: token, Reason: "world has no global property " + propName}
	}
	return v.Display(), nil
}
