// Package loom provides a constraint-driven narrative engine: a world of
// entities and their relations, story graphs whose nodes declare
// constraints over that world, and a matcher that finds every way the
// graph's aliases can bind to concrete entities so a node's directive can
// be rendered.
//
// # Architecture Overview
//
// The module is organized into layers with strict dependency ordering:
//
//	Foundation tier (no internal dependencies beyond property):
//	  - property: tagged scalar values and string-keyed maps
//	  - entity: identified bundles of properties, with an exclusory overlay
//
//	Core library tier:
//	  - constraint: the constraint algebra, aliases, relations, bindings
//	  - world: immutable snapshots of entities, relations, and globals
//	  - story: the strong/weak story graph and its directive templates
//	  - directive: the "{alias.property}" templating language
//	  - match: alias-to-entity binding search over a world and a graph
//	  - registry: top-level API tying story graphs to worlds
//
//	Adapter tier:
//	  - loader: JSON-with-comments deserialization of worlds and graphs
//	  - loader/storyyaml: YAML serialization of story graphs
//
// # Entry Points
//
// Building a registry from authored JSON:
//
//	a := loader.NewAdapter()
//	w, err := a.LoadWorld(ctx, worldJSON)
//	g, err := a.LoadGraph(ctx, graphJSON)
//	reg := registry.New()
//	storyID := reg.Insert(g)
//
// Finding candidate bindings:
//
//	candidates := reg.Query(w)
//
// # Subpackages
//
// See the individual package documentation for detailed usage:
//
//   - [github.com/kestrel-tales/loom/property]: tagged values and maps
//   - [github.com/kestrel-tales/loom/entity]: entities and exclusory properties
//   - [github.com/kestrel-tales/loom/constraint]: constraints, aliases, bindings
//   - [github.com/kestrel-tales/loom/world]: world snapshots
//   - [github.com/kestrel-tales/loom/story]: story graphs and directives
//   - [github.com/kestrel-tales/loom/directive]: directive template rendering
//   - [github.com/kestrel-tales/loom/match]: binding search
//   - [github.com/kestrel-tales/loom/registry]: top-level registry API
//   - [github.com/kestrel-tales/loom/loader]: JSONC world/graph loading
//   - [github.com/kestrel-tales/loom/loader/storyyaml]: YAML graph serialization
package loom
