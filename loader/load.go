package loader

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/tidwall/jsonc"

	"github.com/kestrel-tales/loom/internal/trace"
	"github.com/kestrel-tales/loom/world"
)

// LoadWorld parses data into a world.World snapshot. ctx is used only for
// trace logging boundaries; the load itself performs no I/O beyond
// decoding data.
func (a *Adapter) LoadWorld(ctx context.Context, data []byte) (world.World, error) {
	op := trace.Begin(ctx, a.logger, "loom.loader.load_world")

	var raw rawWorld
	if err := a.unmarshal(data, &raw); err != nil {
		op.End(err)
		return world.World{}, err
	}

	w, err := convertWorld(raw)
	if err != nil {
		op.End(err)
		return world.World{}, err
	}

	op.End(nil, slog.Int("entities", len(raw.Entities)), slog.Int("relations", len(raw.Relations)))
	return w, nil
}

func (a *Adapter) unmarshal(data []byte, v any) error {
	if !a.strictJSON {
		data = jsonc.ToJSON(data)
	}
	return json.Unmarshal(data, v)
}
