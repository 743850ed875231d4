package bridge

import "context"

func (d *Dispatcher) registerShopDrawing() {
	d.register("add_wall_section_x", d.wallSectionHandler("x", func(id int) (int, error) {
		return d.api.ShopDrawings.AddWallSectionX(id)
	}))
	d.register("add_wall_section_y", d.wallSectionHandler("y", func(id int) (int, error) {
		return d.api.ShopDrawings.AddWallSectionY(id)
	}))
}

func (d *Dispatcher) wallSectionHandler(direction string, add func(int) (int, error)) HandlerFunc {
	return func(ctx context.Context, args Args) (map[string]any, error) {
		wallID, err := args.ElementID("wall_id")
		if err != nil {
			return nil, err
		}
		params := map[string]any{
			"direction":       direction,
			"position":        "center",
			"depth":           "auto",
			"show_dimensions": true,
			"show_materials":  true,
		}
		if raw, ok := args["section_params"].(map[string]any); ok {
			for k, v := range raw {
				params[k] = v
			}
		}
		sectionID, err := add(wallID)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"section_id":        sectionID,
			"wall_id":           wallID,
			"section_direction": direction,
			"section_params":    params,
		}, nil
	}
}
