package bridge

import (
	"context"

	"github.com/framehaus/cadbridge/internal/cadwork"
)

func (d *Dispatcher) registerVisualization() {
	d.register("set_color", d.handleSetColor)
	d.register("get_color", d.handleGetColor)
	d.register("set_visibility", d.handleSetVisibility)
	d.register("set_transparency", d.handleSetTransparency)
	d.register("get_transparency", d.handleGetTransparency)
	d.register("show_all_elements", d.handleShowAllElements)
	d.register("hide_all_elements", d.handleHideAllElements)
	d.register("refresh_display", d.handleRefreshDisplay)
	d.register("get_visible_element_count", d.handleVisibleElementCount)
}

func (d *Dispatcher) handleSetColor(ctx context.Context, args Args) (map[string]any, error) {
	ids, err := args.RequiredElementIDs("element_ids")
	if err != nil {
		return nil, err
	}
	colorID, err := args.Int("color_id")
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		if err := d.api.Visualization.SetColor(id, colorID); err != nil {
			return nil, err
		}
	}
	return map[string]any{
		"element_ids": ids,
		"color_id":    colorID,
	}, nil
}

func (d *Dispatcher) handleGetColor(ctx context.Context, args Args) (map[string]any, error) {
	id, err := args.ElementID("element_id")
	if err != nil {
		return nil, err
	}
	colorID, err := d.api.Visualization.Color(id)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"element_id": id,
		"color_id":   colorID,
		"color_name": cadwork.ColorName(colorID),
	}, nil
}

func (d *Dispatcher) handleSetVisibility(ctx context.Context, args Args) (map[string]any, error) {
	ids, err := args.RequiredElementIDs("element_ids")
	if err != nil {
		return nil, err
	}
	visible, err := args.Bool("visible")
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		if visible {
			err = d.api.Visualization.ShowElement(id)
		} else {
			err = d.api.Visualization.HideElement(id)
		}
		if err != nil {
			return nil, err
		}
	}
	return map[string]any{
		"element_ids": ids,
		"visible":     visible,
	}, nil
}

func (d *Dispatcher) handleSetTransparency(ctx context.Context, args Args) (map[string]any, error) {
	ids, err := args.RequiredElementIDs("element_ids")
	if err != nil {
		return nil, err
	}
	transparency, err := args.Int("transparency")
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		if err := d.api.Visualization.SetTransparency(id, transparency); err != nil {
			return nil, err
		}
	}
	return map[string]any{
		"element_ids":  ids,
		"transparency": transparency,
	}, nil
}

func (d *Dispatcher) handleGetTransparency(ctx context.Context, args Args) (map[string]any, error) {
	id, err := args.ElementID("element_id")
	if err != nil {
		return nil, err
	}
	transparency, err := d.api.Visualization.Transparency(id)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"element_id":   id,
		"transparency": transparency,
	}, nil
}

func (d *Dispatcher) handleShowAllElements(ctx context.Context, args Args) (map[string]any, error) {
	ids, err := d.api.Elements.AllElementIDs()
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		if err := d.api.Visualization.ShowElement(id); err != nil {
			return nil, err
		}
	}
	return map[string]any{"shown_count": len(ids)}, nil
}

func (d *Dispatcher) handleHideAllElements(ctx context.Context, args Args) (map[string]any, error) {
	ids, err := d.api.Elements.AllElementIDs()
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		if err := d.api.Visualization.HideElement(id); err != nil {
			return nil, err
		}
	}
	return map[string]any{"hidden_count": len(ids)}, nil
}

func (d *Dispatcher) handleRefreshDisplay(ctx context.Context, args Args) (map[string]any, error) {
	if err := d.api.Visualization.RefreshDisplay(); err != nil {
		return nil, err
	}
	return map[string]any{"refreshed": true}, nil
}

func (d *Dispatcher) handleVisibleElementCount(ctx context.Context, args Args) (map[string]any, error) {
	visible, err := d.api.Elements.VisibleElementIDs()
	if err != nil {
		return nil, err
	}
	all, err := d.api.Elements.AllElementIDs()
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"visible_count": len(visible),
		"total_count":   len(all),
	}, nil
}
