package bridge

import (
	"context"
	"fmt"
	"strconv"

	"github.com/framehaus/cadbridge/internal/cadwork"
)

func (d *Dispatcher) registerElement() {
	d.register("create_beam", d.handleCreateBeam)
	d.register("create_panel", d.handleCreatePanel)
	d.register("create_circular_beam_points", d.handleCreateCircularBeam)
	d.register("create_square_beam_points", d.handleCreateSquareBeam)
	d.register("create_standard_beam_points", d.handleCreateStandardBeam)
	d.register("create_standard_panel_points", d.handleCreateStandardPanel)
	d.register("create_drilling_points", d.handleCreateDrilling)
	d.register("create_polygon_beam", d.handleCreatePolygonBeam)
	d.register("get_active_element_ids", d.handleActiveElementIDs)
	d.register("get_all_element_ids", d.handleAllElementIDs)
	d.register("get_visible_element_ids", d.handleVisibleElementIDs)
	d.register("get_user_element_ids", d.handleUserElementIDs)
	d.register("get_element_info", d.handleElementInfo)
	d.register("delete_elements", d.handleDeleteElements)
	d.register("copy_elements", d.handleCopyElements)
	d.register("move_element", d.handleMoveElement)
}

// beamAxis extracts the shared p1/p2/p3 arguments. The orientation
// point p3 defaults to p1 shifted one unit in z when omitted.
func beamAxis(args Args) (p1, p2, p3 cadwork.Point, err error) {
	if p1, err = args.Point("p1"); err != nil {
		return
	}
	if p2, err = args.Point("p2"); err != nil {
		return
	}
	opt, err := args.OptionalPoint("p3")
	if err != nil {
		return
	}
	if opt != nil {
		p3 = *opt
	} else {
		p3 = cadwork.Point{X: p1.X, Y: p1.Y, Z: p1.Z + 1}
	}
	return
}

func (d *Dispatcher) handleCreateBeam(ctx context.Context, args Args) (map[string]any, error) {
	p1, p2, p3, err := beamAxis(args)
	if err != nil {
		return nil, err
	}
	width, err := args.PositiveFloat("width")
	if err != nil {
		return nil, err
	}
	height, err := args.PositiveFloat("height")
	if err != nil {
		return nil, err
	}
	id, err := d.api.Elements.CreateRectangularBeam(width, height, p1, p2, p3)
	if err != nil {
		return nil, err
	}
	return map[string]any{"id": id}, nil
}

func (d *Dispatcher) handleCreatePanel(ctx context.Context, args Args) (map[string]any, error) {
	p1, p2, p3, err := beamAxis(args)
	if err != nil {
		return nil, err
	}
	width, err := args.PositiveFloat("width")
	if err != nil {
		return nil, err
	}
	thickness, err := args.PositiveFloat("thickness")
	if err != nil {
		return nil, err
	}
	id, err := d.api.Elements.CreateRectangularPanel(width, thickness, p1, p2, p3)
	if err != nil {
		return nil, err
	}
	return map[string]any{"id": id}, nil
}

func (d *Dispatcher) handleCreateCircularBeam(ctx context.Context, args Args) (map[string]any, error) {
	diameter, err := args.PositiveFloat("diameter")
	if err != nil {
		return nil, err
	}
	p1, err := args.Point("p1")
	if err != nil {
		return nil, err
	}
	p2, err := args.Point("p2")
	if err != nil {
		return nil, err
	}
	p3, err := args.OptionalPoint("p3")
	if err != nil {
		return nil, err
	}
	id, err := d.api.Elements.CreateCircularBeam(diameter, p1, p2, p3)
	if err != nil {
		return nil, err
	}
	return map[string]any{"element_id": id}, nil
}

func (d *Dispatcher) handleCreateSquareBeam(ctx context.Context, args Args) (map[string]any, error) {
	width, err := args.PositiveFloat("width")
	if err != nil {
		return nil, err
	}
	p1, err := args.Point("p1")
	if err != nil {
		return nil, err
	}
	p2, err := args.Point("p2")
	if err != nil {
		return nil, err
	}
	p3, err := args.OptionalPoint("p3")
	if err != nil {
		return nil, err
	}
	id, err := d.api.Elements.CreateSquareBeam(width, p1, p2, p3)
	if err != nil {
		return nil, err
	}
	return map[string]any{"element_id": id}, nil
}

func (d *Dispatcher) handleCreateStandardBeam(ctx context.Context, args Args) (map[string]any, error) {
	return d.handleCreateStandard(args, d.api.Elements.CreateStandardBeam)
}

func (d *Dispatcher) handleCreateStandardPanel(ctx context.Context, args Args) (map[string]any, error) {
	return d.handleCreateStandard(args, d.api.Elements.CreateStandardPanel)
}

func (d *Dispatcher) handleCreateStandard(args Args, create func(string, cadwork.Point, cadwork.Point, *cadwork.Point) (int, error)) (map[string]any, error) {
	name, err := args.String("standard_element_name")
	if err != nil {
		return nil, err
	}
	p1, err := args.Point("p1")
	if err != nil {
		return nil, err
	}
	p2, err := args.Point("p2")
	if err != nil {
		return nil, err
	}
	p3, err := args.OptionalPoint("p3")
	if err != nil {
		return nil, err
	}
	id, err := create(name, p1, p2, p3)
	if err != nil {
		return nil, err
	}
	return map[string]any{"element_id": id}, nil
}

func (d *Dispatcher) handleCreateDrilling(ctx context.Context, args Args) (map[string]any, error) {
	diameter, err := args.PositiveFloat("diameter")
	if err != nil {
		return nil, err
	}
	p1, err := args.Point("p1")
	if err != nil {
		return nil, err
	}
	p2, err := args.Point("p2")
	if err != nil {
		return nil, err
	}
	id, err := d.api.Elements.CreateDrilling(diameter, p1, p2)
	if err != nil {
		return nil, err
	}
	return map[string]any{"element_id": id}, nil
}

func (d *Dispatcher) handleCreatePolygonBeam(ctx context.Context, args Args) (map[string]any, error) {
	vertices, err := args.Points("polygon_vertices")
	if err != nil {
		return nil, err
	}
	thickness, err := args.PositiveFloat("thickness")
	if err != nil {
		return nil, err
	}
	xl, err := args.Point("xl")
	if err != nil {
		return nil, err
	}
	zl, err := args.Point("zl")
	if err != nil {
		return nil, err
	}
	id, err := d.api.Elements.CreatePolygonBeam(vertices, thickness, xl, zl)
	if err != nil {
		return nil, err
	}
	return map[string]any{"element_id": id}, nil
}

func (d *Dispatcher) handleActiveElementIDs(ctx context.Context, args Args) (map[string]any, error) {
	ids, err := d.api.Elements.ActiveElementIDs()
	if err != nil {
		return nil, err
	}
	return map[string]any{"element_ids": ids}, nil
}

func (d *Dispatcher) handleAllElementIDs(ctx context.Context, args Args) (map[string]any, error) {
	ids, err := d.api.Elements.AllElementIDs()
	if err != nil {
		return nil, err
	}
	return map[string]any{"element_ids": ids}, nil
}

func (d *Dispatcher) handleVisibleElementIDs(ctx context.Context, args Args) (map[string]any, error) {
	ids, err := d.api.Elements.VisibleElementIDs()
	if err != nil {
		return nil, err
	}
	return map[string]any{"element_ids": ids}, nil
}

func (d *Dispatcher) handleUserElementIDs(ctx context.Context, args Args) (map[string]any, error) {
	count, err := args.IntDefault("count", 0)
	if err != nil {
		return nil, err
	}
	if args.Has("count") && count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}
	ids, err := d.api.Elements.UserElementIDs(count)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"element_ids":    ids,
		"selected_count": len(ids),
	}, nil
}

func (d *Dispatcher) handleElementInfo(ctx context.Context, args Args) (map[string]any, error) {
	id, err := args.ElementID("element_id")
	if err != nil {
		return nil, err
	}

	geo := d.api.Geometry
	p1, err := geo.P1(id)
	if err != nil {
		return nil, err
	}
	p2, err := geo.P2(id)
	if err != nil {
		return nil, err
	}
	p3, err := geo.P3(id)
	if err != nil {
		return nil, err
	}
	xl, err := geo.XL(id)
	if err != nil {
		return nil, err
	}
	yl, err := geo.YL(id)
	if err != nil {
		return nil, err
	}
	zl, err := geo.ZL(id)
	if err != nil {
		return nil, err
	}

	// Attribute reads are best effort: a missing attribute never fails
	// the whole info call.
	attrs := map[string]any{
		"name":     attrOrNil(d.api.Attributes.Name, id),
		"group":    attrOrNil(d.api.Attributes.Group, id),
		"subgroup": attrOrNil(d.api.Attributes.Subgroup, id),
		"comment":  attrOrNil(d.api.Attributes.Comment, id),
		"material": attrOrNil(d.api.Attributes.MaterialName, id),
	}

	return map[string]any{
		"info": map[string]any{
			"element_id": id,
			"geometry": map[string]any{
				"p1":       p1.Slice(),
				"p2":       p2.Slice(),
				"p3":       p3.Slice(),
				"vector_x": xl.Slice(),
				"vector_y": yl.Slice(),
				"vector_z": zl.Slice(),
			},
			"attributes": attrs,
		},
	}, nil
}

func attrOrNil(get func(int) (string, error), id int) any {
	v, err := get(id)
	if err != nil || v == "" {
		return nil
	}
	return v
}

func (d *Dispatcher) handleDeleteElements(ctx context.Context, args Args) (map[string]any, error) {
	ids, err := args.ElementIDs("element_ids")
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return map[string]any{"deleted_count": 0}, nil
	}
	if err := d.api.Elements.DeleteElements(ids); err != nil {
		return nil, err
	}
	return map[string]any{"deleted_count": len(ids)}, nil
}

func (d *Dispatcher) handleCopyElements(ctx context.Context, args Args) (map[string]any, error) {
	ids, err := args.RequiredElementIDs("element_ids")
	if err != nil {
		return nil, err
	}
	vector, err := args.Point("copy_vector")
	if err != nil {
		return nil, err
	}
	newIDs, err := d.api.Elements.CopyElements(ids, vector)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"new_element_ids": newIDs,
		"copied_count":    len(newIDs),
	}, nil
}

func (d *Dispatcher) handleMoveElement(ctx context.Context, args Args) (map[string]any, error) {
	ids, err := args.RequiredElementIDs("element_ids")
	if err != nil {
		return nil, err
	}
	vector, err := args.Point("move_vector")
	if err != nil {
		return nil, err
	}
	if err := d.api.Elements.MoveElements(ids, vector); err != nil {
		return nil, err
	}
	return map[string]any{"moved_count": len(ids)}, nil
}

// idKey renders an element id as a JSON object key.
func idKey(id int) string {
	return strconv.Itoa(id)
}
