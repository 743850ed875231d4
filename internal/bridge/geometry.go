package bridge

import (
	"context"

	"github.com/framehaus/cadbridge/internal/cadwork"
)

func (d *Dispatcher) registerGeometry() {
	d.register("get_element_width", d.scalarHandler("width", d.api.Geometry.Width))
	d.register("get_element_height", d.scalarHandler("height", d.api.Geometry.Height))
	d.register("get_element_length", d.scalarHandler("length", d.api.Geometry.Length))
	d.register("get_element_volume", d.scalarHandler("volume", d.api.Geometry.Volume))
	d.register("get_element_weight", d.scalarHandler("weight", d.api.Geometry.Weight))
	d.register("get_element_reference_face_area", d.scalarHandler("reference_face_area", d.api.Geometry.ReferenceFaceArea))
	d.register("get_total_area_of_all_faces", d.scalarHandler("total_face_area", d.api.Geometry.TotalFaceArea))

	d.register("get_element_xl", d.pointHandler("xl_vector", d.api.Geometry.XL))
	d.register("get_element_yl", d.pointHandler("yl_vector", d.api.Geometry.YL))
	d.register("get_element_zl", d.pointHandler("zl_vector", d.api.Geometry.ZL))
	d.register("get_element_p1", d.pointHandler("p1_point", d.api.Geometry.P1))
	d.register("get_element_p2", d.pointHandler("p2_point", d.api.Geometry.P2))
	d.register("get_element_p3", d.pointHandler("p3_point", d.api.Geometry.P3))
	d.register("get_center_of_gravity", d.pointHandler("center_of_gravity", d.api.Geometry.CenterOfGravity))

	d.register("get_center_of_gravity_for_list", d.handleCenterOfGravityForList)
	d.register("get_element_vertices", d.handleElementVertices)
	d.register("get_minimum_distance_between_elements", d.handleMinimumDistance)
	d.register("get_element_facets", d.handleElementFacets)
	d.register("rotate_elements", d.handleRotateElements)
	d.register("apply_global_scale", d.handleApplyGlobalScale)
	d.register("invert_model", d.handleInvertModel)
	d.register("rotate_height_axis_90", d.handleRotateHeightAxis90)
	d.register("rotate_length_axis_90", d.handleRotateLengthAxis90)
	d.register("get_element_type", d.handleElementType)
	d.register("calculate_total_volume", d.handleTotalVolume)
	d.register("calculate_total_weight", d.handleTotalWeight)
}

// scalarHandler builds a handler for single-element float queries.
func (d *Dispatcher) scalarHandler(key string, get func(int) (float64, error)) HandlerFunc {
	return func(ctx context.Context, args Args) (map[string]any, error) {
		id, err := args.ElementID("element_id")
		if err != nil {
			return nil, err
		}
		v, err := get(id)
		if err != nil {
			return nil, err
		}
		return map[string]any{key: v}, nil
	}
}

// pointHandler builds a handler for single-element point queries.
func (d *Dispatcher) pointHandler(key string, get func(int) (cadwork.Point, error)) HandlerFunc {
	return func(ctx context.Context, args Args) (map[string]any, error) {
		id, err := args.ElementID("element_id")
		if err != nil {
			return nil, err
		}
		p, err := get(id)
		if err != nil {
			return nil, err
		}
		return map[string]any{key: p.Slice()}, nil
	}
}

func (d *Dispatcher) handleCenterOfGravityForList(ctx context.Context, args Args) (map[string]any, error) {
	ids, err := args.RequiredElementIDs("element_ids")
	if err != nil {
		return nil, err
	}
	cog, err := d.api.Geometry.CenterOfGravityForList(ids)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"center_of_gravity": cog.Slice(),
		"element_count":     len(ids),
	}, nil
}

func (d *Dispatcher) handleElementVertices(ctx context.Context, args Args) (map[string]any, error) {
	id, err := args.ElementID("element_id")
	if err != nil {
		return nil, err
	}
	vertices, err := d.api.Geometry.Vertices(id)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"vertices":     cadwork.PointSlices(vertices),
		"vertex_count": len(vertices),
	}, nil
}

func (d *Dispatcher) handleMinimumDistance(ctx context.Context, args Args) (map[string]any, error) {
	first, err := args.ElementID("first_element_id")
	if err != nil {
		return nil, err
	}
	second, err := args.ElementID("second_element_id")
	if err != nil {
		return nil, err
	}
	distance, err := d.api.Geometry.MinimumDistance(first, second)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"distance":          distance,
		"first_element_id":  first,
		"second_element_id": second,
	}, nil
}

func (d *Dispatcher) handleElementFacets(ctx context.Context, args Args) (map[string]any, error) {
	id, err := args.ElementID("element_id")
	if err != nil {
		return nil, err
	}
	facets, err := d.api.Geometry.Facets(id)
	if err != nil {
		return nil, err
	}
	out := make([][][]float64, len(facets))
	for i, facet := range facets {
		out[i] = cadwork.PointSlices(facet)
	}
	return map[string]any{
		"facets":      out,
		"facet_count": len(out),
	}, nil
}

func (d *Dispatcher) handleRotateElements(ctx context.Context, args Args) (map[string]any, error) {
	ids, err := args.RequiredElementIDs("element_ids")
	if err != nil {
		return nil, err
	}
	origin, err := args.Point("origin")
	if err != nil {
		return nil, err
	}
	axis, err := args.Point("rotation_axis")
	if err != nil {
		return nil, err
	}
	angle, err := args.Float("rotation_angle")
	if err != nil {
		return nil, err
	}
	if err := d.api.Geometry.RotateElements(ids, origin, axis, angle); err != nil {
		return nil, err
	}
	return map[string]any{
		"rotated_count":  len(ids),
		"rotation_angle": angle,
	}, nil
}

func (d *Dispatcher) handleApplyGlobalScale(ctx context.Context, args Args) (map[string]any, error) {
	ids, err := args.RequiredElementIDs("element_ids")
	if err != nil {
		return nil, err
	}
	scale, err := args.PositiveFloat("scale")
	if err != nil {
		return nil, err
	}
	origin, err := args.Point("origin")
	if err != nil {
		return nil, err
	}
	if err := d.api.Geometry.ApplyGlobalScale(ids, scale, origin); err != nil {
		return nil, err
	}
	return map[string]any{
		"scaled_count": len(ids),
		"scale_factor": scale,
		"origin":       origin.Slice(),
	}, nil
}

func (d *Dispatcher) handleInvertModel(ctx context.Context, args Args) (map[string]any, error) {
	ids, err := args.RequiredElementIDs("element_ids")
	if err != nil {
		return nil, err
	}
	if err := d.api.Geometry.InvertModel(ids); err != nil {
		return nil, err
	}
	return map[string]any{"inverted_count": len(ids)}, nil
}

func (d *Dispatcher) handleRotateHeightAxis90(ctx context.Context, args Args) (map[string]any, error) {
	ids, err := args.RequiredElementIDs("element_ids")
	if err != nil {
		return nil, err
	}
	if err := d.api.Geometry.RotateHeightAxis90(ids); err != nil {
		return nil, err
	}
	return map[string]any{"rotated_count": len(ids)}, nil
}

func (d *Dispatcher) handleRotateLengthAxis90(ctx context.Context, args Args) (map[string]any, error) {
	ids, err := args.RequiredElementIDs("element_ids")
	if err != nil {
		return nil, err
	}
	if err := d.api.Geometry.RotateLengthAxis90(ids); err != nil {
		return nil, err
	}
	return map[string]any{"rotated_count": len(ids)}, nil
}

func (d *Dispatcher) handleElementType(ctx context.Context, args Args) (map[string]any, error) {
	id, err := args.ElementID("element_id")
	if err != nil {
		return nil, err
	}
	typ, err := d.api.Elements.ElementType(id)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"element_id":   id,
		"element_type": typ.String(),
		"type_id":      int(typ),
	}, nil
}

func (d *Dispatcher) handleTotalVolume(ctx context.Context, args Args) (map[string]any, error) {
	return d.handleTotalOf(args, d.api.Geometry.Volume, func(total float64) map[string]any {
		return map[string]any{
			"total_volume_mm3": total,
			"total_volume_cm3": total / 1e3,
			"total_volume_dm3": total / 1e6,
			"total_volume_m3":  total / 1e9,
		}
	})
}

func (d *Dispatcher) handleTotalWeight(ctx context.Context, args Args) (map[string]any, error) {
	return d.handleTotalOf(args, d.api.Geometry.Weight, func(total float64) map[string]any {
		return map[string]any{
			"total_weight_kg": total,
			"total_weight_g":  total * 1e3,
			"total_weight_t":  total / 1e3,
		}
	})
}

// handleTotalOf sums a per-element quantity, skipping elements the API
// rejects, and merges unit conversions into the shared payload shape.
func (d *Dispatcher) handleTotalOf(args Args, get func(int) (float64, error), convert func(float64) map[string]any) (map[string]any, error) {
	ids, err := args.RequiredElementIDs("element_ids")
	if err != nil {
		return nil, err
	}
	total := 0.0
	processed := make([]int, 0, len(ids))
	failed := make([]int, 0)
	for _, id := range ids {
		v, err := get(id)
		if err != nil || v <= 0 {
			failed = append(failed, id)
			continue
		}
		total += v
		processed = append(processed, id)
	}
	data := convert(total)
	data["processed_elements"] = processed
	data["failed_elements"] = failed
	data["processed_count"] = len(processed)
	data["failed_count"] = len(failed)
	data["total_count"] = len(ids)
	return data, nil
}
