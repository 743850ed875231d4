package bridge

import "context"

func (d *Dispatcher) registerRoof() {
	d.register("get_roof_surfaces", d.handleRoofSurfaces)
	d.register("calculate_roof_area", d.handleRoofArea)
}

func (d *Dispatcher) handleRoofSurfaces(ctx context.Context, args Args) (map[string]any, error) {
	ids, err := args.RequiredElementIDs("element_ids")
	if err != nil {
		return nil, err
	}
	details := make([]map[string]any, 0, len(ids))
	for _, id := range ids {
		typ, err := d.api.Elements.ElementType(id)
		if err != nil {
			details = append(details, map[string]any{
				"element_id":      id,
				"element_type":    "unknown",
				"is_roof_element": false,
			})
			continue
		}
		area, _ := d.api.Geometry.ReferenceFaceArea(id)
		details = append(details, map[string]any{
			"element_id":        id,
			"element_type":      typ.String(),
			"roof_surface_area": area,
			"is_roof_element":   true,
		})
	}
	return map[string]any{
		"analyzed_elements": len(ids),
		"roof_surfaces":     details,
		"surface_details":   details,
	}, nil
}

func (d *Dispatcher) handleRoofArea(ctx context.Context, args Args) (map[string]any, error) {
	ids, err := args.RequiredElementIDs("roof_element_ids")
	if err != nil {
		return nil, err
	}
	var totalSloped float64
	areas := make([]map[string]any, 0, len(ids))
	for _, id := range ids {
		area, err := d.api.Geometry.ReferenceFaceArea(id)
		if err != nil {
			areas = append(areas, map[string]any{
				"element_id": id,
				"area_m2":    0.0,
				"area_mm2":   0.0,
			})
			continue
		}
		typeName := "unknown"
		if typ, err := d.api.Elements.ElementType(id); err == nil {
			typeName = typ.String()
		}
		areas = append(areas, map[string]any{
			"element_id":   id,
			"element_type": typeName,
			"area_m2":      area / 1e6,
			"area_mm2":     area,
		})
		totalSloped += area
	}
	calculations := map[string]any{
		"total_sloped_area_mm2":       totalSloped,
		"total_sloped_area_m2":        totalSloped / 1e6,
		"element_count":               len(ids),
		"average_area_per_element_m2": totalSloped / 1e6 / float64(len(ids)),
	}
	return map[string]any{
		"roof_area_calculations": calculations,
		"detailed_calculations":  calculations,
		"element_areas":          areas,
	}, nil
}
