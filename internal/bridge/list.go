package bridge

import (
	"context"
	"fmt"
	"sort"
)

func (d *Dispatcher) registerList() {
	d.register("create_element_list", d.handleCreateElementList)
	d.register("generate_material_list", d.handleGenerateMaterialList)
}

var optimizationModes = map[string]bool{
	"length": true, "area": true, "volume": true,
	"count": true, "weight": true, "cost": true,
}

// listIDs returns the requested element ids, or every element in the
// model when none were given.
func (d *Dispatcher) listIDs(args Args) ([]int, error) {
	if args.Has("element_ids") {
		return args.ElementIDs("element_ids")
	}
	return d.api.Elements.AllElementIDs()
}

func (d *Dispatcher) handleCreateElementList(ctx context.Context, args Args) (map[string]any, error) {
	ids, err := d.listIDs(args)
	if err != nil {
		return nil, err
	}
	opts := struct {
		IncludeProperties bool   `json:"include_properties"`
		IncludeMaterials  bool   `json:"include_materials"`
		IncludeDimensions bool   `json:"include_dimensions"`
		GroupBy           string `json:"group_by"`
		SortBy            string `json:"sort_by"`
	}{IncludeProperties: true, IncludeMaterials: true, IncludeDimensions: true, GroupBy: "type", SortBy: "name"}
	if err := args.Decode(&opts); err != nil {
		return nil, err
	}

	list := make([]map[string]any, 0, len(ids))
	for _, id := range ids {
		entry := map[string]any{"id": id}
		if opts.IncludeProperties {
			if typ, err := d.api.Elements.ElementType(id); err == nil {
				entry["type"] = typ.String()
			} else {
				entry["type"] = "unknown"
			}
			if name, err := d.api.Attributes.Name(id); err == nil && name != "" {
				entry["name"] = name
			} else {
				entry["name"] = fmt.Sprintf("Element_%d", id)
			}
		}
		if opts.IncludeMaterials {
			if material, err := d.api.Attributes.MaterialName(id); err == nil && material != "" {
				entry["material"] = material
			} else {
				entry["material"] = "Unknown"
			}
		}
		if opts.IncludeDimensions {
			if w, err := d.api.Geometry.Width(id); err == nil {
				entry["width"] = w
			}
			if h, err := d.api.Geometry.Height(id); err == nil {
				entry["height"] = h
			}
			if l, err := d.api.Geometry.Length(id); err == nil {
				entry["length"] = l
			}
			if v, err := d.api.Geometry.Volume(id); err == nil {
				entry["volume"] = v
			}
		}
		list = append(list, entry)
	}

	switch opts.SortBy {
	case "name", "type", "material":
		sort.SliceStable(list, func(i, j int) bool {
			a, _ := list[i][opts.SortBy].(string)
			b, _ := list[j][opts.SortBy].(string)
			return a < b
		})
	case "id":
		sort.SliceStable(list, func(i, j int) bool {
			return list[i]["id"].(int) < list[j]["id"].(int)
		})
	}

	return map[string]any{
		"element_list": list,
		"total_count":  len(list),
		"group_by":     opts.GroupBy,
		"sort_by":      opts.SortBy,
		"options": map[string]any{
			"include_properties": opts.IncludeProperties,
			"include_materials":  opts.IncludeMaterials,
			"include_dimensions": opts.IncludeDimensions,
		},
	}, nil
}

// materialGroup accumulates elements sharing a material and cross section.
type materialGroup struct {
	MaterialName string  `json:"material_name"`
	Dimensions   string  `json:"dimensions"`
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	ElementType  string  `json:"element_type"`
	Count        int     `json:"count"`
	TotalLength  float64 `json:"total_length"`
	TotalVolume  float64 `json:"total_volume"`
	ElementIDs   []int   `json:"element_ids"`

	TotalLengthWithWaste float64 `json:"total_length_with_waste,omitempty"`
	TotalVolumeWithWaste float64 `json:"total_volume_with_waste,omitempty"`
	WasteFactor          float64 `json:"waste_factor,omitempty"`
}

func (d *Dispatcher) handleGenerateMaterialList(ctx context.Context, args Args) (map[string]any, error) {
	ids, err := d.listIDs(args)
	if err != nil {
		return nil, err
	}
	opts := struct {
		IncludeWaste     bool    `json:"include_waste"`
		WasteFactor      float64 `json:"waste_factor"`
		GroupByMaterial  bool    `json:"group_by_material"`
		IncludeCosts     bool    `json:"include_costs"`
		CostDatabase     string  `json:"cost_database"`
		OptimizationMode string  `json:"optimization_mode"`
	}{IncludeWaste: true, WasteFactor: 0.1, GroupByMaterial: true, CostDatabase: "default", OptimizationMode: "length"}
	if err := args.Decode(&opts); err != nil {
		return nil, err
	}
	if opts.WasteFactor < 0 || opts.WasteFactor > 1 {
		return nil, fmt.Errorf("waste_factor must be between 0 and 1, got %v", opts.WasteFactor)
	}
	if !optimizationModes[opts.OptimizationMode] {
		return nil, fmt.Errorf("invalid optimization_mode %q", opts.OptimizationMode)
	}

	groups := make(map[string]*materialGroup)
	var keys []string
	for _, id := range ids {
		material, err := d.api.Attributes.MaterialName(id)
		if err != nil || material == "" {
			material = "Unknown"
		}
		length, err := d.api.Geometry.Length(id)
		if err != nil {
			continue
		}
		width, _ := d.api.Geometry.Width(id)
		height, _ := d.api.Geometry.Height(id)
		volume, _ := d.api.Geometry.Volume(id)

		key := fmt.Sprintf("%s_%vx%v", material, width, height)
		if !opts.GroupByMaterial {
			key = fmt.Sprintf("%s_%d", material, id)
		}
		g, ok := groups[key]
		if !ok {
			typeName := "unknown"
			if typ, err := d.api.Elements.ElementType(id); err == nil {
				typeName = typ.String()
			}
			g = &materialGroup{
				MaterialName: material,
				Dimensions:   fmt.Sprintf("%vx%v", width, height),
				Width:        width,
				Height:       height,
				ElementType:  typeName,
			}
			groups[key] = g
			keys = append(keys, key)
		}
		g.Count++
		g.TotalLength += length
		g.TotalVolume += volume
		g.ElementIDs = append(g.ElementIDs, id)
	}

	list := make([]*materialGroup, 0, len(groups))
	for _, key := range keys {
		g := groups[key]
		if opts.IncludeWaste {
			g.TotalLengthWithWaste = g.TotalLength * (1 + opts.WasteFactor)
			g.TotalVolumeWithWaste = g.TotalVolume * (1 + opts.WasteFactor)
			g.WasteFactor = opts.WasteFactor
		}
		list = append(list, g)
	}

	switch opts.OptimizationMode {
	case "length":
		sort.SliceStable(list, func(i, j int) bool { return list[i].TotalLength > list[j].TotalLength })
	case "volume":
		sort.SliceStable(list, func(i, j int) bool { return list[i].TotalVolume > list[j].TotalVolume })
	case "count":
		sort.SliceStable(list, func(i, j int) bool { return list[i].Count > list[j].Count })
	default:
		sort.SliceStable(list, func(i, j int) bool { return list[i].MaterialName < list[j].MaterialName })
	}

	var totalLength, totalVolume float64
	totalCount := 0
	for _, g := range list {
		totalLength += g.TotalLength
		totalVolume += g.TotalVolume
		totalCount += g.Count
	}

	summary := map[string]any{
		"total_materials":     len(list),
		"total_elements":      totalCount,
		"total_length":        totalLength,
		"total_volume":        totalVolume,
		"optimization_mode":   opts.OptimizationMode,
		"grouped_by_material": opts.GroupByMaterial,
	}
	if opts.IncludeWaste {
		withWasteLength := totalLength * (1 + opts.WasteFactor)
		withWasteVolume := totalVolume * (1 + opts.WasteFactor)
		summary["total_length_with_waste"] = withWasteLength
		summary["total_volume_with_waste"] = withWasteVolume
		summary["waste_volume"] = withWasteVolume - totalVolume
	}

	return map[string]any{
		"material_list": list,
		"summary":       summary,
		"options": map[string]any{
			"include_waste": opts.IncludeWaste,
			"waste_factor":  opts.WasteFactor,
			"include_costs": opts.IncludeCosts,
			"cost_database": opts.CostDatabase,
		},
	}, nil
}
