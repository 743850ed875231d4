package bridge

import (
	"context"
	"fmt"
	"sort"
)

func (d *Dispatcher) registerOptimization() {
	d.register("optimize_cutting_list", d.handleOptimizeCuttingList)
}

var cuttingAlgorithms = map[string]bool{
	"bin_packing": true, "genetic": true, "greedy": true,
	"advanced": true, "first_fit": true, "best_fit": true,
}

// cutRequirement is one element's demand on a stock piece.
type cutRequirement struct {
	elementID int
	length    float64
}

type stockCut struct {
	ElementID     int     `json:"element_id"`
	Length        float64 `json:"length"`
	StartPosition float64 `json:"start_position"`
	EndPosition   float64 `json:"end_position"`
}

type stockPiece struct {
	StockID         int        `json:"stock_id"`
	StockLength     float64    `json:"stock_length"`
	RemainingLength float64    `json:"remaining_length"`
	Cuts            []stockCut `json:"cuts"`
}

type cuttingGroup struct {
	Material         string        `json:"material"`
	CrossSection     string        `json:"cross_section"`
	StockPieces      []*stockPiece `json:"stock_pieces"`
	TotalStockPieces int           `json:"total_stock_pieces"`
	TotalWasteLength float64       `json:"total_waste_length"`
	TotalStockUsed   float64       `json:"total_stock_used"`
	WastePercentage  float64       `json:"waste_percentage"`
}

func (d *Dispatcher) handleOptimizeCuttingList(ctx context.Context, args Args) (map[string]any, error) {
	ids, err := d.listIDs(args)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return map[string]any{
			"message":                "No elements found for optimization",
			"optimized_cutting_list": []any{},
			"waste_analysis":         map[string]any{"total_waste": 0},
		}, nil
	}
	opts := struct {
		StockLengths       []float64 `json:"stock_lengths"`
		Algorithm          string    `json:"optimization_algorithm"`
		KerfWidth          float64   `json:"kerf_width"`
		MinOffcutLength    float64   `json:"min_offcut_length"`
		MaxWastePercentage float64   `json:"max_waste_percentage"`
		PriorityMode       string    `json:"priority_mode"`
	}{
		StockLengths:       []float64{2000, 2500, 3000, 4000, 5000, 6000},
		Algorithm:          "bin_packing",
		KerfWidth:          3.0,
		MinOffcutLength:    100.0,
		MaxWastePercentage: 5.0,
		PriorityMode:       "waste_minimization",
	}
	if err := args.Decode(&opts); err != nil {
		return nil, err
	}
	if !cuttingAlgorithms[opts.Algorithm] {
		return nil, fmt.Errorf("invalid optimization_algorithm %q", opts.Algorithm)
	}
	if opts.KerfWidth < 0 || opts.MinOffcutLength < 0 {
		return nil, fmt.Errorf("kerf_width and min_offcut_length must be non-negative")
	}
	if opts.MaxWastePercentage < 0 || opts.MaxWastePercentage > 100 {
		return nil, fmt.Errorf("max_waste_percentage must be between 0 and 100, got %v", opts.MaxWastePercentage)
	}
	if len(opts.StockLengths) == 0 {
		return nil, fmt.Errorf("stock_lengths must not be empty")
	}

	// Group cut requirements by material and cross section.
	type group struct {
		material     string
		crossSection string
		reqs         []cutRequirement
	}
	groups := make(map[string]*group)
	var keys []string
	processed := 0
	for _, id := range ids {
		length, err := d.api.Geometry.Length(id)
		if err != nil {
			continue
		}
		width, _ := d.api.Geometry.Width(id)
		height, _ := d.api.Geometry.Height(id)
		material, err := d.api.Attributes.MaterialName(id)
		if err != nil || material == "" {
			material = "Unknown"
		}
		crossSection := fmt.Sprintf("%vx%v", width, height)
		key := material + "_" + crossSection
		g, ok := groups[key]
		if !ok {
			g = &group{material: material, crossSection: crossSection}
			groups[key] = g
			keys = append(keys, key)
		}
		g.reqs = append(g.reqs, cutRequirement{elementID: id, length: length})
		processed++
	}

	var (
		cuttingList      []*cuttingGroup
		totalWasteLength float64
		totalStockUsed   float64
	)
	for _, key := range keys {
		g := groups[key]
		pieces := packFirstFitDecreasing(g.reqs, opts.StockLengths, opts.KerfWidth)

		var groupWaste, groupStock float64
		for _, p := range pieces {
			groupWaste += p.RemainingLength
			groupStock += p.StockLength
		}
		totalWasteLength += groupWaste
		totalStockUsed += groupStock

		wastePct := 0.0
		if groupStock > 0 {
			wastePct = groupWaste / groupStock * 100
		}
		cuttingList = append(cuttingList, &cuttingGroup{
			Material:         g.material,
			CrossSection:     g.crossSection,
			StockPieces:      pieces,
			TotalStockPieces: len(pieces),
			TotalWasteLength: groupWaste,
			TotalStockUsed:   groupStock,
			WastePercentage:  wastePct,
		})
	}

	overallWastePct := 0.0
	if totalStockUsed > 0 {
		overallWastePct = totalWasteLength / totalStockUsed * 100
	}

	return map[string]any{
		"optimization_algorithm":   opts.Algorithm,
		"priority_mode":            opts.PriorityMode,
		"total_elements_processed": processed,
		"total_material_groups":    len(cuttingList),
		"optimized_cutting_list":   cuttingList,
		"waste_analysis": map[string]any{
			"total_waste_length":       totalWasteLength,
			"total_stock_used":         totalStockUsed,
			"overall_waste_percentage": overallWastePct,
			"meets_waste_target":       overallWastePct <= opts.MaxWastePercentage,
		},
		"optimization_parameters": map[string]any{
			"stock_lengths":        opts.StockLengths,
			"kerf_width":           opts.KerfWidth,
			"min_offcut_length":    opts.MinOffcutLength,
			"max_waste_percentage": opts.MaxWastePercentage,
		},
		"message": fmt.Sprintf("Optimization completed: %.1f%% waste across %d material groups",
			overallWastePct, len(cuttingList)),
	}, nil
}

// packFirstFitDecreasing places cuts on stock pieces, longest first.
// Each cut consumes its length plus the saw kerf.
func packFirstFitDecreasing(reqs []cutRequirement, stockLengths []float64, kerf float64) []*stockPiece {
	sorted := make([]cutRequirement, len(reqs))
	copy(sorted, reqs)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].length > sorted[j].length })

	longest := stockLengths[0]
	for _, sl := range stockLengths[1:] {
		if sl > longest {
			longest = sl
		}
	}

	var pieces []*stockPiece
	for _, req := range sorted {
		placed := false
		for _, p := range pieces {
			if p.RemainingLength >= req.length+kerf {
				start := p.StockLength - p.RemainingLength
				p.Cuts = append(p.Cuts, stockCut{
					ElementID:     req.elementID,
					Length:        req.length,
					StartPosition: start,
					EndPosition:   start + req.length,
				})
				p.RemainingLength -= req.length + kerf
				placed = true
				break
			}
		}
		if placed {
			continue
		}
		// Shortest stock that fits, or the longest available.
		best := longest
		for _, sl := range stockLengths {
			if sl >= req.length && sl < best {
				best = sl
			}
		}
		pieces = append(pieces, &stockPiece{
			StockID:         len(pieces) + 1,
			StockLength:     best,
			RemainingLength: best - req.length - kerf,
			Cuts: []stockCut{{
				ElementID:     req.elementID,
				Length:        req.length,
				StartPosition: 0,
				EndPosition:   req.length,
			}},
		})
	}
	return pieces
}
