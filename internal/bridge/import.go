package bridge

import (
	"context"
	"fmt"
)

func (d *Dispatcher) registerImport() {
	d.register("import_from_step", d.handleImportSTEP)
	d.register("import_from_sat", d.handleImportSAT)
	d.register("import_from_rhino", d.handleImportRhino)
	d.register("import_from_btl", d.handleImportBTL)
}

func (d *Dispatcher) handleImportSTEP(ctx context.Context, args Args) (map[string]any, error) {
	opts := struct {
		FilePath          string  `json:"file_path"`
		ScaleFactor       float64 `json:"scale_factor"`
		HideMessages      bool    `json:"hide_messages"`
		MergeWithExisting bool    `json:"merge_with_existing"`
	}{ScaleFactor: 1.0, MergeWithExisting: true}
	if err := args.Decode(&opts); err != nil {
		return nil, err
	}
	if opts.FilePath == "" {
		return nil, fmt.Errorf("missing required argument: file_path")
	}
	if opts.ScaleFactor <= 0 {
		return nil, fmt.Errorf("scale_factor must be positive, got %v", opts.ScaleFactor)
	}
	ids, err := d.api.Files.ImportSTEP(opts.FilePath, opts.ScaleFactor, opts.HideMessages)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"file_path":           opts.FilePath,
		"imported_elements":   ids,
		"element_count":       len(ids),
		"scale_factor":        opts.ScaleFactor,
		"merge_with_existing": opts.MergeWithExisting,
	}, nil
}

func (d *Dispatcher) handleImportSAT(ctx context.Context, args Args) (map[string]any, error) {
	opts := struct {
		FilePath     string  `json:"file_path"`
		ScaleFactor  float64 `json:"scale_factor"`
		BinaryFormat bool    `json:"binary_format"`
		SilentMode   bool    `json:"silent_mode"`
	}{ScaleFactor: 1.0, BinaryFormat: true}
	if err := args.Decode(&opts); err != nil {
		return nil, err
	}
	if opts.FilePath == "" {
		return nil, fmt.Errorf("missing required argument: file_path")
	}
	if opts.ScaleFactor <= 0 {
		return nil, fmt.Errorf("scale_factor must be positive, got %v", opts.ScaleFactor)
	}
	ids, err := d.api.Files.ImportSAT(opts.FilePath, opts.ScaleFactor, opts.BinaryFormat, opts.SilentMode)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"file_path":         opts.FilePath,
		"imported_elements": ids,
		"element_count":     len(ids),
		"scale_factor":      opts.ScaleFactor,
		"binary_format":     opts.BinaryFormat,
	}, nil
}

func (d *Dispatcher) handleImportRhino(ctx context.Context, args Args) (map[string]any, error) {
	opts := struct {
		FilePath        string `json:"file_path"`
		WithoutDialog   bool   `json:"without_dialog"`
		ImportLayers    bool   `json:"import_layers"`
		ImportMaterials bool   `json:"import_materials"`
	}{ImportLayers: true, ImportMaterials: true}
	if err := args.Decode(&opts); err != nil {
		return nil, err
	}
	if opts.FilePath == "" {
		return nil, fmt.Errorf("missing required argument: file_path")
	}
	ids, err := d.api.Files.ImportRhino(opts.FilePath, opts.WithoutDialog)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"file_path":         opts.FilePath,
		"imported_elements": ids,
		"element_count":     len(ids),
		"import_layers":     opts.ImportLayers,
		"import_materials":  opts.ImportMaterials,
	}, nil
}

func (d *Dispatcher) handleImportBTL(ctx context.Context, args Args) (map[string]any, error) {
	opts := struct {
		FilePath         string `json:"file_path"`
		ImportMode       string `json:"import_mode"`
		MergeDuplicates  bool   `json:"merge_duplicates"`
		ValidateGeometry bool   `json:"validate_geometry"`
	}{ImportMode: "standard", MergeDuplicates: true, ValidateGeometry: true}
	if err := args.Decode(&opts); err != nil {
		return nil, err
	}
	if opts.FilePath == "" {
		return nil, fmt.Errorf("missing required argument: file_path")
	}
	switch opts.ImportMode {
	case "standard":
		if err := d.api.Files.ImportBTL(opts.FilePath); err != nil {
			return nil, err
		}
	case "nesting":
		if err := d.api.Files.ImportBTLNesting(opts.FilePath); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("invalid import_mode %q, must be standard or nesting", opts.ImportMode)
	}
	return map[string]any{
		"file_path":         opts.FilePath,
		"import_mode":       opts.ImportMode,
		"merge_duplicates":  opts.MergeDuplicates,
		"validate_geometry": opts.ValidateGeometry,
	}, nil
}
