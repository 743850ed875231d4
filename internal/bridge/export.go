package bridge

import (
	"context"
	"fmt"

	"github.com/framehaus/cadbridge/internal/cadwork"
)

func (d *Dispatcher) registerExport() {
	d.register("export_to_step", d.handleExportSTEP)
	d.register("export_to_3dm", d.handleExport3DM)
	d.register("export_to_obj", d.handleExportOBJ)
	d.register("export_to_ply", d.handleExportPLY)
	d.register("export_to_stl", d.handleExportSTL)
	d.register("export_to_gltf", d.handleExportGLTF)
	d.register("export_to_x3d", d.handleExportX3D)
	d.register("export_production_data", d.handleExportProductionData)
	d.register("export_to_fbx", d.handleExportFBX)
	d.register("export_to_webgl", d.handleExportWebGL)
	d.register("export_to_sat", d.handleExportSAT)
	d.register("export_to_dstv", d.handleExportDSTV)
	d.register("export_step_with_drillings", d.handleExportSTEPWithDrillings)
	d.register("export_btl_for_nesting", d.handleExportBTLNesting)
}

// exportTarget carries the fields every export shares.
type exportTarget struct {
	ElementIDs       []int  `json:"element_ids"`
	FilePath         string `json:"file_path"`
	ExportAllVisible bool   `json:"export_all_visible"`
}

// resolve validates the target path and picks the element set: an
// explicit id list, or all visible elements when requested or when no
// list was given.
func (d *Dispatcher) resolve(t exportTarget, idsGiven bool) ([]int, error) {
	if t.FilePath == "" {
		return nil, fmt.Errorf("missing required argument: file_path")
	}
	if t.ExportAllVisible || !idsGiven {
		return d.api.Elements.VisibleElementIDs()
	}
	return t.ElementIDs, nil
}

// Unit scale factors relative to millimetres.
var unitScales = map[string]float64{
	"mm":   1.0,
	"cm":   10.0,
	"m":    1000.0,
	"inch": 25.4,
	"ft":   304.8,
}

var stepVersions = map[string]int{
	"AP203": 203,
	"AP214": 214,
	"AP242": 242,
}

func (d *Dispatcher) handleExportSTEP(ctx context.Context, args Args) (map[string]any, error) {
	opts := struct {
		exportTarget `json:",squash"`
		StepVersion  string  `json:"step_version"`
		Units        string  `json:"units"`
		Precision    float64 `json:"precision"`
	}{StepVersion: "AP214", Units: "mm", Precision: 0.01}
	if err := args.Decode(&opts); err != nil {
		return nil, err
	}
	ids, err := d.resolve(opts.exportTarget, args.Has("element_ids"))
	if err != nil {
		return nil, err
	}
	version, ok := stepVersions[opts.StepVersion]
	if !ok {
		version = 214
	}
	scale, ok := unitScales[opts.Units]
	if !ok {
		scale = 1.0
	}
	err = d.api.Files.ExportSTEP(ids, opts.FilePath, cadwork.STEPOptions{
		ScaleFactor: scale,
		Version:     version,
	})
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"file_path":         opts.FilePath,
		"exported_elements": len(ids),
		"step_version":      opts.StepVersion,
		"units":             opts.Units,
		"precision":         opts.Precision,
	}, nil
}

func (d *Dispatcher) handleExport3DM(ctx context.Context, args Args) (map[string]any, error) {
	opts := struct {
		exportTarget     `json:",squash"`
		RhinoVersion     string `json:"rhino_version"`
		IncludeMaterials bool   `json:"include_materials"`
		IncludeLayers    bool   `json:"include_layers"`
		MeshQuality      string `json:"mesh_quality"`
	}{RhinoVersion: "7", IncludeMaterials: true, IncludeLayers: true, MeshQuality: "medium"}
	if err := args.Decode(&opts); err != nil {
		return nil, err
	}
	ids, err := d.resolve(opts.exportTarget, args.Has("element_ids"))
	if err != nil {
		return nil, err
	}
	version := 7
	if _, err := fmt.Sscanf(opts.RhinoVersion, "%d", &version); err != nil {
		version = 7
	}
	if err := d.api.Files.Export3DM(ids, opts.FilePath, version); err != nil {
		return nil, err
	}
	return map[string]any{
		"file_path":         opts.FilePath,
		"exported_elements": len(ids),
		"rhino_version":     opts.RhinoVersion,
		"include_materials": opts.IncludeMaterials,
		"include_layers":    opts.IncludeLayers,
		"mesh_quality":      opts.MeshQuality,
	}, nil
}

func (d *Dispatcher) handleExportOBJ(ctx context.Context, args Args) (map[string]any, error) {
	opts := struct {
		exportTarget     `json:",squash"`
		IncludeMaterials bool   `json:"include_materials"`
		IncludeNormals   bool   `json:"include_normals"`
		IncludeTextures  bool   `json:"include_textures"`
		MeshResolution   string `json:"mesh_resolution"`
	}{IncludeMaterials: true, IncludeNormals: true, MeshResolution: "medium"}
	if err := args.Decode(&opts); err != nil {
		return nil, err
	}
	ids, err := d.resolve(opts.exportTarget, args.Has("element_ids"))
	if err != nil {
		return nil, err
	}
	if err := d.api.Files.ExportOBJ(ids, opts.FilePath); err != nil {
		return nil, err
	}
	return map[string]any{
		"file_path":         opts.FilePath,
		"exported_elements": len(ids),
		"include_materials": opts.IncludeMaterials,
		"include_normals":   opts.IncludeNormals,
		"include_textures":  opts.IncludeTextures,
		"mesh_resolution":   opts.MeshResolution,
	}, nil
}

func (d *Dispatcher) handleExportPLY(ctx context.Context, args Args) (map[string]any, error) {
	opts := struct {
		exportTarget        `json:",squash"`
		PLYFormat           string `json:"ply_format"`
		IncludeColors       bool   `json:"include_colors"`
		IncludeNormals      bool   `json:"include_normals"`
		CoordinatePrecision int    `json:"coordinate_precision"`
	}{PLYFormat: "binary", IncludeColors: true, IncludeNormals: true, CoordinatePrecision: 6}
	if err := args.Decode(&opts); err != nil {
		return nil, err
	}
	ids, err := d.resolve(opts.exportTarget, args.Has("element_ids"))
	if err != nil {
		return nil, err
	}
	if err := d.api.Files.ExportPLY(ids, opts.FilePath, opts.PLYFormat == "binary"); err != nil {
		return nil, err
	}
	return map[string]any{
		"file_path":            opts.FilePath,
		"exported_elements":    len(ids),
		"ply_format":           opts.PLYFormat,
		"include_colors":       opts.IncludeColors,
		"include_normals":      opts.IncludeNormals,
		"coordinate_precision": opts.CoordinatePrecision,
	}, nil
}

func (d *Dispatcher) handleExportSTL(ctx context.Context, args Args) (map[string]any, error) {
	opts := struct {
		exportTarget  `json:",squash"`
		STLFormat     string `json:"stl_format"`
		MeshQuality   string `json:"mesh_quality"`
		Units         string `json:"units"`
		MergeElements bool   `json:"merge_elements"`
	}{STLFormat: "binary", MeshQuality: "medium", Units: "mm", MergeElements: true}
	if err := args.Decode(&opts); err != nil {
		return nil, err
	}
	ids, err := d.resolve(opts.exportTarget, args.Has("element_ids"))
	if err != nil {
		return nil, err
	}
	if err := d.api.Files.ExportSTL(ids, opts.FilePath, opts.STLFormat == "binary"); err != nil {
		return nil, err
	}
	return map[string]any{
		"file_path":         opts.FilePath,
		"exported_elements": len(ids),
		"stl_format":        opts.STLFormat,
		"mesh_quality":      opts.MeshQuality,
		"units":             opts.Units,
		"merge_elements":    opts.MergeElements,
	}, nil
}

func (d *Dispatcher) handleExportGLTF(ctx context.Context, args Args) (map[string]any, error) {
	opts := struct {
		exportTarget      `json:",squash"`
		GLTFFormat        string `json:"gltf_format"`
		IncludeMaterials  bool   `json:"include_materials"`
		IncludeAnimations bool   `json:"include_animations"`
		TextureResolution int    `json:"texture_resolution"`
		CompressionLevel  string `json:"compression_level"`
	}{GLTFFormat: "glb", IncludeMaterials: true, TextureResolution: 1024, CompressionLevel: "medium"}
	if err := args.Decode(&opts); err != nil {
		return nil, err
	}
	ids, err := d.resolve(opts.exportTarget, args.Has("element_ids"))
	if err != nil {
		return nil, err
	}
	if err := d.api.Files.ExportGLTF(ids, opts.FilePath, opts.GLTFFormat == "glb"); err != nil {
		return nil, err
	}
	return map[string]any{
		"file_path":          opts.FilePath,
		"exported_elements":  len(ids),
		"gltf_format":        opts.GLTFFormat,
		"include_materials":  opts.IncludeMaterials,
		"include_animations": opts.IncludeAnimations,
		"texture_resolution": opts.TextureResolution,
		"compression_level":  opts.CompressionLevel,
	}, nil
}

func (d *Dispatcher) handleExportX3D(ctx context.Context, args Args) (map[string]any, error) {
	opts := struct {
		exportTarget      `json:",squash"`
		X3DVersion        string `json:"x3d_version"`
		Encoding          string `json:"encoding"`
		IncludeMaterials  bool   `json:"include_materials"`
		IncludeLighting   bool   `json:"include_lighting"`
		IncludeNavigation bool   `json:"include_navigation"`
		Compression       bool   `json:"compression"`
	}{X3DVersion: "4.0", Encoding: "xml", IncludeMaterials: true, IncludeLighting: true, IncludeNavigation: true}
	if err := args.Decode(&opts); err != nil {
		return nil, err
	}
	ids, err := d.resolve(opts.exportTarget, args.Has("element_ids"))
	if err != nil {
		return nil, err
	}
	if err := d.api.Files.ExportX3D(ids, opts.FilePath); err != nil {
		return nil, err
	}
	return map[string]any{
		"file_path":          opts.FilePath,
		"exported_elements":  len(ids),
		"x3d_version":        opts.X3DVersion,
		"encoding":           opts.Encoding,
		"include_materials":  opts.IncludeMaterials,
		"include_lighting":   opts.IncludeLighting,
		"include_navigation": opts.IncludeNavigation,
		"compression":        opts.Compression,
	}, nil
}

func (d *Dispatcher) handleExportProductionData(ctx context.Context, args Args) (map[string]any, error) {
	opts := struct {
		exportTarget                `json:",squash"`
		DataFormat                  string `json:"data_format"`
		IncludeCuttingList          bool   `json:"include_cutting_list"`
		IncludeAssemblyInstructions bool   `json:"include_assembly_instructions"`
		IncludeHardwareList         bool   `json:"include_hardware_list"`
		IncludeProcessingData       bool   `json:"include_processing_data"`
		GroupByProductionStep       bool   `json:"group_by_production_step"`
	}{
		DataFormat:         "json",
		IncludeCuttingList: true, IncludeAssemblyInstructions: true,
		IncludeHardwareList: true, IncludeProcessingData: true,
		GroupByProductionStep: true,
	}
	if err := args.Decode(&opts); err != nil {
		return nil, err
	}
	ids, err := d.resolve(opts.exportTarget, args.Has("element_ids"))
	if err != nil {
		return nil, err
	}
	if err := d.api.Files.ExportProductionData(opts.FilePath); err != nil {
		return nil, err
	}
	return map[string]any{
		"file_path":                opts.FilePath,
		"exported_elements":        len(ids),
		"data_format":              opts.DataFormat,
		"include_cutting_list":     opts.IncludeCuttingList,
		"group_by_production_step": opts.GroupByProductionStep,
	}, nil
}

func (d *Dispatcher) handleExportFBX(ctx context.Context, args Args) (map[string]any, error) {
	opts := struct {
		exportTarget     `json:",squash"`
		FBXFormat        int    `json:"fbx_format"`
		FBXVersion       string `json:"fbx_version"`
		IncludeMaterials bool   `json:"include_materials"`
		IncludeTextures  bool   `json:"include_textures"`
	}{FBXFormat: 1, FBXVersion: "2020", IncludeMaterials: true, IncludeTextures: true}
	if err := args.Decode(&opts); err != nil {
		return nil, err
	}
	ids, err := d.resolve(opts.exportTarget, args.Has("element_ids"))
	if err != nil {
		return nil, err
	}
	if err := d.api.Files.ExportFBX(ids, opts.FilePath, opts.FBXFormat); err != nil {
		return nil, err
	}
	return map[string]any{
		"file_path":         opts.FilePath,
		"exported_elements": len(ids),
		"fbx_format":        opts.FBXFormat,
		"fbx_version":       opts.FBXVersion,
	}, nil
}

func (d *Dispatcher) handleExportWebGL(ctx context.Context, args Args) (map[string]any, error) {
	opts := struct {
		exportTarget `json:",squash"`
		WebQuality   string `json:"web_quality"`
		Compression  bool   `json:"compression"`
		EmbedViewer  bool   `json:"embed_viewer"`
	}{WebQuality: "medium", Compression: true, EmbedViewer: true}
	if err := args.Decode(&opts); err != nil {
		return nil, err
	}
	ids, err := d.resolve(opts.exportTarget, args.Has("element_ids"))
	if err != nil {
		return nil, err
	}
	if err := d.api.Files.ExportWebGL(ids, opts.FilePath); err != nil {
		return nil, err
	}
	return map[string]any{
		"file_path":         opts.FilePath,
		"exported_elements": len(ids),
		"web_quality":       opts.WebQuality,
		"compression":       opts.Compression,
		"embed_viewer":      opts.EmbedViewer,
	}, nil
}

func (d *Dispatcher) handleExportSAT(ctx context.Context, args Args) (map[string]any, error) {
	opts := struct {
		exportTarget `json:",squash"`
		ScaleFactor  float64 `json:"scale_factor"`
		BinaryFormat bool    `json:"binary_format"`
		SATVersion   int     `json:"sat_version"`
	}{ScaleFactor: 1.0, BinaryFormat: true, SATVersion: 25000}
	if err := args.Decode(&opts); err != nil {
		return nil, err
	}
	ids, err := d.resolve(opts.exportTarget, args.Has("element_ids"))
	if err != nil {
		return nil, err
	}
	if err := d.api.Files.ExportSAT(ids, opts.FilePath, opts.ScaleFactor, opts.BinaryFormat, opts.SATVersion); err != nil {
		return nil, err
	}
	return map[string]any{
		"file_path":         opts.FilePath,
		"exported_elements": len(ids),
		"scale_factor":      opts.ScaleFactor,
		"binary_format":     opts.BinaryFormat,
		"sat_version":       opts.SATVersion,
	}, nil
}

func (d *Dispatcher) handleExportDSTV(ctx context.Context, args Args) (map[string]any, error) {
	opts := struct {
		exportTarget `json:",squash"`
		DSTVVersion  string `json:"dstv_version"`
		Units        string `json:"units"`
		SteelGrade   string `json:"steel_grade"`
	}{DSTVVersion: "NC1", Units: "mm", SteelGrade: "S355"}
	if err := args.Decode(&opts); err != nil {
		return nil, err
	}
	ids, err := d.resolve(opts.exportTarget, args.Has("element_ids"))
	if err != nil {
		return nil, err
	}
	if err := d.api.Files.ExportDSTV(opts.FilePath); err != nil {
		return nil, err
	}
	return map[string]any{
		"file_path":         opts.FilePath,
		"exported_elements": len(ids),
		"dstv_version":      opts.DSTVVersion,
		"units":             opts.Units,
		"steel_grade":       opts.SteelGrade,
	}, nil
}

func (d *Dispatcher) handleExportSTEPWithDrillings(ctx context.Context, args Args) (map[string]any, error) {
	opts := struct {
		exportTarget `json:",squash"`
		DrillingMode string  `json:"drilling_mode"`
		ScaleFactor  float64 `json:"scale_factor"`
		StepVersion  int     `json:"step_version"`
		TextMode     bool    `json:"text_mode"`
	}{DrillingMode: "extrude", ScaleFactor: 1.0, StepVersion: 214}
	if err := args.Decode(&opts); err != nil {
		return nil, err
	}
	ids, err := d.resolve(opts.exportTarget, args.Has("element_ids"))
	if err != nil {
		return nil, err
	}
	err = d.api.Files.ExportSTEP(ids, opts.FilePath, cadwork.STEPOptions{
		ScaleFactor: opts.ScaleFactor,
		Version:     opts.StepVersion,
		TextMode:    opts.TextMode,
		Drillings:   true,
	})
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"file_path":         opts.FilePath,
		"exported_elements": len(ids),
		"drilling_mode":     opts.DrillingMode,
		"scale_factor":      opts.ScaleFactor,
		"step_version":      opts.StepVersion,
	}, nil
}

func (d *Dispatcher) handleExportBTLNesting(ctx context.Context, args Args) (map[string]any, error) {
	opts := struct {
		FilePath           string  `json:"file_path"`
		OptimizationMethod string  `json:"optimization_method"`
		MaterialEfficiency bool    `json:"material_efficiency"`
		KerfWidth          float64 `json:"kerf_width"`
	}{OptimizationMethod: "area", MaterialEfficiency: true, KerfWidth: 3.0}
	if err := args.Decode(&opts); err != nil {
		return nil, err
	}
	if opts.FilePath == "" {
		return nil, fmt.Errorf("missing required argument: file_path")
	}
	if err := d.api.Files.ExportBTLNesting(opts.FilePath); err != nil {
		return nil, err
	}
	return map[string]any{
		"file_path":           opts.FilePath,
		"optimization_method": opts.OptimizationMethod,
		"material_efficiency": opts.MaterialEfficiency,
		"kerf_width":          opts.KerfWidth,
	}, nil
}
