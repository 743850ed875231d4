package bridge

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/framehaus/cadbridge/internal/protocol"
	"github.com/framehaus/cadbridge/internal/sim"
)

func newTestDispatcher(t *testing.T) (*Dispatcher, *sim.Model) {
	t.Helper()
	model := sim.NewModel()
	return New(model.API(), nil), model
}

func call(t *testing.T, d *Dispatcher, command string, params map[string]any) protocol.Response {
	t.Helper()
	return d.Dispatch(context.Background(), protocol.Request{Command: command, Params: params})
}

func callOK(t *testing.T, d *Dispatcher, command string, params map[string]any) map[string]any {
	t.Helper()
	resp := call(t, d, command, params)
	require.Truef(t, resp.IsOK(), "%s failed: %s", command, resp.Message)
	return resp.Data
}

func createBeam(t *testing.T, d *Dispatcher) int {
	t.Helper()
	data := callOK(t, d, "create_beam", map[string]any{
		"p1":     []any{0.0, 0.0, 0.0},
		"p2":     []any{3000.0, 0.0, 0.0},
		"width":  120.0,
		"height": 240.0,
	})
	id, ok := data["id"].(int)
	require.True(t, ok, "id missing from create_beam payload")
	return id
}

func TestDispatchUnknownCommand(t *testing.T) {
	d, _ := newTestDispatcher(t)
	resp := call(t, d, "frobnicate", nil)
	require.False(t, resp.IsOK())
	require.Contains(t, resp.Message, "unknown command: frobnicate")
}

func TestDispatchRecoversPanic(t *testing.T) {
	d, _ := newTestDispatcher(t)
	d.register("boom", func(ctx context.Context, args Args) (map[string]any, error) {
		panic("kaboom")
	})
	resp := call(t, d, "boom", nil)
	require.False(t, resp.IsOK())
	require.Contains(t, resp.Message, "internal error")
	require.Contains(t, resp.Message, "kaboom")
}

func TestCommandsAreSortedAndComplete(t *testing.T) {
	d, _ := newTestDispatcher(t)
	commands := d.Commands()
	require.True(t, len(commands) > 80)
	for i := 1; i < len(commands); i++ {
		require.Less(t, commands[i-1], commands[i])
	}
	require.Contains(t, commands, "ping")
	require.Contains(t, commands, "create_beam")
	require.Contains(t, commands, "export_to_step")
	require.Contains(t, commands, "check_production_list_discrepancies")
}

func TestPing(t *testing.T) {
	d, _ := newTestDispatcher(t)
	data := callOK(t, d, "ping", nil)
	require.Equal(t, "pong", data["message"])
}

func TestVersionInfoIsIdempotent(t *testing.T) {
	d, _ := newTestDispatcher(t)
	first := callOK(t, d, "get_cadwork_version_info", nil)
	second := callOK(t, d, "get_cadwork_version_info", nil)
	require.Equal(t, first, second)
	require.NotEmpty(t, first["version_info"])
}

func TestCreateBeamAndQueryGeometry(t *testing.T) {
	d, _ := newTestDispatcher(t)
	id := createBeam(t, d)

	data := callOK(t, d, "get_element_length", map[string]any{"element_id": float64(id)})
	require.InDelta(t, 3000.0, data["length"], 1e-9)

	data = callOK(t, d, "get_element_width", map[string]any{"element_id": float64(id)})
	require.InDelta(t, 120.0, data["width"], 1e-9)

	data = callOK(t, d, "get_element_type", map[string]any{"element_id": float64(id)})
	require.Equal(t, "beam", data["element_type"])
}

func TestCreateBeamRejectsMissingDimensions(t *testing.T) {
	d, _ := newTestDispatcher(t)
	resp := call(t, d, "create_beam", map[string]any{
		"p1": []any{0.0, 0.0, 0.0},
		"p2": []any{3000.0, 0.0, 0.0},
	})
	require.False(t, resp.IsOK())
	require.Contains(t, resp.Message, "create_beam")
}

func TestElementInfo(t *testing.T) {
	d, _ := newTestDispatcher(t)
	id := createBeam(t, d)

	data := callOK(t, d, "get_element_info", map[string]any{"element_id": float64(id)})
	info, ok := data["info"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, id, info["element_id"])
}

func TestDeleteElements(t *testing.T) {
	d, _ := newTestDispatcher(t)
	id := createBeam(t, d)

	data := callOK(t, d, "delete_elements", map[string]any{"element_ids": []any{float64(id)}})
	require.Equal(t, 1, data["deleted_count"])

	data = callOK(t, d, "get_all_element_ids", nil)
	require.Empty(t, data["element_ids"])

	resp := call(t, d, "delete_elements", map[string]any{"element_ids": []any{float64(id)}})
	require.False(t, resp.IsOK())
}

func TestCopyAndMove(t *testing.T) {
	d, _ := newTestDispatcher(t)
	id := createBeam(t, d)

	data := callOK(t, d, "copy_elements", map[string]any{
		"element_ids": []any{float64(id)},
		"copy_vector": []any{0.0, 500.0, 0.0},
	})
	require.Equal(t, 1, data["copied_count"])

	data = callOK(t, d, "move_element", map[string]any{
		"element_ids": []any{float64(id)},
		"move_vector": []any{0.0, 0.0, 100.0},
	})
	require.Equal(t, 1, data["moved_count"])
}

func TestTotalVolumeAndWeight(t *testing.T) {
	d, _ := newTestDispatcher(t)
	a := createBeam(t, d)
	b := createBeam(t, d)

	data := callOK(t, d, "calculate_total_volume", map[string]any{
		"element_ids": []any{float64(a), float64(b)},
	})
	require.InDelta(t, 2*120*240*3000, data["total_volume_mm3"], 1e-3)
	require.Equal(t, 2, data["processed_count"])

	data = callOK(t, d, "calculate_total_weight", map[string]any{
		"element_ids": []any{float64(a), float64(b)},
	})
	require.Equal(t, 2, data["processed_count"])
}

func TestVisualizationCommands(t *testing.T) {
	d, _ := newTestDispatcher(t)
	id := createBeam(t, d)

	callOK(t, d, "set_color", map[string]any{
		"element_ids": []any{float64(id)},
		"color_id":    3.0,
	})
	data := callOK(t, d, "get_color", map[string]any{"element_id": float64(id)})
	require.Equal(t, 3, data["color_id"])
	require.Equal(t, "Red", data["color_name"])

	resp := call(t, d, "set_color", map[string]any{
		"element_ids": []any{float64(id)},
		"color_id":    0.0,
	})
	require.False(t, resp.IsOK())

	callOK(t, d, "hide_all_elements", nil)
	data = callOK(t, d, "get_visible_element_count", nil)
	require.Equal(t, 0, data["visible_count"])
	require.Equal(t, 1, data["total_count"])

	callOK(t, d, "show_all_elements", nil)
	data = callOK(t, d, "get_visible_element_count", nil)
	require.Equal(t, 1, data["visible_count"])
}

func TestExportSTEP(t *testing.T) {
	d, _ := newTestDispatcher(t)
	id := createBeam(t, d)
	path := filepath.Join(t.TempDir(), "model.step")

	data := callOK(t, d, "export_to_step", map[string]any{
		"element_ids": []any{float64(id)},
		"file_path":   path,
	})
	require.Equal(t, path, data["file_path"])
	require.Equal(t, 1, data["exported_elements"])
	require.Equal(t, "AP214", data["step_version"])
}

func TestExportDefaultsToVisibleElements(t *testing.T) {
	d, _ := newTestDispatcher(t)
	a := createBeam(t, d)
	createBeam(t, d)
	callOK(t, d, "set_visibility", map[string]any{
		"element_ids": []any{float64(a)},
		"visible":     false,
	})
	path := filepath.Join(t.TempDir(), "model.obj")

	data := callOK(t, d, "export_to_obj", map[string]any{"file_path": path})
	require.Equal(t, 1, data["exported_elements"])
}

func TestExportRequiresFilePath(t *testing.T) {
	d, _ := newTestDispatcher(t)
	resp := call(t, d, "export_to_stl", nil)
	require.False(t, resp.IsOK())
	require.Contains(t, resp.Message, "file_path")
}

func TestImportSTEP(t *testing.T) {
	d, model := newTestDispatcher(t)
	path := filepath.Join(t.TempDir(), "house.step")
	require.NoError(t, os.WriteFile(path, []byte("ISO-10303-21;"), 0o644))

	data := callOK(t, d, "import_from_step", map[string]any{"file_path": path})
	require.Equal(t, 1, data["element_count"])

	all, err := model.AllElementIDs()
	require.NoError(t, err)
	require.Len(t, all, 1)

	resp := call(t, d, "import_from_step", map[string]any{
		"file_path":    path,
		"scale_factor": -1.0,
	})
	require.False(t, resp.IsOK())
}

func TestCreateElementList(t *testing.T) {
	d, model := newTestDispatcher(t)
	id := createBeam(t, d)
	require.NoError(t, model.SetAttributes(id, "Pfette", "Dach", "", "", "Fichte"))

	data := callOK(t, d, "create_element_list", nil)
	require.Equal(t, 1, data["total_count"])
	list, ok := data["element_list"].([]map[string]any)
	require.True(t, ok)
	require.Equal(t, "Pfette", list[0]["name"])
	require.Equal(t, "Fichte", list[0]["material"])
}

func TestGenerateMaterialList(t *testing.T) {
	d, model := newTestDispatcher(t)
	a := createBeam(t, d)
	b := createBeam(t, d)
	require.NoError(t, model.SetAttributes(a, "", "", "", "", "Fichte"))
	require.NoError(t, model.SetAttributes(b, "", "", "", "", "Fichte"))

	data := callOK(t, d, "generate_material_list", nil)
	summary, ok := data["summary"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, 1, summary["total_materials"])
	require.Equal(t, 2, summary["total_elements"])

	resp := call(t, d, "generate_material_list", map[string]any{"waste_factor": 2.0})
	require.False(t, resp.IsOK())
}

func TestOptimizeCuttingList(t *testing.T) {
	d, _ := newTestDispatcher(t)
	createBeam(t, d)
	createBeam(t, d)

	data := callOK(t, d, "optimize_cutting_list", nil)
	require.Equal(t, 2, data["total_elements_processed"])
	require.Equal(t, 1, data["total_material_groups"])

	analysis, ok := data["waste_analysis"].(map[string]any)
	require.True(t, ok)
	require.Greater(t, analysis["total_stock_used"], 0.0)

	resp := call(t, d, "optimize_cutting_list", map[string]any{
		"optimization_algorithm": "quantum",
	})
	require.False(t, resp.IsOK())
}

func TestOptimizeCuttingListEmptyModel(t *testing.T) {
	d, _ := newTestDispatcher(t)

	data := callOK(t, d, "optimize_cutting_list", nil)
	require.Equal(t, "No elements found for optimization", data["message"])

	list, ok := data["optimized_cutting_list"].([]any)
	require.True(t, ok)
	require.Empty(t, list)
}

func TestRoofCommands(t *testing.T) {
	d, _ := newTestDispatcher(t)
	id := createBeam(t, d)

	data := callOK(t, d, "get_roof_surfaces", map[string]any{
		"element_ids": []any{float64(id)},
	})
	require.Equal(t, 1, data["analyzed_elements"])

	data = callOK(t, d, "calculate_roof_area", map[string]any{
		"roof_element_ids": []any{float64(id)},
	})
	calc, ok := data["detailed_calculations"].(map[string]any)
	require.True(t, ok)
	require.InDelta(t, 240*3000/1e6, calc["total_sloped_area_m2"], 1e-9)

	resp := call(t, d, "calculate_roof_area", map[string]any{"roof_element_ids": []any{}})
	require.False(t, resp.IsOK())
}

func TestWallSections(t *testing.T) {
	d, _ := newTestDispatcher(t)
	id := createBeam(t, d)

	data := callOK(t, d, "add_wall_section_x", map[string]any{"wall_id": float64(id)})
	require.Equal(t, "x", data["section_direction"])
	require.NotZero(t, data["section_id"])

	params, ok := data["section_params"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "center", params["position"])

	data = callOK(t, d, "add_wall_section_y", map[string]any{
		"wall_id":        float64(id),
		"section_params": map[string]any{"position": "start"},
	})
	params, ok = data["section_params"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "start", params["position"])
}

func TestCheckProductionList(t *testing.T) {
	d, _ := newTestDispatcher(t)

	data := callOK(t, d, "check_production_list_discrepancies", map[string]any{
		"production_list_id": 9.0,
	})
	analysis, ok := data["detailed_analysis"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "critical", analysis["overall_status"])

	data = callOK(t, d, "check_production_list_discrepancies", map[string]any{
		"production_list_id": 7.0,
	})
	analysis, ok = data["detailed_analysis"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "ok", analysis["overall_status"])
}

func TestUserAttributeCommands(t *testing.T) {
	d, model := newTestDispatcher(t)
	id := createBeam(t, d)
	model.DefineUserAttribute(1, "Charge")
	require.NoError(t, model.SetUserAttribute(id, 1, "A-17"))

	data := callOK(t, d, "list_defined_user_attributes", nil)
	defined, ok := data["defined_attributes"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "Charge", defined["1"])

	data = callOK(t, d, "get_user_attributes", map[string]any{
		"element_ids":       []any{float64(id)},
		"attribute_numbers": []any{1.0},
	})
	require.NotEmpty(t, data["user_attributes_by_id"])
}
