package bridge

import (
	"context"
	"path/filepath"
	"strings"
)

func (d *Dispatcher) registerUtility() {
	d.register("ping", d.handlePing)
	d.register("get_version_info", d.handleVersionInfo)
	d.register("get_cadwork_version_info", d.handleVersionInfo)
	d.register("get_model_name", d.handleModelName)
	d.register("get_3d_file_path", d.handleFilePath)
	d.register("get_project_data", d.handleProjectData)
	d.register("print_error", d.handlePrintError)
	d.register("print_warning", d.handlePrintWarning)
	d.register("disable_auto_display_refresh", d.handleDisableAutoRefresh)
	d.register("enable_auto_display_refresh", d.handleEnableAutoRefresh)
}

func (d *Dispatcher) handlePing(ctx context.Context, args Args) (map[string]any, error) {
	return map[string]any{"message": "pong"}, nil
}

func (d *Dispatcher) handleVersionInfo(ctx context.Context, args Args) (map[string]any, error) {
	info, err := d.api.Utility.VersionInfo()
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"version_info": map[string]any{
			"version":     info.Version,
			"build":       info.Build,
			"api_version": info.APIVersion,
		},
	}, nil
}

func (d *Dispatcher) handleModelName(ctx context.Context, args Args) (map[string]any, error) {
	path, err := d.api.Utility.FilePath()
	if err != nil {
		return nil, err
	}
	name := "Unknown"
	if path != "" {
		base := filepath.Base(path)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return map[string]any{"model_name": name}, nil
}

func (d *Dispatcher) handleFilePath(ctx context.Context, args Args) (map[string]any, error) {
	path, err := d.api.Utility.FilePath()
	if err != nil {
		return nil, err
	}
	return map[string]any{"file_path": path}, nil
}

func (d *Dispatcher) handleProjectData(ctx context.Context, args Args) (map[string]any, error) {
	data, err := d.api.Utility.ProjectData()
	if err != nil {
		return nil, err
	}
	return map[string]any{"project_data": data}, nil
}

func (d *Dispatcher) handlePrintError(ctx context.Context, args Args) (map[string]any, error) {
	message, err := args.String("message")
	if err != nil {
		return nil, err
	}
	message = strings.TrimSpace(message)
	if err := d.api.Utility.PrintError(message); err != nil {
		return nil, err
	}
	return map[string]any{"displayed": message}, nil
}

func (d *Dispatcher) handlePrintWarning(ctx context.Context, args Args) (map[string]any, error) {
	message, err := args.String("message")
	if err != nil {
		return nil, err
	}
	message = strings.TrimSpace(message)
	if err := d.api.Utility.PrintWarning(message); err != nil {
		return nil, err
	}
	return map[string]any{"displayed": message}, nil
}

func (d *Dispatcher) handleDisableAutoRefresh(ctx context.Context, args Args) (map[string]any, error) {
	if err := d.api.Utility.DisableAutoDisplayRefresh(); err != nil {
		return nil, err
	}
	return map[string]any{"auto_refresh": false}, nil
}

func (d *Dispatcher) handleEnableAutoRefresh(ctx context.Context, args Args) (map[string]any, error) {
	if err := d.api.Utility.EnableAutoDisplayRefresh(); err != nil {
		return nil, err
	}
	return map[string]any{"auto_refresh": true}, nil
}
