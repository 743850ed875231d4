// Package bridge implements the command dispatch core of the Cadwork
// plug-in: an immutable name-to-handler table, the uniform result
// envelope, and the serial TCP server the MCP relay talks to.
package bridge

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/framehaus/cadbridge/internal/cadwork"
	"github.com/framehaus/cadbridge/internal/protocol"
)

// HandlerFunc implements one command: validate args, call the native
// API, return the ok payload. Errors become error envelopes.
type HandlerFunc func(ctx context.Context, args Args) (map[string]any, error)

// Dispatcher maps command names to handlers. The table is built once in
// New and never mutated afterwards, so a Dispatcher is safe to share.
type Dispatcher struct {
	api      cadwork.API
	handlers map[string]HandlerFunc
	log      *slog.Logger
}

// New builds the dispatcher with every supported command registered.
func New(api cadwork.API, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	d := &Dispatcher{
		api:      api,
		handlers: make(map[string]HandlerFunc),
		log:      logger,
	}
	d.registerElement()
	d.registerGeometry()
	d.registerAttribute()
	d.registerUtility()
	d.registerVisualization()
	d.registerExport()
	d.registerImport()
	d.registerList()
	d.registerOptimization()
	d.registerRoof()
	d.registerShopDrawing()
	d.registerMachine()
	return d
}

func (d *Dispatcher) register(name string, h HandlerFunc) {
	if _, exists := d.handlers[name]; exists {
		panic(fmt.Sprintf("duplicate command registration: %s", name))
	}
	d.handlers[name] = h
}

// Commands returns the registered command names in sorted order.
func (d *Dispatcher) Commands() []string {
	names := make([]string, 0, len(d.handlers))
	for name := range d.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch runs exactly one handler for the request and normalizes the
// outcome into a response envelope. Unknown commands and handler
// failures (including panics) never escape as errors.
func (d *Dispatcher) Dispatch(ctx context.Context, req protocol.Request) (resp protocol.Response) {
	handler, ok := d.handlers[req.Command]
	if !ok {
		return protocol.Errorf("unknown command: %s", req.Command)
	}

	defer func() {
		if r := recover(); r != nil {
			d.log.Error("handler panic", "command", req.Command, "panic", r)
			resp = protocol.Errorf("%s: internal error: %v", req.Command, r)
		}
	}()

	data, err := handler(ctx, Args(req.Params))
	if err != nil {
		return protocol.Errorf("%s: %v", req.Command, err)
	}
	return protocol.OK(data)
}
