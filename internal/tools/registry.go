// Package tools exposes the domain operations the model may invoke.
package tools

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/pitstopd/pitstop/internal/adapter/llm"
)

// Args holds the named arguments of one operation request.
type Args map[string]any

// String returns the named argument as a trimmed string. Missing values
// and the literal "null" (which models occasionally emit for optional
// parameters) come back empty.
func (a Args) String(key string) string {
	v, ok := a[key]
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return fmt.Sprintf("%v", v)
	}
	s = strings.TrimSpace(s)
	if s == "null" || s == "None" {
		return ""
	}
	return s
}

// ExecutorFunc runs one domain operation and returns a human-readable
// result. Domain failures are reported in the result string; a non-nil
// error means the operation itself is broken.
type ExecutorFunc func(ctx context.Context, args Args) (string, error)

type registration struct {
	spec llm.ToolSpec
	exec ExecutorFunc
}

// Registry stores operation executors keyed by name.
type Registry struct {
	mu        sync.RWMutex
	order     []string
	executors map[string]registration
}

// NewRegistry creates an empty operation registry.
func NewRegistry() *Registry {
	return &Registry{
		executors: make(map[string]registration),
	}
}

// Register adds a new executor under its spec's name.
func (r *Registry) Register(spec llm.ToolSpec, exec ExecutorFunc) error {
	if spec.Name == "" {
		return fmt.Errorf("operation name is required")
	}
	if exec == nil {
		return fmt.Errorf("executor is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.executors[spec.Name]; exists {
		return fmt.Errorf("executor already registered for %s", spec.Name)
	}
	r.order = append(r.order, spec.Name)
	r.executors[spec.Name] = registration{spec: spec, exec: exec}
	return nil
}

// MustRegister adds an executor or panics.
func (r *Registry) MustRegister(spec llm.ToolSpec, exec ExecutorFunc) {
	if err := r.Register(spec, exec); err != nil {
		panic(err)
	}
}

// Execute runs the executor for the operation name.
func (r *Registry) Execute(ctx context.Context, name string, args Args) (string, error) {
	if name == "" {
		return "", fmt.Errorf("operation name is required")
	}
	r.mu.RLock()
	reg, ok := r.executors[name]
	r.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("no executor registered for %s", name)
	}
	return reg.exec(ctx, args)
}

// Specs returns the operation specs in registration order, for binding to
// the model.
func (r *Registry) Specs() []llm.ToolSpec {
	r.mu.RLock()
	defer r.mu.RUnlock()
	specs := make([]llm.ToolSpec, 0, len(r.order))
	for _, name := range r.order {
		specs = append(specs, r.executors[name].spec)
	}
	return specs
}
