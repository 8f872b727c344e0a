package backend

import (
	"fmt"
	"sort"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/g3d"
)

// Backend name constants.
const (
	// NameWebGPU is the backend that translates state to WebGPU descriptors.
	NameWebGPU = "webgpu"
	// NameGL is the backend that encodes state as GL commands.
	NameGL = "gl"
	// NameNull is the backend that accepts and discards everything.
	NameNull = "null"
)

// Factory creates a new backend instance.
type Factory func() Backend

// Priority order for backend selection (first registered wins).
var registry = gpucontext.NewRegistry[Backend](
	gpucontext.WithPriority(NameWebGPU, NameGL, NameNull),
)

// Register registers a backend factory with the given name.
// This is typically called from init() functions in backend packages.
// If a backend with the same name is already registered, it is replaced.
func Register(name string, factory Factory) {
	registry.Register(name, factory)
}

// Unregister removes a backend from the registry.
// This is useful for testing.
func Unregister(name string) {
	registry.Unregister(name)
}

// IsRegistered reports whether a backend with the given name is registered.
func IsRegistered(name string) bool {
	return registry.Has(name)
}

// Available returns the registered backend names in sorted order.
func Available() []string {
	names := registry.Available()
	sort.Strings(names)
	return names
}

// New returns a new instance of the backend registered as name.
func New(name string) (Backend, error) {
	if !registry.Has(name) {
		return nil, fmt.Errorf("backend: %q: %w", name, ErrUnknownBackend)
	}
	b := registry.Get(name)
	g3d.Logger().Debug("backend: selected", "name", name)
	return b, nil
}

// Best returns a new instance of the highest-priority registered backend.
// The null backend is always registered, so Best never returns nil unless
// it was explicitly unregistered.
func Best() Backend {
	name := registry.BestName()
	if name == "" {
		return nil
	}
	g3d.Logger().Debug("backend: selected", "name", name, "best", true)
	return registry.Get(name)
}
