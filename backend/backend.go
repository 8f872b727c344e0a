package backend

import (
	"errors"

	"github.com/gogpu/g3d"
	"github.com/gogpu/g3d/pipeline"
)

// Common backend errors.
var (
	// ErrUnknownBackend is returned by New for names with no registered backend.
	ErrUnknownBackend = errors.New("backend: unknown backend")

	// ErrNilBackend is returned by Submit when no backend is given.
	ErrNilBackend = errors.New("backend: nil backend")
)

// Backend is the interface for engine backends.
//
// Backends must be registered via Register and are selected via New or
// Best.
type Backend interface {
	// Name returns the backend identifier (e.g., "gl", "webgpu").
	Name() string

	// Apply makes s the current state of the backend. The submission is
	// owned by the backend once Apply is called.
	Apply(s Submission) error
}

// Submission is one unit of work for a backend: the full render state and
// the uniform values that go with it.
type Submission struct {
	State    pipeline.RenderStateDescriptor
	Uniforms []Uniform
}

// Clone returns a deep copy of s.
func (s Submission) Clone() Submission {
	c := Submission{State: s.State}
	if s.Uniforms != nil {
		c.Uniforms = make([]Uniform, len(s.Uniforms))
		for i, u := range s.Uniforms {
			c.Uniforms[i] = u.Clone()
		}
	}
	return c
}

// Submit copies s and applies the copy to b.
func Submit(b Backend, s Submission) error {
	if b == nil {
		return ErrNilBackend
	}
	log := g3d.Logger()
	log.Debug("backend: submit", "backend", b.Name(), "uniforms", len(s.Uniforms), "state", s.State)
	if err := b.Apply(s.Clone()); err != nil {
		log.Warn("backend: apply failed", "backend", b.Name(), "err", err)
		return err
	}
	return nil
}
