package glstate

import (
	"sync"

	"github.com/gogpu/g3d"
	"github.com/gogpu/g3d/backend"
	"github.com/gogpu/g3d/pipeline"
)

// init registers the GL backend on package import.
func init() {
	backend.Register(backend.NameGL, func() backend.Backend {
		return New()
	})
}

// Backend turns submissions into GL command lists. The first submission is
// encoded in full; later ones only carry the difference from the state
// applied before them. Commands accumulate until Drain is called.
//
// Backend is safe for concurrent use.
type Backend struct {
	mu      sync.Mutex
	current pipeline.RenderStateDescriptor
	valid   bool
	pending []Command
}

// New creates a GL backend with no known state.
func New() *Backend {
	return &Backend{}
}

// Name returns "gl".
func (b *Backend) Name() string {
	return backend.NameGL
}

// Apply validates s and queues the commands that establish it, followed
// by one Uniform command per uniform.
func (b *Backend) Apply(s backend.Submission) error {
	if err := Validate(s.State); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	n := len(b.pending)
	full := !b.valid
	if full {
		b.pending = appendState(b.pending, nil, s.State)
	} else {
		b.pending = appendState(b.pending, &b.current, s.State)
	}
	for _, u := range s.Uniforms {
		b.pending = append(b.pending, Uniform{Name: u.Name, Data: u.Data})
	}
	b.current = s.State
	b.valid = true

	g3d.Logger().Debug("glstate: applied", "commands", len(b.pending)-n, "full", full)
	return nil
}

// State returns the last applied descriptor and whether there is one.
func (b *Backend) State() (pipeline.RenderStateDescriptor, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current, b.valid
}

// Drain returns the queued commands and empties the queue.
func (b *Backend) Drain() []Command {
	b.mu.Lock()
	defer b.mu.Unlock()
	cmds := b.pending
	b.pending = nil
	return cmds
}

// Invalidate forgets the applied state, so the next Apply encodes the
// full descriptor again. Use it after foreign code touched the GL context.
func (b *Backend) Invalidate() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.valid = false
}
