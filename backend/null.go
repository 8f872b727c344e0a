package backend

import "sync"

func init() {
	Register(NameNull, func() Backend { return NewNull() })
}

// Null is a backend that accepts every submission and keeps only the most
// recent one. It is always registered and is the fallback for Best.
type Null struct {
	mu      sync.Mutex
	last    Submission
	applied int
}

// NewNull creates a null backend.
func NewNull() *Null { return &Null{} }

// Name returns "null".
func (*Null) Name() string { return NameNull }

// Apply implements Backend.
func (n *Null) Apply(s Submission) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.last = s
	n.applied++
	return nil
}

// Last returns the most recent submission and whether there was one.
func (n *Null) Last() (Submission, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.last.Clone(), n.applied > 0
}

// Applied returns the number of submissions accepted so far.
func (n *Null) Applied() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.applied
}
