package backend

import "sync"

// Recorder is a backend that keeps every submission it receives, in order.
// It is meant for tests and tooling that inspect what would reach an
// engine. Recorder is not registered; wrap another backend with Tee to
// record alongside it.
//
// Recorder is safe for concurrent use.
type Recorder struct {
	mu          sync.Mutex
	name        string
	submissions []Submission
}

// NewRecorder creates a recorder that reports name from Name.
func NewRecorder(name string) *Recorder {
	if name == "" {
		name = "recorder"
	}
	return &Recorder{name: name}
}

// Name implements Backend.
func (r *Recorder) Name() string { return r.name }

// Apply implements Backend.
func (r *Recorder) Apply(s Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.submissions = append(r.submissions, s)
	return nil
}

// Submissions returns a copy of everything recorded so far.
func (r *Recorder) Submissions() []Submission {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Submission, len(r.submissions))
	for i, s := range r.submissions {
		out[i] = s.Clone()
	}
	return out
}

// Len returns the number of recorded submissions.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.submissions)
}

// Reset discards all recorded submissions.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.submissions = nil
}

// Tee returns a backend that applies every submission to b and then, on
// success, records it in r. The returned backend reports b's name.
func (r *Recorder) Tee(b Backend) Backend {
	return &tee{next: b, rec: r}
}

type tee struct {
	next Backend
	rec  *Recorder
}

func (t *tee) Name() string { return t.next.Name() }

func (t *tee) Apply(s Submission) error {
	if err := t.next.Apply(s.Clone()); err != nil {
		return err
	}
	return t.rec.Apply(s)
}
