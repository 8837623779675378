package events

import "fmt"

// Recorder is a Reporter that remembers every notification it
// receives. It backs service tests; nothing in the application wires
// it up.
type Recorder struct {
	Entries []string
}

var _ Reporter = (*Recorder)(nil)

func (r *Recorder) EntityCreated(entity string, id int) {
	r.record("created %s %d", entity, id)
}

func (r *Recorder) EntityUpdated(entity string, id int) {
	r.record("updated %s %d", entity, id)
}

func (r *Recorder) EntityDeleted(entity string, id int) {
	r.record("deleted %s %d", entity, id)
}

func (r *Recorder) ValidationRejected(entity, field, reason string) {
	r.record("rejected %s %s: %s", entity, field, reason)
}

func (r *Recorder) StorageFault(op string, err error) {
	r.record("fault %s: %v", op, err)
}

func (r *Recorder) record(format string, args ...any) {
	r.Entries = append(r.Entries, fmt.Sprintf(format, args...))
}
