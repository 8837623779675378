// Package events defines the notification sink the core reports
// state changes to. The core never chooses where events go; the
// embedding application injects a Reporter and owns its destination.
package events

// Reporter receives structured notifications about repository
// activity. Implementations must be cheap and must never fail the
// operation that produced the event.
type Reporter interface {
	// EntityCreated fires after a successful insert
	EntityCreated(entity string, id int)

	// EntityUpdated fires after a successful update
	EntityUpdated(entity string, id int)

	// EntityDeleted fires after a successful delete
	EntityDeleted(entity string, id int)

	// ValidationRejected fires when input is rejected before any write
	ValidationRejected(entity, field, reason string)

	// StorageFault fires when the underlying store fails an operation
	StorageFault(op string, err error)
}

// Compile-time verification that implementations satisfy Reporter
var (
	_ Reporter = (*LogReporter)(nil)
	_ Reporter = NopReporter{}
)
