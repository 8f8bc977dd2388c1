package menu

import "errors"

// All failures in this package are deterministic in-memory conditions
// surfaced synchronously; there is nothing to retry. "No navigation
// candidate" is a normal result, never an error.
var (
	// ErrInvalidReference reports an operation on a widget id not
	// owned by the target menu. Indicates a wiring bug in the caller.
	ErrInvalidReference = errors.New("widget not owned by menu")

	// ErrEmptyStack reports a pop with no stacked menu. A caller
	// logic defect, never swallowed.
	ErrEmptyStack = errors.New("pop on empty menu stack")

	// ErrUnknownMenu reports a background menu name that was never
	// registered.
	ErrUnknownMenu = errors.New("unknown menu name")

	// ErrDuplicateMenu reports a background menu name registered
	// twice.
	ErrDuplicateMenu = errors.New("menu name already registered")
)
