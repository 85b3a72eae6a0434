package session

import "fmt"

type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("prompt not found: %s", e.ID)
}

// TransitionError reports an intent that is invalid in the current mode
// (e.g. Save while not editing). The session state is left untouched.
type TransitionError struct {
	Op   string
	Mode Mode
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s while %s", e.Op, modeName(e.Mode))
}

func modeName(m Mode) string {
	switch m {
	case Closed:
		return "closed"
	case Viewing:
		return "viewing"
	case Editing:
		return "editing"
	default:
		return "unknown"
	}
}
