package capability

// Kind classifies why a capability failed.
type Kind int

const (
	KindIO Kind = iota
	KindAlreadyExists
	KindExternalCommand
	KindManifestEdit
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io error"
	case KindAlreadyExists:
		return "already exists"
	case KindExternalCommand:
		return "external command error"
	case KindManifestEdit:
		return "manifest edit error"
	default:
		return "unknown"
	}
}

// Error is returned by every capability. Msg is shown to the user as is;
// Err keeps the underlying fault.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so the Err* values below work
// with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Msg == "" && t.Err == nil && t.Kind == e.Kind
}

var (
	ErrIO              = &Error{Kind: KindIO}
	ErrAlreadyExists   = &Error{Kind: KindAlreadyExists}
	ErrExternalCommand = &Error{Kind: KindExternalCommand}
	ErrManifestEdit    = &Error{Kind: KindManifestEdit}
)

// NewError builds an *Error of the given kind.
func NewError(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}
