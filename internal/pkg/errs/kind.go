package errs

// Kind is the externally visible classification of an error.
type Kind string

const (
	KindValidation             Kind = "ValidationError"
	KindUnauthorized           Kind = "Unauthorized"
	KindForbidden              Kind = "Forbidden"
	KindNotFound               Kind = "NotFound"
	KindConflict               Kind = "ConflictError"
	KindInvalidStateTransition Kind = "InvalidStateTransition"
	KindInsufficientStock      Kind = "InsufficientStock"
	KindAssetUnavailable       Kind = "AssetUnavailable"
	KindUnknownRequestType     Kind = "UnknownRequestType"
	KindHandlerFailed          Kind = "HandlerFailed"
	KindInternal               Kind = "InternalError"
)

func (k Kind) String() string {
	return string(k)
}

// Taxonomy sentinels. Domain errors are created with New and tagged with one
// of these through Mark so that KindOf can classify them.
var (
	ErrValidation             = New("validation failed")
	ErrUnauthorized           = New("unauthorized")
	ErrForbidden              = New("forbidden")
	ErrNotFound               = New("entity not found")
	ErrConflict               = New("conflicting state")
	ErrInvalidStateTransition = New("invalid state transition")
	ErrInsufficientStock      = New("insufficient stock")
	ErrAssetUnavailable       = New("asset unavailable")
	ErrUnknownRequestType     = New("unknown request type")
	ErrHandlerFailed          = New("request handler failed")
)

// HandlerFailed must stay first: it wraps causes that carry their own kind.
var kindOrder = []struct {
	sentinel error
	kind     Kind
}{
	{ErrHandlerFailed, KindHandlerFailed},
	{ErrUnknownRequestType, KindUnknownRequestType},
	{ErrInsufficientStock, KindInsufficientStock},
	{ErrAssetUnavailable, KindAssetUnavailable},
	{ErrInvalidStateTransition, KindInvalidStateTransition},
	{ErrConflict, KindConflict},
	{ErrNotFound, KindNotFound},
	{ErrForbidden, KindForbidden},
	{ErrUnauthorized, KindUnauthorized},
	{ErrValidation, KindValidation},
}

func isTaxonomy(err error) bool {
	for _, k := range kindOrder {
		if k.sentinel == err {
			return true
		}
	}
	return false
}

func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	for _, k := range kindOrder {
		if Is(err, k.sentinel) {
			return k.kind
		}
	}
	return KindInternal
}
