package forum

import "errors"

// Failure taxonomy of the voting and ranking core. Handlers match these with
// errors.Is and translate them to HTTP statuses; none is fatal.
var (
	ErrNotFound            = errors.New("target not found")
	ErrInvalidKind         = errors.New("invalid target kind")
	ErrInvalidVoteValue    = errors.New("vote value must be +1 or -1")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrConstraintViolation = errors.New("constraint violation")
)
