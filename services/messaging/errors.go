package messaging

import "errors"

// Sentinel errors returned by the messaging service. Handlers map these
// to HTTP status codes.
var (
	ErrValidation           = errors.New("invalid request")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrNotParticipant       = errors.New("caller is not a conversation participant")
	ErrBlocked              = errors.New("messaging is not available between these users")
)
