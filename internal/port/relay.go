package port

import "jdoc/internal/domain"

// Relay delivers bot responses to a chat surface. Implementations are
// responsible for fragmenting text that exceeds the transport's message
// limit, honoring the response's split strategy.
type Relay interface {
	Send(resp domain.ChatResponse) error
}
