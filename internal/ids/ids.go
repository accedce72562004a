package ids

import "github.com/google/uuid"

// NewRequestID returns a random id for correlating a request across logs.
func NewRequestID() string {
	return uuid.NewString()
}
