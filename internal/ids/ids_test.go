package ids

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewRequestID_UniqueUUIDs(t *testing.T) {
	a, b := NewRequestID(), NewRequestID()
	if a == b {
		t.Fatalf("expected distinct ids, got %s twice", a)
	}
	if _, err := uuid.Parse(a); err != nil {
		t.Fatalf("not a uuid: %q: %v", a, err)
	}
}
