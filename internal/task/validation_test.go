package task

import (
	"errors"
	"strings"
	"testing"

	"task-manager/internal/model"
)

func strPtr(s string) *string { return &s }

func TestValidate_DefaultsStatus(t *testing.T) {
	got, err := Validate(Input{Title: "Buy milk"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != model.StatusTodo {
		t.Fatalf("status=%q want TODO", got.Status)
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		in    Input
		field string
	}{
		{"empty title", Input{Title: ""}, "title"},
		{"blank title", Input{Title: "  \t "}, "title"},
		{"long title", Input{Title: strings.Repeat("a", MaxTitleLen+1)}, "title"},
		{"long description", Input{Title: "ok", Description: strPtr(strings.Repeat("d", MaxDescriptionLen+1))}, "description"},
		{"unknown status", Input{Title: "ok", Status: "ARCHIVED"}, "status"},
		{"lowercase status", Input{Title: "ok", Status: "done"}, "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate(tt.in)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if _, ok := verr.Fields[tt.field]; !ok {
				t.Fatalf("expected field %q in %v", tt.field, verr.Fields)
			}
		})
	}
}

func TestValidate_LimitsCountCharacters(t *testing.T) {
	// 100 multi-byte runes is within the limit even though it is 200+ bytes.
	title := strings.Repeat("é", MaxTitleLen)
	desc := strings.Repeat("ż", MaxDescriptionLen)
	if _, err := Validate(Input{Title: title, Description: &desc}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_ReportsAllFields(t *testing.T) {
	_, err := Validate(Input{Title: " ", Status: "nope", Description: strPtr(strings.Repeat("x", 501))})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if len(verr.Fields) != 3 {
		t.Fatalf("fields=%v", verr.Fields)
	}
	if msg := err.Error(); !strings.HasPrefix(msg, "validation failed: description:") {
		t.Fatalf("message=%q", msg)
	}
}
