package task

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"task-manager/internal/model"
)

const (
	MaxTitleLen       = 100
	MaxDescriptionLen = 500
)

// Input is the caller-supplied part of a task. It never carries an id.
type Input struct {
	Title       string
	Description *string
	Status      model.Status
	DueDate     *model.Date
}

// Validate checks the field constraints and returns the input with an empty
// status defaulted to TODO.
func Validate(in Input) (Input, error) {
	fields := make(map[string]string)

	if strings.TrimSpace(in.Title) == "" {
		fields["title"] = "must not be blank"
	} else if utf8.RuneCountInString(in.Title) > MaxTitleLen {
		fields["title"] = fmt.Sprintf("must be at most %d characters", MaxTitleLen)
	}

	if in.Description != nil && utf8.RuneCountInString(*in.Description) > MaxDescriptionLen {
		fields["description"] = fmt.Sprintf("must be at most %d characters", MaxDescriptionLen)
	}

	if in.Status == "" {
		in.Status = model.StatusTodo
	} else if !in.Status.Valid() {
		fields["status"] = fmt.Sprintf("must be one of %v", model.Statuses)
	}

	if len(fields) > 0 {
		return Input{}, &ValidationError{Fields: fields}
	}
	return in, nil
}
