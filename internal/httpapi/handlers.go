package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"task-manager/internal/model"
	"task-manager/internal/task"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// taskRequest is the create/update body. Clients often send back a task they
// fetched, so id is accepted and ignored.
type taskRequest struct {
	ID          *int64       `json:"id,omitempty"`
	Title       string       `json:"title"`
	Description *string      `json:"description"`
	Status      model.Status `json:"status"`
	DueDate     *model.Date  `json:"dueDate"`
}

func (req taskRequest) input() task.Input {
	return task.Input{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		DueDate:     req.DueDate,
	}
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.service.List(r.Context())
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	id, ok := taskID(w, r)
	if !ok {
		return
	}

	found, err := s.service.Get(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, found)
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	created, err := s.service.Create(r.Context(), req.input())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := taskID(w, r)
	if !ok {
		return
	}

	var req taskRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	updated, err := s.service.Update(r.Context(), id, req.input())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := taskID(w, r)
	if !ok {
		return
	}

	if err := s.service.Delete(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func taskID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "task id must be an integer")
		return 0, false
	}
	return id, true
}

func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *task.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":  task.ErrValidation.Error(),
			"fields": verr.Fields,
		})
	case errors.Is(err, model.ErrNotFound):
		writeError(w, http.StatusNotFound, "task not found")
	default:
		s.internalError(w, r, err)
	}
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Printf("rid=%s method=%s path=%s error: %v",
		RequestIDFromContext(r.Context()), r.Method, r.URL.Path, err)
	writeError(w, http.StatusInternalServerError, "internal error")
}
