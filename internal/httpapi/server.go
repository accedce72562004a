package httpapi

import (
	"context"
	"io"
	"log"
	"net/http"
	"time"

	"task-manager/internal/model"
	"task-manager/internal/observability/jsonlog"
	"task-manager/internal/task"
)

type TaskService interface {
	List(ctx context.Context) ([]model.Task, error)
	Get(ctx context.Context, id int64) (model.Task, error)
	Create(ctx context.Context, in task.Input) (model.Task, error)
	Update(ctx context.Context, id int64, in task.Input) (model.Task, error)
	Delete(ctx context.Context, id int64) error
}

// Logger receives unexpected errors from handlers. Both *log.Logger and
// *jsonlog.Logger satisfy it.
type Logger interface {
	Printf(format string, v ...any)
}

type Server struct {
	service TaskService
	logger  Logger
	mux     *http.ServeMux
}

func NewServer(service TaskService, ready Pinger, logger Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	srv := &Server{
		service: service,
		logger:  logger,
		mux:     http.NewServeMux(),
	}

	srv.mux.HandleFunc("GET /healthz", srv.handleHealth)
	srv.mux.HandleFunc("GET /readyz", ReadyzHandler(ready))

	srv.mux.HandleFunc("GET /api/tasks", srv.handleListTasks)
	srv.mux.HandleFunc("POST /api/tasks", srv.handleCreateTask)
	srv.mux.HandleFunc("GET /api/tasks/{id}", srv.handleGetTask)
	srv.mux.HandleFunc("PUT /api/tasks/{id}", srv.handleUpdateTask)
	srv.mux.HandleFunc("DELETE /api/tasks/{id}", srv.handleDeleteTask)

	return srv
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// Options selects the access log sink and request timeout for Handler.
// JSONLogger takes precedence over TextLogger when both are set.
type Options struct {
	TextLogger     *log.Logger
	JSONLogger     *jsonlog.Logger
	RequestTimeout time.Duration
}

// Handler wraps the server in the standard middleware chain:
// request id, access log, CORS, then the per-request timeout.
func Handler(s *Server, opts Options) http.Handler {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 3 * time.Second
	}

	var h http.Handler = s
	h = Timeout(opts.RequestTimeout)(h)
	h = CORS(h)
	if opts.JSONLogger != nil {
		h = LoggingJSON(opts.JSONLogger)(h)
	} else {
		h = Logging(opts.TextLogger)(h)
	}
	return WithRequestID(h)
}
