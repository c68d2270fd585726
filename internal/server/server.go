package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/anirudhsk/jarvis/internal/dispatch"
	"github.com/anirudhsk/jarvis/internal/domain"
	"github.com/anirudhsk/jarvis/internal/interpreter"
	"github.com/anirudhsk/jarvis/internal/repository"
)

// Server exposes the interpreter and stores over HTTP.
type Server struct {
	resolver      *interpreter.Resolver
	dispatcher    *dispatch.Dispatcher
	events        repository.EventRepo
	faculty       repository.FacultyRepo
	notifications repository.NotificationRepo
	logger        *log.Logger
	now           func() time.Time
}

// New creates a Server. A nil now function uses the wall clock.
func New(
	resolver *interpreter.Resolver,
	dispatcher *dispatch.Dispatcher,
	events repository.EventRepo,
	faculty repository.FacultyRepo,
	notifications repository.NotificationRepo,
	logger *log.Logger,
	now func() time.Time,
) *Server {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		resolver:      resolver,
		dispatcher:    dispatcher,
		events:        events,
		faculty:       faculty,
		notifications: notifications,
		logger:        logger,
		now:           now,
	}
}

// Router builds the HTTP route table.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/api/chat", s.handleChat).Methods(http.MethodPost)
	r.HandleFunc("/api/events", s.handleListEvents).Methods(http.MethodGet)
	r.HandleFunc("/api/faculty", s.handleListFaculty).Methods(http.MethodGet)
	r.HandleFunc("/api/notifications", s.handleListNotifications).Methods(http.MethodGet)
	r.Use(s.logRequests)
	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// chatRequest is the body of POST /api/chat.
type chatRequest struct {
	Message string `json:"message"`
}

// chatResponse echoes the resolved action alongside the rendered reply.
type chatResponse struct {
	Action interpreter.ActionName `json:"action"`
	Args   interpreter.Args       `json:"args"`
	Reply  string                 `json:"reply"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "request body must be JSON with a message field")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "message must not be empty")
		return
	}

	now := s.now()
	action := s.resolver.Resolve(r.Context(), req.Message, now)
	reply := s.dispatcher.Execute(r.Context(), action, now)

	writeJSON(w, http.StatusOK, chatResponse{
		Action: action.Name,
		Args:   action.Args,
		Reply:  reply,
	})
}

func (s *Server) handleListEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.EventFilter{
		OnDate:           q.Get("on"),
		Before:           q.Get("before"),
		After:            q.Get("after"),
		From:             q.Get("from"),
		To:               q.Get("to"),
		LocationContains: q.Get("location"),
		TitleContains:    q.Get("search"),
		SortBy:           q.Get("sort"),
		SortOrder:        q.Get("order"),
	}

	events, err := s.events.Query(r.Context(), filter)
	if err != nil {
		s.logger.Printf("listing events: %v", err)
		writeError(w, http.StatusInternalServerError, "could not list events")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"events": eventViews(events)})
}

func (s *Server) handleListFaculty(w http.ResponseWriter, r *http.Request) {
	members, err := s.faculty.List(r.Context())
	if err != nil {
		s.logger.Printf("listing faculty: %v", err)
		writeError(w, http.StatusInternalServerError, "could not list faculty")
		return
	}

	views := make([]facultyView, 0, len(members))
	for _, m := range members {
		views = append(views, facultyView{
			ID:          m.ID,
			Name:        m.Name,
			Status:      string(m.Status),
			LastUpdated: m.LastUpdated.Format(time.RFC3339),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"faculty": views})
}

func (s *Server) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	sent, err := s.notifications.ListRecent(r.Context(), 50)
	if err != nil {
		s.logger.Printf("listing notifications: %v", err)
		writeError(w, http.StatusInternalServerError, "could not list notifications")
		return
	}

	views := make([]notificationView, 0, len(sent))
	for _, n := range sent {
		views = append(views, notificationView{
			ID:        n.ID,
			Recipient: n.Recipient,
			Message:   n.Message,
			Status:    string(n.Status),
			SentAt:    n.SentAt.Format(time.RFC3339),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"notifications": views})
}

// ListenAndServe runs the HTTP server until the context is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.logger.Printf("listening on %s", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

type eventView struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Location string `json:"location"`
}

type facultyView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	LastUpdated string `json:"last_updated"`
}

type notificationView struct {
	ID        string `json:"id"`
	Recipient string `json:"recipient"`
	Message   string `json:"message"`
	Status    string `json:"status"`
	SentAt    string `json:"sent_at"`
}

func eventViews(events []*domain.Event) []eventView {
	views := make([]eventView, 0, len(events))
	for _, e := range events {
		views = append(views, eventView{
			ID:       e.ID,
			Title:    e.Title,
			Date:     e.Date,
			Time:     e.Time,
			Location: e.Location,
		})
	}
	return views
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
