// Package api is the admin HTTP surface: one-off pulls, pushes, remote
// deletes and a manual sync trigger.
package api

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"nprstory/internal/service"
	"nprstory/internal/transport"
)

const accessKeyHeader = "X-Access-Key"

type Puller interface {
	PullStory(ctx context.Context, input string, publish bool) (int64, error)
}

type Pusher interface {
	PushPost(ctx context.Context, postID int64) error
	Delete(ctx context.Context, remoteID string) error
}

type Trigger interface {
	Trigger() bool
}

type Server struct {
	puller    Puller
	pusher    Pusher
	trigger   Trigger
	accessKey string
	logger    *slog.Logger
}

func NewServer(puller Puller, pusher Pusher, trigger Trigger, accessKey string, logger *slog.Logger) *Server {
	return &Server{
		puller:    puller,
		pusher:    pusher,
		trigger:   trigger,
		accessKey: accessKey,
		logger:    logger.With("component", "api"),
	}
}

func (s *Server) Router() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	admin := r.NewRoute().Subrouter()
	admin.Use(s.requireAccessKey)
	admin.HandleFunc("/stories/pull", s.handlePull).Methods(http.MethodPost)
	admin.HandleFunc("/stories/{id}", s.handleDelete).Methods(http.MethodDelete)
	admin.HandleFunc("/posts/{id:[0-9]+}/push", s.handlePush).Methods(http.MethodPost)
	admin.HandleFunc("/sync", s.handleSync).Methods(http.MethodPost)

	return r
}

// NewHTTPServer wraps the router with the timeouts used in production.
func (s *Server) NewHTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func (s *Server) requireAccessKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// With no key configured every admin request is denied.
		got := r.Header.Get(accessKeyHeader)
		if s.accessKey == "" || subtle.ConstantTimeCompare([]byte(got), []byte(s.accessKey)) != 1 {
			writeError(w, http.StatusForbidden, "access key required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

type pullRequest struct {
	Story   string `json:"story"`
	Publish bool   `json:"publish"`
}

type pullResponse struct {
	PostID int64 `json:"post_id"`
}

func (s *Server) handlePull(w http.ResponseWriter, r *http.Request) {
	var req pullRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Story) == "" {
		writeError(w, http.StatusBadRequest, "story is required")
		return
	}

	postID, err := s.puller.PullStory(r.Context(), req.Story, req.Publish)
	if err != nil {
		s.logger.Error("pull failed", "story", req.Story, "error", err)
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, pullResponse{PostID: postID})
}

func (s *Server) handlePush(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid post id")
		return
	}

	if err := s.pusher.PushPost(r.Context(), postID); err != nil {
		s.logger.Error("push failed", "post_id", postID, "error", err)
		writeError(w, statusFor(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := s.pusher.Delete(r.Context(), id); err != nil {
		s.logger.Error("delete failed", "story_id", id, "error", err)
		writeError(w, statusFor(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSync(w http.ResponseWriter, _ *http.Request) {
	if s.trigger == nil {
		writeError(w, http.StatusServiceUnavailable, "scheduler not running")
		return
	}
	queued := s.trigger.Trigger()
	writeJSON(w, http.StatusAccepted, map[string]bool{"queued": queued})
}

func statusFor(err error) int {
	var msgErr *service.APIMessageError
	var pushErr *service.PushError
	var statusErr *transport.StatusError
	switch {
	case errors.Is(err, service.ErrInvalidStoryID):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrStoryNotFound), errors.Is(err, service.ErrPostNotFound),
		transport.IsStatus(err, http.StatusNotFound):
		return http.StatusNotFound
	case errors.As(err, &msgErr), errors.As(err, &pushErr), errors.As(err, &statusErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
