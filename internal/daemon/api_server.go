package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"tubelang/internal/api"
	"tubelang/internal/config"
	"tubelang/internal/logging"
	"tubelang/internal/preferences"
)

// maxBodyBytes bounds request bodies; pasted subscription pages are the
// largest expected payload.
const maxBodyBytes = 8 << 20

type apiServer struct {
	bind   string
	token  string
	logger *slog.Logger
	daemon *Daemon

	listener net.Listener
	server   *http.Server
}

func newAPIServer(cfg *config.Config, d *Daemon, logger *slog.Logger) *apiServer {
	srv := &apiServer{
		bind:   strings.TrimSpace(cfg.Paths.APIBind),
		token:  cfg.Paths.APIToken,
		logger: logging.NewComponentLogger(logger, "api-server"),
		daemon: d,
	}
	srv.server = &http.Server{
		Handler:           srv.handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return srv
}

func (s *apiServer) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/status", authMiddleware(s.token, s.handleStatus))
	mux.HandleFunc("/api/classify", authMiddleware(s.token, s.handleClassify))
	mux.HandleFunc("/api/evaluate", authMiddleware(s.token, s.handleEvaluate))
	mux.HandleFunc("/api/settings", authMiddleware(s.token, s.handleSettings))
	mux.HandleFunc("/api/channels", authMiddleware(s.token, s.handleChannels))
	return requestIDMiddleware(mux)
}

func (s *apiServer) start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.bind)
	if err != nil {
		return fmt.Errorf("api listen: %w", err)
	}
	s.listener = listener

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("api server error", logging.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}()

	s.logger.Info("api server listening", logging.String("address", listener.Addr().String()))
	return nil
}

func (s *apiServer) stop() {
	if s.server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}
	if s.listener != nil {
		_ = s.listener.Close()
		s.listener = nil
	}
}

func (s *apiServer) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	status, err := s.daemon.Status(r.Context())
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, r, http.StatusOK, status)
}

func (s *apiServer) handleClassify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req api.ClassifyRequest
	if !s.decode(w, r, &req) {
		return
	}
	s.writeJSON(w, r, http.StatusOK, s.daemon.service.Classify(req))
}

func (s *apiServer) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req api.EvaluateRequest
	if !s.decode(w, r, &req) {
		return
	}
	resp, err := s.daemon.service.Evaluate(r.Context(), req)
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, r, http.StatusOK, resp)
}

func (s *apiServer) handleSettings(w http.ResponseWriter, r *http.Request) {
	var (
		resp api.SettingsResponse
		err  error
	)
	switch r.Method {
	case http.MethodGet:
		resp, err = s.daemon.service.Settings(r.Context())
	case http.MethodPut:
		var raw preferences.Raw
		if !s.decode(w, r, &raw) {
			return
		}
		resp, err = s.daemon.service.UpdateSettings(r.Context(), raw)
	case http.MethodDelete:
		resp, err = s.daemon.service.ResetSettings(r.Context())
	default:
		s.writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, r, http.StatusOK, resp)
}

func (s *apiServer) handleChannels(w http.ResponseWriter, r *http.Request) {
	var (
		resp api.ChannelsResponse
		err  error
	)
	switch r.Method {
	case http.MethodGet:
		resp, err = s.daemon.service.Channels(r.Context())
	case http.MethodPost:
		body, readErr := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if readErr != nil {
			s.writeError(w, r, http.StatusBadRequest, "read body: "+readErr.Error())
			return
		}
		resp, err = s.daemon.service.ImportChannels(r.Context(), string(body))
	case http.MethodDelete:
		if err = s.daemon.service.ClearChannels(r.Context()); err == nil {
			resp, err = s.daemon.service.Channels(r.Context())
		}
	default:
		s.writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, r, http.StatusOK, resp)
}

func (s *apiServer) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst); err != nil {
		s.writeError(w, r, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

func (s *apiServer) writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.WithContext(r.Context(), s.logger).Error("failed to encode response", logging.Error(err))
	}
}

func (s *apiServer) writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	if status >= http.StatusInternalServerError {
		logging.ErrorWithContext(logging.WithContext(r.Context(), s.logger), "api request failed", "api_request_failed",
			logging.String("path", r.URL.Path),
			logging.String("error", message),
		)
	}
	s.writeJSON(w, r, status, api.ErrorResponse{Error: message})
}
