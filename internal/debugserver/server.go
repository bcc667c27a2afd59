// Package debugserver exposes a read-only HTTP and websocket view of a running game.
package debugserver

import (
	"context"
	"errors"
	stdlog "log"
	"net/http"
	"strconv"
	"time"

	"go-maze-defense/internal/log"
	"go-maze-defense/internal/snapshot"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/gorilla/websocket"
)

type Server struct {
	store    *snapshot.Store
	events   *snapshot.EventLog
	logger   *log.Logger
	upgrader websocket.Upgrader
	srv      *http.Server
}

func New(addr string, store *snapshot.Store, events *snapshot.EventLog, logger *log.Logger) *Server {
	s := &Server{
		store:  store,
		events: events,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Поток только на чтение, любой источник допустим
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	s.srv = &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 0, // websocket и pprof держат соединение долго
	}
	return s
}

// Router builds the chi router with middlewares and routes.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  stdlog.New(s.logger.Writer(), "", stdlog.LstdFlags),
		NoColor: true,
	}))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/snapshot", s.handleSnapshot)
	r.Get("/events", s.handleEvents)
	r.Get("/ws", s.handleWS)
	r.Mount("/debug", middleware.Profiler())

	return r
}

// ListenAndServe blocks until the server stops. A clean Shutdown returns nil.
func (s *Server) ListenAndServe() error {
	s.logger.Infof("debug server listening on %s", s.srv.Addr)
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.store.Latest()
	if !ok {
		errorJSON(w, http.StatusServiceUnavailable, "no snapshot yet")
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

type eventsResponse struct {
	Seq    uint64           `json:"seq"`
	Events []snapshot.Entry `json:"events"`
}

// handleEvents returns the log after ?since=N (all retained entries by default).
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	var since uint64
	if v := r.URL.Query().Get("since"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			errorJSON(w, http.StatusBadRequest, "since must be a non-negative integer")
			return
		}
		since = n
	}
	events := s.events.Since(since)
	if events == nil {
		events = []snapshot.Entry{}
	}
	writeJSON(w, http.StatusOK, eventsResponse{Seq: s.events.Seq(), Events: events})
}
