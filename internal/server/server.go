package server

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/sirupsen/logrus"

	"numconv/internal/config"
	"numconv/internal/domain"
)

type Server struct {
	log       logrus.FieldLogger
	cfg       *config.Config
	converter domain.Converter
	listener  net.Listener
}

// New returns a new instance of a numconv server.
func New(
	log logrus.FieldLogger,
	cfg *config.Config,
	converter domain.Converter,
	listener net.Listener,
) *Server {
	return &Server{
		log:       log,
		cfg:       cfg,
		converter: converter,
		listener:  listener,
	}
}

func (s *Server) Run() error {
	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
	)
	if rl := s.cfg.Service.RateLimit; rl.Requests > 0 {
		installRateLimiter(router, rl.Requests, time.Duration(rl.WindowSeconds)*time.Second)
	}

	h := NewHandler(s.log, s.converter)
	h.Register(router)

	srv := &http.Server{
		Addr:         s.cfg.Service.Address,
		Handler:      router,
		ReadTimeout:  time.Duration(s.cfg.Service.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(s.cfg.Service.WriteTimeoutSeconds) * time.Second,
	}

	sigShutdown := make(chan os.Signal, 1)
	signal.Notify(sigShutdown, os.Interrupt, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		<-sigShutdown
		s.log.Println("Shutdown signal received")
		shutdownTimeout := time.Duration(s.cfg.Service.ShutdownTimeoutSeconds) * time.Second
		ctxTimeout, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		srv.SetKeepAlivesEnabled(false)
		_ = srv.Shutdown(ctxTimeout)
	}()

	s.log.Printf("Listening on %s...", s.listener.Addr().String())
	if err := srv.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// installRateLimiter bounds requests per client IP, answering over-limit
// calls with a 429 and the usual result envelope.
func installRateLimiter(r chi.Router, requests int, window time.Duration) {
	limiter := httprate.Limit(
		requests,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", strconv.Itoa(int(window.Seconds())))
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(domain.Fail("Rate limit exceeded"))
		}),
	)
	r.Use(limiter)
}

// NewListener returns a TCP listener. If the address is empty, it will
// listen on localhost's next available port.
func NewListener(address string) (net.Listener, error) {
	if address == "" {
		address = "localhost:0"
	}
	return net.Listen("tcp", address)
}
