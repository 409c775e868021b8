package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"holidaze/util"
)

const shutdownTimeout = 5 * time.Second

type HolidazeHttpServer struct {
	router    *Router
	muxRouter *mux.Router
	addr      string
}

func NewHolidazeHttpServer(router *Router, muxRouter *mux.Router, port string) *HolidazeHttpServer {
	return &HolidazeHttpServer{
		router:    router,
		muxRouter: muxRouter,
		addr:      ":" + port,
	}
}

// Start serves until SIGINT or SIGTERM, then shuts down gracefully.
func (s *HolidazeHttpServer) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Run(ctx)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *HolidazeHttpServer) Run(ctx context.Context) error {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.muxRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		util.GetLogger().Infof("[HolidazeHttpServer] Starting server on %s", s.addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	util.GetLogger().Info("[HolidazeHttpServer] Shutting down the server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	util.GetLogger().Info("[HolidazeHttpServer] Server exiting")
	return nil
}
