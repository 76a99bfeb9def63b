// Package supervisor runs the long-lived parts of the engagement process
// under a suture supervision tree.
package supervisor

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/thejerf/suture/v4"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"ugcengagement/pkg/logging"
)

const shutdownTimeout = 10 * time.Second

// New creates the root supervisor. Supervision events are logged with
// the given logger.
func New(name string, logger *zap.Logger) *suture.Supervisor {
	logger = logger.With(zap.String(logging.FieldComponent, "supervisor"))
	return suture.New(name, suture.Spec{
		EventHook: func(e suture.Event) {
			fields := make([]zap.Field, 0, len(e.Map()))
			for k, v := range e.Map() {
				fields = append(fields, zap.Any(k, v))
			}
			logger.Warn(e.String(), fields...)
		},
		FailureThreshold: 5,
		FailureDecay:     30,
		FailureBackoff:   15 * time.Second,
		Timeout:          shutdownTimeout,
	})
}

// GRPCServer serves a gRPC server on a listener.
type GRPCServer struct {
	Server   *grpc.Server
	Listener net.Listener
}

// Serve blocks until the server fails or ctx is done, then stops it gracefully.
func (s *GRPCServer) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Server.Serve(s.Listener)
	}()
	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("grpc server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		s.Server.GracefulStop()
		<-errCh
		return ctx.Err()
	}
}

func (s *GRPCServer) String() string {
	return "grpc-server"
}

// HTTPServer serves an HTTP server.
type HTTPServer struct {
	Name     string
	Server   *http.Server
	Listener net.Listener
}

// Serve blocks until the server fails or ctx is done, then shuts it down.
func (s *HTTPServer) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		var err error
		if s.Listener != nil {
			err = s.Server.Serve(s.Listener)
		} else {
			err = s.Server.ListenAndServe()
		}
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		errCh <- err
	}()
	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("%s failed: %w", s, err)
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := s.Server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s shutdown failed: %w", s, err)
		}
		<-errCh
		return ctx.Err()
	}
}

func (s *HTTPServer) String() string {
	if s.Name == "" {
		return "http-server"
	}
	return s.Name
}

// Func adapts a blocking function to a suture service.
type Func struct {
	Name string
	Run  func(ctx context.Context) error
}

func (f *Func) Serve(ctx context.Context) error {
	return f.Run(ctx)
}

func (f *Func) String() string {
	return f.Name
}
