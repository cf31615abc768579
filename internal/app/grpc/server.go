package grpc

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/spounge-ai/handicap/internal/app/grpc/interceptors"
	app_errors "github.com/spounge-ai/handicap/internal/errors"
	"github.com/spounge-ai/handicap/internal/infra/config"
	"github.com/spounge-ai/handicap/internal/infra/ratelimit"
	"github.com/spounge-ai/handicap/internal/service"
	"github.com/spounge-ai/handicap/internal/validation"
	handicapv1 "github.com/spounge-ai/handicap/pkg/handicap/v1"
	"github.com/spounge-ai/handicap/pkg/patterns/lifecycle"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

const peerIdleTTL = 10 * time.Minute

var _ lifecycle.ManagedResource = (*Server)(nil)

type Server struct {
	grpcServer *grpc.Server
	healthSrv  *health.Server
	lis        net.Listener
	logger     *slog.Logger
	serveErr   chan error
}

type Option func(*serverOptions)

type serverOptions struct {
	lis       net.Listener
	tlsConfig *tls.Config
}

// WithListener serves on lis instead of the configured TCP port.
func WithListener(lis net.Listener) Option {
	return func(o *serverOptions) { o.lis = lis }
}

func WithTLSConfig(tlsConfig *tls.Config) Option {
	return func(o *serverOptions) { o.tlsConfig = tlsConfig }
}

func New(
	cfg *config.Config,
	handicapService service.HandicapService,
	logger *slog.Logger,
	errorClassifier *app_errors.ErrorClassifier,
	opts ...Option,
) (*Server, error) {
	var o serverOptions
	for _, opt := range opts {
		opt(&o)
	}

	requestValidator, err := validation.NewRequestValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create request validator: %w", err)
	}

	limiters := inboundLimiters(cfg.Server.RateLimiter)

	var serverOpts []grpc.ServerOption
	if o.tlsConfig != nil {
		serverOpts = append(serverOpts, grpc.Creds(credentials.NewTLS(o.tlsConfig)))
	}

	serverOpts = append(serverOpts, grpc.ChainUnaryInterceptor(
		interceptors.UnaryLoggingInterceptor(logger),
		interceptors.UnaryRateLimitInterceptor(limiters, errorClassifier),
		interceptors.UnaryValidationInterceptor(requestValidator, errorClassifier),
	))

	lis := o.lis
	if lis == nil {
		lis, err = net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.Port))
		if err != nil {
			return nil, fmt.Errorf("failed to listen: %w", err)
		}
	}

	grpcServer := grpc.NewServer(serverOpts...)

	handicapv1.RegisterHandicapServer(grpcServer, NewHandicapServer(HandicapDeps{
		Service:         handicapService,
		Logger:          logger,
		ErrorClassifier: errorClassifier,
	}))

	healthSrv := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthSrv)

	return &Server{
		grpcServer: grpcServer,
		healthSrv:  healthSrv,
		lis:        lis,
		logger:     logger,
		serveErr:   make(chan error, 1),
	}, nil
}

func inboundLimiters(cfg config.InboundLimitConfig) *ratelimit.PerMethod {
	if !cfg.Enabled {
		return ratelimit.NewPerMethod(ratelimit.Unlimited{}, nil)
	}
	methods := make(map[string]ratelimit.Limiter, len(cfg.Methods))
	for name, m := range cfg.Methods {
		methods[name] = ratelimit.NewInMemoryRateLimiter(rate.Limit(m.Rate), m.Burst, peerIdleTTL)
	}
	return ratelimit.NewPerMethod(ratelimit.NewInMemoryRateLimiter(rate.Limit(cfg.Rate), cfg.Burst, peerIdleTTL), methods)
}

// Addr is the address the server listens on.
func (s *Server) Addr() net.Addr {
	return s.lis.Addr()
}

// Start serves in the background. A serve failure is reported on Err.
func (s *Server) Start(ctx context.Context) error {
	s.logger.InfoContext(ctx, "gRPC server listening", "address", s.lis.Addr().String())
	s.healthSrv.SetServingStatus(handicapv1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	go func() {
		if err := s.grpcServer.Serve(s.lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			s.serveErr <- err
		}
		close(s.serveErr)
	}()
	return nil
}

// Err yields the error that ended Serve, if any.
func (s *Server) Err() <-chan error {
	return s.serveErr
}

// Stop drains in-flight calls until ctx expires, then closes all connections.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.InfoContext(ctx, "stopping gRPC server")
	s.healthSrv.Shutdown()

	done := make(chan struct{})
	go func() {
		s.grpcServer.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		s.grpcServer.Stop()
		<-done
	}
	s.logger.InfoContext(ctx, "gRPC server stopped")
	return nil
}

func (s *Server) Health(ctx context.Context) lifecycle.HealthStatus {
	resp, err := s.healthSrv.Check(ctx, &grpc_health_v1.HealthCheckRequest{Service: handicapv1.ServiceName})
	if err != nil {
		return lifecycle.HealthStatus{Ready: false, Message: err.Error()}
	}
	return lifecycle.HealthStatus{
		Ready:   resp.GetStatus() == grpc_health_v1.HealthCheckResponse_SERVING,
		Message: resp.GetStatus().String(),
	}
}
