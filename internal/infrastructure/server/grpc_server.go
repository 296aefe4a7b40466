package server

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/Aidin1998/templates/internal/infrastructure/config"
	"github.com/Aidin1998/templates/pkg/metrics"
	pb "github.com/Aidin1998/templates/proto/templates"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
)

const requestIDHeader = "x-request-id"

// GRPCServer wraps grpc.Server with the service's interceptor chain,
// reflection and health reporting
type GRPCServer struct {
	config         *config.GRPCServerConfig
	logger         *zap.Logger
	metrics        *metrics.Metrics
	tracer         trace.Tracer
	server         *grpc.Server
	health         *health.Server
	workers        *semaphore.Weighted
	serviceManager *GRPCServiceManager
}

// GRPCServerOptions contains options for creating a GRPCServer
type GRPCServerOptions struct {
	Config         *config.GRPCServerConfig
	Logger         *zap.Logger
	Metrics        *metrics.Metrics
	TracerProvider trace.TracerProvider
	ServiceManager *GRPCServiceManager
}

// GRPCServiceManager manages gRPC service registrations
type GRPCServiceManager struct {
	logger   *zap.Logger
	services map[string]func(*grpc.Server)
}

// NewGRPCServiceManager creates a new GRPCServiceManager
func NewGRPCServiceManager(logger *zap.Logger) *GRPCServiceManager {
	return &GRPCServiceManager{
		logger:   logger,
		services: make(map[string]func(*grpc.Server)),
	}
}

// RegisterService registers a gRPC service
func (gsm *GRPCServiceManager) RegisterService(name string, registrar func(*grpc.Server)) {
	gsm.services[name] = registrar
	gsm.logger.Debug("Registered gRPC service", zap.String("service", name))
}

// RegisterAllServices registers all services with the gRPC server
func (gsm *GRPCServiceManager) RegisterAllServices(server *grpc.Server) {
	for name, registrar := range gsm.services {
		gsm.logger.Info("Registering gRPC service", zap.String("service", name))
		registrar(server)
	}
}

// Names returns the names of all registered services
func (gsm *GRPCServiceManager) Names() []string {
	names := make([]string, 0, len(gsm.services))
	for name := range gsm.services {
		names = append(names, name)
	}
	return names
}

// NewGRPCServer creates a new gRPC server
func NewGRPCServer(opts GRPCServerOptions) (*GRPCServer, error) {
	if opts.Config == nil {
		return nil, fmt.Errorf("gRPC server config is required")
	}
	if opts.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if opts.Config.MaxWorkers <= 0 {
		return nil, fmt.Errorf("gRPC max workers must be positive")
	}

	tp := opts.TracerProvider
	if tp == nil {
		tp = noop.NewTracerProvider()
	}

	s := &GRPCServer{
		config:         opts.Config,
		logger:         opts.Logger.Named("grpc"),
		metrics:        opts.Metrics,
		tracer:         tp.Tracer("github.com/Aidin1998/templates/internal/infrastructure/server"),
		health:         health.NewServer(),
		workers:        semaphore.NewWeighted(int64(opts.Config.MaxWorkers)),
		serviceManager: opts.ServiceManager,
	}

	s.initServer()
	return s, nil
}

// initServer builds the grpc.Server and registers services
func (s *GRPCServer) initServer() {
	opts := []grpc.ServerOption{
		grpc.ForceServerCodec(pb.Codec{}),
		grpc.NumStreamWorkers(uint32(s.config.MaxWorkers)),
		grpc.ChainUnaryInterceptor(
			s.recoveryUnaryInterceptor,
			s.loggingUnaryInterceptor,
			s.metricsUnaryInterceptor,
			s.workerPoolUnaryInterceptor,
			s.tracingUnaryInterceptor,
			s.recoveryUnaryInterceptor,
		),
		grpc.ChainStreamInterceptor(s.recoveryStreamInterceptor),
	}
	if s.config.MaxRecvMsgSize > 0 {
		opts = append(opts, grpc.MaxRecvMsgSize(s.config.MaxRecvMsgSize))
	}
	if s.config.MaxSendMsgSize > 0 {
		opts = append(opts, grpc.MaxSendMsgSize(s.config.MaxSendMsgSize))
	}
	if ka := s.config.KeepAlive; ka.Time > 0 {
		opts = append(opts,
			grpc.KeepaliveParams(keepalive.ServerParameters{
				MaxConnectionIdle: ka.MaxConnectionIdle,
				Time:              ka.Time,
				Timeout:           ka.Timeout,
			}),
			grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
				MinTime:             ka.MinTime,
				PermitWithoutStream: ka.PermitWithoutStream,
			}),
		)
	}

	s.server = grpc.NewServer(opts...)

	if s.serviceManager != nil {
		s.serviceManager.RegisterAllServices(s.server)
	}

	healthpb.RegisterHealthServer(s.server, s.health)
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	if s.serviceManager != nil {
		for _, name := range s.serviceManager.Names() {
			s.health.SetServingStatus(name, healthpb.HealthCheckResponse_SERVING)
		}
	}

	if s.config.EnableReflection {
		reflection.Register(s.server)
		s.logger.Info("gRPC reflection enabled")
	}
}

// requestID returns the caller's request id or a fresh one
func requestID(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if ids := md.Get(requestIDHeader); len(ids) > 0 && ids[0] != "" {
			return ids[0]
		}
	}
	return uuid.NewString()
}

// loggingUnaryInterceptor logs unary RPC calls
func (s *GRPCServer) loggingUnaryInterceptor(
	ctx context.Context,
	req interface{},
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (interface{}, error) {
	start := time.Now()
	id := requestID(ctx)
	_ = grpc.SetHeader(ctx, metadata.Pairs(requestIDHeader, id))

	resp, err := handler(ctx, req)

	fields := []zap.Field{
		zap.String("method", info.FullMethod),
		zap.String("request_id", id),
		zap.Duration("duration", time.Since(start)),
	}

	if err != nil {
		st, _ := status.FromError(err)
		fields = append(fields,
			zap.String("grpc_code", st.Code().String()),
			zap.Error(err))
		s.logger.Error("gRPC unary call failed", fields...)
	} else {
		s.logger.Info("gRPC unary call completed", fields...)
	}

	return resp, err
}

// metricsUnaryInterceptor counts calls and records their latency
func (s *GRPCServer) metricsUnaryInterceptor(
	ctx context.Context,
	req interface{},
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (interface{}, error) {
	if s.metrics == nil {
		return handler(ctx, req)
	}

	start := time.Now()
	resp, err := handler(ctx, req)

	s.metrics.RequestLatency.WithLabelValues(info.FullMethod).Observe(time.Since(start).Seconds())
	s.metrics.RequestsTotal.WithLabelValues(info.FullMethod, status.Code(err).String()).Inc()
	return resp, err
}

// workerPoolUnaryInterceptor admits at most MaxWorkers concurrent handlers;
// other calls wait for a free slot
func (s *GRPCServer) workerPoolUnaryInterceptor(
	ctx context.Context,
	req interface{},
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (interface{}, error) {
	if err := s.workers.Acquire(ctx, 1); err != nil {
		return nil, status.FromContextError(err).Err()
	}
	defer s.workers.Release(1)

	if s.metrics != nil {
		s.metrics.InFlight.Inc()
		defer s.metrics.InFlight.Dec()
	}

	return handler(ctx, req)
}

// tracingUnaryInterceptor wraps each call in a server span
func (s *GRPCServer) tracingUnaryInterceptor(
	ctx context.Context,
	req interface{},
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (interface{}, error) {
	ctx, span := s.tracer.Start(ctx, info.FullMethod,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("rpc.system", "grpc"),
			attribute.String("rpc.method", info.FullMethod),
		))
	defer span.End()

	resp, err := handler(ctx, req)

	span.SetAttributes(attribute.String("rpc.grpc.status_code", status.Code(err).String()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, status.Convert(err).Message())
	}
	return resp, err
}

// recoveryUnaryInterceptor recovers from panics in unary calls. It runs both
// outermost, covering the other interceptors, and innermost, so a handler
// panic is still logged, counted and traced as codes.Internal.
func (s *GRPCServer) recoveryUnaryInterceptor(
	ctx context.Context,
	req interface{},
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (resp interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("gRPC unary call panic recovered",
				zap.String("method", info.FullMethod),
				zap.Any("panic", r))
			err = status.Errorf(codes.Internal, "internal server error")
		}
	}()

	return handler(ctx, req)
}

// recoveryStreamInterceptor recovers from panics in stream calls (reflection, health watch)
func (s *GRPCServer) recoveryStreamInterceptor(
	srv interface{},
	stream grpc.ServerStream,
	info *grpc.StreamServerInfo,
	handler grpc.StreamHandler,
) (err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("gRPC stream call panic recovered",
				zap.String("method", info.FullMethod),
				zap.Any("panic", r))
			err = status.Errorf(codes.Internal, "internal server error")
		}
	}()

	return handler(srv, stream)
}

// Start serves on listener until the server stops
func (s *GRPCServer) Start(listener net.Listener) error {
	s.logger.Info("Starting gRPC server", zap.String("address", listener.Addr().String()))

	if err := s.server.Serve(listener); err != nil {
		return fmt.Errorf("gRPC server failed: %w", err)
	}
	return nil
}

// Stop gracefully stops the gRPC server, forcing it down when ctx expires
func (s *GRPCServer) Stop(ctx context.Context) error {
	s.logger.Info("Stopping gRPC server")
	s.health.Shutdown()

	stopped := make(chan struct{})
	go func() {
		s.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		s.logger.Info("gRPC server stopped gracefully")
		return nil
	case <-ctx.Done():
		s.logger.Warn("gRPC graceful stop timeout, forcing stop")
		s.server.Stop()
		return fmt.Errorf("graceful stop timeout")
	}
}

// GetServer returns the underlying gRPC server
func (s *GRPCServer) GetServer() *grpc.Server {
	return s.server
}
