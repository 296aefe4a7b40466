package server

import (
	"bytes"
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/Aidin1998/templates/internal/infrastructure/config"
	"github.com/Aidin1998/templates/internal/infrastructure/tracing"
	"github.com/Aidin1998/templates/internal/templates"
	"github.com/Aidin1998/templates/pkg/metrics"
	"github.com/Aidin1998/templates/pkg/models"
	pb "github.com/Aidin1998/templates/proto/templates"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	reflectionpb "google.golang.org/grpc/reflection/grpc_reflection_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

// blockingStore holds every GetAllTemplates call until release is closed
type blockingStore struct {
	templates.Store

	entered chan struct{}
	release chan struct{}

	mu      sync.Mutex
	current int
	peak    int
}

func newBlockingStore(capacity int) *blockingStore {
	return &blockingStore{
		entered: make(chan struct{}, capacity),
		release: make(chan struct{}),
	}
}

func (b *blockingStore) GetAllTemplates(context.Context) ([]models.Template, error) {
	b.mu.Lock()
	b.current++
	if b.current > b.peak {
		b.peak = b.current
	}
	b.mu.Unlock()

	select {
	case b.entered <- struct{}{}:
	default:
	}
	<-b.release

	b.mu.Lock()
	b.current--
	b.mu.Unlock()
	return nil, nil
}

func (b *blockingStore) peakConcurrency() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.peak
}

type testServer struct {
	server  *GRPCServer
	conn    *grpc.ClientConn
	metrics *metrics.Metrics
}

func startGRPCServer(t *testing.T, store templates.Store, cfg config.GRPCServerConfig) *testServer {
	t.Helper()
	return serveGRPC(t, store, GRPCServerOptions{
		Config:  &cfg,
		Metrics: metrics.New(prometheus.NewRegistry()),
	})
}

// serveGRPC starts a server over bufconn; opts gets a logger and the
// templates service registration
func serveGRPC(t *testing.T, store templates.Store, opts GRPCServerOptions) *testServer {
	t.Helper()
	logger := zaptest.NewLogger(t)

	manager := NewGRPCServiceManager(logger)
	manager.RegisterService(pb.ServiceName, func(s *grpc.Server) {
		pb.RegisterTemplatesServer(s, templates.NewService(logger, store))
	})
	opts.Logger = logger
	opts.ServiceManager = manager

	srv, err := NewGRPCServer(opts)
	require.NoError(t, err)

	lis := bufconn.Listen(1 << 20)
	go srv.Start(lis)
	t.Cleanup(func() { srv.GetServer().Stop() })

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &testServer{server: srv, conn: conn, metrics: opts.Metrics}
}

func testConfig(workers int) config.GRPCServerConfig {
	return config.GRPCServerConfig{MaxWorkers: workers, EnableReflection: true}
}

func TestNewGRPCServerValidatesOptions(t *testing.T) {
	_, err := NewGRPCServer(GRPCServerOptions{Logger: zap.NewNop()})
	assert.Error(t, err)

	_, err = NewGRPCServer(GRPCServerOptions{Config: &config.GRPCServerConfig{MaxWorkers: 1}})
	assert.Error(t, err)

	_, err = NewGRPCServer(GRPCServerOptions{Config: &config.GRPCServerConfig{}, Logger: zap.NewNop()})
	assert.Error(t, err)
}

func TestWorkerPoolBoundsConcurrency(t *testing.T) {
	const workers, calls = 2, 5

	store := newBlockingStore(calls)
	ts := startGRPCServer(t, store, testConfig(workers))
	client := pb.NewTemplatesClient(ts.conn)

	var wg sync.WaitGroup
	for i := 0; i < calls; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := client.GetAllTemplates(context.Background(), &pb.Empty{})
			assert.NoError(t, err)
		}()
	}

	for i := 0; i < workers; i++ {
		select {
		case <-store.entered:
		case <-time.After(5 * time.Second):
			t.Fatal("handlers were not admitted")
		}
	}

	select {
	case <-store.entered:
		t.Fatal("more handlers admitted than workers")
	case <-time.After(100 * time.Millisecond):
	}
	assert.Equal(t, float64(workers), testutil.ToFloat64(ts.metrics.InFlight))

	close(store.release)
	wg.Wait()

	assert.Equal(t, workers, store.peakConcurrency())
	assert.Equal(t, float64(calls), testutil.ToFloat64(
		ts.metrics.RequestsTotal.WithLabelValues(pb.Templates_GetAllTemplates_FullMethodName, codes.OK.String())))
	assert.Equal(t, 0.0, testutil.ToFloat64(ts.metrics.InFlight))
}

func TestPanicsBecomeInternalErrors(t *testing.T) {
	// the embedded nil Store panics on every call
	ts := startGRPCServer(t, &blockingStore{}, testConfig(1))
	client := pb.NewTemplatesClient(ts.conn)

	_, err := client.CreateTemplate(context.Background(), &pb.CreateTemplateRequest{Name: "Invoice"})
	assert.Equal(t, codes.Internal, status.Code(err))

	// the worker slot was released
	_, err = client.CreateFeature(context.Background(), &pb.CreateFeatureRequest{Name: "Due Date"})
	assert.Equal(t, codes.Internal, status.Code(err))
	assert.Equal(t, 1.0, testutil.ToFloat64(
		ts.metrics.RequestsTotal.WithLabelValues(pb.Templates_CreateFeature_FullMethodName, codes.Internal.String())))
}

func TestPanicsInInterceptorsBecomeInternalErrors(t *testing.T) {
	// collectors left nil make the worker pool interceptor panic
	cfg := testConfig(1)
	ts := serveGRPC(t, newBlockingStore(1), GRPCServerOptions{
		Config:  &cfg,
		Metrics: &metrics.Metrics{},
	})
	client := pb.NewTemplatesClient(ts.conn)

	for i := 0; i < 2; i++ {
		_, err := client.GetAllTemplates(context.Background(), &pb.Empty{})
		assert.Equal(t, codes.Internal, status.Code(err))
	}
}

func TestCallsAreTraced(t *testing.T) {
	var buf bytes.Buffer
	tp, shutdown, err := tracing.Setup(tracing.Config{Enabled: true, ServiceName: "templates", Writer: &buf})
	require.NoError(t, err)

	cfg := testConfig(1)
	ts := serveGRPC(t, &blockingStore{}, GRPCServerOptions{
		Config:         &cfg,
		TracerProvider: tp,
	})
	client := pb.NewTemplatesClient(ts.conn)

	_, err = client.DeleteTemplate(context.Background(), &pb.IdStruct{Id: 1})
	require.Equal(t, codes.Internal, status.Code(err))

	require.NoError(t, shutdown(context.Background()))
	out := buf.String()
	assert.Contains(t, out, `"Name":"`+pb.Templates_DeleteTemplate_FullMethodName+`"`)
	assert.Contains(t, out, `"Key":"rpc.grpc.status_code"`)
	assert.Contains(t, out, `"Value":"Internal"`)
	assert.Contains(t, out, `"Key":"rpc.system"`)
}

func TestRequestIDHeader(t *testing.T) {
	store := newBlockingStore(1)
	close(store.release)
	ts := startGRPCServer(t, store, testConfig(1))
	client := pb.NewTemplatesClient(ts.conn)

	ctx := metadata.AppendToOutgoingContext(context.Background(), requestIDHeader, "req-42")
	var header metadata.MD
	_, err := client.GetAllTemplates(ctx, &pb.Empty{}, grpc.Header(&header))
	require.NoError(t, err)
	assert.Equal(t, []string{"req-42"}, header.Get(requestIDHeader))

	_, err = client.GetAllTemplates(context.Background(), &pb.Empty{}, grpc.Header(&header))
	require.NoError(t, err)
	require.Len(t, header.Get(requestIDHeader), 1)
	assert.Len(t, header.Get(requestIDHeader)[0], 36)
}

func TestHealthService(t *testing.T) {
	ts := startGRPCServer(t, newBlockingStore(1), testConfig(1))
	health := healthpb.NewHealthClient(ts.conn)

	for _, service := range []string{"", pb.ServiceName} {
		resp, err := health.Check(context.Background(), &healthpb.HealthCheckRequest{Service: service})
		require.NoError(t, err)
		assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
	}
}

func TestReflectionListsTemplatesService(t *testing.T) {
	ts := startGRPCServer(t, newBlockingStore(1), testConfig(1))

	stream, err := reflectionpb.NewServerReflectionClient(ts.conn).ServerReflectionInfo(context.Background())
	require.NoError(t, err)
	defer stream.CloseSend()

	require.NoError(t, stream.Send(&reflectionpb.ServerReflectionRequest{
		MessageRequest: &reflectionpb.ServerReflectionRequest_ListServices{},
	}))
	resp, err := stream.Recv()
	require.NoError(t, err)

	var names []string
	for _, svc := range resp.GetListServicesResponse().GetService() {
		names = append(names, svc.GetName())
	}
	assert.Contains(t, names, pb.ServiceName)

	require.NoError(t, stream.Send(&reflectionpb.ServerReflectionRequest{
		MessageRequest: &reflectionpb.ServerReflectionRequest_FileContainingSymbol{FileContainingSymbol: pb.ServiceName},
	}))
	resp, err = stream.Recv()
	require.NoError(t, err)
	assert.NotEmpty(t, resp.GetFileDescriptorResponse().GetFileDescriptorProto())
}

func TestStopIsGraceful(t *testing.T) {
	ts := startGRPCServer(t, newBlockingStore(1), testConfig(1))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	assert.NoError(t, ts.server.Stop(ctx))
}
