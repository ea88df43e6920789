package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-job-board/internal/config"
	"github.com/MKhiriev/go-job-board/internal/handler"
	myGRPC "github.com/MKhiriev/go-job-board/internal/handler/grpc"
	myHTTP "github.com/MKhiriev/go-job-board/internal/handler/http"
	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/MKhiriev/go-job-board/internal/service"
	"github.com/MKhiriev/go-job-board/internal/workers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// freeAddress returns a loopback address nobody listens on.
func freeAddress(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

type stubWorker struct {
	stopped chan struct{}
}

func (w *stubWorker) Name() string { return "stub" }

func (w *stubWorker) Run(ctx context.Context) error {
	<-ctx.Done()
	close(w.stopped)
	return nil
}

func TestNewServer_NoServers(t *testing.T) {
	srv, err := NewServer(&handler.Handlers{}, nil, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, srv)
}

func TestNewServer_SkipsMissingHandlers(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":0", GRPCAddress: ":0"}
	grpcHandler := myGRPC.NewHandler(nil, nil, 0, logger.Nop())

	srv, err := NewServer(&handler.Handlers{GRPC: grpcHandler}, nil, cfg, logger.Nop())

	require.NoError(t, err)
	s := srv.(*server)
	assert.Nil(t, s.httpServer)
	assert.NotNil(t, s.gRPCServer)
}

func TestServer_RunServesUntilCancelled(t *testing.T) {
	cfg := config.Server{
		HTTPAddress:     freeAddress(t),
		RequestTimeout:  time.Second,
		ShutdownTimeout: time.Second,
	}
	svcs := &service.Services{}
	httpHandler := myHTTP.NewHandler(svcs, nil, nil, logger.Nop())
	worker := &stubWorker{stopped: make(chan struct{})}

	srv, err := NewServer(&handler.Handlers{HTTP: httpHandler}, workers.NewWorkers(logger.Nop(), worker), cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	url := fmt.Sprintf("http://%s/healthz", cfg.HTTPAddress)
	assert.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	require.NoError(t, <-done)

	select {
	case <-worker.stopped:
	default:
		t.Fatal("background worker was not stopped")
	}

	_, err = http.Get(url)
	assert.Error(t, err)
}

func TestServer_RunWithoutTransports(t *testing.T) {
	s := &server{background: workers.NewWorkers(logger.Nop()), logger: logger.Nop()}
	assert.ErrorIs(t, s.Run(context.Background()), errNoServersToRun)
}
