package supervisor

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

func listen(t *testing.T) net.Listener {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	return lis
}

func TestHTTPServerStopsWithContext(t *testing.T) {
	lis := listen(t)
	svc := &HTTPServer{
		Name: "api",
		Server: &http.Server{Handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, "ok")
		})},
		Listener: lis,
	}
	sup := New("test", zap.NewNop())
	sup.Add(svc)
	ctx, cancel := context.WithCancel(context.Background())
	done := sup.ServeBackground(ctx)

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + lis.Addr().String())
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		b, _ := io.ReadAll(resp.Body)
		return string(b) == "ok"
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("supervisor did not stop")
	}
	_, err := http.Get("http://" + lis.Addr().String())
	assert.Error(t, err)
	assert.Equal(t, "api", svc.String())
}

func TestGRPCServerStopsWithContext(t *testing.T) {
	svc := &GRPCServer{Server: grpc.NewServer(), Listener: listen(t)}
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()
	cancel()
	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("grpc server did not stop")
	}
}

func TestFuncIsRestarted(t *testing.T) {
	runs := make(chan struct{}, 8)
	sup := New("test", zap.NewNop())
	sup.Add(&Func{Name: "flaky", Run: func(ctx context.Context) error {
		runs <- struct{}{}
		return io.ErrUnexpectedEOF
	}})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sup.ServeBackground(ctx)

	for i := 0; i < 2; i++ {
		select {
		case <-runs:
		case <-time.After(5 * time.Second):
			t.Fatal("service was not restarted")
		}
	}
}
