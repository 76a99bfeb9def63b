package memory

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ugcengagement/pkg/discovery"
)

func TestRegistry(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry(zap.NewNop())
	now := time.Unix(1700000000, 0)
	r.now = func() time.Time { return now }

	_, err := r.ServiceAddresses(ctx, "engagement")
	assert.ErrorIs(t, err, discovery.ErrNotFound)

	require.NoError(t, r.Register(ctx, "a", "engagement", "host-a:8083"))
	require.NoError(t, r.Register(ctx, "b", "engagement", "host-b:8083"))
	addrs, err := r.ServiceAddresses(ctx, "engagement")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"host-a:8083", "host-b:8083"}, addrs)

	now = now.Add(4 * time.Second)
	require.NoError(t, r.ReportHealthyState("a", "engagement"))
	now = now.Add(3 * time.Second)
	addrs, err = r.ServiceAddresses(ctx, "engagement")
	require.NoError(t, err)
	assert.Equal(t, []string{"host-a:8083"}, addrs)

	require.NoError(t, r.Deregister(ctx, "a", "engagement"))
	_, err = r.ServiceAddresses(ctx, "engagement")
	assert.ErrorIs(t, err, discovery.ErrNotFound)

	assert.Error(t, r.ReportHealthyState("a", "engagement"))
	assert.Error(t, r.ReportHealthyState("a", "unknown"))
}

func TestHeartbeat(t *testing.T) {
	r := NewRegistry(zap.NewNop())
	id := discovery.GenerateInstanceID("engagement")
	assert.True(t, strings.HasPrefix(id, "engagement-"))

	ctx, cancel := context.WithCancel(context.Background())
	h := &discovery.Heartbeat{
		Registry:    r,
		InstanceID:  id,
		ServiceName: "engagement",
		HostPort:    "localhost:8083",
		Interval:    10 * time.Millisecond,
		Logger:      zap.NewNop(),
	}
	done := make(chan error, 1)
	go func() { done <- h.Serve(ctx) }()

	require.Eventually(t, func() bool {
		addrs, err := r.ServiceAddresses(context.Background(), "engagement")
		return err == nil && len(addrs) == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	err := <-done
	assert.True(t, errors.Is(err, context.Canceled))
	_, err = r.ServiceAddresses(context.Background(), "engagement")
	assert.ErrorIs(t, err, discovery.ErrNotFound)
}
