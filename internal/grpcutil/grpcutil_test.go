package grpcutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ugcengagement/pkg/discovery"
	"ugcengagement/pkg/discovery/memory"
)

func TestCredentials(t *testing.T) {
	creds, err := Credentials("", "")
	require.NoError(t, err)
	assert.Equal(t, "insecure", creds.Info().SecurityProtocol)

	_, err = Credentials(filepath.Join(t.TempDir(), "missing.crt"), "missing.key")
	assert.Error(t, err)
}

func TestServiceConnection(t *testing.T) {
	ctx := context.Background()
	registry := memory.NewRegistry(zap.NewNop())
	creds, err := Credentials("", "")
	require.NoError(t, err)

	_, err = ServiceConnection(ctx, "engagement", registry, creds)
	assert.ErrorIs(t, err, discovery.ErrNotFound)

	require.NoError(t, registry.Register(ctx, "engagement-1", "engagement", "localhost:8083"))
	conn, err := ServiceConnection(ctx, "engagement", registry, creds)
	require.NoError(t, err)
	assert.Equal(t, "localhost:8083", conn.Target())
	require.NoError(t, conn.Close())
}
