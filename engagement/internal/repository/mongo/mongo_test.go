package mongo

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ugcengagement/engagement/configs"
	"ugcengagement/engagement/internal/repository"
	"ugcengagement/engagement/pkg/testutil"
)

// TestRepository runs against a replica set named by ENGAGEMENT_TEST_MONGO_URI.
func TestRepository(t *testing.T) {
	uri := os.Getenv("ENGAGEMENT_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("ENGAGEMENT_TEST_MONGO_URI is not set")
	}
	testutil.RunStoreSuite(t, func(t *testing.T) repository.Store {
		name := "engagement_test_" + uuid.NewString()[:8]
		r, err := New(context.Background(), configs.MongoConfig{URI: uri, Name: name}, zap.NewNop())
		require.NoError(t, err)
		t.Cleanup(func() {
			_ = r.client.Database(name).Drop(context.Background())
		})
		return r
	})
}
