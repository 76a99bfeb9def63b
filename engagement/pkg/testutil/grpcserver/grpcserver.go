// Package grpcserver starts engagement gRPC handlers for end-to-end tests.
package grpcserver

import (
	"github.com/uber-go/tally/v6"
	"go.uber.org/zap"

	"ugcengagement/engagement/internal/controller/engagement"
	"ugcengagement/engagement/internal/handler/grpc"
	"ugcengagement/engagement/internal/identity"
	"ugcengagement/engagement/internal/repository/memory"
	"ugcengagement/gen"
)

// NewTestEngagementGRPCServer returns an engagement gRPC handler backed by
// an in-memory store. Callers identify themselves with the user id header.
func NewTestEngagementGRPCServer(logger *zap.Logger) gen.EngagementServiceServer {
	ctrl := engagement.New(memory.New(logger), nil, tally.NoopScope, logger)
	return grpc.New(ctrl, identity.NewResolver(""), tally.NoopScope, logger)
}
