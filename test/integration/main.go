package main

import (
	"context"
	"log"
	"net"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/testing/protocmp"

	"ugcengagement/engagement/pkg/testutil/grpcserver"
	"ugcengagement/gen"
	"ugcengagement/internal/grpcutil"
	"ugcengagement/pkg/discovery"
	"ugcengagement/pkg/discovery/memory"
)

const (
	engagementServiceName    = "engagement"
	engagementServiceAddress = "localhost:8083"

	filmID = "the-film"
)

func main() {
	log.Println("Starting the integration test")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	logger := zap.NewNop()
	registry := memory.NewRegistry(logger)

	log.Println("Setting up service handler and client")

	srv := startEngagementService(ctx, registry, logger)
	defer srv.GracefulStop()

	conn := waitForConnection(ctx, registry)
	defer conn.Close()
	client := gen.NewEngagementServiceClient(conn)

	as := func(userID string) context.Context {
		return metadata.AppendToOutgoingContext(ctx, "x-user-id", userID)
	}

	log.Println("Reacting to the film")
	mustChange(client.SetReaction(as("alice"), &gen.SetReactionRequest{FilmId: filmID, Value: 1}))
	mustChange(client.SetReaction(as("bob"), &gen.SetReactionRequest{FilmId: filmID, Value: 1}))
	mustChange(client.SetReaction(as("bob"), &gen.SetReactionRequest{FilmId: filmID, Value: -1}))
	resp, err := client.SetReaction(as("bob"), &gen.SetReactionRequest{FilmId: filmID, Value: -1})
	if err != nil {
		log.Fatalf("repeat reaction: %v", err)
	}
	if resp.Applied {
		log.Fatalf("repeated reaction must not be applied")
	}

	log.Println("Rating the film")
	mustChange(client.SetRating(as("alice"), &gen.SetRatingRequest{FilmId: filmID, Score: 7}))
	mustChange(client.SetRating(as("alice"), &gen.SetRatingRequest{FilmId: filmID, Score: 9}))
	mustChange(client.SetRating(as("bob"), &gen.SetRatingRequest{FilmId: filmID, Score: 5}))

	log.Println("Writing and voting on a review")
	created, err := client.CreateReview(as("alice"), &gen.CreateReviewRequest{FilmId: filmID, Text: "A quiet masterpiece"})
	if err != nil {
		log.Fatalf("create review: %v", err)
	}
	reviewID := created.Review.ReviewId
	mustChange(client.VoteReview(as("bob"), &gen.VoteRequest{ReviewId: reviewID, Value: "up"}))
	mustChange(client.VoteReview(as("carol"), &gen.VoteRequest{ReviewId: reviewID, Value: "down"}))

	if _, err := client.EditReview(as("bob"), &gen.EditReviewRequest{ReviewId: reviewID, Text: "spam"}); status.Code(err) != codes.NotFound {
		log.Fatalf("edit by non-author: got %v, want NotFound", err)
	}

	log.Println("Checking film stats")
	wantStats := &gen.FilmStats{
		FilmId:       filmID,
		Likes:        1,
		Dislikes:     1,
		RatingsCount: 2,
		RatingsSum:   14,
		AvgRating:    7,
		ReviewsCount: 1,
		VotesUp:      1,
		VotesDown:    1,
	}
	checkStats(ctx, client, wantStats)

	log.Println("Deleting the review")
	if _, err := client.DeleteReview(as("alice"), &gen.ReviewRequest{ReviewId: reviewID}); err != nil {
		log.Fatalf("delete review: %v", err)
	}
	if _, err := client.GetReview(ctx, &gen.ReviewRequest{ReviewId: reviewID}); status.Code(err) != codes.NotFound {
		log.Fatalf("get deleted review: got %v, want NotFound", err)
	}
	wantStats.ReviewsCount, wantStats.VotesUp, wantStats.VotesDown = 0, 0, 0
	checkStats(ctx, client, wantStats)

	log.Println("Clearing the remaining facts")
	mustChange(client.ClearRating(as("bob"), &gen.FilmUserRequest{FilmId: filmID}))
	mustChange(client.ClearReaction(as("bob"), &gen.FilmUserRequest{FilmId: filmID}))
	wantStats.Dislikes, wantStats.RatingsCount, wantStats.RatingsSum, wantStats.AvgRating = 0, 1, 9, 9
	checkStats(ctx, client, wantStats)

	log.Println("Bookmarking the film")
	added, err := client.AddBookmark(as("carol"), &gen.FilmUserRequest{FilmId: filmID})
	if err != nil || !added.GetCreated() {
		log.Fatalf("add bookmark: created=%v err=%v", added.GetCreated(), err)
	}
	removed, err := client.RemoveBookmark(as("carol"), &gen.FilmUserRequest{FilmId: filmID})
	if err != nil || !removed.GetDeleted() {
		log.Fatalf("remove bookmark: deleted=%v err=%v", removed.GetDeleted(), err)
	}
	checkStats(ctx, client, wantStats)

	log.Println("Integration test execution successful")
}

func mustChange(resp *gen.ChangeResponse, err error) {
	if err != nil {
		log.Fatalf("change: %v", err)
	}
	if !resp.Applied {
		log.Fatalf("change %q -> %q was not applied", resp.Previous, resp.Current)
	}
}

func checkStats(ctx context.Context, client gen.EngagementServiceClient, want *gen.FilmStats) {
	resp, err := client.GetFilmStats(ctx, &gen.FilmStatsRequest{FilmId: filmID})
	if err != nil {
		log.Fatalf("get film stats: %v", err)
	}
	if diff := cmp.Diff(want, resp.Stats, protocmp.Transform(), protocmp.IgnoreFields(&gen.FilmStats{}, "updated_at"), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		log.Fatalf("film stats mismatch (-want +got):\n%s", diff)
	}
}

func waitForConnection(ctx context.Context, registry discovery.Registry) *grpc.ClientConn {
	deadline := time.Now().Add(5 * time.Second)
	for {
		conn, err := grpcutil.ServiceConnection(ctx, engagementServiceName, registry, insecure.NewCredentials())
		if err == nil {
			return conn
		}
		if time.Now().After(deadline) {
			log.Fatalf("connect to %s: %v", engagementServiceName, err)
		}
		time.Sleep(50 * time.Millisecond)
	}
}

func startEngagementService(ctx context.Context, registry discovery.Registry, logger *zap.Logger) *grpc.Server {
	log.Println("Starting engagement service on " + engagementServiceAddress)
	h := grpcserver.NewTestEngagementGRPCServer(logger)
	l, err := net.Listen("tcp", engagementServiceAddress)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}
	srv := grpc.NewServer()
	gen.RegisterEngagementServiceServer(srv, h)
	heartbeat := &discovery.Heartbeat{
		Registry:    registry,
		InstanceID:  discovery.GenerateInstanceID(engagementServiceName),
		ServiceName: engagementServiceName,
		HostPort:    engagementServiceAddress,
		Interval:    time.Second,
		Logger:      logger,
	}
	go func() {
		if err := heartbeat.Serve(ctx); err != nil && ctx.Err() == nil {
			log.Printf("Heartbeat stopped: %v", err)
		}
	}()
	go func() {
		if err := srv.Serve(l); err != nil {
			panic(err)
		}
	}()
	return srv
}
