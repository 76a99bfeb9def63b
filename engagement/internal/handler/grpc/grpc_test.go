package grpc

import (
	"context"
	"net"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber-go/tally/v6"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/reflection"
	reflectionpb "google.golang.org/grpc/reflection/grpc_reflection_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/testing/protocmp"
	"google.golang.org/protobuf/types/descriptorpb"

	"ugcengagement/engagement/internal/controller/engagement"
	"ugcengagement/engagement/internal/identity"
	"ugcengagement/engagement/internal/repository/memory"
	"ugcengagement/gen"
)

func newClient(t *testing.T, resolver *identity.Resolver) (gen.EngagementServiceClient, tally.TestScope) {
	t.Helper()
	scope := tally.NewTestScope("", nil)
	ctrl := engagement.New(memory.New(zap.NewNop()), nil, scope, zap.NewNop())

	srv := grpc.NewServer()
	gen.RegisterEngagementServiceServer(srv, New(ctrl, resolver, scope, zap.NewNop()))
	return gen.NewEngagementServiceClient(dial(t, srv)), scope
}

func dial(t *testing.T, srv *grpc.Server) *grpc.ClientConn {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func code(err error) codes.Code {
	return status.Code(err)
}

func assertMessage(t *testing.T, want, got proto.Message) {
	t.Helper()
	if diff := cmp.Diff(want, got, protocmp.Transform()); diff != "" {
		t.Errorf("unexpected message (-want +got):\n%s", diff)
	}
}

func TestReactionsAndRatings(t *testing.T) {
	client, _ := newClient(t, identity.NewResolver(""))
	ctx := context.Background()

	resp, err := client.SetReaction(ctx, &gen.SetReactionRequest{FilmId: "film", UserId: "u1", Value: 1})
	require.NoError(t, err)
	assertMessage(t, &gen.ChangeResponse{Previous: "", Current: "1", Applied: true}, resp)

	resp, err = client.SetReaction(ctx, &gen.SetReactionRequest{FilmId: "film", UserId: "u1", Value: 1})
	require.NoError(t, err)
	assert.False(t, resp.Applied)

	reaction, err := client.GetReaction(ctx, &gen.FilmUserRequest{FilmId: "film", UserId: "u1"})
	require.NoError(t, err)
	assert.Equal(t, int32(1), reaction.Value)

	_, err = client.SetRating(ctx, &gen.SetRatingRequest{FilmId: "film", UserId: "u1", Score: 8})
	require.NoError(t, err)
	_, err = client.SetRating(ctx, &gen.SetRatingRequest{FilmId: "film", UserId: "u2", Score: 6})
	require.NoError(t, err)
	resp, err = client.ClearRating(ctx, &gen.FilmUserRequest{FilmId: "film", UserId: "u2"})
	require.NoError(t, err)
	assertMessage(t, &gen.ChangeResponse{Previous: "6", Current: "", Applied: true}, resp)

	stats, err := client.GetFilmStats(ctx, &gen.FilmStatsRequest{FilmId: "film"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Stats.Likes)
	assert.Equal(t, int64(1), stats.Stats.RatingsCount)
	assert.InDelta(t, 8.0, stats.Stats.AvgRating, 1e-9)

	_, err = client.SetRating(ctx, &gen.SetRatingRequest{FilmId: "film", UserId: "u1", Score: 11})
	assert.Equal(t, codes.InvalidArgument, code(err))
	_, err = client.SetReaction(ctx, &gen.SetReactionRequest{FilmId: "film", Value: 1})
	assert.Equal(t, codes.InvalidArgument, code(err))
}

func TestReviews(t *testing.T) {
	client, scope := newClient(t, identity.NewResolver(""))
	ctx := context.Background()

	created, err := client.CreateReview(ctx, &gen.CreateReviewRequest{FilmId: "film", UserId: "author", Text: "great"})
	require.NoError(t, err)
	id := created.Review.ReviewId
	assert.NotEmpty(t, id)

	// Identity may also travel as metadata.
	voterCtx := metadata.AppendToOutgoingContext(ctx, "x-user-id", "voter")
	vote, err := client.VoteReview(voterCtx, &gen.VoteRequest{ReviewId: id, Value: "up"})
	require.NoError(t, err)
	assertMessage(t, &gen.ChangeResponse{Previous: "", Current: "up", Applied: true}, vote)

	got, err := client.GetVote(voterCtx, &gen.VoteRequest{ReviewId: id})
	require.NoError(t, err)
	assert.Equal(t, "up", got.Value)

	review, err := client.GetReview(ctx, &gen.ReviewRequest{ReviewId: id})
	require.NoError(t, err)
	assert.Equal(t, int64(1), review.Review.Up)

	_, err = client.EditReview(ctx, &gen.EditReviewRequest{ReviewId: id, UserId: "intruder", Text: "spam"})
	assert.Equal(t, codes.NotFound, code(err))
	_, err = client.DeleteReview(ctx, &gen.ReviewRequest{ReviewId: id, UserId: "intruder"})
	assert.Equal(t, codes.NotFound, code(err))

	edited, err := client.EditReview(ctx, &gen.EditReviewRequest{ReviewId: id, UserId: "author", Text: "even better"})
	require.NoError(t, err)
	assert.Equal(t, "even better", edited.Review.Text)

	_, err = client.DeleteReview(ctx, &gen.ReviewRequest{ReviewId: id, UserId: "author"})
	require.NoError(t, err)
	stats, err := client.GetFilmStats(ctx, &gen.FilmStatsRequest{FilmId: "film"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.Stats.ReviewsCount)
	assert.Equal(t, int64(0), stats.Stats.VotesUp)

	_, err = client.GetReview(ctx, &gen.ReviewRequest{ReviewId: id})
	assert.Equal(t, codes.NotFound, code(err))
	_, err = client.UnvoteReview(voterCtx, &gen.VoteRequest{ReviewId: id})
	assert.Equal(t, codes.NotFound, code(err))

	counters := scope.Snapshot().Counters()
	assert.Equal(t, int64(1), counters["error+component=handler,endpoint=EditReview,error=not_found"].Value())
	assert.Equal(t, int64(2), counters["success+component=handler,endpoint=EditReview"].Value()+counters["success+component=handler,endpoint=DeleteReview"].Value())
}

func TestTokenIdentity(t *testing.T) {
	const secret = "test-secret"
	client, _ := newClient(t, identity.NewResolver(secret))
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "u1"}).SignedString([]byte(secret))
	require.NoError(t, err)

	ctx := metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+token)
	resp, err := client.SetReaction(ctx, &gen.SetReactionRequest{FilmId: "film", Value: -1})
	require.NoError(t, err)
	assert.True(t, resp.Applied)

	reaction, err := client.GetReaction(ctx, &gen.FilmUserRequest{FilmId: "film"})
	require.NoError(t, err)
	assert.Equal(t, "u1", reaction.UserId)
	assert.Equal(t, int32(-1), reaction.Value)

	_, err = client.SetReaction(ctx, &gen.SetReactionRequest{FilmId: "film", UserId: "u2", Value: 1})
	assert.Equal(t, codes.Unauthenticated, code(err))
	_, err = client.SetReaction(context.Background(), &gen.SetReactionRequest{FilmId: "film", UserId: "u1", Value: 1})
	assert.Equal(t, codes.InvalidArgument, code(err))
}

func TestBookmarks(t *testing.T) {
	client, _ := newClient(t, identity.NewResolver(""))
	ctx := context.Background()

	added, err := client.AddBookmark(ctx, &gen.FilmUserRequest{FilmId: "film", UserId: "u1"})
	require.NoError(t, err)
	assertMessage(t, &gen.AddBookmarkResponse{Created: true}, added)
	added, err = client.AddBookmark(ctx, &gen.FilmUserRequest{FilmId: "film", UserId: "u1"})
	require.NoError(t, err)
	assert.False(t, added.GetCreated())

	removed, err := client.RemoveBookmark(ctx, &gen.FilmUserRequest{FilmId: "film", UserId: "u1"})
	require.NoError(t, err)
	assertMessage(t, &gen.RemoveBookmarkResponse{Deleted: true}, removed)
	removed, err = client.RemoveBookmark(ctx, &gen.FilmUserRequest{FilmId: "film", UserId: "u1"})
	require.NoError(t, err)
	assert.False(t, removed.GetDeleted())

	_, err = client.AddBookmark(ctx, &gen.FilmUserRequest{FilmId: "film"})
	assert.Equal(t, codes.InvalidArgument, code(err))
}

func TestReflectionDescribesService(t *testing.T) {
	ctrl := engagement.New(memory.New(zap.NewNop()), nil, tally.NoopScope, zap.NewNop())
	srv := grpc.NewServer()
	gen.RegisterEngagementServiceServer(srv, New(ctrl, identity.NewResolver(""), tally.NoopScope, zap.NewNop()))
	reflection.Register(srv)
	conn := dial(t, srv)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stream, err := reflectionpb.NewServerReflectionClient(conn).ServerReflectionInfo(ctx)
	require.NoError(t, err)
	require.NoError(t, stream.Send(&reflectionpb.ServerReflectionRequest{
		MessageRequest: &reflectionpb.ServerReflectionRequest_FileContainingSymbol{
			FileContainingSymbol: "engagement.v1.EngagementService",
		},
	}))
	resp, err := stream.Recv()
	require.NoError(t, err)

	files := resp.GetFileDescriptorResponse().GetFileDescriptorProto()
	require.Len(t, files, 1)
	var fd descriptorpb.FileDescriptorProto
	require.NoError(t, proto.Unmarshal(files[0], &fd))
	assert.Equal(t, "engagement.proto", fd.GetName())
	assert.Equal(t, "engagement.v1", fd.GetPackage())
	require.Len(t, fd.GetService(), 1)

	var methods []string
	for _, m := range fd.GetService()[0].GetMethod() {
		methods = append(methods, m.GetName())
	}
	assert.Len(t, methods, len(gen.EngagementService_ServiceDesc.Methods))
	assert.Contains(t, methods, "AddBookmark")
	assert.Contains(t, methods, "GetFilmStats")
}

func TestMessagesUseProtoWireFormat(t *testing.T) {
	in := &gen.FilmStatsResponse{Stats: &gen.FilmStats{FilmId: "film", Likes: 2, AvgRating: 7.5}}
	b, err := proto.Marshal(in)
	require.NoError(t, err)
	assert.NotEqual(t, byte('{'), b[0])

	out := &gen.FilmStatsResponse{}
	require.NoError(t, proto.Unmarshal(b, out))
	assertMessage(t, in, out)
	assert.Equal(t, "film", out.GetStats().GetFilmId())
}
