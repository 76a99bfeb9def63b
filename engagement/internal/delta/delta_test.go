package delta

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ugcengagement/engagement/pkg/model"
)

func TestReaction(t *testing.T) {
	tests := []struct {
		name string
		old  model.Reaction
		new  model.Reaction
		want model.StatsDelta
	}{
		{name: "none to like", old: model.ReactionNone, new: model.ReactionLike, want: model.StatsDelta{Likes: 1}},
		{name: "none to dislike", old: model.ReactionNone, new: model.ReactionDislike, want: model.StatsDelta{Dislikes: 1}},
		{name: "like to dislike", old: model.ReactionLike, new: model.ReactionDislike, want: model.StatsDelta{Likes: -1, Dislikes: 1}},
		{name: "dislike to like", old: model.ReactionDislike, new: model.ReactionLike, want: model.StatsDelta{Likes: 1, Dislikes: -1}},
		{name: "like cleared", old: model.ReactionLike, new: model.ReactionNone, want: model.StatsDelta{Likes: -1}},
		{name: "dislike cleared", old: model.ReactionDislike, new: model.ReactionNone, want: model.StatsDelta{Dislikes: -1}},
		{name: "like twice", old: model.ReactionLike, new: model.ReactionLike},
		{name: "dislike twice", old: model.ReactionDislike, new: model.ReactionDislike},
		{name: "clear without reaction", old: model.ReactionNone, new: model.ReactionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Reaction(tt.old, tt.new))
		})
	}
}

func TestRating(t *testing.T) {
	tests := []struct {
		name string
		old  model.Score
		new  model.Score
		want model.StatsDelta
	}{
		{name: "create", old: model.NoScore, new: 7, want: model.StatsDelta{RatingsCount: 1, RatingsSum: 7}},
		{name: "raise", old: 7, new: 9, want: model.StatsDelta{RatingsSum: 2}},
		{name: "lower", old: 9, new: 1, want: model.StatsDelta{RatingsSum: -8}},
		{name: "delete", old: 5, new: model.NoScore, want: model.StatsDelta{RatingsCount: -1, RatingsSum: -5}},
		{name: "same score", old: 4, new: 4},
		{name: "delete without rating", old: model.NoScore, new: model.NoScore},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Rating(tt.old, tt.new))
		})
	}
}

func TestVote(t *testing.T) {
	tests := []struct {
		name string
		old  model.Vote
		new  model.Vote
		want model.StatsDelta
	}{
		{name: "no vote to up", old: model.VoteNone, new: model.VoteUp, want: model.StatsDelta{VotesUp: 1}},
		{name: "no vote to down", old: model.VoteNone, new: model.VoteDown, want: model.StatsDelta{VotesDown: 1}},
		{name: "up to down", old: model.VoteUp, new: model.VoteDown, want: model.StatsDelta{VotesUp: -1, VotesDown: 1}},
		{name: "down to up", old: model.VoteDown, new: model.VoteUp, want: model.StatsDelta{VotesUp: 1, VotesDown: -1}},
		{name: "up to no vote", old: model.VoteUp, new: model.VoteNone, want: model.StatsDelta{VotesUp: -1}},
		{name: "down to no vote", old: model.VoteDown, new: model.VoteNone, want: model.StatsDelta{VotesDown: -1}},
		{name: "up to up", old: model.VoteUp, new: model.VoteUp},
		{name: "down to down", old: model.VoteDown, new: model.VoteDown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Vote(tt.old, tt.new)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTransitionsReconcile(t *testing.T) {
	// Any chain of transitions sums to the delta of its endpoints.
	chain := []model.Reaction{model.ReactionNone, model.ReactionLike, model.ReactionDislike, model.ReactionDislike, model.ReactionLike, model.ReactionNone, model.ReactionDislike}
	var sum model.StatsDelta
	for i := 1; i < len(chain); i++ {
		sum = sum.Add(Reaction(chain[i-1], chain[i]))
	}
	assert.Equal(t, Reaction(chain[0], chain[len(chain)-1]), sum)

	scores := []model.Score{model.NoScore, 3, 8, 8, model.NoScore, 10}
	var ratings model.StatsDelta
	for i := 1; i < len(scores); i++ {
		ratings = ratings.Add(Rating(scores[i-1], scores[i]))
	}
	assert.Equal(t, Rating(scores[0], scores[len(scores)-1]), ratings)
}

func TestReviewDeleted(t *testing.T) {
	got := ReviewDeleted(model.VoteTally{Up: 3, Down: 2})
	assert.Equal(t, model.StatsDelta{ReviewsCount: -1, VotesUp: -3, VotesDown: -2}, got)
	assert.Equal(t, model.StatsDelta{ReviewsCount: 1}, ReviewCreated())
	assert.True(t, ReviewCreated().Add(ReviewDeleted(model.VoteTally{})).IsZero())
}

func TestTouchesRatings(t *testing.T) {
	assert.True(t, Rating(model.NoScore, 7).TouchesRatings())
	assert.True(t, Rating(7, 9).TouchesRatings())
	assert.True(t, Rating(9, model.NoScore).TouchesRatings())
	assert.False(t, Rating(7, 7).TouchesRatings())
	assert.False(t, Reaction(model.ReactionNone, model.ReactionLike).TouchesRatings())
	assert.False(t, ReviewDeleted(model.VoteTally{Up: 2}).TouchesRatings())
}
