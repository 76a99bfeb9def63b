package memory

import (
	"context"
	"time"

	"ugcengagement/engagement/internal/repository"
	"ugcengagement/engagement/pkg/model"
)

// state holds the repository data. It is not safe for concurrent use;
// the owning Repository serializes access. While journal is non-nil
// every mutation records its inverse.
type state struct {
	reactions map[model.FilmID]map[model.UserID]model.Reaction
	ratings   map[model.FilmID]map[model.UserID]model.Score
	votes     map[model.ReviewID]map[model.UserID]model.Vote
	reviews   map[model.ReviewID]model.Review
	stats     map[model.FilmID]model.FilmStats
	bookmarks map[model.FilmID]map[model.UserID]time.Time
	journal   []func()
	now       func() time.Time
}

var _ repository.Tx = (*state)(nil)

func (s *state) record(undo func()) {
	if s.journal != nil {
		s.journal = append(s.journal, undo)
	}
}

func assign[K comparable, V comparable](facts map[K]map[model.UserID]V, subject K, user model.UserID, value V) {
	var zero V
	if value == zero {
		delete(facts[subject], user)
		if len(facts[subject]) == 0 {
			delete(facts, subject)
		}
		return
	}
	if facts[subject] == nil {
		facts[subject] = map[model.UserID]V{}
	}
	facts[subject][user] = value
}

// swap writes next and returns the previous value. The zero value of V
// removes the fact.
func swap[K comparable, V comparable](s *state, facts map[K]map[model.UserID]V, subject K, user model.UserID, next V) V {
	prev := facts[subject][user]
	if prev == next {
		return prev
	}
	assign(facts, subject, user, next)
	s.record(func() { assign(facts, subject, user, prev) })
	return prev
}

func (s *state) GetReaction(_ context.Context, filmID model.FilmID, userID model.UserID) (model.Reaction, error) {
	return s.reactions[filmID][userID], nil
}

func (s *state) SetReaction(_ context.Context, filmID model.FilmID, userID model.UserID, value model.Reaction) (model.Reaction, error) {
	return swap(s, s.reactions, filmID, userID, value), nil
}

func (s *state) ClearReaction(_ context.Context, filmID model.FilmID, userID model.UserID) (model.Reaction, error) {
	return swap(s, s.reactions, filmID, userID, model.ReactionNone), nil
}

func (s *state) GetRating(_ context.Context, filmID model.FilmID, userID model.UserID) (model.Score, error) {
	return s.ratings[filmID][userID], nil
}

func (s *state) SetRating(_ context.Context, filmID model.FilmID, userID model.UserID, score model.Score) (model.Score, error) {
	return swap(s, s.ratings, filmID, userID, score), nil
}

func (s *state) ClearRating(_ context.Context, filmID model.FilmID, userID model.UserID) (model.Score, error) {
	return swap(s, s.ratings, filmID, userID, model.NoScore), nil
}

func (s *state) GetVote(_ context.Context, reviewID model.ReviewID, userID model.UserID) (model.Vote, error) {
	return s.votes[reviewID][userID], nil
}

func (s *state) SetVote(_ context.Context, reviewID model.ReviewID, userID model.UserID, value model.Vote) (model.Vote, error) {
	if _, ok := s.reviews[reviewID]; !ok {
		return model.VoteNone, repository.ErrNotFound
	}
	return swap(s, s.votes, reviewID, userID, value), nil
}

func (s *state) ClearVote(_ context.Context, reviewID model.ReviewID, userID model.UserID) (model.Vote, error) {
	return swap(s, s.votes, reviewID, userID, model.VoteNone), nil
}

func (s *state) DeleteReviewVotes(_ context.Context, reviewID model.ReviewID) (model.VoteTally, error) {
	var tally model.VoteTally
	removed, ok := s.votes[reviewID]
	if !ok {
		return tally, nil
	}
	for _, v := range removed {
		switch v {
		case model.VoteUp:
			tally.Up++
		case model.VoteDown:
			tally.Down++
		}
	}
	delete(s.votes, reviewID)
	s.record(func() { s.votes[reviewID] = removed })
	return tally, nil
}

func (s *state) putReview(review model.Review) {
	prev, ok := s.reviews[review.ID]
	s.reviews[review.ID] = review
	s.record(func() {
		if ok {
			s.reviews[review.ID] = prev
		} else {
			delete(s.reviews, review.ID)
		}
	})
}

func (s *state) CreateReview(_ context.Context, review *model.Review) error {
	if _, ok := s.reviews[review.ID]; ok {
		return repository.ErrAlreadyExists
	}
	s.putReview(*review)
	return nil
}

func (s *state) GetReview(_ context.Context, reviewID model.ReviewID) (*model.Review, error) {
	review, ok := s.reviews[reviewID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &review, nil
}

func (s *state) UpdateReviewText(_ context.Context, reviewID model.ReviewID, authorID model.UserID, text string) (*model.Review, error) {
	review, ok := s.reviews[reviewID]
	if !ok || review.AuthorID != authorID {
		return nil, repository.ErrNotFound
	}
	review.Text = text
	review.UpdatedAt = s.now()
	s.putReview(review)
	return &review, nil
}

func (s *state) DeleteReview(_ context.Context, reviewID model.ReviewID, authorID model.UserID) (*model.Review, error) {
	review, ok := s.reviews[reviewID]
	if !ok || review.AuthorID != authorID {
		return nil, repository.ErrNotFound
	}
	delete(s.reviews, reviewID)
	s.record(func() { s.reviews[reviewID] = review })
	return &review, nil
}

func (s *state) ApplyReviewVotes(_ context.Context, reviewID model.ReviewID, delta model.StatsDelta) (*model.Review, error) {
	review, ok := s.reviews[reviewID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	review.VotesUp += delta.VotesUp
	review.VotesDown += delta.VotesDown
	s.putReview(review)
	return &review, nil
}

func (s *state) putStats(stats model.FilmStats) {
	prev, ok := s.stats[stats.FilmID]
	s.stats[stats.FilmID] = stats
	s.record(func() {
		if ok {
			s.stats[stats.FilmID] = prev
		} else {
			delete(s.stats, stats.FilmID)
		}
	})
}

func (s *state) ensure(filmID model.FilmID) model.FilmStats {
	stats, ok := s.stats[filmID]
	if !ok {
		now := s.now()
		stats = model.FilmStats{FilmID: filmID, CreatedAt: now, UpdatedAt: now}
		s.putStats(stats)
	}
	return stats
}

func (s *state) EnsureStats(_ context.Context, filmID model.FilmID) (*model.FilmStats, error) {
	stats := s.ensure(filmID)
	return &stats, nil
}

func (s *state) ApplyStatsDelta(_ context.Context, filmID model.FilmID, delta model.StatsDelta) (*model.FilmStats, error) {
	stats := s.ensure(filmID)
	stats.Apply(delta)
	stats.UpdatedAt = s.now()
	s.putStats(stats)
	return &stats, nil
}

func (s *state) RecomputeAverage(_ context.Context, filmID model.FilmID) (*model.FilmStats, error) {
	stats := s.ensure(filmID)
	stats.AvgRating = stats.Average()
	stats.UpdatedAt = s.now()
	s.putStats(stats)
	return &stats, nil
}

func (s *state) AddBookmark(_ context.Context, filmID model.FilmID, userID model.UserID) (bool, error) {
	if _, ok := s.bookmarks[filmID][userID]; ok {
		return false, nil
	}
	swap(s, s.bookmarks, filmID, userID, s.now())
	return true, nil
}

func (s *state) RemoveBookmark(_ context.Context, filmID model.FilmID, userID model.UserID) (bool, error) {
	prev := swap(s, s.bookmarks, filmID, userID, time.Time{})
	return !prev.IsZero(), nil
}
