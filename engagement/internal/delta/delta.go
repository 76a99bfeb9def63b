// Package delta translates fact transitions into signed film stats increments.
//
// Every function is total over its domain, including the absent value,
// and returns a zero delta when the previous and next facts are equal.
package delta

import "ugcengagement/engagement/pkg/model"

// Reaction returns the likes/dislikes increments for a reaction transition.
func Reaction(prev, next model.Reaction) model.StatsDelta {
	var d model.StatsDelta
	if prev == next {
		return d
	}
	switch prev {
	case model.ReactionLike:
		d.Likes--
	case model.ReactionDislike:
		d.Dislikes--
	}
	switch next {
	case model.ReactionLike:
		d.Likes++
	case model.ReactionDislike:
		d.Dislikes++
	}
	return d
}

// Rating returns the ratings count/sum increments for a rating transition.
func Rating(prev, next model.Score) model.StatsDelta {
	var d model.StatsDelta
	switch {
	case prev == next:
	case prev == model.NoScore:
		d.RatingsCount = 1
		d.RatingsSum = int64(next)
	case next == model.NoScore:
		d.RatingsCount = -1
		d.RatingsSum = -int64(prev)
	default:
		d.RatingsSum = int64(next) - int64(prev)
	}
	return d
}

// Vote returns the votes up/down increments for a vote transition.
func Vote(prev, next model.Vote) model.StatsDelta {
	var d model.StatsDelta
	if prev == next {
		return d
	}
	switch prev {
	case model.VoteUp:
		d.VotesUp--
	case model.VoteDown:
		d.VotesDown--
	}
	switch next {
	case model.VoteUp:
		d.VotesUp++
	case model.VoteDown:
		d.VotesDown++
	}
	return d
}

// ReviewCreated returns the increments for a new review.
func ReviewCreated() model.StatsDelta {
	return model.StatsDelta{ReviewsCount: 1}
}

// ReviewDeleted returns the increments for a deleted review whose
// removed vote facts are summarized by tally.
func ReviewDeleted(tally model.VoteTally) model.StatsDelta {
	return model.StatsDelta{
		ReviewsCount: -1,
		VotesUp:      -tally.Up,
		VotesDown:    -tally.Down,
	}
}
