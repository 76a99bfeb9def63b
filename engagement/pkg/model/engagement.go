package model

import (
	"fmt"
	"time"
)

// FilmID defines a film identifier.
type FilmID string

// UserID defines a user identifier. It is supplied by the caller
// and is already authenticated.
type UserID string

// ReviewID defines a review identifier.
type ReviewID string

// Reaction defines a user's like state for a film.
type Reaction int

// Existing reactions. ReactionNone means the user has no reaction.
const (
	ReactionNone    = Reaction(0)
	ReactionLike    = Reaction(1)
	ReactionDislike = Reaction(-1)
)

// Valid reports whether r can be stored as a fact.
func (r Reaction) Valid() bool {
	return r == ReactionLike || r == ReactionDislike
}

func (r Reaction) String() string {
	switch r {
	case ReactionLike:
		return "like"
	case ReactionDislike:
		return "dislike"
	case ReactionNone:
		return "none"
	}
	return fmt.Sprintf("Reaction(%d)", int(r))
}

// Score defines a user's rating of a film.
type Score int

// Score bounds. NoScore means the user has not rated the film.
const (
	NoScore  = Score(0)
	MinScore = Score(1)
	MaxScore = Score(10)
)

// Valid reports whether s can be stored as a fact.
func (s Score) Valid() bool {
	return s >= MinScore && s <= MaxScore
}

// Vote defines a user's vote on a review.
type Vote string

// Existing votes. VoteNone means the user has not voted.
const (
	VoteNone = Vote("")
	VoteUp   = Vote("up")
	VoteDown = Vote("down")
)

// Valid reports whether v can be stored as a fact.
func (v Vote) Valid() bool {
	return v == VoteUp || v == VoteDown
}

// Review defines a user review of a film together with its vote counters.
type Review struct {
	ID        ReviewID  `json:"review_id"`
	FilmID    FilmID    `json:"film_id"`
	AuthorID  UserID    `json:"user_id"`
	Text      string    `json:"text"`
	VotesUp   int64     `json:"up"`
	VotesDown int64     `json:"down"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Review) String() string {
	return fmt.Sprintf("Review{id=%s, filmId=%s, authorId=%s, up=%d, down=%d}", r.ID, r.FilmID, r.AuthorID, r.VotesUp, r.VotesDown)
}

// VoteTally counts vote facts by value.
type VoteTally struct {
	Up   int64
	Down int64
}

// Change describes a fact transition. Current equals Previous when
// the request did not change anything.
type Change[T comparable] struct {
	Previous T `json:"previous"`
	Current  T `json:"current"`
}

// Applied reports whether the fact was actually changed.
func (c Change[T]) Applied() bool {
	return c.Previous != c.Current
}
