package model

import (
	"fmt"
	"time"
)

// FilmStats defines the engagement aggregate of a film.
type FilmStats struct {
	FilmID       FilmID    `json:"film_id"`
	Likes        int64     `json:"likes"`
	Dislikes     int64     `json:"dislikes"`
	RatingsCount int64     `json:"ratings_count"`
	RatingsSum   int64     `json:"ratings_sum"`
	AvgRating    float64   `json:"avg_rating"`
	ReviewsCount int64     `json:"reviews_count"`
	VotesUp      int64     `json:"votes_up"`
	VotesDown    int64     `json:"votes_down"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Average returns the average rating derived from the counters.
func (s *FilmStats) Average() float64 {
	if s.RatingsCount <= 0 {
		return 0
	}
	return float64(s.RatingsSum) / float64(s.RatingsCount)
}

// Apply adds the delta to the counters.
func (s *FilmStats) Apply(d StatsDelta) {
	s.Likes += d.Likes
	s.Dislikes += d.Dislikes
	s.RatingsCount += d.RatingsCount
	s.RatingsSum += d.RatingsSum
	s.ReviewsCount += d.ReviewsCount
	s.VotesUp += d.VotesUp
	s.VotesDown += d.VotesDown
}

func (s *FilmStats) String() string {
	return fmt.Sprintf("FilmStats{filmId=%s, likes=%d, dislikes=%d, ratings=%d/%d, avg=%.2f, reviews=%d, votes=%d/%d}",
		s.FilmID, s.Likes, s.Dislikes, s.RatingsCount, s.RatingsSum, s.AvgRating, s.ReviewsCount, s.VotesUp, s.VotesDown)
}

// StatsDelta defines signed increments of the film stats counters.
type StatsDelta struct {
	Likes        int64
	Dislikes     int64
	RatingsCount int64
	RatingsSum   int64
	ReviewsCount int64
	VotesUp      int64
	VotesDown    int64
}

// IsZero reports whether applying d changes nothing.
func (d StatsDelta) IsZero() bool {
	return d == StatsDelta{}
}

// Add returns the sum of two deltas.
func (d StatsDelta) Add(o StatsDelta) StatsDelta {
	return StatsDelta{
		Likes:        d.Likes + o.Likes,
		Dislikes:     d.Dislikes + o.Dislikes,
		RatingsCount: d.RatingsCount + o.RatingsCount,
		RatingsSum:   d.RatingsSum + o.RatingsSum,
		ReviewsCount: d.ReviewsCount + o.ReviewsCount,
		VotesUp:      d.VotesUp + o.VotesUp,
		VotesDown:    d.VotesDown + o.VotesDown,
	}
}

// TouchesRatings reports whether d changes the rating counters.
func (d StatsDelta) TouchesRatings() bool {
	return d.RatingsCount != 0 || d.RatingsSum != 0
}

// Fields returns the non-zero increments keyed by column name.
func (d StatsDelta) Fields() map[string]int64 {
	res := map[string]int64{}
	for name, v := range map[string]int64{
		"likes":         d.Likes,
		"dislikes":      d.Dislikes,
		"ratings_count": d.RatingsCount,
		"ratings_sum":   d.RatingsSum,
		"reviews_count": d.ReviewsCount,
		"votes_up":      d.VotesUp,
		"votes_down":    d.VotesDown,
	} {
		if v != 0 {
			res[name] = v
		}
	}
	return res
}

// CounterFields lists the incrementable columns of the film stats.
var CounterFields = []string{"likes", "dislikes", "ratings_count", "ratings_sum", "reviews_count", "votes_up", "votes_down"}
