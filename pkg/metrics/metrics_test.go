package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/uber-go/tally/v6"
)

func TestEndpointMetrics(t *testing.T) {
	scope := tally.NewTestScope("", nil)
	m := NewEndpointMetrics(scope, "SetRating")
	m.Calls.Inc(1)
	m.Calls.Inc(1)
	m.Successes.Inc(1)
	m.Failed("invalid_argument")

	counters := scope.Snapshot().Counters()
	tags := "component=handler,endpoint=SetRating"
	assert.Equal(t, int64(2), counters["calls+"+tags].Value())
	assert.Equal(t, int64(1), counters["success+"+tags].Value())
	assert.Equal(t, int64(1), counters["error+"+tags+",error=invalid_argument"].Value())
}
