package repository

import (
	"testing"

	"interviewerbot/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// The stats pipeline groups with $avg, which yields BSON doubles even when
// every input is an int. TopicStats must decode those without truncation.
func TestTopicStats_DecodesFractionalAverages(t *testing.T) {
	doc, err := bson.Marshal(bson.M{
		"_id":           "Java",
		"count":         10,
		"avgTimesAsked": 1.5,
		"avgScore":      62.4,
	})
	require.NoError(t, err)

	var stats model.TopicStats
	require.NoError(t, bson.Unmarshal(doc, &stats))

	assert.Equal(t, "Java", stats.Topic)
	assert.Equal(t, 10, stats.Count)
	assert.InDelta(t, 1.5, stats.AvgTimesAsked, 1e-9)
	assert.InDelta(t, 62.4, stats.AvgScore, 1e-9)
}

func TestTopicStats_DecodesIntegralAverages(t *testing.T) {
	doc, err := bson.Marshal(bson.M{
		"_id":           "Python",
		"count":         3,
		"avgTimesAsked": int32(2),
		"avgScore":      float64(70),
	})
	require.NoError(t, err)

	var stats model.TopicStats
	require.NoError(t, bson.Unmarshal(doc, &stats))

	assert.InDelta(t, 2.0, stats.AvgTimesAsked, 1e-9)
	assert.InDelta(t, 70.0, stats.AvgScore, 1e-9)
}
