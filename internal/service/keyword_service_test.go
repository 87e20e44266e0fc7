package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract_TechnologyVocabulary(t *testing.T) {
	e := NewKeywordExtractor()

	keywords := e.Extract("I deployed the service with Docker on Kubernetes and cached results in Redis")

	assert.Contains(t, keywords, "docker")
	assert.Contains(t, keywords, "kubernetes")
	assert.Contains(t, keywords, "redis")
}

func TestExtract_CamelCaseAndSuffixes(t *testing.T) {
	e := NewKeywordExtractor()

	keywords := e.Extract("We hit a ConcurrentModificationException during serialization of the payload")

	assert.Contains(t, keywords, "concurrentmodificationexception")
	assert.Contains(t, keywords, "serialization")
}

func TestExtract_DedupAndCap(t *testing.T) {
	e := NewKeywordExtractor()

	keywords := e.Extract("docker docker docker Docker and more docker")
	assert.Equal(t, []string{"docker"}, keywords)

	long := "java python javascript react sql kafka redis docker kubernetes terraform ansible jenkins"
	keywords = e.Extract(long)
	assert.Len(t, keywords, 10)
}

func TestExtract_EmptyAndStopwords(t *testing.T) {
	e := NewKeywordExtractor()

	assert.Empty(t, e.Extract("   "))
	assert.Empty(t, e.Extract("the code was basically just fine"))
}

func TestBestKeyword(t *testing.T) {
	e := NewKeywordExtractor()

	assert.Equal(t, "kubernetes", e.BestKeyword([]string{"java", "kubernetes", "sql"}))
	// Ties keep the first occurrence.
	assert.Equal(t, "redis", e.BestKeyword([]string{"redis", "kafka"}))
	assert.Equal(t, "", e.BestKeyword(nil))
}

func TestFindFollowUps_Capped(t *testing.T) {
	e := NewKeywordExtractor()

	followUps := e.FindFollowUps(`I built "payment gateway" and "rate limiter" with docker, redis, kafka and terraform`)
	assert.Len(t, followUps, 3)
	assert.Equal(t, "quoted", followUps[0].Type)
	assert.Equal(t, "payment gateway", followUps[0].Term)
}
