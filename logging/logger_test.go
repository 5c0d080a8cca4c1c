package logging

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStatistics(dir string) *Statistics {
	return &Statistics{
		UniqueVisitors: make(map[string]time.Time),
		PopularURLs:    make(map[string]int),
		QualityCounts:  make(map[string]int),
		dataDir:        dir,
	}
}

func TestTrackAnalysis(t *testing.T) {
	s := newTestStatistics(t.TempDir())

	s.TrackAnalysis("https://acme.io/pricing?ref=x", "qualified", 120, false)
	s.TrackAnalysis("https://acme.io", "premium", 80, false)
	s.TrackAnalysis("https://broken.example", "", 30, true)

	assert.Equal(t, 3, s.AnalysisRequests)
	assert.Equal(t, 1, s.ErrorCount)
	assert.InDelta(t, 33.33, s.GetErrorRate(), 0.1)
	assert.InDelta(t, (120.0+80.0+30.0)/3.0, s.AverageLoadTime, 0.001)

	breakdown := s.GetQualityBreakdown()
	assert.Equal(t, 1, breakdown["qualified"])
	assert.Equal(t, 1, breakdown["premium"])
	assert.NotContains(t, breakdown, "")

	// Query strings are stripped from tracked URLs.
	urls := s.GetPopularURLs(10)
	assert.Equal(t, 1, urls["https://acme.io/pricing"])
	assert.Equal(t, 1, urls["https://acme.io"])
}

func TestCleanURLFiltering(t *testing.T) {
	assert.Equal(t, "", cleanURL("http://localhost:8082/api/analyze"))
	assert.Equal(t, "", cleanURL("https://acme.io/api/analyze"))
	assert.Equal(t, "https://acme.io/about", cleanURL("https://acme.io/about/"))
	assert.Equal(t, "https://acme.io", cleanURL("https://acme.io/"))
}

func TestTrackVisitor(t *testing.T) {
	s := newTestStatistics(t.TempDir())

	s.TrackVisitor("198.51.100.1")
	s.TrackVisitor("198.51.100.2")
	s.TrackVisitor("198.51.100.1")

	assert.Equal(t, 2, s.GetUniqueVisitorsCount())

	// Visitors older than a day drop out of the 24h count.
	s.UniqueVisitors["198.51.100.3"] = time.Now().Add(-48 * time.Hour)
	assert.Equal(t, 2, s.GetUniqueVisitorsCount())
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()

	s := newTestStatistics(dir)
	s.TrackVisitor("198.51.100.1")
	s.TrackAnalysis("https://acme.io", "potential", 100, false)
	require.NoError(t, s.Save())

	loaded := newTestStatistics(dir)
	require.NoError(t, loaded.Load())

	assert.Equal(t, 1, loaded.AnalysisRequests)
	assert.Equal(t, 1, loaded.QualityCounts["potential"])
	assert.Equal(t, 1, loaded.PopularURLs["https://acme.io"])
	assert.Contains(t, loaded.UniqueVisitors, "198.51.100.1")
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	s := newTestStatistics(t.TempDir())
	assert.NoError(t, s.Load())
}

func TestGetStatisticsVisibility(t *testing.T) {
	s := newTestStatistics(t.TempDir())
	s.TrackAnalysis("https://acme.io", "qualified", 50, false)

	t.Run("production hides url data", func(t *testing.T) {
		t.Setenv(ENV_DEV_MODE, "false")

		out := s.GetStatistics()
		assert.Contains(t, out, "totalRequests")
		assert.NotContains(t, out, "popularUrls")
		assert.NotContains(t, out, "qualityBreakdown")
	})

	t.Run("dev mode shows everything", func(t *testing.T) {
		t.Setenv(ENV_DEV_MODE, "true")

		out := s.GetStatistics()
		assert.Contains(t, out, "popularUrls")
		assert.Contains(t, out, "qualityBreakdown")
		assert.Equal(t, 1, out["totalRequests"])
	})
}
