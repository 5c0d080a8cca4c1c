package reports

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadscope/backend/analyzer"
)

func sampleResult(url string, score int, quality string) *analyzer.AnalysisResult {
	return &analyzer.AnalysisResult{
		URL:       url,
		Timestamp: "2025-06-01T12:00:00Z",
		CompanyProfile: analyzer.CompanyProfile{
			CompanyName: "Acme",
			Industry:    "saas",
		},
		LeadScore: analyzer.LeadScore{
			Overall: score,
			Quality: quality,
			CategoryScores: map[string]int{
				"company_profile":       10,
				"social_intelligence":   10,
				"technology":            10,
				"budget":                15,
				"contact_accessibility": 5,
			},
			DealSizeEstimate:   "$5,000-$25,000",
			SalesCycleEstimate: "2-6 months",
		},
		Recommendations: []analyzer.Opportunity{
			{Priority: "high", Recommendation: "Add live chat", Category: "chatbot"},
		},
	}
}

func TestSaveReport(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	entry, err := store.SaveReport(sampleResult("https://acme.io", 60, "qualified"))
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "Acme", entry.Company)
	assert.Equal(t, "qualified", entry.Quality)
	assert.Equal(t, 60, entry.Score)

	for _, path := range []string{
		filepath.Join(dir, "json", entry.ID+".json"),
		filepath.Join(dir, "reports", entry.ID+".md"),
		filepath.Join(dir, "reports_index.json"),
	} {
		_, err := os.Stat(path)
		assert.NoError(t, err, path)
	}

	index := store.GetIndex()
	require.Len(t, index.Entries, 1)
	assert.Equal(t, entry.ID, index.Entries[0].ID)
	assert.Equal(t, 1, index.Summary["qualified"])
}

func TestIndexNewestFirst(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	first, err := store.SaveReport(sampleResult("https://one.io", 30, "nurture"))
	require.NoError(t, err)
	second, err := store.SaveReport(sampleResult("https://two.io", 85, "premium"))
	require.NoError(t, err)

	index := store.GetIndex()
	require.Len(t, index.Entries, 2)
	assert.Equal(t, second.ID, index.Entries[0].ID)
	assert.Equal(t, first.ID, index.Entries[1].ID)
	assert.Equal(t, 1, index.Summary["nurture"])
	assert.Equal(t, 1, index.Summary["premium"])
}

func TestIndexSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	entry, err := store.SaveReport(sampleResult("https://acme.io", 45, "potential"))
	require.NoError(t, err)

	reopened, err := NewStore(dir)
	require.NoError(t, err)

	index := reopened.GetIndex()
	require.Len(t, index.Entries, 1)
	assert.Equal(t, entry.ID, index.Entries[0].ID)
	assert.Equal(t, 1, index.Summary["potential"])
}

func TestGetResult(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	entry, err := store.SaveReport(sampleResult("https://acme.io", 60, "qualified"))
	require.NoError(t, err)

	loaded, err := store.GetResult(entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://acme.io", loaded.URL)
	assert.Equal(t, 60, loaded.LeadScore.Overall)

	_, err = store.GetResult("not-a-uuid")
	assert.Error(t, err)
}

func TestRenderMarkdown(t *testing.T) {
	md := RenderMarkdown(sampleResult("https://acme.io", 60, "qualified"))

	assert.Contains(t, md, "# Lead Analysis Report: Acme")
	assert.Contains(t, md, "## Lead Qualification: 60/100 (qualified)")
	assert.Contains(t, md, "| Company Profile | 10 | 25 |")
	assert.Contains(t, md, "## Recommendations")
	assert.Contains(t, md, "**Add live chat** (high priority, chatbot)")
	assert.Contains(t, md, "Estimated deal size: $5,000-$25,000")
}

func TestRenderMarkdownFallsBackToURL(t *testing.T) {
	result := sampleResult("https://anon.example", 20, "nurture")
	result.CompanyProfile.CompanyName = ""

	md := RenderMarkdown(result)
	assert.Contains(t, md, "# Lead Analysis Report: https://anon.example")
}
