package analyzer

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDoc(t *testing.T, html string) *Document {
	t.Helper()
	doc, err := NewDocument(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"bare domain gets https", "example.com", "https://example.com", false},
		{"http scheme preserved", "http://example.com/path", "http://example.com/path", false},
		{"whitespace trimmed", "  https://example.com  ", "https://example.com", false},
		{"empty input", "", "", true},
		{"whitespace only", "   ", "", true},
		{"localhost rejected", "localhost:8080", "", true},
		{"loopback rejected", "http://127.0.0.1/page", "", true},
		{"unspecified host rejected", "0.0.0.0", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeURL(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFetchDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><head><title>Fetched Page</title></head><body><p>hello</p></body></html>`)
	}))
	defer srv.Close()

	a := New()
	doc, err := a.fetchDocument(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "Fetched Page", doc.Find("title").Text())
	assert.Contains(t, doc.Text, "hello")
}

func TestFetchDocumentBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := New()
	_, err := a.fetchDocument(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 500")
}

func TestAnalyzeRejectsInvalidURL(t *testing.T) {
	a := New()

	_, err := a.Analyze("")
	assert.Error(t, err)

	_, err = a.Analyze("http://127.0.0.1:1/page")
	assert.Error(t, err)
}

func TestAnalyzeBatchValidation(t *testing.T) {
	a := New()
	ctx := context.Background()

	_, err := a.AnalyzeBatch(ctx, nil)
	assert.Error(t, err)

	urls := []string{"a.com", "b.com", "c.com", "d.com", "e.com", "f.com"}
	_, err = a.AnalyzeBatch(ctx, urls)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds maximum")
}

func TestAnalyzeBatchRecordsFailures(t *testing.T) {
	a := New()

	// Both URLs fail validation before any network call happens.
	entries, err := a.AnalyzeBatch(context.Background(), []string{"", "localhost"})
	require.NoError(t, err)
	require.Len(t, entries, 2)

	for _, entry := range entries {
		assert.False(t, entry.Success)
		assert.NotEmpty(t, entry.Error)
		assert.Nil(t, entry.Result)
	}
}

const pipelineFixture = `<!DOCTYPE html>
<html><head>
<title>Acme Cloud Platform - Sales Automation</title>
<meta name="viewport" content="width=device-width, initial-scale=1">
<meta name="description" content="Acme is a cloud software platform for sales automation.">
<script src="https://connect.facebook.net/en_US/fbevents.js"></script>
<script src="https://www.googletagmanager.com/gtm.js?id=GTM-X"></script>
<script src="https://js.hs-scripts.com/123.js"></script>
<script src="https://assets.calendly.com/assets/external/widget.min.js"></script>
</head><body>
<h1>Sales automation for growing teams</h1>
<h2>Features</h2>
<h2>Pricing and subscription plans</h2>
<div id="intercom-container"></div>
<a href="/contact">Contact Us</a>
<a href="https://facebook.com/pages/acme">Facebook</a>
<a href="https://linkedin.com/company/acme">LinkedIn</a>
<a href="https://twitter.com/acme">Twitter</a>
<p>Call (555) 123-4567 or write to sales@acme.io. 120 Main Street, Suite 9, Austin, TX.</p>
<p>CEO: Jane Doe. We are hiring, join our team. Backed by series a funding.</p>
<p>Customer testimonials and reviews from our api and cloud users.</p>
<p>Subscribe to our newsletter for a free trial and an ebook download.</p>
<form class="footer-form">
<input type="email" name="email"><input name="phone"><input name="company">
</form>
</body></html>`

func TestPipelineEndToEnd(t *testing.T) {
	a := New()
	doc := mustDoc(t, pipelineFixture)

	result, err := a.analyzeDocument(context.Background(), doc, "https://acme.io")
	require.NoError(t, err)

	assert.Equal(t, "https://acme.io", result.URL)
	assert.NotEmpty(t, result.Timestamp)

	// Spot-check the detector stage.
	assert.True(t, result.Chatbot.HasChatbot)
	assert.True(t, result.Booking.HasBooking)
	assert.Equal(t, "Calendly", result.Booking.BookingSystem)
	assert.True(t, result.LeadCapture.HasLeadCapture)
	assert.Contains(t, result.TechStack.Detected, "hubspot")
	assert.GreaterOrEqual(t, len(result.Social.PlatformsFound), 3)
	assert.Equal(t, "saas", result.CompanyProfile.Industry)

	// The overall score is always the exact sum of the five categories.
	require.Len(t, result.LeadScore.CategoryScores, 5)
	sum := 0
	for _, v := range result.LeadScore.CategoryScores {
		sum += v
	}
	assert.Equal(t, sum, result.LeadScore.Overall)
	assert.LessOrEqual(t, result.LeadScore.Overall, 100)

	// Tier must match the overall score.
	assert.Equal(t, qualityForScore(result.LeadScore.Overall), result.LeadScore.Quality)

	assert.GreaterOrEqual(t, result.AutomationScore, 0)
	assert.LessOrEqual(t, result.AutomationScore, 100)
	assert.GreaterOrEqual(t, result.SEO.Score, 0)
	assert.LessOrEqual(t, result.SEO.Score, 100)

	// Merged recommendations are priority-ordered and category-tagged.
	require.NotEmpty(t, result.Recommendations)
	for i, rec := range result.Recommendations {
		assert.NotEmpty(t, rec.Category, "recommendation %d missing category", i)
		if i > 0 {
			assert.LessOrEqual(t,
				priorityRank(result.Recommendations[i-1].Priority),
				priorityRank(rec.Priority),
				"recommendations out of priority order at %d", i)
		}
	}
}

func TestPipelineLowSignalSite(t *testing.T) {
	a := New()
	doc := mustDoc(t, `<html><body><p>Call us: (555) 987-6543</p></body></html>`)

	result, err := a.analyzeDocument(context.Background(), doc, "https://quietsite.example")
	require.NoError(t, err)

	// No forms, no social, no chat, no schema: the phone number is the
	// only positive signal.
	assert.False(t, result.Chatbot.HasChatbot)
	assert.Equal(t, 0, result.LeadCapture.FormsCount)
	assert.Empty(t, result.Social.PlatformsFound)
	assert.Equal(t, 0, result.SEO.Schema.JSONLDCount)
	assert.Equal(t, []string{"phone"}, result.Contact.ContactMethods)

	assert.Equal(t, "nurture", result.LeadScore.Quality)
	assert.Less(t, result.LeadScore.Overall, 40)
	assert.Equal(t, "low", result.LeadScore.SalesPriority)

	highPriority := 0
	for _, rec := range result.Recommendations {
		if rec.Priority == PriorityHigh {
			highPriority++
		}
	}
	assert.GreaterOrEqual(t, highPriority, 5)
}

const highSignalFixture = `<!DOCTYPE html>
<html><head>
<title>Acme Cloud Platform</title>
<link rel="alternate" href="/wp-json/">
<script src="/wp-content/themes/acme/app.js"></script>
<script src="https://js.hs-scripts.com/123.js"></script>
</head><body>
<h1>Cloud software for subscription businesses</h1>
<a href="https://facebook.com/pages/acme">Facebook</a>
<a href="https://linkedin.com/company/acme">LinkedIn</a>
<p>Over 100+ employees build our cloud platform from Austin, TX.</p>
<p>CEO: Jane Doe. We are hiring, see careers. Backed by new funding.</p>
<p>Call (555) 123-4567 or email sales@acme.io for a free trial and ebook.</p>
<form><input type="email" name="email"><input name="phone"><input name="company"></form>
</body></html>`

func TestPipelineHighSignalSite(t *testing.T) {
	a := New()
	doc := mustDoc(t, highSignalFixture)

	result, err := a.analyzeDocument(context.Background(), doc, "https://acme.io")
	require.NoError(t, err)

	// profile 20 (saas 8, 100+ staff 8, location 4), social 8 (two
	// platforms, no ads), technology 11 (wordpress+hubspot, agency bonus),
	// budget 20 (medium-high), contact 8 (readiness 17).
	assert.Equal(t, 20, result.LeadScore.CategoryScores["company_profile"])
	assert.Equal(t, 8, result.LeadScore.CategoryScores["social_intelligence"])
	assert.Equal(t, 11, result.LeadScore.CategoryScores["technology"])
	assert.Equal(t, 20, result.LeadScore.CategoryScores["budget"])
	assert.Equal(t, 8, result.LeadScore.CategoryScores["contact_accessibility"])

	assert.Equal(t, 67, result.LeadScore.Overall)
	assert.GreaterOrEqual(t, result.LeadScore.Overall, 60)
	assert.Equal(t, "qualified", result.LeadScore.Quality)
	assert.Equal(t, "high", result.LeadScore.SalesPriority)
	assert.Equal(t, "$5,000-$25,000", result.LeadScore.DealSizeEstimate)
}

func qualityForScore(score int) string {
	switch {
	case score >= 80:
		return "premium"
	case score >= 60:
		return "qualified"
	case score >= 40:
		return "potential"
	default:
		return "nurture"
	}
}
