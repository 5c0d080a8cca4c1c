package analyzer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// MaxBatchSize caps how many URLs one batch request may carry.
const MaxBatchSize = 5

var bufferPool = sync.Pool{
	New: func() interface{} {
		return new(bytes.Buffer)
	},
}

// Analyzer fetches pages and runs the full lead-intelligence pipeline.
// Every call re-fetches and re-computes; results are never cached.
type Analyzer struct {
	client *http.Client
}

// New creates an Analyzer with a pooled-transport HTTP client.
func New() *Analyzer {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
		DisableCompression:  false,
	}

	return &Analyzer{
		client: &http.Client{
			Timeout:   15 * time.Second,
			Transport: transport,
		},
	}
}

// NormalizeURL defaults the scheme to https and rejects URLs that cannot
// be analyzed: empty input, unparseable URLs, and loopback hosts.
func NormalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("url is required")
	}

	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid url: %w", err)
	}

	host := strings.ToLower(parsed.Hostname())
	switch host {
	case "", "localhost", "127.0.0.1", "0.0.0.0":
		return "", fmt.Errorf("invalid url host: %q", host)
	}

	return parsed.String(), nil
}

// Analyze runs the complete pipeline for one URL with a default deadline.
func (a *Analyzer) Analyze(rawURL string) (*AnalysisResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return a.AnalyzeWithContext(ctx, rawURL)
}

// AnalyzeWithContext fetches the page and runs the three-stage pipeline:
// independent detectors concurrently, then the budget analysis that reads
// the tech and social findings, then scoring and recommendation merge.
// A fetch failure is terminal; detectors themselves cannot fail, a page
// without a signal is simply a negative finding.
func (a *Analyzer) AnalyzeWithContext(ctx context.Context, rawURL string) (*AnalysisResult, error) {
	normalized, err := NormalizeURL(rawURL)
	if err != nil {
		return nil, err
	}

	doc, err := a.fetchDocument(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", normalized, err)
	}

	return a.analyzeDocument(ctx, doc, normalized)
}

// analyzeDocument runs the pipeline stages over an already-parsed page.
func (a *Analyzer) analyzeDocument(ctx context.Context, doc *Document, normalized string) (*AnalysisResult, error) {
	result := &AnalysisResult{
		URL:       normalized,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	// Stage 1: every detector reads the immutable Document and writes only
	// its own field of the result.
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error { result.CompanyProfile = a.analyzeCompanyProfile(doc); return nil })
	g.Go(func() error { result.Chatbot = a.analyzeChatbot(doc); return nil })
	g.Go(func() error { result.LeadCapture = a.analyzeLeadCapture(doc); return nil })
	g.Go(func() error { result.EmailSignup = a.analyzeEmailSignup(doc); return nil })
	g.Go(func() error { result.Social = a.analyzeSocialMedia(doc); return nil })
	g.Go(func() error { result.Reviews = a.analyzeReviews(doc); return nil })
	g.Go(func() error { result.Booking = a.analyzeBooking(doc); return nil })
	g.Go(func() error { result.Mobile = a.analyzeMobile(doc); return nil })
	g.Go(func() error { result.Contact = a.analyzeContact(doc); return nil })
	g.Go(func() error { result.TechStack = a.analyzeTechStack(doc); return nil })
	g.Go(func() error { result.Marketing = a.analyzeMarketing(doc); return nil })
	g.Go(func() error { result.SEO = a.analyzeSEO(doc, normalized); return nil })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Stage 2: budget depends on the tech and social findings.
	result.Budget = a.analyzeBudget(doc, result.TechStack, result.Social)

	// Stage 3: aggregate.
	result.LeadScore = a.calculateLeadScore(result)
	result.AutomationScore = a.calculateAutomationScore(result)
	result.Recommendations = a.mergeRecommendations(result)

	return result, nil
}

func (a *Analyzer) fetchDocument(ctx context.Context, pageURL string) (*Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "LeadScopeAnalyzer/1.0")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer bufferPool.Put(buf)

	if _, err := io.Copy(buf, resp.Body); err != nil {
		return nil, err
	}

	return NewDocument(bytes.NewReader(buf.Bytes()))
}

// BatchEntry holds one URL's outcome in a batch run. Failed URLs carry
// the error text instead of a result.
type BatchEntry struct {
	URL     string          `json:"url"`
	Success bool            `json:"success"`
	Error   string          `json:"error,omitempty"`
	Result  *AnalysisResult `json:"result,omitempty"`
}

// AnalyzeBatch analyzes up to MaxBatchSize URLs concurrently. One URL
// failing never aborts the others; its entry records the failure.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, urls []string) ([]BatchEntry, error) {
	if len(urls) == 0 {
		return nil, fmt.Errorf("at least one url is required")
	}
	if len(urls) > MaxBatchSize {
		return nil, fmt.Errorf("batch size %d exceeds maximum of %d", len(urls), MaxBatchSize)
	}

	entries := make([]BatchEntry, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(MaxBatchSize)
	for i, u := range urls {
		i, u := i, u
		g.Go(func() error {
			result, err := a.AnalyzeWithContext(gctx, u)
			if err != nil {
				entries[i] = BatchEntry{URL: u, Error: err.Error()}
				return nil
			}
			entries[i] = BatchEntry{URL: result.URL, Success: true, Result: result}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return entries, nil
}
