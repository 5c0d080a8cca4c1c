package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeContact(t *testing.T) {
	a := New()

	doc := mustDoc(t, `<html><body>
		<a href="/contact">Contact Us</a>
		<p>Call us at (555) 123-4567 or email sales@acme.io</p>
		<p>120 Main Street, Suite 9</p>
		<p>CEO: Jane Doe</p>
		<form><input type="email" name="email"><input name="phone"><input name="company"></form>
		<p>Get a free consultation and download our ebook</p>
	</body></html>`)
	result := a.analyzeContact(doc)

	assert.True(t, result.HasContactPage)
	assert.Equal(t, []string{"(555) 123-4567"}, result.PhoneNumbers)
	assert.Equal(t, []string{"sales@acme.io"}, result.EmailAddresses)
	assert.True(t, result.PhysicalAddress)
	assert.True(t, result.ContactForm)

	require.Len(t, result.KeyPersonnel, 1)
	assert.Equal(t, "CEO", result.KeyPersonnel[0].Title)
	assert.Equal(t, "Jane Doe", result.KeyPersonnel[0].Name)

	assert.True(t, result.FormQuality.HasEmailField)
	assert.True(t, result.FormQuality.HasPhoneField)
	assert.True(t, result.FormQuality.HasCompanyField)
	assert.Equal(t, 3, result.FormQuality.ComplexityScore)

	// "free consultation", "download", "ebook"
	assert.Len(t, result.LeadMagnets, 3)

	// phone 3 + email 2 + personnel 5 + form 3 + magnets 6
	assert.Equal(t, 19, result.SalesReadinessScore)
	assert.Equal(t, "high", result.Accessibility)
	assert.Empty(t, result.Opportunities)
}

func TestAnalyzeContactSparse(t *testing.T) {
	a := New()

	doc := mustDoc(t, `<html><body><p>We make widgets.</p></body></html>`)
	result := a.analyzeContact(doc)

	assert.Equal(t, 0, result.SalesReadinessScore)
	assert.Equal(t, "low", result.Accessibility)
	assert.False(t, result.ContactForm)

	require.Len(t, result.Opportunities, 2)
	assert.Equal(t, PriorityHigh, result.Opportunities[0].Priority)
	assert.Equal(t, PriorityMedium, result.Opportunities[1].Priority)
}

func TestContactReadinessFormCap(t *testing.T) {
	a := New()

	// 12 inputs: complexity contribution must cap at 10.
	html := `<html><body><form>`
	for i := 0; i < 12; i++ {
		html += `<input name="f">`
	}
	html += `</form></body></html>`

	result := a.analyzeContact(mustDoc(t, html))
	assert.Equal(t, 12, result.FormQuality.ComplexityScore)
	assert.Equal(t, 10, result.SalesReadinessScore)
}

func TestAnalyzeCompanyProfile(t *testing.T) {
	a := New()

	doc := mustDoc(t, `<html><head>
		<title>Acme Cloud Platform</title>
		<meta name="description" content="Subscription software platform">
	</head><body>
		<p>Our cloud software platform offers api access on a subscription basis.</p>
		<p>We have 120+ employees working from Austin, TX.</p>
	</body></html>`)
	profile := a.analyzeCompanyProfile(doc)

	assert.Equal(t, "Acme Cloud Platform", profile.CompanyName)
	assert.Equal(t, "Subscription software platform", profile.Description)
	assert.Equal(t, "saas", profile.Industry)
	assert.Equal(t, "Austin, TX", profile.Location)
	assert.Equal(t, "120+", profile.Employees)
}

func TestAnalyzeCompanyProfileEmployeeFallbacks(t *testing.T) {
	a := New()

	t.Run("team of", func(t *testing.T) {
		doc := mustDoc(t, `<html><body><p>A dedicated team of 14 builds every release.</p></body></html>`)
		assert.Equal(t, "14", a.analyzeCompanyProfile(doc).Employees)
	})

	t.Run("people range", func(t *testing.T) {
		doc := mustDoc(t, `<html><body><p>We are 10-50 people across two offices.</p></body></html>`)
		assert.Equal(t, "10-50", a.analyzeCompanyProfile(doc).Employees)
	})

	t.Run("unknown", func(t *testing.T) {
		doc := mustDoc(t, `<html><body><p>A small studio.</p></body></html>`)
		assert.Empty(t, a.analyzeCompanyProfile(doc).Employees)
	})
}
