package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeChatbot(t *testing.T) {
	a := New()

	t.Run("widget element with vendor", func(t *testing.T) {
		doc := mustDoc(t, `<html><body><div id="intercom-frame"></div></body></html>`)
		result := a.analyzeChatbot(doc)

		assert.True(t, result.HasChatbot)
		assert.Equal(t, "Intercom", result.ChatbotType)
		assert.Empty(t, result.Opportunities)
	})

	t.Run("inline vendor loader", func(t *testing.T) {
		doc := mustDoc(t, `<html><body><script>window.driftSettings = {app: "x"};</script></body></html>`)
		result := a.analyzeChatbot(doc)

		assert.True(t, result.HasChatbot)
		assert.Equal(t, "script", result.Implementation)
	})

	t.Run("absent", func(t *testing.T) {
		doc := mustDoc(t, `<html><body><p>plain page</p></body></html>`)
		result := a.analyzeChatbot(doc)

		assert.False(t, result.HasChatbot)
		require.Len(t, result.Opportunities, 1)
		assert.Equal(t, PriorityHigh, result.Opportunities[0].Priority)
	})
}

func TestAnalyzeLeadCapture(t *testing.T) {
	a := New()

	t.Run("email form", func(t *testing.T) {
		doc := mustDoc(t, `<html><body><form><input type="email" name="email"></form></body></html>`)
		result := a.analyzeLeadCapture(doc)

		assert.True(t, result.HasLeadCapture)
		assert.Equal(t, 1, result.FormsCount)
		assert.Contains(t, result.FormTypes, "email_capture")
		assert.Empty(t, result.Opportunities)
	})

	t.Run("detailed form with phone", func(t *testing.T) {
		doc := mustDoc(t, `<html><body><form>
			<input name="name"><input name="phone"><input type="email" name="email"><textarea name="message"></textarea>
		</form></body></html>`)
		result := a.analyzeLeadCapture(doc)

		assert.Contains(t, result.FormTypes, "contact_form")
		assert.Contains(t, result.FormTypes, "detailed_form")
	})

	t.Run("popup form", func(t *testing.T) {
		doc := mustDoc(t, `<html><body><div class="newsletter-popup"><form><input name="q"></form></div></body></html>`)
		result := a.analyzeLeadCapture(doc)

		assert.Contains(t, result.FormTypes, "popup_form")
	})

	t.Run("no forms", func(t *testing.T) {
		doc := mustDoc(t, `<html><body><p>nothing here</p></body></html>`)
		result := a.analyzeLeadCapture(doc)

		assert.False(t, result.HasLeadCapture)
		require.Len(t, result.Opportunities, 1)
		assert.Equal(t, PriorityHigh, result.Opportunities[0].Priority)
	})

	t.Run("form without email field", func(t *testing.T) {
		doc := mustDoc(t, `<html><body><form><input name="q"></form></body></html>`)
		result := a.analyzeLeadCapture(doc)

		assert.False(t, result.HasLeadCapture)
		require.Len(t, result.Opportunities, 1)
		assert.Equal(t, PriorityMedium, result.Opportunities[0].Priority)
	})
}

func TestAnalyzeEmailSignup(t *testing.T) {
	a := New()

	t.Run("footer signup with service", func(t *testing.T) {
		doc := mustDoc(t, `<html><body>
			<form class="footer-signup"><input type="email" name="email"></form>
			<script src="https://chimpstatic.mailchimp.com/mcjs.js"></script>
		</body></html>`)
		result := a.analyzeEmailSignup(doc)

		assert.True(t, result.HasEmailSignup)
		assert.Contains(t, result.SignupLocations, "footer")
		assert.Equal(t, "Mailchimp", result.EmailService)
	})

	t.Run("absent entirely", func(t *testing.T) {
		doc := mustDoc(t, `<html><body><p>hello</p></body></html>`)
		result := a.analyzeEmailSignup(doc)

		assert.False(t, result.HasEmailSignup)
		require.Len(t, result.Opportunities, 1)
		assert.Equal(t, PriorityHigh, result.Opportunities[0].Priority)
	})

	t.Run("newsletter mention without form", func(t *testing.T) {
		doc := mustDoc(t, `<html><body><p>Subscribe to our newsletter</p></body></html>`)
		result := a.analyzeEmailSignup(doc)

		assert.False(t, result.HasEmailSignup)
		require.Len(t, result.Opportunities, 1)
		assert.Equal(t, PriorityMedium, result.Opportunities[0].Priority)
	})
}

func TestAnalyzeSocialMedia(t *testing.T) {
	a := New()

	doc := mustDoc(t, `<html><head>
		<script src="https://connect.facebook.net/en_US/fbevents.js"></script>
	</head><body>
		<a href="https://facebook.com/pages/acme">Facebook</a>
		<a href="https://linkedin.com/company/acme">LinkedIn</a>
	</body></html>`)
	result := a.analyzeSocialMedia(doc)

	require.Contains(t, result.PlatformsFound, "facebook")
	require.Contains(t, result.PlatformsFound, "linkedin")
	assert.True(t, result.PlatformsFound["facebook"].BusinessAccount)
	assert.True(t, result.PlatformsFound["facebook"].PixelDetected)
	assert.True(t, result.PlatformsFound["linkedin"].BusinessAccount)

	// facebook 10 + linkedin 15
	assert.Equal(t, 25, result.EngagementScore)
	assert.Equal(t, []string{"facebook_ads"}, result.BudgetIndicators)

	assert.Equal(t, "developing", result.StrategyMaturity)
	assert.Equal(t, "medium", result.BudgetLevel)
	assert.Equal(t, "medium", result.LeadPotential)

	// Under three platforms: expansion opportunity naming the missing ones.
	var expansion *Opportunity
	for i := range result.Opportunities {
		if result.Opportunities[i].Recommendation == "Expand social media presence" {
			expansion = &result.Opportunities[i]
		}
	}
	require.NotNil(t, expansion)
	assert.Contains(t, expansion.Implementation, "instagram")
	assert.NotContains(t, expansion.Implementation, "facebook")
}

func TestAnalyzeSocialMediaBare(t *testing.T) {
	a := New()
	doc := mustDoc(t, `<html><body><p>no socials</p></body></html>`)
	result := a.analyzeSocialMedia(doc)

	assert.Empty(t, result.PlatformsFound)
	assert.Equal(t, 0, result.EngagementScore)
	assert.Equal(t, "basic", result.StrategyMaturity)
	assert.Equal(t, "low", result.BudgetLevel)
	assert.Equal(t, "low", result.LeadPotential)
	assert.False(t, result.SharingButtons)
}

func TestAnalyzeReviews(t *testing.T) {
	a := New()

	t.Run("testimonials present", func(t *testing.T) {
		doc := mustDoc(t, `<html><body><p>Customer testimonials from happy clients</p></body></html>`)
		result := a.analyzeReviews(doc)

		assert.True(t, result.HasReviews)
		assert.Contains(t, result.ReviewSources, "testimonial")
		assert.Empty(t, result.Opportunities)
	})

	t.Run("star rating markup only", func(t *testing.T) {
		doc := mustDoc(t, `<html><body><span class="star-display"></span></body></html>`)
		result := a.analyzeReviews(doc)

		assert.True(t, result.HasReviews)
		require.Len(t, result.Opportunities, 1)
		assert.Equal(t, PriorityMedium, result.Opportunities[0].Priority)
	})

	t.Run("absent", func(t *testing.T) {
		doc := mustDoc(t, `<html><body><p>nothing</p></body></html>`)
		result := a.analyzeReviews(doc)

		assert.False(t, result.HasReviews)
		require.Len(t, result.Opportunities, 1)
		assert.Equal(t, PriorityHigh, result.Opportunities[0].Priority)
	})
}

func TestAnalyzeBooking(t *testing.T) {
	a := New()

	t.Run("vendor script", func(t *testing.T) {
		doc := mustDoc(t, `<html><body>
			<script src="https://assets.calendly.com/widget.js"></script>
			<p>Request a consultation</p>
		</body></html>`)
		result := a.analyzeBooking(doc)

		assert.True(t, result.HasBooking)
		assert.Equal(t, "Calendly", result.BookingSystem)
		assert.Contains(t, result.BookingTypes, "consultations")
		assert.Empty(t, result.Opportunities)
	})

	t.Run("absent", func(t *testing.T) {
		doc := mustDoc(t, `<html><body><p>static brochure</p></body></html>`)
		result := a.analyzeBooking(doc)

		assert.False(t, result.HasBooking)
		require.Len(t, result.Opportunities, 1)
		assert.Equal(t, PriorityHigh, result.Opportunities[0].Priority)
	})
}

func TestAnalyzeMobile(t *testing.T) {
	a := New()

	t.Run("fully mobile ready", func(t *testing.T) {
		doc := mustDoc(t, `<html><head>
			<meta name="viewport" content="width=device-width">
			<style>@media (max-width: 600px) { body { font-size: 14px; } }</style>
		</head><body>
			<div class="hamburger"></div>
			<button>Menu</button>
		</body></html>`)
		result := a.analyzeMobile(doc)

		assert.True(t, result.HasViewportMeta)
		assert.True(t, result.ResponsiveDesign)
		assert.True(t, result.MobileMenu)
		assert.True(t, result.TouchFriendly)
		assert.Empty(t, result.Opportunities)
	})

	t.Run("desktop only", func(t *testing.T) {
		doc := mustDoc(t, `<html><body><table><tr><td>fixed layout</td></tr></table></body></html>`)
		result := a.analyzeMobile(doc)

		assert.False(t, result.HasViewportMeta)
		assert.False(t, result.ResponsiveDesign)
		assert.False(t, result.MobileMenu)
		assert.Len(t, result.Opportunities, 3)
	})
}
