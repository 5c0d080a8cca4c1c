package analyzer

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Widget-family detectors. Each one inspects a single surface of the page
// and reports findings plus the opportunities a missing capability opens.
// Absence of a widget is a finding, never an error.

func (a *Analyzer) analyzeChatbot(doc *Document) ChatbotAnalysis {
	result := ChatbotAnalysis{}

	for _, selector := range chatbotSelectors {
		sel := doc.Find(selector)
		if sel.Length() == 0 {
			continue
		}
		result.HasChatbot = true
		result.Implementation = "detected"

		sel.EachWithBreak(func(_ int, s *goquery.Selection) bool {
			html, err := goquery.OuterHtml(s)
			if err != nil {
				return true
			}
			html = strings.ToLower(html)
			for _, vendor := range chatbotVendors {
				if strings.Contains(html, vendor.Keyword) {
					result.ChatbotType = vendor.Name
					return false
				}
			}
			return true
		})
		break
	}

	// Inline vendor loaders count even without a widget element.
	if !result.HasChatbot {
		for _, script := range doc.InlineScripts {
			for _, vendor := range chatbotVendors {
				if vendor.Keyword == "messenger" {
					continue
				}
				if strings.Contains(script, vendor.Keyword) {
					result.HasChatbot = true
					result.Implementation = "script"
					break
				}
			}
			if result.HasChatbot {
				break
			}
		}
	}

	if !result.HasChatbot {
		result.Opportunities = append(result.Opportunities, Opportunity{
			Priority:       PriorityHigh,
			Recommendation: "Add live chat/chatbot for instant customer support",
			Implementation: "Consider Intercom, Zendesk Chat, or custom chatbot integration",
			Impact:         "Improve customer engagement and reduce response time",
		})
	}

	return result
}

func (a *Analyzer) analyzeLeadCapture(doc *Document) LeadCaptureAnalysis {
	result := LeadCaptureAnalysis{}

	forms := doc.Find("form")
	result.FormsCount = forms.Length()

	forms.Each(func(_ int, form *goquery.Selection) {
		inputs := form.Find("input, textarea, select")

		hasEmail := false
		form.Find("input").Each(func(_ int, inp *goquery.Selection) {
			if t, _ := inp.Attr("type"); t == "email" {
				hasEmail = true
			}
		})
		if hasEmail {
			result.HasLeadCapture = true
			result.FormTypes = append(result.FormTypes, "email_capture")
		}

		hasPhone := false
		inputs.Each(func(_ int, inp *goquery.Selection) {
			name, _ := inp.Attr("name")
			switch strings.ToLower(name) {
			case "phone", "telephone":
				hasPhone = true
			}
		})
		if hasPhone {
			result.FormTypes = append(result.FormTypes, "contact_form")
		}

		if inputs.Length() > 3 {
			result.FormTypes = append(result.FormTypes, "detailed_form")
		}
	})

	doc.Find("div").Each(func(_ int, div *goquery.Selection) {
		class, _ := div.Attr("class")
		class = strings.ToLower(class)
		if strings.Contains(class, "modal") || strings.Contains(class, "popup") || strings.Contains(class, "overlay") {
			if div.Find("form").Length() > 0 {
				result.FormTypes = append(result.FormTypes, "popup_form")
			}
		}
	})

	if result.FormsCount == 0 {
		result.Opportunities = append(result.Opportunities, Opportunity{
			Priority:       PriorityHigh,
			Recommendation: "Add lead capture forms",
			Implementation: "Create contact forms, newsletter signup, or lead magnets",
			Impact:         "Generate leads and build customer database",
		})
	} else if !result.HasLeadCapture {
		result.Opportunities = append(result.Opportunities, Opportunity{
			Priority:       PriorityMedium,
			Recommendation: "Optimize existing forms for lead capture",
			Implementation: "Add email fields and lead magnets to current forms",
			Impact:         "Increase lead generation from existing traffic",
		})
	}

	return result
}

func (a *Analyzer) analyzeEmailSignup(doc *Document) EmailSignupAnalysis {
	result := EmailSignupAnalysis{}

	emailInputs := doc.Find(`input[type="email"]`)
	if emailInputs.Length() > 0 {
		result.HasEmailSignup = true

		emailInputs.Each(func(_ int, inp *goquery.Selection) {
			form := inp.Closest("form")
			if form.Length() == 0 {
				return
			}
			class, _ := form.Attr("class")
			class = strings.ToLower(class)
			switch {
			case strings.Contains(class, "footer"):
				result.SignupLocations = append(result.SignupLocations, "footer")
			case strings.Contains(class, "header"):
				result.SignupLocations = append(result.SignupLocations, "header")
			default:
				result.SignupLocations = append(result.SignupLocations, "content")
			}
		})
	}

	for _, src := range doc.ScriptSrcs {
		for _, svc := range emailServices {
			if strings.Contains(src, svc.Keyword) {
				result.EmailService = svc.Name
			}
		}
	}

	hasNewsletterContent := false
	for _, keyword := range newsletterKeywords {
		if strings.Contains(doc.Text, keyword) {
			hasNewsletterContent = true
			break
		}
	}

	if !result.HasEmailSignup && !hasNewsletterContent {
		result.Opportunities = append(result.Opportunities, Opportunity{
			Priority:       PriorityHigh,
			Recommendation: "Add email newsletter signup",
			Implementation: "Integrate with email service like Mailchimp, ConvertKit, or Constant Contact",
			Impact:         "Build email list for marketing and customer retention",
		})
	} else if hasNewsletterContent && !result.HasEmailSignup {
		result.Opportunities = append(result.Opportunities, Opportunity{
			Priority:       PriorityMedium,
			Recommendation: "Add functional email signup form",
			Implementation: "Connect existing newsletter mentions to actual signup functionality",
			Impact:         "Convert newsletter interest into actual subscribers",
		})
	}

	return result
}

func (a *Analyzer) analyzeSocialMedia(doc *Document) SocialAnalysis {
	result := SocialAnalysis{
		PlatformsFound: make(map[string]SocialPlatform),
	}

	for _, platform := range socialPlatformOrder {
		config := socialPlatforms[platform]
		data := SocialPlatform{}

		for _, href := range doc.AnchorHrefs {
			matched := false
			for _, re := range config.Patterns {
				if re.MatchString(href) {
					data.URL = href
					for _, indicator := range config.BusinessIndicators {
						if strings.Contains(href, indicator) {
							data.BusinessAccount = true
							break
						}
					}
					matched = true
					break
				}
			}
			if matched {
				break
			}
		}

		for _, re := range config.PixelPatterns {
			if re.MatchString(doc.HTML) {
				data.PixelDetected = true
				result.BudgetIndicators = append(result.BudgetIndicators, platform+"_ads")
				break
			}
		}

		if data.URL != "" || data.PixelDetected {
			result.PlatformsFound[platform] = data
			result.EngagementScore += config.Weight
		}
	}

	platformsCount := len(result.PlatformsFound)
	activeAdvertising := len(result.BudgetIndicators)

	switch {
	case platformsCount >= 4 && activeAdvertising >= 2:
		result.StrategyMaturity = "advanced"
		result.BudgetLevel = "high"
	case platformsCount >= 2:
		result.StrategyMaturity = "developing"
		result.BudgetLevel = "medium"
	default:
		result.StrategyMaturity = "basic"
		result.BudgetLevel = "low"
	}

	switch {
	case platformsCount >= 3 && activeAdvertising >= 1:
		result.LeadPotential = "high"
	case platformsCount >= 2:
		result.LeadPotential = "medium"
	default:
		result.LeadPotential = "low"
	}

	doc.Find("iframe").Each(func(_ int, iframe *goquery.Selection) {
		src, _ := iframe.Attr("src")
		src = strings.ToLower(src)
		switch {
		case strings.Contains(src, "facebook"):
			result.SocialWidgets = append(result.SocialWidgets, "Facebook")
		case strings.Contains(src, "twitter"):
			result.SocialWidgets = append(result.SocialWidgets, "Twitter")
		case strings.Contains(src, "instagram"):
			result.SocialWidgets = append(result.SocialWidgets, "Instagram")
		}
	})

	for _, indicator := range []string{"share", "tweet", "like", "follow"} {
		if strings.Contains(doc.Text, indicator) {
			result.SharingButtons = true
			break
		}
	}

	if platformsCount < 3 {
		var missing []string
		for _, platform := range socialPlatformOrder[:5] {
			if _, ok := result.PlatformsFound[platform]; !ok {
				missing = append(missing, platform)
			}
		}
		result.Opportunities = append(result.Opportunities, Opportunity{
			Priority:       PriorityMedium,
			Recommendation: "Expand social media presence",
			Implementation: fmt.Sprintf("Add profiles on %s", strings.Join(missing, ", ")),
			Impact:         "Increase brand visibility and customer engagement",
		})
	}

	if !result.SharingButtons {
		result.Opportunities = append(result.Opportunities, Opportunity{
			Priority:       PriorityLow,
			Recommendation: "Add social sharing buttons",
			Implementation: "Install social sharing plugin or custom buttons",
			Impact:         "Increase content virality and social reach",
		})
	}

	return result
}

func (a *Analyzer) analyzeReviews(doc *Document) ReviewAnalysis {
	result := ReviewAnalysis{}

	for _, keyword := range reviewKeywords {
		if strings.Contains(doc.Text, keyword) {
			result.HasReviews = true
			break
		}
	}

	for _, platform := range reviewPlatforms {
		if strings.Contains(doc.Text, platform) {
			result.ReviewSources = append(result.ReviewSources, platform)
		}
	}

	doc.Find("iframe").Each(func(_ int, iframe *goquery.Selection) {
		src, _ := iframe.Attr("src")
		src = strings.ToLower(src)
		switch {
		case strings.Contains(src, "google") && strings.Contains(src, "review"):
			result.ReviewWidgets = append(result.ReviewWidgets, "Google Reviews")
		case strings.Contains(src, "yelp"):
			result.ReviewWidgets = append(result.ReviewWidgets, "Yelp")
		case strings.Contains(src, "trustpilot"):
			result.ReviewWidgets = append(result.ReviewWidgets, "Trustpilot")
		}
	})

	doc.Find("span, div").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		class, _ := s.Attr("class")
		class = strings.ToLower(class)
		if strings.Contains(class, "star") || strings.Contains(class, "rating") {
			result.HasReviews = true
			return false
		}
		return true
	})

	if !result.HasReviews {
		result.Opportunities = append(result.Opportunities, Opportunity{
			Priority:       PriorityHigh,
			Recommendation: "Add customer reviews and testimonials",
			Implementation: "Display Google Reviews, testimonials, or integrate review platform",
			Impact:         "Build trust and credibility with potential customers",
		})
	} else if len(result.ReviewSources) == 0 {
		result.Opportunities = append(result.Opportunities, Opportunity{
			Priority:       PriorityMedium,
			Recommendation: "Integrate with review platforms",
			Implementation: "Connect with Google My Business, Yelp, or Trustpilot",
			Impact:         "Leverage existing reviews for better credibility",
		})
	}

	return result
}

func (a *Analyzer) analyzeBooking(doc *Document) BookingAnalysis {
	result := BookingAnalysis{}

	for _, keyword := range bookingKeywords {
		if strings.Contains(doc.Text, keyword) {
			result.HasBooking = true
			break
		}
	}

	for _, src := range doc.ScriptSrcs {
		for _, vendor := range bookingVendors {
			if strings.Contains(src, vendor.Keyword) {
				result.BookingSystem = vendor.Name
				result.HasBooking = true
			}
		}
	}

	doc.Find("iframe").Each(func(_ int, iframe *goquery.Selection) {
		src, _ := iframe.Attr("src")
		src = strings.ToLower(src)
		for _, keyword := range bookingIframeKeywords {
			if strings.Contains(src, keyword) {
				result.HasBooking = true
				break
			}
		}
	})

	if strings.Contains(doc.Text, "appointment") {
		result.BookingTypes = append(result.BookingTypes, "appointments")
	}
	if strings.Contains(doc.Text, "reservation") {
		result.BookingTypes = append(result.BookingTypes, "reservations")
	}
	if strings.Contains(doc.Text, "consultation") {
		result.BookingTypes = append(result.BookingTypes, "consultations")
	}

	if !result.HasBooking {
		result.Opportunities = append(result.Opportunities, Opportunity{
			Priority:       PriorityHigh,
			Recommendation: "Add online booking system",
			Implementation: "Integrate Calendly, Acuity Scheduling, or custom booking solution",
			Impact:         "Automate appointment scheduling and reduce admin work",
		})
	}

	return result
}

func (a *Analyzer) analyzeMobile(doc *Document) MobileAnalysis {
	result := MobileAnalysis{}

	if doc.Find(`meta[name="viewport"]`).Length() > 0 {
		result.HasViewportMeta = true
	}

	for _, href := range doc.LinkHrefs {
		for _, indicator := range responsiveIndicators {
			if strings.Contains(href, indicator) {
				result.ResponsiveDesign = true
				break
			}
		}
		if result.ResponsiveDesign {
			break
		}
	}
	if !result.ResponsiveDesign {
		doc.Find("style").EachWithBreak(func(_ int, style *goquery.Selection) bool {
			text := strings.ToLower(style.Text())
			for _, indicator := range responsiveIndicators {
				if strings.Contains(text, indicator) {
					result.ResponsiveDesign = true
					return false
				}
			}
			return true
		})
	}

	for _, selector := range mobileMenuSelectors {
		if doc.Find(selector).Length() > 0 {
			result.MobileMenu = true
			break
		}
	}

	if doc.Find("button, a").Length() > 0 {
		result.TouchFriendly = true
	}

	if !result.HasViewportMeta {
		result.Opportunities = append(result.Opportunities, Opportunity{
			Priority:       PriorityHigh,
			Recommendation: "Add viewport meta tag for mobile optimization",
			Implementation: `Add <meta name="viewport" content="width=device-width, initial-scale=1">`,
			Impact:         "Ensure proper mobile display and SEO ranking",
		})
	}

	if !result.ResponsiveDesign {
		result.Opportunities = append(result.Opportunities, Opportunity{
			Priority:       PriorityHigh,
			Recommendation: "Implement responsive design",
			Implementation: "Use CSS media queries and flexible layouts",
			Impact:         "Improve mobile user experience and search rankings",
		})
	}

	if !result.MobileMenu {
		result.Opportunities = append(result.Opportunities, Opportunity{
			Priority:       PriorityMedium,
			Recommendation: "Add mobile-friendly navigation menu",
			Implementation: "Implement hamburger menu or collapsible navigation",
			Impact:         "Improve mobile navigation experience",
		})
	}

	return result
}
