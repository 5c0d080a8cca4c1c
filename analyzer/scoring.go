package analyzer

import (
	"fmt"
	"sort"
	"strings"
)

// Category caps. The five categories sum to a 100-point scale.
const (
	companyProfileCap = 25
	socialCap         = 20
	technologyCap     = 20
	budgetCap         = 25
	contactCap        = 10
)

// calculateLeadScore aggregates the detector findings into the weighted
// five-category qualification score and maps the total onto a tier.
func (a *Analyzer) calculateLeadScore(result *AnalysisResult) LeadScore {
	score := LeadScore{
		CategoryScores: make(map[string]int),
	}

	// Company profile (25 points).
	profileScore := 0
	switch result.CompanyProfile.Industry {
	case "saas", "ecommerce", "consulting":
		profileScore += 8
	case "":
	default:
		profileScore += 5
	}
	if result.CompanyProfile.Employees != "" {
		if strings.Contains(result.CompanyProfile.Employees, "100+") || strings.Contains(result.CompanyProfile.Employees, "50-") {
			profileScore += 8
		} else {
			profileScore += 4
		}
	}
	if result.CompanyProfile.Location != "" {
		profileScore += 4
	}
	score.CategoryScores["company_profile"] = minInt(profileScore, companyProfileCap)

	// Social media intelligence (20 points).
	socialScore := minInt(result.Social.EngagementScore/3, 15)
	if len(result.Social.BudgetIndicators) > 0 {
		socialScore += 5
	}
	score.CategoryScores["social_intelligence"] = minInt(socialScore, socialCap)

	// Technology sophistication (20 points).
	techScore := minInt(result.TechStack.SophisticationScore/2, 15)
	if len(result.TechStack.AgencyOpportunities) > 0 {
		techScore += 5
	}
	score.CategoryScores["technology"] = minInt(techScore, technologyCap)

	// Budget indicators (25 points).
	budgetScore := 5
	switch result.Budget.Level {
	case "high":
		budgetScore = 25
	case "medium-high":
		budgetScore = 20
	case "medium":
		budgetScore = 15
	}
	score.CategoryScores["budget"] = budgetScore

	// Contact accessibility (10 points).
	score.CategoryScores["contact_accessibility"] = minInt(result.Contact.SalesReadinessScore/2, contactCap)

	for _, v := range score.CategoryScores {
		score.Overall += v
	}
	if score.Overall > 100 {
		score.Overall = 100
	}

	switch {
	case score.Overall >= 80:
		score.Quality = "premium"
		score.SalesPriority = "immediate"
		score.ConversionProbability = "high"
		score.DealSizeEstimate = "$10,000-$100,000+"
		score.SalesCycleEstimate = "1-3 months"
	case score.Overall >= 60:
		score.Quality = "qualified"
		score.SalesPriority = "high"
		score.ConversionProbability = "medium-high"
		score.DealSizeEstimate = "$5,000-$25,000"
		score.SalesCycleEstimate = "2-6 months"
	case score.Overall >= 40:
		score.Quality = "potential"
		score.SalesPriority = "medium"
		score.ConversionProbability = "medium"
		score.DealSizeEstimate = "$2,000-$10,000"
		score.SalesCycleEstimate = "3-12 months"
	default:
		score.Quality = "nurture"
		score.SalesPriority = "low"
		score.ConversionProbability = "low"
		score.DealSizeEstimate = "$500-$5,000"
		score.SalesCycleEstimate = "6-18+ months"
	}

	score.Strengths = identifyStrengths(score.CategoryScores)
	score.ImprovementAreas = identifyImprovementAreas(score.CategoryScores)
	score.Explanation = buildScoreExplanation(&score)

	return score
}

func identifyStrengths(categories map[string]int) []string {
	var strengths []string
	if categories["company_profile"] >= 18 {
		strengths = append(strengths, "Strong company profile and market positioning")
	}
	if categories["social_intelligence"] >= 15 {
		strengths = append(strengths, "Excellent social media presence and engagement")
	}
	if categories["technology"] >= 15 {
		strengths = append(strengths, "Advanced technology adoption and digital maturity")
	}
	if categories["budget"] >= 20 {
		strengths = append(strengths, "High budget capacity and investment readiness")
	}
	if categories["contact_accessibility"] >= 7 {
		strengths = append(strengths, "Clear contact paths and decision maker access")
	}
	return strengths
}

func identifyImprovementAreas(categories map[string]int) []string {
	var improvements []string
	if categories["company_profile"] < 12 {
		improvements = append(improvements, "Company profile and positioning needs strengthening")
	}
	if categories["social_intelligence"] < 10 {
		improvements = append(improvements, "Social media presence requires significant development")
	}
	if categories["technology"] < 10 {
		improvements = append(improvements, "Technology modernization represents major opportunity")
	}
	if categories["budget"] < 15 {
		improvements = append(improvements, "Budget development and investment capacity building needed")
	}
	if categories["contact_accessibility"] < 5 {
		improvements = append(improvements, "Contact information and decision maker identification critical")
	}
	return improvements
}

func buildScoreExplanation(score *LeadScore) string {
	return fmt.Sprintf(
		"This prospect scored %d/100 points, qualifying as a '%s' lead. "+
			"The score is calculated across 5 categories: Company Profile (%d/25), "+
			"Social Media Intelligence (%d/20), Technology Stack (%d/20), "+
			"Budget Indicators (%d/25), and Contact Accessibility (%d/10). "+
			"Estimated deal size %s with a %s sales cycle.",
		score.Overall, score.Quality,
		score.CategoryScores["company_profile"],
		score.CategoryScores["social_intelligence"],
		score.CategoryScores["technology"],
		score.CategoryScores["budget"],
		score.CategoryScores["contact_accessibility"],
		score.DealSizeEstimate, score.SalesCycleEstimate,
	)
}

// calculateAutomationScore weighs the widget findings: chatbot 12, lead
// capture 12, email signup 8, social (3+ linked profiles) 8, reviews 12,
// booking 15, mobile up to 8, contact (3+ methods) 5, SEO up to 20.
func (a *Analyzer) calculateAutomationScore(result *AnalysisResult) int {
	score := 0

	if result.Chatbot.HasChatbot {
		score += 12
	}
	if result.LeadCapture.HasLeadCapture {
		score += 12
	}
	if result.EmailSignup.HasEmailSignup {
		score += 8
	}

	linkedProfiles := 0
	for _, platform := range result.Social.PlatformsFound {
		if platform.URL != "" {
			linkedProfiles++
		}
	}
	if linkedProfiles >= 3 {
		score += 8
	}

	if result.Reviews.HasReviews {
		score += 12
	}
	if result.Booking.HasBooking {
		score += 15
	}

	mobileScore := 0
	if result.Mobile.HasViewportMeta {
		mobileScore += 3
	}
	if result.Mobile.ResponsiveDesign {
		mobileScore += 4
	}
	if result.Mobile.MobileMenu {
		mobileScore += 3
	}
	score += minInt(mobileScore, 8)

	if len(result.Contact.ContactMethods) >= 3 {
		score += 5
	}

	score += result.SEO.Score * 20 / 100

	return minInt(score, 100)
}

// mergeRecommendations flattens every detector's opportunities into one
// list, tags each with its source category, and stable-sorts by priority
// so equal priorities keep detector order.
func (a *Analyzer) mergeRecommendations(result *AnalysisResult) []Opportunity {
	var merged []Opportunity

	appendTagged := func(category string, opportunities []Opportunity) {
		for _, op := range opportunities {
			op.Category = category
			merged = append(merged, op)
		}
	}

	appendTagged("chatbot", result.Chatbot.Opportunities)
	appendTagged("lead_capture", result.LeadCapture.Opportunities)
	appendTagged("email_signup", result.EmailSignup.Opportunities)
	appendTagged("social_media", result.Social.Opportunities)
	appendTagged("review", result.Reviews.Opportunities)
	appendTagged("booking", result.Booking.Opportunities)
	appendTagged("mobile", result.Mobile.Opportunities)
	appendTagged("contact", result.Contact.Opportunities)
	appendTagged("tech_stack", result.TechStack.Opportunities)
	appendTagged("marketing", result.Marketing.Opportunities)
	appendTagged("budget", result.Budget.Opportunities)
	appendTagged("seo", result.SEO.Opportunities)

	sort.SliceStable(merged, func(i, j int) bool {
		return priorityRank(merged[i].Priority) < priorityRank(merged[j].Priority)
	})

	return merged
}
