package analyzer

import "strings"

// analyzeTechStack fingerprints platforms from four match sources with
// fixed weights: html pattern 2, named indicator 3, script src 3,
// stylesheet href 2. Confidence is min(score*10, 100).
func (a *Analyzer) analyzeTechStack(doc *Document) TechStackAnalysis {
	result := TechStackAnalysis{
		Detected: make(map[string]DetectedTechnology),
	}

	for _, tech := range techOrder {
		config := techPatterns[tech]
		score := 0
		var evidence []string

		for _, re := range config.Patterns {
			if re.MatchString(doc.HTML) {
				score += 2
				evidence = append(evidence, "pattern_"+re.String())
			}
		}

		for _, indicator := range config.Indicators {
			if strings.Contains(doc.HTML, indicator) {
				score += 3
				evidence = append(evidence, "indicator_"+indicator)
			}
		}

		for _, src := range doc.ScriptSrcs {
			for _, re := range config.Patterns {
				if re.MatchString(src) {
					score += 3
					evidence = append(evidence, "script_"+re.String())
				}
			}
		}

		for _, href := range doc.LinkHrefs {
			for _, re := range config.Patterns {
				if re.MatchString(href) {
					score += 2
					evidence = append(evidence, "link_"+re.String())
				}
			}
		}

		if score > 0 {
			confidence := score * 10
			if confidence > 100 {
				confidence = 100
			}
			result.Detected[tech] = DetectedTechnology{
				Confidence:        confidence,
				Evidence:          evidence,
				Category:          config.Category,
				CostTier:          config.CostTier,
				AgencyOpportunity: config.AgencyOpportunity,
			}
			result.SophisticationScore += score
		}
	}

	hasHighCost := false
	hasMediumCost := false
	hasMarketing := false
	for _, data := range result.Detected {
		switch data.CostTier {
		case "high":
			hasHighCost = true
		case "medium":
			hasMediumCost = true
		}
		if data.Category == "marketing" {
			hasMarketing = true
		}
	}

	switch {
	case hasHighCost:
		result.BudgetLevel = "high"
		result.MonthlyEstimate = "$5000-$50000+"
	case hasMediumCost:
		result.BudgetLevel = "medium"
		result.MonthlyEstimate = "$1000-$5000"
	default:
		result.BudgetLevel = "low"
		result.MonthlyEstimate = "$100-$1000"
	}

	if _, ok := result.Detected["wordpress"]; ok {
		result.AgencyOpportunities = append(result.AgencyOpportunities, "wordpress_optimization")
	}
	if _, ok := result.Detected["shopify"]; ok {
		result.AgencyOpportunities = append(result.AgencyOpportunities, "ecommerce_optimization")
	}
	if !hasMarketing {
		result.AgencyOpportunities = append(result.AgencyOpportunities, "marketing_automation_implementation")
	}

	for _, indicator := range legacyIndicators {
		if strings.Contains(doc.HTML, indicator) {
			result.ModernizationNeeds = append(result.ModernizationNeeds, "legacy_"+indicator)
		}
	}

	if len(result.ModernizationNeeds) > 0 {
		result.Opportunities = append(result.Opportunities, Opportunity{
			Priority:       PriorityMedium,
			Recommendation: "Modernize outdated frontend libraries",
			Implementation: "Upgrade legacy jQuery/Bootstrap versions and drop IE-era workarounds",
			Impact:         "Reduce security exposure and improve page performance",
		})
	}

	return result
}

// analyzeMarketing scores marketing tool adoption and flags channel gaps.
func (a *Analyzer) analyzeMarketing(doc *Document) MarketingAnalysis {
	result := MarketingAnalysis{}

	for _, tool := range marketingToolOrder {
		config := marketingTools[tool]
		for _, pattern := range config.Patterns {
			if strings.Contains(doc.HTML, pattern) {
				result.DetectedTools = append(result.DetectedTools, tool)
				result.MaturityScore += config.Weight
				break
			}
		}
	}

	detected := func(tool string) bool {
		for _, t := range result.DetectedTools {
			if t == tool {
				return true
			}
		}
		return false
	}

	if !detected("google_analytics") {
		result.ChannelGaps = append(result.ChannelGaps, "basic_analytics")
	}
	if !detected("facebook_pixel") && strings.Contains(doc.HTML, "facebook") {
		result.ChannelGaps = append(result.ChannelGaps, "facebook_tracking")
	}
	if !detected("google_tag_manager") {
		result.ChannelGaps = append(result.ChannelGaps, "tag_management")
	}

	if !detected("google_analytics") {
		result.Opportunities = append(result.Opportunities, Opportunity{
			Priority:       PriorityHigh,
			Recommendation: "Install web analytics",
			Implementation: "Set up Google Analytics or a comparable analytics platform",
			Impact:         "Enable data-driven marketing and conversion measurement",
		})
	}

	return result
}
