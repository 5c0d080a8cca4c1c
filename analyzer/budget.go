package analyzer

import (
	"fmt"
	"strings"
)

// analyzeBudget runs after the tech and social detectors because it reads
// their findings: ad channels from social budget indicators, spend tiers
// from detected technologies, plus hiring and revenue signals from text.
func (a *Analyzer) analyzeBudget(doc *Document, tech TechStackAnalysis, social SocialAnalysis) BudgetAnalysis {
	result := BudgetAnalysis{
		Allocation: make(map[string]string),
	}

	advertisingScore := 0
	for _, indicator := range social.BudgetIndicators {
		platform := strings.TrimSuffix(indicator, "_ads")
		if weight, ok := adPlatformWeights[platform]; ok {
			advertisingScore += weight
			result.SpendingIndicators = append(result.SpendingIndicators, "advertising_"+indicator)
		}
	}

	techSpendScore := 0
	for _, data := range tech.Detected {
		switch data.CostTier {
		case "high":
			techSpendScore += 5
		case "medium":
			techSpendScore += 3
		default:
			techSpendScore++
		}
	}

	hiringScore := 0
	for _, keyword := range hiringKeywords {
		if strings.Contains(doc.Text, keyword) {
			hiringScore++
		}
	}

	revenueScore := 0
	for _, keyword := range revenueKeywords {
		if strings.Contains(doc.Text, keyword) {
			revenueScore += 2
		}
	}

	total := advertisingScore + techSpendScore + hiringScore + revenueScore

	switch {
	case total >= 20:
		result.Level = "high"
		result.MonthlySpendEstimate = "$10,000-$100,000+"
		result.InvestmentCapacity = "high"
	case total >= 10:
		result.Level = "medium-high"
		result.MonthlySpendEstimate = "$5,000-$25,000"
		result.InvestmentCapacity = "medium-high"
	case total >= 5:
		result.Level = "medium"
		result.MonthlySpendEstimate = "$1,000-$10,000"
		result.InvestmentCapacity = "medium"
	default:
		result.Level = "low"
		result.MonthlySpendEstimate = "$100-$2,000"
		result.InvestmentCapacity = "low"
	}

	if advertisingScore > 0 {
		result.Allocation["advertising"] = fmt.Sprintf("%d%%", minInt(advertisingScore*10, 60))
	}
	if techSpendScore > 0 {
		result.Allocation["technology"] = fmt.Sprintf("%d%%", minInt(techSpendScore*8, 40))
	}
	if hiringScore > 0 {
		result.Allocation["personnel"] = fmt.Sprintf("%d%%", minInt(hiringScore*15, 70))
	}

	if advertisingScore > 8 {
		result.OptimizationAreas = append(result.OptimizationAreas, "advertising_consolidation")
	}
	if techSpendScore > 10 {
		result.OptimizationAreas = append(result.OptimizationAreas, "tech_stack_optimization")
	}
	if advertisingScore == 0 {
		switch result.Level {
		case "medium", "medium-high", "high":
			result.OptimizationAreas = append(result.OptimizationAreas, "marketing_channel_expansion")
		}
	}

	result.FinancialHealthScore = minInt(total*5, 100)

	if advertisingScore == 0 {
		result.Opportunities = append(result.Opportunities, Opportunity{
			Priority:       PriorityMedium,
			Recommendation: "Start paid acquisition channels",
			Implementation: "Launch tracked campaigns on Google or the social platforms already in use",
			Impact:         "Open a predictable lead source beyond organic traffic",
		})
	}

	return result
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
