package reports

import (
	"fmt"
	"sort"
	"strings"

	"github.com/leadscope/backend/analyzer"
)

// RenderMarkdown turns an analysis result into a human-readable report:
// the qualification verdict, the category breakdown, and the prioritized
// recommendation list.
func RenderMarkdown(result *analyzer.AnalysisResult) string {
	var b strings.Builder

	company := result.CompanyProfile.CompanyName
	if company == "" {
		company = result.URL
	}

	fmt.Fprintf(&b, "# Lead Analysis Report: %s\n\n", company)
	fmt.Fprintf(&b, "- URL: %s\n", result.URL)
	fmt.Fprintf(&b, "- Analyzed: %s\n", result.Timestamp)
	if result.CompanyProfile.Industry != "" {
		fmt.Fprintf(&b, "- Industry: %s\n", result.CompanyProfile.Industry)
	}
	if result.CompanyProfile.Location != "" {
		fmt.Fprintf(&b, "- Location: %s\n", result.CompanyProfile.Location)
	}
	if result.CompanyProfile.Employees != "" {
		fmt.Fprintf(&b, "- Employees: %s\n", result.CompanyProfile.Employees)
	}
	b.WriteString("\n")

	score := result.LeadScore
	fmt.Fprintf(&b, "## Lead Qualification: %d/100 (%s)\n\n", score.Overall, score.Quality)
	fmt.Fprintf(&b, "%s\n\n", score.Explanation)
	fmt.Fprintf(&b, "- Sales priority: %s\n", score.SalesPriority)
	fmt.Fprintf(&b, "- Conversion probability: %s\n", score.ConversionProbability)
	fmt.Fprintf(&b, "- Estimated deal size: %s\n", score.DealSizeEstimate)
	fmt.Fprintf(&b, "- Estimated sales cycle: %s\n\n", score.SalesCycleEstimate)

	b.WriteString("### Score Breakdown\n\n")
	b.WriteString("| Category | Score | Max |\n")
	b.WriteString("|----------|-------|-----|\n")
	for _, row := range scoreRows(score.CategoryScores) {
		fmt.Fprintf(&b, "| %s | %d | %d |\n", row.label, row.score, row.max)
	}
	fmt.Fprintf(&b, "\nAutomation readiness: %d/100. Website SEO score: %d/100.\n\n",
		result.AutomationScore, result.SEO.Score)

	if len(score.Strengths) > 0 {
		b.WriteString("### Strengths\n\n")
		for _, s := range score.Strengths {
			fmt.Fprintf(&b, "- %s\n", s)
		}
		b.WriteString("\n")
	}

	if len(score.ImprovementAreas) > 0 {
		b.WriteString("### Improvement Areas\n\n")
		for _, s := range score.ImprovementAreas {
			fmt.Fprintf(&b, "- %s\n", s)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "## Budget Profile\n\n")
	fmt.Fprintf(&b, "- Overall budget level: %s\n", result.Budget.Level)
	fmt.Fprintf(&b, "- Estimated monthly spend: %s\n", result.Budget.MonthlySpendEstimate)
	fmt.Fprintf(&b, "- Investment capacity: %s\n", result.Budget.InvestmentCapacity)
	fmt.Fprintf(&b, "- Financial health score: %d/100\n", result.Budget.FinancialHealthScore)
	if len(result.Budget.Allocation) > 0 {
		keys := make([]string, 0, len(result.Budget.Allocation))
		for k := range result.Budget.Allocation {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "- Allocation, %s: %s\n", k, result.Budget.Allocation[k])
		}
	}
	b.WriteString("\n")

	if len(result.Recommendations) > 0 {
		b.WriteString("## Recommendations\n\n")
		for i, rec := range result.Recommendations {
			fmt.Fprintf(&b, "%d. **%s** (%s priority, %s)\n", i+1, rec.Recommendation, rec.Priority, rec.Category)
			if rec.Implementation != "" {
				fmt.Fprintf(&b, "   - How: %s\n", rec.Implementation)
			}
			if rec.Impact != "" {
				fmt.Fprintf(&b, "   - Impact: %s\n", rec.Impact)
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

type scoreRow struct {
	label string
	score int
	max   int
}

// scoreRows keeps the category order fixed so reports diff cleanly.
func scoreRows(categories map[string]int) []scoreRow {
	return []scoreRow{
		{"Company Profile", categories["company_profile"], 25},
		{"Social Media Intelligence", categories["social_intelligence"], 20},
		{"Technology Stack", categories["technology"], 20},
		{"Budget Indicators", categories["budget"], 25},
		{"Contact Accessibility", categories["contact_accessibility"], 10},
	}
}
