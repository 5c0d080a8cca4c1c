package analyzer

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// analyzeContact combines contact method discovery with sales-readiness
// scoring: phone +3, email +2, each named decision maker +5, form
// complexity capped at +10, each lead magnet +2. Readiness >=15 is high
// accessibility, >=8 medium, otherwise low.
func (a *Analyzer) analyzeContact(doc *Document) ContactAnalysis {
	result := ContactAnalysis{}

	doc.Find("a[href]").EachWithBreak(func(_ int, link *goquery.Selection) bool {
		href, _ := link.Attr("href")
		text := strings.ToLower(link.Text())
		if strings.Contains(text, "contact") || strings.Contains(strings.ToLower(href), "contact") {
			result.HasContactPage = true
			result.ContactMethods = append(result.ContactMethods, "contact_page")
			return false
		}
		return true
	})

	phones := phoneRe.FindAllString(doc.RawText, -1)
	if len(phones) > 0 {
		if len(phones) > 3 {
			result.PhoneNumbers = phones[:3]
		} else {
			result.PhoneNumbers = phones
		}
		result.ContactMethods = append(result.ContactMethods, "phone")
		result.SalesReadinessScore += 3
	}

	emails := emailRe.FindAllString(doc.RawText, -1)
	if len(emails) > 0 {
		if len(emails) > 3 {
			result.EmailAddresses = emails[:3]
		} else {
			result.EmailAddresses = emails
		}
		result.ContactMethods = append(result.ContactMethods, "email")
		result.SalesReadinessScore += 2
	}

	for _, keyword := range addressKeywords {
		if strings.Contains(doc.Text, keyword) {
			result.PhysicalAddress = true
			result.ContactMethods = append(result.ContactMethods, "address")
			break
		}
	}

	for _, re := range personnelTitleRes {
		for _, match := range re.FindAllStringSubmatch(doc.RawText, -1) {
			name := "Unknown"
			if len(match) > 2 {
				name = match[2]
			}
			result.KeyPersonnel = append(result.KeyPersonnel, Personnel{
				Title: match[1],
				Name:  name,
			})
			result.SalesReadinessScore += 5
		}
	}

	forms := doc.Find("form")
	if forms.Length() > 0 {
		quality := ContactFormQuality{Count: forms.Length()}

		forms.Each(func(_ int, form *goquery.Selection) {
			inputs := form.Find("input, textarea, select")
			quality.ComplexityScore += inputs.Length()

			inputs.Each(func(_ int, inp *goquery.Selection) {
				name, _ := inp.Attr("name")
				id, _ := inp.Attr("id")
				field := strings.ToLower(name + id)
				if strings.Contains(field, "email") {
					quality.HasEmailField = true
				}
				if strings.Contains(field, "phone") {
					quality.HasPhoneField = true
				}
				if strings.Contains(field, "company") {
					quality.HasCompanyField = true
				}
			})
		})

		result.FormQuality = quality
		if quality.ComplexityScore > 10 {
			result.SalesReadinessScore += 10
		} else {
			result.SalesReadinessScore += quality.ComplexityScore
		}
	}

	forms.EachWithBreak(func(_ int, form *goquery.Selection) bool {
		hasContactField := false
		form.Find("input, textarea").Each(func(_ int, inp *goquery.Selection) {
			t, _ := inp.Attr("type")
			name, _ := inp.Attr("name")
			switch strings.ToLower(name) {
			case "email", "message", "subject":
				hasContactField = true
			}
			if t == "email" {
				hasContactField = true
			}
		})
		if hasContactField {
			result.ContactForm = true
			result.ContactMethods = append(result.ContactMethods, "contact_form")
			return false
		}
		return true
	})

	for _, keyword := range leadMagnetKeywords {
		if strings.Contains(doc.Text, keyword) {
			result.LeadMagnets = append(result.LeadMagnets, keyword)
		}
	}
	result.SalesReadinessScore += len(result.LeadMagnets) * 2

	switch {
	case result.SalesReadinessScore >= 15:
		result.Accessibility = "high"
	case result.SalesReadinessScore >= 8:
		result.Accessibility = "medium"
	default:
		result.Accessibility = "low"
	}

	if len(result.ContactMethods) < 2 {
		result.Opportunities = append(result.Opportunities, Opportunity{
			Priority:       PriorityHigh,
			Recommendation: "Add multiple contact methods",
			Implementation: "Include phone, email, contact form, and physical address",
			Impact:         "Make it easier for customers to reach you",
		})
	}

	if !result.ContactForm {
		result.Opportunities = append(result.Opportunities, Opportunity{
			Priority:       PriorityMedium,
			Recommendation: "Add contact form for inquiries",
			Implementation: "Create a simple contact form with name, email, and message fields",
			Impact:         "Provide easy way for customers to send inquiries",
		})
	}

	return result
}

// analyzeCompanyProfile infers business identity from the title, meta
// description, and keyword frequency per industry.
func (a *Analyzer) analyzeCompanyProfile(doc *Document) CompanyProfile {
	profile := CompanyProfile{}

	profile.CompanyName = strings.TrimSpace(doc.Find("title").First().Text())
	profile.Description, _ = doc.Find(`meta[name="description"]`).Attr("content")
	profile.Description = strings.TrimSpace(profile.Description)

	// Most frequent industry keyword set wins; ties resolve in table order.
	bestScore := 0
	for _, industry := range industryOrder {
		score := 0
		for _, keyword := range industryKeywords[industry] {
			if strings.Contains(doc.Text, keyword) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			profile.Industry = industry
		}
	}

	if m := locationStateRe.FindStringSubmatch(doc.RawText); m != nil {
		profile.Location = fmt.Sprintf("%s, %s", m[1], m[2])
	} else if m := locationCountryRe.FindStringSubmatch(doc.RawText); m != nil {
		profile.Location = fmt.Sprintf("%s, %s", m[1], m[2])
	}

	if m := employeeCountRe.FindStringSubmatch(doc.RawText); m != nil {
		profile.Employees = m[1]
	} else if m := teamOfRe.FindStringSubmatch(doc.RawText); m != nil {
		profile.Employees = m[1]
	} else if m := peopleRangeRe.FindStringSubmatch(doc.RawText); m != nil {
		profile.Employees = fmt.Sprintf("%s-%s", m[1], m[2])
	}

	return profile
}
