package analyzer

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// analyzeSEO runs the on-page audit surfaces, computes the 0-100 score,
// and flattens every surface's opportunities into one list.
func (a *Analyzer) analyzeSEO(doc *Document, pageURL string) SEOAnalysis {
	result := SEOAnalysis{
		MetaTags:      a.analyzeMetaTags(doc),
		Headers:       a.analyzeHeaderStructure(doc),
		Images:        a.analyzeImages(doc),
		Schema:        a.analyzeSchemaMarkup(doc),
		LocalSEO:      a.analyzeLocalSEO(doc),
		URLStructure:  a.analyzeURLStructure(doc, pageURL),
		InternalLinks: a.analyzeInternalLinks(doc, pageURL),
		PageSpeed:     a.analyzePageSpeed(doc),
	}

	result.Score = calculateSEOScore(&result)

	result.Opportunities = append(result.Opportunities, result.MetaTags.Opportunities...)
	result.Opportunities = append(result.Opportunities, result.PageSpeed.Opportunities...)
	result.Opportunities = append(result.Opportunities, result.Images.Opportunities...)
	result.Opportunities = append(result.Opportunities, result.Schema.Opportunities...)
	result.Opportunities = append(result.Opportunities, result.LocalSEO.Opportunities...)
	result.Opportunities = append(result.Opportunities, result.Headers.Opportunities...)
	result.Opportunities = append(result.Opportunities, result.URLStructure.Opportunities...)
	result.Opportunities = append(result.Opportunities, result.InternalLinks.Opportunities...)

	return result
}

func (a *Analyzer) analyzeMetaTags(doc *Document) MetaTagAnalysis {
	result := MetaTagAnalysis{
		OGTags:       make(map[string]string),
		TwitterCards: make(map[string]string),
	}

	title := doc.Find("title").First()
	if title.Length() > 0 {
		result.Title = strings.TrimSpace(title.Text())
		result.TitleLength = len(result.Title)

		if result.TitleLength < titleMinLength {
			result.Opportunities = append(result.Opportunities, Opportunity{
				Priority:       PriorityHigh,
				Recommendation: "Increase title tag length",
				Implementation: fmt.Sprintf("Expand title to %d-%d characters", titleMinLength, titleMaxLength),
				Impact:         "Improve search engine visibility and click-through rates",
			})
		} else if result.TitleLength > titleMaxLength {
			result.Opportunities = append(result.Opportunities, Opportunity{
				Priority:       PriorityMedium,
				Recommendation: "Shorten title tag",
				Implementation: fmt.Sprintf("Reduce title to under %d characters", titleMaxLength),
				Impact:         "Prevent title truncation in search results",
			})
		}
	} else {
		result.Opportunities = append(result.Opportunities, Opportunity{
			Priority:       PriorityHigh,
			Recommendation: "Add title tag",
			Implementation: "Add descriptive title tag to page head",
			Impact:         "Critical for search engine ranking and user experience",
		})
	}

	if desc, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok {
		result.Description = strings.TrimSpace(desc)
		result.DescriptionLength = len(result.Description)

		if result.DescriptionLength < descriptionMinLength {
			result.Opportunities = append(result.Opportunities, Opportunity{
				Priority:       PriorityMedium,
				Recommendation: "Expand meta description",
				Implementation: fmt.Sprintf("Increase description to %d-%d characters", descriptionMinLength, descriptionMaxLength),
				Impact:         "Improve search result snippets and click-through rates",
			})
		} else if result.DescriptionLength > descriptionMaxLength {
			result.Opportunities = append(result.Opportunities, Opportunity{
				Priority:       PriorityLow,
				Recommendation: "Shorten meta description",
				Implementation: fmt.Sprintf("Reduce description to under %d characters", descriptionMaxLength),
				Impact:         "Prevent description truncation in search results",
			})
		}
	} else {
		result.Opportunities = append(result.Opportunities, Opportunity{
			Priority:       PriorityHigh,
			Recommendation: "Add meta description",
			Implementation: "Add compelling meta description summarizing page content",
			Impact:         "Improve search result appearance and click-through rates",
		})
	}

	result.Keywords, _ = doc.Find(`meta[name="keywords"]`).Attr("content")
	result.Robots, _ = doc.Find(`meta[name="robots"]`).Attr("content")

	if canonical, ok := doc.Find(`link[rel="canonical"]`).Attr("href"); ok {
		result.Canonical = strings.TrimSpace(canonical)
	} else {
		result.Opportunities = append(result.Opportunities, Opportunity{
			Priority:       PriorityMedium,
			Recommendation: "Add canonical URL",
			Implementation: "Add canonical link tag to prevent duplicate content issues",
			Impact:         "Improve SEO by consolidating page authority",
		})
	}

	doc.Find(`meta[property^="og:"]`).Each(func(_ int, s *goquery.Selection) {
		prop, _ := s.Attr("property")
		content, _ := s.Attr("content")
		result.OGTags[strings.TrimPrefix(prop, "og:")] = strings.TrimSpace(content)
	})

	if len(result.OGTags) == 0 {
		result.Opportunities = append(result.Opportunities, Opportunity{
			Priority:       PriorityMedium,
			Recommendation: "Add Open Graph meta tags",
			Implementation: "Add og:title, og:description, og:image, og:url tags",
			Impact:         "Improve social media sharing appearance",
		})
	}

	doc.Find(`meta[name^="twitter:"]`).Each(func(_ int, s *goquery.Selection) {
		name, _ := s.Attr("name")
		content, _ := s.Attr("content")
		result.TwitterCards[strings.TrimPrefix(name, "twitter:")] = strings.TrimSpace(content)
	})

	return result
}

func (a *Analyzer) analyzeHeaderStructure(doc *Document) HeaderStructure {
	result := HeaderStructure{
		Counts: make(map[string]int),
	}

	for level := 1; level <= 6; level++ {
		tag := fmt.Sprintf("h%d", level)
		headers := doc.Find(tag)
		result.Counts[tag] = headers.Length()

		headers.Each(func(_ int, h *goquery.Selection) {
			if strings.TrimSpace(h.Text()) == "" {
				result.EmptyHeaders++
			}
		})
	}

	switch {
	case result.Counts["h1"] == 0:
		result.MissingH1 = true
	case result.Counts["h1"] > 1:
		result.MultipleH1 = true
	}

	if result.MissingH1 {
		result.Opportunities = append(result.Opportunities, Opportunity{
			Priority:       PriorityHigh,
			Recommendation: "Add H1 heading",
			Implementation: "Add single, descriptive H1 tag to page",
			Impact:         "Improve page structure and SEO ranking",
		})
	}

	if result.MultipleH1 {
		result.Opportunities = append(result.Opportunities, Opportunity{
			Priority:       PriorityMedium,
			Recommendation: "Use only one H1 per page",
			Implementation: "Convert additional H1 tags to H2 or appropriate level",
			Impact:         "Improve semantic structure and SEO",
		})
	}

	if result.EmptyHeaders > 0 {
		result.Opportunities = append(result.Opportunities, Opportunity{
			Priority:       PriorityMedium,
			Recommendation: "Remove or populate empty header tags",
			Implementation: fmt.Sprintf("Add content to %d empty header tags", result.EmptyHeaders),
			Impact:         "Clean up HTML structure and improve accessibility",
		})
	}

	total := 0
	for _, count := range result.Counts {
		total += count
	}
	if total < 3 {
		result.Opportunities = append(result.Opportunities, Opportunity{
			Priority:       PriorityLow,
			Recommendation: "Add more header tags for content structure",
			Implementation: "Use H2-H6 tags to create clear content hierarchy",
			Impact:         "Improve content organization and user experience",
		})
	}

	return result
}

func (a *Analyzer) analyzeImages(doc *Document) ImageAnalysis {
	result := ImageAnalysis{}

	images := doc.Find("img")
	result.TotalImages = images.Length()
	if result.TotalImages == 0 {
		return result
	}

	images.Each(func(_ int, img *goquery.Selection) {
		if alt, exists := img.Attr("alt"); exists {
			if strings.TrimSpace(alt) != "" {
				result.ImagesWithAlt++
			} else {
				result.EmptyAltTags++
			}
		} else {
			result.ImagesWithoutAlt++
		}

		loading, _ := img.Attr("loading")
		class, _ := img.Attr("class")
		if loading == "lazy" || strings.Contains(strings.ToLower(class), "lazy") {
			result.LazyLoading++
		}

		_, hasSrcset := img.Attr("srcset")
		_, hasSizes := img.Attr("sizes")
		if hasSrcset || hasSizes {
			result.ResponsiveImages++
		}
	})

	result.AltTextPercent = float64(result.ImagesWithAlt) / float64(result.TotalImages) * 100

	if result.AltTextPercent < altTextThreshold {
		result.Opportunities = append(result.Opportunities, Opportunity{
			Priority:       PriorityHigh,
			Recommendation: "Add alt text to images",
			Implementation: fmt.Sprintf("Add descriptive alt text to %d images", result.ImagesWithoutAlt+result.EmptyAltTags),
			Impact:         "Improve accessibility and image SEO",
		})
	}

	if float64(result.LazyLoading) < float64(result.TotalImages)*0.5 {
		result.Opportunities = append(result.Opportunities, Opportunity{
			Priority:       PriorityMedium,
			Recommendation: "Implement lazy loading for images",
			Implementation: `Add loading="lazy" attribute to below-fold images`,
			Impact:         "Improve initial page load speed and Core Web Vitals",
		})
	}

	if float64(result.ResponsiveImages) < float64(result.TotalImages)*0.3 {
		result.Opportunities = append(result.Opportunities, Opportunity{
			Priority:       PriorityMedium,
			Recommendation: "Add responsive images",
			Implementation: "Use srcset and sizes attributes for different screen sizes",
			Impact:         "Optimize images for mobile devices and improve load times",
		})
	}

	return result
}

func (a *Analyzer) analyzeSchemaMarkup(doc *Document) SchemaAnalysis {
	result := SchemaAnalysis{}

	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, script *goquery.Selection) {
		var data map[string]interface{}
		if err := json.Unmarshal([]byte(script.Text()), &data); err != nil {
			return
		}
		result.JSONLDCount++
		if t, ok := data["@type"].(string); ok {
			result.SchemaTypes = append(result.SchemaTypes, strings.ToLower(t))
		}
	})

	doc.Find("[itemtype]").Each(func(_ int, s *goquery.Selection) {
		if itemtype, ok := s.Attr("itemtype"); ok {
			result.Microdata = append(result.Microdata, itemtype)
		}
	})

	if result.JSONLDCount == 0 && len(result.Microdata) == 0 {
		result.Opportunities = append(result.Opportunities, Opportunity{
			Priority:       PriorityHigh,
			Recommendation: "Add structured data markup",
			Implementation: "Implement JSON-LD schema for organization, local business, or relevant content type",
			Impact:         "Improve search result appearance with rich snippets",
		})
	}

	hasLocalSchema := false
	for _, t := range result.SchemaTypes {
		if strings.Contains(t, "localbusiness") {
			hasLocalSchema = true
			break
		}
	}

	hasLocalSignals := false
	for _, word := range []string{"hours", "phone", "address"} {
		if strings.Contains(doc.Text, word) {
			hasLocalSignals = true
			break
		}
	}

	if hasLocalSignals && !hasLocalSchema {
		result.Opportunities = append(result.Opportunities, Opportunity{
			Priority:       PriorityMedium,
			Recommendation: "Add LocalBusiness schema markup",
			Implementation: "Implement LocalBusiness schema with address, phone, and hours",
			Impact:         "Improve local search visibility and Google My Business integration",
		})
	}

	return result
}

func (a *Analyzer) analyzeLocalSEO(doc *Document) LocalSEOAnalysis {
	result := LocalSEOAnalysis{}

	result.NAPPhone = phoneRe.MatchString(doc.RawText)

	for _, indicator := range []string{"street", "avenue", "road", "suite", "floor", "building"} {
		if strings.Contains(doc.Text, indicator) {
			result.NAPAddress = true
			break
		}
	}

	for _, keyword := range localSEOKeywords {
		if strings.Contains(doc.Text, keyword) {
			result.LocalKeywords = append(result.LocalKeywords, keyword)
		}
	}

	doc.Find("iframe").EachWithBreak(func(_ int, iframe *goquery.Selection) bool {
		src, _ := iframe.Attr("src")
		src = strings.ToLower(src)
		if strings.Contains(src, "google.com/maps") || strings.Contains(src, "maps.google.com") {
			result.GoogleMapsEmbed = true
			return false
		}
		return true
	})

	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, script *goquery.Selection) bool {
		var data map[string]interface{}
		if err := json.Unmarshal([]byte(script.Text()), &data); err != nil {
			return true
		}
		if t, ok := data["@type"].(string); ok && strings.Contains(strings.ToLower(t), "localbusiness") {
			result.LocalSchema = true
			return false
		}
		return true
	})

	if !result.NAPPhone || !result.NAPAddress {
		result.Opportunities = append(result.Opportunities, Opportunity{
			Priority:       PriorityHigh,
			Recommendation: "Add complete NAP information",
			Implementation: "Display consistent Name, Address, Phone on all pages",
			Impact:         "Improve local search rankings and customer trust",
		})
	}

	if !result.GoogleMapsEmbed {
		result.Opportunities = append(result.Opportunities, Opportunity{
			Priority:       PriorityMedium,
			Recommendation: "Add Google Maps embed",
			Implementation: "Embed Google Maps showing business location",
			Impact:         "Improve user experience and local SEO signals",
		})
	}

	if !result.LocalSchema {
		result.Opportunities = append(result.Opportunities, Opportunity{
			Priority:       PriorityMedium,
			Recommendation: "Add LocalBusiness schema markup",
			Implementation: "Implement structured data for local business information",
			Impact:         "Enhance local search visibility and rich snippets",
		})
	}

	return result
}

func (a *Analyzer) analyzeURLStructure(doc *Document, pageURL string) URLStructureAnalysis {
	result := URLStructureAnalysis{
		URLLength:   len(pageURL),
		SEOFriendly: true,
	}

	parsed, err := url.Parse(pageURL)
	if err != nil {
		parsed = &url.URL{}
	}

	if parsed.RawQuery != "" {
		result.HasParameters = true
	}

	path := strings.ToLower(parsed.Path)
	if parsed.RawQuery == "" {
		for _, c := range []string{"_", "%", "=", "&", "?"} {
			if strings.Contains(path, c) {
				result.SEOFriendly = false
				break
			}
		}
	}

	for _, selector := range breadcrumbSelectors {
		if doc.Find(selector).Length() > 0 {
			result.Breadcrumbs = true
			break
		}
	}

	internalCount := 0
	for _, href := range doc.AnchorHrefs {
		if strings.HasPrefix(href, "http") {
			if parsed.Host != "" && strings.Contains(href, strings.ToLower(parsed.Host)) {
				internalCount++
			}
		} else {
			internalCount++
		}
	}

	if result.URLLength > 100 {
		result.Opportunities = append(result.Opportunities, Opportunity{
			Priority:       PriorityLow,
			Recommendation: "Shorten URL length",
			Implementation: "Use shorter, more concise URL paths",
			Impact:         "Improve user experience and shareability",
		})
	}

	if !result.SEOFriendly {
		result.Opportunities = append(result.Opportunities, Opportunity{
			Priority:       PriorityMedium,
			Recommendation: "Improve URL structure",
			Implementation: "Use hyphens instead of underscores, avoid special characters",
			Impact:         "Better search engine crawling and user experience",
		})
	}

	if !result.Breadcrumbs && internalCount > 10 {
		result.Opportunities = append(result.Opportunities, Opportunity{
			Priority:       PriorityLow,
			Recommendation: "Add breadcrumb navigation",
			Implementation: "Implement breadcrumb navigation for better site structure",
			Impact:         "Improve user navigation and search engine understanding",
		})
	}

	return result
}

func (a *Analyzer) analyzeInternalLinks(doc *Document, pageURL string) LinkAnalysis {
	result := LinkAnalysis{}

	parsed, err := url.Parse(pageURL)
	if err != nil {
		parsed = &url.URL{}
	}
	host := strings.ToLower(parsed.Host)

	var anchorTexts []string

	doc.Find("a[href]").Each(func(_ int, link *goquery.Selection) {
		href, _ := link.Attr("href")
		href = strings.ToLower(href)
		result.TotalLinks++

		if text := strings.TrimSpace(link.Text()); text != "" {
			anchorTexts = append(anchorTexts, strings.ToLower(text))
		}

		if rel, _ := link.Attr("rel"); strings.Contains(rel, "nofollow") {
			result.NofollowLinks++
		}

		if strings.HasPrefix(href, "http") {
			if host != "" && strings.Contains(href, host) {
				result.InternalLinks++
			} else {
				result.ExternalLinks++
			}
		} else {
			result.InternalLinks++
		}
	})

	unique := make(map[string]struct{}, len(anchorTexts))
	for _, text := range anchorTexts {
		unique[text] = struct{}{}
	}
	result.TotalAnchors = len(anchorTexts)
	result.UniqueAnchors = len(unique)
	if result.TotalAnchors > 0 {
		result.DiversityRatio = float64(result.UniqueAnchors) / float64(result.TotalAnchors)
	}

	if result.InternalLinks < 5 {
		result.Opportunities = append(result.Opportunities, Opportunity{
			Priority:       PriorityMedium,
			Recommendation: "Add more internal links",
			Implementation: "Link to relevant pages within your site",
			Impact:         "Improve site navigation and distribute page authority",
		})
	}

	if result.DiversityRatio < 0.5 {
		result.Opportunities = append(result.Opportunities, Opportunity{
			Priority:       PriorityLow,
			Recommendation: "Diversify anchor text",
			Implementation: "Use varied, descriptive anchor text for links",
			Impact:         "Improve SEO and user experience",
		})
	}

	return result
}

func (a *Analyzer) analyzePageSpeed(doc *Document) PageSpeedAnalysis {
	result := PageSpeedAnalysis{
		ExternalScripts:     len(doc.ScriptSrcs),
		ExternalStylesheets: doc.Find(`link[rel="stylesheet"][href]`).Length(),
		InlineStyles:        doc.Find("style").Length(),
	}

	for _, src := range doc.ScriptSrcs {
		if strings.Contains(src, ".min.js") {
			result.MinifiedJS = true
			break
		}
	}

	doc.Find(`link[rel="stylesheet"][href]`).EachWithBreak(func(_ int, css *goquery.Selection) bool {
		href, _ := css.Attr("href")
		if strings.Contains(strings.ToLower(href), ".min.css") {
			result.MinifiedCSS = true
			return false
		}
		return true
	})

	for _, src := range doc.ScriptSrcs {
		for _, cdn := range cdnHosts {
			if strings.Contains(src, cdn) {
				result.CDNUsage = true
				break
			}
		}
		if result.CDNUsage {
			break
		}
	}

	if result.ExternalScripts > 10 {
		result.Opportunities = append(result.Opportunities, Opportunity{
			Priority:       PriorityMedium,
			Recommendation: "Reduce number of external scripts",
			Implementation: "Combine, minify, or lazy-load JavaScript files",
			Impact:         "Improve page load speed and Core Web Vitals",
		})
	}

	if result.ExternalStylesheets > 5 {
		result.Opportunities = append(result.Opportunities, Opportunity{
			Priority:       PriorityMedium,
			Recommendation: "Reduce number of external stylesheets",
			Implementation: "Combine and minify CSS files",
			Impact:         "Reduce render-blocking resources and improve load time",
		})
	}

	if !result.MinifiedJS && !result.MinifiedCSS {
		result.Opportunities = append(result.Opportunities, Opportunity{
			Priority:       PriorityMedium,
			Recommendation: "Minify CSS and JavaScript files",
			Implementation: "Use build tools to minify assets for production",
			Impact:         "Reduce file sizes and improve load speed",
		})
	}

	if !result.CDNUsage {
		result.Opportunities = append(result.Opportunities, Opportunity{
			Priority:       PriorityLow,
			Recommendation: "Consider using CDN for static assets",
			Implementation: "Use CDN for JavaScript libraries and static files",
			Impact:         "Improve global load times and reduce server load",
		})
	}

	return result
}

// calculateSEOScore applies the fixed breakpoint table. Maximum 100.
func calculateSEOScore(seo *SEOAnalysis) int {
	score := 0

	// Title and meta tags (25)
	if seo.MetaTags.Title != "" {
		score += 10
		if seo.MetaTags.TitleLength >= titleMinLength && seo.MetaTags.TitleLength <= titleMaxLength {
			score += 5
		}
	}
	if seo.MetaTags.Description != "" {
		score += 5
		if seo.MetaTags.DescriptionLength >= descriptionMinLength && seo.MetaTags.DescriptionLength <= descriptionMaxLength {
			score += 5
		}
	}

	// Header structure (15)
	if seo.Headers.Counts["h1"] == 1 {
		score += 10
	}
	totalHeaders := 0
	for _, count := range seo.Headers.Counts {
		totalHeaders += count
	}
	if totalHeaders >= 3 {
		score += 5
	}

	// Images (15)
	if seo.Images.AltTextPercent >= 80 {
		score += 10
	} else if seo.Images.AltTextPercent >= 50 {
		score += 5
	}
	if seo.Images.LazyLoading > 0 {
		score += 5
	}

	// Schema markup (15)
	if seo.Schema.JSONLDCount > 0 || len(seo.Schema.Microdata) > 0 {
		score += 15
	}

	// Local SEO (10)
	if seo.LocalSEO.NAPPhone && seo.LocalSEO.NAPAddress {
		score += 5
	}
	if seo.LocalSEO.LocalSchema {
		score += 5
	}

	// URL structure (10)
	if seo.URLStructure.SEOFriendly {
		score += 5
	}
	if seo.URLStructure.Breadcrumbs {
		score += 5
	}

	// Page speed indicators (10)
	if seo.PageSpeed.MinifiedJS || seo.PageSpeed.MinifiedCSS {
		score += 5
	}
	if seo.PageSpeed.CDNUsage {
		score += 5
	}

	if score > 100 {
		score = 100
	}
	return score
}
