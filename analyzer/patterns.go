package analyzer

import "regexp"

// Static detection tables. These are wire-contract constants: the pattern
// weights, cost tiers, and keyword lists drive the scores clients see, so
// changing any value here changes the published scoring behavior.

type socialPlatformConfig struct {
	Patterns           []*regexp.Regexp
	BusinessIndicators []string
	Weight             int
	PixelPatterns      []*regexp.Regexp
}

var socialPlatformOrder = []string{
	"facebook", "instagram", "twitter", "linkedin", "youtube", "tiktok", "pinterest",
}

var socialPlatforms = map[string]socialPlatformConfig{
	"facebook": {
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`facebook\.com/([^/?]+)`),
			regexp.MustCompile(`fb\.com/([^/?]+)`),
		},
		BusinessIndicators: []string{"business", "pages", "profile.php"},
		Weight:             10,
		PixelPatterns: []*regexp.Regexp{
			regexp.MustCompile(`connect\.facebook\.net`),
			regexp.MustCompile(`facebook\.com/tr`),
		},
	},
	"instagram": {
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`instagram\.com/([^/?]+)`),
			regexp.MustCompile(`instagr\.am/([^/?]+)`),
		},
		BusinessIndicators: []string{"business"},
		Weight:             8,
	},
	"twitter": {
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`twitter\.com/([^/?]+)`),
			regexp.MustCompile(`x\.com/([^/?]+)`),
		},
		BusinessIndicators: []string{"business"},
		Weight:             7,
		PixelPatterns: []*regexp.Regexp{
			regexp.MustCompile(`analytics\.twitter\.com`),
			regexp.MustCompile(`ads-twitter\.com`),
		},
	},
	"linkedin": {
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`linkedin\.com/(?:company/|in/)([^/?]+)`),
		},
		BusinessIndicators: []string{"company", "showcase"},
		Weight:             15,
		PixelPatterns: []*regexp.Regexp{
			regexp.MustCompile(`snap\.licdn\.com`),
			regexp.MustCompile(`linkedin\.com/analytics`),
		},
	},
	"youtube": {
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`youtube\.com/(?:c/|channel/|user/)([^/?]+)`),
			regexp.MustCompile(`youtu\.be/([^/?]+)`),
		},
		BusinessIndicators: []string{"channel", "user"},
		Weight:             6,
	},
	"tiktok": {
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`tiktok\.com/@([^/?]+)`),
		},
		BusinessIndicators: []string{"business"},
		Weight:             5,
		PixelPatterns: []*regexp.Regexp{
			regexp.MustCompile(`analytics\.tiktok\.com`),
		},
	},
	"pinterest": {
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`pinterest\.com/([^/?]+)`),
		},
		BusinessIndicators: []string{"business"},
		Weight:             4,
	},
}

type techConfig struct {
	Patterns          []*regexp.Regexp
	Indicators        []string
	Category          string
	CostTier          string
	AgencyOpportunity string
}

var techOrder = []string{
	"wordpress", "shopify", "wix", "squarespace",
	"hubspot", "salesforce", "marketo", "pardot", "custom_development",
}

var techPatterns = map[string]techConfig{
	"wordpress": {
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`wp-content`),
			regexp.MustCompile(`wp-includes`),
			regexp.MustCompile(`/wordpress/`),
		},
		Indicators:        []string{"wp-json", "xmlrpc.php"},
		Category:          "cms",
		CostTier:          "low",
		AgencyOpportunity: "high",
	},
	"shopify": {
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`cdn\.shopify\.com`),
			regexp.MustCompile(`shopify\.com`),
			regexp.MustCompile(`myshopify\.com`),
		},
		Indicators:        []string{"shopify.shop", "shop_money_format"},
		Category:          "ecommerce",
		CostTier:          "medium",
		AgencyOpportunity: "high",
	},
	"wix": {
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`wix\.com`),
			regexp.MustCompile(`wixstatic\.com`),
			regexp.MustCompile(`wixsite\.com`),
		},
		Indicators:        []string{"wixcode", "wix-warmup"},
		Category:          "cms",
		CostTier:          "low",
		AgencyOpportunity: "medium",
	},
	"squarespace": {
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`squarespace\.com`),
			regexp.MustCompile(`sqspcdn\.com`),
		},
		Indicators:        []string{"squarespace-cdn"},
		Category:          "cms",
		CostTier:          "low",
		AgencyOpportunity: "medium",
	},
	"hubspot": {
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`hubspot\.com`),
			regexp.MustCompile(`hs-scripts\.com`),
			regexp.MustCompile(`hsforms\.com`),
		},
		Indicators:        []string{"hubspot", "hsjs"},
		Category:          "marketing",
		CostTier:          "high",
		AgencyOpportunity: "low",
	},
	"salesforce": {
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`salesforce\.com`),
			regexp.MustCompile(`force\.com`),
		},
		Indicators:        []string{"salesforce", "sfdc"},
		Category:          "crm",
		CostTier:          "high",
		AgencyOpportunity: "medium",
	},
	"marketo": {
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`marketo\.com`),
			regexp.MustCompile(`mktoresp\.com`),
		},
		Indicators:        []string{"marketo", "mktapi"},
		Category:          "marketing",
		CostTier:          "high",
		AgencyOpportunity: "low",
	},
	"pardot": {
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`pardot\.com`),
			regexp.MustCompile(`pi\.pardot\.com`),
		},
		Indicators:        []string{"pardot"},
		Category:          "marketing",
		CostTier:          "high",
		AgencyOpportunity: "low",
	},
	"custom_development": {
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`react`),
			regexp.MustCompile(`angular`),
			regexp.MustCompile(`vue\.js`),
			regexp.MustCompile(`node\.js`),
		},
		Indicators:        []string{"webpack", "babel"},
		Category:          "custom",
		CostTier:          "high",
		AgencyOpportunity: "low",
	},
}

// legacyIndicators flag outdated frontend stacks worth modernizing.
var legacyIndicators = []string{"jquery-1.", "bootstrap-2.", "ie-conditional"}

type marketingToolConfig struct {
	Patterns []string
	Weight   int
}

var marketingToolOrder = []string{
	"google_analytics", "google_tag_manager", "facebook_pixel",
	"hotjar", "mixpanel", "segment",
}

var marketingTools = map[string]marketingToolConfig{
	"google_analytics":   {Patterns: []string{"google-analytics.com", "gtag", "ga.js", "analytics.js"}, Weight: 3},
	"google_tag_manager": {Patterns: []string{"googletagmanager.com", "gtm.js"}, Weight: 4},
	"facebook_pixel":     {Patterns: []string{"connect.facebook.net", "fbevents.js"}, Weight: 3},
	"hotjar":             {Patterns: []string{"hotjar.com", "hj.js"}, Weight: 2},
	"mixpanel":           {Patterns: []string{"mixpanel.com", "mixpanel.js"}, Weight: 3},
	"segment":            {Patterns: []string{"segment.com", "analytics.min.js"}, Weight: 4},
}

// adPlatformWeights feed the budget score from detected advertising channels.
var adPlatformWeights = map[string]int{
	"google":       3,
	"facebook":     3,
	"linkedin":     5,
	"microsoft":    2,
	"programmatic": 4,
}

var industryOrder = []string{
	"saas", "ecommerce", "healthcare", "finance", "real_estate", "legal", "consulting",
}

var industryKeywords = map[string][]string{
	"saas":        {"software", "saas", "platform", "api", "cloud", "subscription"},
	"ecommerce":   {"shop", "buy", "cart", "checkout", "products", "store"},
	"healthcare":  {"medical", "health", "doctor", "clinic", "patient"},
	"finance":     {"bank", "finance", "investment", "loan", "insurance"},
	"real_estate": {"real estate", "property", "homes", "listings"},
	"legal":       {"law", "lawyer", "attorney", "legal", "court"},
	"consulting":  {"consulting", "consultant", "advisory", "strategy"},
}

/// Chatbot detection: selectors scanned in order, plus script-text vendors.
var chatbotSelectors = []string{
	`[id*="chat"]`, `[class*="chat"]`, `[id*="messenger"]`, `[class*="messenger"]`,
	`[id*="intercom"]`, `[class*="intercom"]`, `[id*="zendesk"]`, `[class*="zendesk"]`,
	`[id*="drift"]`, `[class*="drift"]`, `[id*="tawk"]`, `[class*="tawk"]`,
	`iframe[src*="chat"]`, `iframe[src*="messenger"]`,
}

// Vendor names checked against matched elements and inline scripts; first
// hit wins.
var chatbotVendors = []struct {
	Keyword string
	Name    string
}{
	{"intercom", "Intercom"},
	{"zendesk", "Zendesk Chat"},
	{"drift", "Drift"},
	{"tawk", "Tawk.to"},
	{"messenger", "Facebook Messenger"},
}

var emailServices = []struct {
	Keyword string
	Name    string
}{
	{"mailchimp", "Mailchimp"},
	{"constant-contact", "Constant Contact"},
	{"convertkit", "ConvertKit"},
}

var newsletterKeywords = []string{"newsletter", "subscribe", "email updates", "mailing list"}

var bookingKeywords = []string{
	"appointment", "booking", "schedule", "calendar", "reserve",
	"calendly", "acuity", "booksy", "setmore",
}

var bookingVendors = []struct {
	Keyword string
	Name    string
}{
	{"calendly", "Calendly"},
	{"acuity", "Acuity Scheduling"},
	{"booksy", "Booksy"},
}

var bookingIframeKeywords = []string{"calendly", "acuity", "booksy", "setmore"}

var reviewKeywords = []string{"review", "testimonial", "rating", "stars", "feedback"}

var reviewPlatforms = []string{
	"google", "yelp", "trustpilot", "facebook", "tripadvisor",
	"reviews", "testimonial", "rating",
}

var mobileMenuSelectors = []string{
	`[class*="mobile-menu"]`, `[id*="mobile-menu"]`,
	`[class*="hamburger"]`, `[id*="hamburger"]`,
	`[class*="nav-toggle"]`, `[id*="nav-toggle"]`,
}

var responsiveIndicators = []string{"@media", "responsive", "mobile", "tablet"}

var addressKeywords = []string{"address", "street", "avenue", "road", "suite", "floor"}

var localSEOKeywords = []string{
	"address", "phone", "hours", "location", "near me", "local",
	"city", "state", "zip code", "directions", "map",
}

var leadMagnetKeywords = []string{
	"free trial", "free consultation", "download", "ebook", "whitepaper",
	"case study", "demo", "webinar", "newsletter", "guide",
}

var hiringKeywords = []string{
	"hiring", "we're growing", "join our team", "careers",
	"remote work", "full-time", "part-time",
}

var revenueKeywords = []string{
	"million in revenue", "billion in sales", "profitable",
	"funding", "investment", "series a", "series b", "ipo",
}

var breadcrumbSelectors = []string{
	`[class*="breadcrumb"]`, `[id*="breadcrumb"]`,
	`nav[aria-label*="breadcrumb"]`, `.breadcrumbs`,
}

var cdnHosts = []string{"cdn.", "ajax.googleapis.com", "cdnjs.", "unpkg.com"}

// Extraction regexes shared by the contact and profile detectors.
var (
	phoneRe = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	locationStateRe   = regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*),\s*([A-Z]{2})\b`)
	locationCountryRe = regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*),\s*([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)\b`)

	employeeCountRe = regexp.MustCompile(`(?i)(\d+\+?)\s*employees?`)
	teamOfRe        = regexp.MustCompile(`(?i)team\s*of\s*(\d+)`)
	peopleRangeRe   = regexp.MustCompile(`(?i)(\d+)-(\d+)\s*people`)
)

// personnelTitleRes extract decision maker title/name pairs.
var personnelTitleRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(CEO|Chief Executive Officer|President|Founder|Co-Founder)\s*[:\-]?\s*([A-Z][a-z]+\s+[A-Z][a-z]+)`),
	regexp.MustCompile(`(?i)(CTO|Chief Technology Officer|VP|Vice President|Director)\s*[:\-]?\s*([A-Z][a-z]+\s+[A-Z][a-z]+)`),
	regexp.MustCompile(`(?i)(CMO|Chief Marketing Officer|Marketing Director)\s*[:\-]?\s*([A-Z][a-z]+\s+[A-Z][a-z]+)`),
}

// SEO thresholds.
const (
	titleMinLength       = 30
	titleMaxLength       = 60
	descriptionMinLength = 120
	descriptionMaxLength = 160
	altTextThreshold     = 80.0
)
