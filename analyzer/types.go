package analyzer

// Priority levels for opportunities. Lower rank sorts first.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// priorityRank maps a priority to its sort rank; unknown values sort last.
func priorityRank(priority string) int {
	switch priority {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	}
	return 3
}

// Opportunity is a single actionable recommendation emitted by a detector.
// Category is back-filled during the recommendation merge; detectors leave
// it empty.
type Opportunity struct {
	Priority       string `json:"priority"`
	Recommendation string `json:"recommendation"`
	Implementation string `json:"implementation"`
	Impact         string `json:"impact"`
	Category       string `json:"category,omitempty"`
}

// AnalysisResult is the complete analysis of one URL. It is assembled once
// at the end of a pipeline run and never mutated afterwards.
type AnalysisResult struct {
	URL             string              `json:"url"`
	Timestamp       string              `json:"timestamp"`
	CompanyProfile  CompanyProfile      `json:"companyProfile"`
	Chatbot         ChatbotAnalysis     `json:"chatbotAnalysis"`
	LeadCapture     LeadCaptureAnalysis `json:"leadCaptureAnalysis"`
	EmailSignup     EmailSignupAnalysis `json:"emailSignupAnalysis"`
	Social          SocialAnalysis      `json:"socialMediaAnalysis"`
	Reviews         ReviewAnalysis      `json:"reviewAnalysis"`
	Booking         BookingAnalysis     `json:"bookingAnalysis"`
	Mobile          MobileAnalysis      `json:"mobileAnalysis"`
	Contact         ContactAnalysis     `json:"contactAnalysis"`
	TechStack       TechStackAnalysis   `json:"techStackAnalysis"`
	Marketing       MarketingAnalysis   `json:"marketingAnalysis"`
	Budget          BudgetAnalysis      `json:"budgetAnalysis"`
	SEO             SEOAnalysis         `json:"seoAnalysis"`
	AutomationScore int                 `json:"automationScore"`
	LeadScore       LeadScore           `json:"leadScore"`
	Recommendations []Opportunity       `json:"recommendations"`
}

// CompanyProfile holds what can be inferred about the business itself.
type CompanyProfile struct {
	CompanyName string `json:"companyName"`
	Industry    string `json:"industry"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Employees   string `json:"employees"`
}

type ChatbotAnalysis struct {
	HasChatbot     bool          `json:"hasChatbot"`
	ChatbotType    string        `json:"chatbotType,omitempty"`
	Implementation string        `json:"implementation,omitempty"`
	Opportunities  []Opportunity `json:"opportunities,omitempty"`
}

type LeadCaptureAnalysis struct {
	HasLeadCapture bool          `json:"hasLeadCapture"`
	FormsCount     int           `json:"formsCount"`
	FormTypes      []string      `json:"formTypes,omitempty"`
	Opportunities  []Opportunity `json:"opportunities,omitempty"`
}

type EmailSignupAnalysis struct {
	HasEmailSignup  bool          `json:"hasEmailSignup"`
	SignupLocations []string      `json:"signupLocations,omitempty"`
	EmailService    string        `json:"emailService,omitempty"`
	Opportunities   []Opportunity `json:"opportunities,omitempty"`
}

// SocialPlatform describes one discovered social presence.
type SocialPlatform struct {
	URL             string `json:"url,omitempty"`
	BusinessAccount bool   `json:"businessAccount"`
	PixelDetected   bool   `json:"pixelDetected"`
}

type SocialAnalysis struct {
	PlatformsFound   map[string]SocialPlatform `json:"platformsFound"`
	EngagementScore  int                       `json:"engagementScore"`
	BudgetIndicators []string                  `json:"budgetIndicators,omitempty"`
	StrategyMaturity string                    `json:"strategyMaturity"`
	BudgetLevel      string                    `json:"budgetLevel"`
	LeadPotential    string                    `json:"leadPotential"`
	SocialWidgets    []string                  `json:"socialWidgets,omitempty"`
	SharingButtons   bool                      `json:"sharingButtons"`
	Opportunities    []Opportunity             `json:"opportunities,omitempty"`
}

type ReviewAnalysis struct {
	HasReviews    bool          `json:"hasReviews"`
	ReviewSources []string      `json:"reviewSources,omitempty"`
	ReviewWidgets []string      `json:"reviewWidgets,omitempty"`
	Opportunities []Opportunity `json:"opportunities,omitempty"`
}

type BookingAnalysis struct {
	HasBooking    bool          `json:"hasBooking"`
	BookingSystem string        `json:"bookingSystem,omitempty"`
	BookingTypes  []string      `json:"bookingTypes,omitempty"`
	Opportunities []Opportunity `json:"opportunities,omitempty"`
}

type MobileAnalysis struct {
	HasViewportMeta  bool          `json:"hasViewportMeta"`
	ResponsiveDesign bool          `json:"responsiveDesign"`
	MobileMenu       bool          `json:"mobileMenu"`
	TouchFriendly    bool          `json:"touchFriendly"`
	Opportunities    []Opportunity `json:"opportunities,omitempty"`
}

// Personnel is a decision maker extracted from page text.
type Personnel struct {
	Title string `json:"title"`
	Name  string `json:"name"`
}

// ContactFormQuality summarizes form field inspection across all forms.
type ContactFormQuality struct {
	Count           int  `json:"count"`
	HasEmailField   bool `json:"hasEmailField"`
	HasPhoneField   bool `json:"hasPhoneField"`
	HasCompanyField bool `json:"hasCompanyField"`
	ComplexityScore int  `json:"complexityScore"`
}

type ContactAnalysis struct {
	ContactMethods      []string           `json:"contactMethods,omitempty"`
	HasContactPage      bool               `json:"hasContactPage"`
	PhoneNumbers        []string           `json:"phoneNumbers,omitempty"`
	EmailAddresses      []string           `json:"emailAddresses,omitempty"`
	PhysicalAddress     bool               `json:"physicalAddress"`
	ContactForm         bool               `json:"contactForm"`
	KeyPersonnel        []Personnel        `json:"keyPersonnel,omitempty"`
	FormQuality         ContactFormQuality `json:"contactFormQuality"`
	LeadMagnets         []string           `json:"leadMagnets,omitempty"`
	SalesReadinessScore int                `json:"salesReadinessScore"`
	Accessibility       string             `json:"contactAccessibility"`
	Opportunities       []Opportunity      `json:"opportunities,omitempty"`
}

// DetectedTechnology is one fingerprinted platform with its match evidence.
type DetectedTechnology struct {
	Confidence        int      `json:"confidence"`
	Evidence          []string `json:"evidence"`
	Category          string   `json:"category"`
	CostTier          string   `json:"costTier"`
	AgencyOpportunity string   `json:"agencyOpportunity"`
}

type TechStackAnalysis struct {
	Detected            map[string]DetectedTechnology `json:"detectedTechnologies"`
	SophisticationScore int                           `json:"sophisticationScore"`
	BudgetLevel         string                        `json:"budgetLevel"`
	MonthlyEstimate     string                        `json:"monthlyEstimate"`
	AgencyOpportunities []string                      `json:"agencyOpportunities,omitempty"`
	ModernizationNeeds  []string                      `json:"modernizationNeeds,omitempty"`
	Opportunities       []Opportunity                 `json:"opportunities,omitempty"`
}

type MarketingAnalysis struct {
	DetectedTools []string      `json:"detectedTools,omitempty"`
	MaturityScore int           `json:"maturityScore"`
	ChannelGaps   []string      `json:"channelGaps,omitempty"`
	Opportunities []Opportunity `json:"opportunities,omitempty"`
}

type BudgetAnalysis struct {
	Level                string            `json:"overallBudgetLevel"`
	MonthlySpendEstimate string            `json:"monthlySpendEstimate"`
	InvestmentCapacity   string            `json:"investmentCapacity"`
	SpendingIndicators   []string          `json:"spendingIndicators,omitempty"`
	Allocation           map[string]string `json:"budgetAllocation,omitempty"`
	OptimizationAreas    []string          `json:"optimizationOpportunities,omitempty"`
	FinancialHealthScore int               `json:"financialHealthScore"`
	Opportunities        []Opportunity     `json:"opportunities,omitempty"`
}

type MetaTagAnalysis struct {
	Title             string            `json:"title,omitempty"`
	TitleLength       int               `json:"titleLength"`
	Description       string            `json:"description,omitempty"`
	DescriptionLength int               `json:"descriptionLength"`
	Keywords          string            `json:"keywords,omitempty"`
	Robots            string            `json:"robots,omitempty"`
	Canonical         string            `json:"canonical,omitempty"`
	OGTags            map[string]string `json:"ogTags,omitempty"`
	TwitterCards      map[string]string `json:"twitterCards,omitempty"`
	Opportunities     []Opportunity     `json:"opportunities,omitempty"`
}

type HeaderStructure struct {
	Counts        map[string]int `json:"headerCounts"`
	MissingH1     bool           `json:"missingH1"`
	MultipleH1    bool           `json:"multipleH1"`
	EmptyHeaders  int            `json:"emptyHeaders"`
	Opportunities []Opportunity  `json:"opportunities,omitempty"`
}

type ImageAnalysis struct {
	TotalImages      int           `json:"totalImages"`
	ImagesWithAlt    int           `json:"imagesWithAlt"`
	ImagesWithoutAlt int           `json:"imagesWithoutAlt"`
	EmptyAltTags     int           `json:"emptyAltTags"`
	AltTextPercent   float64       `json:"altTextPercentage"`
	LazyLoading      int           `json:"lazyLoading"`
	ResponsiveImages int           `json:"responsiveImages"`
	Opportunities    []Opportunity `json:"opportunities,omitempty"`
}

type SchemaAnalysis struct {
	JSONLDCount   int           `json:"jsonLdCount"`
	Microdata     []string      `json:"microdata,omitempty"`
	SchemaTypes   []string      `json:"schemaTypes,omitempty"`
	Opportunities []Opportunity `json:"opportunities,omitempty"`
}

type LocalSEOAnalysis struct {
	NAPPhone        bool          `json:"napPhone"`
	NAPAddress      bool          `json:"napAddress"`
	LocalKeywords   []string      `json:"localKeywords,omitempty"`
	GoogleMapsEmbed bool          `json:"googleMapsEmbed"`
	LocalSchema     bool          `json:"localSchema"`
	Opportunities   []Opportunity `json:"opportunities,omitempty"`
}

type URLStructureAnalysis struct {
	URLLength     int           `json:"urlLength"`
	HasParameters bool          `json:"hasParameters"`
	SEOFriendly   bool          `json:"seoFriendly"`
	Breadcrumbs   bool          `json:"breadcrumbs"`
	Opportunities []Opportunity `json:"opportunities,omitempty"`
}

type LinkAnalysis struct {
	TotalLinks     int           `json:"totalLinks"`
	InternalLinks  int           `json:"internalLinks"`
	ExternalLinks  int           `json:"externalLinks"`
	NofollowLinks  int           `json:"nofollowLinks"`
	UniqueAnchors  int           `json:"uniqueAnchorTexts"`
	TotalAnchors   int           `json:"totalAnchorTexts"`
	DiversityRatio float64       `json:"anchorDiversityRatio"`
	Opportunities  []Opportunity `json:"opportunities,omitempty"`
}

type PageSpeedAnalysis struct {
	ExternalScripts     int           `json:"externalScripts"`
	ExternalStylesheets int           `json:"externalStylesheets"`
	InlineStyles        int           `json:"inlineStyles"`
	MinifiedJS          bool          `json:"minifiedJs"`
	MinifiedCSS         bool          `json:"minifiedCss"`
	CDNUsage            bool          `json:"cdnUsage"`
	Opportunities       []Opportunity `json:"opportunities,omitempty"`
}

// SEOAnalysis groups the on-page audit surfaces and the 0-100 score.
type SEOAnalysis struct {
	MetaTags      MetaTagAnalysis      `json:"metaTags"`
	Headers       HeaderStructure      `json:"headerStructure"`
	Images        ImageAnalysis        `json:"images"`
	Schema        SchemaAnalysis       `json:"schemaMarkup"`
	LocalSEO      LocalSEOAnalysis     `json:"localSeo"`
	URLStructure  URLStructureAnalysis `json:"urlStructure"`
	InternalLinks LinkAnalysis         `json:"internalLinks"`
	PageSpeed     PageSpeedAnalysis    `json:"pageSpeedIndicators"`
	Score         int                  `json:"seoScore"`
	Opportunities []Opportunity        `json:"opportunities,omitempty"`
}

// LeadScore is the weighted qualification of the analyzed business.
// Overall is always the exact sum of CategoryScores, never above 100.
type LeadScore struct {
	Overall               int            `json:"overallScore"`
	CategoryScores        map[string]int `json:"categoryScores"`
	Quality               string         `json:"leadQuality"`
	SalesPriority         string         `json:"salesPriority"`
	ConversionProbability string         `json:"conversionProbability"`
	DealSizeEstimate      string         `json:"dealSizeEstimate"`
	SalesCycleEstimate    string         `json:"salesCycleEstimate"`
	Explanation           string         `json:"explanation"`
	Strengths             []string       `json:"strengths,omitempty"`
	ImprovementAreas      []string       `json:"improvementAreas,omitempty"`
}
