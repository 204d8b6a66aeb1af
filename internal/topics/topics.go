package topics

// Categories maps display category names to their store slugs.
var Categories = map[string]string{
	"AI Marketing":          "ai-marketing",
	"B2B":                   "b2b",
	"Ecommerce":             "ecommerce",
	"Performance Marketing": "performance-marketing",
	"PPC Ads":               "ppc-ads",
	"Social Media":          "social-media",
}

// TopicCategories maps every marketing topic the generator can write about to
// its blog category.
var TopicCategories = map[string]string{
	// AI Marketing topics
	"AI-Powered Marketing Strategies":         "AI Marketing",
	"Machine Learning in Digital Marketing":   "AI Marketing",
	"AI Chatbots for Customer Engagement":     "AI Marketing",
	"Automated Content Creation with AI":      "AI Marketing",
	"AI Analytics for Marketing Optimization": "AI Marketing",

	// B2B topics
	"B2B Lead Generation Strategies":       "B2B",
	"Account-Based Marketing for B2B":      "B2B",
	"B2B Content Marketing Best Practices": "B2B",
	"LinkedIn Marketing for B2B Companies": "B2B",
	"B2B Sales Funnel Optimization":        "B2B",

	// Ecommerce topics
	"E-commerce Conversion Rate Optimization": "Ecommerce",
	"Online Store SEO Strategies":             "Ecommerce",
	"E-commerce Email Marketing":              "Ecommerce",
	"Product Photography for Online Stores":   "Ecommerce",
	"E-commerce Mobile Optimization":          "Ecommerce",
	"Abandoned Cart Recovery Strategies":      "Ecommerce",

	// Performance Marketing topics
	"ROI-Focused Marketing Campaigns":  "Performance Marketing",
	"Data-Driven Marketing Strategies": "Performance Marketing",
	"Marketing Attribution Models":     "Performance Marketing",
	"Performance Marketing KPIs":       "Performance Marketing",
	"Conversion Tracking and Analysis": "Performance Marketing",

	// PPC Ads topics
	"Google Ads Optimization Strategies": "PPC Ads",
	"Facebook Ads Campaign Management":   "PPC Ads",
	"PPC Keyword Research Techniques":    "PPC Ads",
	"Display Advertising Best Practices": "PPC Ads",
	"YouTube Ads for Business Growth":    "PPC Ads",
	"Retargeting Campaigns Strategy":     "PPC Ads",

	// Social Media topics
	"Instagram Marketing for Businesses":   "Social Media",
	"TikTok Marketing Strategies":          "Social Media",
	"Twitter Marketing Best Practices":     "Social Media",
	"Social Media Content Calendar":        "Social Media",
	"Influencer Marketing Campaigns":       "Social Media",
	"Social Media Analytics and Reporting": "Social Media",
}

// IndustryTopics covers industry verticals, mapped to the closest category.
var IndustryTopics = map[string]string{
	"Healthcare Digital Marketing":     "B2B",
	"Real Estate Marketing Strategies": "B2B",
	"SaaS Marketing Best Practices":    "B2B",
	"Finance Marketing Compliance":     "B2B",
	"Education Marketing Trends":       "B2B",
	"Hospitality Digital Marketing":    "Ecommerce",
	"Automotive Marketing Strategies":  "Performance Marketing",
	"Fashion E-commerce Marketing":     "Ecommerce",
	"Technology B2B Marketing":         "B2B",
	"Food & Beverage Social Marketing": "Social Media",
}

// All returns the merged topic table.
func All() map[string]string {
	merged := make(map[string]string, len(TopicCategories)+len(IndustryTopics))
	for t, c := range TopicCategories {
		merged[t] = c
	}
	for t, c := range IndustryTopics {
		merged[t] = c
	}
	return merged
}
