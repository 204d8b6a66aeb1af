package ai

import (
	"fmt"
	"regexp"
)

const postPromptTemplate = `
Write a comprehensive, professional blog post about "%s" %s for Click Sales Media, a digital marketing agency.

IMPORTANT: Respond with ONLY valid JSON. No additional text, explanations, or formatting outside the JSON.

The blog post should be for %d and include current trends and best practices.

Structure your response as a single JSON object with these exact fields:
{
  "title": "Catchy and SEO-optimized title (60 characters max, no JSON or code formatting)",
  "metaDescription": "Compelling meta description (150 characters max)",
  "content": "Full blog post content in HTML format with proper headings (800-1200 words)",
  "excerpt": "Engaging introduction excerpt (150 words max)",
  "tags": ["tag1", "tag2", "tag3", "tag4", "tag5"],
  "category": "%s",
  "readingTime": 5
}

Focus on:
- Actionable insights and tips for %d
- Current trends and best practices
- Real-world examples
- How businesses can benefit
- Why they should choose Click Sales Media
- SEO optimization
- Clean, professional titles without JSON formatting

Make it engaging, informative, and professional for %d.
`

const imagePromptTemplate = `
Create a professional, modern digital marketing illustration for an article about %s.

The image should be:
- Clean, professional business style
- Digital marketing theme with modern elements
- Corporate color scheme (blues, whites, grays)
- High quality, crisp design
- Include elements like charts, graphs, digital icons
- Professional office or digital workspace setting
- No text overlays
- 16:9 aspect ratio
- High resolution

Style: Corporate, professional, modern, clean
`

var (
	yearTokens   = regexp.MustCompile(`\d{4}`)
	nonWordChars = regexp.MustCompile(`[^\w\s]`)
)

// BuildPostPrompt renders the generation prompt for one post. The required
// JSON shape is spelled out verbatim so the model has no room to improvise.
func BuildPostPrompt(topic, category, language string, year int) string {
	langInstruction := "in English"
	if language == "ar" {
		langInstruction = "in Arabic"
	}
	return fmt.Sprintf(postPromptTemplate, topic, langInstruction, year, category, year, year)
}

// BuildImagePrompt renders the cover image prompt from a post title, with
// year tokens and special characters stripped first.
func BuildImagePrompt(title string) string {
	clean := yearTokens.ReplaceAllString(title, "")
	clean = nonWordChars.ReplaceAllString(clean, "")
	return fmt.Sprintf(imagePromptTemplate, clean)
}
