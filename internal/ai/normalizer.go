package ai

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/clicksalesmedia/blogpilot/internal/logger"
	"github.com/clicksalesmedia/blogpilot/internal/models"
)

// DefaultStaleYear is the literal year token the models keep leaking from
// their training data. Every textual field gets it rewritten to the run year.
const DefaultStaleYear = "2024"

// Result tags which branch produced the record, so callers and tests can
// tell a parsed model response from a synthesized one.
type Result struct {
	Post     models.Post
	Fallback bool
}

// Normalizer turns a raw model response into a canonical post record. It is
// total: any input, including garbage, yields a usable record.
type Normalizer struct {
	StaleYear string
	now       func() time.Time
}

func NewNormalizer() *Normalizer {
	return &Normalizer{
		StaleYear: DefaultStaleYear,
		now:       time.Now,
	}
}

// rawPost mirrors the JSON shape requested in the post prompt. Unknown
// fields are ignored; readingTime tolerates the model returning a float.
type rawPost struct {
	Title           string   `json:"title"`
	MetaDescription string   `json:"metaDescription"`
	Content         string   `json:"content"`
	Excerpt         string   `json:"excerpt"`
	Tags            []string `json:"tags"`
	Category        string   `json:"category"`
	ReadingTime     float64  `json:"readingTime"`
	PublishedAt     string   `json:"publishedAt"`
	Language        string   `json:"language"`
	Status          string   `json:"status"`
	Featured        bool     `json:"featured"`
}

var (
	fenceOpen  = regexp.MustCompile("```json\\s*")
	fenceClose = regexp.MustCompile("\\s*```")
	// Structural artifacts the model sometimes leaks into the title value.
	// The "title": label must come before the bare quote alternative so the
	// whole label is consumed in one match.
	titleArtifacts = regexp.MustCompile("```json|```|\\{|\\}|\"title\":|\"")
)

// Normalize parses raw model output into a post record. Fenced code blocks
// are tolerated, the first-to-last brace span is used as the JSON candidate,
// and any parse failure falls back to a fully synthesized record. Stale year
// tokens are rewritten to the current run year in all textual fields.
func (n *Normalizer) Normalize(raw, topic, category, language string) Result {
	log := logger.Get()
	year := n.now().Year()

	candidate := extractJSONCandidate(stripFences(strings.TrimSpace(raw)))

	var parsed rawPost
	if err := json.Unmarshal([]byte(candidate), &parsed); err != nil {
		log.Warn().Err(err).Str("topic", topic).Msg("Failed to parse model response, using fallback structure")
		return Result{Post: n.Fallback(topic, category, language), Fallback: true}
	}

	post := models.Post{
		Title:           rewriteYear(cleanTitle(parsed.Title), n.StaleYear, year),
		MetaDescription: rewriteYear(parsed.MetaDescription, n.StaleYear, year),
		Content:         rewriteYear(parsed.Content, n.StaleYear, year),
		Excerpt:         rewriteYear(parsed.Excerpt, n.StaleYear, year),
		Tags:            parsed.Tags,
		Category:        parsed.Category,
		ReadingTime:     int(parsed.ReadingTime),
		Language:        parsed.Language,
		Status:          parsed.Status,
		Featured:        parsed.Featured,
	}

	// Defaults for fields the model is allowed to omit.
	if post.Category == "" {
		post.Category = category
	}
	if post.Language == "" {
		post.Language = language
	}
	if post.Status == "" {
		post.Status = models.StatusPublished
	}
	if post.ReadingTime < 1 {
		post.ReadingTime = estimateReadingTime(post.Content)
	}
	post.PublishedAt = n.now()
	if parsed.PublishedAt != "" {
		if ts, err := time.Parse(time.RFC3339, parsed.PublishedAt); err == nil {
			post.PublishedAt = ts
		}
	}

	return Result{Post: post}
}

// Fallback synthesizes a complete post record from the topic alone. Used
// when the model call fails outright or returns unparseable output.
func (n *Normalizer) Fallback(topic, category, language string) models.Post {
	year := n.now().Year()
	cleanTopic := rewriteYear(topic, n.StaleYear, year)
	lower := strings.ToLower(cleanTopic)

	return models.Post{
		Title: "Master " + cleanTopic + ": Expert Guide for " + strconv.Itoa(year),
		MetaDescription: "Discover expert " + cleanTopic + " strategies to boost your business with Click Sales Media's proven techniques for " +
			strconv.Itoa(year) + ".",
		Content: "<h1>Master " + cleanTopic + ": Expert Guide for " + strconv.Itoa(year) + "</h1>" +
			"<h2>Introduction</h2><p>In the rapidly evolving digital landscape of " + strconv.Itoa(year) + ", " + lower +
			" has become more crucial than ever for businesses looking to thrive online. Click Sales Media brings you comprehensive insights and strategies to excel in this field.</p>" +
			"<h2>Key Strategies for " + strconv.Itoa(year) + "</h2><p>This year presents unique opportunities and challenges in " + lower +
			". Our expert team has identified the most effective approaches to maximize your success.</p>" +
			"<h2>How Click Sales Media Can Help</h2><p>With our proven track record and cutting-edge expertise, Click Sales Media is your trusted partner for achieving exceptional results in " + lower +
			". Contact us today to discover how we can transform your digital marketing efforts.</p>",
		Excerpt: "In the rapidly evolving digital landscape of " + strconv.Itoa(year) + ", " + lower +
			" has become more crucial than ever for businesses looking to thrive online. This comprehensive guide will walk you through the latest strategies and best practices that Click Sales Media uses to deliver exceptional results for our clients.",
		Tags: []string{
			strings.ReplaceAll(lower, " ", ""),
			"digitalmarketing",
			"marketing",
			"business",
			"strategy" + strconv.Itoa(year),
		},
		Category:    category,
		ReadingTime: 6,
		PublishedAt: n.now(),
		Language:    language,
		Status:      models.StatusPublished,
		Featured:    false,
	}
}

// stripFences removes markdown code fencing a model may wrap its JSON in.
func stripFences(s string) string {
	s = fenceOpen.ReplaceAllString(s, "")
	return fenceClose.ReplaceAllString(s, "")
}

// extractJSONCandidate returns the first-to-last brace span, or the whole
// text when no brace pair is present.
func extractJSONCandidate(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		return s[start : end+1]
	}
	return s
}

// cleanTitle strips structural artifacts a model occasionally leaks into the
// title value and collapses escaped newlines into spaces.
func cleanTitle(title string) string {
	title = titleArtifacts.ReplaceAllString(title, "")
	title = strings.ReplaceAll(title, "\\n", " ")
	title = strings.ReplaceAll(title, "\\", "")
	return strings.Join(strings.Fields(title), " ")
}

func rewriteYear(s, staleYear string, year int) string {
	return strings.ReplaceAll(s, staleYear, strconv.Itoa(year))
}

// estimateReadingTime assumes roughly 200 words per minute, minimum one.
func estimateReadingTime(content string) int {
	return len(strings.Fields(content))/200 + 1
}
