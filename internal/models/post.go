package models

import "time"

// Post is the canonical blog post record flowing through the pipeline.
// The *Ar fields are pointers so that an absent translation serializes as an
// explicit JSON null: either all four are set (Arabic post) or all four are
// nil (English post), keyed by the detected Language.
type Post struct {
	Title           string    `json:"title"`
	MetaDescription string    `json:"metaDescription"`
	Content         string    `json:"content"`
	Excerpt         string    `json:"excerpt"`
	Tags            []string  `json:"tags"`
	Category        string    `json:"category"`
	ReadingTime     int       `json:"readingTime"`
	Language        string    `json:"language"`
	CoverImage      string    `json:"coverImage"`
	Slug            string    `json:"slug"`
	PublishedAt     time.Time `json:"publishedAt"`
	Status          string    `json:"status"`
	Featured        bool      `json:"featured"`

	TitleAr           *string `json:"titleAr"`
	ContentAr         *string `json:"contentAr"`
	ExcerptAr         *string `json:"excerptAr"`
	MetaDescriptionAr *string `json:"metaDescriptionAr"`
}

const (
	LanguageEnglish = "en"
	LanguageArabic  = "ar"

	StatusPublished = "published"
	StatusDraft     = "draft"
)

// SetArabicFields mirrors the English-side fields into the localized shadow
// fields. Used when the detected language of a generated post is Arabic.
func (p *Post) SetArabicFields() {
	title := p.Title
	content := p.Content
	excerpt := p.Excerpt
	meta := p.MetaDescription
	p.TitleAr = &title
	p.ContentAr = &content
	p.ExcerptAr = &excerpt
	p.MetaDescriptionAr = &meta
}

// ClearArabicFields nulls out all localized shadow fields.
func (p *Post) ClearArabicFields() {
	p.TitleAr = nil
	p.ContentAr = nil
	p.ExcerptAr = nil
	p.MetaDescriptionAr = nil
}
