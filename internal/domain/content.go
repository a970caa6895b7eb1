package domain

import (
	"encoding/json"
	"time"
)

// NewsCategory enumerates the categories the news page filters on.
type NewsCategory string

const (
	CategoryTechnology NewsCategory = "Technology"
	CategoryEducation  NewsCategory = "Education"
	CategoryBusiness   NewsCategory = "Business"
	CategorySecurity   NewsCategory = "Security"
)

// SectionType enumerates the kinds of page-content sections the CMS renders.
type SectionType string

const (
	SectionHero        SectionType = "hero"
	SectionFeature     SectionType = "feature"
	SectionTestimonial SectionType = "testimonial"
	SectionGallery     SectionType = "gallery"
	SectionText        SectionType = "text"
	SectionCTA         SectionType = "cta"
)

// NewsArticleInsert is the admin-suppliable subset of a news article.
type NewsArticleInsert struct {
	Title       string       `json:"title" validate:"required,max=300"`
	Slug        string       `json:"slug" validate:"required,max=300"`
	Summary     string       `json:"summary" validate:"required,max=1000"`
	Content     string       `json:"content" validate:"required"`
	Category    NewsCategory `json:"category" validate:"required,oneof=Technology Education Business Security"`
	Author      string       `json:"author" validate:"required,max=200"`
	PublishDate string       `json:"publishDate" validate:"required,datetime=2006-01-02"`
	ReadTime    string       `json:"readTime,omitempty" validate:"omitempty,max=50"`
	Featured    bool         `json:"featured"`
	Image       string       `json:"image,omitempty" validate:"omitempty,max=1000"`
}

// NewsArticle is a stored news article. Slugs are unique.
type NewsArticle struct {
	ID int64 `json:"id"`
	NewsArticleInsert
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PageContentSectionInsert is the admin-suppliable subset of a page section.
// PageID is a free-text page tag, not a foreign key. OrderIndex drives manual
// up/down ordering; gaps and duplicates are allowed.
type PageContentSectionInsert struct {
	PageID      string          `json:"pageId" validate:"required,max=100"`
	SectionType SectionType     `json:"sectionType" validate:"required,oneof=hero feature testimonial gallery text cta"`
	Title       string          `json:"title" validate:"required,max=300"`
	Content     string          `json:"content,omitempty"`
	Image       string          `json:"image,omitempty" validate:"omitempty,max=1000"`
	ButtonText  string          `json:"buttonText,omitempty" validate:"omitempty,max=100"`
	ButtonLink  string          `json:"buttonLink,omitempty" validate:"omitempty,max=1000"`
	OrderIndex  int             `json:"orderIndex"`
	IsVisible   bool            `json:"isVisible"`
	Metadata    json.RawMessage `json:"metadata,omitempty"`
}

// PageContentSection is a stored CMS page section.
type PageContentSection struct {
	ID int64 `json:"id"`
	PageContentSectionInsert
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HeroSlideInsert is the admin-suppliable subset of a homepage hero slide.
type HeroSlideInsert struct {
	Title      string `json:"title" validate:"required,max=300"`
	Subtitle   string `json:"subtitle,omitempty" validate:"omitempty,max=500"`
	Image      string `json:"image" validate:"required,max=1000"`
	ButtonText string `json:"buttonText,omitempty" validate:"omitempty,max=100"`
	ButtonLink string `json:"buttonLink,omitempty" validate:"omitempty,max=1000"`
	SortOrder  int    `json:"sortOrder"`
	IsActive   bool   `json:"isActive"`
}

// HeroSlide is a stored homepage hero slide.
type HeroSlide struct {
	ID int64 `json:"id"`
	HeroSlideInsert
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProductCardInsert is the admin-suppliable subset of a homepage product card.
type ProductCardInsert struct {
	Title       string `json:"title" validate:"required,max=300"`
	Description string `json:"description" validate:"required,max=1000"`
	Icon        string `json:"icon,omitempty" validate:"omitempty,max=200"`
	Link        string `json:"link,omitempty" validate:"omitempty,max=1000"`
	SortOrder   int    `json:"sortOrder"`
	IsActive    bool   `json:"isActive"`
}

// ProductCard is a stored homepage product card.
type ProductCard struct {
	ID int64 `json:"id"`
	ProductCardInsert
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FaqItemInsert is the admin-suppliable subset of an FAQ entry.
type FaqItemInsert struct {
	Question  string `json:"question" validate:"required,max=500"`
	Answer    string `json:"answer" validate:"required,max=5000"`
	Category  string `json:"category,omitempty" validate:"omitempty,max=100"`
	SortOrder int    `json:"sortOrder"`
	IsActive  bool   `json:"isActive"`
}

// FaqItem is a stored FAQ entry.
type FaqItem struct {
	ID int64 `json:"id"`
	FaqItemInsert
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ContactInfoInsert is the admin-suppliable subset of a contact-info block.
// SectionKey groups blocks for the tabbed contact page display.
type ContactInfoInsert struct {
	SectionKey string          `json:"sectionKey" validate:"required,max=100"`
	Title      string          `json:"title" validate:"required,max=300"`
	Content    string          `json:"content" validate:"required"`
	Metadata   json.RawMessage `json:"metadata,omitempty"`
	IsActive   bool            `json:"isActive"`
	SortOrder  int             `json:"sortOrder"`
}

// ContactInfo is a stored contact-info block.
type ContactInfo struct {
	ID int64 `json:"id"`
	ContactInfoInsert
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProductInsert is the admin-suppliable subset of a banking product page
// entry. Features is a real list persisted as jsonb, not delimited text.
type ProductInsert struct {
	Category    string          `json:"category" validate:"required,max=100"`
	Title       string          `json:"title" validate:"required,max=300"`
	Description string          `json:"description" validate:"required"`
	Features    []string        `json:"features,omitempty" validate:"omitempty,dive,required,max=300"`
	Metadata    json.RawMessage `json:"metadata,omitempty"`
	IsActive    bool            `json:"isActive"`
	SortOrder   int             `json:"sortOrder"`
}

// Product is a stored banking product entry.
type Product struct {
	ID int64 `json:"id"`
	ProductInsert
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AboutSectionInsert is the admin-suppliable subset of an About-page section.
type AboutSectionInsert struct {
	SectionKey string          `json:"sectionKey" validate:"required,max=100"`
	Title      string          `json:"title" validate:"required,max=300"`
	Content    string          `json:"content" validate:"required"`
	Image      string          `json:"image,omitempty" validate:"omitempty,max=1000"`
	Metadata   json.RawMessage `json:"metadata,omitempty"`
	IsActive   bool            `json:"isActive"`
	SortOrder  int             `json:"sortOrder"`
}

// AboutSection is a stored About-page section.
type AboutSection struct {
	ID int64 `json:"id"`
	AboutSectionInsert
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
