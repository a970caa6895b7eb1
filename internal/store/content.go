/**
 * @description
 * Repository methods for the CMS-managed content entities: news articles,
 * page content sections, hero slides, product cards, FAQ items,
 * contact-info blocks, products and about sections. Updates always set
 * updated_at; list order follows each entity's sort column with id as the
 * tiebreaker.
 */

package store

import (
	"context"

	"github.com/phictor/leadcitymfb-sub000/internal/domain"
)

// --- News articles ---

func scanNewsArticle(row rowScanner) (*domain.NewsArticle, error) {
	var (
		n        domain.NewsArticle
		readTime *string
		image    *string
	)
	err := row.Scan(
		&n.ID, &n.Title, &n.Slug, &n.Summary, &n.Content, &n.Category,
		&n.Author, &n.PublishDate, &readTime, &n.Featured, &image,
		&n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	if readTime != nil {
		n.ReadTime = *readTime
	}
	if image != nil {
		n.Image = *image
	}
	return &n, nil
}

const newsArticleColumns = `
    id, title, slug, summary, content, category, author, publish_date,
    read_time, featured, image, created_at, updated_at`

// CreateNewsArticle inserts an article. Slugs are unique; a duplicate
// surfaces as ErrConflict.
func (p *Postgres) CreateNewsArticle(ctx context.Context, in domain.NewsArticleInsert) (*domain.NewsArticle, error) {
	query := `
        INSERT INTO news_articles
            (title, slug, summary, content, category, author, publish_date,
             read_time, featured, image)
        VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9, NULLIF($10, ''))
        RETURNING` + newsArticleColumns
	row := p.db.QueryRow(ctx, query,
		in.Title, in.Slug, in.Summary, in.Content, string(in.Category),
		in.Author, in.PublishDate, in.ReadTime, in.Featured, in.Image,
	)
	return scanNewsArticle(row)
}

// ListNewsArticles returns all articles, most recently published first.
func (p *Postgres) ListNewsArticles(ctx context.Context) ([]domain.NewsArticle, error) {
	query := `SELECT` + newsArticleColumns + ` FROM news_articles ORDER BY publish_date DESC, id DESC`
	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	articles := []domain.NewsArticle{}
	for rows.Next() {
		n, err := scanNewsArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, *n)
	}
	return articles, rows.Err()
}

// GetNewsArticle retrieves one article by id.
func (p *Postgres) GetNewsArticle(ctx context.Context, id int64) (*domain.NewsArticle, error) {
	query := `SELECT` + newsArticleColumns + ` FROM news_articles WHERE id = $1`
	return scanNewsArticle(p.db.QueryRow(ctx, query, id))
}

// UpdateNewsArticle replaces the writable fields of an article.
func (p *Postgres) UpdateNewsArticle(ctx context.Context, id int64, in domain.NewsArticleInsert) (*domain.NewsArticle, error) {
	query := `
        UPDATE news_articles SET
            title = $2, slug = $3, summary = $4, content = $5, category = $6,
            author = $7, publish_date = $8, read_time = NULLIF($9, ''),
            featured = $10, image = NULLIF($11, ''), updated_at = NOW()
        WHERE id = $1
        RETURNING` + newsArticleColumns
	row := p.db.QueryRow(ctx, query, id,
		in.Title, in.Slug, in.Summary, in.Content, string(in.Category),
		in.Author, in.PublishDate, in.ReadTime, in.Featured, in.Image,
	)
	return scanNewsArticle(row)
}

// DeleteNewsArticle removes an article by id.
func (p *Postgres) DeleteNewsArticle(ctx context.Context, id int64) error {
	return p.deleteByID(ctx, "news_articles", id)
}

// --- Page content sections ---

func scanPageContentSection(row rowScanner) (*domain.PageContentSection, error) {
	var (
		s          domain.PageContentSection
		content    *string
		image      *string
		buttonText *string
		buttonLink *string
		metadata   []byte
	)
	err := row.Scan(
		&s.ID, &s.PageID, &s.SectionType, &s.Title, &content, &image,
		&buttonText, &buttonLink, &s.OrderIndex, &s.IsVisible, &metadata,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	if content != nil {
		s.Content = *content
	}
	if image != nil {
		s.Image = *image
	}
	if buttonText != nil {
		s.ButtonText = *buttonText
	}
	if buttonLink != nil {
		s.ButtonLink = *buttonLink
	}
	s.Metadata = scanJSON(metadata)
	return &s, nil
}

const pageContentSectionColumns = `
    id, page_id, section_type, title, content, image, button_text,
    button_link, order_index, is_visible, metadata, created_at, updated_at`

// CreatePageContentSection inserts a CMS page section.
func (p *Postgres) CreatePageContentSection(ctx context.Context, in domain.PageContentSectionInsert) (*domain.PageContentSection, error) {
	query := `
        INSERT INTO page_content_sections
            (page_id, section_type, title, content, image, button_text,
             button_link, order_index, is_visible, metadata)
        VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''),
                NULLIF($7, ''), $8, $9, $10::jsonb)
        RETURNING` + pageContentSectionColumns
	row := p.db.QueryRow(ctx, query,
		in.PageID, string(in.SectionType), in.Title, in.Content, in.Image,
		in.ButtonText, in.ButtonLink, in.OrderIndex, in.IsVisible,
		jsonArg(in.Metadata),
	)
	return scanPageContentSection(row)
}

// ListPageContentSections returns sections ordered for display. An empty
// pageID lists every page's sections.
func (p *Postgres) ListPageContentSections(ctx context.Context, pageID string) ([]domain.PageContentSection, error) {
	query := `SELECT` + pageContentSectionColumns + `
        FROM page_content_sections
        WHERE ($1 = '' OR page_id = $1)
        ORDER BY page_id, order_index, id`
	rows, err := p.db.Query(ctx, query, pageID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	sections := []domain.PageContentSection{}
	for rows.Next() {
		s, err := scanPageContentSection(rows)
		if err != nil {
			return nil, err
		}
		sections = append(sections, *s)
	}
	return sections, rows.Err()
}

// GetPageContentSection retrieves one section by id.
func (p *Postgres) GetPageContentSection(ctx context.Context, id int64) (*domain.PageContentSection, error) {
	query := `SELECT` + pageContentSectionColumns + ` FROM page_content_sections WHERE id = $1`
	return scanPageContentSection(p.db.QueryRow(ctx, query, id))
}

// UpdatePageContentSection replaces the writable fields of a section.
func (p *Postgres) UpdatePageContentSection(ctx context.Context, id int64, in domain.PageContentSectionInsert) (*domain.PageContentSection, error) {
	query := `
        UPDATE page_content_sections SET
            page_id = $2, section_type = $3, title = $4,
            content = NULLIF($5, ''), image = NULLIF($6, ''),
            button_text = NULLIF($7, ''), button_link = NULLIF($8, ''),
            order_index = $9, is_visible = $10, metadata = $11::jsonb,
            updated_at = NOW()
        WHERE id = $1
        RETURNING` + pageContentSectionColumns
	row := p.db.QueryRow(ctx, query, id,
		in.PageID, string(in.SectionType), in.Title, in.Content, in.Image,
		in.ButtonText, in.ButtonLink, in.OrderIndex, in.IsVisible,
		jsonArg(in.Metadata),
	)
	return scanPageContentSection(row)
}

// DeletePageContentSection removes a section by id.
func (p *Postgres) DeletePageContentSection(ctx context.Context, id int64) error {
	return p.deleteByID(ctx, "page_content_sections", id)
}

// --- Hero slides ---

func scanHeroSlide(row rowScanner) (*domain.HeroSlide, error) {
	var (
		h          domain.HeroSlide
		subtitle   *string
		buttonText *string
		buttonLink *string
	)
	err := row.Scan(
		&h.ID, &h.Title, &subtitle, &h.Image, &buttonText, &buttonLink,
		&h.SortOrder, &h.IsActive, &h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	if subtitle != nil {
		h.Subtitle = *subtitle
	}
	if buttonText != nil {
		h.ButtonText = *buttonText
	}
	if buttonLink != nil {
		h.ButtonLink = *buttonLink
	}
	return &h, nil
}

const heroSlideColumns = `
    id, title, subtitle, image, button_text, button_link, sort_order,
    is_active, created_at, updated_at`

// CreateHeroSlide inserts a homepage hero slide.
func (p *Postgres) CreateHeroSlide(ctx context.Context, in domain.HeroSlideInsert) (*domain.HeroSlide, error) {
	query := `
        INSERT INTO hero_slides
            (title, subtitle, image, button_text, button_link, sort_order, is_active)
        VALUES ($1, NULLIF($2, ''), $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7)
        RETURNING` + heroSlideColumns
	row := p.db.QueryRow(ctx, query,
		in.Title, in.Subtitle, in.Image, in.ButtonText, in.ButtonLink,
		in.SortOrder, in.IsActive,
	)
	return scanHeroSlide(row)
}

// ListHeroSlides returns slides in display order.
func (p *Postgres) ListHeroSlides(ctx context.Context) ([]domain.HeroSlide, error) {
	query := `SELECT` + heroSlideColumns + ` FROM hero_slides ORDER BY sort_order, id`
	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	slides := []domain.HeroSlide{}
	for rows.Next() {
		h, err := scanHeroSlide(rows)
		if err != nil {
			return nil, err
		}
		slides = append(slides, *h)
	}
	return slides, rows.Err()
}

// GetHeroSlide retrieves one slide by id.
func (p *Postgres) GetHeroSlide(ctx context.Context, id int64) (*domain.HeroSlide, error) {
	query := `SELECT` + heroSlideColumns + ` FROM hero_slides WHERE id = $1`
	return scanHeroSlide(p.db.QueryRow(ctx, query, id))
}

// UpdateHeroSlide replaces the writable fields of a slide.
func (p *Postgres) UpdateHeroSlide(ctx context.Context, id int64, in domain.HeroSlideInsert) (*domain.HeroSlide, error) {
	query := `
        UPDATE hero_slides SET
            title = $2, subtitle = NULLIF($3, ''), image = $4,
            button_text = NULLIF($5, ''), button_link = NULLIF($6, ''),
            sort_order = $7, is_active = $8, updated_at = NOW()
        WHERE id = $1
        RETURNING` + heroSlideColumns
	row := p.db.QueryRow(ctx, query, id,
		in.Title, in.Subtitle, in.Image, in.ButtonText, in.ButtonLink,
		in.SortOrder, in.IsActive,
	)
	return scanHeroSlide(row)
}

// DeleteHeroSlide removes a slide by id.
func (p *Postgres) DeleteHeroSlide(ctx context.Context, id int64) error {
	return p.deleteByID(ctx, "hero_slides", id)
}

// --- Product cards ---

func scanProductCard(row rowScanner) (*domain.ProductCard, error) {
	var (
		c    domain.ProductCard
		icon *string
		link *string
	)
	err := row.Scan(
		&c.ID, &c.Title, &c.Description, &icon, &link, &c.SortOrder,
		&c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	if icon != nil {
		c.Icon = *icon
	}
	if link != nil {
		c.Link = *link
	}
	return &c, nil
}

const productCardColumns = `
    id, title, description, icon, link, sort_order, is_active, created_at, updated_at`

// CreateProductCard inserts a homepage product card.
func (p *Postgres) CreateProductCard(ctx context.Context, in domain.ProductCardInsert) (*domain.ProductCard, error) {
	query := `
        INSERT INTO product_cards (title, description, icon, link, sort_order, is_active)
        VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, $6)
        RETURNING` + productCardColumns
	row := p.db.QueryRow(ctx, query,
		in.Title, in.Description, in.Icon, in.Link, in.SortOrder, in.IsActive,
	)
	return scanProductCard(row)
}

// ListProductCards returns cards in display order.
func (p *Postgres) ListProductCards(ctx context.Context) ([]domain.ProductCard, error) {
	query := `SELECT` + productCardColumns + ` FROM product_cards ORDER BY sort_order, id`
	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	cards := []domain.ProductCard{}
	for rows.Next() {
		c, err := scanProductCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, *c)
	}
	return cards, rows.Err()
}

// GetProductCard retrieves one card by id.
func (p *Postgres) GetProductCard(ctx context.Context, id int64) (*domain.ProductCard, error) {
	query := `SELECT` + productCardColumns + ` FROM product_cards WHERE id = $1`
	return scanProductCard(p.db.QueryRow(ctx, query, id))
}

// UpdateProductCard replaces the writable fields of a card.
func (p *Postgres) UpdateProductCard(ctx context.Context, id int64, in domain.ProductCardInsert) (*domain.ProductCard, error) {
	query := `
        UPDATE product_cards SET
            title = $2, description = $3, icon = NULLIF($4, ''),
            link = NULLIF($5, ''), sort_order = $6, is_active = $7,
            updated_at = NOW()
        WHERE id = $1
        RETURNING` + productCardColumns
	row := p.db.QueryRow(ctx, query, id,
		in.Title, in.Description, in.Icon, in.Link, in.SortOrder, in.IsActive,
	)
	return scanProductCard(row)
}

// DeleteProductCard removes a card by id.
func (p *Postgres) DeleteProductCard(ctx context.Context, id int64) error {
	return p.deleteByID(ctx, "product_cards", id)
}

// --- FAQ items ---

func scanFaqItem(row rowScanner) (*domain.FaqItem, error) {
	var (
		f        domain.FaqItem
		category *string
	)
	err := row.Scan(
		&f.ID, &f.Question, &f.Answer, &category, &f.SortOrder, &f.IsActive,
		&f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	if category != nil {
		f.Category = *category
	}
	return &f, nil
}

const faqItemColumns = `
    id, question, answer, category, sort_order, is_active, created_at, updated_at`

// CreateFaqItem inserts an FAQ entry.
func (p *Postgres) CreateFaqItem(ctx context.Context, in domain.FaqItemInsert) (*domain.FaqItem, error) {
	query := `
        INSERT INTO faq_items (question, answer, category, sort_order, is_active)
        VALUES ($1, $2, NULLIF($3, ''), $4, $5)
        RETURNING` + faqItemColumns
	row := p.db.QueryRow(ctx, query,
		in.Question, in.Answer, in.Category, in.SortOrder, in.IsActive,
	)
	return scanFaqItem(row)
}

// ListFaqItems returns FAQ entries in display order.
func (p *Postgres) ListFaqItems(ctx context.Context) ([]domain.FaqItem, error) {
	query := `SELECT` + faqItemColumns + ` FROM faq_items ORDER BY sort_order, id`
	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	items := []domain.FaqItem{}
	for rows.Next() {
		f, err := scanFaqItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *f)
	}
	return items, rows.Err()
}

// GetFaqItem retrieves one entry by id.
func (p *Postgres) GetFaqItem(ctx context.Context, id int64) (*domain.FaqItem, error) {
	query := `SELECT` + faqItemColumns + ` FROM faq_items WHERE id = $1`
	return scanFaqItem(p.db.QueryRow(ctx, query, id))
}

// UpdateFaqItem replaces the writable fields of an entry.
func (p *Postgres) UpdateFaqItem(ctx context.Context, id int64, in domain.FaqItemInsert) (*domain.FaqItem, error) {
	query := `
        UPDATE faq_items SET
            question = $2, answer = $3, category = NULLIF($4, ''),
            sort_order = $5, is_active = $6, updated_at = NOW()
        WHERE id = $1
        RETURNING` + faqItemColumns
	row := p.db.QueryRow(ctx, query, id,
		in.Question, in.Answer, in.Category, in.SortOrder, in.IsActive,
	)
	return scanFaqItem(row)
}

// DeleteFaqItem removes an entry by id.
func (p *Postgres) DeleteFaqItem(ctx context.Context, id int64) error {
	return p.deleteByID(ctx, "faq_items", id)
}

// --- Contact info blocks ---

func scanContactInfo(row rowScanner) (*domain.ContactInfo, error) {
	var (
		c        domain.ContactInfo
		metadata []byte
	)
	err := row.Scan(
		&c.ID, &c.SectionKey, &c.Title, &c.Content, &metadata, &c.IsActive,
		&c.SortOrder, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	c.Metadata = scanJSON(metadata)
	return &c, nil
}

const contactInfoColumns = `
    id, section_key, title, content, metadata, is_active, sort_order,
    created_at, updated_at`

// CreateContactInfo inserts a contact-info block.
func (p *Postgres) CreateContactInfo(ctx context.Context, in domain.ContactInfoInsert) (*domain.ContactInfo, error) {
	query := `
        INSERT INTO contact_info (section_key, title, content, metadata, is_active, sort_order)
        VALUES ($1, $2, $3, $4::jsonb, $5, $6)
        RETURNING` + contactInfoColumns
	row := p.db.QueryRow(ctx, query,
		in.SectionKey, in.Title, in.Content, jsonArg(in.Metadata),
		in.IsActive, in.SortOrder,
	)
	return scanContactInfo(row)
}

// ListContactInfo returns blocks grouped for the tabbed contact page.
func (p *Postgres) ListContactInfo(ctx context.Context) ([]domain.ContactInfo, error) {
	query := `SELECT` + contactInfoColumns + ` FROM contact_info ORDER BY section_key, sort_order, id`
	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	blocks := []domain.ContactInfo{}
	for rows.Next() {
		c, err := scanContactInfo(rows)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, *c)
	}
	return blocks, rows.Err()
}

// GetContactInfo retrieves one block by id.
func (p *Postgres) GetContactInfo(ctx context.Context, id int64) (*domain.ContactInfo, error) {
	query := `SELECT` + contactInfoColumns + ` FROM contact_info WHERE id = $1`
	return scanContactInfo(p.db.QueryRow(ctx, query, id))
}

// UpdateContactInfo replaces the writable fields of a block.
func (p *Postgres) UpdateContactInfo(ctx context.Context, id int64, in domain.ContactInfoInsert) (*domain.ContactInfo, error) {
	query := `
        UPDATE contact_info SET
            section_key = $2, title = $3, content = $4, metadata = $5::jsonb,
            is_active = $6, sort_order = $7, updated_at = NOW()
        WHERE id = $1
        RETURNING` + contactInfoColumns
	row := p.db.QueryRow(ctx, query, id,
		in.SectionKey, in.Title, in.Content, jsonArg(in.Metadata),
		in.IsActive, in.SortOrder,
	)
	return scanContactInfo(row)
}

// DeleteContactInfo removes a block by id.
func (p *Postgres) DeleteContactInfo(ctx context.Context, id int64) error {
	return p.deleteByID(ctx, "contact_info", id)
}

// --- Products ---

func scanProduct(row rowScanner) (*domain.Product, error) {
	var (
		pr       domain.Product
		features []byte
		metadata []byte
	)
	err := row.Scan(
		&pr.ID, &pr.Category, &pr.Title, &pr.Description, &features,
		&metadata, &pr.IsActive, &pr.SortOrder, &pr.CreatedAt, &pr.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	list, err := scanStringList(features)
	if err != nil {
		return nil, err
	}
	pr.Features = list
	pr.Metadata = scanJSON(metadata)
	return &pr, nil
}

const productColumns = `
    id, category, title, description, features, metadata, is_active,
    sort_order, created_at, updated_at`

// CreateProduct inserts a banking product entry.
func (p *Postgres) CreateProduct(ctx context.Context, in domain.ProductInsert) (*domain.Product, error) {
	features, err := stringListArg(in.Features)
	if err != nil {
		return nil, err
	}
	query := `
        INSERT INTO products (category, title, description, features, metadata, is_active, sort_order)
        VALUES ($1, $2, $3, $4::jsonb, $5::jsonb, $6, $7)
        RETURNING` + productColumns
	row := p.db.QueryRow(ctx, query,
		in.Category, in.Title, in.Description, features,
		jsonArg(in.Metadata), in.IsActive, in.SortOrder,
	)
	return scanProduct(row)
}

// ListProducts returns products grouped by category in display order.
func (p *Postgres) ListProducts(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT` + productColumns + ` FROM products ORDER BY category, sort_order, id`
	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		pr, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *pr)
	}
	return products, rows.Err()
}

// GetProduct retrieves one product by id.
func (p *Postgres) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	query := `SELECT` + productColumns + ` FROM products WHERE id = $1`
	return scanProduct(p.db.QueryRow(ctx, query, id))
}

// UpdateProduct replaces the writable fields of a product.
func (p *Postgres) UpdateProduct(ctx context.Context, id int64, in domain.ProductInsert) (*domain.Product, error) {
	features, err := stringListArg(in.Features)
	if err != nil {
		return nil, err
	}
	query := `
        UPDATE products SET
            category = $2, title = $3, description = $4, features = $5::jsonb,
            metadata = $6::jsonb, is_active = $7, sort_order = $8,
            updated_at = NOW()
        WHERE id = $1
        RETURNING` + productColumns
	row := p.db.QueryRow(ctx, query, id,
		in.Category, in.Title, in.Description, features,
		jsonArg(in.Metadata), in.IsActive, in.SortOrder,
	)
	return scanProduct(row)
}

// DeleteProduct removes a product by id.
func (p *Postgres) DeleteProduct(ctx context.Context, id int64) error {
	return p.deleteByID(ctx, "products", id)
}

// --- About sections ---

func scanAboutSection(row rowScanner) (*domain.AboutSection, error) {
	var (
		a        domain.AboutSection
		image    *string
		metadata []byte
	)
	err := row.Scan(
		&a.ID, &a.SectionKey, &a.Title, &a.Content, &image, &metadata,
		&a.IsActive, &a.SortOrder, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	if image != nil {
		a.Image = *image
	}
	a.Metadata = scanJSON(metadata)
	return &a, nil
}

const aboutSectionColumns = `
    id, section_key, title, content, image, metadata, is_active, sort_order,
    created_at, updated_at`

// CreateAboutSection inserts an About-page section.
func (p *Postgres) CreateAboutSection(ctx context.Context, in domain.AboutSectionInsert) (*domain.AboutSection, error) {
	query := `
        INSERT INTO about_sections (section_key, title, content, image, metadata, is_active, sort_order)
        VALUES ($1, $2, $3, NULLIF($4, ''), $5::jsonb, $6, $7)
        RETURNING` + aboutSectionColumns
	row := p.db.QueryRow(ctx, query,
		in.SectionKey, in.Title, in.Content, in.Image, jsonArg(in.Metadata),
		in.IsActive, in.SortOrder,
	)
	return scanAboutSection(row)
}

// ListAboutSections returns sections grouped by key in display order.
func (p *Postgres) ListAboutSections(ctx context.Context) ([]domain.AboutSection, error) {
	query := `SELECT` + aboutSectionColumns + ` FROM about_sections ORDER BY section_key, sort_order, id`
	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	sections := []domain.AboutSection{}
	for rows.Next() {
		a, err := scanAboutSection(rows)
		if err != nil {
			return nil, err
		}
		sections = append(sections, *a)
	}
	return sections, rows.Err()
}

// GetAboutSection retrieves one section by id.
func (p *Postgres) GetAboutSection(ctx context.Context, id int64) (*domain.AboutSection, error) {
	query := `SELECT` + aboutSectionColumns + ` FROM about_sections WHERE id = $1`
	return scanAboutSection(p.db.QueryRow(ctx, query, id))
}

// UpdateAboutSection replaces the writable fields of a section.
func (p *Postgres) UpdateAboutSection(ctx context.Context, id int64, in domain.AboutSectionInsert) (*domain.AboutSection, error) {
	query := `
        UPDATE about_sections SET
            section_key = $2, title = $3, content = $4, image = NULLIF($5, ''),
            metadata = $6::jsonb, is_active = $7, sort_order = $8,
            updated_at = NOW()
        WHERE id = $1
        RETURNING` + aboutSectionColumns
	row := p.db.QueryRow(ctx, query, id,
		in.SectionKey, in.Title, in.Content, in.Image, jsonArg(in.Metadata),
		in.IsActive, in.SortOrder,
	)
	return scanAboutSection(row)
}

// DeleteAboutSection removes a section by id.
func (p *Postgres) DeleteAboutSection(ctx context.Context, id int64) error {
	return p.deleteByID(ctx, "about_sections", id)
}
