/**
 * @description
 * This file defines the `Store` interface, the contract for every
 * persistence operation the website backend performs. It is the only
 * seam between handlers and PostgreSQL, which keeps handlers testable
 * against an in-memory fake. Each method issues exactly one statement;
 * there are no cross-entity transactions, no caching and no retries.
 */

package store

import (
	"context"
	"errors"

	"github.com/phictor/leadcitymfb-sub000/internal/domain"
)

// ErrNotFound is returned when a referenced id does not exist.
var ErrNotFound = errors.New("record not found")

// ErrConflict is returned on unique violations (slug, branch name, username).
var ErrConflict = errors.New("record conflicts with an existing record")

// Store is the storage facade for all site entities.
type Store interface {
	// Lead capture. Create-only from the public site; staff read the lists.
	CreateAccountApplication(ctx context.Context, in domain.AccountApplicationInsert) (*domain.AccountApplication, error)
	ListAccountApplications(ctx context.Context) ([]domain.AccountApplication, error)
	GetAccountApplication(ctx context.Context, id int64) (*domain.AccountApplication, error)

	CreateLoanApplication(ctx context.Context, in domain.LoanApplicationInsert) (*domain.LoanApplication, error)
	ListLoanApplications(ctx context.Context) ([]domain.LoanApplication, error)
	GetLoanApplication(ctx context.Context, id int64) (*domain.LoanApplication, error)

	CreateContactMessage(ctx context.Context, in domain.ContactMessageInsert) (*domain.ContactMessage, error)
	ListContactMessages(ctx context.Context) ([]domain.ContactMessage, error)
	GetContactMessage(ctx context.Context, id int64) (*domain.ContactMessage, error)

	// Branches are seeded at startup and read-only over HTTP.
	CreateBranch(ctx context.Context, in domain.BranchInsert) (*domain.Branch, error)
	ListBranches(ctx context.Context) ([]domain.Branch, error)

	// CMS content, full CRUD from the admin panel.
	CreateNewsArticle(ctx context.Context, in domain.NewsArticleInsert) (*domain.NewsArticle, error)
	ListNewsArticles(ctx context.Context) ([]domain.NewsArticle, error)
	GetNewsArticle(ctx context.Context, id int64) (*domain.NewsArticle, error)
	UpdateNewsArticle(ctx context.Context, id int64, in domain.NewsArticleInsert) (*domain.NewsArticle, error)
	DeleteNewsArticle(ctx context.Context, id int64) error

	CreatePageContentSection(ctx context.Context, in domain.PageContentSectionInsert) (*domain.PageContentSection, error)
	ListPageContentSections(ctx context.Context, pageID string) ([]domain.PageContentSection, error)
	GetPageContentSection(ctx context.Context, id int64) (*domain.PageContentSection, error)
	UpdatePageContentSection(ctx context.Context, id int64, in domain.PageContentSectionInsert) (*domain.PageContentSection, error)
	DeletePageContentSection(ctx context.Context, id int64) error

	CreateHeroSlide(ctx context.Context, in domain.HeroSlideInsert) (*domain.HeroSlide, error)
	ListHeroSlides(ctx context.Context) ([]domain.HeroSlide, error)
	GetHeroSlide(ctx context.Context, id int64) (*domain.HeroSlide, error)
	UpdateHeroSlide(ctx context.Context, id int64, in domain.HeroSlideInsert) (*domain.HeroSlide, error)
	DeleteHeroSlide(ctx context.Context, id int64) error

	CreateProductCard(ctx context.Context, in domain.ProductCardInsert) (*domain.ProductCard, error)
	ListProductCards(ctx context.Context) ([]domain.ProductCard, error)
	GetProductCard(ctx context.Context, id int64) (*domain.ProductCard, error)
	UpdateProductCard(ctx context.Context, id int64, in domain.ProductCardInsert) (*domain.ProductCard, error)
	DeleteProductCard(ctx context.Context, id int64) error

	CreateFaqItem(ctx context.Context, in domain.FaqItemInsert) (*domain.FaqItem, error)
	ListFaqItems(ctx context.Context) ([]domain.FaqItem, error)
	GetFaqItem(ctx context.Context, id int64) (*domain.FaqItem, error)
	UpdateFaqItem(ctx context.Context, id int64, in domain.FaqItemInsert) (*domain.FaqItem, error)
	DeleteFaqItem(ctx context.Context, id int64) error

	CreateContactInfo(ctx context.Context, in domain.ContactInfoInsert) (*domain.ContactInfo, error)
	ListContactInfo(ctx context.Context) ([]domain.ContactInfo, error)
	GetContactInfo(ctx context.Context, id int64) (*domain.ContactInfo, error)
	UpdateContactInfo(ctx context.Context, id int64, in domain.ContactInfoInsert) (*domain.ContactInfo, error)
	DeleteContactInfo(ctx context.Context, id int64) error

	CreateProduct(ctx context.Context, in domain.ProductInsert) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id int64, in domain.ProductInsert) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error

	CreateAboutSection(ctx context.Context, in domain.AboutSectionInsert) (*domain.AboutSection, error)
	ListAboutSections(ctx context.Context) ([]domain.AboutSection, error)
	GetAboutSection(ctx context.Context, id int64) (*domain.AboutSection, error)
	UpdateAboutSection(ctx context.Context, id int64, in domain.AboutSectionInsert) (*domain.AboutSection, error)
	DeleteAboutSection(ctx context.Context, id int64) error

	// Admin credential store.
	CreateAdminUser(ctx context.Context, username, passwordHash string) (*domain.AdminUser, error)
	GetAdminUserByUsername(ctx context.Context, username string) (*domain.AdminUser, error)
	CountAdminUsers(ctx context.Context) (int, error)
}
