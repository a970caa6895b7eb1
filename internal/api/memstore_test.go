package api

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/phictor/leadcitymfb-sub000/internal/domain"
	"github.com/phictor/leadcitymfb-sub000/internal/store"
)

// memStore is an in-memory store.Store used by the handler tests. It
// mirrors the database ordering rules: lead inboxes newest-first,
// content by sort order then id.
type memStore struct {
	mu     sync.Mutex
	nextID int64

	accountApps     map[int64]*domain.AccountApplication
	loanApps        map[int64]*domain.LoanApplication
	contactMessages map[int64]*domain.ContactMessage
	branches        map[int64]*domain.Branch
	newsArticles    map[int64]*domain.NewsArticle
	pageSections    map[int64]*domain.PageContentSection
	heroSlides      map[int64]*domain.HeroSlide
	productCards    map[int64]*domain.ProductCard
	faqItems        map[int64]*domain.FaqItem
	contactInfo     map[int64]*domain.ContactInfo
	products        map[int64]*domain.Product
	aboutSections   map[int64]*domain.AboutSection
	adminUsers      map[string]*domain.AdminUser
}

var _ store.Store = (*memStore)(nil)

func newMemStore() *memStore {
	return &memStore{
		accountApps:     make(map[int64]*domain.AccountApplication),
		loanApps:        make(map[int64]*domain.LoanApplication),
		contactMessages: make(map[int64]*domain.ContactMessage),
		branches:        make(map[int64]*domain.Branch),
		newsArticles:    make(map[int64]*domain.NewsArticle),
		pageSections:    make(map[int64]*domain.PageContentSection),
		heroSlides:      make(map[int64]*domain.HeroSlide),
		productCards:    make(map[int64]*domain.ProductCard),
		faqItems:        make(map[int64]*domain.FaqItem),
		contactInfo:     make(map[int64]*domain.ContactInfo),
		products:        make(map[int64]*domain.Product),
		aboutSections:   make(map[int64]*domain.AboutSection),
		adminUsers:      make(map[string]*domain.AdminUser),
	}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

// Lead capture.

func (m *memStore) CreateAccountApplication(_ context.Context, in domain.AccountApplicationInsert) (*domain.AccountApplication, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row := &domain.AccountApplication{ID: m.id(), AccountApplicationInsert: in, Status: domain.ApplicationStatusPending, CreatedAt: time.Now()}
	m.accountApps[row.ID] = row
	return row, nil
}

func (m *memStore) ListAccountApplications(context.Context) ([]domain.AccountApplication, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.AccountApplication{}
	for _, r := range m.accountApps {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *memStore) GetAccountApplication(_ context.Context, id int64) (*domain.AccountApplication, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.accountApps[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return r, nil
}

func (m *memStore) CreateLoanApplication(_ context.Context, in domain.LoanApplicationInsert) (*domain.LoanApplication, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row := &domain.LoanApplication{ID: m.id(), LoanApplicationInsert: in, Status: domain.ApplicationStatusPending, CreatedAt: time.Now()}
	m.loanApps[row.ID] = row
	return row, nil
}

func (m *memStore) ListLoanApplications(context.Context) ([]domain.LoanApplication, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.LoanApplication{}
	for _, r := range m.loanApps {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *memStore) GetLoanApplication(_ context.Context, id int64) (*domain.LoanApplication, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.loanApps[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return r, nil
}

func (m *memStore) CreateContactMessage(_ context.Context, in domain.ContactMessageInsert) (*domain.ContactMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row := &domain.ContactMessage{ID: m.id(), ContactMessageInsert: in, Status: domain.ContactMessageStatusNew, CreatedAt: time.Now()}
	m.contactMessages[row.ID] = row
	return row, nil
}

func (m *memStore) ListContactMessages(context.Context) ([]domain.ContactMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.ContactMessage{}
	for _, r := range m.contactMessages {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *memStore) GetContactMessage(_ context.Context, id int64) (*domain.ContactMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.contactMessages[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return r, nil
}

// Branches.

func (m *memStore) CreateBranch(_ context.Context, in domain.BranchInsert) (*domain.Branch, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.branches {
		if b.Name == in.Name {
			return nil, store.ErrConflict
		}
	}
	row := &domain.Branch{ID: m.id(), BranchInsert: in, CreatedAt: time.Now()}
	m.branches[row.ID] = row
	return row, nil
}

func (m *memStore) ListBranches(context.Context) ([]domain.Branch, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.Branch{}
	for _, r := range m.branches {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// News articles.

func (m *memStore) CreateNewsArticle(_ context.Context, in domain.NewsArticleInsert) (*domain.NewsArticle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.newsArticles {
		if a.Slug == in.Slug {
			return nil, store.ErrConflict
		}
	}
	now := time.Now()
	row := &domain.NewsArticle{ID: m.id(), NewsArticleInsert: in, CreatedAt: now, UpdatedAt: now}
	m.newsArticles[row.ID] = row
	return row, nil
}

func (m *memStore) ListNewsArticles(context.Context) ([]domain.NewsArticle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.NewsArticle{}
	for _, r := range m.newsArticles {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *memStore) GetNewsArticle(_ context.Context, id int64) (*domain.NewsArticle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.newsArticles[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return r, nil
}

func (m *memStore) UpdateNewsArticle(_ context.Context, id int64, in domain.NewsArticleInsert) (*domain.NewsArticle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.newsArticles[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	for otherID, a := range m.newsArticles {
		if otherID != id && a.Slug == in.Slug {
			return nil, store.ErrConflict
		}
	}
	r.NewsArticleInsert = in
	r.UpdatedAt = time.Now()
	return r, nil
}

func (m *memStore) DeleteNewsArticle(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.newsArticles[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.newsArticles, id)
	return nil
}

// Page content sections.

func (m *memStore) CreatePageContentSection(_ context.Context, in domain.PageContentSectionInsert) (*domain.PageContentSection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	row := &domain.PageContentSection{ID: m.id(), PageContentSectionInsert: in, CreatedAt: now, UpdatedAt: now}
	m.pageSections[row.ID] = row
	return row, nil
}

func (m *memStore) ListPageContentSections(_ context.Context, pageID string) ([]domain.PageContentSection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.PageContentSection{}
	for _, r := range m.pageSections {
		if pageID != "" && r.PageID != pageID {
			continue
		}
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].OrderIndex != out[j].OrderIndex {
			return out[i].OrderIndex < out[j].OrderIndex
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *memStore) GetPageContentSection(_ context.Context, id int64) (*domain.PageContentSection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.pageSections[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return r, nil
}

func (m *memStore) UpdatePageContentSection(_ context.Context, id int64, in domain.PageContentSectionInsert) (*domain.PageContentSection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.pageSections[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	r.PageContentSectionInsert = in
	r.UpdatedAt = time.Now()
	return r, nil
}

func (m *memStore) DeletePageContentSection(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.pageSections[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.pageSections, id)
	return nil
}

// Hero slides.

func (m *memStore) CreateHeroSlide(_ context.Context, in domain.HeroSlideInsert) (*domain.HeroSlide, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	row := &domain.HeroSlide{ID: m.id(), HeroSlideInsert: in, CreatedAt: now, UpdatedAt: now}
	m.heroSlides[row.ID] = row
	return row, nil
}

func (m *memStore) ListHeroSlides(context.Context) ([]domain.HeroSlide, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.HeroSlide{}
	for _, r := range m.heroSlides {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *memStore) GetHeroSlide(_ context.Context, id int64) (*domain.HeroSlide, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.heroSlides[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return r, nil
}

func (m *memStore) UpdateHeroSlide(_ context.Context, id int64, in domain.HeroSlideInsert) (*domain.HeroSlide, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.heroSlides[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	r.HeroSlideInsert = in
	r.UpdatedAt = time.Now()
	return r, nil
}

func (m *memStore) DeleteHeroSlide(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.heroSlides[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.heroSlides, id)
	return nil
}

// Product cards.

func (m *memStore) CreateProductCard(_ context.Context, in domain.ProductCardInsert) (*domain.ProductCard, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	row := &domain.ProductCard{ID: m.id(), ProductCardInsert: in, CreatedAt: now, UpdatedAt: now}
	m.productCards[row.ID] = row
	return row, nil
}

func (m *memStore) ListProductCards(context.Context) ([]domain.ProductCard, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.ProductCard{}
	for _, r := range m.productCards {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *memStore) GetProductCard(_ context.Context, id int64) (*domain.ProductCard, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.productCards[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return r, nil
}

func (m *memStore) UpdateProductCard(_ context.Context, id int64, in domain.ProductCardInsert) (*domain.ProductCard, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.productCards[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	r.ProductCardInsert = in
	r.UpdatedAt = time.Now()
	return r, nil
}

func (m *memStore) DeleteProductCard(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.productCards[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.productCards, id)
	return nil
}

// FAQ items.

func (m *memStore) CreateFaqItem(_ context.Context, in domain.FaqItemInsert) (*domain.FaqItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	row := &domain.FaqItem{ID: m.id(), FaqItemInsert: in, CreatedAt: now, UpdatedAt: now}
	m.faqItems[row.ID] = row
	return row, nil
}

func (m *memStore) ListFaqItems(context.Context) ([]domain.FaqItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.FaqItem{}
	for _, r := range m.faqItems {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *memStore) GetFaqItem(_ context.Context, id int64) (*domain.FaqItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.faqItems[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return r, nil
}

func (m *memStore) UpdateFaqItem(_ context.Context, id int64, in domain.FaqItemInsert) (*domain.FaqItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.faqItems[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	r.FaqItemInsert = in
	r.UpdatedAt = time.Now()
	return r, nil
}

func (m *memStore) DeleteFaqItem(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.faqItems[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.faqItems, id)
	return nil
}

// Contact info blocks.

func (m *memStore) CreateContactInfo(_ context.Context, in domain.ContactInfoInsert) (*domain.ContactInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	row := &domain.ContactInfo{ID: m.id(), ContactInfoInsert: in, CreatedAt: now, UpdatedAt: now}
	m.contactInfo[row.ID] = row
	return row, nil
}

func (m *memStore) ListContactInfo(context.Context) ([]domain.ContactInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.ContactInfo{}
	for _, r := range m.contactInfo {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *memStore) GetContactInfo(_ context.Context, id int64) (*domain.ContactInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.contactInfo[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return r, nil
}

func (m *memStore) UpdateContactInfo(_ context.Context, id int64, in domain.ContactInfoInsert) (*domain.ContactInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.contactInfo[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	r.ContactInfoInsert = in
	r.UpdatedAt = time.Now()
	return r, nil
}

func (m *memStore) DeleteContactInfo(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.contactInfo[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.contactInfo, id)
	return nil
}

// Products.

func (m *memStore) CreateProduct(_ context.Context, in domain.ProductInsert) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	row := &domain.Product{ID: m.id(), ProductInsert: in, CreatedAt: now, UpdatedAt: now}
	m.products[row.ID] = row
	return row, nil
}

func (m *memStore) ListProducts(context.Context) ([]domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.Product{}
	for _, r := range m.products {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *memStore) GetProduct(_ context.Context, id int64) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.products[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return r, nil
}

func (m *memStore) UpdateProduct(_ context.Context, id int64, in domain.ProductInsert) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.products[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	r.ProductInsert = in
	r.UpdatedAt = time.Now()
	return r, nil
}

func (m *memStore) DeleteProduct(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.products, id)
	return nil
}

// About sections.

func (m *memStore) CreateAboutSection(_ context.Context, in domain.AboutSectionInsert) (*domain.AboutSection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	row := &domain.AboutSection{ID: m.id(), AboutSectionInsert: in, CreatedAt: now, UpdatedAt: now}
	m.aboutSections[row.ID] = row
	return row, nil
}

func (m *memStore) ListAboutSections(context.Context) ([]domain.AboutSection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.AboutSection{}
	for _, r := range m.aboutSections {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *memStore) GetAboutSection(_ context.Context, id int64) (*domain.AboutSection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.aboutSections[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return r, nil
}

func (m *memStore) UpdateAboutSection(_ context.Context, id int64, in domain.AboutSectionInsert) (*domain.AboutSection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.aboutSections[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	r.AboutSectionInsert = in
	r.UpdatedAt = time.Now()
	return r, nil
}

func (m *memStore) DeleteAboutSection(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.aboutSections[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.aboutSections, id)
	return nil
}

// Admin users.

func (m *memStore) CreateAdminUser(_ context.Context, username, passwordHash string) (*domain.AdminUser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.adminUsers[username]; exists {
		return nil, store.ErrConflict
	}
	u := &domain.AdminUser{ID: m.id(), Username: username, PasswordHash: passwordHash, CreatedAt: time.Now()}
	m.adminUsers[username] = u
	return u, nil
}

func (m *memStore) GetAdminUserByUsername(_ context.Context, username string) (*domain.AdminUser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.adminUsers[username]
	if !ok {
		return nil, store.ErrNotFound
	}
	return u, nil
}

func (m *memStore) CountAdminUsers(context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.adminUsers), nil
}
