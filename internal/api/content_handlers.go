/**
 * @description
 * CMS content endpoints. Reads are public so the marketing site can
 * render; writes sit behind the admin session middleware. Every entity
 * goes through the same generic decode/validate/store pipeline, so each
 * handler is one closure over the matching storage method.
 */

package api

import (
	"net/http"

	"github.com/phictor/leadcitymfb-sub000/internal/domain"
)

// News articles.

func (h *Handlers) HandleCreateNewsArticle(w http.ResponseWriter, r *http.Request) {
	handleCreate(h, w, r, func(r *http.Request, in domain.NewsArticleInsert) (*domain.NewsArticle, error) {
		return h.store.CreateNewsArticle(r.Context(), in)
	})
}

func (h *Handlers) HandleListNewsArticles(w http.ResponseWriter, r *http.Request) {
	handleList(h, w, r, func(r *http.Request) ([]domain.NewsArticle, error) {
		return h.store.ListNewsArticles(r.Context())
	})
}

func (h *Handlers) HandleGetNewsArticle(w http.ResponseWriter, r *http.Request) {
	handleGet(h, w, r, func(r *http.Request, id int64) (*domain.NewsArticle, error) {
		return h.store.GetNewsArticle(r.Context(), id)
	})
}

func (h *Handlers) HandleUpdateNewsArticle(w http.ResponseWriter, r *http.Request) {
	handleUpdate(h, w, r, func(r *http.Request, id int64, in domain.NewsArticleInsert) (*domain.NewsArticle, error) {
		return h.store.UpdateNewsArticle(r.Context(), id, in)
	})
}

func (h *Handlers) HandleDeleteNewsArticle(w http.ResponseWriter, r *http.Request) {
	handleDelete(h, w, r, func(r *http.Request, id int64) error {
		return h.store.DeleteNewsArticle(r.Context(), id)
	})
}

// Page content sections. The list accepts an optional ?pageId= filter so
// one page can fetch only its own sections.

func (h *Handlers) HandleCreatePageContentSection(w http.ResponseWriter, r *http.Request) {
	handleCreate(h, w, r, func(r *http.Request, in domain.PageContentSectionInsert) (*domain.PageContentSection, error) {
		return h.store.CreatePageContentSection(r.Context(), in)
	})
}

func (h *Handlers) HandleListPageContentSections(w http.ResponseWriter, r *http.Request) {
	handleList(h, w, r, func(r *http.Request) ([]domain.PageContentSection, error) {
		return h.store.ListPageContentSections(r.Context(), r.URL.Query().Get("pageId"))
	})
}

func (h *Handlers) HandleGetPageContentSection(w http.ResponseWriter, r *http.Request) {
	handleGet(h, w, r, func(r *http.Request, id int64) (*domain.PageContentSection, error) {
		return h.store.GetPageContentSection(r.Context(), id)
	})
}

func (h *Handlers) HandleUpdatePageContentSection(w http.ResponseWriter, r *http.Request) {
	handleUpdate(h, w, r, func(r *http.Request, id int64, in domain.PageContentSectionInsert) (*domain.PageContentSection, error) {
		return h.store.UpdatePageContentSection(r.Context(), id, in)
	})
}

func (h *Handlers) HandleDeletePageContentSection(w http.ResponseWriter, r *http.Request) {
	handleDelete(h, w, r, func(r *http.Request, id int64) error {
		return h.store.DeletePageContentSection(r.Context(), id)
	})
}

// Hero slides.

func (h *Handlers) HandleCreateHeroSlide(w http.ResponseWriter, r *http.Request) {
	handleCreate(h, w, r, func(r *http.Request, in domain.HeroSlideInsert) (*domain.HeroSlide, error) {
		return h.store.CreateHeroSlide(r.Context(), in)
	})
}

func (h *Handlers) HandleListHeroSlides(w http.ResponseWriter, r *http.Request) {
	handleList(h, w, r, func(r *http.Request) ([]domain.HeroSlide, error) {
		return h.store.ListHeroSlides(r.Context())
	})
}

func (h *Handlers) HandleGetHeroSlide(w http.ResponseWriter, r *http.Request) {
	handleGet(h, w, r, func(r *http.Request, id int64) (*domain.HeroSlide, error) {
		return h.store.GetHeroSlide(r.Context(), id)
	})
}

func (h *Handlers) HandleUpdateHeroSlide(w http.ResponseWriter, r *http.Request) {
	handleUpdate(h, w, r, func(r *http.Request, id int64, in domain.HeroSlideInsert) (*domain.HeroSlide, error) {
		return h.store.UpdateHeroSlide(r.Context(), id, in)
	})
}

func (h *Handlers) HandleDeleteHeroSlide(w http.ResponseWriter, r *http.Request) {
	handleDelete(h, w, r, func(r *http.Request, id int64) error {
		return h.store.DeleteHeroSlide(r.Context(), id)
	})
}

// Product cards.

func (h *Handlers) HandleCreateProductCard(w http.ResponseWriter, r *http.Request) {
	handleCreate(h, w, r, func(r *http.Request, in domain.ProductCardInsert) (*domain.ProductCard, error) {
		return h.store.CreateProductCard(r.Context(), in)
	})
}

func (h *Handlers) HandleListProductCards(w http.ResponseWriter, r *http.Request) {
	handleList(h, w, r, func(r *http.Request) ([]domain.ProductCard, error) {
		return h.store.ListProductCards(r.Context())
	})
}

func (h *Handlers) HandleGetProductCard(w http.ResponseWriter, r *http.Request) {
	handleGet(h, w, r, func(r *http.Request, id int64) (*domain.ProductCard, error) {
		return h.store.GetProductCard(r.Context(), id)
	})
}

func (h *Handlers) HandleUpdateProductCard(w http.ResponseWriter, r *http.Request) {
	handleUpdate(h, w, r, func(r *http.Request, id int64, in domain.ProductCardInsert) (*domain.ProductCard, error) {
		return h.store.UpdateProductCard(r.Context(), id, in)
	})
}

func (h *Handlers) HandleDeleteProductCard(w http.ResponseWriter, r *http.Request) {
	handleDelete(h, w, r, func(r *http.Request, id int64) error {
		return h.store.DeleteProductCard(r.Context(), id)
	})
}

// FAQ items.

func (h *Handlers) HandleCreateFaqItem(w http.ResponseWriter, r *http.Request) {
	handleCreate(h, w, r, func(r *http.Request, in domain.FaqItemInsert) (*domain.FaqItem, error) {
		return h.store.CreateFaqItem(r.Context(), in)
	})
}

func (h *Handlers) HandleListFaqItems(w http.ResponseWriter, r *http.Request) {
	handleList(h, w, r, func(r *http.Request) ([]domain.FaqItem, error) {
		return h.store.ListFaqItems(r.Context())
	})
}

func (h *Handlers) HandleGetFaqItem(w http.ResponseWriter, r *http.Request) {
	handleGet(h, w, r, func(r *http.Request, id int64) (*domain.FaqItem, error) {
		return h.store.GetFaqItem(r.Context(), id)
	})
}

func (h *Handlers) HandleUpdateFaqItem(w http.ResponseWriter, r *http.Request) {
	handleUpdate(h, w, r, func(r *http.Request, id int64, in domain.FaqItemInsert) (*domain.FaqItem, error) {
		return h.store.UpdateFaqItem(r.Context(), id, in)
	})
}

func (h *Handlers) HandleDeleteFaqItem(w http.ResponseWriter, r *http.Request) {
	handleDelete(h, w, r, func(r *http.Request, id int64) error {
		return h.store.DeleteFaqItem(r.Context(), id)
	})
}

// Contact info blocks.

func (h *Handlers) HandleCreateContactInfo(w http.ResponseWriter, r *http.Request) {
	handleCreate(h, w, r, func(r *http.Request, in domain.ContactInfoInsert) (*domain.ContactInfo, error) {
		return h.store.CreateContactInfo(r.Context(), in)
	})
}

func (h *Handlers) HandleListContactInfo(w http.ResponseWriter, r *http.Request) {
	handleList(h, w, r, func(r *http.Request) ([]domain.ContactInfo, error) {
		return h.store.ListContactInfo(r.Context())
	})
}

func (h *Handlers) HandleGetContactInfo(w http.ResponseWriter, r *http.Request) {
	handleGet(h, w, r, func(r *http.Request, id int64) (*domain.ContactInfo, error) {
		return h.store.GetContactInfo(r.Context(), id)
	})
}

func (h *Handlers) HandleUpdateContactInfo(w http.ResponseWriter, r *http.Request) {
	handleUpdate(h, w, r, func(r *http.Request, id int64, in domain.ContactInfoInsert) (*domain.ContactInfo, error) {
		return h.store.UpdateContactInfo(r.Context(), id, in)
	})
}

func (h *Handlers) HandleDeleteContactInfo(w http.ResponseWriter, r *http.Request) {
	handleDelete(h, w, r, func(r *http.Request, id int64) error {
		return h.store.DeleteContactInfo(r.Context(), id)
	})
}

// Products.

func (h *Handlers) HandleCreateProduct(w http.ResponseWriter, r *http.Request) {
	handleCreate(h, w, r, func(r *http.Request, in domain.ProductInsert) (*domain.Product, error) {
		return h.store.CreateProduct(r.Context(), in)
	})
}

func (h *Handlers) HandleListProducts(w http.ResponseWriter, r *http.Request) {
	handleList(h, w, r, func(r *http.Request) ([]domain.Product, error) {
		return h.store.ListProducts(r.Context())
	})
}

func (h *Handlers) HandleGetProduct(w http.ResponseWriter, r *http.Request) {
	handleGet(h, w, r, func(r *http.Request, id int64) (*domain.Product, error) {
		return h.store.GetProduct(r.Context(), id)
	})
}

func (h *Handlers) HandleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	handleUpdate(h, w, r, func(r *http.Request, id int64, in domain.ProductInsert) (*domain.Product, error) {
		return h.store.UpdateProduct(r.Context(), id, in)
	})
}

func (h *Handlers) HandleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	handleDelete(h, w, r, func(r *http.Request, id int64) error {
		return h.store.DeleteProduct(r.Context(), id)
	})
}

// About sections.

func (h *Handlers) HandleCreateAboutSection(w http.ResponseWriter, r *http.Request) {
	handleCreate(h, w, r, func(r *http.Request, in domain.AboutSectionInsert) (*domain.AboutSection, error) {
		return h.store.CreateAboutSection(r.Context(), in)
	})
}

func (h *Handlers) HandleListAboutSections(w http.ResponseWriter, r *http.Request) {
	handleList(h, w, r, func(r *http.Request) ([]domain.AboutSection, error) {
		return h.store.ListAboutSections(r.Context())
	})
}

func (h *Handlers) HandleGetAboutSection(w http.ResponseWriter, r *http.Request) {
	handleGet(h, w, r, func(r *http.Request, id int64) (*domain.AboutSection, error) {
		return h.store.GetAboutSection(r.Context(), id)
	})
}

func (h *Handlers) HandleUpdateAboutSection(w http.ResponseWriter, r *http.Request) {
	handleUpdate(h, w, r, func(r *http.Request, id int64, in domain.AboutSectionInsert) (*domain.AboutSection, error) {
		return h.store.UpdateAboutSection(r.Context(), id, in)
	})
}

func (h *Handlers) HandleDeleteAboutSection(w http.ResponseWriter, r *http.Request) {
	handleDelete(h, w, r, func(r *http.Request, id int64) error {
		return h.store.DeleteAboutSection(r.Context(), id)
	})
}
