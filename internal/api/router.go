/**
 * @description
 * This file sets up the HTTP router for the website backend using chi.
 * Public routes carry the lead forms and content reads; everything that
 * mutates content or reads the lead inboxes requires an admin session.
 *
 * @dependencies
 * - github.com/go-chi/chi/v5: HTTP router.
 * - github.com/go-chi/cors: CORS middleware for the browser frontend.
 */

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/phictor/leadcitymfb-sub000/internal/app"
)

// NewRouter creates the chi router with all middleware and routes.
func NewRouter(h *Handlers, auth *app.AuthService, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	adminOnly := AdminAuthMiddleware(auth)

	r.Route("/api", func(r chi.Router) {
		// Lead capture: public create, admin-only inbox.
		r.Post("/account-applications", h.HandleCreateAccountApplication)
		r.With(adminOnly).Get("/account-applications", h.HandleListAccountApplications)
		r.With(adminOnly).Get("/account-applications/{id}", h.HandleGetAccountApplication)

		r.Post("/loan-applications", h.HandleCreateLoanApplication)
		r.With(adminOnly).Get("/loan-applications", h.HandleListLoanApplications)
		r.With(adminOnly).Get("/loan-applications/{id}", h.HandleGetLoanApplication)

		r.Post("/contact-messages", h.HandleCreateContactMessage)
		r.With(adminOnly).Get("/contact-messages", h.HandleListContactMessages)
		r.With(adminOnly).Get("/contact-messages/{id}", h.HandleGetContactMessage)

		r.Get("/branches", h.HandleListBranches)

		// CMS content: public reads, admin writes.
		r.Get("/news-articles", h.HandleListNewsArticles)
		r.Get("/news-articles/{id}", h.HandleGetNewsArticle)
		r.With(adminOnly).Post("/news-articles", h.HandleCreateNewsArticle)
		r.With(adminOnly).Put("/news-articles/{id}", h.HandleUpdateNewsArticle)
		r.With(adminOnly).Delete("/news-articles/{id}", h.HandleDeleteNewsArticle)

		r.Get("/page-content-sections", h.HandleListPageContentSections)
		r.Get("/page-content-sections/{id}", h.HandleGetPageContentSection)
		r.With(adminOnly).Post("/page-content-sections", h.HandleCreatePageContentSection)
		r.With(adminOnly).Put("/page-content-sections/{id}", h.HandleUpdatePageContentSection)
		r.With(adminOnly).Delete("/page-content-sections/{id}", h.HandleDeletePageContentSection)

		r.Get("/hero-slides", h.HandleListHeroSlides)
		r.Get("/hero-slides/{id}", h.HandleGetHeroSlide)
		r.With(adminOnly).Post("/hero-slides", h.HandleCreateHeroSlide)
		r.With(adminOnly).Put("/hero-slides/{id}", h.HandleUpdateHeroSlide)
		r.With(adminOnly).Delete("/hero-slides/{id}", h.HandleDeleteHeroSlide)

		r.Get("/product-cards", h.HandleListProductCards)
		r.Get("/product-cards/{id}", h.HandleGetProductCard)
		r.With(adminOnly).Post("/product-cards", h.HandleCreateProductCard)
		r.With(adminOnly).Put("/product-cards/{id}", h.HandleUpdateProductCard)
		r.With(adminOnly).Delete("/product-cards/{id}", h.HandleDeleteProductCard)

		r.Get("/faq-items", h.HandleListFaqItems)
		r.Get("/faq-items/{id}", h.HandleGetFaqItem)
		r.With(adminOnly).Post("/faq-items", h.HandleCreateFaqItem)
		r.With(adminOnly).Put("/faq-items/{id}", h.HandleUpdateFaqItem)
		r.With(adminOnly).Delete("/faq-items/{id}", h.HandleDeleteFaqItem)

		r.Get("/contact-info", h.HandleListContactInfo)
		r.Get("/contact-info/{id}", h.HandleGetContactInfo)
		r.With(adminOnly).Post("/contact-info", h.HandleCreateContactInfo)
		r.With(adminOnly).Put("/contact-info/{id}", h.HandleUpdateContactInfo)
		r.With(adminOnly).Delete("/contact-info/{id}", h.HandleDeleteContactInfo)

		r.Get("/products", h.HandleListProducts)
		r.Get("/products/{id}", h.HandleGetProduct)
		r.With(adminOnly).Post("/products", h.HandleCreateProduct)
		r.With(adminOnly).Put("/products/{id}", h.HandleUpdateProduct)
		r.With(adminOnly).Delete("/products/{id}", h.HandleDeleteProduct)

		r.Get("/about-sections", h.HandleListAboutSections)
		r.Get("/about-sections/{id}", h.HandleGetAboutSection)
		r.With(adminOnly).Post("/about-sections", h.HandleCreateAboutSection)
		r.With(adminOnly).Put("/about-sections/{id}", h.HandleUpdateAboutSection)
		r.With(adminOnly).Delete("/about-sections/{id}", h.HandleDeleteAboutSection)

		r.Post("/admin/login", h.HandleAdminLogin)
		r.Post("/admin/setup", h.HandleAdminSetup)
	})

	return r
}
