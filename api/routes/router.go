package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/trinitymugbe/localmart-backend/api/controllers"
	"github.com/trinitymugbe/localmart-backend/api/middleware"
	"github.com/trinitymugbe/localmart-backend/internal/cart"
	"github.com/trinitymugbe/localmart-backend/internal/catalog"
	"github.com/trinitymugbe/localmart-backend/internal/contact"
	"github.com/trinitymugbe/localmart-backend/internal/newsletter"
	"github.com/trinitymugbe/localmart-backend/internal/orders"
	"github.com/trinitymugbe/localmart-backend/pkg/config"
	"github.com/trinitymugbe/localmart-backend/pkg/db"
	"github.com/trinitymugbe/localmart-backend/pkg/logger"
	"github.com/trinitymugbe/localmart-backend/pkg/metrics"
	"github.com/trinitymugbe/localmart-backend/pkg/redis"
)

// NewRouter builds the storefront API surface.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	httpMetrics *metrics.HTTPMetrics,
	catalogService catalog.Service,
	cartService cart.Service,
	ordersService orders.Service,
	newsletterService newsletter.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
		middleware.Metrics(httpMetrics),
	)

	var cachePinger redis.Pinger
	var idemStore redis.IdempotencyStore
	if redisClient != nil {
		cachePinger = redisClient
		idemStore = redisClient
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, dbP, cachePinger, logg))
	})

	if httpMetrics != nil {
		r.Method(http.MethodGet, "/metrics", httpMetrics.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Idempotency(idemStore, logg))

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", controllers.ListCategories(catalogService, logg))
			r.Get("/{slug}", controllers.GetCategoryBySlug(catalogService, logg))
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(catalogService, logg))
			r.Get("/featured", controllers.GetFeaturedProducts(catalogService, logg))
			r.Get("/new", controllers.GetNewProducts(catalogService, logg))
			r.Get("/search", controllers.SearchProducts(catalogService, logg))
			r.Get("/category/{categoryId}", controllers.ListProductsByCategory(catalogService, logg))
			r.Get("/{slug}", controllers.GetProductBySlug(catalogService, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Post("/", controllers.AddCartItem(cartService, logg))
			r.Get("/{cartId}", controllers.GetCart(cartService, logg))
			r.Put("/{id}", controllers.UpdateCartItem(cartService, logg))
			r.Delete("/clear/{cartId}", controllers.ClearCart(cartService, logg))
			r.Delete("/{id}", controllers.RemoveCartItem(cartService, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", controllers.CreateOrder(ordersService, logg))
			r.Get("/{id}", controllers.GetOrder(ordersService, logg))
			r.Patch("/{id}/status", controllers.UpdateOrderStatus(ordersService, logg))
			r.Delete("/{id}", controllers.DeleteOrder(ordersService, logg))
		})

		r.Post("/newsletter", controllers.SubscribeNewsletter(newsletterService, logg))

		r.Route("/admin", func(r chi.Router) {
			r.Get("/orders", controllers.AdminListOrders(ordersService, logg))
			r.Get("/newsletters", controllers.AdminListNewsletters(newsletterService, logg))
		})
	})

	return r
}

// NewPortfolioRouter builds the portfolio contact-form surface.
func NewPortfolioRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	httpMetrics *metrics.HTTPMetrics,
	contactService contact.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
		middleware.Metrics(httpMetrics),
	)

	contactPolicy := middleware.ContactPolicyFromConfig(cfg.ContactRateLimit)

	var cachePinger redis.Pinger
	var idemStore redis.IdempotencyStore
	if redisClient != nil {
		cachePinger = redisClient
		idemStore = redisClient
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, dbP, cachePinger, logg))
	})

	if httpMetrics != nil {
		r.Method(http.MethodGet, "/metrics", httpMetrics.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Idempotency(idemStore, logg))

		submitContact := controllers.SubmitContact(contactService, logg)
		if redisClient != nil {
			r.With(middleware.SubmissionRateLimit(contactPolicy, redisClient, logg)).
				Post("/contact", submitContact)
		} else {
			r.Post("/contact", submitContact)
		}
		r.Get("/contacts", controllers.ListContacts(contactService, logg))
	})

	return r
}
