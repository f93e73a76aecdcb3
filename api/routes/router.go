package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shopvibe/storefront-backend/api/controllers"
	"github.com/shopvibe/storefront-backend/api/middleware"
	"github.com/shopvibe/storefront-backend/internal/accounts"
	cartsvc "github.com/shopvibe/storefront-backend/internal/cart"
	"github.com/shopvibe/storefront-backend/internal/catalog"
	checkoutsvc "github.com/shopvibe/storefront-backend/internal/checkout"
	"github.com/shopvibe/storefront-backend/internal/wishlist"
	"github.com/shopvibe/storefront-backend/pkg/config"
	"github.com/shopvibe/storefront-backend/pkg/logger"
	"github.com/shopvibe/storefront-backend/pkg/metrics"
	"github.com/shopvibe/storefront-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	redisP redis.Pinger,
	gatherer prometheus.Gatherer,
	httpMetrics *metrics.HTTPMetrics,
	catalogService catalog.Service,
	cartService cartsvc.Service,
	checkoutService checkoutsvc.Service,
	accountService accounts.Service,
	wishlistService wishlist.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, redisP))
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Session(logg))

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductList(catalogService, logg))
			r.Get("/featured", controllers.ProductsFeatured(catalogService, logg))
			r.Get("/categories", controllers.ProductCategories(catalogService, logg))
			r.Get("/{productId}", controllers.ProductDetail(catalogService, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartFetch(cartService, checkoutService, logg))
			r.Get("/summary", controllers.CartSummary(checkoutService, logg))
			r.Delete("/", controllers.CartClear(cartService, logg))
			r.Post("/items", controllers.CartAddItem(cartService, catalogService, checkoutService, logg))
			r.Patch("/items/{productId}", controllers.CartUpdateItem(cartService, checkoutService, logg))
			r.Delete("/items/{productId}", controllers.CartRemoveItem(cartService, checkoutService, logg))
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Post("/", controllers.CheckoutPlaceOrder(checkoutService, logg))
			r.Post("/quote", controllers.CheckoutQuote(checkoutService, logg))
		})

		r.Route("/wishlist", func(r chi.Router) {
			r.Get("/", controllers.WishlistList(wishlistService, logg))
			r.Post("/", controllers.WishlistAddItem(wishlistService, logg))
			r.Delete("/{productId}", controllers.WishlistRemoveItem(wishlistService, logg))
		})

		r.Route("/account", func(r chi.Router) {
			r.Post("/register", controllers.AccountRegister(accountService, logg))
			r.Post("/login", controllers.AccountLogin(accountService, logg))
			r.Get("/orders", controllers.AccountOrders(accountService, logg))
		})
	})

	return r
}
