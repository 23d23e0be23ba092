package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/customcabinetco/storefront-backend/api/controllers"
	"github.com/customcabinetco/storefront-backend/api/middleware"
	cartsvc "github.com/customcabinetco/storefront-backend/internal/cart"
	"github.com/customcabinetco/storefront-backend/internal/catalog"
	checkoutsvc "github.com/customcabinetco/storefront-backend/internal/checkout"
	ordersrepo "github.com/customcabinetco/storefront-backend/internal/orders"
	"github.com/customcabinetco/storefront-backend/pkg/config"
	"github.com/customcabinetco/storefront-backend/pkg/kv"
	"github.com/customcabinetco/storefront-backend/pkg/logger"
)

// NewRouter wires every HTTP surface of the storefront API.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	store kv.Store,
	registry *prometheus.Registry,
	catalogService catalog.Service,
	cartService cartsvc.Service,
	checkoutService checkoutsvc.Service,
	ordersRepo ordersrepo.Repository,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	r.Get("/healthz", controllers.HealthLive(cfg))
	r.Get("/readyz", controllers.HealthReady(cfg, store))

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductsList(catalogService, logg))
			r.Get("/{id}", controllers.ProductDetail(catalogService, logg))
		})

		r.Post("/pricing/quote", controllers.PricingQuote(catalogService, logg))

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartFetch(cartService, logg))
			r.Delete("/", controllers.CartClear(cartService, logg))
			r.Post("/items", controllers.CartItemAdd(cartService, catalogService, logg))
			r.Patch("/items/{index}", controllers.CartQuantityUpdate(cartService, logg))
			r.Delete("/items/{index}", controllers.CartItemRemove(cartService, logg))
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Post("/", controllers.CheckoutAttempt(checkoutService, logg))
			r.Get("/summary", controllers.CheckoutSummary(checkoutService, logg))
		})

		r.Get("/orders/{id}", controllers.OrderDetail(ordersRepo, logg))
	})

	return r
}
