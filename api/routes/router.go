package routes

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/api/controllers"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/api/middleware"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/internal/aiimage"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/internal/auth"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/internal/banners"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/internal/cart"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/internal/catalog"
	checkoutsvc "github.com/fadhlyaj09/Golf-Customizer-3D-sub000/internal/checkout"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/internal/composite"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/internal/customizer"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/internal/orders"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/auth/session"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/config"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/logger"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/metrics"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/redis"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/storage/gcs"
)

type sessionManager interface {
	session.AccessSessionChecker
	Rotate(context.Context, string, string) (string, string, error)
	Revoke(context.Context, string) error
}

// Deps collects everything the HTTP surface needs. Optional collaborators
// (object storage, preview enhancement) may be nil; their endpoints degrade
// to a dependency error.
type Deps struct {
	Config         *config.Config
	Logger         *logger.Logger
	Redis          *redis.Client
	SessionManager sessionManager
	HTTPMetrics    *metrics.HTTPMetrics
	Registry       *prometheus.Registry

	AuthService      auth.Service
	CatalogService   catalog.Service
	BannerService    banners.Service
	CustomizerSvc    customizer.Service
	CompositeBuilder *composite.Builder
	AIClient         *aiimage.Client
	CartService      cart.Service
	CheckoutService  checkoutsvc.Service
	OrdersService    orders.Service
	LeadSheet        controllers.LeadSheet
	GCSClient        *gcs.Client
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.HTTPMetrics),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.LoginLimit.Window,
		cfg.LoginLimit.IPLimit,
		cfg.LoginLimit.EmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg))
	})

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, deps.Redis, logg)).Post("/login", controllers.Login(deps.AuthService, logg))
		r.With(middleware.AuthRateLimit(loginPolicy, deps.Redis, logg)).Post("/register", controllers.Register(deps.AuthService, logg))
		r.Post("/refresh", controllers.Refresh(deps.AuthService, logg))
		r.With(middleware.Auth(cfg.JWT, deps.SessionManager, logg)).Post("/logout", controllers.Logout(deps.AuthService, logg))
	})

	// Storefront surface. Everything here keys off the anonymous browser
	// session; no account is required until checkout.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.StorefrontSession(logg))

		r.Get("/products", controllers.ListProducts(deps.CatalogService, logg))
		r.Get("/products/{slug}", controllers.GetProduct(deps.CatalogService, logg))
		r.Get("/banners", controllers.ListBanners(deps.BannerService, logg))
		r.Post("/leads", controllers.SubmitLead(deps.LeadSheet, logg))

		r.Route("/customizer/{slug}", func(r chi.Router) {
			r.Get("/", controllers.GetCustomizerSession(deps.CustomizerSvc, logg))
			r.Delete("/", controllers.ResetCustomizer(deps.CustomizerSvc, logg))
			r.Post("/decals", controllers.AddDecal(deps.CustomizerSvc, logg))
			r.Patch("/decals", controllers.UpdateDecal(deps.CustomizerSvc, logg))
			r.Delete("/decals", controllers.RemoveDecal(deps.CustomizerSvc, logg))
			r.Post("/active-decal", controllers.SetActiveDecal(deps.CustomizerSvc, logg))
			r.Post("/color", controllers.SelectColor(deps.CustomizerSvc, logg))
			r.Post("/logo", controllers.UploadLogo(deps.CustomizerSvc, cfg.Customizer.MaxLogoBytes, logg))
			r.Get("/quote", controllers.QuoteCustomization(deps.CustomizerSvc, logg))
			r.Post("/preview", controllers.BuildPreview(deps.CustomizerSvc, deps.CompositeBuilder, logg))
			r.Post("/preview/enhance", controllers.EnhancePreview(deps.CustomizerSvc, deps.CompositeBuilder, deps.AIClient, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.GetCart(deps.CartService, logg))
			r.Delete("/", controllers.ClearCart(deps.CartService, logg))
			r.Post("/items", controllers.AddCartItem(deps.CartService, logg))
			r.Patch("/items", controllers.UpdateCartItem(deps.CartService, logg))
			r.Delete("/items", controllers.RemoveCartItem(deps.CartService, logg))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, deps.SessionManager, logg))
			r.Use(middleware.Idempotency(deps.Redis, logg))

			r.Post("/checkout", controllers.Checkout(deps.CheckoutService, logg))
			r.Route("/orders", func(r chi.Router) {
				r.Get("/", controllers.ListMyOrders(deps.OrdersService, logg))
				r.Get("/{id}", controllers.GetMyOrder(deps.OrdersService, logg))
			})
		})
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, deps.SessionManager, logg))
		r.Use(middleware.RequireRole("admin", logg))
		r.Use(middleware.Idempotency(deps.Redis, logg))

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.AdminListProducts(deps.CatalogService, logg))
			r.Post("/", controllers.AdminCreateProduct(deps.CatalogService, logg))
			r.Patch("/{id}", controllers.AdminUpdateProduct(deps.CatalogService, logg))
			r.Delete("/{id}", controllers.AdminDeleteProduct(deps.CatalogService, logg))
		})
		r.Route("/banners", func(r chi.Router) {
			r.Get("/", controllers.AdminListBanners(deps.BannerService, logg))
			r.Post("/", controllers.AdminCreateBanner(deps.BannerService, logg))
			r.Patch("/{id}", controllers.AdminUpdateBanner(deps.BannerService, logg))
			r.Delete("/{id}", controllers.AdminDeleteBanner(deps.BannerService, logg))
		})
		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.AdminListOrders(deps.OrdersService, logg))
			r.Get("/{id}", controllers.AdminGetOrder(deps.OrdersService, logg))
			r.Patch("/{id}/status", controllers.AdminUpdateOrderStatus(deps.OrdersService, logg))
		})
		r.Post("/uploads", controllers.AdminUploadImage(deps.GCSClient, logg))
	})

	return r
}
