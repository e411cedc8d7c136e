package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/quantiv/isi-web/handler"
	"github.com/quantiv/isi-web/pkg/entitlement"
	"github.com/quantiv/isi-web/pkg/environment"
	"github.com/quantiv/isi-web/pkg/httpserver"
	"github.com/quantiv/isi-web/pkg/logger"
	"github.com/quantiv/isi-web/pkg/requestid"
)

// Dashboard serves the plan-gated dashboard shell.
type Dashboard struct {
	cfg     Config
	env     environment.Environment
	session *PlanSession
	log     *slog.Logger
	errs    handler.ErrorHandler
}

// New creates a Dashboard. A nil logger discards output.
func New(cfg Config, session *PlanSession, log *slog.Logger) *Dashboard {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	log = log.With(logger.Component("dashboard"))
	cfg = cfg.withDefaults()
	return &Dashboard{
		cfg:     cfg,
		env:     environment.Normalize(cfg.AppEnv),
		session: session,
		log:     log,
		errs:    handler.NewErrorHandler(log),
	}
}

// Router builds the HTTP handler with all routes and middleware.
func (d *Dashboard) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestid.Middleware)
	r.Use(environment.Middleware(d.env))
	r.Use(d.session.Middleware)
	r.Use(d.requestLogger)

	r.Get("/health/live", httpserver.HealthCheckHandler(d.log))
	r.Get("/health/ready", httpserver.HealthCheckHandler(d.log, catalogReady))

	r.Get("/", d.wrap(d.index))
	r.Get("/features/{feature}", d.wrap(d.feature))
	r.Get("/upgrade", d.wrap(d.upgrade))
	r.Post("/plan", d.wrap(d.switchPlan))

	r.Route("/api", func(r chi.Router) {
		r.Get("/entitlements", d.wrap(d.currentEntitlements))
		r.Get("/entitlements/{plan}", d.wrap(d.planEntitlements))
	})

	r.NotFound(d.wrap(d.notFound))
	r.MethodNotAllowed(d.wrap(func(*http.Request) handler.Response {
		return handler.Error(handler.ErrMethodNotAllowed)
	}))

	return r
}

func (d *Dashboard) wrap(fn handler.Func) http.HandlerFunc {
	return handler.Wrap(fn, handler.WithErrorHandler(d.errs))
}

func (d *Dashboard) pageData(r *http.Request) pageData {
	planID, _ := entitlement.PlanIDFromContext(r.Context())
	return pageData{
		appName:    d.cfg.AppName,
		planID:     planID,
		caps:       entitlement.Resolve(planID),
		upgradeURL: d.cfg.UpgradeURL,
		preview:    !environment.IsProduction(r.Context()),
		usage: usage{
			countries: queryInt(r, "countries"),
			seats:     queryInt(r, "seats"),
		},
	}
}

// queryInt returns the non-negative integer in query parameter key, or 0.
func queryInt(r *http.Request, key string) int64 {
	n, err := strconv.ParseInt(r.URL.Query().Get(key), 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func (d *Dashboard) index(r *http.Request) handler.Response {
	return handler.Templ(dashboardPage(d.pageData(r)))
}

func (d *Dashboard) feature(r *http.Request) handler.Response {
	f, err := entitlement.ParseFeature(chi.URLParam(r, "feature"))
	if err != nil {
		return handler.Error(handler.ErrNotFound)
	}
	a, ok := findArea(f)
	if !ok {
		return handler.Error(handler.ErrNotFound)
	}
	data := d.pageData(r)
	if !data.caps.HasFeature(f) {
		d.log.DebugContext(r.Context(), "feature locked", logger.Feature(f))
	}
	return handler.Templ(featurePage(data, a))
}

func (d *Dashboard) upgrade(r *http.Request) handler.Response {
	return handler.Templ(upgradePage(d.pageData(r)))
}

func (d *Dashboard) notFound(r *http.Request) handler.Response {
	if handler.IsDataStar(r) || isAPI(r) {
		return handler.Error(handler.ErrNotFound)
	}
	return handler.TemplStatus(http.StatusNotFound, notFoundPage(d.pageData(r)))
}

type entitlementsMeta struct {
	EnabledFeatures []entitlement.Feature `json:"enabledFeatures"`
}

func entitlements(c entitlement.Capabilities) handler.Response {
	return handler.JSON(c, handler.WithJSONMeta(entitlementsMeta{EnabledFeatures: c.EnabledFeatures()}))
}

func (d *Dashboard) currentEntitlements(r *http.Request) handler.Response {
	return entitlements(entitlement.ResolveContext(r.Context()))
}

func (d *Dashboard) planEntitlements(r *http.Request) handler.Response {
	return entitlements(entitlement.Resolve(chi.URLParam(r, "plan")))
}

type planSignals struct {
	Plan string `json:"plan"`
}

// switchPlan stores a preview plan in the session. Datastar clients get the
// header, sidebar and feature grid re-rendered in place; others are redirected home.
func (d *Dashboard) switchPlan(r *http.Request) handler.Response {
	if environment.IsProduction(r.Context()) {
		return handler.Error(handler.ErrNotFound)
	}

	var planID string
	if handler.IsDataStar(r) {
		var signals planSignals
		if err := handler.ReadSignals(r, &signals); err != nil {
			return handler.Error(handler.ErrBadRequest)
		}
		planID = signals.Plan
	} else {
		planID = r.FormValue("plan")
	}

	return planSwitched{dashboard: d, planID: planID}
}

// planSwitched writes the session cookie before any body is sent.
type planSwitched struct {
	dashboard *Dashboard
	planID    string
}

func (p planSwitched) Render(w http.ResponseWriter, r *http.Request) error {
	d := p.dashboard
	tier := d.session.SetPlan(w, p.planID)
	d.log.InfoContext(r.Context(), "preview plan switched", logger.Plan(tier.String()))

	if !handler.IsDataStar(r) {
		return handler.Redirect("/").Render(w, r)
	}

	r = r.WithContext(entitlement.WithPlanID(r.Context(), tier.String()))
	data := d.pageData(r)
	return handler.TemplMulti(nil,
		handler.Patch(header(data)),
		handler.Patch(sidebar(data)),
		handler.Patch(featureGrid(data), handler.WithTarget("#features")),
	).Render(w, r)
}

func isAPI(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, "/api/")
}

var errCatalogNotReady = errors.New("dashboard: plan catalog not loaded")

// catalogReady fails if the plan catalog is not loaded.
func catalogReady(context.Context) error {
	if entitlement.Catalog(entitlement.TierEnterprise).PlanTier != entitlement.TierEnterprise {
		return errCatalogNotReady
	}
	return nil
}
