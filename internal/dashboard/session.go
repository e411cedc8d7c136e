package dashboard

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/quantiv/isi-web/pkg/cookie"
	"github.com/quantiv/isi-web/pkg/entitlement"
	"github.com/quantiv/isi-web/pkg/environment"
	"github.com/quantiv/isi-web/pkg/logger"
)

// PlanSession carries the caller's plan identifier between requests in a
// signed cookie. The upstream session layer may instead pass it in a header.
type PlanSession struct {
	cookies     *cookie.Manager
	cookieName  string
	header      string
	trustHeader bool
	log         *slog.Logger
}

// NewPlanSession creates a PlanSession using cfg's cookie and header names.
func NewPlanSession(cookies *cookie.Manager, cfg Config, log *slog.Logger) *PlanSession {
	cfg = cfg.withDefaults()
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &PlanSession{
		cookies:     cookies,
		cookieName:  cfg.PlanCookieName,
		header:      cfg.PlanHeader,
		trustHeader: cfg.TrustPlanHeader || environment.Normalize(cfg.AppEnv) != environment.Production,
		log:         log.With(logger.Component("plan_session")),
	}
}

// PlanID returns the raw plan identifier for r: the signed cookie if it
// verifies, else the plan header when it is trusted, else "". In production
// the header is trusted only with Config.TrustPlanHeader. Normalisation is
// left to the resolver, so anything unrecognised ends up as the free plan.
func (s *PlanSession) PlanID(r *http.Request) string {
	planID, err := s.cookies.GetSigned(r, s.cookieName)
	if err == nil {
		return planID
	}
	if !errors.Is(err, cookie.ErrCookieNotFound) {
		s.log.WarnContext(r.Context(), "rejected plan cookie", logger.Error(err))
	}
	if !s.trustHeader {
		return ""
	}
	return r.Header.Get(s.header)
}

// SetPlan stores the normalised tier for planID and returns it.
func (s *PlanSession) SetPlan(w http.ResponseWriter, planID string) entitlement.Tier {
	tier := entitlement.ParseTier(planID)
	s.cookies.SetSigned(w, s.cookieName, tier.String())
	return tier
}

// Middleware puts the plan identifier into the request context.
func (s *PlanSession) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := entitlement.WithPlanID(r.Context(), s.PlanID(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
