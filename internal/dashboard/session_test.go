package dashboard_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantiv/isi-web/internal/dashboard"
	"github.com/quantiv/isi-web/pkg/cookie"
	"github.com/quantiv/isi-web/pkg/entitlement"
)

func TestPlanSession(t *testing.T) {
	t.Parallel()

	cookies, err := cookie.New([]string{testSecret})
	require.NoError(t, err)
	session := dashboard.NewPlanSession(cookies, dashboard.Config{PlanCookieName: "isi_plan", PlanHeader: "X-Test-Plan"}, nil)

	t.Run("set plan normalises", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		assert.Equal(t, entitlement.TierGold, session.SetPlan(w, "  GOLD "))
		assert.Equal(t, entitlement.TierFree, session.SetPlan(httptest.NewRecorder(), "platinum"))

		c := w.Result().Cookies()
		require.Len(t, c, 1)
		assert.Equal(t, "isi_plan", c[0].Name)
		assert.True(t, c[0].HttpOnly)

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(c[0])
		assert.Equal(t, "gold", session.PlanID(r))
	})

	t.Run("header fallback", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("X-Test-Plan", "diamond")
		assert.Equal(t, "diamond", session.PlanID(r))
	})

	t.Run("header ignored in production", func(t *testing.T) {
		t.Parallel()
		prod := dashboard.NewPlanSession(cookies, dashboard.Config{AppEnv: "prod", PlanHeader: "X-Test-Plan"}, nil)

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("X-Test-Plan", "diamond")
		assert.Empty(t, prod.PlanID(r))

		w := httptest.NewRecorder()
		prod.SetPlan(w, "gold")
		r.AddCookie(w.Result().Cookies()[0])
		assert.Equal(t, "gold", prod.PlanID(r))
	})

	t.Run("zero config uses env defaults", func(t *testing.T) {
		t.Parallel()
		defaults := dashboard.NewPlanSession(cookies, dashboard.Config{}, nil)

		w := httptest.NewRecorder()
		defaults.SetPlan(w, "diamond")
		require.Len(t, w.Result().Cookies(), 1)
		assert.Equal(t, "plan", w.Result().Cookies()[0].Name)

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("X-Plan", "gold")
		assert.Equal(t, "gold", defaults.PlanID(r))
	})

	t.Run("nothing set", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, session.PlanID(httptest.NewRequest(http.MethodGet, "/", nil)))
	})

	t.Run("middleware stores plan in context", func(t *testing.T) {
		t.Parallel()
		var got string
		var ok bool
		h := session.Middleware(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			got, ok = entitlement.PlanIDFromContext(r.Context())
		}))

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("X-Test-Plan", "Enterprise")
		h.ServeHTTP(httptest.NewRecorder(), r)

		assert.True(t, ok)
		assert.Equal(t, "Enterprise", got)
		assert.Equal(t, entitlement.TierEnterprise, entitlement.Resolve(got).PlanTier)
	})
}
