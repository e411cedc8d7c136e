package dashboard

import "github.com/caarlos0/env/v11"

// Config holds dashboard settings loaded from the environment.
type Config struct {
	AppName        string `env:"APP_NAME" envDefault:"isi-web"`
	AppEnv         string `env:"APP_ENV" envDefault:"development"`
	UpgradeURL     string `env:"UPGRADE_URL" envDefault:"/upgrade"`
	PlanCookieName string `env:"PLAN_COOKIE_NAME" envDefault:"plan"`
	PlanHeader     string `env:"PLAN_HEADER" envDefault:"X-Plan"`

	// TrustPlanHeader accepts PlanHeader in production. Enable it only when
	// an upstream proxy sets the header and strips it from client requests.
	TrustPlanHeader bool `env:"PLAN_HEADER_TRUSTED" envDefault:"false"`
}

// defaultConfig is Config with nothing but its envDefault tags applied.
var defaultConfig = func() Config {
	var c Config
	_ = env.ParseWithOptions(&c, env.Options{Environment: map[string]string{}})
	return c
}()

// withDefaults fills empty fields of a Config built in code from the envDefault tags.
func (c Config) withDefaults() Config {
	if c.AppName == "" {
		c.AppName = defaultConfig.AppName
	}
	if c.AppEnv == "" {
		c.AppEnv = defaultConfig.AppEnv
	}
	if c.UpgradeURL == "" {
		c.UpgradeURL = defaultConfig.UpgradeURL
	}
	if c.PlanCookieName == "" {
		c.PlanCookieName = defaultConfig.PlanCookieName
	}
	if c.PlanHeader == "" {
		c.PlanHeader = defaultConfig.PlanHeader
	}
	return c
}
