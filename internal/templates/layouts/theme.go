package layouts

import (
	"fmt"

	"github.com/codr1/bizpulse/internal/models"
)

func getThemeCssVars(palette models.Palette) string {
	palette = palette.WithDefaults()

	return fmt.Sprintf(
		":root{--color-primary:%s;--color-primary-soft:%s;--color-surface:%s;--color-positive:%s;--color-negative:%s;--color-neutral:%s;}",
		palette.Primary,
		palette.Shade(0.85),
		palette.Surface,
		palette.Positive,
		palette.Negative,
		palette.Neutral,
	)
}

const baseCSS = `
*{box-sizing:border-box}
body{margin:0;font-family:Inter,system-ui,sans-serif;background:var(--color-surface);color:#0f172a}
a{color:inherit;text-decoration:none}
.shell{display:flex;min-height:100vh}
.sidebar{width:16rem;position:fixed;height:100%;display:flex;flex-direction:column;border-right:1px solid #e2e8f0;background:rgba(255,255,255,.6)}
.sidebar__brand{padding:1.5rem;border-bottom:1px solid #e2e8f0;font-weight:700;font-size:1.25rem;color:var(--color-primary);display:flex;align-items:center;gap:.5rem}
.sidebar__nav{flex:1;padding:1rem;display:flex;flex-direction:column;gap:.25rem}
.nav-item{display:flex;align-items:center;gap:.75rem;padding:.6rem .75rem;border-radius:.375rem;font-size:.875rem;font-weight:500;color:#64748b}
.nav-item:hover{background:#f1f5f9;color:#0f172a}
.nav-item--active{background:var(--color-primary-soft);color:var(--color-primary)}
.sidebar__user{padding:1rem;border-top:1px solid #e2e8f0;display:flex;align-items:center;gap:.75rem}
.avatar{width:2rem;height:2rem;border-radius:9999px;background:var(--color-primary);color:#fff;display:flex;align-items:center;justify-content:center;font-size:.75rem;font-weight:700}
.content{flex:1;margin-left:16rem;padding:2.5rem;max-width:80rem}
.page-header{display:flex;justify-content:space-between;align-items:center;gap:1rem;flex-wrap:wrap}
.page-header h1{font-size:1.875rem;margin:0}
.muted{color:#64748b}
.grid{display:grid;gap:1rem}
.grid--4{grid-template-columns:repeat(auto-fit,minmax(14rem,1fr))}
.grid--3{grid-template-columns:repeat(auto-fit,minmax(16rem,1fr))}
.grid--2{grid-template-columns:repeat(2,1fr)}
.grid--5{grid-template-columns:repeat(auto-fit,minmax(10rem,1fr))}
.card{background:#fff;border:1px solid #e2e8f0;border-radius:.75rem;padding:1.5rem;box-shadow:0 1px 2px rgba(0,0,0,.05)}
.kpi-card{background:#fff;border:1px solid #e2e8f0;border-radius:.75rem;padding:1rem 1.25rem}
.kpi-card__header{display:flex;justify-content:space-between;align-items:center}
.kpi-card__title{margin:0;font-size:.875rem;font-weight:500;color:#64748b}
.kpi-card__icon{width:2rem;height:2rem;border-radius:9999px;background:var(--color-primary-soft);color:var(--color-primary);display:flex;align-items:center;justify-content:center}
.kpi-card__value{font-size:1.5rem;font-weight:700;margin-top:.5rem}
.kpi-card__trend{font-size:.75rem;color:#64748b;margin:.25rem 0 0;display:flex;gap:.25rem}
.trend{font-weight:500}
.icon{width:1.25rem;height:1.25rem}
.icon--sm{width:1rem;height:1rem}
.location-card{display:block;padding:1rem;border:1px solid #e2e8f0;border-radius:.5rem;background:#fff}
.location-card:hover{border-color:var(--color-primary)}
.location-card__value{font-size:1.5rem;font-weight:700;margin:.25rem 0 0}
.badge{padding:.25rem .75rem;border-radius:9999px;background:var(--color-primary-soft);color:var(--color-primary);font-size:.875rem;font-weight:500}
.section-title{font-size:.875rem;font-weight:600;color:#64748b;text-transform:uppercase;letter-spacing:.05em}
.grade{display:flex;flex-direction:column;align-items:center;justify-content:center;text-align:center}
.chart{width:100%;height:auto;font-size:14px}
.chart__label,.chart__axis{fill:#64748b}
.chart__value{fill:#0f172a;font-weight:600}
.not-found{text-align:center;padding:5rem 0}
.not-found a{color:var(--color-primary)}
.search-results{list-style:none;margin:0;padding:0}
.mobile-bar{display:none}
.mobile-menu{position:fixed;inset:0;z-index:30;background:#fff;padding:1rem}
.mobile-menu__close,.mobile-bar__toggle{background:none;border:0;cursor:pointer;color:inherit}
@media (max-width:767px){.sidebar{display:none}.shell{flex-direction:column}.mobile-bar{display:flex;justify-content:space-between;align-items:center;padding:0 1rem;border-bottom:1px solid #e2e8f0}.content{margin-left:0;padding:1.5rem}}
`
