package showcase

import (
	"github.com/a-h/templ"

	"github.com/dmitrymomot/showcase/pkg/catalog"
	"github.com/dmitrymomot/showcase/pkg/page"
)

// HomePageParams contains data for rendering the showcase page.
type HomePageParams struct {
	Title    string
	Catalog  catalog.Catalog
	Dropdown catalog.Dropdown
}

// ConfirmationParams contains data for rendering the inquiry confirmation.
type ConfirmationParams struct {
	Title   string
	Message string
	URI     string
}

// Views renders the module pages. Any nil field falls back to DefaultViews.
type Views struct {
	HomePage         func(HomePageParams) templ.Component
	Confirmation     func(ConfirmationParams) templ.Component // patched into #contact-status
	ConfirmationPage func(ConfirmationParams) templ.Component
}

// DefaultViews renders with pkg/page.
func DefaultViews() *Views {
	return &Views{
		HomePage: func(p HomePageParams) templ.Component {
			return page.Home(page.HomeParams{Title: p.Title, Catalog: p.Catalog, Dropdown: p.Dropdown})
		},
		Confirmation: func(p ConfirmationParams) templ.Component {
			return page.Confirmation(p.Message, p.URI)
		},
		ConfirmationPage: func(p ConfirmationParams) templ.Component {
			return page.ConfirmationPage(p.Title, p.Message, p.URI)
		},
	}
}

func (v *Views) withDefaults() *Views {
	d := DefaultViews()
	if v == nil {
		return d
	}
	out := *v
	if out.HomePage == nil {
		out.HomePage = d.HomePage
	}
	if out.Confirmation == nil {
		out.Confirmation = d.Confirmation
	}
	if out.ConfirmationPage == nil {
		out.ConfirmationPage = d.ConfirmationPage
	}
	return &out
}
