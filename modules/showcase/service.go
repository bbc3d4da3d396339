package showcase

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/showcase/handler"
	"github.com/dmitrymomot/showcase/pkg/binder"
	"github.com/dmitrymomot/showcase/pkg/catalog"
	"github.com/dmitrymomot/showcase/pkg/mailclient"
	"github.com/dmitrymomot/showcase/pkg/mailto"
	"github.com/dmitrymomot/showcase/pkg/page"
)

// Service serves the showcase page and turns contact form posts into mailto
// URIs for the visitor's mail client.
type Service struct {
	cfg          Config
	catalog      catalog.Catalog
	dropdown     catalog.Dropdown
	encoder      *mailto.Encoder
	views        *Views
	errorHandler handler.ErrorHandler[handler.Context]
}

// NewService creates the showcase service. The dropdown is derived from
// products, and submissions are restricted to its values.
func NewService(
	cfg Config,
	products catalog.Catalog,
	encoder *mailto.Encoder,
	views *Views,
	errorHandler handler.ErrorHandler[handler.Context],
) *Service {
	dropdown := catalog.DeriveDropdown(products)
	return &Service{
		cfg:          cfg,
		catalog:      products,
		dropdown:     dropdown,
		encoder:      encoder.With(mailto.WithValidation(mailto.AllowProducts(dropdown.Values()...))),
		views:        views.withDefaults(),
		errorHandler: errorHandler,
	}
}

// Catalog returns the products shown on the page.
func (s *Service) Catalog() catalog.Catalog {
	return s.catalog
}

// Dropdown returns the options offered by the contact form.
func (s *Service) Dropdown() catalog.Dropdown {
	return s.dropdown
}

// CheckConsistency verifies the served cards and options agree. It backs the
// readiness check.
func (s *Service) CheckConsistency(context.Context) error {
	return catalog.ValidateConsistency(s.catalog, s.dropdown)
}

func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(s.home,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))

	r.Post(page.DefaultAction, handler.Wrap(s.contact,
		handler.WithBinders[handler.Context, mailto.FormSubmission](
			binder.Form(), // plain posts and DataStar form posts
			binder.JSON(), // API clients
		),
		handler.WithErrorHandler[handler.Context, mailto.FormSubmission](s.errorHandler),
	))

	r.Get("/catalog.json", handler.Wrap(s.catalogJSON,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))

	return r
}

func (s *Service) home(ctx handler.Context, _ struct{}) handler.Response {
	return handler.Templ(s.views.HomePage(HomePageParams{
		Title:    s.cfg.Title,
		Catalog:  s.catalog,
		Dropdown: s.dropdown,
	}))
}

func (s *Service) contact(ctx handler.Context, sub mailto.FormSubmission) handler.Response {
	// The mail client runs on the visitor's machine: the URI is captured here
	// and handed to the browser in the response.
	var uri, confirmation string
	enc := s.encoder.With(
		mailto.WithOpener(mailclient.OpenerFunc(func(_ context.Context, u string) error {
			uri = u
			return nil
		})),
		mailto.WithNotifier(mailclient.NotifierFunc(func(_ context.Context, msg string) error {
			confirmation = msg
			return nil
		})),
	)

	if err := enc.Submit(ctx, sub); err != nil {
		return handler.Error(err)
	}

	params := ConfirmationParams{
		Title:   s.cfg.Title,
		Message: confirmation,
		URI:     uri,
	}

	if handler.IsDataStar(ctx.Request()) {
		return handler.TemplRedirect(s.views.Confirmation(params), uri,
			handler.WithTarget("#"+page.IDStatus),
			handler.WithPatchMode(handler.PatchInner),
		)
	}
	return handler.Templ(s.views.ConfirmationPage(params))
}

// CatalogResponse is the body of GET /catalog.json.
type CatalogResponse struct {
	Products catalog.Catalog  `json:"products"`
	Dropdown catalog.Dropdown `json:"dropdown"`
}

func (s *Service) catalogJSON(ctx handler.Context, _ struct{}) handler.Response {
	return handler.JSON(CatalogResponse{
		Products: s.catalog,
		Dropdown: s.dropdown,
	}, handler.WithJSONMeta(map[string]any{
		"available": len(s.catalog.Available()),
		"total":     len(s.catalog),
	}))
}
