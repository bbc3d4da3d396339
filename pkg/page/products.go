package page

import (
	"github.com/a-h/templ"

	"github.com/dmitrymomot/showcase/pkg/catalog"
)

// Card class names read back by Extract.
const (
	ClassCard        = "product-card"
	ClassTitle       = "product-title"
	ClassDescription = "product-description"
	ClassPrice       = "product-price"
	ClassStatus      = "product-status"
)

// CardID returns the DOM id of the card for p.
func CardID(p catalog.Product) string {
	return "product-" + p.Slug()
}

// ProductCard renders one product. Sold cards carry the "sold" modifier class.
func ProductCard(p catalog.Product) templ.Component {
	return component(func(h *htmlWriter) {
		class := ClassCard
		statusClass := "status-available"
		if !p.Available {
			class += " sold"
			statusClass = "status-sold"
		}

		h.raw(`<article class="`, class, `" id="`, esc(CardID(p)), `">`)
		h.raw(`<h3 class="`, ClassTitle, `">`)
		h.text(p.Name)
		h.raw(`</h3><p class="`, ClassDescription, `">`)
		h.text(p.Description)
		h.raw(`</p><div class="product-meta"><span class="`, ClassPrice, `">`)
		h.text(p.DisplayPrice())
		h.raw(`</span><span class="`, ClassStatus, ` `, statusClass, `">`)
		h.text(p.Status())
		h.raw(`</span></div></article>`)
	})
}

// ProductGrid renders every product in catalog order.
func ProductGrid(c catalog.Catalog) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<section class="product-grid" id="products">`)
		for _, p := range c {
			h.component(ProductCard(p))
		}
		h.raw(`</section>`)
	})
}
