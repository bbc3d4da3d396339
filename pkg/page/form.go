package page

import (
	"strconv"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/showcase/pkg/catalog"
	"github.com/dmitrymomot/showcase/pkg/mailto"
	"github.com/dmitrymomot/showcase/pkg/qrcode"
)

// DOM ids of the contact form.
const (
	IDForm    = "contactForm"
	IDName    = "name"
	IDEmail   = "email"
	IDProduct = "product"
	IDMessage = "message"
	IDStatus  = "contact-status"
)

// DefaultAction is where the contact form posts.
const DefaultAction = "/contact"

// QRSize is the rendered width and height of the confirmation QR code.
const QRSize = 192

// ContactForm renders the inquiry form with the given dropdown. With the
// DataStar bundle loaded the submit is sent as an SSE request and the answer
// is patched into #contact-status; otherwise it is a plain POST.
func ContactForm(d catalog.Dropdown, action string) templ.Component {
	if action == "" {
		action = DefaultAction
	}
	return component(func(h *htmlWriter) {
		h.raw(`<section class="contact"><h2>Inquire about a painting</h2>`)
		h.raw(`<form id="`, IDForm, `" method="post" action="`, esc(action), `"`,
			` data-on-submit="@post('`, esc(action), `', {contentType: 'form'})">`)

		h.raw(`<label for="`, IDName, `">Name</label>`)
		h.raw(`<input type="text" id="`, IDName, `" name="name" maxlength="`, strconv.Itoa(mailto.MaxNameLength), `" required>`)

		h.raw(`<label for="`, IDEmail, `">Email</label>`)
		h.raw(`<input type="email" id="`, IDEmail, `" name="email" maxlength="`, strconv.Itoa(mailto.MaxEmailLength), `" required>`)

		h.raw(`<label for="`, IDProduct, `">Painting</label>`)
		h.raw(`<select id="`, IDProduct, `" name="product" required>`)
		for _, o := range d {
			h.raw(`<option value="`, esc(o.Value), `"`)
			if o.Disabled {
				h.raw(` disabled`)
			}
			if o.IsPlaceholder() {
				h.raw(` selected`)
			}
			h.raw(`>`)
			h.text(o.Label)
			h.raw(`</option>`)
		}
		h.raw(`</select>`)

		h.raw(`<label for="`, IDMessage, `">Message</label>`)
		h.raw(`<textarea id="`, IDMessage, `" name="message" rows="5" maxlength="`, strconv.Itoa(mailto.MaxMessageLength), `"></textarea>`)

		h.raw(`<button type="submit">Send Inquiry</button></form>`)
		h.raw(`<div id="`, IDStatus, `" role="status"></div></section>`)
	})
}

// Confirmation tells the user the inquiry is ready and links to the composed
// mailto URI in case the mail client did not open by itself. A QR code of the
// URI lets the inquiry be sent from a phone; it is left out when the URI is
// too long to encode.
func Confirmation(message, uri string) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<div class="confirmation"><p>`)
		h.text(message)
		h.raw(`</p><a class="mailto-link" href="`, esc(uri), `">Open in your email client</a>`)
		if src, err := qrcode.DataURI(uri, QRSize); err == nil {
			size := strconv.Itoa(QRSize)
			h.raw(`<figure class="mailto-qr"><img src="`, esc(src), `" width="`, size, `" height="`, size,
				`" alt="QR code of the inquiry"><figcaption>Scan to write from your phone</figcaption></figure>`)
		}
		h.raw(`</div>`)
	})
}

// ConfirmationPage is the full page answer to a plain form post. The refresh
// meta tag hands the URI to the mail client once the page has loaded.
func ConfirmationPage(title, message, uri string) templ.Component {
	head := component(func(h *htmlWriter) {
		h.raw(`<meta http-equiv="refresh" content="0; url=`, esc(uri), `">`)
	})
	return Layout(LayoutParams{Title: title, Head: head},
		component(func(h *htmlWriter) {
			h.raw(`<div id="`, IDStatus, `" role="status">`)
			h.component(Confirmation(message, uri))
			h.raw(`</div><p><a href="/">Back to the showcase</a></p>`)
		}),
	)
}
