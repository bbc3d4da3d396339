// Package page renders the showcase HTML and reads it back.
//
// Components are templ components built with templ.ComponentFunc. They follow
// a fixed DOM contract: the form #contactForm with fields #name, #email,
// #product (a select) and #message, a #contact-status region for the
// confirmation, and one .product-card per product containing .product-title,
// .product-description, .product-price and .product-status.
//
//	page.Home(page.HomeParams{
//		Title:    "Gallery",
//		Catalog:  products,
//		Dropdown: catalog.DeriveDropdown(products),
//	}).Render(ctx, w)
//
// Extract parses any page following the same contract with goquery, which lets
// the consistency check run against static, hand-maintained HTML:
//
//	products, dropdown, err := page.Extract(f)
//	if err == nil {
//		err = catalog.ValidateConsistency(products, dropdown)
//	}
package page
