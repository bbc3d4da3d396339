package page

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/dmitrymomot/showcase/pkg/catalog"
)

// Extract reads the product cards and the product select back out of an HTML
// page, so hand-authored pages can be checked with catalog.ValidateConsistency.
//
// Card prices are read from the "$<digits>" token of .product-price. A card
// is sold when its .product-status reads "Sold" (case-insensitive) and
// available when it reads "Available".
func Extract(r io.Reader) (catalog.Catalog, catalog.Dropdown, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrParsePage, err)
	}

	products, err := extractCards(doc)
	if err != nil {
		return nil, nil, err
	}

	dropdown, err := extractDropdown(doc)
	if err != nil {
		return nil, nil, err
	}

	return products, dropdown, nil
}

func extractCards(doc *goquery.Document) (catalog.Catalog, error) {
	var (
		products catalog.Catalog
		cardErr  error
	)

	doc.Find("." + ClassCard).EachWithBreak(func(i int, card *goquery.Selection) bool {
		name := fieldText(card, ClassTitle)
		if name == "" {
			cardErr = fmt.Errorf("%w: card %d has no title", ErrInvalidCard, i)
			return false
		}

		priceText := fieldText(card, ClassPrice)
		price, ok := catalog.ParsePriceToken(priceText)
		if !ok {
			cardErr = fmt.Errorf("%w: %q has no price in %q", ErrInvalidCard, name, priceText)
			return false
		}

		status := fieldText(card, ClassStatus)
		var available bool
		switch {
		case strings.EqualFold(status, catalog.StatusAvailable):
			available = true
		case strings.EqualFold(status, catalog.StatusSold):
			available = false
		default:
			cardErr = fmt.Errorf("%w: %q has unknown status %q", ErrInvalidCard, name, status)
			return false
		}

		products = append(products, catalog.Product{
			Name:        name,
			Description: fieldText(card, ClassDescription),
			Price:       price,
			Available:   available,
		})
		return true
	})

	return products, cardErr
}

func extractDropdown(doc *goquery.Document) (catalog.Dropdown, error) {
	sel := doc.Find("select#" + IDProduct)
	if sel.Length() == 0 {
		return nil, ErrNoDropdown
	}

	var d catalog.Dropdown
	sel.First().Find("option").Each(func(_ int, opt *goquery.Selection) {
		label := collapse(opt.Text())
		value, ok := opt.Attr("value")
		if !ok {
			// Without a value attribute the option submits its text.
			value = label
		}
		_, disabled := opt.Attr("disabled")
		d = append(d, catalog.Option{Value: value, Label: label, Disabled: disabled})
	})
	return d, nil
}

func fieldText(card *goquery.Selection, class string) string {
	return collapse(card.Find("." + class).First().Text())
}

// collapse trims s and folds inner whitespace runs to single spaces.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
