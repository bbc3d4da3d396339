// Package validator provides small, composable validation rules.
//
// A Rule pairs a deferred Check with the ValidationError reported when it
// fails. Apply evaluates rules in order and aggregates failures into
// ValidationErrors, which implements error and carries translation keys for
// each field.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.Present("name", sub.Name),
//	    validator.MaxLen("name", sub.Name, 100),
//	    validator.ValidEmail("email", sub.Email),
//	    validator.InListString("product", sub.SelectedProduct, allowed),
//	    validator.PositiveDecimal("price", p.Price),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        // render verrs.Get(field) next to the input
//	    }
//	}
//
// Present and ValidEmail follow the constraint validation browsers run on
// required and email inputs, so server checks agree with the form.
//
// Rules hold no state and are safe to build concurrently.
package validator
