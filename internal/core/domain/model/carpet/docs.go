// Package carpet models the carpets a customer sends for cleaning and the
// totals derived from them.
//
// The package includes:
//   - Item: one carpet with free-text length and width in centimetres
//   - Items: the ordered, never-empty list edited on the calculator screen
//   - Pricing and Totals: the pure totals engine (area, price, free shipping progress)
//
// Key business rules:
//   - Dimensions are free text; anything that is not a number counts as 0
//   - A minimum order price applies, including to an empty order
//   - Shipping is free once the price reaches the free shipping threshold
package carpet
