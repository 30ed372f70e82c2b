// Package address validates the contact and pickup address details and
// composes them into the single line sent with the order.
//
// Key business rules:
//   - Every required field is checked on each validation so all errors show at once
//   - In the capital the customer picks one of its sectors; everywhere else the
//     sector is the county code and cannot be edited
//   - Optional parts (building, entrance, floor, apartment, intercom) are only
//     printed when filled in
package address
