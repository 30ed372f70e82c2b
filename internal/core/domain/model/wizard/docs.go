// Package wizard contains the order intake aggregate: the sequence of screens a
// customer walks through and everything collected along the way.
//
// The package includes:
//   - Screen: the current step and the transitions allowed between steps
//   - OrderInfo: contact, address, date and notes gathered screen by screen
//   - Wizard: the aggregate root that guards every transition
//   - Order: the immutable snapshot produced when the customer finishes
//
// Key business rules:
//   - Leaving the calculator never validates the carpets
//   - Leaving the location screen requires a complete address
//   - Leaving the scheduling screen requires a bookable date
//   - Finishing requires the arithmetic challenge to be answered
//   - Going back never loses data; only a restart from the success screen does
package wizard
