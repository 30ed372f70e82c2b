// Package schedule decides which days a pickup can be booked on and renders
// the month calendar the customer picks from.
//
// Key business rules:
//   - Today and every earlier day are unavailable (no same-day pickup)
//   - Sundays are unavailable
//   - Days on the configured block list (holidays, full capacity) are unavailable
//   - Weeks start on Monday
package schedule
