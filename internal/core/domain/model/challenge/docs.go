// Package challenge implements the arithmetic question asked before an order
// is sent, a cheap filter against automated submissions.
//
// Key business rules:
//   - Both operands are drawn from 1 to 10
//   - The answer is compared as a whole number after trimming spaces
//   - A wrong answer burns the question; the next one is always a different pair
package challenge
