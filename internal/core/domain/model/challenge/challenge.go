package challenge

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"pickup/internal/pkg/errs"
)

const (
	// MinOperand and MaxOperand bound both operands, inclusive.
	MinOperand = 1
	MaxOperand = 10

	// MismatchMessage is shown after a wrong answer.
	MismatchMessage = "Codul de verificare este incorect."
)

var ErrAnswerMismatch = errs.NewValueIsInvalidErrorWithCause("answer", errors.New(MismatchMessage))

// Source supplies random integers in [0, n). *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// Challenge is an "a + b" question. The zero value is not a valid challenge.
type Challenge struct {
	a int
	b int
}

// New draws a fresh question.
func New(rnd Source) Challenge {
	return Challenge{a: draw(rnd), b: draw(rnd)}
}

// Restore rebuilds a known question, mostly for tests and fixed setups.
func Restore(a, b int) (Challenge, error) {
	for name, v := range map[string]int{"a": a, "b": b} {
		if v < MinOperand || v > MaxOperand {
			return Challenge{}, errs.NewValueIsOutOfRangeError(name, v, MinOperand, MaxOperand)
		}
	}
	return Challenge{a: a, b: b}, nil
}

// Regenerate draws a question whose operand pair differs from prev.
func Regenerate(prev Challenge, rnd Source) Challenge {
	for {
		next := New(rnd)
		if next != prev {
			return next
		}
	}
}

func (c Challenge) A() int {
	return c.a
}

func (c Challenge) B() int {
	return c.b
}

func (c Challenge) Sum() int {
	return c.a + c.b
}

func (c Challenge) IsZero() bool {
	return c == Challenge{}
}

// Question renders the challenge as shown to the customer, e.g. "3 + 4".
func (c Challenge) Question() string {
	return fmt.Sprintf("%d + %d", c.a, c.b)
}

// Verify reports whether input is the sum. Input that is not a whole number never matches.
func (c Challenge) Verify(input string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return false
	}
	return !c.IsZero() && n == c.Sum()
}

func draw(rnd Source) int {
	return MinOperand + rnd.IntN(MaxOperand-MinOperand+1)
}
