package wizard

import (
	"errors"
	"fmt"
	"maps"

	"pickup/internal/core/domain/model/address"
	"pickup/internal/core/domain/model/carpet"
	"pickup/internal/core/domain/model/challenge"
	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/schedule"
	"pickup/internal/pkg/errs"
)

var ErrWizardIsNotConstructed = errors.New("Wizard must be created via New")

// Wizard is the aggregate root of one order intake session. Every method that
// fails leaves the wizard exactly as it was, except where documented
// (a wrong challenge answer, a missing date or an invalid address record
// the messages to show).
type Wizard struct {
	screen Screen

	items    carpet.Items
	pricing  carpet.Pricing
	info     OrderInfo
	form     address.Form
	problems map[string]string
	calendar schedule.Calendar

	challenge        challenge.Challenge
	challengeMessage string
	orderNumber      string

	rnd           challenge.Source
	isConstructed bool
}

// New starts a wizard on the calculator with one empty carpet.
func New(pricing carpet.Pricing, availability schedule.Availability, rnd challenge.Source) (*Wizard, error) {
	if err := pricing.Validate(); err != nil {
		return nil, err
	}
	if rnd == nil {
		return nil, errs.NewValueIsRequiredError("random source")
	}

	w := &Wizard{
		pricing:       pricing,
		rnd:           rnd,
		calendar:      schedule.NewCalendar(availability),
		isConstructed: true,
	}
	w.reset()
	return w, nil
}

func (w *Wizard) Screen() Screen {
	return w.screen
}

// Items returns copies of the carpets.
func (w *Wizard) Items() []*carpet.Item {
	return w.items.All()
}

func (w *Wizard) Pricing() carpet.Pricing {
	return w.pricing
}

// Totals is rederived on every call.
func (w *Wizard) Totals() carpet.Totals {
	return w.items.Totals(w.pricing)
}

func (w *Wizard) Info() OrderInfo {
	return w.info
}

// Form returns a copy of the address draft.
func (w *Wizard) Form() address.Form {
	return w.form
}

// FormProblems returns the field messages of the last rejected address.
func (w *Wizard) FormProblems() map[string]string {
	return maps.Clone(w.problems)
}

// Calendar returns a copy of the date picker.
func (w *Wizard) Calendar() schedule.Calendar {
	return w.calendar
}

// Challenge returns the current question; it is zero outside the observations screen.
func (w *Wizard) Challenge() challenge.Challenge {
	return w.challenge
}

func (w *Wizard) ChallengeMessage() string {
	return w.challengeMessage
}

// OrderNumber is the number of the finished order shown on the success screen.
func (w *Wizard) OrderNumber() string {
	return w.orderNumber
}

// AddItem appends an empty carpet.
func (w *Wizard) AddItem() (*carpet.Item, error) {
	if err := w.require(Calculator); err != nil {
		return nil, err
	}
	return w.items.Add(), nil
}

// RemoveLastItem drops the last carpet; with a single carpet left it reports false.
func (w *Wizard) RemoveLastItem() (bool, error) {
	if err := w.require(Calculator); err != nil {
		return false, err
	}
	return w.items.RemoveLast(), nil
}

// UpdateItem sets one dimension of a carpet.
func (w *Wizard) UpdateItem(id kernel.UUID, dimension, value string) error {
	if err := w.require(Calculator); err != nil {
		return err
	}
	return w.items.Update(id, dimension, value)
}

// ProceedToLocation leaves the calculator. Carpets are not validated.
func (w *Wizard) ProceedToLocation() error {
	if err := w.require(Calculator); err != nil {
		return err
	}
	return w.advance()
}

// EditForm applies edit to a copy of the address draft and keeps the copy
// only if edit succeeds.
func (w *Wizard) EditForm(edit func(f *address.Form) error) error {
	if err := w.require(Location); err != nil {
		return err
	}
	draft := w.form
	if err := edit(&draft); err != nil {
		return err
	}
	w.form = draft
	return nil
}

// SubmitLocation validates the draft and, when complete, stores the contact
// details and composed address and moves on to scheduling. Otherwise the field
// messages are kept for display and an *errs.FieldsAreInvalidError is returned.
func (w *Wizard) SubmitLocation() error {
	if err := w.require(Location); err != nil {
		return err
	}

	line, err := w.form.Compose()
	if err != nil {
		var fieldsErr *errs.FieldsAreInvalidError
		if errors.As(err, &fieldsErr) {
			w.problems = maps.Clone(fieldsErr.Fields)
		}
		return err
	}

	w.problems = nil
	w.info.FullName = w.form.FullName
	w.info.Phone = w.form.Phone
	w.info.Email = w.form.Email
	w.info.Address = line
	return w.advance()
}

// ShiftMonth pages the calendar by delta months.
func (w *Wizard) ShiftMonth(delta int) error {
	if err := w.require(Scheduling); err != nil {
		return err
	}
	w.calendar.ShiftMonth(delta)
	return nil
}

// SelectDate picks the pickup day. Blocked days are refused.
func (w *Wizard) SelectDate(d kernel.Date) error {
	if err := w.require(Scheduling); err != nil {
		return err
	}
	return w.calendar.Select(d)
}

// SubmitSchedule stores the selected day and opens the observations screen
// with a fresh challenge.
func (w *Wizard) SubmitSchedule() error {
	if err := w.require(Scheduling); err != nil {
		return err
	}

	d, err := w.calendar.Confirm()
	if err != nil {
		return err
	}

	w.info.Date = d
	w.challenge = challenge.New(w.rnd)
	w.challengeMessage = ""
	return w.advance()
}

// Finalize records the notes and checks the challenge answer. On success it
// returns the order snapshot and shows the success screen; nothing is reset.
// On a wrong answer the notes are kept, the mismatch message is recorded, a
// different question replaces the current one and challenge.ErrAnswerMismatch
// is returned.
func (w *Wizard) Finalize(observations, answer string) (Order, error) {
	if err := w.require(Observations); err != nil {
		return Order{}, err
	}

	w.info.Observations = observations
	if !w.challenge.Verify(answer) {
		w.challengeMessage = challenge.MismatchMessage
		w.challenge = challenge.Regenerate(w.challenge, w.rnd)
		return Order{}, challenge.ErrAnswerMismatch
	}
	if !w.info.IsComplete() {
		return Order{}, errs.NewValueIsInvalidErrorWithCause("order info", errors.New("order info is incomplete"))
	}

	order := Order{
		Number:  newOrderNumber(w.rnd),
		Items:   w.items.All(),
		Totals:  w.Totals(),
		Pricing: w.pricing,
		Info:    w.info,
	}

	if err := w.advance(); err != nil {
		return Order{}, err
	}
	w.clearChallenge()
	w.orderNumber = order.Number
	return order, nil
}

// Back returns to the previous screen keeping everything entered.
func (w *Wizard) Back() error {
	prev, err := w.screen.Back()
	if err != nil {
		return err
	}
	if w.screen == Observations {
		w.clearChallenge()
	}
	w.screen = prev
	return nil
}

// Restart leaves the success screen for a brand new order: one empty carpet,
// an empty order info, a fresh address draft and no date selected.
func (w *Wizard) Restart() error {
	if err := w.require(Success); err != nil {
		return err
	}
	w.reset()
	return nil
}

// SetToday moves the wizard to a new calendar day. A chosen date that is no
// longer bookable is dropped; if the customer was already past the scheduling
// screen they are sent back to it.
func (w *Wizard) SetToday(today kernel.Date) {
	w.calendar.SetToday(today)
	if w.screen == Success || w.info.Date.IsZero() {
		return
	}
	if w.calendar.Availability().IsBlocked(w.info.Date) {
		w.info.Date = kernel.Date{}
		if w.screen == Observations {
			w.screen = Scheduling
			w.clearChallenge()
		}
	}
}

func (w *Wizard) require(screen Screen) error {
	if !w.isConstructed {
		return ErrWizardIsNotConstructed
	}
	if w.screen != screen {
		return fmt.Errorf("%w: requires %s, current screen is %s", ErrActionNotAllowed, screen, w.screen)
	}
	return nil
}

func (w *Wizard) advance() error {
	next, err := w.screen.Next()
	if err != nil {
		return err
	}
	w.screen = next
	return nil
}

func (w *Wizard) reset() {
	w.screen = Calculator
	w.items = carpet.NewItems()
	w.info = OrderInfo{}
	w.form = address.NewForm()
	w.problems = nil
	w.calendar.Reset()
	w.clearChallenge()
	w.orderNumber = ""
}

func (w *Wizard) clearChallenge() {
	w.challenge = challenge.Challenge{}
	w.challengeMessage = ""
}
