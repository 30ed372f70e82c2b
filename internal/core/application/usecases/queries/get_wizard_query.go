// Package queries contains the read side of the wizard: a display-ready view of
// the current session and the reference lookups the screens need.
package queries

import (
	"errors"

	"pickup/internal/pkg/guard"
)

var ErrGetWizardQueryIsNotConstructed = errors.New(
	"GetWizardQuery must be created via NewGetWizardQuery constructor",
)

// GetWizardQuery fetches everything needed to render the current screen.
type GetWizardQuery struct {
	guard guard.ConstructorGuard
}

// NewGetWizardQuery creates a query for the full wizard view.
func NewGetWizardQuery() GetWizardQuery {
	return GetWizardQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetWizardQuery) Validate() error {
	return q.guard.Validate(ErrGetWizardQueryIsNotConstructed)
}

// GetWizardQueryResponse is the read model of the wizard. Amounts are
// preformatted with two decimals; dates are ISO strings, empty when unset.
type GetWizardQueryResponse struct {
	Screen      string
	Step        int
	Items       []ItemView
	Totals      TotalsView
	Info        InfoView
	Location    LocationView
	Calendar    CalendarView
	Challenge   ChallengeView
	OrderNumber string
}

type ItemView struct {
	ID     string
	Length string
	Width  string
	Area   string
	Active bool
}

type TotalsView struct {
	TotalArea             string
	TotalPrice            string
	IsFreeShipping        bool
	FreeShippingThreshold string
	// Progress is the free shipping bar fill in percent, 0 to 100.
	Progress                 float64
	RemainingForFreeShipping string
	Shipping                 string
}

type InfoView struct {
	FullName     string
	Phone        string
	Email        string
	Address      string
	Date         string
	Observations string
}

type LocationView struct {
	FullName       string
	Phone          string
	Email          string
	Locality       string
	Sector         string
	SectorEditable bool
	StreetType     string
	StreetName     string
	Number         string
	Building       string
	Scara          string
	Floor          string
	Intercom       string
	Apartment      string
	// Errors maps field names to the messages of the last rejected submit.
	Errors map[string]string
}

type CalendarView struct {
	Title    string
	Year     int
	Month    int
	Offset   int
	Days     []DayView
	Selected string
	Message  string
}

type DayView struct {
	Date     string
	Day      int
	Blocked  bool
	Selected bool
}

// ChallengeView is empty outside the observations screen.
type ChallengeView struct {
	Question string
	Message  string
}
