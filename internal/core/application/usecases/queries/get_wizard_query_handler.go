package queries

import (
	"context"

	"pickup/internal/core/domain/model/carpet"
	"pickup/internal/core/domain/model/wizard"
	"pickup/internal/core/ports"
)

// GetWizardQueryHandler builds the read model from the session's wizard.
type GetWizardQueryHandler struct {
	session ports.WizardSession
}

// NewGetWizardQueryHandler creates a handler reading the session's wizard.
func NewGetWizardQueryHandler(session ports.WizardSession) GetWizardQueryHandler {
	return GetWizardQueryHandler{session: session}
}

// Handle renders the current screen, carpets, formatted totals, order details,
// address draft, calendar and challenge.
func (h GetWizardQueryHandler) Handle(ctx context.Context, query GetWizardQuery) (GetWizardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetWizardQueryResponse{}, err
	}

	var resp GetWizardQueryResponse
	err := h.session.View(ctx, func(w *wizard.Wizard) error {
		resp = buildWizardView(w)
		return nil
	})
	if err != nil {
		return GetWizardQueryResponse{}, err
	}

	return resp, nil
}

func buildWizardView(w *wizard.Wizard) GetWizardQueryResponse {
	screen := w.Screen()
	totals := w.Totals()

	items := w.Items()
	itemViews := make([]ItemView, 0, len(items))
	for _, item := range items {
		itemViews = append(itemViews, ItemView{
			ID:     item.ID().String(),
			Length: item.Length(),
			Width:  item.Width(),
			Area:   carpet.FormatAmount(item.Area()),
			Active: item.IsActive(),
		})
	}

	info := w.Info()
	form := w.Form()
	cal := w.Calendar()
	grid := cal.Grid()

	days := make([]DayView, 0, len(grid.Cells))
	for _, cell := range grid.Cells {
		days = append(days, DayView{
			Date:     cell.Date.String(),
			Day:      cell.Day,
			Blocked:  cell.Blocked,
			Selected: cell.Selected,
		})
	}

	var challengeView ChallengeView
	if c := w.Challenge(); !c.IsZero() {
		challengeView = ChallengeView{
			Question: c.Question(),
			Message:  w.ChallengeMessage(),
		}
	}

	return GetWizardQueryResponse{
		Screen: screen.String(),
		Step:   screen.Step(),
		Items:  itemViews,
		Totals: TotalsView{
			TotalArea:                carpet.FormatAmount(totals.TotalArea),
			TotalPrice:               carpet.FormatAmount(totals.TotalPrice),
			IsFreeShipping:           totals.IsFreeShipping,
			FreeShippingThreshold:    carpet.FormatAmount(totals.FreeShippingThreshold),
			Progress:                 totals.Progress,
			RemainingForFreeShipping: carpet.FormatAmount(totals.RemainingForFreeShipping()),
			Shipping:                 carpet.ShippingLabel(totals, w.Pricing()),
		},
		Info: InfoView{
			FullName:     info.FullName,
			Phone:        info.Phone,
			Email:        info.Email,
			Address:      info.Address,
			Date:         info.Date.String(),
			Observations: info.Observations,
		},
		Location: LocationView{
			FullName:       form.FullName,
			Phone:          form.Phone,
			Email:          form.Email,
			Locality:       form.Locality(),
			Sector:         form.Sector(),
			SectorEditable: form.SectorEditable(),
			StreetType:     form.StreetType,
			StreetName:     form.StreetName,
			Number:         form.Number,
			Building:       form.Building,
			Scara:          form.Scara,
			Floor:          form.Floor,
			Intercom:       form.Intercom,
			Apartment:      form.Apartment,
			Errors:         w.FormProblems(),
		},
		Calendar: CalendarView{
			Title:    grid.Title,
			Year:     grid.Year,
			Month:    int(grid.Month),
			Offset:   grid.Offset,
			Days:     days,
			Selected: cal.Selected().String(),
			Message:  cal.Message(),
		},
		Challenge:   challengeView,
		OrderNumber: w.OrderNumber(),
	}
}
