package http

import "pickup/internal/core/application/usecases/queries"

// ErrorDTO is the body of every failed request. Fields is set for address
// validation failures and maps field names to messages.
type ErrorDTO struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// UpdateItemRequest edits one or both dimensions; omitted ones are left alone.
type UpdateItemRequest struct {
	Length *string `json:"length"`
	Width  *string `json:"width"`
}

type LocationRequest struct {
	FullName   string `json:"fullName"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	City       string `json:"city"`
	Sector     string `json:"sector"`
	StreetType string `json:"streetType"`
	StreetName string `json:"streetName"`
	Number     string `json:"number"`
	Building   string `json:"building"`
	Scara      string `json:"scara"`
	Floor      string `json:"floor"`
	Intercom   string `json:"intercom"`
	Apartment  string `json:"apartment"`
}

type ShiftMonthRequest struct {
	Delta int `json:"delta"`
}

type SelectDateRequest struct {
	Date string `json:"date"`
}

type FinishRequest struct {
	Observations string `json:"observations"`
	Answer       string `json:"answer"`
}

type WizardDTO struct {
	Screen      string       `json:"screen"`
	Step        int          `json:"step"`
	Items       []ItemDTO    `json:"items"`
	Totals      TotalsDTO    `json:"totals"`
	Info        InfoDTO      `json:"orderInfo"`
	Location    LocationDTO  `json:"location"`
	Calendar    CalendarDTO  `json:"calendar"`
	Challenge   ChallengeDTO `json:"challenge"`
	OrderNumber string       `json:"orderNumber,omitempty"`
}

type ItemDTO struct {
	ID     string `json:"id"`
	Length string `json:"length"`
	Width  string `json:"width"`
	Area   string `json:"area"`
	Active bool   `json:"active"`
}

type TotalsDTO struct {
	TotalArea                string  `json:"totalArea"`
	TotalPrice               string  `json:"totalPrice"`
	IsFreeShipping           bool    `json:"isFreeShipping"`
	FreeShippingThreshold    string  `json:"freeShippingThreshold"`
	Progress                 float64 `json:"progress"`
	RemainingForFreeShipping string  `json:"remainingForFreeShipping"`
	Shipping                 string  `json:"shipping"`
}

type InfoDTO struct {
	FullName     string `json:"fullName"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	Date         string `json:"date"`
	Observations string `json:"observations"`
}

type LocationDTO struct {
	FullName       string            `json:"fullName"`
	Phone          string            `json:"phone"`
	Email          string            `json:"email"`
	City           string            `json:"city"`
	Sector         string            `json:"sector"`
	SectorEditable bool              `json:"sectorEditable"`
	StreetType     string            `json:"streetType"`
	StreetName     string            `json:"streetName"`
	Number         string            `json:"number"`
	Building       string            `json:"building"`
	Scara          string            `json:"scara"`
	Floor          string            `json:"floor"`
	Intercom       string            `json:"intercom"`
	Apartment      string            `json:"apartment"`
	Errors         map[string]string `json:"errors,omitempty"`
}

type CalendarDTO struct {
	Title    string   `json:"title"`
	Year     int      `json:"year"`
	Month    int      `json:"month"`
	Offset   int      `json:"offset"`
	Days     []DayDTO `json:"days"`
	Selected string   `json:"selected,omitempty"`
	Message  string   `json:"message,omitempty"`
}

// DayDTO is one calendar cell; padding cells have an empty date and day 0.
type DayDTO struct {
	Date     string `json:"date,omitempty"`
	Day      int    `json:"day"`
	Blocked  bool   `json:"blocked"`
	Selected bool   `json:"selected"`
}

type ChallengeDTO struct {
	Question string `json:"question,omitempty"`
	Message  string `json:"message,omitempty"`
}

func toWizardDTO(v queries.GetWizardQueryResponse) WizardDTO {
	items := make([]ItemDTO, len(v.Items))
	for i, item := range v.Items {
		items[i] = ItemDTO(item)
	}

	days := make([]DayDTO, len(v.Calendar.Days))
	for i, day := range v.Calendar.Days {
		days[i] = DayDTO(day)
	}

	return WizardDTO{
		Screen: v.Screen,
		Step:   v.Step,
		Items:  items,
		Totals: TotalsDTO(v.Totals),
		Info:   InfoDTO(v.Info),
		Location: LocationDTO{
			FullName:       v.Location.FullName,
			Phone:          v.Location.Phone,
			Email:          v.Location.Email,
			City:           v.Location.Locality,
			Sector:         v.Location.Sector,
			SectorEditable: v.Location.SectorEditable,
			StreetType:     v.Location.StreetType,
			StreetName:     v.Location.StreetName,
			Number:         v.Location.Number,
			Building:       v.Location.Building,
			Scara:          v.Location.Scara,
			Floor:          v.Location.Floor,
			Intercom:       v.Location.Intercom,
			Apartment:      v.Location.Apartment,
			Errors:         v.Location.Errors,
		},
		Calendar: CalendarDTO{
			Title:    v.Calendar.Title,
			Year:     v.Calendar.Year,
			Month:    v.Calendar.Month,
			Offset:   v.Calendar.Offset,
			Days:     days,
			Selected: v.Calendar.Selected,
			Message:  v.Calendar.Message,
		},
		Challenge:   ChallengeDTO(v.Challenge),
		OrderNumber: v.OrderNumber,
	}
}
