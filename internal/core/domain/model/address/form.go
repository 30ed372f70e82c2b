package address

import (
	"errors"
	"regexp"
	"slices"
	"strings"

	"pickup/internal/pkg/errs"
)

// Field names used as keys of validation results.
const (
	FieldFullName   = "fullName"
	FieldPhone      = "phone"
	FieldEmail      = "email"
	FieldLocality   = "city"
	FieldSector     = "sector"
	FieldStreetName = "streetName"
	FieldNumber     = "number"
)

// Validation messages, as shown next to each field.
const (
	MsgFullNameRequired   = "NUME COMPLET OBLIGATORIU"
	MsgPhoneRequired      = "TELEFON OBLIGATORIU (MIN. 10 CIFRE)"
	MsgEmailRequired      = "EMAIL VALID OBLIGATORIU"
	MsgLocalityRequired   = "LOCALITATE OBLIGATORIE"
	MsgSectorRequired     = "SECTOR OBLIGATORIU"
	MsgStreetNameRequired = "NUME STRADĂ OBLIGATORIU"
	MsgNumberRequired     = "NUMĂR OBLIGATORIU"
)

// MinPhoneLength is the minimum number of characters of a phone number.
const MinPhoneLength = 10

// ErrSectorIsLocked is returned when the sector is edited outside the capital.
var ErrSectorIsLocked = errs.NewValueIsInvalidErrorWithCause(
	"sector", errors.New("sector is fixed to "+CountyCode+" outside "+Capital))

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// Form is the contact and address draft of the location screen. Locality and
// sector are coupled and only change through SetLocality and SetSector; the
// remaining fields are free text.
type Form struct {
	FullName string
	Phone    string
	Email    string

	StreetType string
	StreetName string
	Number     string

	Building  string
	Scara     string
	Floor     string
	Intercom  string
	Apartment string

	locality string
	sector   string
}

// NewForm returns the initial draft: the capital with no sector, "Str." and ground floor.
func NewForm() Form {
	return Form{
		StreetType: streetTypes[0],
		Floor:      "0",
		locality:   Capital,
	}
}

func (f *Form) Locality() string {
	return f.locality
}

func (f *Form) Sector() string {
	return f.sector
}

// SectorEditable reports whether the customer may choose the sector.
func (f *Form) SectorEditable() bool {
	return f.locality == Capital
}

// SetLocality changes the locality. Leaving the capital forces the county
// code as sector; returning to it clears that code so a sector must be chosen.
func (f *Form) SetLocality(locality string) {
	f.locality = locality
	switch {
	case locality != Capital:
		f.sector = CountyCode
	case f.sector == CountyCode:
		f.sector = ""
	}
}

// SetSector records the chosen sector. Outside the capital the sector is
// locked and ErrSectorIsLocked is returned. The value itself is checked by Validate.
func (f *Form) SetSector(sector string) error {
	if !f.SectorEditable() {
		return ErrSectorIsLocked
	}
	f.sector = sector
	return nil
}

// Validate checks every required field and returns one message per failing
// field. An empty map means the form is complete.
func (f *Form) Validate() map[string]string {
	problems := make(map[string]string)

	if f.FullName == "" {
		problems[FieldFullName] = MsgFullNameRequired
	}
	if len([]rune(f.Phone)) < MinPhoneLength {
		problems[FieldPhone] = MsgPhoneRequired
	}
	if !emailPattern.MatchString(f.Email) {
		problems[FieldEmail] = MsgEmailRequired
	}
	if f.locality == "" {
		problems[FieldLocality] = MsgLocalityRequired
	}
	if !f.validSector() {
		problems[FieldSector] = MsgSectorRequired
	}
	if f.StreetName == "" {
		problems[FieldStreetName] = MsgStreetNameRequired
	}
	if f.Number == "" {
		problems[FieldNumber] = MsgNumberRequired
	}

	return problems
}

// Compose validates the form and joins it into the address line:
//
//	locality, Sector N, <type> <street>, Nr. <number>[, Bl. ][, Sc. ][, Et. ][, Ap. ][, Int. ]
//
// On failure it returns an *errs.FieldsAreInvalidError with the messages of Validate.
func (f *Form) Compose() (string, error) {
	if err := errs.NewFieldsAreInvalidError(f.Validate()); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(f.locality)
	b.WriteString(", Sector ")
	b.WriteString(f.sector)
	b.WriteString(", ")
	b.WriteString(strings.TrimSpace(f.StreetType + " " + f.StreetName))
	b.WriteString(", Nr. ")
	b.WriteString(f.Number)

	optional := []struct{ label, value string }{
		{"Bl.", f.Building},
		{"Sc.", f.Scara},
		{"Et.", f.Floor},
		{"Ap.", f.Apartment},
		{"Int.", f.Intercom},
	}
	for _, part := range optional {
		if part.value != "" {
			b.WriteString(", ")
			b.WriteString(part.label)
			b.WriteString(" ")
			b.WriteString(part.value)
		}
	}

	return b.String(), nil
}

func (f *Form) validSector() bool {
	if f.locality == "" {
		return f.sector != ""
	}
	if f.locality == Capital {
		return slices.Contains(sectors, f.sector)
	}
	return f.sector == CountyCode
}
