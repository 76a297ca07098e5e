package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusConfirmed ReservationStatus = "CONFIRMED"
	ReservationStatusCancelled ReservationStatus = "CANCELLED"
)

type PaymentMethod string

const (
	PaymentMethodPix    PaymentMethod = "PIX"
	PaymentMethodDebit  PaymentMethod = "DEBIT"
	PaymentMethodCredit PaymentMethod = "CREDIT"
	PaymentMethodCash   PaymentMethod = "CASH"
)

type Passenger struct {
	Name      string `json:"name"`
	BirthDate string `json:"birth_date"`
}

type Reservation struct {
	ID            string
	CreatedAt     time.Time
	Origin        string
	Destination   string
	TravelDate    string
	SuiteCategory SuiteCategory
	SuiteID       string
	Passengers    []Passenger
	Phone         string
	TotalCents    int64
	DepositCents  int64
	PaymentMethod PaymentMethod
	PaymentDate   string
	Status        ReservationStatus
}

// travelDateLayout is the operator's human-entered date format. Stored dates
// keep this shape, so any ordering or comparison must parse first; the string
// itself does not sort chronologically.
const travelDateLayout = "02/01/2006"

func ParseTravelDate(s string) (time.Time, error) {
	return time.Parse(travelDateLayout, s)
}
