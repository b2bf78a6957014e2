package store

import "fmt"

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

func (a Address) FullAddress() string {
	return fmt.Sprintf("%s, %s, %s %s", a.Street, a.City, a.State, a.ZipCode)
}

type DayHours struct {
	IsOpen    bool    `json:"is_open"`
	OpenTime  *string `json:"open_time,omitempty"`
	CloseTime *string `json:"close_time,omitempty"`
}

func (d DayHours) FormattedHours() string {
	if !d.IsOpen || d.OpenTime == nil || d.CloseTime == nil {
		return "Closed"
	}
	return *d.OpenTime + " - " + *d.CloseTime
}

type Hours struct {
	Monday    DayHours `json:"monday"`
	Tuesday   DayHours `json:"tuesday"`
	Wednesday DayHours `json:"wednesday"`
	Thursday  DayHours `json:"thursday"`
	Friday    DayHours `json:"friday"`
	Saturday  DayHours `json:"saturday"`
	Sunday    DayHours `json:"sunday"`
}

// Offering is an in-store service such as design consultation or
// installation.
type Offering struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsAvailable bool   `json:"is_available"`
}

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Store struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Address     Address     `json:"address"`
	PhoneNumber string      `json:"phone_number"`
	Email       *string     `json:"email,omitempty"`
	Hours       Hours       `json:"hours"`
	Offerings   []Offering  `json:"offerings"`
	Coordinates Coordinates `json:"coordinates"`
}

// Located pairs a store with its distance in miles from a reference
// point supplied by the caller.
type Located struct {
	Store
	DistanceMiles float64 `json:"distance_miles"`
}

// FormattedDistance renders sub-mile distances in feet, otherwise in
// miles to one decimal place.
func (l Located) FormattedDistance() string {
	if l.DistanceMiles < 1 {
		return fmt.Sprintf("%d ft", int(l.DistanceMiles*5280))
	}
	return fmt.Sprintf("%.1f mi", l.DistanceMiles)
}
