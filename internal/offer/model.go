// Package offer provides the offer domain model shared across the app.
package offer

// Location is a geographic point with a map zoom level.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Zoom      int     `json:"zoom"`
}

// City is a browsable city with its default map position.
type City struct {
	Name     string   `json:"name"`
	Location Location `json:"location"`
}

// Host summarizes the user hosting an offer.
type Host struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
	IsPro     bool   `json:"isPro"`
}

// PlaceType is the kind of property an offer rents out.
type PlaceType string

const (
	Apartment PlaceType = "apartment"
	Room      PlaceType = "room"
	House     PlaceType = "house"
	Hotel     PlaceType = "hotel"
)

// IsValid returns true if t is a known place type.
func (t PlaceType) IsValid() bool {
	switch t {
	case Apartment, Room, House, Hotel:
		return true
	}
	return false
}

// Label returns the human-readable name for a place type.
func (t PlaceType) Label() string {
	switch t {
	case Apartment:
		return "Apartment"
	case Room:
		return "Room"
	case House:
		return "House"
	case Hotel:
		return "Hotel"
	}
	return string(t)
}

// DefaultCity is the city selected before the user picks one.
const DefaultCity = "Paris"

// Cities is the fixed set of browsable cities, in display order.
var Cities = []string{"Paris", "Cologne", "Brussels", "Amsterdam", "Hamburg", "Dusseldorf"}

// ValidCity returns true if name is one of the browsable cities.
func ValidCity(name string) bool {
	for _, c := range Cities {
		if c == name {
			return true
		}
	}
	return false
}

// Offer represents a rental listing. List payloads carry the summary
// fields; detail payloads additionally fill the detail-only fields.
type Offer struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Type         PlaceType `json:"type"`
	Price        int       `json:"price"`
	PreviewImage string    `json:"previewImage,omitempty"`
	City         City      `json:"city"`
	Location     Location  `json:"location"`
	IsFavorite   bool      `json:"isFavorite"`
	IsPremium    bool      `json:"isPremium"`
	Rating       float64   `json:"rating"`

	// Detail-only fields, absent from list payloads.
	Images      []string `json:"images,omitempty"`
	Goods       []string `json:"goods,omitempty"`
	Description string   `json:"description,omitempty"`
	Bedrooms    int      `json:"bedrooms,omitempty"`
	MaxAdults   int      `json:"maxAdults,omitempty"`
	Host        *Host    `json:"host,omitempty"`
}
