package models

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Location struct {
	Name        string      `json:"name"`
	Address     string      `json:"address"`
	City        string      `json:"city"`
	State       string      `json:"state"`
	Country     string      `json:"country"`
	Coordinates Coordinates `json:"coordinates"`
}

type Review struct {
	ID         string  `json:"id"`
	UserID     string  `json:"userId"`
	UserName   string  `json:"userName"`
	UserAvatar string  `json:"userAvatar"`
	Rating     float64 `json:"rating"`
	Comment    string  `json:"comment"`
	Date       string  `json:"date"`
}

// Event is a listing in the discovery catalog. Date is a calendar date
// string (YYYY-MM-DD) and Time is a free-text range as entered by the host.
// Price is meaningful only when IsFree is false. Attendees is kept at or
// below Capacity by convention, not enforcement.
type Event struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Location    Location `json:"location"`
	Price       float64  `json:"price"`
	Capacity    int      `json:"capacity"`
	Attendees   int      `json:"attendees"`
	HostID      string   `json:"hostId"`
	HostName    string   `json:"hostName"`
	HostRating  float64  `json:"hostRating"`
	Images      []string `json:"images"`
	IsFree      bool     `json:"isFree"`
	IsPrivate   bool     `json:"isPrivate"`
	Tags        []string `json:"tags"`
	Rating      float64  `json:"rating"`
	Reviews     []Review `json:"reviews"`
}
