package models

type PaymentMethodType string

const (
	PaymentCard   PaymentMethodType = "card"
	PaymentPayPal PaymentMethodType = "paypal"
)

type PaymentMethod struct {
	ID         string            `json:"id"`
	Type       PaymentMethodType `json:"type"`
	Last4      string            `json:"last4,omitempty"`
	ExpiryDate string            `json:"expiryDate,omitempty"`
	IsDefault  bool              `json:"isDefault"`
}

type Preferences struct {
	Notifications bool   `json:"notifications"`
	DarkMode      bool   `json:"darkMode"`
	Language      string `json:"language"`
}

// User is the account record shared between the auth procedure and the
// client-side auth store. Ratings run 0.0 to 5.0.
type User struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Avatar         string          `json:"avatar"`
	Bio            string          `json:"bio,omitempty"`
	Rating         float64         `json:"rating"`
	IsHost         bool            `json:"isHost"`
	JoinedDate     string          `json:"joinedDate"`
	Preferences    *Preferences    `json:"preferences,omitempty"`
	PaymentMethods []PaymentMethod `json:"paymentMethods,omitempty"`
}
