package identity

import "context"

type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

type User struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Avatar  string  `json:"avatar"`
	Phone   string  `json:"phone"`
	Address Address `json:"address"`
}

// Provider supplies the signed-in shopper's profile. The storefront runs
// single-user, so the static implementation below stands in for a real
// identity service.
type Provider interface {
	Current(ctx context.Context) (User, error)
}

type staticProvider struct {
	user User
}

func NewStaticProvider(user User) Provider {
	return &staticProvider{user: user}
}

func (p *staticProvider) Current(_ context.Context) (User, error) {
	return p.user, nil
}

// DemoUser is the profile used when no identity backend is configured.
func DemoUser() User {
	return User{
		ID:      "u1",
		Name:    "John Doe",
		Email:   "john@example.com",
		Avatar:  "https://placehold.co/100x100",
		Phone:   "+62 812 3456 7890",
		Address: DefaultAddress(),
	}
}

// DefaultAddress is the checkout fallback when the shopper never set a
// shipping address.
func DefaultAddress() Address {
	return Address{
		Street:     "Jl. Sudirman No. 123",
		City:       "Jakarta Selatan",
		Province:   "DKI Jakarta",
		PostalCode: "12190",
		Country:    "Indonesia",
	}
}
