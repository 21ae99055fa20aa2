package types

import "github.com/google/uuid"

// Company is an organisation founded on Paranuara
type Company struct {
	Index int    `json:"index" validate:"gte=0"`
	Name  string `json:"company" validate:"required"`
}

// Friend is a reference, by index, to another Person
type Friend struct {
	Index int    `json:"index" validate:"gte=0"`
	Name  string `json:"name,omitempty"`
}

// Person is a citizen of Paranuara. CompanyID is nil for people without an employer.
type Person struct {
	ID            string     `json:"_id"`
	Index         int        `json:"index" validate:"gte=0"`
	GUID          *uuid.UUID `json:"guid,omitempty"`
	HasDied       bool       `json:"has_died"`
	Balance       string     `json:"balance"`
	Picture       string     `json:"picture"`
	Age           int        `json:"age" validate:"gte=0"`
	EyeColor      string     `json:"eyeColor"`
	Name          string     `json:"name" validate:"required"`
	Gender        string     `json:"gender"`
	CompanyID     *int       `json:"company_id"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	Address       string     `json:"address"`
	About         string     `json:"about"`
	Registered    string     `json:"registered"`
	Tags          []string   `json:"tags"`
	Friends       []Friend   `json:"friends" validate:"dive"`
	Greeting      string     `json:"greeting"`
	FavouriteFood []string   `json:"favouriteFood"`
}

// Contact returns the contact details of a person
func (p Person) Contact() ContactSummary {
	return ContactSummary{
		Name:    p.Name,
		Age:     p.Age,
		Address: p.Address,
		Phone:   p.Phone,
	}
}

// WorksFor reports whether the person is employed by the company with the given index
func (p Person) WorksFor(companyIndex int) bool {
	return p.CompanyID != nil && *p.CompanyID == companyIndex
}

type ContactSummary struct {
	Name    string `json:"name"`
	Age     int    `json:"age"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// MutualFriends holds two people and the living, brown eyed friends they have in common
type MutualFriends struct {
	First   ContactSummary `json:"employees1"`
	Second  ContactSummary `json:"employees2"`
	Friends []Person       `json:"friends"`
}

// FoodBreakdown is a person's favourite food split into fruits and vegetables
type FoodBreakdown struct {
	Username   string   `json:"username"`
	Age        int      `json:"age"`
	Fruits     []string `json:"fruits"`
	Vegetables []string `json:"vegetables"`
}
