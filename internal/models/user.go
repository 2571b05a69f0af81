package models

import (
	"math"
	"time"

	"github.com/golang-jwt/jwt"
)

// User roles.
const (
	RoleSeeker = "seeker"
	RoleOwner  = "owner"
)

type User struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Password    string      `json:"password,omitempty"`
	Role        string      `json:"role"`
	Preferences Preferences `json:"preferences"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   *time.Time  `json:"updated_at,omitempty"`
}

// Preferences is a user's saved budget/city/amenity profile. It is read-only
// to the ranking subsystem and only ever edited through the user endpoints.
type Preferences struct {
	MinBudget *int     `json:"min_budget"`
	MaxBudget *int     `json:"max_budget"`
	City      string   `json:"city"`
	Amenities []string `json:"amenities"`
}

// BudgetWindow returns the inclusive [min, max] budget bounds with absent
// sides defaulted to 0 and +inf-equivalent.
func (p Preferences) BudgetWindow() (int, int) {
	min := 0
	if p.MinBudget != nil {
		min = *p.MinBudget
	}
	max := math.MaxInt
	if p.MaxBudget != nil {
		max = *p.MaxBudget
	}
	return min, max
}

type Claims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	jwt.StandardClaims
}

type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type Session struct {
	UserID       int       `json:"user_id"`
	Role         string    `json:"role"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type SignUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
