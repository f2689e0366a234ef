// Package models defines the client-side view of the avarich user.
package models

// PersonalInformation mirrors the server record. Every field is optional.
type PersonalInformation struct {
	Name                *string `json:"name,omitempty"`
	Age                 *int    `json:"age,omitempty"`
	Occupation          *string `json:"occupation,omitempty"`
	FinancialDependents *bool   `json:"financialDependents,omitempty"`
	PrimaryIncomeEarner *bool   `json:"primaryIncomeEarner,omitempty"`
}

// Income mirrors the server record. Every field is optional.
type Income struct {
	TotalMonthlyIncome      *float64 `json:"totalMonthlyIncome,omitempty"`
	AdditionalIncomeSources *string  `json:"additionalIncomeSources,omitempty"`
	SeasonalIncomeChanges   *string  `json:"seasonalIncomeChanges,omitempty"`
}

// User is the profile returned by GET /user.
type User struct {
	ID                  string               `json:"id,omitempty"`
	Email               string               `json:"email"`
	UserType            string               `json:"userType,omitempty"`
	PersonalInformation *PersonalInformation `json:"personalInformation,omitempty"`
	Income              *Income              `json:"income,omitempty"`
}

// CachedUser is the session blob kept in the local cache: the last known
// profile plus the session token.
type CachedUser struct {
	User
	Token string `json:"token"`
}

// Merge overlays the fields the server returned onto the cached copy. The
// token and any field the server left empty are kept.
func (c *CachedUser) Merge(u *User) {
	if u == nil {
		return
	}
	if u.ID != "" {
		c.ID = u.ID
	}
	if u.Email != "" {
		c.Email = u.Email
	}
	if u.UserType != "" {
		c.UserType = u.UserType
	}
	if u.PersonalInformation != nil {
		c.PersonalInformation = u.PersonalInformation
	}
	if u.Income != nil {
		c.Income = u.Income
	}
}
