package models

import "time"

// UserType is the onboarding category chosen by a user.
type UserType string

const (
	UserTypeStudent      UserType = "student"
	UserTypeEntrepreneur UserType = "entrepreneur"
)

// DefaultUserType is assigned at signup.
const DefaultUserType = UserTypeStudent

// User is the single document kept by the credential store. PasswordHash
// never leaves the server: it is skipped by the JSON encoder.
type User struct {
	ID                  string               `json:"id" bson:"_id"`
	Email               string               `json:"email" bson:"email"`
	PasswordHash        string               `json:"-" bson:"password"`
	UserType            UserType             `json:"userType" bson:"userType"`
	PersonalInformation *PersonalInformation `json:"personalInformation,omitempty" bson:"personalInformation,omitempty"`
	Income              *Income              `json:"income,omitempty" bson:"income,omitempty"`
	CreatedAt           time.Time            `json:"createdAt" bson:"createdAt"`
}

// PersonalInformation is replaced as a whole on update; a field missing from
// the submitted record is absent afterwards.
type PersonalInformation struct {
	Name                *string `json:"name,omitempty" bson:"name,omitempty"`
	Age                 *int    `json:"age,omitempty" bson:"age,omitempty"`
	Occupation          *string `json:"occupation,omitempty" bson:"occupation,omitempty"`
	FinancialDependents *bool   `json:"financialDependents,omitempty" bson:"financialDependents,omitempty"`
	PrimaryIncomeEarner *bool   `json:"primaryIncomeEarner,omitempty" bson:"primaryIncomeEarner,omitempty"`
}

// Income follows the same full-replace contract as PersonalInformation.
type Income struct {
	TotalMonthlyIncome      *float64 `json:"totalMonthlyIncome,omitempty" bson:"totalMonthlyIncome,omitempty"`
	AdditionalIncomeSources *string  `json:"additionalIncomeSources,omitempty" bson:"additionalIncomeSources,omitempty"`
	SeasonalIncomeChanges   *string  `json:"seasonalIncomeChanges,omitempty" bson:"seasonalIncomeChanges,omitempty"`
}
