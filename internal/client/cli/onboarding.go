package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/avarich/internal/client/models"
	"github.com/dmitrijs2005/avarich/internal/client/services"
)

// userTypes are the choices offered at onboarding; the first is the default.
var userTypes = []string{"student", "entrepreneur"}

var errInvalidInput = errors.New("invalid input")

func (a *App) requireSignIn() error {
	if !a.isSignedIn() {
		fmt.Fprintln(a.out, "Error: Please sign in first.")
		return services.ErrNotSignedIn
	}
	return nil
}

// UserType asks for and assigns the user type.
func (a *App) UserType(ctx context.Context) error {
	if err := a.requireSignIn(); err != nil {
		return err
	}

	prompt := fmt.Sprintf("Select your user type (%s) [%s]", strings.Join(userTypes, "/"), userTypes[0])
	choice, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return err
	}

	choice = strings.ToLower(choice)
	if choice == "" {
		choice = userTypes[0]
	}
	if !isUserType(choice) {
		fmt.Fprintf(a.out, "Error: Unknown user type %q.\n", choice)
		return errInvalidInput
	}

	if err := a.session.AssignUserType(ctx, choice); err != nil {
		a.alert("Error", err, "Failed to assign user type.")
		return err
	}

	a.success("User type selected successfully.")
	return nil
}

func isUserType(s string) bool {
	for _, t := range userTypes {
		if t == s {
			return true
		}
	}
	return false
}

// PersonalInformation asks for the personal information record and replaces
// the stored one with it.
func (a *App) PersonalInformation(ctx context.Context) error {
	if err := a.requireSignIn(); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Personal Information (press Enter to skip a field)")

	name, err := getSimpleText(a.reader, "Name (optional)", a.out)
	if err != nil {
		return err
	}
	ageText, err := getSimpleText(a.reader, "Age", a.out)
	if err != nil {
		return err
	}
	age, err := optionalInt(ageText)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s.\n", err)
		return errInvalidInput
	}
	occupation, err := getSimpleText(a.reader, "Occupation", a.out)
	if err != nil {
		return err
	}
	dependents, err := getSimpleText(a.reader, "Do you have financial dependents? (yes/no) [no]", a.out)
	if err != nil {
		return err
	}
	earner, err := getSimpleText(a.reader, "Are you the primary income earner? (yes/no) [no]", a.out)
	if err != nil {
		return err
	}

	hasDependents := yesNo(dependents)
	isEarner := yesNo(earner)
	info := &models.PersonalInformation{
		Name:                optionalString(name),
		Age:                 age,
		Occupation:          optionalString(occupation),
		FinancialDependents: &hasDependents,
		PrimaryIncomeEarner: &isEarner,
	}

	if err := a.session.UpdatePersonalInformation(ctx, info); err != nil {
		a.alert("Error", err, "Failed to update Personal Information.")
		return err
	}

	a.success("Personal Information updated successfully.")
	return nil
}

// Income asks for the income record and replaces the stored one with it.
func (a *App) Income(ctx context.Context) error {
	if err := a.requireSignIn(); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Income (press Enter to skip a field)")

	totalText, err := getSimpleText(a.reader, "Total monthly income", a.out)
	if err != nil {
		return err
	}
	total, err := optionalAmount(totalText)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s.\n", err)
		return errInvalidInput
	}
	sources, err := getSimpleText(a.reader, "Additional income sources", a.out)
	if err != nil {
		return err
	}
	seasonal, err := getSimpleText(a.reader, "Seasonal income changes", a.out)
	if err != nil {
		return err
	}

	income := &models.Income{
		TotalMonthlyIncome:      total,
		AdditionalIncomeSources: optionalString(sources),
		SeasonalIncomeChanges:   optionalString(seasonal),
	}

	if err := a.session.UpdateIncome(ctx, income); err != nil {
		a.alert("Error", err, "Failed to update Income Information.")
		return err
	}

	a.success("Income Information updated successfully.")
	return nil
}
