package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/avarich/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var errAlreadySignedIn = errors.New("already signed in")

func (a *App) readCredentials() (string, []byte, error) {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return "", nil, err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return "", nil, err
	}
	return email, password, nil
}

// Signup creates an account and walks through onboarding: user type,
// personal information, then income. The chain stops at the first step
// that fails.
func (a *App) Signup(ctx context.Context) error {
	if a.isSignedIn() {
		fmt.Fprintln(a.out, "Already signed in. Sign out first.")
		return errAlreadySignedIn
	}

	email, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.SignUp(ctx, email, string(password)); err != nil {
		a.alert("Sign Up Failed", err, "An error occurred during sign up.")
		return err
	}
	a.success("Account created.")

	return a.onboard(ctx)
}

func (a *App) onboard(ctx context.Context) error {
	for _, step := range []func(context.Context) error{a.UserType, a.PersonalInformation, a.Income} {
		if err := step(ctx); err != nil {
			return err
		}
	}
	fmt.Fprintln(a.out, "You're all set. Type 'chat' to talk to your assistant.")
	return nil
}

// Signin authenticates and loads the user's profile.
func (a *App) Signin(ctx context.Context) error {
	email, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.SignIn(ctx, email, string(password)); err != nil {
		a.alert("Sign In Failed", err, "An error occurred during sign in.")
		return err
	}

	fmt.Fprintf(a.out, "Welcome back, %s. Type 'chat' to talk to your assistant.\n", a.session.User().Email)
	return nil
}

// Signout forgets the cached session.
func (a *App) Signout(ctx context.Context) error {
	if err := a.session.SignOut(ctx); err != nil {
		a.alert("Error", err, "Failed to sign out.")
		return err
	}
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}

// WhoAmI prints the cached profile.
func (a *App) WhoAmI(ctx context.Context) error {
	u := a.session.User()
	if !a.isSignedIn() {
		if u != nil {
			fmt.Fprintf(a.out, "Not signed in (last session: %s)\n", u.Email)
		} else {
			fmt.Fprintln(a.out, "Not signed in")
		}
		return nil
	}

	fmt.Fprintf(a.out, "Email:     %s\n", u.Email)
	fmt.Fprintf(a.out, "User type: %s\n", orDash(u.UserType))

	if pi := u.PersonalInformation; pi != nil {
		fmt.Fprintf(a.out, "Name:       %s\n", orDash(deref(pi.Name)))
		if pi.Age != nil {
			fmt.Fprintf(a.out, "Age:        %d\n", *pi.Age)
		}
		fmt.Fprintf(a.out, "Occupation: %s\n", orDash(deref(pi.Occupation)))
		fmt.Fprintf(a.out, "Financial dependents:  %s\n", yesNoText(pi.FinancialDependents))
		fmt.Fprintf(a.out, "Primary income earner: %s\n", yesNoText(pi.PrimaryIncomeEarner))
	}

	if in := u.Income; in != nil {
		if in.TotalMonthlyIncome != nil {
			fmt.Fprintf(a.out, "Monthly income: %.2f\n", *in.TotalMonthlyIncome)
		}
		fmt.Fprintf(a.out, "Additional sources: %s\n", orDash(deref(in.AdditionalIncomeSources)))
		fmt.Fprintf(a.out, "Seasonal changes:   %s\n", orDash(deref(in.SeasonalIncomeChanges)))
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func yesNoText(b *bool) string {
	switch {
	case b == nil:
		return "-"
	case *b:
		return "Yes"
	}
	return "No"
}
