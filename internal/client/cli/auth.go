package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/Purvesh8762/user-management/internal/client/models"
	"github.com/Purvesh8762/user-management/internal/client/validation"
	"github.com/Purvesh8762/user-management/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates against the backend.
// The email is trimmed and lower-cased the way the login form did. On
// success the persisted and in-memory session are both populated. The
// password buffer is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	email = validation.NormalizeEmail(email)

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if email == "" || len(password) == 0 {
		fmt.Println("Please enter email and password")
		return common.ErrInvalidEmail
	}

	sess, err := a.authService.Login(ctx, email, password)
	if err != nil {
		a.log.Error(ctx, "login failed", "err", err)
		fmt.Println(loginFailureMessage(err))
		return err
	}

	a.session = sess
	fmt.Println("Login successful")
	return nil
}

// Register prompts for a name, email and password and creates a new
// administrator account. All three fields are validated locally before any
// network call is made.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	if err := validation.Name(name); err != nil {
		fmt.Println(failureMessage(err))
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	email = validation.NormalizeEmail(email)
	if err := validation.Email(email); err != nil {
		fmt.Println(failureMessage(err))
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := validation.Password(string(password)); err != nil {
		fmt.Println(failureMessage(err))
		return err
	}

	if err := a.authService.Register(ctx, name, email, password); err != nil {
		a.log.Error(ctx, "registration failed", "err", err)
		fmt.Println(failureMessage(err))
		return err
	}

	fmt.Println("Registration successful, please login")
	return nil
}

// Logout clears the persisted session and the in-memory copy.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		fmt.Println(failureMessage(err))
		return err
	}
	a.session = models.Session{}
	fmt.Println("Logged out")
	return nil
}
