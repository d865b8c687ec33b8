package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/Purvesh8762/user-management/internal/client/validation"
	"github.com/Purvesh8762/user-management/internal/common"
)

// ForgotPassword asks the backend to send an OTP to the given email and
// remembers the address so the reset screen receives it prefilled.
func (a *App) ForgotPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	email = validation.NormalizeEmail(email)
	if err := validation.Email(email); err != nil {
		fmt.Println(failureMessage(err))
		return err
	}

	msg, err := a.authService.ForgotPassword(ctx, email)
	if err != nil {
		a.log.Error(ctx, "forgot-password failed", "err", err)
		fmt.Println(failureMessage(err))
		return err
	}

	a.resetEmail = email
	fmt.Println(msg)
	return nil
}

// ResetPassword completes the OTP flow for the email captured by
// ForgotPassword. OTP, password and confirmation are all required, the new
// password must satisfy the registration rule, and a mismatch with the
// confirmation is blocked locally: no network call is issued.
func (a *App) ResetPassword(ctx context.Context) error {
	if a.resetEmail == "" {
		fmt.Println("Email missing. Please run forgot first.")
		return common.ErrInvalidEmail
	}

	otp, err := getSimpleText(a.reader, "Enter OTP for "+a.resetEmail, os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter new password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword("Confirm new password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if otp == "" || len(password) == 0 || len(confirm) == 0 {
		fmt.Println("All fields are required")
		return common.ErrInvalidPassword
	}
	if !bytes.Equal(password, confirm) {
		fmt.Println(failureMessage(common.ErrPasswordMismatch))
		return common.ErrPasswordMismatch
	}
	if err := validation.Password(string(password)); err != nil {
		fmt.Println(failureMessage(err))
		return err
	}

	msg, err := a.authService.ResetPassword(ctx, a.resetEmail, otp, password)
	if err != nil {
		a.log.Error(ctx, "reset-password failed", "err", err)
		fmt.Println(failureMessage(err))
		return err
	}

	a.resetEmail = ""
	fmt.Println(msg)
	return nil
}
