package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/Purvesh8762/user-management/internal/client/models"
	"github.com/Purvesh8762/user-management/internal/client/validation"
)

// List fetches and prints the managed users. The list is never cached; every
// visit to this screen is a fresh fetch.
func (a *App) List(ctx context.Context) error {
	if _, err := a.gate(ctx); err != nil {
		fmt.Println(failureMessage(err))
		return err
	}

	users, err := a.userService.List(ctx)
	if err != nil {
		return a.reportUserActionError(ctx, err)
	}

	if len(users) == 0 {
		fmt.Println("No users yet")
		return nil
	}
	for _, u := range users {
		fmt.Printf("%d\t%s\t%s\n", u.ID, u.Name, u.Email)
	}
	return nil
}

// AddUser prompts for a name and email, validates them locally and creates
// a managed user.
func (a *App) AddUser(ctx context.Context) error {
	if _, err := a.gate(ctx); err != nil {
		fmt.Println(failureMessage(err))
		return err
	}

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

	if _, err := a.userService.Add(ctx, name, email); err != nil {
		return a.reportUserActionError(ctx, err)
	}

	fmt.Println("User added successfully")
	return nil
}

// DeleteUser prompts for an id and removes that managed user.
func (a *App) DeleteUser(ctx context.Context) error {
	if _, err := a.gate(ctx); err != nil {
		fmt.Println(failureMessage(err))
		return err
	}

	raw, err := getSimpleText(a.reader, "Enter user id to delete", os.Stdout)
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		fmt.Println("Invalid id:", raw)
		return err
	}

	if err := a.userService.Delete(ctx, id); err != nil {
		return a.reportUserActionError(ctx, err)
	}

	fmt.Println("User deleted successfully")
	return nil
}

// reportUserActionError prints the single user-facing outcome of a failed
// authenticated action. The services have already cleared the credential
// store on a 401; here the in-memory session is dropped so the prompt falls
// back to login.
func (a *App) reportUserActionError(ctx context.Context, err error) error {
	if authRejected(err) {
		a.session = models.Session{}
	}
	a.log.Error(ctx, "user action failed", "err", err)
	fmt.Println(failureMessage(err))
	return err
}
