package cli

import (
	"context"
	"fmt"
)

// Profile shows who is currently logged in, from the cached session only;
// no network call is involved.
func (a *App) Profile(ctx context.Context) error {
	sess, err := a.gate(ctx)
	if err != nil {
		fmt.Println(failureMessage(err))
		return err
	}

	fmt.Printf("Logged in as %s (admin id %d)\n", sess.Email, sess.AdminID)
	return nil
}

// Whoami prints just the signed-in email; a quick gate check.
func (a *App) Whoami(ctx context.Context) error {
	sess, err := a.gate(ctx)
	if err != nil {
		fmt.Println(failureMessage(err))
		return err
	}

	fmt.Println(sess.Email)
	return nil
}
