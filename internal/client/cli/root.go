package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if a.session.Email != "" {
		return fmt.Sprintf("(%s)", a.session.Email)
	}
	return ""
}

// Root runs the command loop. One command executes at a time; each maps to
// a single screen of the application.
func (a *App) Root(ctx context.Context) {
	fmt.Println("Welcome to UserDesk CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("ud %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Println("Available commands: (l)ist, add, delete, profile, whoami, logout, exit")
			} else {
				fmt.Println("Available commands: login, register, forgot, reset, exit")
			}

		case "login":
			_ = a.Login(ctx)
		case "register":
			_ = a.Register(ctx)
		case "forgot":
			_ = a.ForgotPassword(ctx)
		case "reset":
			_ = a.ResetPassword(ctx)
		case "l", "list":
			_ = a.List(ctx)
		case "add":
			_ = a.AddUser(ctx)
		case "delete":
			_ = a.DeleteUser(ctx)
		case "profile":
			_ = a.Profile(ctx)
		case "whoami":
			_ = a.Whoami(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}
