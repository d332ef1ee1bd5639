package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = func(args ...any) { fmt.Println(args...) }

func (a *App) getStatus() string {
	if a.session == nil {
		return ""
	}
	name := a.session.DisplayName
	if name == "" {
		name = a.session.IdentityID
	}
	return fmt.Sprintf("(%s)", name)
}

// Root runs the read-eval-print loop. Incoming messages print asynchronously
// from the receive loop; the prompt accepts one command per line.
func (a *App) Root(ctx context.Context) {

	printlnFn("Welcome to VaultChat CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("vc %s> ", a.getStatus())
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
				printlnFn("Available commands: send, sendgroup, contacts, revoke, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			a.Register(ctx)
		case "login":
			a.Login(ctx)
		case "send":
			a.Send(ctx)
		case "sendgroup":
			a.SendGroup(ctx)
		case "contacts":
			a.Contacts(ctx)
		case "revoke":
			a.Revoke(ctx)
		case "logout":
			a.Logout(ctx)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}
	}

}
