package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	s, err := a.sessions.State(context.Background())
	if err != nil || !s.LoggedIn {
		return ""
	}
	return fmt.Sprintf("(%s)", s.Email)
}

// Run is the command loop. Commands map one-to-one onto the actions the
// original site's pages exposed.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to OneDate (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprintf(a.out, "onedate %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "help":
			fmt.Fprintln(a.out, "Available commands: register, login, logout, account, search, history, latest, exit")
		case "register":
			a.register(ctx)
		case "login":
			a.login(ctx)
		case "logout":
			a.logout(ctx)
		case "account":
			a.account(ctx)
		case "search":
			a.search(ctx)
		case "history":
			a.history(ctx)
		case "latest":
			a.latest(ctx)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", parts[0])
		}
	}
}
