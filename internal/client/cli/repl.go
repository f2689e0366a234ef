package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the REPL dispatches to.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isSignedIn() bool
	Signup(ctx context.Context) error
	Signin(ctx context.Context) error
	Signout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	UserType(ctx context.Context) error
	PersonalInformation(ctx context.Context) error
	Income(ctx context.Context) error
	Chat(ctx context.Context) error
	ToggleLanguage(ctx context.Context) error
	ToggleAvatar(ctx context.Context) error
}

// runREPL reads one command per line from reader and dispatches it to a.
// The loop exits on EOF, on context cancellation, or when the user types
// "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers report
// them to the user themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}

		fmt.Fprintf(w, "avarich %s> ", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			fmt.Fprintln(w)
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch cmd := parts[0]; cmd {
		case "help":
			if a.isSignedIn() {
				fmt.Fprintln(w, "Available commands: whoami, usertype, info, income, chat, lang, avatar, signout, exit")
			} else {
				fmt.Fprintln(w, "Available commands: signup, signin, whoami, chat, lang, avatar, exit")
			}

		case "signup":
			_ = a.Signup(ctx)

		case "signin":
			_ = a.Signin(ctx)

		case "signout":
			_ = a.Signout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "usertype":
			_ = a.UserType(ctx)

		case "info":
			_ = a.PersonalInformation(ctx)

		case "income":
			_ = a.Income(ctx)

		case "chat":
			_ = a.Chat(ctx)

		case "lang":
			_ = a.ToggleLanguage(ctx)

		case "avatar":
			_ = a.ToggleAvatar(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
