package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

const chatExit = "/back"

// Chat forwards each line to the assistant until the user types /back or
// input ends. /lang switches the language mid-conversation.
func (a *App) Chat(ctx context.Context) error {
	fmt.Fprintf(a.out, "Chatting in %s. Type /lang to switch language, %s to return.\n", a.lang, chatExit)

	for {
		fmt.Fprintf(a.out, "[%s] you> ", a.lang)
		line, err := a.reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			fmt.Fprintln(a.out)
			return nil
		}

		text := strings.TrimSpace(line)
		switch text {
		case chatExit:
			return nil
		case "/lang":
			_ = a.ToggleLanguage(ctx)
			continue
		}

		reply, ok, sendErr := a.chat.Send(ctx, a.lang, text)
		if ok {
			fmt.Fprintf(a.out, "avarich (%s)> %s\n", a.avatar, reply.Text)
		}
		if sendErr != nil {
			a.logger.Warn(ctx, "chat reply failed", "error", sendErr)
			fmt.Fprintln(a.out, "Error: Could not fetch response from the server.")
		}

		if err != nil {
			return nil
		}
	}
}

// ToggleLanguage switches between ENG and TUN.
func (a *App) ToggleLanguage(ctx context.Context) error {
	a.lang = a.lang.Toggle()
	fmt.Fprintf(a.out, "Language: %s\n", a.lang)
	return nil
}

// ToggleAvatar switches the assistant avatar.
func (a *App) ToggleAvatar(ctx context.Context) error {
	a.avatar = a.avatar.Toggle()
	fmt.Fprintf(a.out, "Avatar: %s\n", a.avatar)
	return nil
}
