// Package chat forwards free text to a generative model and keeps the
// conversation transcript for the current run.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/avarich/internal/logging"
)

const (
	FallbackEmptyReply = "Sorry, I could not understand that."
	FallbackError      = "Error: Could not get response."
)

// ErrNoKey is returned when no API key is configured for the language.
var ErrNoKey = errors.New("no API key configured")

// Language selects which API key the proxy uses.
type Language int

const (
	ENG Language = iota
	TUN
)

func (l Language) String() string {
	if l == TUN {
		return "TUN"
	}
	return "ENG"
}

// Toggle flips between ENG and TUN.
func (l Language) Toggle() Language {
	if l == ENG {
		return TUN
	}
	return ENG
}

// Avatar is the assistant persona shown next to bot replies.
type Avatar int

const (
	Female Avatar = iota
	Male
)

func (a Avatar) String() string {
	if a == Male {
		return "male"
	}
	return "female"
}

func (a Avatar) Toggle() Avatar {
	if a == Female {
		return Male
	}
	return Female
}

type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

type Message struct {
	Sender Sender
	Text   string
	At     time.Time
}

// Generator produces a reply for text using the given API key.
type Generator interface {
	Generate(ctx context.Context, apiKey, text string) (string, error)
}

// Keys maps each language to its API key.
type Keys struct {
	ENG string
	TUN string
}

func (k Keys) For(l Language) string {
	if l == TUN {
		return k.TUN
	}
	return k.ENG
}

// Proxy is used from a single goroutine.
type Proxy struct {
	gen    Generator
	keys   Keys
	logger logging.Logger
	now    func() time.Time

	transcript []Message
}

func NewProxy(gen Generator, keys Keys, logger logging.Logger) *Proxy {
	return &Proxy{
		gen:    gen,
		keys:   keys,
		logger: logger.With("module", "chat"),
		now:    time.Now,
	}
}

// Send records text and the model's reply in the transcript and returns the
// reply. Blank input is ignored and reported with ok=false. When the model
// fails the fallback reply is still recorded and the error is returned.
func (p *Proxy) Send(ctx context.Context, lang Language, text string) (reply Message, ok bool, err error) {
	if strings.TrimSpace(text) == "" {
		return Message{}, false, nil
	}

	p.push(Message{Sender: SenderUser, Text: text, At: p.now()})

	answer, err := p.generate(ctx, lang, text)
	switch {
	case err != nil:
		p.logger.Error(ctx, "chat request failed", "language", lang.String(), "error", err)
		answer = FallbackError
	case strings.TrimSpace(answer) == "":
		answer = FallbackEmptyReply
	}

	reply = Message{Sender: SenderBot, Text: answer, At: p.now()}
	p.push(reply)

	return reply, true, err
}

func (p *Proxy) generate(ctx context.Context, lang Language, text string) (string, error) {
	key := p.keys.For(lang)
	if key == "" {
		return "", fmt.Errorf("%w for %s", ErrNoKey, lang)
	}
	return p.gen.Generate(ctx, key, text)
}

func (p *Proxy) push(m Message) {
	p.transcript = append([]Message{m}, p.transcript...)
}

// Transcript returns the messages newest first.
func (p *Proxy) Transcript() []Message {
	out := make([]Message, len(p.transcript))
	copy(out, p.transcript)
	return out
}
