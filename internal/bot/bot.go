package bot

import (
	"strconv"
	"strings"

	"jdoc/internal/adapter/render"
	"jdoc/internal/domain"
	"jdoc/internal/port"
)

// Command is one trigger-prefixed chat command.
type Command interface {
	Name() string
	Aliases() []string
	Description() string
	Help(trigger string) string
	OnMessage(msg domain.ChatMessage, isAdmin bool) (*domain.ChatResponse, error)
}

// ChoiceCommand is implemented by commands that accept bare-number replies
// to a previously offered choice list.
type ChoiceCommand interface {
	OnChoice(msg domain.ChatMessage, num int) (*domain.ChatResponse, error)
}

// Bot routes incoming chat lines to commands. Lines starting with the
// trigger dispatch on command name or alias; a bare positive integer is
// offered to choice-aware commands; everything else is ignored.
type Bot struct {
	trigger  string
	relay    port.Relay
	commands []Command
}

// New creates a bot.
func New(trigger string, relay port.Relay, commands ...Command) *Bot {
	return &Bot{
		trigger:  trigger,
		relay:    relay,
		commands: commands,
	}
}

// HandleMessage processes one chat line. An error aborts only the current
// turn; the message loop is expected to report it and carry on.
func (b *Bot) HandleMessage(msg domain.ChatMessage, isAdmin bool) error {
	content := strings.TrimSpace(msg.Content)
	if content == "" {
		return nil
	}

	if num, err := strconv.Atoi(content); err == nil && num > 0 {
		return b.handleChoice(msg, num)
	}

	if !strings.HasPrefix(content, b.trigger) {
		return nil
	}

	name, args := splitCommand(content[len(b.trigger):])
	if name == "help" {
		return b.relay.Send(*b.helpResponse(msg))
	}

	cmd := b.find(name)
	if cmd == nil {
		return nil
	}

	msg.Content = args
	resp, err := cmd.OnMessage(msg, isAdmin)
	if err != nil {
		return err
	}
	if resp != nil {
		return b.relay.Send(*resp)
	}
	return nil
}

func (b *Bot) handleChoice(msg domain.ChatMessage, num int) error {
	for _, cmd := range b.commands {
		cc, ok := cmd.(ChoiceCommand)
		if !ok {
			continue
		}
		// Replayed choices are never privileged.
		resp, err := cc.OnChoice(msg, num)
		if err != nil {
			return err
		}
		if resp != nil {
			return b.relay.Send(*resp)
		}
	}
	return nil
}

func (b *Bot) find(name string) Command {
	for _, cmd := range b.commands {
		if cmd.Name() == name {
			return cmd
		}
		for _, alias := range cmd.Aliases() {
			if alias == name {
				return cmd
			}
		}
	}
	return nil
}

func (b *Bot) helpResponse(msg domain.ChatMessage) *domain.ChatResponse {
	cb := render.NewChatBuilder()
	cb.Reply(msg)
	cb.Append("Commands:")
	for _, cmd := range b.commands {
		cb.NL().Append(b.trigger).Append(cmd.Name()).Append(" - ").Append(cmd.Description())
	}
	return &domain.ChatResponse{Text: cb.String(), Split: domain.SplitNewline}
}

func splitCommand(s string) (string, string) {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i], strings.TrimSpace(s[i+1:])
	}
	return s, ""
}
