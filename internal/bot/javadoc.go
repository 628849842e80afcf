package bot

import (
	"strings"

	"jdoc/internal/adapter/render"
	"jdoc/internal/domain"
	"jdoc/internal/usecase"
)

// JavadocCommand answers class and method documentation queries.
type JavadocCommand struct {
	lookup *usecase.LookupUseCase
}

// NewJavadocCommand creates the command.
func NewJavadocCommand(lookup *usecase.LookupUseCase) *JavadocCommand {
	return &JavadocCommand{lookup: lookup}
}

func (c *JavadocCommand) Name() string {
	return "javadoc"
}

func (c *JavadocCommand) Aliases() []string {
	return []string{"javadocs"}
}

func (c *JavadocCommand) Description() string {
	return "Displays class documentation from the Javadocs."
}

func (c *JavadocCommand) Help(trigger string) string {
	var sb strings.Builder
	sb.WriteString("Displays class documentation from the Javadocs.\n")
	sb.WriteString("Usage: " + trigger + c.Name() + " CLASS[#METHOD([PARAMS])] [ITEM] [PARAGRAPH]\n")
	sb.WriteString("Examples:\n")
	sb.WriteString(trigger + c.Name() + " String\n")
	sb.WriteString(trigger + c.Name() + " java.lang.String#indexOf(int)\n")
	sb.WriteString(trigger + c.Name() + " String#indexOf(int) 2")
	return sb.String()
}

func (c *JavadocCommand) OnMessage(msg domain.ChatMessage, isAdmin bool) (*domain.ChatResponse, error) {
	if strings.TrimSpace(msg.Content) == "" {
		cb := render.NewChatBuilder()
		cb.Reply(msg)
		cb.Append("Type the name of a Java class (e.g. \"java.lang.String\") or a method (e.g. \"Integer#parseInt\").")
		return &domain.ChatResponse{Text: cb.String(), Split: domain.SplitNone}, nil
	}
	return c.lookup.Query(msg)
}

func (c *JavadocCommand) OnChoice(msg domain.ChatMessage, num int) (*domain.ChatResponse, error) {
	return c.lookup.Choice(msg, num)
}
