package bot

import (
	"strconv"
	"strings"

	"jdoc/internal/adapter/render"
	"jdoc/internal/adapter/urban"
	"jdoc/internal/domain"
)

// UrbanCommand looks up slang definitions on Urban Dictionary.
type UrbanCommand struct {
	client *urban.Client
}

// NewUrbanCommand creates the command.
func NewUrbanCommand(client *urban.Client) *UrbanCommand {
	return &UrbanCommand{client: client}
}

func (c *UrbanCommand) Name() string {
	return "urban"
}

func (c *UrbanCommand) Aliases() []string {
	return nil
}

func (c *UrbanCommand) Description() string {
	return "Retrieves definitions from urbandictionary.com."
}

func (c *UrbanCommand) Help(trigger string) string {
	var sb strings.Builder
	sb.WriteString("Retrieves definitions from urbandictionary.com.\n")
	sb.WriteString("Usage: " + trigger + c.Name() + " WORD [DEFINITION_NUMBER]\n")
	sb.WriteString("Examples:\n")
	sb.WriteString(trigger + c.Name() + " brah\n")
	sb.WriteString(trigger + c.Name() + " brah 2")
	return sb.String()
}

func (c *UrbanCommand) OnMessage(msg domain.ChatMessage, isAdmin bool) (*domain.ChatResponse, error) {
	word, pick := parseUrbanQuery(msg.Content)
	if word == "" {
		return reply(msg, "You have to type a word to see its definition... -_-"), nil
	}

	defs, err := c.client.Define(word)
	if err != nil {
		return reply(msg, "Sorry, an error occurred contacting urbandictionary.com. >.>"), nil
	}
	if len(defs) == 0 {
		return reply(msg, "No definition found."), nil
	}

	if pick < 1 {
		pick = 1
	}
	if pick > len(defs) {
		pick = len(defs)
	}
	def := defs[pick-1]
	text := stripCrossLinks(def.Definition)

	cb := render.NewChatBuilder()
	cb.Reply(msg)
	if strings.Contains(text, "\n") {
		// Multi-line definitions cannot carry markup.
		cb.Append(def.Word).Append(":").NL().Append(text)
		return &domain.ChatResponse{Text: cb.String(), Split: domain.SplitNewline}, nil
	}

	cb.Link("**"+def.Word+"**", def.Permalink).Append(": ").Append(text)
	return &domain.ChatResponse{Text: cb.String(), Split: domain.SplitWord}, nil
}

func reply(msg domain.ChatMessage, text string) *domain.ChatResponse {
	cb := render.NewChatBuilder()
	cb.Reply(msg)
	cb.Append(text)
	return &domain.ChatResponse{Text: cb.String(), Split: domain.SplitNone}
}

// parseUrbanQuery splits an optional trailing definition number off the word.
func parseUrbanQuery(content string) (string, int) {
	fields := strings.Fields(content)
	if len(fields) == 0 {
		return "", 0
	}
	if len(fields) > 1 {
		if n, err := strconv.Atoi(fields[len(fields)-1]); err == nil {
			return strings.Join(fields[:len(fields)-1], " "), n
		}
	}
	return strings.Join(fields, " "), 0
}

// stripCrossLinks removes urbandictionary's [bracketed] cross-reference
// markers, which would otherwise render as broken links.
func stripCrossLinks(s string) string {
	s = strings.ReplaceAll(s, "[", "")
	return strings.ReplaceAll(s, "]", "")
}
