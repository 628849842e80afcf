package cli

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"jdoc/config"
	"jdoc/internal/adapter/console"
	"jdoc/internal/adapter/store"
	"jdoc/internal/adapter/urban"
	"jdoc/internal/bot"
	"jdoc/internal/domain"
)

var chatAdmin bool

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Start an interactive chat session against the indexed javadocs.
Lines starting with the trigger (default "=") are commands; a bare number
answers a pending disambiguation choice. Press Ctrl-D to exit.

Examples:
  jdoc chat
  echo "=javadoc String" | jdoc chat`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
	chatCmd.Flags().BoolVar(&chatAdmin, "admin", false, "treat typed messages as privileged")
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	dbPath := config.IndexDBPath(GetRootDir())
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return fmt.Errorf("no index found. Run 'jdoc ingest' first")
	}

	st, err := store.NewBoltStore(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open index: %w", err)
	}
	defer st.Close()

	relay := console.NewRelay(os.Stdout, cfg.Bot.MaxMessageLength)
	urbanClient := urban.NewClient(cfg.Urban.BaseURL, time.Duration(cfg.Urban.TimeoutSeconds)*time.Second)

	b := bot.New(cfg.Bot.Trigger, relay,
		bot.NewJavadocCommand(newLookupUseCase(cfg, st)),
		bot.NewUrbanCommand(urbanClient),
	)

	fmt.Printf("Chat session started (trigger %q, %shelp for commands).\n", cfg.Bot.Trigger, cfg.Bot.Trigger)

	scanner := bufio.NewScanner(os.Stdin)
	var msgID int64
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		msgID++
		msg := domain.ChatMessage{ID: msgID, Content: scanner.Text()}
		// A failed turn is reported, not fatal.
		if err := b.HandleMessage(msg, chatAdmin); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
	}

	fmt.Println()
	return scanner.Err()
}
