package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"jdoc/config"
	"jdoc/internal/adapter/console"
	"jdoc/internal/adapter/store"
	"jdoc/internal/adapter/suggest"
	"jdoc/internal/domain"
	"jdoc/internal/usecase"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup QUERY",
	Short: "Look up class or method documentation",
	Long: `Look up documentation for a class or method and print it.

Examples:
  jdoc lookup String
  jdoc lookup "java.lang.String#indexOf(int)"
  jdoc lookup "String#indexOf(int) 2"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
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

	lookupUC := newLookupUseCase(cfg, st)

	resp, err := lookupUC.Query(domain.ChatMessage{Content: strings.Join(args, " ")})
	if err != nil {
		return fmt.Errorf("lookup failed: %w", err)
	}
	if resp == nil {
		return nil
	}

	relay := console.NewRelay(os.Stdout, cfg.Bot.MaxMessageLength)
	return relay.Send(*resp)
}

// newLookupUseCase wires the lookup pipeline against an open store.
func newLookupUseCase(cfg *config.Config, st *store.BoltStore) *usecase.LookupUseCase {
	tracker := usecase.NewChoiceTracker(time.Duration(cfg.Bot.ChoiceTTLSeconds) * time.Second)

	var suggester usecase.Suggester
	if cfg.Suggest.Enabled {
		suggester = suggest.NewSuggester(st, cfg.Suggest.MinSimilarity)
	}

	return usecase.NewLookupUseCase(st, tracker, suggester)
}
