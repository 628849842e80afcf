package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"jdoc/config"
	"jdoc/internal/adapter/store"
)

var librariesCmd = &cobra.Command{
	Use:   "libraries",
	Short: "List ingested libraries",
	Long: `List the libraries currently in the index with their versions and
class counts.`,
	Args: cobra.NoArgs,
	RunE: runLibraries,
}

func init() {
	rootCmd.AddCommand(librariesCmd)
}

func runLibraries(cmd *cobra.Command, args []string) error {
	dbPath := config.IndexDBPath(GetRootDir())
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return fmt.Errorf("no index found. Run 'jdoc ingest' first")
	}

	st, err := store.NewBoltStore(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open index: %w", err)
	}
	defer st.Close()

	libs, err := st.Libraries()
	if err != nil {
		return fmt.Errorf("failed to list libraries: %w", err)
	}

	if len(libs) == 0 {
		fmt.Println("No libraries ingested.")
		return nil
	}

	for _, lib := range libs {
		if lib.Library.Version != "" {
			fmt.Printf("%s %s (%d classes)\n", lib.Library.Name, lib.Library.Version, lib.ClassCount)
		} else {
			fmt.Printf("%s (%d classes)\n", lib.Library.Name, lib.ClassCount)
		}
	}
	return nil
}
