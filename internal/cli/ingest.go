package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"jdoc/config"
	"jdoc/internal/adapter/fs"
	"jdoc/internal/adapter/store"
	"jdoc/internal/usecase"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [path]",
	Short: "Ingest javadoc archives into the index",
	Long: `Ingest javadoc ZIP archives found under the given directory.
The index is stored in .jdoc/index.db within the root directory.
Re-ingesting a library replaces its previous contents.

Examples:
  jdoc ingest                     # Ingest the configured libraries dir
  jdoc ingest /path/to/javadocs   # Ingest a specific directory`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	// Determine the archive directory
	dir := cfg.Libraries.Dir
	if len(args) > 0 {
		dir = args[0]
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(GetRootDir(), dir)
	}

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("archive directory does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", dir)
	}

	if err := config.EnsureDataDir(GetRootDir()); err != nil {
		return fmt.Errorf("failed to create .jdoc directory: %w", err)
	}

	dbPath := config.IndexDBPath(GetRootDir())
	st, err := store.NewBoltStore(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open index store: %w", err)
	}
	defer st.Close()

	walker := fs.NewWalker(cfg.Libraries.Includes, cfg.Libraries.Excludes)
	ingestUC := usecase.NewIngestUseCase(st, walker)

	fmt.Printf("Scanning %s...\n", dir)

	// One progress bar per archive
	var bar *progressbar.ProgressBar
	var current string

	progress := func(archivePath string, done, total int) {
		if archivePath != current {
			current = archivePath
			bar = progressbar.NewOptions(total,
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription(fmt.Sprintf("[cyan]%s[reset]", filepath.Base(archivePath))),
				progressbar.OptionOnCompletion(func() {
					fmt.Println()
				}),
			)
		}
		bar.Set(done)
	}

	result, err := ingestUC.Ingest(dir, progress)
	if err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}

	fmt.Printf("\nIngest complete:\n")
	fmt.Printf("  Archives read:   %d\n", result.Archives)
	fmt.Printf("  Classes indexed: %d\n", result.Classes)

	if len(result.Errors) > 0 {
		fmt.Printf("\nWarnings:\n")
		for _, e := range result.Errors {
			fmt.Printf("  - %s\n", e)
		}
	}

	fmt.Printf("\nIndex stored at: %s\n", dbPath)
	return nil
}
