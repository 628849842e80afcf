package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"jdoc/config"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string
)

var rootCmd = &cobra.Command{
	Use:   "jdoc",
	Short: "Javadoc lookup bot - Index javadoc archives and answer doc queries",
	Long: `jdoc indexes javadoc ZIP archives and answers class and method
documentation queries, either one-shot or as an interactive chat bot with
numbered disambiguation choices.

Example usage:
  jdoc ingest                      # Index archives under ./javadocs
  jdoc lookup "String#indexOf"     # One-shot documentation query
  jdoc chat                        # Interactive chat session`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./jdoc.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}
