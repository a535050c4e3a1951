package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/meixner/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "meixner",
		Short: "Hungarian reading practice with syllable breaks",
		Long: `meixner prints Hungarian practice words split into syllables.

Only words made of the letters unlocked at the chosen curriculum level are
picked, so beginners read words built from the letters they already know.

Examples:
  meixner                         # 5 words, all letters unlocked
  meixner --level 3 --count 10    # 10 words using the first three levels
  meixner --list-levels           # show what every level unlocks
  meixner --level 5 --anki        # also write the words to an Anki deck`,
		Args:          cobra.NoArgs,
		Version:       internal.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.meixner.yaml)")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Debug logging on stderr")
	cmd.PersistentFlags().StringVar(&flags.LogFormat, "log-format", flags.LogFormat, "Log format: text or json")

	// Practice flags
	cmd.Flags().IntVar(&flags.Level, "level", flags.Level, "Curriculum level (0 or less unlocks every letter)")
	cmd.Flags().IntVar(&flags.Count, "count", flags.Count, "Maximum number of words to print")
	cmd.Flags().StringVar(&flags.Dictionary, "dictionary", flags.Dictionary, "Word list, one UTF-8 word per line")
	cmd.Flags().BoolVar(&flags.ListLevels, "list-levels", false, "Print the letters unlocked at every level and exit")

	// Hyphenation flags
	cmd.Flags().StringVar(&flags.Lang, "lang", flags.Lang, "Hyphenation language (hyph_<lang>.dic)")
	cmd.Flags().StringVar(&flags.HyphenDir, "hyphen-dir", "", "Extra directory searched first for hyph_*.dic files")

	// Anki flags
	cmd.Flags().BoolVar(&flags.GenerateAnki, "anki", false, "Also write the printed words to an Anki package (.apkg)")
	cmd.Flags().BoolVar(&flags.AnkiCSV, "anki-csv", false, "Write a CSV file instead of an .apkg package")
	cmd.Flags().StringVar(&flags.DeckName, "deck-name", flags.DeckName, "Deck name for the Anki export")
	cmd.Flags().StringVarP(&flags.OutputPath, "output", "o", "", "Export file path (default derived from the deck name)")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("practice.level", cmd.Flags().Lookup("level"))
	viper.BindPFlag("practice.count", cmd.Flags().Lookup("count"))
	viper.BindPFlag("practice.dictionary", cmd.Flags().Lookup("dictionary"))
	viper.BindPFlag("hyphen.lang", cmd.Flags().Lookup("lang"))
	viper.BindPFlag("hyphen.dir", cmd.Flags().Lookup("hyphen-dir"))
	viper.BindPFlag("anki.deck_name", cmd.Flags().Lookup("deck-name"))
	viper.BindPFlag("anki.output", cmd.Flags().Lookup("output"))
	viper.BindPFlag("log.format", cmd.PersistentFlags().Lookup("log-format"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".meixner" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".meixner")
	}

	// Environment variables, e.g. MEIXNER_PRACTICE_LEVEL
	viper.SetEnvPrefix("MEIXNER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// ApplyConfig copies the values viper resolved from flags, environment and
// config file back into flags
func ApplyConfig(flags *Flags) {
	flags.Level = viper.GetInt("practice.level")
	flags.Count = viper.GetInt("practice.count")
	flags.Dictionary = viper.GetString("practice.dictionary")
	flags.Lang = viper.GetString("hyphen.lang")
	flags.HyphenDir = viper.GetString("hyphen.dir")
	flags.DeckName = viper.GetString("anki.deck_name")
	flags.OutputPath = viper.GetString("anki.output")
	flags.LogFormat = viper.GetString("log.format")
}
