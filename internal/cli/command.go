package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pagelate/pagelate/internal"
	"github.com/pagelate/pagelate/internal/language"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pagelate",
		Short: "Notion page translator",
		Long: fmt.Sprintf(`pagelate copies a Notion page, translates its text content and
recreates it as a new child page in the target language.

It needs a Notion integration token (NOTION_API_TOKEN) and, for the
default DeepL backend, a DeepL API key (DEEPL_API_TOKEN).

Supported source languages:      %s
Supported destination languages: %s

Examples:
  pagelate -f en -t fr -u https://www.notion.so/ws/My-Page-abc123
  pagelate -f de -t en-us -u https://www.notion.so/ws/My-Page-abc123 --debug`,
			language.PrintableFromLangs(), language.PrintableToLangs()),
		Args:    cobra.NoArgs,
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.pagelate.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.FromLang, "from", "f", "", "Language code of the original page")
	cmd.Flags().StringVarP(&flags.ToLang, "to", "t", "", "Language code of the translated page")
	cmd.Flags().StringVarP(&flags.URL, "url", "u", "", "URL of the original page")
	cmd.Flags().BoolVarP(&flags.Debug, "debug", "d", false, "Log every API request and response as JSON")
	cmd.Flags().StringVar(&flags.TranslatorAPI, "translator", flags.TranslatorAPI, "Translation backend: deepl, openai or gemini")
	cmd.Flags().BoolVar(&flags.NoBrowser, "no-browser", false, "Do not open URLs in the default browser")

	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")
	cmd.MarkFlagRequired("url")

	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("translator.provider", cmd.Flags().Lookup("translator"))
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

		// Search config in home directory with name ".pagelate" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".pagelate")
	}

	// Environment variables
	viper.SetEnvPrefix("PAGELATE")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetNotionToken retrieves the Notion integration token from environment
// or config
func GetNotionToken() string {
	if token := os.Getenv("NOTION_API_TOKEN"); token != "" {
		return token
	}
	return viper.GetString("notion.token")
}

// GetDeepLKey retrieves the DeepL API key from environment or config
func GetDeepLKey() string {
	if key := os.Getenv("DEEPL_API_TOKEN"); key != "" {
		return key
	}
	return viper.GetString("translator.deepl_key")
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("translator.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("translator.gemini_key")
}
