package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	hunter "github.com/obaidrock78/hunter-io-client"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	cfgFile string
	apiKey  string
	baseURL string
	timeout time.Duration
	verbose bool
	asJSON  bool
)

// Execute runs the hunter CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "hunter",
		Short: "Command-line client for the Hunter email discovery API",
		Long: `hunter looks up and verifies professional email addresses through the
Hunter API (https://hunter.io).

The API key is taken from --api-key, the HUNTER_API_KEY environment variable,
or the api_key entry of the config file, in that order.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initConfig()
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./hunter.yaml or ~/.config/hunter/config.yaml)")
	root.PersistentFlags().StringVar(&apiKey, "api-key", "", "Hunter API key (default: HUNTER_API_KEY)")
	root.PersistentFlags().StringVar(&baseURL, "base-url", "", "override the API base URL")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "HTTP timeout for API calls")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log API requests to stderr")
	root.PersistentFlags().BoolVar(&asJSON, "json", false, "print raw JSON responses")

	root.AddCommand(
		domainSearchCmd(),
		emailFinderCmd(),
		emailVerifierCmd(),
		emailCountCmd(),
		accountCmd(),
		leadsCmd(),
		leadsListsCmd(),
		versionCmd(),
	)
	return root
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("hunter")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "hunter"))
		}
	}

	viper.SetEnvPrefix("HUNTER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newClient builds the SDK client from flags, environment and config file.
func newClient() (*hunter.Client, error) {
	key := apiKey
	if key == "" {
		key = viper.GetString("api_key")
	}

	url := baseURL
	if url == "" {
		url = viper.GetString("base_url")
	}

	opts := []hunter.Option{hunter.WithTimeout(timeout)}
	if url != "" {
		opts = append(opts, hunter.WithBaseURL(url))
	}
	if verbose {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			With().Timestamp().Logger().
			Level(zerolog.DebugLevel)
		opts = append(opts, hunter.WithLogger(logger))
	}

	return hunter.New(key, opts...)
}

// printJSON writes v to the command output as indented JSON.
func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
