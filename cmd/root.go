package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "hirekit"
)

type Config struct {
	JobTitle           string           `mapstructure:"job-title"`
	JobDescriptionFile string           `mapstructure:"job-description-file"`
	CohortFile         string           `mapstructure:"cohort-file"`
	ResumeDir          string           `mapstructure:"resume-dir"`
	Output             *OutputConfig    `mapstructure:"output"`
	Screening          *ScreeningConfig `mapstructure:"screening"`
	AI                 *AIConfig        `mapstructure:"ai"`
}

type OutputConfig struct {
	ExcelFile string `mapstructure:"excel-file"`
}

type ScreeningConfig struct {
	MinScore        int    `mapstructure:"min-score"`
	MinTier         string `mapstructure:"min-tier"`
	ExcludeDegraded bool   `mapstructure:"exclude-degraded"`
}

type AIConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	Provider      string        `mapstructure:"provider"`
	MinConfidence float64       `mapstructure:"min-confidence"`
	Gemini        *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "hirekit scores job candidates against a role and a reference cohort of good hires",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("gemini-api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is hirekit.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// Config is needed only for the run and baseline commands. Without them
	// we can skip initialization.
	if runCmd.CalledAs() == "" && baselineCmd.CalledAs() == "" {
		return
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// We can't proceed if the config file parsed with error.
	if err := viper.ReadInConfig(); err != nil {
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
