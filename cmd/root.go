package cmd

import (
	"errors"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "hiring-partner"
)

type Config struct {
	Assistant *AssistantConfig `mapstructure:"assistant"`
	AI        *AIConfig        `mapstructure:"ai"`
	Email     *EmailConfig     `mapstructure:"email"`
}

type AssistantConfig struct {
	Name string `mapstructure:"name"`
}

type AIConfig struct {
	Provider string        `mapstructure:"provider"`
	Gemini   *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKey     string `mapstructure:"api-key"`
	APIKeyFile string `mapstructure:"api-key-file"`
	Model      string `mapstructure:"model"`
	MaxRetries int    `mapstructure:"max-retries"`
}

type EmailConfig struct {
	From         string `mapstructure:"from"`
	Password     string `mapstructure:"password"`
	PasswordFile string `mapstructure:"password-file"`
	SMTPHost     string `mapstructure:"smtp-host"`
	SMTPPort     int    `mapstructure:"smtp-port"`
	Subject      string `mapstructure:"subject"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "hiring-partner is a conversational intake assistant for a hiring workflow",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// A local .env feeds the environment bindings below. Missing file is fine.
	_ = godotenv.Load()

	envBindings := map[string]string{
		"ai.gemini.api-key":      "GEMINI_API_KEY",
		"ai.gemini.api-key-file": "GEMINI_API_KEY_FILE",
		"email.from":             "SENDER_EMAIL",
		"email.password":         "SENDER_PASSWORD",
	}
	for key, env := range envBindings {
		if err := viper.BindEnv(key, env); err != nil {
			log.Fatalf("binding %s environment variable: %v", env, err)
		}
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is hiring-partner.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// Config needed only for the run command.
	if runCmd.CalledAs() == "" {
		return
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			log.Fatal(err)
		}
		return
	}

	viper.AddConfigPath(".")
	viper.SetConfigName(app)
	viper.SetConfigType("yaml")

	// A missing default config file is fine: credentials can come entirely
	// from the environment. A broken one is not.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	if config == nil {
		config = &Config{}
	}
	if config.Assistant == nil {
		config.Assistant = &AssistantConfig{}
	}
	if config.AI == nil {
		config.AI = &AIConfig{}
	}
	if config.AI.Gemini == nil {
		config.AI.Gemini = &GeminiConfig{}
	}
	if config.Email == nil {
		config.Email = &EmailConfig{}
	}

	if config.Assistant.Name == "" {
		config.Assistant.Name = "Hiring Partner"
	}
	if config.Email.SMTPHost == "" {
		config.Email.SMTPHost = "smtp.gmail.com"
	}
	if config.Email.SMTPPort == 0 {
		config.Email.SMTPPort = 465
	}
	if config.Email.Subject == "" {
		config.Email.Subject = "Your Hiring Partner Candidate Report"
	}

	return config, nil
}
