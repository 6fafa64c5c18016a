package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var ErrMissingPath = errors.New("input and output paths must be set")

// Config holds application configuration loaded from files, environment variables and flags.
type Config struct {
	Env          string `mapstructure:"env"`           // current application environment (local, dev, production)
	InputPath    string `mapstructure:"input_path"`    // path to the JSON question bank
	OutputPath   string `mapstructure:"output_path"`   // path of the CSV file to produce
	VerifyOutput bool   `mapstructure:"verify_output"` // re-read and validate the CSV after writing
}

// Load reads configuration from config files, .env, environment variables and command line args.
// Flags win over environment variables, which win over the config file.
func Load(args []string) (*Config, error) {
	// Load variables from .env into the process environment if the file exists.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("input_path", "questions.json")
	v.SetDefault("output_path", "questions_for_supabase.csv")
	v.SetDefault("verify_output", true)

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("input_path", "INPUT_PATH")
	_ = v.BindEnv("output_path", "OUTPUT_PATH")
	_ = v.BindEnv("verify_output", "VERIFY_OUTPUT")

	// Command line flags override everything else when set.
	flags := pflag.NewFlagSet("converter", pflag.ContinueOnError)
	flags.StringP("input", "i", "questions.json", "path to the JSON question bank")
	flags.StringP("output", "o", "questions_for_supabase.csv", "path of the CSV file to write")
	flags.Bool("verify", true, "validate the CSV file after writing it")
	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	_ = v.BindPFlag("input_path", flags.Lookup("input"))
	_ = v.BindPFlag("output_path", flags.Lookup("output"))
	_ = v.BindPFlag("verify_output", flags.Lookup("verify"))

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if cfg.InputPath == "" || cfg.OutputPath == "" {
		return nil, ErrMissingPath
	}

	return &cfg, nil
}
