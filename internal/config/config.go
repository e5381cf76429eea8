package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigFile = "toytracker.yaml"
	AccountEnv        = "ACCOUNTNAME"
	envPrefix         = "TOYTRACKER"

	savedVariablesFile = "ATT_ToyTracker.lua"
)

var ErrMissingAccount = errors.New("account name is required: set ACCOUNTNAME (e.g. ACCOUNTNAME='Jane#12345') or pass --account")

type ProjectConfig struct {
	Version   int            `yaml:"version" mapstructure:"version" validate:"eq=1"`
	Account   string         `yaml:"account" mapstructure:"account"`
	WowRoot   string         `yaml:"wow_root" mapstructure:"wow_root" validate:"required"`
	Input     string         `yaml:"input,omitempty" mapstructure:"input"`
	OutputDir string         `yaml:"output_dir" mapstructure:"output_dir" validate:"required"`
	TopLimit  int            `yaml:"top_limit" mapstructure:"top_limit" validate:"gte=0"`
	Database  DatabaseConfig `yaml:"database" mapstructure:"database"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn" mapstructure:"dsn" validate:"omitempty,startswith=sqlite://|startswith=postgres://|startswith=postgresql://"`
}

func Default() ProjectConfig {
	return ProjectConfig{
		Version:   1,
		WowRoot:   "/Applications/World of Warcraft",
		OutputDir: "output",
		TopLimit:  10,
		Database:  DatabaseConfig{DSN: "sqlite://toytracker.db"},
	}
}

// Load reads the optional config file at path, then applies .env and
// environment overrides. ACCOUNTNAME wins over TOYTRACKER_ACCOUNT.
func Load(path string) (*ProjectConfig, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("account", AccountEnv, envPrefix+"_ACCOUNT"); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("loading config: %w", err)
			}
		}
	}

	var cfg ProjectConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("version", d.Version)
	v.SetDefault("account", "")
	v.SetDefault("wow_root", d.WowRoot)
	v.SetDefault("input", "")
	v.SetDefault("output_dir", d.OutputDir)
	v.SetDefault("top_limit", d.TopLimit)
	v.SetDefault("database.dsn", d.Database.DSN)
}

// LoadProjectConfig reads a config file that must exist, without env
// overrides.
func LoadProjectConfig(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	return &cfg, nil
}

func Marshal(cfg ProjectConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints. An account is only required when no
// explicit input file is configured.
func (c *ProjectConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid %s: failed %q check", strings.ToLower(fe.Field()), fe.Tag())
		}
		return err
	}
	if strings.TrimSpace(c.Input) == "" && strings.TrimSpace(c.Account) == "" {
		return ErrMissingAccount
	}
	return nil
}

// SavedVariablesPath is the addon dump to read: the explicit input when set,
// otherwise the account's SavedVariables file under the game root.
func (c *ProjectConfig) SavedVariablesPath() (string, error) {
	if strings.TrimSpace(c.Input) != "" {
		return c.Input, nil
	}
	if strings.TrimSpace(c.Account) == "" {
		return "", ErrMissingAccount
	}
	return filepath.Join(c.WowRoot, "_retail_", "WTF", "Account", c.Account, "SavedVariables", savedVariablesFile), nil
}
