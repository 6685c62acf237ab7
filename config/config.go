package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Well-known configuration keys.
const (
	DataPath   = "data-path"
	Lexicon    = "lexicon"
	PoolSize   = "pool-size"
	TableSize  = "table-size"
	Debug      = "debug"
	CPUProfile = "cpu-profile"
	MemProfile = "mem-profile"
)

// Config wraps viper. Settings come from, in increasing precedence:
// defaults, an optional config.yaml in the user config dir, GRABBAG_
// environment variables, and command-line flags.
type Config struct {
	v *viper.Viper
}

func (c *Config) Load(args []string) error {
	c.v = viper.New()

	fs := pflag.NewFlagSet("grabbag", pflag.ContinueOnError)
	fs.String(DataPath, "./data", "directory holding the data files")
	fs.String(Lexicon, "enable1", "name of the word list (minus the .txt extension) inside data-path/lexica")
	fs.Int(PoolSize, 10, "number of letters drawn for the grab bag")
	fs.Int(TableSize, 10, "nominal size of the high score table")
	fs.Bool(Debug, false, "debug logging on")
	fs.String(CPUProfile, "", "write CPU profile to file")
	fs.String(MemProfile, "", "write memory profile to file")
	err := fs.Parse(args)
	if err != nil {
		return err
	}
	err = c.v.BindPFlags(fs)
	if err != nil {
		return err
	}

	c.v.SetEnvPrefix("grabbag")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()

	c.v.SetConfigName("config")
	c.v.SetConfigType("yaml")
	c.v.AddConfigPath(configDir())
	err = c.v.ReadInConfig()
	if err != nil {
		// A missing config file is fine; we just use defaults.
		log.Debug().AnErr("readConfigErr", err).Msg("no config file loaded")
	}
	return nil
}

func configDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, "grabbag")
}

func (c *Config) GetString(key string) string { return c.v.GetString(key) }
func (c *Config) GetInt(key string) int       { return c.v.GetInt(key) }
func (c *Config) GetBool(key string) bool     { return c.v.GetBool(key) }

func (c *Config) Set(key string, value any) {
	c.v.Set(key, value)
}

// Write persists the current settings to the user config file, creating
// the directory if needed.
func (c *Config) Write() error {
	dir := configDir()
	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		return err
	}
	return c.v.WriteConfigAs(filepath.Join(dir, "config.yaml"))
}

// AdjustRelativePaths turns a relative data-path into one anchored at the
// executable's directory, so the binary can be invoked from anywhere.
func (c *Config) AdjustRelativePaths(basepath string) {
	dp := c.v.GetString(DataPath)
	if !filepath.IsAbs(dp) {
		c.v.Set(DataPath, filepath.Join(basepath, dp))
	}
}

// LexiconPath returns the full path of the configured word list.
func (c *Config) LexiconPath() string {
	return filepath.Join(c.v.GetString(DataPath), "lexica",
		c.v.GetString(Lexicon)+".txt")
}

func (c *Config) SanitizedSettings() string {
	return fmt.Sprintf("%v", c.v.AllSettings())
}
