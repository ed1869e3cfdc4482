package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"wordsquared/pkg/scrabble"
)

const (
	ConfigDawg       = "dawg"
	ConfigWordList   = "wordlist"
	ConfigBoard      = "board"
	ConfigRack       = "rack"
	ConfigRackSize   = "rack-size"
	ConfigBingoBonus = "bingo-bonus"
	ConfigThreads    = "threads"
	ConfigFirstMove  = "first-move"
	ConfigTop        = "top"
	ConfigStrategy   = "strategy"
	ConfigNBest      = "n-best"
	ConfigLongWord   = "long-word"
	ConfigWordPack   = "word-pack"
	ConfigCompileOut = "compile-out"
	ConfigMatch      = "match"
	ConfigDebug      = "debug"
	ConfigFile       = "config"
)

const (
	StrategyHighScore  = "highscore"
	StrategyOneOfNBest = "oneofnbest"
	StrategyLongWords  = "longwords"
	StrategyWordPacks  = "wordpacks"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

type Config struct {
	*viper.Viper
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(ConfigDawg, "")
	v.SetDefault(ConfigWordList, "")
	v.SetDefault(ConfigBoard, "")
	v.SetDefault(ConfigRack, "")
	v.SetDefault(ConfigRackSize, scrabble.RackSize)
	v.SetDefault(ConfigBingoBonus, 0)
	v.SetDefault(ConfigThreads, runtime.NumCPU())
	v.SetDefault(ConfigFirstMove, true)
	v.SetDefault(ConfigTop, 10)
	v.SetDefault(ConfigStrategy, StrategyHighScore)
	v.SetDefault(ConfigNBest, 5)
	v.SetDefault(ConfigLongWord, 14)
	v.SetDefault(ConfigWordPack, []string{})
	v.SetDefault(ConfigCompileOut, "")
	v.SetDefault(ConfigMatch, "")
	v.SetDefault(ConfigDebug, false)
	return v
}

// DefaultConfig returns the configuration without reading any flags,
// environment or file
func DefaultConfig() *Config {
	return &Config{Viper: newViper()}
}

// Load reads the configuration from the command line arguments, the
// WSQ_ environment variables and the config file named by --config,
// in that order of precedence.
func (c *Config) Load(args []string) error {
	c.Viper = newViper()

	fs := pflag.NewFlagSet("wordsquared", pflag.ContinueOnError)
	fs.String(ConfigDawg, "", "compiled dawg dictionary file")
	fs.String(ConfigWordList, "", "word list to compile instead of a dawg file, one word per line")
	fs.String(ConfigBoard, "", "YAML board snapshot; an empty board is used when not given")
	fs.String(ConfigRack, "", "rack letters, ? for a wildcard; drawn from a full bag when not given")
	fs.Int(ConfigRackSize, scrabble.RackSize, "maximum number of tiles per move")
	fs.Int(ConfigBingoBonus, 0, "bonus for using the whole rack in one move")
	fs.Int(ConfigThreads, runtime.NumCPU(), "number of rows searched at the same time")
	fs.Bool(ConfigFirstMove, true, "let the start cell connect the first move on an empty board")
	fs.Int(ConfigTop, 10, "number of moves to print")
	fs.String(ConfigStrategy, StrategyHighScore, "move ordering: highscore, oneofnbest, longwords or wordpacks")
	fs.Int(ConfigNBest, 5, "N for the oneofnbest strategy")
	fs.Int(ConfigLongWord, 14, "minimum word length for the longwords strategy")
	fs.StringSlice(ConfigWordPack, nil, "words tried first by the wordpacks strategy")
	fs.String(ConfigCompileOut, "", "write the compiled word list to this dawg file")
	fs.String(ConfigMatch, "", "list the dictionary words fitting a pattern, * for any letter")
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.String(ConfigFile, "", "config file (yaml, json or toml)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.BindPFlags(fs); err != nil {
		return err
	}

	c.SetEnvPrefix("WSQ")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	if f := c.GetString(ConfigFile); f != "" {
		c.SetConfigFile(f)
		if err := c.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", f, err)
		}
	}
	return nil
}

// GeneratorOptions maps the configuration onto the move generator's
func (c *Config) GeneratorOptions() scrabble.GeneratorOptions {
	return scrabble.GeneratorOptions{
		RackSize:   c.GetInt(ConfigRackSize),
		BingoBonus: c.GetInt(ConfigBingoBonus),
		Threads:    c.GetInt(ConfigThreads),
		TileSet:    scrabble.DefaultTileSet,
	}
}

// Strategy returns the configured move ordering
func (c *Config) Strategy() (scrabble.Strategy, error) {
	switch s := strings.ToLower(c.GetString(ConfigStrategy)); s {
	case StrategyHighScore:
		return &scrabble.HighScore{}, nil
	case StrategyOneOfNBest:
		return &scrabble.OneOfNBest{N: c.GetInt(ConfigNBest)}, nil
	case StrategyLongWords:
		return &scrabble.LongWords{MinLength: c.GetInt(ConfigLongWord)}, nil
	case StrategyWordPacks:
		return &scrabble.WordPacks{Words: c.GetStringSlice(ConfigWordPack)}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// SanitizedSettings returns the settings for logging
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}
