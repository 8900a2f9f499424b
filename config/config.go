package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/ratel-online/unosim/consts"
	"github.com/ratel-online/unosim/simulation"
)

const DefaultEnvFile = ".env"

type Config struct {
	Players  int
	Names    []string
	Seed     int64
	Games    int
	Workers  int
	MaxTurns int
	Verbose  bool
}

// Load reads .env, then the environment, then args. Later sources win.
func Load(args []string) (*Config, error) {
	return LoadFrom(DefaultEnvFile, args)
}

// LoadFrom is Load with an explicit env file. A missing file is skipped.
func LoadFrom(envFile string, args []string) (*Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w(%s: %v)", consts.ErrorsConfigInvalid, envFile, err)
	}

	cfg, err := fromEnv()
	if err != nil {
		return nil, err
	}

	names := strings.Join(cfg.Names, ",")
	flags := flag.NewFlagSet("unosim", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.IntVar(&cfg.Players, "players", cfg.Players, "number of players")
	flags.StringVar(&names, "names", names, "comma separated player names, bots fill the other seats")
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed of the first game")
	flags.IntVar(&cfg.Games, "games", cfg.Games, "number of games to play")
	flags.IntVar(&cfg.Workers, "workers", cfg.Workers, "games played in parallel")
	flags.IntVar(&cfg.MaxTurns, "max-turns", cfg.MaxTurns, "turns before a game is abandoned, 0 for no limit")
	flags.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "log every event")
	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("%w(%v)", consts.ErrorsConfigInvalid, err)
	}
	cfg.Names = splitNames(names)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromEnv() (*Config, error) {
	cfg := &Config{
		Names: splitNames(os.Getenv("UNO_NAMES")),
	}
	var err error
	if cfg.Players, err = getEnvInt("UNO_PLAYERS", consts.DefaultPlayers); err != nil {
		return nil, err
	}
	if cfg.Games, err = getEnvInt("UNO_GAMES", consts.DefaultGames); err != nil {
		return nil, err
	}
	if cfg.Workers, err = getEnvInt("UNO_WORKERS", consts.DefaultWorkers); err != nil {
		return nil, err
	}
	if cfg.MaxTurns, err = getEnvInt("UNO_MAX_TURNS", consts.DefaultMaxTurns); err != nil {
		return nil, err
	}
	cfg.Seed = time.Now().UnixNano()
	if v := os.Getenv("UNO_SEED"); v != "" {
		if cfg.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return nil, fmt.Errorf("%w(UNO_SEED=%s)", consts.ErrorsConfigInvalid, v)
		}
	}
	if v := os.Getenv("UNO_VERBOSE"); v != "" {
		if cfg.Verbose, err = strconv.ParseBool(v); err != nil {
			return nil, fmt.Errorf("%w(UNO_VERBOSE=%s)", consts.ErrorsConfigInvalid, v)
		}
	}
	return cfg, nil
}

func getEnvInt(key string, defVal int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defVal, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w(%s=%s)", consts.ErrorsConfigInvalid, key, v)
	}
	return i, nil
}

func splitNames(names string) []string {
	var result []string
	for _, name := range strings.Split(names, ",") {
		if name = strings.TrimSpace(name); name != "" {
			result = append(result, name)
		}
	}
	return result
}

func (c *Config) Validate() error {
	switch {
	case c.Players < consts.MinPlayers || c.Players > consts.MaxPlayers:
		return fmt.Errorf("%w(players must be between %d and %d)", consts.ErrorsConfigInvalid, consts.MinPlayers, consts.MaxPlayers)
	case len(c.Names) > c.Players:
		return fmt.Errorf("%w(%d names for %d players)", consts.ErrorsConfigInvalid, len(c.Names), c.Players)
	case c.Games < 1:
		return fmt.Errorf("%w(games must be positive)", consts.ErrorsConfigInvalid)
	case c.Workers < 1:
		return fmt.Errorf("%w(workers must be positive)", consts.ErrorsConfigInvalid)
	case c.MaxTurns < 0:
		return fmt.Errorf("%w(max turns must not be negative)", consts.ErrorsConfigInvalid)
	}
	return nil
}

func (c *Config) Batch() simulation.BatchConfig {
	return simulation.BatchConfig{
		Game: simulation.GameConfig{
			Players:  c.Players,
			Names:    c.Names,
			MaxTurns: c.MaxTurns,
			Verbose:  c.Verbose,
		},
		Games:   c.Games,
		Workers: c.Workers,
		Seed:    c.Seed,
	}
}
