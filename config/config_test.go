package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ratel-online/unosim/config"
	"github.com/ratel-online/unosim/consts"
)

var variables = []string{"UNO_PLAYERS", "UNO_NAMES", "UNO_SEED", "UNO_GAMES", "UNO_WORKERS", "UNO_MAX_TURNS", "UNO_VERBOSE"}

// clearEnv makes every variable empty for the test, which reads as unset.
func clearEnv(t *testing.T) {
	for _, key := range variables {
		t.Setenv(key, "")
	}
}

func missingFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := config.LoadFrom(missingFile(t), nil)
	require.NoError(t, err)
	require.Equal(t, consts.DefaultPlayers, cfg.Players)
	require.Empty(t, cfg.Names)
	require.Equal(t, consts.DefaultGames, cfg.Games)
	require.Equal(t, consts.DefaultWorkers, cfg.Workers)
	require.Equal(t, consts.DefaultMaxTurns, cfg.MaxTurns)
	require.False(t, cfg.Verbose)
	require.NotZero(t, cfg.Seed)
}

func TestEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("UNO_PLAYERS", "3")
	t.Setenv("UNO_NAMES", "alice, bob")
	t.Setenv("UNO_SEED", "42")
	t.Setenv("UNO_VERBOSE", "true")

	cfg, err := config.LoadFrom(missingFile(t), nil)
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Players)
	require.Equal(t, []string{"alice", "bob"}, cfg.Names)
	require.Equal(t, int64(42), cfg.Seed)
	require.True(t, cfg.Verbose)
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("UNO_PLAYERS", "3")
	t.Setenv("UNO_GAMES", "5")

	cfg, err := config.LoadFrom(missingFile(t), []string{"-players", "6", "-names", "carol", "-seed", "7", "-workers", "2", "-max-turns", "0"})
	require.NoError(t, err)
	require.Equal(t, 6, cfg.Players)
	require.Equal(t, []string{"carol"}, cfg.Names)
	require.Equal(t, int64(7), cfg.Seed)
	require.Equal(t, 5, cfg.Games)
	require.Equal(t, 2, cfg.Workers)
	require.Zero(t, cfg.MaxTurns)

	batch := cfg.Batch()
	require.Equal(t, 6, batch.Game.Players)
	require.Equal(t, int64(7), batch.Seed)
	require.Equal(t, 5, batch.Games)
}

func TestEnvFile(t *testing.T) {
	clearEnv(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("UNO_GAMES=9\nUNO_WORKERS=3\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("UNO_GAMES")
		os.Unsetenv("UNO_WORKERS")
	})
	os.Unsetenv("UNO_GAMES")
	os.Unsetenv("UNO_WORKERS")

	cfg, err := config.LoadFrom(envFile, nil)
	require.NoError(t, err)
	require.Equal(t, 9, cfg.Games)
	require.Equal(t, 3, cfg.Workers)
}

func TestInvalid(t *testing.T) {
	scenarios := []struct {
		description string
		env         map[string]string
		args        []string
	}{
		{"one_player", nil, []string{"-players", "1"}},
		{"too_many_players", nil, []string{"-players", "16"}},
		{"more_names_than_players", nil, []string{"-players", "2", "-names", "a,b,c"}},
		{"no_games", nil, []string{"-games", "0"}},
		{"no_workers", nil, []string{"-workers", "0"}},
		{"negative_max_turns", nil, []string{"-max-turns", "-1"}},
		{"unknown_flag", nil, []string{"-colour"}},
		{"bad_players_variable", map[string]string{"UNO_PLAYERS": "four"}, nil},
		{"bad_seed_variable", map[string]string{"UNO_SEED": "x"}, nil},
		{"bad_verbose_variable", map[string]string{"UNO_VERBOSE": "loud"}, nil},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			clearEnv(t)
			for key, value := range scenario.env {
				t.Setenv(key, value)
			}
			_, err := config.LoadFrom(missingFile(t), scenario.args)
			require.ErrorIs(t, err, consts.ErrorsConfigInvalid)
		})
	}
}
