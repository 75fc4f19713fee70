package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoad(t *testing.T) {
	t.Run("Reads values from the file and defaults the rest", func(t *testing.T) {
		// Given: a config file with a few keys
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\n" +
			"knowledge:\n  storage: redis\n  merge-aggregate: mean\n" +
			"training:\n  rounds: 2000\n  seed: 42\n" +
			"play:\n  mode: none\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading it
		conf := MustLoad(path)

		// Then: file values win and missing keys get their defaults
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, StorageRedis, conf.Knowledge.Storage)
		assert.Equal(t, "mean", conf.Knowledge.MergeAggregate)
		assert.Equal(t, "cpu", conf.Knowledge.Name)
		assert.Equal(t, 2000, conf.Training.Rounds)
		assert.Equal(t, int64(42), conf.Training.Seed)
		assert.InDelta(t, 0.25, conf.Training.RandomMovePercent, 1e-9)
		assert.Equal(t, PlayModeNone, conf.Play.Mode)
		assert.Equal(t, 100, conf.Play.Difficulty)
		assert.Equal(t, "8080", conf.Play.HTTPPort)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Missing file falls back to the environment", func(t *testing.T) {
		// Given: no config file and a difficulty set in the environment
		t.Setenv("PLAY_DIFFICULTY", "40")

		// When: loading a path that does not exist
		conf := MustLoad(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: environment and defaults are used
		assert.Equal(t, 40, conf.Play.Difficulty)
		assert.Equal(t, StorageFile, conf.Knowledge.Storage)
		assert.Equal(t, "cpu_knowledge.json", conf.Knowledge.FilePath)
	})

	t.Run("Panics on a malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("training: [1, 2"), 0o600))

		assert.Panics(t, func() { MustLoad(path) })
	})
}
