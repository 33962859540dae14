package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/crosswordbuilder/internal/factory"
)

func env(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, serverCfg, err := loadConfig(env(nil))
	require.NoError(t, err)

	assert.Equal(t, defaultWordListPath, cfg.WordListPath)
	assert.Empty(t, cfg.StorageType)
	assert.Nil(t, cfg.RedisConfig)
	assert.Equal(t, 8080, serverCfg.Port)
}

func TestLoadConfigFromEnv(t *testing.T) {
	cfg, serverCfg, err := loadConfig(env(map[string]string{
		"WORDLIST_PATH": "/srv/words.txt",
		"STORAGE_TYPE":  factory.StorageTypeRedis,
		"REDIS_URL":     "redis://cache:6379/2",
		"PORT":          "9090",
	}))
	require.NoError(t, err)

	assert.Equal(t, "/srv/words.txt", cfg.WordListPath)
	require.NotNil(t, cfg.RedisConfig)
	assert.Equal(t, "redis://cache:6379/2", cfg.RedisConfig.URL)
	assert.Equal(t, 10, cfg.RedisConfig.PoolSize)
	assert.Equal(t, 9090, serverCfg.Port)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
		want string
	}{
		{"redis without url", map[string]string{"STORAGE_TYPE": factory.StorageTypeRedis}, "REDIS_URL required"},
		{"bad port", map[string]string{"PORT": "eighty"}, `invalid PORT "eighty"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := loadConfig(env(tt.vars))
			assert.ErrorContains(t, err, tt.want)
		})
	}
}
