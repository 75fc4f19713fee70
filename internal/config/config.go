package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageFile   = "file"
	StorageRedis  = "redis"
	StorageSQLite = "sqlite"
	StorageNone   = "none"

	PlayModeCLI       = "cli"
	PlayModeWebSocket = "websocket"
	PlayModeNone      = "none"
)

type Config struct {
	LogLevel  string    `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Knowledge Knowledge `yaml:"knowledge"`
	Redis     Redis     `yaml:"redis"`
	Training  Training  `yaml:"training"`
	Play      Play      `yaml:"play"`
}

type Knowledge struct {
	Storage        string `yaml:"storage" env:"KNOWLEDGE_STORAGE" env-default:"file"`
	Name           string `yaml:"name" env:"KNOWLEDGE_NAME" env-default:"cpu"`
	FilePath       string `yaml:"file-path" env:"KNOWLEDGE_FILE_PATH" env-default:"cpu_knowledge.json"`
	SQLitePath     string `yaml:"sqlite-path" env:"KNOWLEDGE_SQLITE_PATH" env-default:"knowledge.db"`
	MergeAggregate string `yaml:"merge-aggregate" env:"KNOWLEDGE_MERGE_AGGREGATE" env-default:"sum"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type Training struct {
	Rounds            int     `yaml:"rounds" env:"TRAINING_ROUNDS" env-default:"0"`
	RandomMovePercent float64 `yaml:"random-move-percent" env:"TRAINING_RANDOM_MOVE_PERCENT" env-default:"0.25"`
	Seed              int64   `yaml:"seed" env:"TRAINING_SEED" env-default:"0"`
	LogEvery          int     `yaml:"log-every" env:"TRAINING_LOG_EVERY" env-default:"500"`
}

type Play struct {
	Mode       string `yaml:"mode" env:"PLAY_MODE" env-default:"cli"`
	Difficulty int    `yaml:"difficulty" env:"PLAY_DIFFICULTY" env-default:"100"`
	SocketPort string `yaml:"socket-port" env:"PLAY_SOCKET_PORT" env-default:"9091"`
	HTTPPort   string `yaml:"http-port" env:"PLAY_HTTP_PORT" env-default:"8080"`
}

// MustLoad - loads config.yml at path, falling back to environment variables when the file is missing.
func MustLoad(path string) *Config {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			panic(fmt.Errorf("unable to load config from environment: %w", err))
		}

		return config
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
