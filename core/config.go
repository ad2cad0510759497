package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage engines
const (
	EngineMemory   = "memory"
	EngineSQLite   = "sqlite"
	EnginePostgres = "postgres"
	EngineRedis    = "redis"
)

type StorageConfig struct {
	Engine    string
	DSN       string
	RedisAddr string
	KeyPrefix string
}

type Config struct {
	AppName      string
	Env          string
	Build        string
	Debug        bool
	TestMode     bool
	RollbarToken string
	Metrics      bool
	Storage      StorageConfig
}

// NewConfig reads the configuration from the environment.
// ENV selects the environment (DEV by default) and the prefix of the variables, eg. DEV_STORAGE_ENGINE.
// config/.env.<env> is loaded first when it exists.
func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "Portal")
	conf.SetDefault("build", "dev")
	conf.SetDefault("rollbarToken", "")
	conf.SetDefault("metrics", false)
	conf.SetDefault("storage.engine", EngineSQLite)
	conf.SetDefault("storage.dsn", "portal.db")
	conf.SetDefault("storage.redisAddr", "localhost:6379")
	conf.SetDefault("storage.keyPrefix", "")

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		conf.SetDefault("testMode", true)
		conf.SetDefault("storage.engine", EngineMemory)
	}
	conf.SetEnvPrefix(env)
	conf.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	return &Config{
		AppName:      conf.GetString("appName"),
		Env:          env,
		Build:        conf.GetString("build"),
		Debug:        conf.GetBool("debug"),
		TestMode:     conf.GetBool("testMode"),
		RollbarToken: conf.GetString("rollbarToken"),
		Metrics:      conf.GetBool("metrics"),
		Storage: StorageConfig{
			Engine:    CleanString(conf.GetString("storage.engine"), true /* lower */),
			DSN:       conf.GetString("storage.dsn"),
			RedisAddr: conf.GetString("storage.redisAddr"),
			KeyPrefix: conf.GetString("storage.keyPrefix"),
		},
	}
}
