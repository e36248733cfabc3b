package shared

import "os"

type Config struct {
	AppEnv  string
	DataDir string
}

func Load() Config {
	return Config{
		AppEnv:  env("APP_ENV", "prod"),
		DataDir: env("DATA_DIR", "data"),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
