// Package config содержит общие для клиента и сервера настройки окружения.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

// LoadDotEnv загружает первый найденный .env файл из списка путей.
// Возвращает путь загруженного файла или пустую строку.
func LoadDotEnv(paths ...string) (string, error) {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return "", err
		}
		return p, nil
	}
	return "", nil
}

// NormalizeEnv приводит неизвестное окружение к local.
func NormalizeEnv(env string) string {
	switch env {
	case EnvLocal, EnvDev, EnvProd:
		return env
	default:
		return EnvLocal
	}
}
