package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultSystemName — имя, которое печатается в стартовом баннере.
const DefaultSystemName = "Go Demonstration System"

// Config — все настройки демо одной "пачкой".
type Config struct {
	SystemName string
	Debug      bool
	NoColor    bool
	EnvFile    string
}

// Load читает .env (если он есть) и заполняет Config.
// envFile может быть пустым — тогда берём DEMO_ENV_FILE или ".env".
func Load(envFile string) (*Config, error) {
	// 1. Путь к .env: флаг важнее переменной окружения
	path := resolvePath(withDefault(envFile, withDefault(os.Getenv("DEMO_ENV_FILE"), ".env")))

	// 2. Файла может не быть — это нормально, тогда работаем только с окружением OS
	if err := godotenv.Load(path); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("не удалось прочитать %s: %w", path, err)
		}
		log.Printf("config: файл %s не найден, используем окружение OS", path)
	}

	// 3. Читаем переменные
	return &Config{
		SystemName: withDefault(os.Getenv("DEMO_SYSTEM_NAME"), DefaultSystemName),
		Debug:      isTrue(os.Getenv("DEMO_DEBUG")),
		NoColor:    isTrue(os.Getenv("DEMO_NO_COLOR")),
		EnvFile:    path,
	}, nil
}

func withDefault(value string, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func isTrue(value string) bool {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func resolvePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return p
	}
	if filepath.IsAbs(p) {
		return p
	}

	// Сначала рядом с бинарником, но только если файл там действительно есть
	if exe, err := os.Executable(); err == nil {
		candidate := filepath.Clean(filepath.Join(filepath.Dir(exe), p))
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	if cwd, err := os.Getwd(); err == nil {
		return filepath.Clean(filepath.Join(cwd, p))
	}

	return p
}
