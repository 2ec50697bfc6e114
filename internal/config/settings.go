// internal/config/settings.go
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultSettingsPath: файл настроек, который ищется рядом с бинарником.
const DefaultSettingsPath = "settings.yaml"

// Settings: параметры запуска. Игровой баланс сюда намеренно не входит.
type Settings struct {
	Seed        int64   `yaml:"seed"`         // 0: сид от текущего времени
	Mute        bool    `yaml:"mute"`         // Отключить звук
	Volume      float64 `yaml:"volume"`       // Общая громкость 0..1
	KeepOpen    bool    `yaml:"keep_open"`    // Не закрывать окно после конца игры
	LogLevel    string  `yaml:"log_level"`    // debug, info, warn, error
	LogPretty   bool    `yaml:"log_pretty"`   // Человекочитаемый вывод логов
	WindowScale float64 `yaml:"window_scale"` // Масштаб окна относительно игрового поля
}

// DefaultSettings возвращает настройки по умолчанию.
func DefaultSettings() Settings {
	return Settings{
		Volume:      0.6,
		LogLevel:    "info",
		WindowScale: 1.0,
	}
}

// LoadSettings читает YAML-файл поверх значений по умолчанию.
// Отсутствующий файл не считается ошибкой.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	return s.normalized(), nil
}

// ParseFlags загружает файл настроек и применяет поверх него флаги командной строки.
func ParseFlags(fset *flag.FlagSet, args []string) (Settings, error) {
	path := fset.String("settings", DefaultSettingsPath, "path to the YAML settings file")
	seed := fset.Int64("seed", 0, "random seed (0 = time based)")
	mute := fset.Bool("mute", false, "disable sound effects")
	volume := fset.Float64("volume", -1, "master volume 0..1")
	keepOpen := fset.Bool("keep-open", false, "keep the window open after game over")
	logLevel := fset.String("log-level", "", "log level: debug, info, warn, error")
	logPretty := fset.Bool("log-pretty", false, "human readable console logs")
	if err := fset.Parse(args); err != nil {
		return Settings{}, err
	}

	s, err := LoadSettings(*path)
	if err != nil {
		return s, err
	}

	// Флаги перекрывают файл только если заданы явно
	fset.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			s.Seed = *seed
		case "mute":
			s.Mute = *mute
		case "volume":
			s.Volume = *volume
		case "keep-open":
			s.KeepOpen = *keepOpen
		case "log-level":
			s.LogLevel = *logLevel
		case "log-pretty":
			s.LogPretty = *logPretty
		}
	})
	return s.normalized(), nil
}

func (s Settings) normalized() Settings {
	if s.Volume < 0 {
		s.Volume = 0
	} else if s.Volume > 1 {
		s.Volume = 1
	}
	if s.WindowScale <= 0 {
		s.WindowScale = 1.0
	}
	if s.LogLevel == "" {
		s.LogLevel = "info"
	}
	return s
}
