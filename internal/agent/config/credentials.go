// Package config содержит локальную конфигурацию CLI-клиента.
//
// Учётные данные (токен) хранятся в домашней директории пользователя:
//
//	~/.contactkeeper/credentials.json
//
// Файл пишется с правами 0600, директория с правами 0700.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Credentials — сохранённые учётные данные CLI.
type Credentials struct {
	Token string `json:"token"`
}

// DefaultPath возвращает <home>/.contactkeeper/credentials.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".contactkeeper", "credentials.json"), nil
}

// Load загружает учётные данные из path.
//
// Если файла нет, возвращает пустые Credentials без ошибки.
func Load(path string) (*Credentials, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Credentials{}, nil
		}
		return nil, err
	}
	var c Credentials
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Save сохраняет учётные данные в path, создавая директорию при необходимости.
func Save(path string, c *Credentials) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}

// Clear удаляет файл учётных данных. Отсутствие файла не ошибка.
func Clear(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
