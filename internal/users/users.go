// Package users manages the uuid to username mapping stored in users.json.
package users

import (
	"fmt"

	"xrayctl/internal/storage"
	"xrayctl/pkg/jsonhelper"
)

type Config struct {
	store *storage.Store
	users map[string]string
}

func Load(store *storage.Store) (*Config, error) {
	data, err := store.ReadFile(store.UsersPath())
	if err != nil {
		return nil, fmt.Errorf("read users config: %w", err)
	}

	users, err := jsonhelper.Decode[map[string]string](data)
	if err != nil {
		return nil, fmt.Errorf("parse users config: %w", err)
	}

	if users == nil {
		users = make(map[string]string)
	}

	return &Config{store: store, users: users}, nil
}

func (c *Config) Get(uuid string) (string, error) {
	username, ok := c.users[uuid]
	if !ok {
		return "", fmt.Errorf("no user with uuid %s", uuid)
	}
	return username, nil
}

// Set inserts or overwrites the username for uuid and persists the mapping.
func (c *Config) Set(uuid, username string) error {
	c.users[uuid] = username
	return c.save()
}

func (c *Config) Delete(uuid string) error {
	if _, ok := c.users[uuid]; !ok {
		return fmt.Errorf("no user with uuid %s", uuid)
	}
	delete(c.users, uuid)
	return c.save()
}

func (c *Config) Len() int {
	return len(c.users)
}

func (c *Config) save() error {
	data, err := jsonhelper.EncodePretty(c.users)
	if err != nil {
		return err
	}
	return c.store.WriteFile(c.store.UsersPath(), data)
}
