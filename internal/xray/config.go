// Package xray reads and mutates the client list of an Xray server config.
//
// The whole document is kept as generic JSON so fields this tool does not
// care about survive a load/save round-trip. Only inbounds[0].settings.clients
// and inbounds[0].streamSettings are interpreted.
package xray

import (
	"errors"
	"fmt"

	"xrayctl/internal/storage"
	"xrayctl/pkg/jsonhelper"

	"github.com/google/uuid"
)

// ErrNoSuchClient is returned for sequence numbers outside 1..Count().
var ErrNoSuchClient = errors.New("no client with that sequence number")

type Config struct {
	store    *storage.Store
	doc      map[string]any
	settings map[string]any
	clients  []any
	stream   map[string]any
	network  string
}

func Load(store *storage.Store) (*Config, error) {
	data, err := store.ReadFile(store.XrayConfigPath())
	if err != nil {
		return nil, fmt.Errorf("read xray config: %w", err)
	}

	doc, err := jsonhelper.Decode[map[string]any](data)
	if err != nil {
		return nil, fmt.Errorf("parse xray config: %w", err)
	}

	inbounds, ok := doc["inbounds"].([]any)
	if !ok || len(inbounds) == 0 {
		return nil, errors.New("xray config: no inbounds defined")
	}

	inbound, ok := inbounds[0].(map[string]any)
	if !ok {
		return nil, errors.New("xray config: malformed first inbound")
	}

	settings, ok := inbound["settings"].(map[string]any)
	if !ok {
		return nil, errors.New("xray config: first inbound has no settings")
	}

	// A freshly generated config carries an empty client list; tolerate a
	// missing key the same way.
	clients, _ := settings["clients"].([]any)

	stream, ok := inbound["streamSettings"].(map[string]any)
	if !ok {
		return nil, errors.New("xray config: first inbound has no streamSettings")
	}

	network, _ := stream["network"].(string)

	return &Config{
		store:    store,
		doc:      doc,
		settings: settings,
		clients:  clients,
		stream:   stream,
		network:  network,
	}, nil
}

// AddClient appends a client with a fresh random UUID and persists the config.
func (c *Config) AddClient() (string, error) {
	id := uuid.NewString()

	c.clients = append(c.clients, map[string]any{"id": id})

	if err := c.save(); err != nil {
		return "", err
	}

	return id, nil
}

func (c *Config) Count() int {
	return len(c.clients)
}

// UUID returns the client id for a 1-based sequence number.
func (c *Config) UUID(number int) (string, error) {
	if number < 1 || number > len(c.clients) {
		return "", ErrNoSuchClient
	}
	return c.clientID(number - 1)
}

// UUIDs returns all client ids in list order. The position of an id plus one
// is its sequence number.
func (c *Config) UUIDs() ([]string, error) {
	ids := make([]string, 0, len(c.clients))
	for i := range c.clients {
		id, err := c.clientID(i)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Remove deletes the client with the given 1-based sequence number, persists
// the config and returns the removed client's id. The config is untouched
// when the number is out of range.
func (c *Config) Remove(number int) (string, error) {
	if number < 1 || number > len(c.clients) {
		return "", ErrNoSuchClient
	}

	id, err := c.clientID(number - 1)
	if err != nil {
		return "", err
	}

	c.clients = append(c.clients[:number-1], c.clients[number:]...)

	if err := c.save(); err != nil {
		return "", err
	}

	return id, nil
}

func (c *Config) Network() string {
	return c.network
}

// Path returns the transport URL path from the stream settings matching the
// configured network type.
func (c *Config) Path() (string, error) {
	switch c.network {
	case "ws":
		return c.streamPath("wsSettings")
	case "xhttp":
		return c.streamPath("xhttpSettings")
	default:
		return "", fmt.Errorf("unsupported network type %q", c.network)
	}
}

func (c *Config) streamPath(key string) (string, error) {
	settings, ok := c.stream[key].(map[string]any)
	if !ok {
		return "", fmt.Errorf("xray config: streamSettings has no %s", key)
	}
	path, ok := settings["path"].(string)
	if !ok {
		return "", fmt.Errorf("xray config: %s has no path", key)
	}
	return path, nil
}

func (c *Config) clientID(index int) (string, error) {
	client, ok := c.clients[index].(map[string]any)
	if !ok {
		return "", fmt.Errorf("xray config: malformed client %d", index+1)
	}
	id, ok := client["id"].(string)
	if !ok {
		return "", fmt.Errorf("xray config: client %d has no id", index+1)
	}
	return id, nil
}

func (c *Config) save() error {
	c.settings["clients"] = c.clients

	data, err := jsonhelper.EncodePretty(c.doc)
	if err != nil {
		return err
	}

	return c.store.WriteFile(c.store.XrayConfigPath(), data)
}
