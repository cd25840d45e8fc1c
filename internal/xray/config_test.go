package xray

import (
	"strings"
	"testing"

	"xrayctl/internal/storage"
	"xrayctl/pkg/jsonhelper"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const wsConfig = `{
    "inbounds": [
        {
            "listen": "127.0.0.1",
            "port": 8001,
            "protocol": "vmess",
            "settings": {
                "clients": [
                    {"id": "11111111-1111-4111-8111-111111111111"},
                    {"id": "22222222-2222-4222-8222-222222222222"}
                ]
            },
            "streamSettings": {
                "network": "ws",
                "wsSettings": {"path": "/secret"}
            },
            "tag": "vmess-in"
        }
    ],
    "log": {"loglevel": "warning"}
}
`

const xhttpConfig = `{
    "inbounds": [
        {
            "port": 8001,
            "protocol": "vmess",
            "settings": {"clients": []},
            "streamSettings": {
                "network": "xhttp",
                "xhttpSettings": {"path": "/hidden"}
            }
        }
    ]
}
`

func newStore(t *testing.T, content string) *storage.Store {
	t.Helper()

	store := storage.New(t.TempDir())
	require.NoError(t, store.WriteFile(store.XrayConfigPath(), []byte(content)))

	return store
}

func TestLoadMalformed(t *testing.T) {
	for name, content := range map[string]string{
		"no inbounds":       `{"inbounds": []}`,
		"no settings":       `{"inbounds": [{"port": 1}]}`,
		"no streamSettings": `{"inbounds": [{"settings": {"clients": []}}]}`,
		"not a json object": `[]`,
	} {
		t.Run(name, func(t *testing.T) {
			store := newStore(t, content)
			_, err := Load(store)
			require.Error(t, err)
		})
	}
}

func TestAddThenRemove(t *testing.T) {
	store := newStore(t, wsConfig)

	cfg, err := Load(store)
	require.NoError(t, err)
	require.Equal(t, 2, cfg.Count())

	id, err := cfg.AddClient()
	require.NoError(t, err)
	require.NoError(t, uuid.Validate(id))

	reloaded, err := Load(store)
	require.NoError(t, err)
	require.Equal(t, 3, reloaded.Count())

	got, err := reloaded.UUID(3)
	require.NoError(t, err)
	require.Equal(t, id, got)

	removed, err := reloaded.Remove(3)
	require.NoError(t, err)
	require.Equal(t, id, removed)

	reloaded, err = Load(store)
	require.NoError(t, err)
	require.Equal(t, 2, reloaded.Count())
}

func TestSequenceNumbersAreOneBasedAndStable(t *testing.T) {
	store := newStore(t, wsConfig)

	cfg, err := Load(store)
	require.NoError(t, err)

	ids, err := cfg.UUIDs()
	require.NoError(t, err)
	require.Equal(t, []string{
		"11111111-1111-4111-8111-111111111111",
		"22222222-2222-4222-8222-222222222222",
	}, ids)

	first, err := cfg.UUID(1)
	require.NoError(t, err)
	require.Equal(t, ids[0], first)

	second, err := cfg.UUID(2)
	require.NoError(t, err)
	require.Equal(t, ids[1], second)
}

func TestUUIDOutOfRange(t *testing.T) {
	store := newStore(t, wsConfig)

	cfg, err := Load(store)
	require.NoError(t, err)

	for _, number := range []int{-1, 0, 3} {
		_, err := cfg.UUID(number)
		require.ErrorIs(t, err, ErrNoSuchClient)
	}
}

func TestRemoveOutOfRangeDoesNotMutate(t *testing.T) {
	store := newStore(t, wsConfig)

	cfg, err := Load(store)
	require.NoError(t, err)

	for _, number := range []int{0, 3} {
		_, err := cfg.Remove(number)
		require.ErrorIs(t, err, ErrNoSuchClient)
	}

	require.Equal(t, 2, cfg.Count())

	data, err := store.ReadFile(store.XrayConfigPath())
	require.NoError(t, err)
	require.Equal(t, wsConfig, string(data))
}

func TestPath(t *testing.T) {
	cfg, err := Load(newStore(t, wsConfig))
	require.NoError(t, err)
	require.Equal(t, "ws", cfg.Network())

	path, err := cfg.Path()
	require.NoError(t, err)
	require.Equal(t, "/secret", path)

	cfg, err = Load(newStore(t, xhttpConfig))
	require.NoError(t, err)
	require.Equal(t, "xhttp", cfg.Network())

	path, err = cfg.Path()
	require.NoError(t, err)
	require.Equal(t, "/hidden", path)
}

func TestPathUnsupportedNetwork(t *testing.T) {
	content := strings.ReplaceAll(xhttpConfig, `"xhttp"`, `"grpc"`)

	cfg, err := Load(newStore(t, content))
	require.NoError(t, err)

	_, err = cfg.Path()
	require.Error(t, err)
}

func TestSavePreservesUnknownFields(t *testing.T) {
	store := newStore(t, wsConfig)

	cfg, err := Load(store)
	require.NoError(t, err)

	_, err = cfg.AddClient()
	require.NoError(t, err)

	data, err := store.ReadFile(store.XrayConfigPath())
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(string(data), "\n"))

	doc, err := jsonhelper.Decode[map[string]any](data)
	require.NoError(t, err)

	logSection, ok := doc["log"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "warning", logSection["loglevel"])

	inbound := doc["inbounds"].([]any)[0].(map[string]any)
	require.Equal(t, "vmess-in", inbound["tag"])
}
