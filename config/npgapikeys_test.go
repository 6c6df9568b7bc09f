package config

import (
	"testing"

	"wallet-lifecycle-service/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNpgAPIKeys_Valid(t *testing.T) {
	keys, err := ParseNpgAPIKeys(NpgConfig{
		APIKeysJSON:   `{"PSP_A":"key-a","PSP_B":"key-b"}`,
		RequiredPsps:  []string{"PSP_A", "PSP_B"},
		DefaultAPIKey: "default-key",
	})
	require.NoError(t, err)

	key, err := keys.Get("PSP_A")
	require.NoError(t, err)
	assert.Equal(t, "key-a", key)
	assert.Equal(t, "default-key", keys.DefaultKey())
	assert.Equal(t, []string{"PSP_A", "PSP_B"}, keys.ConfiguredPsps())
}

func TestParseNpgAPIKeys_MissingRequiredPspNamed(t *testing.T) {
	_, err := ParseNpgAPIKeys(NpgConfig{
		APIKeysJSON:  `{"PSP_A":"key-a"}`,
		RequiredPsps: []string{"PSP_A", "PSP_B"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PSP_B")
	assert.NotContains(t, err.Error(), "key-a")
}

func TestParseNpgAPIKeys_MalformedJSONDoesNotLeakPayload(t *testing.T) {
	_, err := ParseNpgAPIKeys(NpgConfig{
		APIKeysJSON: `{"PSP_A":"secret-key-value"`,
	})
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "secret-key-value")
}

func TestNpgAPIKeys_Get_UnknownPsp(t *testing.T) {
	keys, err := ParseNpgAPIKeys(NpgConfig{APIKeysJSON: `{"PSP_A":"key-a"}`})
	require.NoError(t, err)

	_, err = keys.Get("PSP_Z")
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "GTW_002", appErr.Code)
	assert.Contains(t, appErr.Message, "PSP_A")
	assert.NotContains(t, appErr.Message, "key-a")
}
