package save

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func TestTokenStore(t *testing.T) {
	keyring.MockInit()

	store := NewTokenStore(NewKeyringWrapper())

	_, err := store.Token()
	require.ErrorIs(t, err, ErrTokenNotFound)

	require.NoError(t, store.SetToken("secret"))

	token, err := store.Token()
	require.NoError(t, err)
	require.Equal(t, "secret", token)

	require.NoError(t, store.DeleteToken())
	require.NoError(t, store.DeleteToken(), "deleting a missing token is not an error")

	_, err = store.Token()
	require.ErrorIs(t, err, ErrTokenNotFound)
}
