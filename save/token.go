package save

import (
	"errors"
	"sync"

	"github.com/zalando/go-keyring"
)

const (
	keyringService = "pinotui"
	keyringUser    = "controller-token"
)

var ErrTokenNotFound = errors.New("controller token not found")

// enforce that KeyringWrapper implements the Keyring interface
var _ keyring.Keyring = KeyringWrapper{}

type KeyringWrapper struct {
	m *sync.Mutex
}

func NewKeyringWrapper() KeyringWrapper {
	return KeyringWrapper{
		m: &sync.Mutex{},
	}
}

func (k KeyringWrapper) Set(service, user, password string) error {
	k.m.Lock()
	defer k.m.Unlock()
	return keyring.Set(service, user, password)
}

func (k KeyringWrapper) Get(service, user string) (string, error) {
	k.m.Lock()
	defer k.m.Unlock()
	return keyring.Get(service, user)
}

func (k KeyringWrapper) Delete(service, user string) error {
	k.m.Lock()
	defer k.m.Unlock()
	return keyring.Delete(service, user)
}

func (k KeyringWrapper) DeleteAll(service string) error {
	k.m.Lock()
	defer k.m.Unlock()
	return keyring.DeleteAll(service)
}

// TokenStore keeps the controller bearer token in a keyring.
type TokenStore struct {
	keyring keyring.Keyring
}

func NewTokenStore(k keyring.Keyring) TokenStore {
	return TokenStore{keyring: k}
}

func (t TokenStore) Token() (string, error) {
	token, err := t.keyring.Get(keyringService, keyringUser)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrTokenNotFound
		}
		return "", err
	}

	return token, nil
}

func (t TokenStore) SetToken(token string) error {
	return t.keyring.Set(keyringService, keyringUser, token)
}

func (t TokenStore) DeleteToken() error {
	err := t.keyring.Delete(keyringService, keyringUser)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}

	return err
}
