package auth

import (
	"testing"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type change struct {
	userID string
	ok     bool
}

func TestProvider_SignInSignOut(t *testing.T) {
	p := NewProvider()
	_, ok := p.Current()
	assert.False(t, ok)

	var changes []change
	unsubscribe := p.Subscribe(func(identity Identity, ok bool) {
		// listeners may read the provider
		current, _ := p.Current()
		assert.Equal(t, identity, current)
		changes = append(changes, change{identity.UserID, ok})
	})

	identity, err := p.SignIn(signToken(t, jwt.MapClaims{"sub": "alice"}))
	require.NoError(t, err)
	assert.Equal(t, "alice", identity.UserID)

	current, ok := p.Current()
	require.True(t, ok)
	assert.Equal(t, "alice", current.UserID)

	p.SignOut()
	_, ok = p.Current()
	assert.False(t, ok)

	// a second sign-out is a no-op
	p.SignOut()

	unsubscribe()
	_, err = p.SignIn(signToken(t, jwt.MapClaims{"sub": "bob"}))
	require.NoError(t, err)

	assert.Equal(t, []change{{"alice", true}, {"", false}}, changes)
}

func TestProvider_InvalidTokenKeepsIdentity(t *testing.T) {
	p := NewProvider()
	_, err := p.SignIn(signToken(t, jwt.MapClaims{"sub": "alice"}))
	require.NoError(t, err)

	notified := false
	p.Subscribe(func(Identity, bool) { notified = true })

	_, err = p.SignIn("garbage")
	assert.Error(t, err)
	assert.False(t, notified)

	current, ok := p.Current()
	require.True(t, ok)
	assert.Equal(t, "alice", current.UserID)
}
