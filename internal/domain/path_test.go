package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathResultErr(t *testing.T) {
	found := Found("A", "B", []Hop{{Movie: "M", Actor: "B"}})
	assert.NoError(t, found.Err())
	assert.Equal(t, 1, found.Degrees())

	reflexive := Found("A", "A", nil)
	require.NotNil(t, reflexive.Hops)
	assert.Empty(t, reflexive.Hops)
	assert.Equal(t, 0, reflexive.Degrees())

	none := NoConnection("A", "B")
	assert.ErrorIs(t, none.Err(), ErrNoConnection)
	assert.Equal(t, -1, none.Degrees())

	missing := NotFound("Nobody", "Tom Hanks", MissingFrom)
	err := missing.Err()
	assert.ErrorIs(t, err, ErrUnknownActor)
	var unknown *UnknownActorError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, []string{"Nobody"}, unknown.Names)
	assert.Equal(t, "unknown actor: Nobody", err.Error())
}

func TestMissingNames(t *testing.T) {
	assert.Equal(t, []string{"X", "Y"}, NotFound("X", "Y", MissingBoth).MissingNames())
	assert.Equal(t, []string{"Y"}, NotFound("X", "Y", MissingTo).MissingNames())
	assert.Nil(t, Found("X", "X", nil).MissingNames())
	assert.Equal(t, "no_connection", PathNoConnection.String())
	assert.Equal(t, "both", MissingBoth.String())
}
