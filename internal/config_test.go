package internal

import (
	"testing"

	"github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"
)

func TestConfig_FromEnviron(t *testing.T) {
	req := require.New(t)
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("HOST", "localhost")
	t.Setenv("PORT", "8080")
	t.Setenv("BADGER_FILEPATH", t.TempDir())
	t.Setenv("AUTH_SECRET", "secret")
	t.Setenv("CENSORED_WORDS", "badger, snake,,")

	var config Config
	_, err := env.UnmarshalFromEnviron(&config)

	req.NoError(err)
	req.Equal(8080, config.Port)
	req.Equal(25, config.MaxWindowSize)
	req.Equal([]string{"badger", "snake"}, config.Words())
	r, err := CharacterRune(config.CharReplacement)
	req.NoError(err)
	req.Equal('*', r)
}

func TestCharacterRune(t *testing.T) {
	_, err := CharacterRune("**")
	require.Error(t, err)
}
