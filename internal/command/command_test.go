package command

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Recognizes(t *testing.T) {
	p := NewParser("ladybot", "42")

	cases := []struct {
		text string
		want Action
	}{
		{"sync", ActionStart},
		{"sync now please", ActionStart},
		{"rdy", ActionJoin},
		{"ready", ActionJoin},
		{"  ready  ", ActionJoin},
		{"go", ActionTrigger},
		{"go go go", ActionTrigger},
		{"ladybot: sync add me", ActionAddRegular},
		{"ladybot, regular", ActionAddRegular},
		{"LadyBot add me", ActionAddRegular},
		{"ladybot: sync remove me", ActionRemoveRegular},
		{"ladybot remove", ActionRemoveRegular},
		{"ladybot: version", ActionVersion},
		{"ladybot: sync history", ActionHistory},
		{"<@42> sync add me", ActionAddRegular},
		{"<@!42>, remove me", ActionRemoveRegular},
		{"<@42>history", ActionHistory},
	}
	for _, tc := range cases {
		cmd, err := p.Parse("#duckberg", "scrooge", tc.text)
		require.NoError(t, err, tc.text)
		assert.Equal(t, tc.want, cmd.Action, tc.text)
		assert.Equal(t, "#duckberg", cmd.ChannelID)
		assert.Equal(t, "scrooge", cmd.Nick)
	}
}

func TestParse_Ignores(t *testing.T) {
	p := NewParser("ladybot", "42")

	for _, text := range []string{
		"",
		"synchronize the watches",
		"good morning",
		"I'm ready",
		"readyyy",
		"Sync",
		"GO",
		"ladybot: sync",
		"ladybot: hello",
		"add me",
		"<@43> add me",
	} {
		_, err := p.Parse("#duckberg", "scrooge", text)
		assert.ErrorIs(t, err, ErrNotACommand, text)
	}
}

func TestParse_RejectsMalformedIdentifiers(t *testing.T) {
	p := NewParser("ladybot", "")

	_, err := p.Parse("", "scrooge", "sync")
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))

	_, err = p.Parse("#duckberg", "", "rdy")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotACommand)
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "start", ActionStart.String())
	assert.Equal(t, "remove_regular", ActionRemoveRegular.String())
	assert.Equal(t, "none", Action(99).String())
}
