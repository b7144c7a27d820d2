package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/poke/buffer"
	"github.com/iw2rmb/poke/keyboard"
)

var _ keyboard.Editor = (*Editor)(nil)

func TestCommand_NamesRoundTrip(t *testing.T) {
	names := []string{
		"moveBackward", "moveForward", "moveBackwardWB", "moveForwardWB",
		"moveToSOL", "moveToEOL", "moveToStart", "moveToEnd",
		"deleteBackward", "deleteForward", "deleteBackwardWB", "deleteForwardWB",
		"expandAbbreviation", "evalJS",
	}
	require.Len(t, Commands(), len(names))

	for i, name := range names {
		cmd, ok := ParseCommand(name)
		require.True(t, ok, name)
		assert.Equal(t, Command(i), cmd)
		assert.Equal(t, name, cmd.String())
	}
}

func TestParseCommand_Aliases(t *testing.T) {
	cmd, ok := ParseCommand("evalScript")
	require.True(t, ok)
	assert.Equal(t, CmdEvalScript, cmd)

	_, ok = ParseCommand("insert")
	assert.False(t, ok)
}

func TestExecName(t *testing.T) {
	ed, v := newTestEditor(t, "foo bar", 0, 0)

	require.NoError(t, ed.ExecName("moveToEnd"))
	require.NoError(t, ed.ExecName("deleteBackwardWB"))

	assert.Equal(t, "foo ", ed.Content())
	assertSynced(t, ed, v)
}

func TestExec_Unknown(t *testing.T) {
	ed, _ := newTestEditor(t, "", 0, 0)

	assert.ErrorIs(t, ed.ExecName("nope"), ErrUnknownCommand)
	assert.ErrorIs(t, ed.Exec(numCommands), ErrUnknownCommand)
	assert.Equal(t, "Command(14)", numCommands.String())
}

func TestKeyActivation_DrivesEditor(t *testing.T) {
	ed, v := newTestEditor(t, "f", 0, 1)

	var k keyboard.Key
	k.Text[keyboard.Tap] = "("
	k.Command[keyboard.Left] = "moveBackwardWB"

	require.NoError(t, k.Activate(keyboard.Tap, ed))
	assert.Equal(t, "f()", ed.Content())

	require.NoError(t, k.Activate(keyboard.Left, ed))
	assert.Equal(t, buffer.Caret{Line: 0, Col: 1}, ed.Caret())
	assertSynced(t, ed, v)
}
