package keyboard

import (
	"fmt"

	"github.com/iw2rmb/poke/internal/log"
)

// Target receives key actions.
type Target interface {
	Insert(text string) error
	ExecName(name string) error
}

// Key is one on-screen key. Slots are indexed by Direction.
type Key struct {
	Role     Role
	Text     [NumDirections]string
	Command  [NumDirections]string
	Hint     [NumDirections]string
	Dispatch DispatchStyle
	Hints    HintStyle
}

// Action returns what the key does in direction d.
func (k *Key) Action(d Direction) (text, command string) {
	if !d.Valid() {
		return "", ""
	}
	return k.Text[d], k.Command[d]
}

// HintAt returns the label for slot d: its hint, else its text.
func (k *Key) HintAt(d Direction) string {
	if !d.Valid() {
		return ""
	}
	if k.Hint[d] != "" {
		return k.Hint[d]
	}
	return k.Text[d]
}

// Label is the tap hint.
func (k *Key) Label() string { return k.HintAt(Tap) }

// Resolve maps a swipe angle through the key's dispatch style.
func (k *Key) Resolve(angle float64) Direction { return k.Dispatch.Dispatch(angle) }

// Activate inserts the slot's text, then runs its command. A slot with
// neither does nothing.
func (k *Key) Activate(d Direction, t Target) error {
	if !d.Valid() {
		return fmt.Errorf("activate %s key: invalid direction %d", k.Role, int(d))
	}
	text, command := k.Action(d)
	log.Debug(log.CatKeyboard, "activate", "role", k.Role, "dir", d, "text", text, "command", command)

	if text != "" {
		if err := t.Insert(text); err != nil {
			return err
		}
	}
	if command != "" {
		if err := t.ExecName(command); err != nil {
			return err
		}
	}
	return nil
}

// Swipe resolves angle and activates the resulting slot.
func (k *Key) Swipe(angle float64, t Target) error {
	return k.Activate(k.Resolve(angle), t)
}
