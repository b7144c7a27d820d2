package keyboard

import (
	"strings"
)

// Role selects the defaults a key is built with.
type Role uint8

const (
	RoleCharacter Role = iota
	RoleCharacterSpaceMove
	RoleCharacterSpaceMoveWB
	RoleCharacterEnterDelete
	RoleCharacterEnterDeleteWB
	RoleCharSymSpaceMove
	RoleCharSymSpaceMoveWB
	RoleCharSymEnterDelete
	RoleCharSymEnterDeleteWB
	RoleSymbol
	RoleCustom
	// RoleKeyboard keys send their commands to the keyboard, not the editor.
	RoleKeyboard
)

var roleNames = map[Role]string{
	RoleCharacter:              "character",
	RoleCharacterSpaceMove:     "character_space_move",
	RoleCharacterSpaceMoveWB:   "character_space_move_wb",
	RoleCharacterEnterDelete:   "character_enter_delete",
	RoleCharacterEnterDeleteWB: "character_enter_delete_wb",
	RoleCharSymSpaceMove:       "char_sym_space_move",
	RoleCharSymSpaceMoveWB:     "char_sym_space_move_wb",
	RoleCharSymEnterDelete:     "char_sym_enter_delete",
	RoleCharSymEnterDeleteWB:   "char_sym_enter_delete_wb",
	RoleSymbol:                 "symbol",
	RoleCustom:                 "custom",
	RoleKeyboard:               "keyboard",
}

func (r Role) String() string {
	if n, ok := roleNames[r]; ok {
		return n
	}
	return "unknown"
}

// ParseRole maps a layout name to a Role.
func ParseRole(name string) (Role, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for r, n := range roleNames {
		if n == name {
			return r, true
		}
	}
	return RoleCharacter, false
}

// styles picks dispatch and hint styles for a role when the definition
// leaves them unset.
type styles struct {
	dispatch DispatchStyle
	hints    HintStyle
}

var roleStyles = map[Role]styles{
	RoleCharSymSpaceMove:     {DispatchEightWay, HintDiagonal},
	RoleCharSymSpaceMoveWB:   {DispatchEightWay, HintDiagonal},
	RoleCharSymEnterDelete:   {DispatchEightWay, HintDiagonal},
	RoleCharSymEnterDeleteWB: {DispatchEightWay, HintDiagonal},
	RoleSymbol:               {DispatchDiagonal, HintDiagonal},
	RoleCustom:               {DispatchEightWay, HintEightWay},
}

func (r Role) styles() styles {
	if s, ok := roleStyles[r]; ok {
		return s
	}
	return styles{DispatchCross, HintCross}
}

// roleDefaults fills empty slots. Slots set by the definition win.
var roleDefaults = map[Role]func(k *Key){
	RoleCharacter:              upper,
	RoleCharacterSpaceMove:     chain(upper, spaceMove("moveForward", "moveBackward")),
	RoleCharacterSpaceMoveWB:   chain(upper, spaceMove("moveForwardWB", "moveBackwardWB")),
	RoleCharacterEnterDelete:   chain(upper, enterDelete("deleteForward", "deleteBackward")),
	RoleCharacterEnterDeleteWB: chain(upper, enterDelete("deleteForwardWB", "deleteBackwardWB")),
	RoleCharSymSpaceMove:       chain(upper, upLeftUpper, spaceMove("moveForward", "moveBackward"), fill(slotText, DownLeft, " ")),
	RoleCharSymSpaceMoveWB:     chain(upper, upLeftUpper, spaceMove("moveForwardWB", "moveBackwardWB"), fill(slotText, DownLeft, " ")),
	RoleCharSymEnterDelete:     chain(upper, upLeftUpper, enterDelete("deleteForward", "deleteBackward"), fill(slotText, DownLeft, "\n")),
	RoleCharSymEnterDeleteWB:   chain(upper, upLeftUpper, enterDelete("deleteForwardWB", "deleteBackwardWB"), fill(slotText, DownLeft, "\n")),
}

func (r Role) applyDefaults(k *Key) {
	if fn, ok := roleDefaults[r]; ok {
		fn(k)
	}
}

type slotKind uint8

const (
	slotText slotKind = iota
	slotCommand
)

func fill(kind slotKind, d Direction, v string) func(*Key) {
	return func(k *Key) {
		slots := &k.Text
		if kind == slotCommand {
			slots = &k.Command
		}
		if slots[d] == "" {
			slots[d] = v
		}
	}
}

func chain(fns ...func(*Key)) func(*Key) {
	return func(k *Key) {
		for _, fn := range fns {
			fn(k)
		}
	}
}

func upper(k *Key) {
	if k.Text[Up] == "" {
		k.Text[Up] = strings.ToUpper(k.Text[Tap])
	}
}

func upLeftUpper(k *Key) {
	if k.Text[UpLeft] == "" {
		k.Text[UpLeft] = k.Text[Up]
	}
}

func spaceMove(forward, backward string) func(*Key) {
	return chain(
		fill(slotCommand, Right, forward),
		fill(slotText, Down, " "),
		fill(slotCommand, Left, backward),
	)
}

func enterDelete(forward, backward string) func(*Key) {
	return chain(
		fill(slotCommand, Right, forward),
		fill(slotText, Down, "\n"),
		fill(slotCommand, Left, backward),
	)
}
