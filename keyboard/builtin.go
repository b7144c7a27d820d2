package keyboard

func def(role Role, tap string) KeyDef {
	return KeyDef{Role: role, Text: map[int]string{0: tap}}
}

func (d KeyDef) text(dir Direction, s string) KeyDef {
	d.Text = with(d.Text, dir, s)
	return d
}

func (d KeyDef) command(dir Direction, s string) KeyDef {
	d.Command = with(d.Command, dir, s)
	return d
}

func (d KeyDef) hint(dir Direction, s string) KeyDef {
	d.Hint = with(d.Hint, dir, s)
	return d
}

func with(m map[int]string, dir Direction, s string) map[int]string {
	out := make(map[int]string, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	out[int(dir)] = s
	return out
}

// sym builds a symbol key: tap plus the four diagonals, clockwise from
// up-right.
func sym(tap, ur, dr, dl, ul string) KeyDef {
	d := def(RoleSymbol, tap)
	for dir, s := range map[Direction]string{UpRight: ur, DownRight: dr, DownLeft: dl, UpLeft: ul} {
		if s != "" {
			d = d.text(dir, s)
		}
	}
	return d
}

// chars builds one key per tap text, all with the same role.
func chars(role Role, taps ...string) []KeyDef {
	out := make([]KeyDef, 0, len(taps))
	for _, t := range taps {
		out = append(out, def(role, t))
	}
	return out
}

// charSym builds a char+symbol key with symbols on up-right and down-right.
func charSym(role Role, tap, ur, dr string) KeyDef {
	d := def(role, tap)
	if ur != "" {
		d = d.text(UpRight, ur)
	}
	if dr != "" {
		d = d.text(DownRight, dr)
	}
	return d
}

func row(groups ...[]KeyDef) []KeyDef {
	var out []KeyDef
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func one(d KeyDef) []KeyDef { return []KeyDef{d} }

// lineKey is the home-row key whose left and right swipes jump to the line
// ends.
func lineKey(role Role, tap string) KeyDef {
	return def(role, tap).command(Right, "moveToEOL").command(Left, "moveToSOL")
}

func globeKey() KeyDef {
	return KeyDef{Role: RoleKeyboard}.
		command(Tap, "cycleLangBlockLayouts").hint(Tap, "\U0001F310").
		command(Up, "toggleSymBlock").
		command(Right, "cycleSymBlockLayouts").
		command(Down, "toggleCustBlock")
}

func actionKey() KeyDef {
	return KeyDef{Role: RoleKeyboard}.
		hint(Tap, "✨").
		command(Up, "hide").
		command(Right, "expandAbbreviation").
		command(Down, "evalJS")
}

// DefaultLayouts returns the built-in layouts.
func DefaultLayouts() Layouts {
	return Layouts{
		Symbol: []Layout{poke43(), textastic()},
		Lang:   []Layout{enUsQwerty(), bgBgPhonetic()},
		Custom: [][]KeyDef{chars(RoleCustom, "", "", "", "", "", "")},
	}
}

func poke43() Layout {
	return Layout{Name: LayoutPoke43, Rows: [][]KeyDef{{
		sym("0", "2", "4", "3", "1"),
		sym("5", "7", "9", "8", "6"),
		sym("+", "*", "%", "_", "-"),
		sym("=", "/", ">", "<", `\`),
		sym("&", "|", ")", "(", "~"),
		sym("#", "$", "]", "[", "^"),
		sym("@", "'", "}", "{", "`"),
		sym(`"`, "?", ".", ",", "!"),
		sym(";", ":", "", "", ""),
	}}}
}

func textastic() Layout {
	return Layout{Name: LayoutTextastic, Rows: [][]KeyDef{{
		sym("0", "2", "4", "3", "1"),
		sym("5", "7", "9", "8", "6"),
		sym(`"`, ")", "]", "[", "("),
		sym("'", "}", ">", "<", "{"),
		sym("$", "/", "`", "´", `\`),
		sym("|", "^", "£", "€", "~"),
		sym("=", "+", "*", "%", "-"),
		sym("#", "?", "&", "@", "!"),
		sym(";", ":", ".", ",", "_"),
	}}}
}

func enUsQwerty() Layout {
	const (
		sm  = RoleCharacterSpaceMove
		ed  = RoleCharacterEnterDelete
		csm = RoleCharSymSpaceMove
		ced = RoleCharSymEnterDelete
	)
	return Layout{
		Name: LayoutEnUsQwerty,
		Rows: [][]KeyDef{
			row(chars(sm, "q", "w", "e", "r", "t", "y", "u", "i"), chars(ed, "o", "p")),
			row(one(lineKey(sm, "a")), chars(sm, "s", "d", "f", "g", "h", "j"), chars(ed, "k", "l")),
			row(
				one(globeKey()),
				chars(RoleCharacterSpaceMoveWB, "z"),
				chars(sm, "x", "c", "v", "b", "n"),
				chars(RoleCharacterEnterDeleteWB, "m"),
				one(actionKey()),
			),
		},
		SymRows: [][]KeyDef{
			{
				charSym(csm, "q", "!", "1"),
				charSym(csm, "w", "@", "2"),
				charSym(csm, "e", "#", "3"),
				charSym(csm, "r", "$", "4"),
				charSym(csm, "t", "%", "5"),
				charSym(csm, "y", "^", "6"),
				charSym(csm, "u", "&", "7"),
				charSym(csm, "i", "*", "8"),
				charSym(ced, "o", "(", "9"),
				charSym(ced, "p", ")", "0"),
			},
			{
				lineKey(csm, "a"),
				charSym(csm, "s", "_", "-"),
				charSym(csm, "d", "+", "="),
				charSym(csm, "f", "{", "["),
				charSym(csm, "g", "}", "]"),
				charSym(csm, "h", ":", ";"),
				charSym(csm, "j", `"`, "'"),
				charSym(ced, "k", "|", `\`),
				def(ced, "l"),
			},
			{
				globeKey(),
				def(RoleCharSymSpaceMoveWB, "z"),
				charSym(csm, "x", "~", "`"),
				charSym(csm, "c", "<", ","),
				charSym(csm, "v", ">", "."),
				charSym(csm, "b", "?", "/"),
				def(csm, "n"),
				def(RoleCharSymEnterDeleteWB, "m"),
				actionKey(),
			},
		},
	}
}

func bgBgPhonetic() Layout {
	const (
		sm  = RoleCharacterSpaceMove
		ed  = RoleCharacterEnterDelete
		csm = RoleCharSymSpaceMove
		ced = RoleCharSymEnterDelete
	)
	return Layout{
		Name: LayoutBgBgPhonetic,
		Rows: [][]KeyDef{
			row(chars(sm, "я", "в", "е", "р", "т", "ъ", "у", "и", "о"), chars(ed, "п", "ю")),
			row(one(lineKey(sm, "а")), chars(sm, "с", "д", "ф", "г", "х", "й", "к", "л"), chars(ed, "ш", "щ")),
			row(
				one(globeKey()),
				chars(RoleCharacterSpaceMoveWB, "з"),
				chars(sm, "ь", "ц", "ж", "б"),
				one(charSym(csm, "н", "№", "")),
				chars(sm, "м"),
				chars(RoleCharacterEnterDeleteWB, "ч"),
				one(actionKey()),
			),
		},
		SymRows: [][]KeyDef{
			{
				charSym(csm, "я", "!", "1"),
				charSym(csm, "в", "@", "2"),
				charSym(csm, "е", "#", "3"),
				charSym(csm, "р", "$", "4"),
				charSym(csm, "т", "%", "5"),
				charSym(csm, "ъ", "^", "6"),
				charSym(csm, "у", "&", "7"),
				charSym(csm, "и", "*", "8"),
				charSym(csm, "о", "(", "9"),
				charSym(ced, "п", ")", "0"),
				def(ced, "ю"),
			},
			{
				lineKey(csm, "а"),
				charSym(csm, "с", "_", "-"),
				charSym(csm, "д", "+", "="),
				charSym(csm, "ф", "{", "["),
				charSym(csm, "г", "}", "]"),
				charSym(csm, "х", ":", ";"),
				charSym(csm, "й", `"`, "'"),
				charSym(csm, "к", "|", `\`),
				def(csm, "л"),
				def(ced, "ш"),
				def(ced, "щ"),
			},
			{
				globeKey(),
				def(RoleCharSymSpaceMoveWB, "з"),
				charSym(csm, "ь", "~", "`"),
				charSym(csm, "ц", "<", ","),
				charSym(csm, "ж", ">", "."),
				charSym(csm, "б", "?", "/"),
				charSym(csm, "н", "№", ""),
				def(csm, "м"),
				def(RoleCharSymEnterDeleteWB, "ч"),
				actionKey(),
			},
		},
	}
}
