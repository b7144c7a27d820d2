// Package abbrev finds Emmet-style abbreviations at the caret and expands
// them into markup with numbered tab-stop fields.
package abbrev
