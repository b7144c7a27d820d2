// Package field parses tab-stop fields out of expanded snippets.
//
// A field is written as $N, ${N} or ${N:placeholder}. Parse strips the field
// syntax, keeps placeholder text in place, and reports where each field
// landed in the cleaned string. Mark is the inverse.
//
// Locations and lengths are rune offsets.
package field
