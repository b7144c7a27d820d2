// Package keyboard models the gesture keyboard that drives the editor.
//
// Each key carries up to nine actions: a tap (direction 0) and eight swipe
// directions numbered clockwise from up. A swipe angle is mapped to a
// direction by the key's dispatch style. Key roles fill in the usual
// defaults, so a layout only spells out what differs.
package keyboard
