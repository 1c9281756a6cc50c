// Package tui provides the interactive scheme picker behind "huectl select".
//
// The picker is a Bubble Tea program built on the bubbles list component:
// installed schemes are listed with the current one preselected, "/" filters,
// enter applies the highlighted scheme and esc or q quits. When a loader is
// supplied the highlighted scheme's palette is previewed beside the list.
package tui
