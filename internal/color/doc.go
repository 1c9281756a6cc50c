// Package color renders scheme palettes for the terminal.
//
// Each palette slot is printed as a block filled with the slot's colour and
// labelled with its hex value. The label foreground is black or white
// depending on the colour's lightness so it stays readable on every slot.
//
// Output degrades with the terminal: lipgloss detects the colour profile
// (TrueColor, 256 colours, 16 colours or none, honouring NO_COLOR) and the
// hex and rgb() text remain when colour is unavailable.
package color
