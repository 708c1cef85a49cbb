// Package colors contains functions to quickly and easily generate prism.Color instances by name (i.e. "White()", "Blue()", "Green()", etc).
// Each call returns a new Color, so it can be modified freely.
package colors

import "github.com/solarlune/prism"

// Transparent generates a prism.Color instance of the provided name.
func Transparent() *prism.Color {
	return prism.NewColor(0, 0, 0, 0)
}

// White generates a prism.Color instance of the provided name.
func White() *prism.Color {
	return prism.NewColor(1, 1, 1, 1)
}

// Black generates a prism.Color instance of the provided name.
func Black() *prism.Color {
	return prism.NewColor(0, 0, 0, 1)
}

// Gray generates a prism.Color instance of the provided name.
func Gray() *prism.Color {
	return prism.NewColor(0.5, 0.5, 0.5, 1)
}

// LightGray generates a prism.Color instance of the provided name.
func LightGray() *prism.Color {
	return prism.NewColor(0.8, 0.8, 0.8, 1)
}

// DarkGray generates a prism.Color instance of the provided name.
func DarkGray() *prism.Color {
	return prism.NewColor(0.2, 0.2, 0.2, 1)
}

// DarkestGray generates a prism.Color instance of the provided name.
func DarkestGray() *prism.Color {
	return prism.NewColor(0.05, 0.05, 0.05, 1)
}

// Red generates a prism.Color instance of the provided name.
func Red() *prism.Color {
	return prism.NewColor(1, 0, 0, 1)
}

// PaleRed generates a prism.Color instance of the provided name.
func PaleRed() *prism.Color {
	return prism.NewColor(0.678, 0.172, 0.384, 1)
}

// Orange generates a prism.Color instance of the provided name.
func Orange() *prism.Color {
	return prism.NewColor(1, 0.5, 0, 1)
}

// Yellow generates a prism.Color instance of the provided name.
func Yellow() *prism.Color {
	return prism.NewColor(1, 1, 0, 1)
}

// Green generates a prism.Color instance of the provided name.
func Green() *prism.Color {
	return prism.NewColor(0, 1, 0, 1)
}

// SkyBlue generates a prism.Color instance of the provided name.
func SkyBlue() *prism.Color {
	return prism.NewColor(0, 0.5, 1, 1)
}

// Turquoise generates a prism.Color instance of the provided name.
func Turquoise() *prism.Color {
	return prism.NewColor(0, 1, 1, 1)
}

// Blue generates a prism.Color instance of the provided name.
func Blue() *prism.Color {
	return prism.NewColor(0, 0, 1, 1)
}

// Pink generates a prism.Color instance of the provided name.
func Pink() *prism.Color {
	return prism.NewColor(1, 0, 1, 1)
}

// Purple generates a prism.Color instance of the provided name.
func Purple() *prism.Color {
	return prism.NewColor(0.5, 0, 1, 1)
}

// Named returns a new Color for the CSS color keyword given (i.e. "cornflowerblue"), or nil if the name isn't known.
func Named(name string) *prism.Color {
	c := prism.NewColor(1, 1, 1, 1)
	if !c.SetStyle(name) {
		return nil
	}
	return c
}
