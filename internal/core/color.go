package core

// Color is a pixel value on the monochrome display.
type Color bool

const (
	ColorOff Color = false
	ColorOn  Color = true
)
