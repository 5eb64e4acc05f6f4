package ui

import (
	_ "embed"

	"fyne.io/fyne/v2"
)

//go:embed assets/work.png
var workPng []byte

//go:embed assets/rest.png
var restPng []byte

// Tray icons: a red dot while working, green while resting or paused.
var (
	WorkIcon = fyne.NewStaticResource("work.png", workPng)
	RestIcon = fyne.NewStaticResource("rest.png", restPng)
)
