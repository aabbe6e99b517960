// Package preferences renders the session and break length controls.
package preferences

import (
	"strconv"

	"pomodoro/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Store is the settings surface the panel edits.
type Store interface {
	Settings() model.Settings
	IncrementSession() bool
	DecrementSession() bool
	IncrementBreak() bool
	DecrementBreak() bool
}

// Panel shows both lengths with +/- buttons.
type Panel struct {
	store         Store
	onChange      func()
	content       fyne.CanvasObject
	sessionLength *widget.Label
	breakLength   *widget.Label
	sessionDec    *widget.Button
	sessionInc    *widget.Button
	breakDec      *widget.Button
	breakInc      *widget.Button
}

// New creates the panel. onChange runs after a button changed a value.
func New(store Store, onChange func()) *Panel {
	panel := &Panel{
		store:         store,
		onChange:      onChange,
		sessionLength: widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		breakLength:   widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
	}

	panel.sessionDec = widget.NewButton("-", panel.apply(store.DecrementSession))
	panel.sessionInc = widget.NewButton("+", panel.apply(store.IncrementSession))
	panel.breakDec = widget.NewButton("-", panel.apply(store.DecrementBreak))
	panel.breakInc = widget.NewButton("+", panel.apply(store.IncrementBreak))

	session := container.NewVBox(
		widget.NewLabelWithStyle("Session Length", fyne.TextAlignCenter, fyne.TextStyle{}),
		panel.sessionLength,
		container.NewHBox(layout.NewSpacer(), panel.sessionDec, panel.sessionInc, layout.NewSpacer()),
	)
	breaks := container.NewVBox(
		widget.NewLabelWithStyle("Break Length", fyne.TextAlignCenter, fyne.TextStyle{}),
		panel.breakLength,
		container.NewHBox(layout.NewSpacer(), panel.breakDec, panel.breakInc, layout.NewSpacer()),
	)
	panel.content = container.NewGridWithColumns(2, session, breaks)

	panel.Refresh()
	return panel
}

// Content returns the panel's canvas object.
func (panel *Panel) Content() fyne.CanvasObject {
	return panel.content
}

// Refresh re-reads both lengths from the store and updates button states.
func (panel *Panel) Refresh() {
	settings := panel.store.Settings()
	panel.sessionLength.SetText(strconv.Itoa(settings.SessionMinutes))
	panel.breakLength.SetText(strconv.Itoa(settings.BreakMinutes))
	setEnabled(panel.sessionDec, settings.SessionMinutes > model.MinMinutes)
	setEnabled(panel.sessionInc, settings.SessionMinutes < model.MaxMinutes)
	setEnabled(panel.breakDec, settings.BreakMinutes > model.MinMinutes)
	setEnabled(panel.breakInc, settings.BreakMinutes < model.MaxMinutes)
}

func (panel *Panel) apply(mutate func() bool) func() {
	return func() {
		if !mutate() {
			return
		}
		panel.Refresh()
		if panel.onChange != nil {
			panel.onChange()
		}
	}
}

func setEnabled(button *widget.Button, enabled bool) {
	if enabled {
		button.Enable()
		return
	}
	button.Disable()
}
