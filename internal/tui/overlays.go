package tui

type confirmModel struct {
	id    int64
	label string
}

func (m confirmModel) View() string {
	content := "Discard \"" + m.label + "\" without sending it?\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := errorStyle.Render("Error") + "\n\n" + m.message + "\n\nenter / esc close"
	return overlayBoxStyle.Render(content)
}
