package tui

type errorOverlayModel struct {
	message string
	hotKeys string
}

func (m errorOverlayModel) View() string {
	hotKeys := m.hotKeys
	if hotKeys == "" {
		hotKeys = "enter / esc: close"
	}
	content := errorStyle.Render("Error") + "\n\n" + m.message + "\n\n" + helpStyle.Render(hotKeys)
	return overlayBoxStyle.Render(content)
}
