// ABOUTME: Markdown rendering of the fixed hotkey table for help output
// ABOUTME: Rendered to the terminal through glamour by the monitor and -keys

package hotkey

import "fmt"

// FormatMarkdown renders the hotkey table as a markdown document.
func FormatMarkdown() string {
	var b []byte
	b = append(b, "# Overlay hotkeys\n\n"...)
	b = append(b, "Moving and resizing only work while edit mode is on and the text is visible.\n"...)
	b = append(b, "Leaving edit mode saves the placement.\n\n"...)
	b = append(b, "| Keys | Action |\n|---|---|\n"...)
	for _, bd := range Bindings() {
		b = fmt.Appendf(b, "| `%s` | %s |\n", bd.Chord, bd.Action)
	}
	return string(b)
}
