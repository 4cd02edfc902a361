package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
)

const helpWidth = 52

// helpMarkdown lists the bindings of every mode as markdown
func helpMarkdown(keys keyMap, noun string) string {
	var b strings.Builder
	b.WriteString("# Keyboard shortcuts\n\n")
	b.WriteString("| Key | Action |\n|---|---|\n")
	for _, binding := range []struct {
		keys, action string
	}{
		{keys.Prev.Help().Key, "Previous " + strings.ToLower(noun)},
		{keys.Next.Help().Key, "Next " + strings.ToLower(noun)},
		{keys.Assign.Help().Key, "Assign the current " + strings.ToLower(noun)},
		{keys.Quit.Help().Key, "Save results and quit"},
		{keys.Help.Help().Key, "Toggle this help"},
		{"ctrl+c", "Save results and quit"},
	} {
		fmt.Fprintf(&b, "| `%s` | %s |\n", binding.keys, binding.action)
	}
	b.WriteString("\n## Assign dialog\n\n")
	b.WriteString("- `enter` on the first field moves to the price\n")
	b.WriteString("- `enter` with an empty or skip word clears the assignment\n")
	b.WriteString("- `tab` switches fields, `esc` cancels\n")
	return b.String()
}

// renderHelp renders the help markdown once, falling back to the wrapped
// raw text
func renderHelp(markdown string, width int) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return wordwrap.String(markdown, width)
	}
	rendered, err := renderer.Render(markdown)
	if err != nil {
		return wordwrap.String(markdown, width)
	}
	return strings.TrimSpace(rendered)
}
