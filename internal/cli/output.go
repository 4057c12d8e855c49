package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var (
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
)

// FormatTokens renders a token count compactly.
func FormatTokens(tokens int64) string {
	if tokens >= 1000 {
		return fmt.Sprintf("%.1fK", float64(tokens)/1000)
	}
	return fmt.Sprintf("%d", tokens)
}

// PrintModelTable prints the model catalog.
func PrintModelTable(chat []string, embedding []string, defaults map[string]string) {
	fmt.Printf("%-12s  %-28s  %s\n", "KIND", "MODEL", "DEFAULT")
	fmt.Println(strings.Repeat("-", 52))
	for _, m := range chat {
		printModelRow("chat", m, defaults["chat"] == m)
	}
	for _, m := range embedding {
		printModelRow("embedding", m, defaults["embedding"] == m)
	}
}

func printModelRow(kind, model string, isDefault bool) {
	marker := ""
	if isDefault {
		marker = green("✓")
	}
	fmt.Printf("%-12s  %-28s  %s\n", kind, cyan(model), marker)
}
