package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner for Swell.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Cyan-to-teal gradient, darkening like deep water
	s1 := termenv.String("                           _   _ ").Foreground(p.Color("#a5f3fc"))
	s2 := termenv.String("   ___  __      __   ___  | | | |").Foreground(p.Color("#67e8f9"))
	s3 := termenv.String("  / __| \\ \\ /\\ / /  / _ \\ | | | |").Foreground(p.Color("#22d3ee"))
	s4 := termenv.String("  \\__ \\  \\ V  V /  |  __/ | | | |").Foreground(p.Color("#06b6d4"))
	s5 := termenv.String("  |___/   \\_/\\_/    \\___| |_| |_|").Foreground(p.Color("#0891b2"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println()
}
