package ui

import "strings"

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Title, Muted, Accent, Success, Error, Pending string
	BoxUnchecked, BoxChecked, BoxTrashed          string
	CornerTL, CornerTR, CornerBL, CornerBR        string
	H, V                                          string
	SymDone, SymUnchecked, SymTrash               string
}

var current Theme

func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Title: "\033[95m", // bright magenta
			Muted: fgGray, Accent: "\033[96m",
			Success: fgGreen, Error: fgRed, Pending: "\033[93m",
			BoxUnchecked: "◻", BoxChecked: "◼", BoxTrashed: "◩",
			CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
			H: "─", V: "│",
			SymDone: "✔", SymUnchecked: "•", SymTrash: "✖",
		}
	case "mono":
		disableColor = true
		current = Theme{
			Title: "", Muted: "", Accent: "", Error: "", Success: "", Pending: "",
			BoxUnchecked: "[ ]", BoxChecked: "[x]", BoxTrashed: "[~]",
			CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
			H: "-", V: "|",
			SymDone: "x", SymUnchecked: "-", SymTrash: "~",
		}
	default: // classic
		current = Theme{
			Title: bold, Muted: fgGray, Accent: fgBlue,
			Success: fgGreen, Error: fgRed, Pending: fgYellow,
			BoxUnchecked: "☐", BoxChecked: "☑", BoxTrashed: "⊠",
			CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
			H: "─", V: "│",
			SymDone: "✔", SymUnchecked: "•", SymTrash: "✖",
		}
	}
}

// UseASCII swaps the current theme's glyphs for plain ASCII while keeping
// its palette. Unlike the mono theme, colors stay on.
func UseASCII() {
	current.BoxUnchecked, current.BoxChecked, current.BoxTrashed = "[ ]", "[x]", "[~]"
	current.CornerTL, current.CornerTR, current.CornerBL, current.CornerBR = "+", "+", "+", "+"
	current.H, current.V = "-", "|"
	current.SymDone, current.SymUnchecked, current.SymTrash = "x", "-", "~"
}

// Expose what renderers need
func Current() Theme { return current }
