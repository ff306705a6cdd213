package icon

// Icon identifies a single UI symbol in the global registry.
type Icon int

const (
	Video Icon = iota
	Course
	Search
	Download
	Lock
	Progress
	Success
	Fail
)

// icons is the global registry mapping identifiers to their per-variant representations.
var icons = map[Icon]*iconDef{
	Video: {
		emoji:   "🎬",
		nerd:    "",
		plain:   ">",
		kaomoji: "(・ω・)",
		squares: "▶",
	},
	Course: {
		emoji:   "📚",
		nerd:    "",
		plain:   "#",
		kaomoji: "(￣～￣)",
		squares: "▣",
	},
	Search: {
		emoji:   "🔍",
		nerd:    "",
		plain:   "?",
		kaomoji: "(⌒_⌒)",
		squares: "◈",
	},
	Download: {
		emoji:   "⬇️",
		nerd:    "",
		plain:   "v",
		kaomoji: "(っ˘з˘)",
		squares: "▼",
	},
	Lock: {
		emoji:   "🔒",
		nerd:    "",
		plain:   "!",
		kaomoji: "(>_<)",
		squares: "◉",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "...",
		kaomoji: "(。-ω-)",
		squares: "◌",
	},
	Success: {
		emoji:   "✅",
		nerd:    "",
		plain:   "+",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "■",
	},
	Fail: {
		emoji:   "❌",
		nerd:    "",
		plain:   "x",
		kaomoji: "(╯°□°)╯",
		squares: "□",
	},
}
