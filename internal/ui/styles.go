package ui

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zackbart/browse/internal/content"
)

// ── color palette ──────────────────────────────────────────────────────────────
// A dark theme built around deep indigo / slate tones.
var (
	clrAccent     = lipgloss.Color("105") // soft violet – selected bg accent
	clrAccentFg   = lipgloss.Color("231") // near-white text on accent bg
	clrDir        = lipgloss.Color("75")  // sky blue – directories
	clrExec       = lipgloss.Color("114") // sage green – scripts
	clrMedia      = lipgloss.Color("215") // warm amber – images / media
	clrDoc        = lipgloss.Color("189") // light lavender – markdown / docs
	clrConfig     = lipgloss.Color("222") // pale gold – config files
	clrMuted      = lipgloss.Color("240") // dark grey – decorative / dividers
	clrDim        = lipgloss.Color("238") // very dark grey – bar backgrounds
	clrBreadcrumb = lipgloss.Color("147") // periwinkle – path text
	clrPathSep    = lipgloss.Color("238") // dimmer – path separators
	clrHintKey    = lipgloss.Color("105") // violet – keybind keys
	clrHintText   = lipgloss.Color("244") // grey – keybind descriptions
	clrStatus     = lipgloss.Color("189") // lavender – status text
	clrBorder     = lipgloss.Color("237") // subtle – separator line
	clrTitle      = lipgloss.Color("147") // periwinkle – panel titles
	clrScrollbar  = lipgloss.Color("99")  // muted violet – scroll indicator
	clrGutter     = lipgloss.Color("242") // grey – line numbers
)

// fileCategory is a broad category for an entry used to pick colour/icon.
type fileCategory int

const (
	catDir fileCategory = iota
	catImage
	catDoc
	catCode
	catConfig
	catScript
	catOther
)

func categorise(name string, isDir bool) fileCategory {
	if isDir {
		return catDir
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg", ".jpeg", ".webp", ".gif", ".bmp", ".tiff", ".svg":
		return catImage
	case ".md", ".markdown", ".mdx", ".rst", ".txt":
		return catDoc
	case ".sh", ".bash", ".zsh", ".fish":
		return catScript
	case ".go", ".js", ".ts", ".jsx", ".tsx", ".py", ".rb", ".rs", ".c", ".cpp",
		".h", ".java", ".cs", ".php", ".swift", ".kt", ".lua", ".ex", ".exs",
		".hs", ".ml", ".mli", ".clj", ".scala", ".vim":
		return catCode
	case ".json", ".yaml", ".yml", ".toml", ".ini", ".env", ".conf", ".config",
		".xml", ".dockerignore", ".gitignore", ".editorconfig":
		return catConfig
	}
	return catOther
}

func fileIcon(cat fileCategory) string {
	switch cat {
	case catDir:
		return "▸ "
	case catImage:
		return "⬡ "
	case catDoc:
		return "≡ "
	case catCode:
		return "⟨⟩ "
	case catConfig:
		return "⚙ "
	case catScript:
		return "⚡ "
	default:
		return "· "
	}
}

func fileColor(cat fileCategory) lipgloss.Style {
	switch cat {
	case catDir:
		return lipgloss.NewStyle().Foreground(clrDir).Bold(true)
	case catImage:
		return lipgloss.NewStyle().Foreground(clrMedia)
	case catDoc:
		return lipgloss.NewStyle().Foreground(clrDoc)
	case catCode:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("231"))
	case catConfig:
		return lipgloss.NewStyle().Foreground(clrConfig)
	case catScript:
		return lipgloss.NewStyle().Foreground(clrExec)
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	}
}

// spanStyle maps a content style onto lipgloss.
func spanStyle(s content.Style) lipgloss.Style {
	st := lipgloss.NewStyle().
		Bold(s.Bold).
		Italic(s.Italic).
		Underline(s.Underline)
	if s.Foreground != "" {
		st = st.Foreground(lipgloss.Color(s.Foreground))
	}
	return st
}
