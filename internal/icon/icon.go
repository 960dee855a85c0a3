// Package icon maps application display names to glyphs via ordered
// substring matching.
package icon

import "strings"

// Mapping pairs a substring pattern with the glyph shown for matching names.
type Mapping struct {
	Pattern string
	Glyph   string
}

// DefaultGlyph is shown when no pattern matches a name.
const DefaultGlyph = "📱"

// builtin is scanned top to bottom and the first containment match wins, so
// ordering is load-bearing; do NOT reorder entries.
var builtin = []Mapping{
	// Browsers
	{"Safari", "🌐"},
	{"Firefox", "🦊"},
	{"Chrome", "🌐"},
	{"Edge", "🌐"},
	{"Microsoft Edge", "🌐"},
	{"Arc", "🌍"},

	// Terminals
	{"Terminal", "💻"},
	{"iTerm", "💻"},
	{"iTerm2", "💻"},
	{"Warp", "🚀"},
	{"kitty", "🐱"},
	{"Ghostty", "👻"},

	// System utilities
	{"Finder", "📁"},
	{"System Settings", "⚙️"},
	{"Activity Monitor", "📊"},
	{"Memory Diag", "🧠"},
	{"App Store", "🛍️"},
	{"Font Book", "🔤"},
	{"Keychain", "🔑"},
	{"Paste", "📋"},
	{"Magnet", "🧲"},
	{"Windsurf", "🏄"},
	{"keymapp", "⌨️"},

	// Productivity & development
	{"Visual Studio Code", "💻"},
	{"Xcode", "🛠️"},
	{"Cursor", "📝"},
	{"Rancher Desktop", "🐮"},
	{"Docker", "🐳"},
	{"Postgres", "🐘"},
	{"DB Browser for SQLite", "🗄️"},
	{"pgAdmin", "🐘"},
	{"Lens", "🔍"},
	{"Authy", "🔐"},
	{"1Password", "🔐"},
	{"Github", "🐙"},
	{"HubAI", "🧠"},
	{"Repo Prompt", "💬"},

	// Creative apps
	{"Final Cut Pro", "🎬"},
	{"iMovie", "🎥"},
	{"GarageBand", "🎸"},
	{"Numbers", "🔢"},
	{"Pages", "📄"},
	{"Keynote", "📊"},
	{"Insta360", "📸"},

	// Communication
	{"Mail", "✉️"},
	{"Messages", "💬"},
	{"Slack", "💬"},
	{"Discord", "💬"},
	{"Klack", "⌨️"},
	{"Zoom", "🎦"},
	{"zoom.us", "🎦"},
	{"FaceTime", "📹"},
	{"Claude", "🧠"},
	{"Notion", "📝"},
	{"Copilot", "🤖"},

	// Media
	{"Music", "🎵"},
	{"Spotify", "🎵"},
	{"Photos", "🖼️"},
	{"Preview", "👁️"},
	{"Books", "📚"},

	// Utilities
	{"Calendar", "📅"},
	{"Notes", "📝"},
	{"Calculator", "🧮"},
	{"Maps", "🗺️"},
	{"Reminders", "📋"},
	{"Siri", "🔍"},
	{"TextEdit", "📄"},
	{"TestFlight", "✈️"},

	// VPN & security
	{"ExpressVPN", "🔒"},
	{"AWS VPN Client", "🔒"},
	{"VPN", "🔒"},
}

// Resolver looks up glyphs for application names, consulting user overrides
// ahead of the built-in table.
type Resolver struct {
	table []Mapping
}

// NewResolver builds a Resolver. Overrides take priority over the built-in
// table; the built-in ordering is never disturbed.
func NewResolver(overrides []Mapping) *Resolver {
	table := make([]Mapping, 0, len(overrides)+len(builtin))
	table = append(table, overrides...)
	table = append(table, builtin...)
	return &Resolver{table: table}
}

// Resolve returns the glyph for name. The first entry whose pattern occurs
// inside name wins; unmatched names get DefaultGlyph.
func (r *Resolver) Resolve(name string) string {
	for _, m := range r.table {
		if strings.Contains(name, m.Pattern) {
			return m.Glyph
		}
	}
	return DefaultGlyph
}

var defaultResolver = &Resolver{table: builtin}

// Resolve looks up name against the built-in table only.
func Resolve(name string) string {
	return defaultResolver.Resolve(name)
}
