package godeck

import "fmt"

// Role names a colour slot of the theme palette.
type Role string

const (
	RolePrimary        Role = "primary"
	RoleAccent         Role = "accent"
	RoleBackgroundDark Role = "background-dark"
	RoleTextLight      Role = "text-light"
	RoleTextDark       Role = "text-dark"

	// Auxiliary roles used by individual diagram motifs.
	RoleHighlight Role = "highlight"
	RoleSuccess   Role = "success"
	RoleMuted     Role = "muted"
	RoleSubtle    Role = "subtle"
)

// Theme is the fixed palette and font choice shared by every builder.
type Theme struct {
	Primary        Color
	Accent         Color
	BackgroundDark Color
	TextLight      Color
	TextDark       Color

	Highlight Color
	Success   Color
	Muted     Color
	Subtle    Color

	BodyFont string
	MonoFont string
}

// DefaultTheme is the dark-blue/orange palette of the control plane deck.
var DefaultTheme = Theme{
	Primary:        NewColor("003366"),
	Accent:         NewColor("FF6600"),
	BackgroundDark: NewColor("282C34"),
	TextLight:      NewColor("FFFFFF"),
	TextDark:       NewColor("404040"),

	Highlight: NewColor("0070C0"),
	Success:   NewColor("009600"),
	Muted:     NewColor("C8C8C8"),
	Subtle:    NewColor("DCDCDC"),

	BodyFont: "Calibri",
	MonoFont: "Courier New",
}

// Color resolves a role to its palette colour.
func (t Theme) Color(role Role) (Color, error) {
	switch role {
	case RolePrimary:
		return t.Primary, nil
	case RoleAccent:
		return t.Accent, nil
	case RoleBackgroundDark:
		return t.BackgroundDark, nil
	case RoleTextLight:
		return t.TextLight, nil
	case RoleTextDark:
		return t.TextDark, nil
	case RoleHighlight:
		return t.Highlight, nil
	case RoleSuccess:
		return t.Success, nil
	case RoleMuted:
		return t.Muted, nil
	case RoleSubtle:
		return t.Subtle, nil
	}
	return Color{}, fmt.Errorf("unknown theme role %q", role)
}

// Resolve is like Color but falls back to Primary for an unknown role.
func (t Theme) Resolve(role Role) Color {
	c, err := t.Color(role)
	if err != nil {
		return t.Primary
	}
	return c
}
