package notifications

type style struct {
	icon             string
	title            string
	foreground       string
	background       string
	borderForeground string
}

func (s Severity) style() style {
	switch s {
	case Warning:
		return style{
			icon:             "⚠",
			title:            "Warning",
			foreground:       "#e0af68",
			background:       "#2e2a1f",
			borderForeground: "#e0af68",
		}
	case Error:
		return style{
			icon:             "✕",
			title:            "Error",
			foreground:       "#f7768e",
			background:       "#2d202a",
			borderForeground: "#f7768e",
		}
	default:
		return style{
			icon:             "🔔",
			title:            "Info",
			foreground:       "#7aa2f7",
			background:       "#1f2335",
			borderForeground: "#7aa2f7",
		}
	}
}
