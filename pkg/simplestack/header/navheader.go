package header

import "image"

// BackLabel is the message ID of the back button label.
const BackLabel = "Back"

// NavHeader is a custom header: a back button followed by a centered title
// announced as a heading.
type NavHeader struct {
	Icons *IconCache // nil renders the back button without a glyph
}

func (h NavHeader) Render(props Props) Element {
	label := props.BackLabel
	if label == "" {
		label = BackLabel
	}

	return Element{
		Title:      props.Title,
		Role:       RoleHeader,
		TitleAlign: TextAlignCenter,
		Theme:      props.Theme,
		Back:       NewBackButton(label, h.backIcon(props.Theme), props.OnBack),
	}
}

func (h NavHeader) backIcon(theme Theme) *image.RGBA {
	if h.Icons == nil || theme.BackIconSize <= 0 {
		return nil
	}
	icon, err := h.Icons.BackIcon(theme.BackIconSize, theme.TitleColor)
	if err != nil {
		return nil
	}
	return icon
}
