package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"postview/internal/domain"
)

// UserLabel prefixes the author id on a card
const UserLabel = "ID пользователя"

// minCardWidth keeps cards readable on very narrow terminals
const minCardWidth = 20

// CardRenderer renders post cards
type CardRenderer struct {
	styles *Styles
}

// NewCardRenderer creates a new card renderer
func NewCardRenderer(styles *Styles) *CardRenderer {
	return &CardRenderer{styles: styles}
}

// RenderCard renders a single post. width is the outer width including the
// border; 0 lets the card size to its content.
func (cr *CardRenderer) RenderCard(post domain.Post, width int) string {
	style := cr.styles.Card
	inner := 0
	if width > 0 {
		if width < minCardWidth {
			width = minCardWidth
		}
		inner = width - style.GetHorizontalFrameSize()
		style = style.Width(width - style.GetHorizontalBorderSize())
	}

	user := cr.styles.CardUser.Render(fmt.Sprintf("%s: %d", UserLabel, post.UserID))
	title := cr.styles.CardTitle.Render(wrap(post.Title, inner))
	body := cr.styles.CardBody.Render(wrap(post.Body, inner))

	return style.Render(lipgloss.JoinVertical(lipgloss.Left, user, title, body))
}

// RenderCards renders posts one below the other. No posts renders nothing.
func (cr *CardRenderer) RenderCards(posts []domain.Post, width int) string {
	if len(posts) == 0 {
		return ""
	}

	cards := make([]string, 0, len(posts))
	for _, post := range posts {
		cards = append(cards, cr.RenderCard(post, width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// PlainCards renders posts without styling, for the pager
func PlainCards(posts []domain.Post) string {
	var b strings.Builder
	for i, post := range posts {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s: %d\n%s\n%s\n", UserLabel, post.UserID, post.Title, post.Body)
	}
	return b.String()
}

// wrap soft-wraps text to width, keeping words whole where possible
func wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	return lipgloss.NewStyle().Width(width).Render(text)
}
