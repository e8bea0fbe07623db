package views

import (
	"fmt"
	"strings"

	"postview/internal/domain"
	"postview/internal/ui/state"
)

// Heading is the title shown above the search input
const Heading = "Посты"

// Placeholder is shown in the empty search input
const Placeholder = "Поиск по заголовку"

// LoadingText follows the spinner while the fetch is pending
const LoadingText = "Загрузка..."

// ErrorPrefix precedes the failure message
const ErrorPrefix = "Ошибка"

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Display       state.DisplayMode
	Input         string // rendered text input
	Spinner       string // rendered spinner frame
	ErrorMessage  string
	Posts         []domain.Post
	Body          string // pre-rendered, scrolled cards; rendered from Posts when empty
	ScrollPercent float64
	Scrollable    bool
	Location      string
	StatusMessage string
	Help          string
	CardWidth     int
}

// Renderer handles all view rendering
type Renderer struct {
	styles     *Styles
	cardRender *CardRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:     styles,
		cardRender: NewCardRenderer(styles),
	}
}

// Styles exposes the renderer styles, e.g. for the text input
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(vs ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.styles.Title.Render(Heading))
	content.WriteString("\n")
	content.WriteString(r.styles.Input.Render(vs.Input))
	content.WriteString("\n")

	// Exactly one of loader, error or cards
	switch vs.Display {
	case state.DisplayLoader:
		content.WriteString(r.RenderLoader(vs.Spinner))
		content.WriteString("\n")
	case state.DisplayError:
		content.WriteString(r.RenderError(vs.ErrorMessage))
		content.WriteString("\n")
	case state.DisplayCards:
		body := vs.Body
		if body == "" {
			body = r.RenderCards(vs.Posts, r.CardWidth(vs))
		}
		if body != "" {
			content.WriteString(body)
			content.WriteString("\n")
		}
	}

	content.WriteString(r.renderFooter(vs))

	return r.styles.Main.Render(content.String())
}

// RenderLoader renders the loading indicator
func (r *Renderer) RenderLoader(spinner string) string {
	if spinner == "" {
		return r.styles.Loader.Render(LoadingText)
	}
	return r.styles.Loader.Render(fmt.Sprintf("%s %s", spinner, LoadingText))
}

// RenderError renders the failure message
func (r *Renderer) RenderError(message string) string {
	return r.styles.Error.Render(fmt.Sprintf("%s: %s", ErrorPrefix, message))
}

// RenderCards renders the post cards at width
func (r *Renderer) RenderCards(posts []domain.Post, width int) string {
	return r.cardRender.RenderCards(posts, width)
}

// CardWidth is the configured card width, or the terminal width minus the
// main padding
func (r *Renderer) CardWidth(vs ViewState) int {
	if vs.CardWidth > 0 {
		return vs.CardWidth
	}
	if vs.Width > 0 {
		return vs.Width - r.styles.Main.GetHorizontalFrameSize()
	}
	return 0
}

// ChromeHeight is the number of lines around the card list: main padding,
// title, input box and footer
func (r *Renderer) ChromeHeight(vs ViewState) int {
	header := strings.Count(r.styles.Title.Render(Heading), "\n") + 1 +
		strings.Count(r.styles.Input.Render(vs.Input), "\n") + 1
	footer := strings.Count(r.renderFooter(vs), "\n") + 1
	return r.styles.Main.GetVerticalFrameSize() + header + footer
}

func (r *Renderer) renderFooter(vs ViewState) string {
	var parts []string

	status := r.styles.Location.Render(vs.Location)
	if vs.Scrollable {
		status += "  " + r.styles.Scroll.Render(fmt.Sprintf("%3.f%%", vs.ScrollPercent*100))
	}
	if vs.StatusMessage != "" {
		status += "  " + r.styles.Dim.Render(vs.StatusMessage)
	}
	parts = append(parts, r.styles.Status.Render(status))

	if vs.Help != "" {
		parts = append(parts, r.styles.Help.Render(vs.Help))
	}

	return strings.Join(parts, "\n")
}
