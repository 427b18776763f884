package topics

// Renderer formats topic content for display
type Renderer interface {
	// Render takes raw content and its format (file extension) and returns
	// the formatted output
	Render(content string, format string) string
}

// PlainRenderer outputs content as-is without any formatting
type PlainRenderer struct{}

// Render returns the content unchanged
func (r *PlainRenderer) Render(content string, format string) string {
	return content
}
