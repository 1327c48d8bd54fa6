package contour

// DefaultTitle labels engines built from in-memory grids.
const DefaultTitle = "Default"

// Option configures an Engine.
type Option func(*Engine)

// WithTitle sets the display title (the loader derives it from the file name).
func WithTitle(title string) Option {
	return func(e *Engine) { e.title = title }
}

// WithLabel sets the display label of one parameter. Unlabelled parameters
// are labelled with their name.
func WithLabel(name, label string) Option {
	return func(e *Engine) { e.labels[name] = label }
}
