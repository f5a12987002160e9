package page

// Heading is one h1-h6 element in document order.
type Heading struct {
	Level int
	Text  string
}

// Document is the immutable, extracted view of one fetched page. It is built
// once per analysis run and shared read-only by every rule.
type Document struct {
	FinalURL   string
	StatusCode int

	Title           string
	MetaDescription string
	MetaRobots      string
	Canonical       string
	Lang            string

	HasViewport  bool
	HasOpenGraph bool
	HasJSONLD    bool

	Headings []Heading

	ImageCount       int
	ImagesMissingAlt int

	InternalLinks int
	ExternalLinks int
}
