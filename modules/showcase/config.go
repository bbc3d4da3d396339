package showcase

// Config holds the page settings of the showcase module.
type Config struct {
	Title string `env:"SHOWCASE_TITLE" envDefault:"Painting Showcase"`
}
