package cmd

// ListingDirective is the only directive this plugin provides.
const ListingDirective = "listing"

type PluginSpec struct {
	Name       string          `json:"name"`
	Directives []DirectiveSpec `json:"directives"`
}

type DirectiveSpec struct {
	Name    string                `json:"name"`
	Doc     string                `json:"doc"`
	Arg     map[string]any        `json:"arg"`
	Options map[string]OptionSpec `json:"options"`
}

type OptionSpec struct {
	Type string `json:"type"`
	Doc  string `json:"doc"`
}

func pluginSpec() PluginSpec {
	return PluginSpec{
		Name: "A document listing",
		Directives: []DirectiveSpec{
			{
				Name:    ListingDirective,
				Doc:     "A listing of documents as cards, sorted by date.",
				Arg:     map[string]any{},
				Options: map[string]OptionSpec{
					"number": {
						Type: "int",
						Doc:  "The number of posts to include (default: 0, or all posts)",
					},
				},
			},
		},
	}
}
