package schema

// Built-in block types. Adding a block type = adding one entry here and
// listing it in the default registry below. They are shared by the default
// registry and never handed out directly; see Builtin.
var (
	paragraph = &Descriptor{
		TagName:      "p",
		ValidParents: []string{"li"},
		RootAllowed:  true,
		Editable:     true,
		Insertable:   true,
	}

	blockQuote = &Descriptor{
		TagName:     "blockquote",
		RootAllowed: true,
		Insertable:  true,
		Children:    []string{"p"},
	}

	orderedList = &Descriptor{
		TagName:     "ol",
		RootAllowed: true,
		Insertable:  true,
		Children:    []string{"li"},
	}

	unorderedList = &Descriptor{
		TagName:     "ul",
		RootAllowed: true,
		Insertable:  true,
		Children:    []string{"li"},
	}

	listItem = &Descriptor{
		TagName:        "li",
		ValidParents:   []string{"ol", "ul"},
		Editable:       true,
		EnterCreateTag: "li",
	}

	definitionList = &Descriptor{
		TagName:     "dl",
		RootAllowed: true,
		Insertable:  true,
		Children:    []string{"dt", "dd"},
	}

	definitionTitle = &Descriptor{
		TagName:        "dt",
		ValidParents:   []string{"dl"},
		Editable:       true,
		EnterCreateTag: "dd",
	}

	definitionBody = &Descriptor{
		TagName:        "dd",
		ValidParents:   []string{"dl"},
		Editable:       true,
		EnterCreateTag: "dt",
	}

	heading1 = heading("h1")
	heading2 = heading("h2")
	heading3 = heading("h3")
	heading4 = heading("h4")
	heading5 = heading("h5")
	heading6 = heading("h6")
)

func heading(tag string) *Descriptor {
	return &Descriptor{
		TagName:     tag,
		RootAllowed: true,
		Insertable:  true,
		Editable:    true,
	}
}

var defaultRegistry = MustRegistry(
	blockQuote,
	definitionBody,
	definitionList,
	definitionTitle,
	heading1,
	heading2,
	heading3,
	heading4,
	heading5,
	heading6,
	listItem,
	orderedList,
	paragraph,
	unorderedList,
)

// Default returns the shared built-in registry. It must not be modified.
func Default() *Registry {
	return defaultRegistry
}

// Builtin returns a copy of the built-in descriptor for tag, or nil. The copy
// may be changed and registered freely.
func Builtin(tag string) *Descriptor {
	d := defaultRegistry.Lookup(tag)
	if d == nil {
		return nil
	}
	return d.Clone()
}
