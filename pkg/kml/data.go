package kml

// Snippet is a short feature description. Its entire inner text is the
// payload, so the decoder captures it verbatim into Content instead of
// dispatching on child elements. <linkSnippet> resolves to this same kind.
type Snippet struct {
	MaxLines *int   `kml:"maxLines,attr"`
	Content  string `kml:",content"`
}

func (*Snippet) isElement() {}

// ExtendedData carries untyped and schema-typed custom data on a feature.
type ExtendedData struct {
	Data       []*Data       `kml:"Data"`
	SchemaData []*SchemaData `kml:"SchemaData"`
}

func (*ExtendedData) isElement() {}

// Data is a single named untyped value.
type Data struct {
	Name        string  `kml:"name,attr"`
	DisplayName *string `kml:"displayName"`
	Value       *string `kml:"value"`
}

func (*Data) isElement() {}

// SchemaData groups SimpleData values under a schema reference.
type SchemaData struct {
	SchemaURL  string        `kml:"schemaUrl,attr"`
	SimpleData []*SimpleData `kml:"SimpleData"`
}

func (*SchemaData) isElement() {}

// SimpleData is one schema-typed value. Like Snippet, its whole inner text
// is the payload and is captured directly into Content.
type SimpleData struct {
	Name    string `kml:"name,attr"`
	Content string `kml:",content"`
}

func (*SimpleData) isElement() {}

// Schema declares a custom data schema for SchemaData values.
type Schema struct {
	Name   string         `kml:"name,attr"`
	ID     string         `kml:"id,attr"`
	Fields []*SimpleField `kml:"SimpleField"`
}

func (*Schema) isElement() {}

// SimpleField declares one field of a Schema.
type SimpleField struct {
	Type        string  `kml:"type,attr"`
	Name        string  `kml:"name,attr"`
	DisplayName *string `kml:"displayName"`
}

func (*SimpleField) isElement() {}
