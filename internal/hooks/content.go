package hooks

// Content is the text blob extracted from a tool invocation.
type Content struct {
	// ToolName is the tool that produced the content.
	ToolName string

	// Text is the content rules are matched against.
	Text string

	// FilePath is the target path. Only meaningful when HasPath is true.
	FilePath string

	// HasPath reports whether the invocation named a file.
	HasPath bool

	// Supported is false for tools that carry no file content.
	Supported bool
}

// IsEmpty reports whether there is nothing to scan.
func (c *Content) IsEmpty() bool {
	return !c.Supported || c.Text == ""
}

// ExtractContent converts a tool invocation into the content to scan.
// Unsupported tools and malformed tool inputs yield unsupported content.
func ExtractContent(invocation *ToolInvocation) *Content {
	if invocation == nil {
		return &Content{}
	}

	input, err := invocation.Decode()
	if err != nil {
		return &Content{ToolName: invocation.ToolName}
	}

	filePath, hasPath := input.Path()

	return &Content{
		ToolName:  invocation.ToolName,
		Text:      input.Content(),
		FilePath:  filePath,
		HasPath:   hasPath,
		Supported: true,
	}
}
