package hooks

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	// ErrInvalidJSON is returned when the input is not a single valid JSON document.
	ErrInvalidJSON = errors.New("invalid JSON")

	// ErrUnsupportedTool is returned for tools whose input carries no file content.
	ErrUnsupportedTool = errors.New("unsupported tool")
)

// Tool names that carry file content.
const (
	ToolWrite     = "Write"
	ToolEdit      = "Edit"
	ToolMultiEdit = "MultiEdit"
)

// ToolInvocation represents the PreToolUse input sent by Claude Code.
type ToolInvocation struct {
	ToolName  string          `json:"tool_name"`
	ToolInput json.RawMessage `json:"tool_input"`
}

// ToolInput is implemented by WriteInput, EditInput and MultiEditInput.
type ToolInput interface {
	// Path returns the target file path, or false if none was given.
	Path() (string, bool)

	// Content returns the text this tool call would introduce.
	Content() string
}

// WriteInput is the tool_input of the Write tool.
type WriteInput struct {
	FilePath optionalString `json:"file_path"`
	Text     optionalString `json:"content"`
}

// EditInput is the tool_input of the Edit tool.
// Only the fields that are scanned are decoded.
type EditInput struct {
	FilePath  optionalString `json:"file_path"`
	NewString optionalString `json:"new_string"`
}

// EditOperation is a single replacement inside MultiEdit.
type EditOperation struct {
	NewString optionalString `json:"new_string"`
}

// MultiEditInput is the tool_input of the MultiEdit tool.
type MultiEditInput struct {
	FilePath optionalString  `json:"file_path"`
	Edits    []EditOperation `json:"-"`
}

// UnmarshalJSON decodes the edits one by one, skipping entries that are not
// objects.
func (m *MultiEditInput) UnmarshalJSON(data []byte) error {
	var raw struct {
		FilePath optionalString  `json:"file_path"`
		Edits    json.RawMessage `json:"edits"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	m.FilePath = raw.FilePath
	m.Edits = nil

	var entries []json.RawMessage
	if err := json.Unmarshal(raw.Edits, &entries); err != nil {
		return nil
	}

	for _, entry := range entries {
		var edit EditOperation
		if err := json.Unmarshal(entry, &edit); err != nil {
			continue
		}
		m.Edits = append(m.Edits, edit)
	}

	return nil
}

// optionalString holds a JSON string field. Values of any other type are
// treated as absent instead of failing the whole document.
type optionalString struct {
	value string
	set   bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *optionalString) UnmarshalJSON(data []byte) error {
	var v *string
	if err := json.Unmarshal(data, &v); err != nil || v == nil {
		*s = optionalString{}
		return nil
	}

	*s = optionalString{value: *v, set: true}
	return nil
}

// ParseToolInvocation reads exactly one JSON document from reader.
// It returns ErrInvalidJSON if the document is not syntactically valid.
// Valid JSON of an unexpected shape yields an empty invocation.
func ParseToolInvocation(reader io.Reader) (*ToolInvocation, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read input")
	}

	if !json.Valid(data) {
		return nil, ErrInvalidJSON
	}

	var invocation ToolInvocation
	if err := json.Unmarshal(data, &invocation); err != nil {
		return &ToolInvocation{}, nil
	}

	return &invocation, nil
}

// Decode converts the raw tool_input into the variant for ToolName.
func (t *ToolInvocation) Decode() (ToolInput, error) {
	var input ToolInput

	switch t.ToolName {
	case ToolWrite:
		input = &WriteInput{}
	case ToolEdit:
		input = &EditInput{}
	case ToolMultiEdit:
		input = &MultiEditInput{}
	default:
		return nil, errors.Wrapf(ErrUnsupportedTool, "tool %q", t.ToolName)
	}

	if len(t.ToolInput) == 0 {
		return nil, errors.Wrapf(ErrUnsupportedTool, "tool %q has no tool_input", t.ToolName)
	}

	if err := json.Unmarshal(t.ToolInput, input); err != nil {
		return nil, errors.CombineErrors(
			errors.Wrapf(ErrUnsupportedTool, "tool %q has malformed tool_input", t.ToolName),
			err,
		)
	}

	return input, nil
}

// Path returns the file_path of the Write call.
func (w *WriteInput) Path() (string, bool) {
	return optionalPath(w.FilePath)
}

// Content returns the full file content being written.
func (w *WriteInput) Content() string {
	return w.Text.value
}

// Path returns the file_path of the Edit call.
func (e *EditInput) Path() (string, bool) {
	return optionalPath(e.FilePath)
}

// Content returns the replacement text. The replaced text is never scanned.
func (e *EditInput) Content() string {
	return e.NewString.value
}

// Path returns the file_path of the MultiEdit call.
func (m *MultiEditInput) Path() (string, bool) {
	return optionalPath(m.FilePath)
}

// Content joins the new_string of every edit with newlines, in order.
func (m *MultiEditInput) Content() string {
	parts := make([]string, 0, len(m.Edits))
	for _, edit := range m.Edits {
		parts = append(parts, edit.NewString.value)
	}
	return strings.Join(parts, "\n")
}

// optionalPath treats an empty file_path the same as a missing one.
func optionalPath(p optionalString) (string, bool) {
	if !p.set || p.value == "" {
		return "", false
	}
	return p.value, true
}
