package hooks

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
)

// HookResponse is the JSON document written to stdout.
type HookResponse struct {
	HookSpecificOutput *Decision `json:"hookSpecificOutput"`
}

// Run reads one tool invocation from in, writes the verdict to out and one
// diagnostic line per violation to errOut.
//
// Every input, including malformed JSON, produces a verdict. Claude Code
// treats a failing hook process as an infrastructure error, so an error is
// returned only when the verdict itself cannot be written.
func (g *Gate) Run(in io.Reader, out, errOut io.Writer) (*Verdict, error) {
	var verdict *Verdict

	invocation, err := ParseToolInvocation(in)
	if err != nil {
		g.log.Error("failed to parse tool input", "error", err)
		verdict = InvalidInput()
	} else {
		verdict = g.Evaluate(invocation)
	}

	if err := WriteResponse(out, verdict.Decision); err != nil {
		return verdict, err
	}

	for _, result := range verdict.Violations() {
		for _, v := range result.Violations {
			// Diagnostics are best effort; the verdict was already written.
			_, _ = fmt.Fprintf(errOut, "%s detected: %s\n", result.Domain, v.Message)
		}
	}

	return verdict, nil
}

// WriteResponse serializes decision as a hook response followed by a newline.
func WriteResponse(w io.Writer, decision *Decision) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(HookResponse{HookSpecificOutput: decision}); err != nil {
		return errors.Wrap(err, "failed to write hook response")
	}

	return nil
}
