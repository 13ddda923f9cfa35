package hooks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtensionFilter_Eligible(t *testing.T) {
	filter := ESLintBypassPolicy().Filter

	tests := []struct {
		name     string
		filePath string
		hasPath  bool
		want     bool
	}{
		{name: "no path is always eligible", want: true},
		{name: "TypeScript", filePath: "/tmp/test.ts", hasPath: true, want: true},
		{name: "TSX", filePath: "src/App.tsx", hasPath: true, want: true},
		{name: "JavaScript", filePath: "index.js", hasPath: true, want: true},
		{name: "JSX", filePath: "/app/Button.jsx", hasPath: true, want: true},
		{name: "ES module", filePath: "/app/config.mjs", hasPath: true, want: true},
		{name: "test file is still source", filePath: "/app/api.test.ts", hasPath: true, want: true},
		{name: "markdown", filePath: "/tmp/README.md", hasPath: true, want: false},
		{name: "text", filePath: "/tmp/notes.txt", hasPath: true, want: false},
		{name: "JSON", filePath: "/tmp/package.json", hasPath: true, want: false},
		{name: "CommonJS module is not covered", filePath: "/tmp/a.cjs", hasPath: true, want: false},
		{name: "no extension", filePath: "/tmp/Makefile", hasPath: true, want: false},
		{name: "extension is case-sensitive", filePath: "/tmp/A.TS", hasPath: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filter.Eligible(&Content{FilePath: tt.filePath, HasPath: tt.hasPath})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGlobFilter_Eligible(t *testing.T) {
	filter := JestMockPolicy().Filter

	tests := []struct {
		name     string
		filePath string
		hasPath  bool
		want     bool
	}{
		{name: "no path is always eligible", want: true},
		{name: "test.ts suffix", filePath: "/tmp/api.test.ts", hasPath: true, want: true},
		{name: "test.tsx suffix", filePath: "src/Button.test.tsx", hasPath: true, want: true},
		{name: "test.js suffix", filePath: "/repo/util.test.js", hasPath: true, want: true},
		{name: "spec.jsx suffix", filePath: "/repo/Form.spec.jsx", hasPath: true, want: true},
		{name: "spec.ts without directory", filePath: "service.spec.ts", hasPath: true, want: true},
		{name: "__tests__ directory", filePath: "/repo/src/__tests__/helpers.ts", hasPath: true, want: true},
		{name: "relative __tests__ directory", filePath: "__tests__/setup.js", hasPath: true, want: true},
		{name: "tests directory", filePath: "/repo/tests/integration/db.ts", hasPath: true, want: true},
		{name: "dot-relative tests directory", filePath: "./tests/db.ts", hasPath: true, want: true},
		{name: "windows separators", filePath: `C:\repo\tests\db.ts`, hasPath: true, want: true},
		{name: "source file", filePath: "/repo/src/api.ts", hasPath: true, want: false},
		{name: "test.mjs is not covered", filePath: "/repo/api.test.mjs", hasPath: true, want: false},
		{name: "tests as part of a name", filePath: "/repo/mytests/api.ts", hasPath: true, want: false},
		{name: "file named tests", filePath: "/repo/src/tests.ts", hasPath: true, want: false},
		{name: "test in the middle of a name", filePath: "/repo/src/testUtils.ts", hasPath: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filter.Eligible(&Content{FilePath: tt.filePath, HasPath: tt.hasPath})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewGlobFilter_InvalidPattern(t *testing.T) {
	assert.Panics(t, func() {
		NewGlobFilter("[unclosed")
	})
}
