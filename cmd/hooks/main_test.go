package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type hookOutput struct {
	HookSpecificOutput struct {
		PermissionDecision       string `json:"permissionDecision"`
		PermissionDecisionReason string `json:"permissionDecisionReason"`
	} `json:"hookSpecificOutput"`
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()

	assert.Equal(t, "claude-hooks", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	commandNames := make([]string, 0, len(cmd.Commands()))
	for _, c := range cmd.Commands() {
		commandNames = append(commandNames, c.Name())
	}
	assert.ElementsMatch(t, []string{"pre-tool-use", "rules"}, commandNames)
}

func TestNewPreToolUseCmd(t *testing.T) {
	cmd := newPreToolUseCmd()

	assert.Equal(t, "pre-tool-use", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.NotNil(t, cmd.RunE)
	assert.NotNil(t, cmd.Flags().Lookup("policy"))
	assert.NotNil(t, cmd.Flags().Lookup("log-file"))
	assert.NotNil(t, cmd.Flags().Lookup("log-level"))

	err := cmd.Args(cmd, []string{})
	assert.NoError(t, err)

	err = cmd.Args(cmd, []string{"extra"})
	assert.Error(t, err)
}

func TestPreToolUseCmd_Execute(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		input        string
		wantDecision string
		wantReason   string
		wantContains string
		wantStderr   string
	}{
		{
			name:         "ts-ignore is denied",
			input:        `{"tool_name":"Write","tool_input":{"file_path":"/tmp/test.ts","content":"// @ts-ignore\nconst x: string = 42;"}}`,
			wantDecision: "deny",
			wantContains: "TypeScript @ts-ignore comment found",
			wantStderr:   "Rule bypass detected: TypeScript @ts-ignore comment found\n",
		},
		{
			name:         "markdown is exempt",
			args:         []string{"--policy", "eslint-bypass"},
			input:        `{"tool_name":"Write","tool_input":{"file_path":"/tmp/README.md","content":"// @ts-ignore example"}}`,
			wantDecision: "allow",
			wantReason:   "No content to check",
		},
		{
			name:         "jest.mock in test file is denied",
			args:         []string{"--policy", "jest-mock"},
			input:        `{"tool_name":"Write","tool_input":{"file_path":"/tmp/api.test.ts","content":"jest.mock(\"axios\");"}}`,
			wantDecision: "deny",
			wantContains: "jest.mock() module mocking found",
			wantStderr:   "Jest mocking detected: jest.mock() module mocking found\n",
		},
		{
			name:         "invalid JSON is denied without error",
			input:        `this is not json`,
			wantDecision: "deny",
			wantReason:   "Invalid JSON input provided",
		},
		{
			name:         "unsupported tool with jest policy",
			args:         []string{"--policy", "jest-mock"},
			input:        `{"tool_name":"UnsupportedTool","tool_input":{"content":"jest.fn()"}}`,
			wantDecision: "allow",
			wantReason:   "No test content to check",
		},
		{
			name:         "Bash commands are not checked",
			input:        `{"tool_name": "Bash", "tool_input": {"command": "ls -la"}}`,
			wantDecision: "allow",
			wantReason:   "No content to check",
		},
		{
			name:         "clean source passes",
			args:         []string{"--policy", "eslint-bypass,jest-mock"},
			input:        `{"tool_name":"Edit","tool_input":{"file_path":"src/add.ts","old_string":"a","new_string":"export const add = (a: number, b: number) => a + b;"}}`,
			wantDecision: "allow",
			wantReason:   "No ESLint/TypeScript rule bypasses detected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newPreToolUseCmd()
			stdout := new(bytes.Buffer)
			stderr := new(bytes.Buffer)
			cmd.SetOut(stdout)
			cmd.SetErr(stderr)
			cmd.SetIn(strings.NewReader(tt.input))
			cmd.SetArgs(append([]string{}, tt.args...))

			err := cmd.Execute()
			require.NoError(t, err)

			var got hookOutput
			require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
			assert.Equal(t, tt.wantDecision, got.HookSpecificOutput.PermissionDecision)
			if tt.wantReason != "" {
				assert.Equal(t, tt.wantReason, got.HookSpecificOutput.PermissionDecisionReason)
			}
			if tt.wantContains != "" {
				assert.Contains(t, got.HookSpecificOutput.PermissionDecisionReason, tt.wantContains)
			}
			assert.Equal(t, tt.wantStderr, stderr.String())
		})
	}
}

func TestPreToolUseCmd_InvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown policy", args: []string{"--policy", "prettier"}},
		{name: "unknown log level", args: []string{"--log-level", "verbose"}},
		{name: "unwritable log file", args: []string{"--log-file", filepath.Join(t.TempDir(), "missing", "hooks.log")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newPreToolUseCmd()
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)
			cmd.SetIn(strings.NewReader(`{}`))
			cmd.SetArgs(append([]string{}, tt.args...))

			err := cmd.Execute()
			require.Error(t, err)
		})
	}
}

func TestPreToolUseCmd_LogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "hooks.log")

	cmd := newPreToolUseCmd()
	stdout := new(bytes.Buffer)
	cmd.SetOut(stdout)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetIn(strings.NewReader(`{"tool_name":"Write","tool_input":{"file_path":"a.ts","content":"x as any"}}`))
	cmd.SetArgs([]string{"--log-file", logPath, "--log-level", "debug"})

	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "rule matched")
	assert.Contains(t, string(data), "rule=as-any")
	assert.Contains(t, string(data), "permission=deny")
}

func TestRulesCmd(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantRules   []string
		unwantRules []string
	}{
		{
			name:      "lists every policy by default",
			wantRules: []string{"eslint-line", "as-any", "jest-fn", "mock-cleanup"},
		},
		{
			name:        "filters by policy",
			args:        []string{"--policy", "jest-mock"},
			wantRules:   []string{"jest-spyon", "mock-matchers"},
			unwantRules: []string{"ts-ignore"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newRulesCmd()
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)
			cmd.SetArgs(append([]string{}, tt.args...))

			require.NoError(t, cmd.Execute())

			out := buf.String()
			for _, id := range tt.wantRules {
				assert.Contains(t, out, id)
			}
			for _, id := range tt.unwantRules {
				assert.NotContains(t, out, id)
			}
		})
	}
}
