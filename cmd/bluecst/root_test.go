package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/akrennmair/bluecst/parser"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	color.NoColor = true

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(append([]string{}, args...))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootFormats(t *testing.T) {
	source := writeFile(t, "main.blue", "int x; procedure main ( void ) { }")

	testData := []struct {
		Name     string
		Args     []string
		Contains []string
	}{
		{
			Name:     "text",
			Args:     []string{source},
			Contains: []string{"int x ;\n  main ( void ) { }\n"},
		},
		{
			Name:     "yaml",
			Args:     []string{"--format", "yaml", source},
			Contains: []string{"text: int", "children:", "text: main"},
		},
		{
			Name:     "spew",
			Args:     []string{"-f", "spew", source},
			Contains: []string{"parser.Node", "main"},
		},
		{
			Name:     "tokens",
			Args:     []string{"-f", "tokens", source},
			Contains: []string{"1\tidentifier\t\"int\"", "1\t';'\t\";\"", "1\tEOF\tEOF"},
		},
	}

	for _, tt := range testData {
		t.Run(tt.Name, func(t *testing.T) {
			stdout, stderr, err := execute(t, tt.Args...)
			require.NoError(t, err)
			assert.Empty(t, stderr)
			for _, s := range tt.Contains {
				assert.Contains(t, stdout, s)
			}
		})
	}
}

func TestRootOutputFile(t *testing.T) {
	source := writeFile(t, "main.blue", "char c;")
	output := filepath.Join(t.TempDir(), "out.txt")

	stdout, _, err := execute(t, "-o", output, source)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "char c ;\n", string(data))
}

func TestRootTrace(t *testing.T) {
	source := writeFile(t, "main.blue", "procedure main (void) { while (TRUE) { } }")

	_, stderr, err := execute(t, "--trace", source)
	require.NoError(t, err)
	assert.Contains(t, stderr, "procedure main at line 1")
	assert.Contains(t, stderr, "while statement at line 1")
}

func TestRootConfigFile(t *testing.T) {
	source := writeFile(t, "main.blue", "int x;")
	cfg := writeFile(t, "bluecst.toml", "format = \"tokens\"\n")

	stdout, _, err := execute(t, "--config", cfg, source)
	require.NoError(t, err)
	assert.Contains(t, stdout, "1\tidentifier\t\"x\"")

	stdout, _, err = execute(t, "--config", cfg, "-f", "text", source)
	require.NoError(t, err)
	assert.Equal(t, "int x ;\n", stdout)
}

func TestRootErrors(t *testing.T) {
	testData := []struct {
		Name   string
		Source string
		Status int
		Msg    string
	}{
		{
			Name:   "missing semicolon",
			Source: "int x;\nint y",
			Status: parser.StatusSyntax,
			Msg:    "main.blue:2: missing ';'",
		},
		{
			Name:   "function without return type",
			Source: "function f (void) { }",
			Status: parser.StatusReturnType,
			Msg:    "return type",
		},
		{
			Name:   "function without name",
			Source: "function int 3 (void) { }",
			Status: parser.StatusFunctionName,
			Msg:    "function name",
		},
		{
			Name:   "lexical error",
			Source: "int x = \"oops;\n",
			Status: parser.StatusSyntax,
			Msg:    "lexical error: ",
		},
	}

	for _, tt := range testData {
		t.Run(tt.Name, func(t *testing.T) {
			source := writeFile(t, "main.blue", tt.Source)

			stdout, stderr, err := execute(t, source)
			require.Error(t, err)
			assert.Empty(t, stdout)

			var perr *parser.Error
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.Status, perr.Status)
			assert.Contains(t, stderr, tt.Msg)
			assert.Equal(t, 1, strings.Count(stderr, "\n"), "one diagnostic line")
		})
	}
}

func TestRootUsageErrors(t *testing.T) {
	_, _, err := execute(t)
	require.Error(t, err)

	_, stderr, err := execute(t, filepath.Join(t.TempDir(), "missing.blue"))
	require.Error(t, err)
	assert.Contains(t, stderr, "error: reading file")

	source := writeFile(t, "main.blue", "int x;")
	_, stderr, err = execute(t, "-f", "xml", source)
	require.Error(t, err)
	assert.Contains(t, stderr, "invalid output format")
}
