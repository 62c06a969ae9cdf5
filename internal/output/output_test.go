package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type sample struct {
	Name   string `yaml:"name"             json:"name"`
	Bundle string `yaml:"bundle,omitempty" json:"bundle,omitempty"`
	PID    int    `yaml:"pid"              json:"pid"`
}

// capture redirects Stdout and sets the format for the duration of the test.
func capture(t *testing.T, f Format, pretty bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	oldOut, oldFmt, oldPretty := Stdout, OutputFormat, PrettyOutput
	Stdout, OutputFormat, PrettyOutput = &buf, f, pretty
	t.Cleanup(func() {
		Stdout, OutputFormat, PrettyOutput = oldOut, oldFmt, oldPretty
	})
	return &buf
}

func TestPrintName_Text(t *testing.T) {
	tests := map[string]string{
		"MyApp":      "\"MyApp\"\n",
		"my \"app\"": "\"my \\\"app\\\"\"\n",
		"café":       "\"café\"\n",
		"":           "\"\"\n",
	}
	for in, want := range tests {
		buf := capture(t, FormatText, false)
		require.NoError(t, PrintName(in))
		assert.Equal(t, want, buf.String())
	}
}

func TestPrintName_JSON(t *testing.T) {
	buf := capture(t, FormatJSON, false)
	require.NoError(t, PrintName("MyApp"))
	assert.JSONEq(t, `{"name":"MyApp"}`, buf.String())
}

func TestPrint_CompactJSON(t *testing.T) {
	buf := capture(t, FormatJSON, false)
	require.NoError(t, Print(sample{Name: "MyApp", PID: 7}))

	// Compact output should be a single line (plus newline from Encode)
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("\n")))

	var decoded sample
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sample{Name: "MyApp", PID: 7}, decoded)
}

func TestPrint_PrettyJSON(t *testing.T) {
	buf := capture(t, FormatJSON, true)
	require.NoError(t, Print(sample{Name: "MyApp", Bundle: "com.example", PID: 7}))
	assert.Greater(t, bytes.Count(buf.Bytes(), []byte("\n")), 1)
}

func TestPrint_YAMLOmitEmpty(t *testing.T) {
	buf := capture(t, FormatYAML, false)
	require.NoError(t, Print(sample{Name: "MyApp"}))

	var m map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &m))
	assert.Equal(t, "MyApp", m["name"])
	assert.NotContains(t, m, "bundle")
	assert.Contains(t, m, "pid")
}

func TestPrint_TextUsesYAML(t *testing.T) {
	buf := capture(t, FormatText, false)
	require.NoError(t, Print(sample{Name: "MyApp"}))
	assert.Contains(t, buf.String(), "name: MyApp")
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"text", "yaml", "json"} {
		f, err := ParseFormat(s)
		require.NoError(t, err)
		assert.Equal(t, Format(s), f)
	}
	_, err := ParseFormat("agent")
	assert.Error(t, err)
}
