package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/uaengine/internal/cli"
	"github.com/dmitrymomot/uaengine/pkg/renderingengine"
)

const (
	chromeUA  = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	firefoxUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:109.0) Gecko/20100101 Firefox/115.0"
	unknownUA = "SomeRandomClient/1.0"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("UAENGINE_LOG_LEVEL", "error")
	for _, name := range []string{"UAENGINE_CACHE_SIZE", "UAENGINE_LOG_FORMAT", "UAENGINE_REPORT_FORMAT", "UAENGINE_FULL_VERSIONS"} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}

	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestDetectCommand_Args(t *testing.T) {
	out, _, err := run(t, "", "detect", chromeUA, firefoxUA, unknownUA)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "blink 91.0 91.0.4472.124", lines[0])
	assert.Equal(t, "gecko 109.0 109.0", lines[1])
	assert.Equal(t, "unknown ", lines[2])
}

func TestDetectCommand_Stdin(t *testing.T) {
	out, _, err := run(t, chromeUA+"\n\n   \n"+firefoxUA+"\n", "detect")
	require.NoError(t, err)
	assert.Equal(t, "blink 91.0 91.0.4472.124\ngecko 109.0 109.0\n", out)
}

func TestDetectCommand_Hash(t *testing.T) {
	out, _, err := run(t, "", "detect", "--hash", firefoxUA)
	require.NoError(t, err)

	expected := renderingengine.New(renderingengine.BrandMozilla, renderingengine.FamilyGecko, "109.0", "109.0")
	assert.Equal(t, expected.String()+"\t"+strconv.Itoa(int(expected.Hash()))+"\n", out)
}

func TestReportCommand_Table(t *testing.T) {
	input := strings.Join([]string{chromeUA, chromeUA, firefoxUA, unknownUA}, "\n")
	out, _, err := run(t, input, "report")
	require.NoError(t, err)

	assert.Contains(t, out, "Blink")
	assert.Contains(t, out, "Gecko")
	assert.Contains(t, out, "50.0%")
	assert.Contains(t, out, "Total")
}

func TestReportCommand_YAML(t *testing.T) {
	input := strings.Join([]string{chromeUA, firefoxUA, chromeUA}, "\n")
	out, _, err := run(t, input, "report", "--format", "yaml", "--full-versions")
	require.NoError(t, err)

	var report struct {
		Total int `yaml:"total"`
		Rows  []struct {
			Family      string `yaml:"family"`
			FullVersion string `yaml:"full_version"`
			Count       int    `yaml:"count"`
		} `yaml:"rows"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	assert.Equal(t, 3, report.Total)
	require.Len(t, report.Rows, 2)
	assert.Equal(t, "blink", report.Rows[0].Family)
	assert.Equal(t, "91.0.4472.124", report.Rows[0].FullVersion)
	assert.Equal(t, 2, report.Rows[0].Count)
}

func TestReportCommand_FormatFromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engineinfo.env")
	require.NoError(t, os.WriteFile(path, []byte("UAENGINE_REPORT_FORMAT=yaml\n"), 0o600))

	out, _, err := run(t, firefoxUA, "--env-file", path, "report")
	require.NoError(t, err)
	assert.Contains(t, out, "family: gecko")
}

func TestReportCommand_UnknownFormat(t *testing.T) {
	_, _, err := run(t, firefoxUA, "report", "--format", "csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "csv")
}

func TestRootCommand_InvalidConfig(t *testing.T) {
	t.Setenv("UAENGINE_CACHE_SIZE", "-5")

	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCmd()
	cmd.SetArgs([]string{"detect", firefoxUA})
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	require.Error(t, cmd.Execute())
	assert.Empty(t, stdout.String())
}
