package e2e

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	srv := fakeDicomwebServer(t)
	require.NoError(t, writeServersFixture(home, srv.URL))

	stdout, stderr, err := runWadofetch(t, binaryPath, home, "servers")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "main")

	stdout, stderr, err = runWadofetch(t, binaryPath, home,
		"retrieve",
		"--server", "main",
		"--study", "1.2.3",
		"--instances",
	)
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "CHEST CT [1.2.3]")
	assert.Contains(t, stdout, "7.8.9")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "wadofetch-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/wadofetch")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build wadofetch binary: %s", string(output))
	return binaryPath
}

func runWadofetch(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}

func fakeDicomwebServer(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/studies/1.2.3/metadata" {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", "application/dicom+json")
		fmt.Fprint(w, `[
			{
				"0020000D": {"vr": "UI", "Value": ["1.2.3"]},
				"0020000E": {"vr": "UI", "Value": ["4.5.6"]},
				"00080018": {"vr": "UI", "Value": ["7.8.9"]},
				"00080060": {"vr": "CS", "Value": ["CT"]},
				"00081030": {"vr": "LO", "Value": ["CHEST CT"]},
				"00100010": {"vr": "PN", "Value": [{"Alphabetic": "Doe^Jane"}]}
			}
		]`)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func writeServersFixture(home, baseURL string) error {
	configDir := filepath.Join(home, ".wadofetch")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	servers := fmt.Sprintf(`version = 1

[[servers]]
name = "main"
wado_root = %q
qido_root = %q
`, baseURL, baseURL)

	return os.WriteFile(filepath.Join(configDir, "servers.toml"), []byte(servers), 0o644)
}
