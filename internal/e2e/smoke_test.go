package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	stdout, stderr, err := runOnboard(t, binaryPath, home, "xai-secret\n",
		"run", "--auth-choice", "xai-api-key",
	)
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Onboarding complete")
	assert.Contains(t, stdout, "credential: stored as xai/api_key")

	secret, err := os.ReadFile(filepath.Join(home, ".agent-onboard", "credentials", "xai", "api_key"))
	require.NoError(t, err)
	assert.Equal(t, "xai-secret", string(secret))

	stdout, stderr, err = runOnboard(t, binaryPath, home, "", "welcome", "hello")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.True(t, strings.HasPrefix(stdout, "System: "))
	assert.Contains(t, stdout, "\n\nhello")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "onboard-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/onboard")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build onboard binary: %s", string(output))
	return binaryPath
}

func runOnboard(t *testing.T, binaryPath, home, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home, "XAI_API_KEY=", "ONBOARD_CREDENTIALS_DIR=")
	cmd.Stdin = strings.NewReader(stdin)

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
