package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/latin-phrases/internal/config"
)

const phrasesPage = `
<html><body>
	<table class="wikitable">
		<tr><th>Latin</th><th>Translation</th></tr>
		<tr><td>amor vincit omnia</td><td>love conquers all</td></tr>
		<tr><td>veritas et amor</td><td>truth and love</td></tr>
	</table>
</body></html>`

// executeCommand runs the root command in-process with fresh flag state.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	for _, c := range rootCmd.Commands() {
		resetFlags(c)
	}

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

func resetFlags(c *cobra.Command) {
	c.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

// clearEnv keeps the environment from overriding defaults during a test.
func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(config.EnvPageURL, "")
	t.Setenv(config.EnvOutputFile, "")
}

func newPhraseServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(phrasesPage))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
