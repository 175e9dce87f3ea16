package cli

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	cases := []struct {
		name     string
		args     []string
		wantName string
		wantErr  bool
	}{
		{"empty is serve", nil, "serve", false},
		{"serve", []string{"serve"}, "serve", false},
		{"serve with extra arg", []string{"serve", "now"}, "", true},
		{"db install", []string{"db", "install"}, "db install", false},
		{"db seed", []string{"db", "seed"}, "db seed", false},
		{"db without sub", []string{"db"}, "", true},
		{"db unknown", []string{"db", "drop"}, "", true},
		{"user add", []string{"user", "add", "alice", "pw"}, "user add", false},
		{"user set-password", []string{"user", "set-password", "alice", "pw"}, "user set-password", false},
		{"user add missing password", []string{"user", "add", "alice"}, "", true},
		{"user add blank name", []string{"user", "add", "  ", "pw"}, "", true},
		{"user unknown", []string{"user", "remove", "alice", "pw"}, "", true},
		{"unknown", []string{"migrate"}, "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, err := parseCommand(tc.args)
			if tc.wantErr {
				require.Error(t, err)
				require.True(t, errors.Is(err, errUsage))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantName, cmd.name)
			require.NotNil(t, cmd.run)
		})
	}
}

type runResult struct {
	code   int
	stdout string
	stderr string
}

func run(t *testing.T, args ...string) runResult {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Run(context.Background(), args, &stdout, &stderr)
	return runResult{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func TestRun_UsageErrorsExit2(t *testing.T) {
	r := run(t, "bogus")
	require.Equal(t, ExitUsage, r.code)
	require.Contains(t, r.stderr, "unknown command")
	require.Contains(t, r.stderr, "usage: wordbook")

	r = run(t, "-nosuchflag")
	require.Equal(t, ExitUsage, r.code)
}

func TestRun_AdminCommands(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "data", "wordbook.db")
	base := []string{"-config", filepath.Join(dir, "missing"), "-db", dbPath}
	with := func(args ...string) []string { return append(append([]string{}, base...), args...) }

	r := run(t, with("db", "install")...)
	require.Equal(t, ExitOK, r.code, r.stderr)
	require.Contains(t, r.stdout, "schema installed")

	r = run(t, with("db", "install")...)
	require.Equal(t, ExitOK, r.code, r.stderr)
	require.Contains(t, r.stdout, "schema up to date")

	r = run(t, with("user", "add", "alice", "s3cret")...)
	require.Equal(t, ExitOK, r.code, r.stderr)
	require.Contains(t, r.stdout, `created user "alice"`)

	r = run(t, with("user", "add", "alice", "other")...)
	require.Equal(t, ExitFailure, r.code)
	require.Contains(t, r.stderr, "user already exists")

	r = run(t, with("user", "set-password", "alice", "n3w")...)
	require.Equal(t, ExitOK, r.code, r.stderr)
	require.Contains(t, r.stdout, `password updated for "alice"`)

	r = run(t, with("user", "set-password", "ghost", "x")...)
	require.Equal(t, ExitFailure, r.code)
	require.True(t, strings.Contains(r.stderr, "no such user"), r.stderr)

	r = run(t, with("db", "seed")...)
	require.Equal(t, ExitOK, r.code, r.stderr)
	require.Contains(t, r.stdout, "seed data installed")

	r = run(t, with("db", "seed")...)
	require.Equal(t, ExitOK, r.code, r.stderr)
	require.Contains(t, r.stdout, "already present")
}
