package cmd

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command against the database at db and returns
// stdout.
func run(t *testing.T, db string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(append([]string{"--db", db, "--store", "sqlite"}, args...))
	require.NoError(t, rootCmd.Execute(), "careerpath %s", strings.Join(args, " "))
	return out.String()
}

func TestPipeline(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	db := filepath.Join(t.TempDir(), "careerpath.db")

	out := run(t, db, "login", "--id", "u1", "--name", "테스터", "--email", "t@example.com")
	assert.Contains(t, out, "u1")

	out = run(t, db, "diagnose", "--no-input",
		"--current-job", "학생",
		"--experience", "주니어 (1-3년)",
		"--target-job", "백엔드 개발자",
		"--weak-area", "기술적 역량",
		"--hours", "5-10시간")
	assert.Contains(t, out, "Node.js")

	out = run(t, db, "roadmap", "generate")
	assert.Contains(t, out, "backend-1")
	assert.Equal(t, "0\n", run(t, db, "roadmap", "progress"))

	run(t, db, "learn", "start", "1")
	run(t, db, "learn", "section", "1", "1-1")
	run(t, db, "learn", "section", "1", "1-2")
	run(t, db, "learn", "complete", "1")
	assert.Equal(t, "20\n", run(t, db, "roadmap", "progress"))

	out = run(t, db, "learn", "history")
	assert.Contains(t, out, "1-1, 1-2")

	out = run(t, db, "stats")
	assert.Contains(t, out, "1일")

	out = run(t, db, "portfolio", "generate")
	assert.Contains(t, out, "학습 프로젝트")

	out = run(t, db, "portfolio", "show")
	assert.Contains(t, out, "테스터")
}

func TestRoadmapShowWithoutRoadmap(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	db := filepath.Join(t.TempDir(), "careerpath.db")

	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs([]string{"--db", db, "--store", "sqlite", "roadmap", "show"})
	err := rootCmd.Execute()
	require.ErrorIs(t, err, errNoRoadmap)
}

func TestAnonymousSectionProgress(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	db := filepath.Join(t.TempDir(), "careerpath.db")

	out := run(t, db, "learn", "section", "1", "1-1")
	assert.Contains(t, out, "50%")
}
