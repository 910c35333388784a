package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const testPlan = `
capacity: 3
log_level: error
regions:
  - priority: 4
    priority_fn: moisture
    tasks:
      - {id: 100001, temperature: 70, moisture: 30, time: noon, type: bean}
  - priority: 2
    priority_fn: heat
    tasks:
      - {id: 100002, temperature: 50, moisture: 30, time: noon, type: bean}
      - {id: 100003, temperature: 90, moisture: 30, time: noon, type: cotton}
  - priority: 1
    priority_fn: heat
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yml")
	require.NoError(t, os.WriteFile(path, []byte(testPlan), 0o644))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", path, "--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestDrain(t *testing.T) {
	out, err := run(t, "drain")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[0], "Task ID: 100003"))
	require.True(t, strings.HasPrefix(lines[1], "Task ID: 100002"))
	require.True(t, strings.HasPrefix(lines[2], "Task ID: 100001"))
}

func TestDump(t *testing.T) {
	out, err := run(t, "dump")
	require.NoError(t, err)
	require.Equal(t, strings.Join([]string{
		"((4)1(2))",
		"Empty heap.",
		"Region 2: => ((50:100002)94:100003)",
		"Region 4: => (31:100001)",
	}, "\n")+"\n", out)
}

func TestNth(t *testing.T) {
	out, err := run(t, "nth", "2")
	require.NoError(t, err)
	require.Equal(t, "Region 2: => ((50:100002)94:100003)\n((4)1)\n", out)

	_, err = run(t, "nth", "9")
	require.ErrorContains(t, err, "rank 9 out of range [1, 3]")

	_, err = run(t, "nth", "two")
	require.ErrorContains(t, err, `invalid rank "two"`)
}

func TestTasks(t *testing.T) {
	out, err := run(t, "tasks")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	require.Equal(t, "Region 1:", lines[0])
	require.Equal(t, "Empty queue", lines[1])
	require.Equal(t, "Region 2:", lines[2])
	require.True(t, strings.HasPrefix(lines[3], "(94)Task ID: 100003"))
	require.True(t, strings.HasPrefix(lines[4], "(50)Task ID: 100002"))
	require.Equal(t, "Region 4:", lines[5])
	require.True(t, strings.HasPrefix(lines[6], "(31)Task ID: 100001"))
}
