package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_Formats(t *testing.T) {
	for _, tc := range []struct {
		format string
		want   []string
	}{
		{format: "text", want: []string{"msg=drained", "task_id=100001"}},
		{format: "TEXT", want: []string{"msg=drained", "task_id=100001"}},
		{format: "json", want: []string{`"msg":"drained"`, `"task_id":100001`}},
		{format: "", want: []string{"msg=drained"}},
	} {
		t.Run(tc.format, func(t *testing.T) {
			var buf bytes.Buffer
			NewWithWriter(slog.LevelInfo, tc.format, &buf).Info("drained", "task_id", 100001)
			for _, w := range tc.want {
				require.Contains(t, buf.String(), w)
			}
		})
	}
}

func TestNewWithWriter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(slog.LevelWarn, "text", &buf)

	logger.Debug("scheduler event")
	logger.Warn("reconfigure failed")

	require.NotContains(t, buf.String(), "scheduler event")
	require.Contains(t, buf.String(), "reconfigure failed")
}

func TestParseLevel(t *testing.T) {
	for _, tc := range []struct {
		in  string
		exp slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"Error", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	} {
		t.Run(tc.in, func(t *testing.T) {
			require.Equal(t, tc.exp, ParseLevel(tc.in))
		})
	}
}
