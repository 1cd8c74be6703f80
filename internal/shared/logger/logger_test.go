package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		var rec map[string]any
		require.NoError(t, dec.Decode(&rec))
		out = append(out, rec)
	}
	return out
}

func TestSourceHandler(t *testing.T) {
	tests := []struct {
		name       string
		from       slog.Level
		log        func(l *slog.Logger)
		wantSource bool
	}{
		{"info below threshold", slog.LevelWarn, func(l *slog.Logger) { l.Info("x") }, false},
		{"warn at threshold", slog.LevelWarn, func(l *slog.Logger) { l.Warn("x") }, true},
		{"error above threshold", slog.LevelWarn, func(l *slog.Logger) { l.Error("x") }, true},
		{"debug threshold covers info", slog.LevelDebug, func(l *slog.Logger) { l.Info("x") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
			tt.log(slog.New(newSourceHandler(base, tt.from)))

			recs := decodeLines(t, &buf)
			require.Len(t, recs, 1)
			src, ok := recs[0][slog.SourceKey].(map[string]any)
			assert.Equal(t, tt.wantSource, ok)
			if tt.wantSource {
				assert.Contains(t, src["file"], "logger_test.go")
			}
		})
	}
}

func TestSourceHandlerKeepsAttrs(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewJSONHandler(&buf, nil)
	l := NewLoggerWithSlog(slog.New(newSourceHandler(base, slog.LevelWarn))).Named("feed").With("user_id", 7)

	l.Warnw("slow query", "ms", 120)

	recs := decodeLines(t, &buf)
	require.Len(t, recs, 1)
	assert.Equal(t, "feed", recs[0]["logger"])
	assert.EqualValues(t, 7, recs[0]["user_id"])
	assert.EqualValues(t, 120, recs[0]["ms"])
	src, ok := recs[0][slog.SourceKey].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, src["file"], "logger_test.go")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}
