// File: logger_test.go
// Title: Core Logger Tests
// Description: Tests for logger level filtering, contextual fields, and
//              error integration.

package log

import (
	"bytes"
	"strings"
	"testing"

	ionerr "github.com/amw-zero/ion/core/error"
)

func newTestLogger(level Level) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := NewWithConfig(Config{
		Level:  level,
		Format: FormatText,
		Output: buf,
		Name:   "test",
	})
	return logger, buf
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newTestLogger(LevelWarn)

	logger.Debug("hidden")
	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("messages below minimum level were written: %q", buf.String())
	}

	logger.Warn("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("warn message not written: %q", buf.String())
	}
}

func TestWithField(t *testing.T) {
	logger, buf := newTestLogger(LevelDebug)

	derived := logger.WithField("component", "parser")
	derived.Info("hello")

	if !strings.Contains(buf.String(), "component=parser") {
		t.Errorf("context field missing from output: %q", buf.String())
	}

	// The original logger must not pick up the derived field.
	buf.Reset()
	logger.Info("plain")
	if strings.Contains(buf.String(), "component=parser") {
		t.Errorf("context field leaked to parent logger: %q", buf.String())
	}
}

func TestPerCallFields(t *testing.T) {
	logger, buf := newTestLogger(LevelDebug)

	logger.Info("classified", String("kind", "pipeline"), Int("depth", 2))

	out := buf.String()
	if !strings.Contains(out, "kind=pipeline") || !strings.Contains(out, "depth=2") {
		t.Errorf("per-call fields missing from output: %q", out)
	}
}

func TestErrorWithErr(t *testing.T) {
	logger, buf := newTestLogger(LevelDebug)

	logger.ErrorWithErr("execution failed", ionerr.New("exit 127"))
	if !strings.Contains(buf.String(), `error="exit 127"`) {
		t.Errorf("error missing from output: %q", buf.String())
	}
}

func TestLogError(t *testing.T) {
	tests := []struct {
		name      string
		minLevel  Level
		err       error
		wantLines bool
	}{
		{
			name:      "parse error hidden at info level",
			minLevel:  LevelInfo,
			err:       ionerr.New("unrecognized statement").WithCode(ionerr.CodeSyntax),
			wantLines: false,
		},
		{
			name:      "parse error shown at debug level",
			minLevel:  LevelDebug,
			err:       ionerr.New("unrecognized statement").WithCode(ionerr.CodeSyntax),
			wantLines: true,
		},
		{
			name:      "execution error shown at info level",
			minLevel:  LevelInfo,
			err:       ionerr.New("command failed").WithCode(ionerr.CodeExecution),
			wantLines: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newTestLogger(tt.minLevel)
			logger.LogError(tt.err)
			if got := buf.Len() > 0; got != tt.wantLines {
				t.Errorf("output present = %v, want %v (output %q)", got, tt.wantLines, buf.String())
			}
		})
	}
}

func TestLogErrorIncludesCode(t *testing.T) {
	logger, buf := newTestLogger(LevelDebug)

	logger.LogError(ionerr.New("boom").
		WithCode(ionerr.CodeExecution).
		WithOperation("executor.Run"))

	out := buf.String()
	if !strings.Contains(out, "error_code=EXECUTION") {
		t.Errorf("error code missing from output: %q", out)
	}
	if !strings.Contains(out, "error_operation=executor.Run") {
		t.Errorf("operation missing from output: %q", out)
	}
}

func TestLogErrorNil(t *testing.T) {
	logger, buf := newTestLogger(LevelTrace)
	logger.LogError(nil)
	if buf.Len() != 0 {
		t.Errorf("nil error produced output: %q", buf.String())
	}
}
