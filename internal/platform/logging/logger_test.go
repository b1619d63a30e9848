package logging

import (
	"encoding/json"
	"io"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/melodicname/api/internal/platform/timeutil"
)

// captureLogOutput captures a single log entry emitted by logFn and returns it as a map.
func captureLogOutput(t *testing.T, logFn func(*zap.Logger)) map[string]any {
	t.Helper()

	resetLoggerForTest()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	defer func() { _ = r.Close() }()

	origStdout := os.Stdout
	origStderr := os.Stderr
	os.Stdout = w
	os.Stderr = w
	defer func() {
		os.Stdout = origStdout
		os.Stderr = origStderr
	}()

	logger := Logger()
	logFn(logger)
	_ = logger.Sync()

	if closeErr := w.Close(); closeErr != nil {
		t.Fatalf("failed to close writer: %v", closeErr)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("failed to read log output: %v", err)
	}

	line := strings.TrimSpace(string(data))
	if line == "" {
		t.Fatalf("expected log output, got empty string")
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(line), &payload); err != nil {
		t.Fatalf("failed to unmarshal log JSON: %v", err)
	}

	return payload
}

// resetLoggerForTest clears the singleton state so tests can capture fresh log output.
func resetLoggerForTest() {
	loggerOnce = sync.Once{}
	baseLogger = nil
	loggerErr = nil
}

func TestLoggerStructuredOutput(t *testing.T) {
	payload := captureLogOutput(t, func(l *zap.Logger) {
		l.Info("GET /healthz")
	})

	if got := payload["severity"]; got != "INFO" {
		t.Fatalf("expected severity INFO, got %v", got)
	}

	if _, exists := payload["level"]; exists {
		t.Fatalf("did not expect level field, but found one: %v", exists)
	}

	msg, ok := payload["message"].(string)
	if !ok || msg != "GET /healthz" {
		t.Fatalf("expected message 'GET /healthz', got %v", payload["message"])
	}

	ts, ok := payload["timestamp"].(string)
	if !ok {
		t.Fatalf("expected timestamp field to be a string, got %T", payload["timestamp"])
	}
	if _, err := time.Parse(timeutil.RFC3339Micros, ts); err != nil {
		t.Fatalf("timestamp is not RFC3339Micros: %v", err)
	}
}

func TestEncodeSeverityMapping(t *testing.T) {
	tests := []struct {
		level    zapcore.Level
		expected string
	}{
		{zapcore.DebugLevel, "DEBUG"},
		{zapcore.InfoLevel, "INFO"},
		{zapcore.WarnLevel, "WARNING"},
		{zapcore.ErrorLevel, "ERROR"},
		{zapcore.DPanicLevel, "CRITICAL"},
		{zapcore.PanicLevel, "ALERT"},
		{zapcore.FatalLevel, "EMERGENCY"},
		{zapcore.Level(99), "DEFAULT"},
	}

	for _, tt := range tests {
		enc := &captureArrayEncoder{}
		encodeSeverity(tt.level, enc)
		if len(enc.values) != 1 || enc.values[0] != tt.expected {
			t.Fatalf("encodeSeverity(%v) = %v, want %s", tt.level, enc.values, tt.expected)
		}
	}
}

func TestEncodeTimeMicrosFormatsCorrectly(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected string
	}{
		{
			name:     "UTC time with microseconds",
			input:    time.Date(2024, 6, 15, 10, 30, 45, 123456000, time.UTC),
			expected: "2024-06-15T10:30:45.123456Z",
		},
		{
			name:     "UTC time with zero microseconds",
			input:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			expected: "2024-01-01T00:00:00.000000Z",
		},
		{
			name:     "non-UTC time converts to UTC",
			input:    time.Date(2024, 6, 15, 12, 0, 0, 500000000, time.FixedZone("EST", -5*60*60)),
			expected: "2024-06-15T17:00:00.500000Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc := &captureArrayEncoder{}
			encodeTimeMicros(tt.input, enc)
			if len(enc.values) != 1 {
				t.Fatalf("expected 1 value, got %d", len(enc.values))
			}
			if enc.values[0] != tt.expected {
				t.Fatalf("expected %q, got %q", tt.expected, enc.values[0])
			}
		})
	}
}

func TestLoggerSingletonBehavior(t *testing.T) {
	resetLoggerForTest()

	first := Logger()
	second := Logger()

	if first != second {
		t.Fatal("expected Logger() to return the same instance")
	}
}

func TestLoggerConcurrentAccess(t *testing.T) {
	resetLoggerForTest()

	var wg sync.WaitGroup
	results := make(chan *zap.Logger, 100)

	for range 100 {
		wg.Go(func() {
			results <- Logger()
		})
	}

	wg.Wait()
	close(results)

	var first *zap.Logger
	for logger := range results {
		if first == nil {
			first = logger
		} else if logger != first {
			t.Fatal("concurrent Logger() calls returned different instances")
		}
	}
}

func TestErrReturnsNilOnSuccess(t *testing.T) {
	resetLoggerForTest()
	_ = Logger()

	if err := Err(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestSyncReturnsNoError(t *testing.T) {
	resetLoggerForTest()
	_ = Logger()

	if err := Sync(); err != nil {
		t.Logf("Sync returned error (may be expected on some platforms): %v", err)
	}
}

func TestDebugLevelNotLoggedInProduction(t *testing.T) {
	resetLoggerForTest()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	defer func() { _ = r.Close() }()

	origStdout := os.Stdout
	origStderr := os.Stderr
	os.Stdout = w
	os.Stderr = w
	defer func() {
		os.Stdout = origStdout
		os.Stderr = origStderr
	}()

	logger := Logger()
	logger.Debug("debug message should not appear")
	_ = logger.Sync()

	if closeErr := w.Close(); closeErr != nil {
		t.Fatalf("failed to close writer: %v", closeErr)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	if strings.Contains(string(data), "debug message") {
		t.Fatal("debug level messages should not be logged in production config")
	}
}

func TestLoggerJSONFormat(t *testing.T) {
	payload := captureLogOutput(t, func(l *zap.Logger) {
		l.Info("json format test")
	})

	requiredFields := []string{"timestamp", "severity", "message", "caller"}
	for _, field := range requiredFields {
		if _, exists := payload[field]; !exists {
			t.Fatalf("expected required field %q in JSON output", field)
		}
	}
}

func TestTimestampAlwaysUTC(t *testing.T) {
	payload := captureLogOutput(t, func(l *zap.Logger) {
		l.Info("utc check")
	})

	ts, ok := payload["timestamp"].(string)
	if !ok {
		t.Fatal("expected timestamp string")
	}
	if !strings.HasSuffix(ts, "Z") {
		t.Fatalf("expected UTC timestamp ending with Z, got %q", ts)
	}
}

// captureArrayEncoder collects strings appended via the PrimitiveArrayEncoder interface.
type captureArrayEncoder struct {
	values []string
}

func (c *captureArrayEncoder) AppendBool(bool)             {}
func (c *captureArrayEncoder) AppendByteString([]byte)     {}
func (c *captureArrayEncoder) AppendComplex128(complex128) {}
func (c *captureArrayEncoder) AppendComplex64(complex64)   {}
func (c *captureArrayEncoder) AppendFloat64(float64)       {}
func (c *captureArrayEncoder) AppendFloat32(float32)       {}
func (c *captureArrayEncoder) AppendInt(int)               {}
func (c *captureArrayEncoder) AppendInt64(int64)           {}
func (c *captureArrayEncoder) AppendInt32(int32)           {}
func (c *captureArrayEncoder) AppendInt16(int16)           {}
func (c *captureArrayEncoder) AppendInt8(int8)             {}
func (c *captureArrayEncoder) AppendString(s string)       { c.values = append(c.values, s) }
func (c *captureArrayEncoder) AppendUint(uint)             {}
func (c *captureArrayEncoder) AppendUint64(uint64)         {}
func (c *captureArrayEncoder) AppendUint32(uint32)         {}
func (c *captureArrayEncoder) AppendUint16(uint16)         {}
func (c *captureArrayEncoder) AppendUint8(uint8)           {}
func (c *captureArrayEncoder) AppendUintptr(uintptr)       {}
