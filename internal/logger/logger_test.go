package logger

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestInitialize_WritesToGivenWriter(t *testing.T) {
	var buf bytes.Buffer
	Initialize("debug", "json", &buf)
	defer Initialize("warn", "text", nil)

	EnterMethod("AddCar", "car_id", "C1")
	assert.Contains(t, buf.String(), `"method":"AddCar"`)
	assert.Contains(t, buf.String(), `"event":"enter"`)
	assert.Contains(t, buf.String(), `"car_id":"C1"`)
}

func TestExitMethodWithError_Levels(t *testing.T) {
	var buf bytes.Buffer
	Initialize("info", "text", &buf)
	defer Initialize("warn", "text", nil)

	ExitMethodWithError("RentCar", errors.New("car taken"), true)
	assert.Contains(t, buf.String(), "level=INFO")
	assert.Contains(t, buf.String(), "Method rejected")

	buf.Reset()
	ExitMethodWithError("RentCar", errors.New("store broken"), false)
	assert.Contains(t, buf.String(), "level=ERROR")
}

func TestStoreCall_HiddenAboveDebug(t *testing.T) {
	var buf bytes.Buffer
	Initialize("warn", "text", &buf)
	defer Initialize("warn", "text", nil)

	StoreCall("insert", "cars", "id", "C1")
	StoreResult("insert", "cars", 1, nil)
	assert.Empty(t, buf.String())

	StoreResult("update", "cars", 0, errors.New("missing"))
	assert.Contains(t, buf.String(), "Store call failed")
}

func TestWithSession(t *testing.T) {
	var buf bytes.Buffer
	Initialize("info", "text", &buf)
	defer Initialize("warn", "text", nil)

	WithSession("abc-123").Info("session started")
	assert.Contains(t, buf.String(), "session_id=abc-123")
}
