package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestRotatingLogger(t *testing.T) {
	tempDir := t.TempDir()

	rl := NewRotatingLogger(tempDir, 1, 0)

	rl.mu.Lock()
	err := rl.doRotate(getWeekKey(time.Now()))
	rl.mu.Unlock()
	if err != nil {
		t.Fatalf("Failed to rotate: %v", err)
	}

	currentWeek := getWeekKey(time.Now())
	expectedFileName := filepath.Join(tempDir, "app-"+currentWeek+".log")
	if _, statErr := os.Stat(expectedFileName); os.IsNotExist(statErr) {
		t.Errorf("Expected log file %s was not created", expectedFileName)
	}

	testMessage := "Test log message"
	if _, err = rl.Write([]byte(testMessage)); err != nil {
		t.Fatalf("Failed to write to log: %v", err)
	}

	content, err := os.ReadFile(expectedFileName)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(content), testMessage) {
		t.Errorf("Log file does not contain test message: %s", string(content))
	}

	if err = rl.cleanupOldLogs(); err != nil {
		t.Fatalf("Failed to cleanup old logs: %v", err)
	}

	if err = rl.Close(); err != nil {
		t.Fatalf("Failed to close logger: %v", err)
	}
}

func TestGetWeekKey(t *testing.T) {
	testTime := time.Date(2025, 10, 7, 12, 0, 0, 0, time.UTC)
	weekKey := getWeekKey(testTime)

	expected := "2025-W41"
	if weekKey != expected {
		t.Errorf("Expected week key %s, got %s", expected, weekKey)
	}
}

func TestRotatingLoggerSizeCap(t *testing.T) {
	tempDir := t.TempDir()

	// Tiny cap forces a rotation on the second write
	rl := NewRotatingLogger(tempDir, 1, 32)
	defer rl.Close()

	if _, err := rl.Write([]byte(strings.Repeat("a", 30))); err != nil {
		t.Fatalf("First write failed: %v", err)
	}
	if _, err := rl.Write([]byte(strings.Repeat("b", 30))); err != nil {
		t.Fatalf("Second write failed: %v", err)
	}
}

func TestCleanupOldLogs(t *testing.T) {
	tempDir := t.TempDir()

	oldFile := filepath.Join(tempDir, "app-2020-W01.log")
	if err := os.WriteFile(oldFile, []byte("old"), 0666); err != nil {
		t.Fatalf("Failed to create old log file: %v", err)
	}
	oldTime := time.Now().Add(-30 * 24 * time.Hour)
	if err := os.Chtimes(oldFile, oldTime, oldTime); err != nil {
		t.Fatalf("Failed to age old log file: %v", err)
	}

	unrelated := filepath.Join(tempDir, "notes.txt")
	if err := os.WriteFile(unrelated, []byte("keep"), 0666); err != nil {
		t.Fatalf("Failed to create unrelated file: %v", err)
	}
	if err := os.Chtimes(unrelated, oldTime, oldTime); err != nil {
		t.Fatalf("Failed to age unrelated file: %v", err)
	}

	rl := NewRotatingLogger(tempDir, 1, 0)
	if err := rl.cleanupOldLogs(); err != nil {
		t.Fatalf("Failed to cleanup old logs: %v", err)
	}

	if _, err := os.Stat(oldFile); !os.IsNotExist(err) {
		t.Error("Expired log file was not removed")
	}
	if _, err := os.Stat(unrelated); err != nil {
		t.Error("Unrelated file should not be touched by cleanup")
	}
}

func TestSetupLoggerConsoleOnly(t *testing.T) {
	logger := SetupLogger("")
	if logger == nil {
		t.Fatal("SetupLogger returned nil")
	}
}

func TestSetupLoggerWithFile(t *testing.T) {
	tempDir := t.TempDir()

	logger := SetupLoggerWithRetention(tempDir, 1, 1024*1024)
	if logger == nil {
		t.Fatal("SetupLoggerWithRetention returned nil")
	}

	logger.Info("test entry", "key", "value")

	expectedFileName := filepath.Join(tempDir, "app-"+getWeekKey(time.Now())+".log")
	content, err := os.ReadFile(expectedFileName)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(content), "test entry") {
		t.Errorf("Log file does not contain entry: %s", string(content))
	}
}
