package misc

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BrugadaSyndrome/bslogger"
)

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{Fatal, "Fatal"},
		{Error, "Error"},
		{Warning, "Warning"},
		{Info, "Info"},
		{Debug, "Debug"},
	}
	for _, test := range tests {
		if got := test.severity.String(); got != test.want {
			t.Errorf("Severity(%d).String() = %q, want %q", test.severity, got, test.want)
		}
	}
}

func TestCheckError_LogsToFile(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "test.log")
	logFile, err := os.Create(fileName)
	if err != nil {
		t.Fatalf("unable to create log file: %s", err)
	}
	logger := bslogger.NewLogger("Test", bslogger.Normal, logFile)

	CheckError(errors.New("something went sideways"), logger, Warning)
	if err := logFile.Close(); err != nil {
		t.Fatalf("unable to close log file: %s", err)
	}

	contents, err := os.ReadFile(fileName)
	if err != nil {
		t.Fatalf("unable to read log file: %s", err)
	}
	if !strings.Contains(string(contents), "something went sideways") {
		t.Errorf("log file %q does not contain the logged error", string(contents))
	}
}

func TestCheckError_NilErrorLogsNothing(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "test.log")
	logFile, err := os.Create(fileName)
	if err != nil {
		t.Fatalf("unable to create log file: %s", err)
	}
	logger := bslogger.NewLogger("Test", bslogger.Normal, logFile)

	CheckError(nil, logger, Info)
	if err := logFile.Close(); err != nil {
		t.Fatalf("unable to close log file: %s", err)
	}

	contents, err := os.ReadFile(fileName)
	if err != nil {
		t.Fatalf("unable to read log file: %s", err)
	}
	if len(contents) != 0 {
		t.Errorf("expected an empty log file, got %q", string(contents))
	}
}
