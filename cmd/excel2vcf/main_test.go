package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ukaji3/excel2vcf-go/pkg/excel2vcf"
	"github.com/ukaji3/excel2vcf-go/pkg/excel2vcf/models"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "contacts.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write csv: %v", err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConvertCommand(t *testing.T) {
	input := writeCSV(t, "id,Teléfono,Nombre\n1,612345678,Ana\n2,,\n3,611222333,Luis\n")
	outFile := filepath.Join(t.TempDir(), "out.vcf")

	stdout, err := execute(t, input, "-o", outFile, "--dial-code=+34")
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	if !strings.Contains(stdout, "with 2 contacts") {
		t.Errorf("Unexpected output %q", stdout)
	}

	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	if strings.Count(string(data), "BEGIN:VCARD\r\n") != 2 {
		t.Errorf("Expected 2 vCards, got %q", data)
	}
	if !strings.Contains(string(data), "TEL;TYPE=CELL:+34611222333\r\n") {
		t.Errorf("Missing prefixed phone in %q", data)
	}
}

func TestConvertCommandExplicitColumns(t *testing.T) {
	input := writeCSV(t, "612345678,Ana\n611222333,Luis\n")

	stdout, err := execute(t, input, "-o", "-", "--phone-col=0", "--name-col=1", "--has-header=false")
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	expected := "BEGIN:VCARD\r\nVERSION:3.0\r\nN:;Ana;;;\r\nFN:Ana\r\nTEL;TYPE=CELL:612345678\r\nEND:VCARD\r\n" +
		"BEGIN:VCARD\r\nVERSION:3.0\r\nN:;Luis;;;\r\nFN:Luis\r\nTEL;TYPE=CELL:611222333\r\nEND:VCARD\r\n"
	if stdout != expected {
		t.Errorf("Unexpected output %q", stdout)
	}
}

func TestConvertCommandErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := execute(t, filepath.Join(dir, "missing.xlsx")); !errors.Is(err, excel2vcf.ErrFileNotFound) {
		t.Errorf("Expected ErrFileNotFound, got %v", err)
	}

	input := writeCSV(t, "Nombre,Tel\n,\n")
	if _, err := execute(t, input, "-o", filepath.Join(dir, "x.vcf")); !errors.Is(err, excel2vcf.ErrNoRecords) {
		t.Errorf("Expected ErrNoRecords, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "x.vcf")); !os.IsNotExist(err) {
		t.Errorf("No file should be written when no contacts are generated")
	}

	var cfgErr *excel2vcf.ConfigError
	if _, err := execute(t, input, "--has-header=maybe"); !errors.As(err, &cfgErr) {
		t.Errorf("Expected ConfigError, got %v", err)
	}
	if _, err := execute(t, input, "--phone-col=-3"); !errors.As(err, &cfgErr) {
		t.Errorf("Expected ConfigError, got %v", err)
	}

	if _, err := execute(t); err == nil {
		t.Errorf("Expected error without input argument")
	}
}

func TestInspectCommand(t *testing.T) {
	input := writeCSV(t, "Nombre,Celular\nAna,612345678\n")

	stdout, err := execute(t, "inspect", input)
	if err != nil {
		t.Fatalf("inspect failed: %v", err)
	}

	var wb models.WorkbookSummary
	if err := json.Unmarshal([]byte(stdout), &wb); err != nil {
		t.Fatalf("Invalid JSON %q: %v", stdout, err)
	}
	if len(wb.Sheets) != 1 {
		t.Fatalf("Expected 1 sheet, got %d", len(wb.Sheets))
	}
	sheet := wb.Sheets[0]
	if !sheet.HasHeader || sheet.Columns.Phone != 1 || sheet.Columns.Name != 0 || sheet.Contacts != 1 {
		t.Errorf("Unexpected summary %+v", sheet)
	}
}
