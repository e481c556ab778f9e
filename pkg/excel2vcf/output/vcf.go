// Package output writes conversion results.
package output

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
)

// VCardContentType is the media type for generated files.
const VCardContentType = "text/vcard; charset=utf-8"

// VCardExt is the file extension for generated files.
const VCardExt = ".vcf"

// WriteVCards writes the cards back to back. Each card already ends in CRLF,
// so no separator is added.
func WriteVCards(w io.Writer, cards []string) error {
	bw := bufio.NewWriter(w)
	for _, card := range cards {
		if _, err := bw.WriteString(card); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteVCardFile writes the cards to path, creating parent directories.
func WriteVCardFile(path string, cards []string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteVCards(f, cards); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
