package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/excel2vcf-go/pkg/excel2vcf"
	"github.com/ukaji3/excel2vcf-go/pkg/excel2vcf/contacts"
)

// generateRequest is the body of POST /api/generate.
type generateRequest struct {
	File       string      `json:"file"`
	SheetIndex optionalInt `json:"sheetIndex"`
	PhoneCol   optionalInt `json:"phoneCol"`
	NameCol    optionalInt `json:"nameCol"`
	HasHeader  tristate    `json:"hasHeader"`
	DialCode   string      `json:"dialCode"`
}

func (req generateRequest) options() excel2vcf.Options {
	return excel2vcf.Options{
		SheetIndex: req.SheetIndex.v,
		Contacts: contacts.Config{
			HasHeader:   req.HasHeader.v,
			PhoneColumn: req.PhoneCol.v,
			NameColumn:  req.NameCol.v,
			DialCode:    strings.TrimSpace(req.DialCode),
		},
	}
}

// optionalInt accepts a JSON number, a numeric string, "" or null.
type optionalInt struct {
	v *int
}

func (o *optionalInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		o.v = nil
		return nil
	}

	var s string
	if data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	} else {
		s = string(data)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		o.v = nil
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("expected an integer index, got %s", data)
	}
	o.v = &n
	return nil
}

// tristate accepts a JSON boolean, a "true"/"false" string, "" or null.
type tristate struct {
	v *bool
}

func (t *tristate) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch string(data) {
	case "null":
		t.v = nil
		return nil
	case "true":
		t.v = excel2vcf.Bool(true)
		return nil
	case "false":
		t.v = excel2vcf.Bool(false)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("expected a boolean, got %s", data)
	}
	v, err := excel2vcf.ParseTristate("hasHeader", s)
	if err != nil {
		return err
	}
	t.v = v
	return nil
}
