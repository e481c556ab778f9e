package contacts

import "strings"

const crlf = "\r\n"

// EncodeVCard renders a single vCard 3.0 block terminated by CRLF. It
// returns "" when both name and phone are empty. The TEL line is omitted
// when phone is empty.
//
// Values are written verbatim: ';', ',' and '\' are not escaped.
func EncodeVCard(name, phone string) string {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" && phone == "" {
		return ""
	}

	var b strings.Builder
	b.WriteString("BEGIN:VCARD" + crlf)
	b.WriteString("VERSION:3.0" + crlf)
	b.WriteString("N:;" + name + ";;;" + crlf)
	b.WriteString("FN:" + name + crlf)
	if phone != "" {
		b.WriteString("TEL;TYPE=CELL:" + phone + crlf)
	}
	b.WriteString("END:VCARD" + crlf)
	return b.String()
}
