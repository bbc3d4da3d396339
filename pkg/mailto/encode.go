package mailto

import (
	"errors"
	"net/url"
	"strings"
)

const scheme = "mailto:"

const upperhex = "0123456789ABCDEF"

// shouldEscape reports whether b is outside the unreserved set
// A-Z a-z 0-9 - _ . ! ~ * ' ( ).
func shouldEscape(b byte) bool {
	switch {
	case 'a' <= b && b <= 'z', 'A' <= b && b <= 'Z', '0' <= b && b <= '9':
		return false
	}
	switch b {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return false
	}
	return true
}

// EncodeComponent percent-encodes s as a single URI component. Every byte of
// the UTF-8 form outside the unreserved set becomes %XX with uppercase hex, so
// spaces are %20 and line breaks %0A.
func EncodeComponent(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if shouldEscape(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	buf := make([]byte, 0, len(s)+2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if shouldEscape(c) {
			buf = append(buf, '%', upperhex[c>>4], upperhex[c&15])
			continue
		}
		buf = append(buf, c)
	}
	return string(buf)
}

// DecodeComponent reverses EncodeComponent. A '+' stays a plus sign.
func DecodeComponent(s string) (string, error) {
	out, err := url.PathUnescape(s)
	if err != nil {
		return "", errors.Join(ErrInvalidEncoding, err)
	}
	return out, nil
}

// ParseURI decodes a mailto URI into its recipient, subject and body.
// Header names are matched case-insensitively; unknown headers are ignored.
func ParseURI(uri string) (MailMessage, error) {
	if len(uri) < len(scheme) || !strings.EqualFold(uri[:len(scheme)], scheme) {
		return MailMessage{}, ErrInvalidURI
	}

	rest := uri[len(scheme):]
	recipient, query, _ := strings.Cut(rest, "?")
	if recipient == "" {
		return MailMessage{}, ErrInvalidURI
	}

	rcpt, err := DecodeComponent(recipient)
	if err != nil {
		return MailMessage{}, errors.Join(ErrInvalidURI, err)
	}

	msg := MailMessage{Recipient: rcpt, EncodedURI: uri}
	for _, pair := range strings.Split(query, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		decoded, err := DecodeComponent(value)
		if err != nil {
			return MailMessage{}, errors.Join(ErrInvalidURI, err)
		}
		switch strings.ToLower(key) {
		case "subject":
			msg.Subject = decoded
		case "body":
			msg.Body = decoded
		}
	}
	return msg, nil
}
