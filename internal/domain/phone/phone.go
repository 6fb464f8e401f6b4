package phone

import (
	"regexp"
	"strings"
)

const (
	// CountryCode is the Colombian calling code prepended to every number.
	CountryCode = "57"

	UserSuffix  = "@s.whatsapp.net"
	GroupSuffix = "@g.us"
)

var nonDigits = regexp.MustCompile(`\D+`)

// ParseColombianPhones extracts every Colombian mobile number found in a free
// text phone field and returns them as WhatsApp user ids (57XXXXXXXXXX@s.whatsapp.net).
//
// A segment is kept when it is a 10 digit number starting with 3, optionally
// preceded by the 57 country code. Order of first appearance is preserved.
func ParseColombianPhones(raw string) []string {
	out := []string{}
	seen := map[string]bool{}
	for _, seg := range nonDigits.Split(raw, -1) {
		if len(seg) == 12 && strings.HasPrefix(seg, CountryCode) {
			seg = seg[len(CountryCode):]
		}
		if len(seg) != 10 || seg[0] != '3' {
			continue
		}
		jid := CountryCode + seg + UserSuffix
		if seen[jid] {
			continue
		}
		seen[jid] = true
		out = append(out, jid)
	}
	return out
}

// FromJID strips the chat suffix (and any device part) from a chat id.
func FromJID(jid string) string {
	if i := strings.IndexByte(jid, '@'); i >= 0 {
		jid = jid[:i]
	}
	if i := strings.IndexByte(jid, ':'); i >= 0 {
		jid = jid[:i]
	}
	return jid
}

func IsGroupJID(jid string) bool {
	return strings.HasSuffix(jid, GroupSuffix)
}

// ToJID turns a normalized number into a user chat id. Values that already
// carry a suffix are returned untouched.
func ToJID(number string) string {
	if strings.Contains(number, "@") {
		return number
	}
	return number + UserSuffix
}

// NormalizePartsNumber cleans a configured number: digits only, and the
// country code is prepended to the last 10 digits when missing.
// An empty result means the number is not configured.
func NormalizePartsNumber(raw string) string {
	digits := nonDigits.ReplaceAllString(raw, "")
	if digits == "" {
		return ""
	}
	if strings.HasPrefix(digits, CountryCode) && len(digits) > 10 {
		return digits
	}
	if len(digits) > 10 {
		digits = digits[len(digits)-10:]
	}
	return CountryCode + digits
}

// Normalize converts a phone written by a person ("+57 310 123 4567",
// "3101234567", a chat id) into the 57XXXXXXXXXX form used as storage key.
// It returns "" when no Colombian mobile number is found.
func Normalize(raw string) string {
	if strings.Contains(raw, "@") {
		raw = FromJID(raw)
	}
	found := ParseColombianPhones(raw)
	if len(found) == 0 {
		digits := nonDigits.ReplaceAllString(raw, "")
		if len(digits) == 12 && strings.HasPrefix(digits, CountryCode+"3") {
			return digits
		}
		return ""
	}
	return FromJID(found[0])
}
