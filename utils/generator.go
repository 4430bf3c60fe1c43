package utils

import (
	"math/rand"
	"strings"
	"unicode"
)

const digitBytes = "1234567890"

// ShortID returns a random numeric identifier of the given length,
// used as the opaque public id for orders, order items, enrollments,
// notes and Q&A threads. Uniqueness is enforced by the database column.
func ShortID(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = digitBytes[rand.Intn(len(digitBytes))]
	}
	return string(b)
}

const slugSuffixBytes = "abcdefghijklmnopqrstuvwxyz0123456789"

// Slugify lowercases the title, replaces runs of non-alphanumerics with
// a single dash and appends a 5-char random suffix so slugs stay unique
// across same-titled courses.
func Slugify(title string) string {
	var sb strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			dash = false
		} else if !dash && sb.Len() > 0 {
			sb.WriteByte('-')
			dash = true
		}
	}
	slug := strings.TrimSuffix(sb.String(), "-")

	suffix := make([]byte, 5)
	for i := range suffix {
		suffix[i] = slugSuffixBytes[rand.Intn(len(slugSuffixBytes))]
	}
	if slug == "" {
		return string(suffix)
	}
	return slug + "-" + string(suffix)
}
