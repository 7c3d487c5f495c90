package utility

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// Slugify chuyển chuỗi thành dạng slug: chữ thường, khoảng trắng thay bằng '_'.
func Slugify(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	return whitespaceRegex.ReplaceAllString(s, "_")
}
