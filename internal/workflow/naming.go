package workflow

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	whitespacePattern = regexp.MustCompile(`\s+`)
	branchJunkPattern = regexp.MustCompile(`[^\w-]`)
)

// BranchName derives a git branch name from a task title:
// "Fix the Login Bug!!" becomes "fix-the-login-bug"
func BranchName(title string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(title))
	name = whitespacePattern.ReplaceAllString(name, "-")
	name = branchJunkPattern.ReplaceAllString(name, "")
	if name == "" {
		return "", fmt.Errorf("cannot derive a branch name from title %q", title)
	}
	return name, nil
}

// Title joins command line words into a title with an upper-case first letter
func Title(words []string) string {
	title := strings.TrimSpace(strings.Join(words, " "))
	r, size := utf8.DecodeRuneInString(title)
	if r == utf8.RuneError {
		return title
	}
	return string(unicode.ToUpper(r)) + title[size:]
}
