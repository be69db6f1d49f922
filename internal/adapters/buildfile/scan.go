// Package buildfile provides narrow line-oriented scanners over CMake build files.
// It does not parse CMake: a line that is not recognized is ignored.
package buildfile

import (
	"bufio"
	"io"
	"strings"

	"go.trai.ch/focal/internal/core/domain"
)

const subdirectoryCall = "add_subdirectory("

// ScanGenerator reads r top to bottom and returns the generator named by the
// first directive or generator variable line. Scanning stops at that line.
// The result is empty when no line matches or the matching line names nothing.
func ScanGenerator(r io.Reader) string {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if value, ok := matchGenerator(scanner.Text()); ok {
			return value
		}
	}
	return ""
}

func matchGenerator(line string) (string, bool) {
	trimmed := strings.TrimLeft(line, " \t")
	if rest, ok := strings.CutPrefix(trimmed, domain.GeneratorDirective); ok {
		value := strings.TrimSpace(rest)
		if value == "" {
			return "", true
		}
		return domain.ExpandGeneratorAlias(value), true
	}

	if strings.Contains(line, domain.GeneratorVariable) {
		return firstQuoted(line)
	}

	return "", false
}

// firstQuoted returns the text between the first pair of double quotes.
func firstQuoted(line string) (string, bool) {
	start := strings.IndexByte(line, '"')
	if start < 0 {
		return "", false
	}
	end := strings.IndexByte(line[start+1:], '"')
	if end < 0 {
		return "", false
	}
	return line[start+1 : start+1+end], true
}

// ScanSubdirectories returns the path argument of every add_subdirectory call
// that starts a line. Quoted arguments are unquoted; otherwise the first
// whitespace separated token is used.
func ScanSubdirectories(r io.Reader) []string {
	var dirs []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if dir, ok := matchSubdirectory(scanner.Text()); ok {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

func matchSubdirectory(line string) (string, bool) {
	rest, ok := strings.CutPrefix(strings.TrimLeft(line, " \t"), subdirectoryCall)
	if !ok {
		return "", false
	}
	rest = strings.TrimLeft(rest, " \t")

	if strings.HasPrefix(rest, `"`) {
		return firstQuoted(rest)
	}

	arg, _, _ := strings.Cut(rest, ")")
	fields := strings.Fields(arg)
	if len(fields) == 0 {
		return "", false
	}
	return fields[0], true
}
