// Package parser provides shell command parsing utilities.
package parser

import (
	"regexp"
	"strings"
)

// Command represents a parsed shell command string. A command line may chain
// several simple commands with pipes and separators; each becomes a Segment.
type Command struct {
	Raw      string
	Segments []Segment
}

// Segment is one simple command within a pipeline or chain.
type Segment struct {
	Env          map[string]string
	Program      string
	Args         []string
	Flags        []string
	Redirections []Redirection
}

// Redirection is an output redirection attached to a segment.
type Redirection struct {
	Op     string // ">" or ">>"
	Target string
}

var envVarPattern = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)=(.*)$`)

// Parse parses a shell command string into its segments.
func Parse(cmd string) Command {
	result := Command{Raw: cmd}

	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return result
	}

	for _, tokens := range splitSegments(tokenize(cmd)) {
		if seg, ok := parseSegment(tokens); ok {
			result.Segments = append(result.Segments, seg)
		}
	}

	return result
}

func parseSegment(tokens []string) (Segment, bool) {
	seg := Segment{Env: make(map[string]string)}

	idx := 0

	// Leading environment variable assignments
	for idx < len(tokens) {
		match := envVarPattern.FindStringSubmatch(tokens[idx])
		if match == nil {
			break
		}
		seg.Env[match[1]] = match[2]
		idx++
	}

	if idx >= len(tokens) {
		return seg, len(seg.Env) > 0
	}

	seg.Program = tokens[idx]
	idx++

	for idx < len(tokens) {
		token := tokens[idx]
		switch {
		case isRedirectOp(token):
			if idx+1 < len(tokens) {
				seg.Redirections = append(seg.Redirections, Redirection{
					Op:     normalizeRedirectOp(token),
					Target: tokens[idx+1],
				})
				idx++
			}
		case strings.HasPrefix(token, "-"):
			seg.Flags = append(seg.Flags, token)
		default:
			seg.Args = append(seg.Args, token)
		}
		idx++
	}

	return seg, true
}

// splitSegments splits a token stream on pipe and chain separators.
func splitSegments(tokens []string) [][]string {
	var segments [][]string
	var current []string

	for _, tok := range tokens {
		switch tok {
		case "|", "||", "&&", ";", "&":
			if len(current) > 0 {
				segments = append(segments, current)
				current = nil
			}
		default:
			current = append(current, tok)
		}
	}

	if len(current) > 0 {
		segments = append(segments, current)
	}

	return segments
}

func isRedirectOp(token string) bool {
	switch token {
	case ">", ">>", "1>", "1>>", "2>", "2>>", "&>", "&>>":
		return true
	}
	return false
}

func normalizeRedirectOp(op string) string {
	if strings.HasSuffix(op, ">>") {
		return ">>"
	}
	return ">"
}

// tokenize splits a command string into tokens, respecting quotes. Chain
// separators and redirection operators become their own tokens even when not
// surrounded by spaces, so ">file" and "> file" parse the same way.
func tokenize(cmd string) []string {
	var tokens []string
	var current strings.Builder
	inSingleQuote := false
	inDoubleQuote := false
	escaped := false

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	runes := []rune(cmd)
	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if escaped {
			current.WriteRune(r)
			escaped = false
			continue
		}

		if inSingleQuote || inDoubleQuote {
			switch {
			case r == '\\' && inDoubleQuote:
				escaped = true
			case r == '\'' && inSingleQuote:
				inSingleQuote = false
			case r == '"' && inDoubleQuote:
				inDoubleQuote = false
			default:
				current.WriteRune(r)
			}
			continue
		}

		switch r {
		case '\\':
			escaped = true
		case '\'':
			inSingleQuote = true
		case '"':
			inDoubleQuote = true
		case ' ', '\t':
			flush()
		case '>':
			// Keep a file-descriptor prefix with its operator: "2>" is one token.
			fd := ""
			if s := current.String(); s == "1" || s == "2" {
				fd = s
				current.Reset()
			}
			flush()
			op := fd + ">"
			if i+1 < len(runes) && runes[i+1] == '>' {
				op = fd + ">>"
				i++
			}
			if i+1 < len(runes) && runes[i+1] == '&' {
				// fd duplication like 2>&1 carries no file target
				i++
				for i+1 < len(runes) && runes[i+1] >= '0' && runes[i+1] <= '9' {
					i++
				}
				continue
			}
			tokens = append(tokens, op)
		case ';':
			flush()
			tokens = append(tokens, ";")
		case '|', '&':
			flush()
			if i+1 < len(runes) && runes[i+1] == r {
				tokens = append(tokens, string(r)+string(r))
				i++
			} else {
				tokens = append(tokens, string(r))
			}
		default:
			current.WriteRune(r)
		}
	}

	flush()

	return tokens
}
