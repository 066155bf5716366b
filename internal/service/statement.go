// File: internal/service/statement.go
package service

import (
	"errors"
	"strings"
	"unicode"
)

var (
	ErrEmptyQuery          = errors.New("No query provided")
	ErrStatementNotAllowed = errors.New("This statement is not allowed.")
	// ErrMultipleStatements rejects anything after the first statement.
	ErrMultipleStatements = errors.New("You can only execute one statement at a time.")
)

// bannedPrefixes is a denylist checked against the upper-cased statement. It
// is not a sandbox.
var bannedPrefixes = []string{"ATTACH", "DETACH"}

type StatementKind int

const (
	// StatementRead returns rows.
	StatementRead StatementKind = iota
	// StatementWrite is DML or DDL; it reports an affected-row count.
	StatementWrite
)

func (k StatementKind) String() string {
	if k == StatementRead {
		return "read"
	}
	return "write"
}

// Statement is one accepted SQL statement.
type Statement struct {
	// Text is the trimmed input, as recorded in the query history.
	Text string
	// Body is the statement without its terminating semicolon.
	Body string
	Kind StatementKind
}

// ClassifyStatement trims query, rejects empty, denylisted and multi-statement
// input, and decides between the read and write paths by the leading "select".
func ClassifyStatement(query string) (Statement, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Statement{}, ErrEmptyQuery
	}

	upper := strings.ToUpper(query)
	for _, b := range bannedPrefixes {
		if strings.HasPrefix(upper, b) {
			return Statement{}, ErrStatementNotAllowed
		}
	}

	body, rest := splitStatement(query)
	if !blankSQL(rest) {
		return Statement{}, ErrMultipleStatements
	}
	if blankSQL(body) {
		return Statement{}, ErrEmptyQuery
	}

	st := Statement{Text: query, Body: strings.TrimSpace(body), Kind: StatementWrite}
	if strings.HasPrefix(strings.ToLower(query), "select") {
		st.Kind = StatementRead
	}
	return st, nil
}

// splitStatement returns the first statement of query without its
// terminating semicolon, and everything after that semicolon. Quoted strings,
// quoted identifiers and comments never end a statement. Inside CREATE
// TRIGGER a semicolon only ends the statement right after END.
func splitStatement(query string) (string, string) {
	var (
		lead     []string
		trigger  bool
		lastWord string
	)
	for i := 0; i < len(query); {
		c := query[i]
		switch {
		case c == '\'' || c == '"' || c == '`':
			i = skipQuoted(query, i, c)
			lastWord = ""
		case c == '[':
			i = skipPast(query, i+1, "]")
			lastWord = ""
		case strings.HasPrefix(query[i:], "--"):
			i = skipPast(query, i+2, "\n")
		case strings.HasPrefix(query[i:], "/*"):
			i = skipPast(query, i+2, "*/")
		case c == ';':
			if !trigger || strings.EqualFold(lastWord, "END") {
				return query[:i], query[i+1:]
			}
			lastWord = ""
			i++
		case isWordByte(c):
			j := i
			for j < len(query) && isWordByte(query[j]) {
				j++
			}
			lastWord = query[i:j]
			if len(lead) < 3 {
				lead = append(lead, strings.ToUpper(lastWord))
				trigger = trigger || createsTrigger(lead)
			}
			i = j
		default:
			if !unicode.IsSpace(rune(c)) {
				lastWord = ""
			}
			i++
		}
	}
	return query, ""
}

// blankSQL reports whether s holds nothing but whitespace and comments.
func blankSQL(s string) bool {
	for {
		s = strings.TrimLeftFunc(s, unicode.IsSpace)
		switch {
		case s == "":
			return true
		case strings.HasPrefix(s, "--"):
			s = s[skipPast(s, 2, "\n"):]
		case strings.HasPrefix(s, "/*"):
			s = s[skipPast(s, 2, "*/"):]
		default:
			return false
		}
	}
}

func createsTrigger(lead []string) bool {
	if len(lead) < 2 || lead[0] != "CREATE" {
		return false
	}
	if lead[1] == "TRIGGER" {
		return true
	}
	return len(lead) == 3 && (lead[1] == "TEMP" || lead[1] == "TEMPORARY") && lead[2] == "TRIGGER"
}

// skipQuoted returns the index just past the quote opened at i. A doubled
// quote character is an escaped one.
func skipQuoted(s string, i int, quote byte) int {
	for j := i + 1; j < len(s); j++ {
		if s[j] != quote {
			continue
		}
		if j+1 < len(s) && s[j+1] == quote {
			j++
			continue
		}
		return j + 1
	}
	return len(s)
}

// skipPast returns the index just past the first end at or after from, or
// len(s) when the construct is left open.
func skipPast(s string, from int, end string) int {
	if from > len(s) {
		return len(s)
	}
	idx := strings.Index(s[from:], end)
	if idx < 0 {
		return len(s)
	}
	return from + idx + len(end)
}

func isWordByte(c byte) bool {
	return c == '_' || c == '$' || c >= 0x80 ||
		('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}
