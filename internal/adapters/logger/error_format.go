package logger

import (
	"errors"
	"strings"
)

// messager describes an error that can report its own message without the chain.
// This matches the Message() method provided by zerr.Error (go.trai.ch/zerr v0.3.0+).
// If zerr's API changes, errors gracefully fall back to standard error handling.
type messager interface {
	Message() string
}

// collectErrorMessages traverses the error chain and returns one message per
// level. A zerr error contributes its own message and traversal continues;
// a standard error contributes its full Error() text and traversal stops,
// since stdlib wrapping repeats the inner text at every level.
func collectErrorMessages(err error) []string {
	var messages []string
	current := err

	for current != nil {
		if m, ok := current.(messager); ok {
			messages = append(messages, m.Message())
			current = errors.Unwrap(current)
		} else {
			messages = append(messages, current.Error())
			break
		}
	}

	return messages
}

// formatErrorChain renders collected messages hierarchically:
//
//	Error: <main>
//
//	  Caused by:
//	    → <cause>
//	    → <deeper cause>
//
// Continuation lines of multiline messages are indented to stay aligned.
func formatErrorChain(messages []string) string {
	var formatted []string

	for i, msg := range messages {
		lines := strings.Split(msg, "\n")

		if i == 0 {
			formatted = append(formatted, "Error: "+lines[0])
			for _, line := range lines[1:] {
				formatted = append(formatted, "       "+line)
			}
			continue
		}

		if i == 1 {
			formatted = append(formatted, "", "  Caused by:")
		}
		formatted = append(formatted, "    → "+lines[0])
		for _, line := range lines[1:] {
			formatted = append(formatted, "      "+line)
		}
	}

	return strings.Join(formatted, "\n")
}
