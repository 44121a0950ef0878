package logger

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// messager describes an error that can report its own message without the chain.
// zerr.Error implements it.
type messager interface {
	Message() string
}

// metadataCarrier describes an error holding structured metadata, as zerr.Error does.
type metadataCarrier interface {
	Metadata() map[string]any
}

// errorEntry is one link of an error chain.
type errorEntry struct {
	message  string
	metadata []string
}

// collectErrorEntries walks the chain of err. Links without a message of their own, such as
// those zerr.With creates around a standard error, lend their metadata to the next link.
func collectErrorEntries(err error) []errorEntry {
	var entries []errorEntry
	var pending []string

	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, errorEntry{message: current.Error(), metadata: pending})
			break
		}

		meta := pending
		if c, ok := current.(metadataCarrier); ok {
			meta = append(meta, formatMetadata(c.Metadata())...)
		}
		if m.Message() == "" {
			pending = meta
		} else {
			entries = append(entries, errorEntry{message: m.Message(), metadata: meta})
			pending = nil
		}
		current = errors.Unwrap(current)
	}

	if len(pending) > 0 && len(entries) > 0 {
		last := &entries[len(entries)-1]
		last.metadata = append(last.metadata, pending...)
	}
	return entries
}

func formatMetadata(meta map[string]any) []string {
	keys := slices.Sorted(maps.Keys(meta))
	res := make([]string, len(keys))
	for i, k := range keys {
		res[i] = fmt.Sprintf("%s: %v", k, meta[k])
	}
	return res
}

// formatErrorEntries renders entries as
//
//	Error: first message
//	       key: value
//
//	  Caused by:
//	    → next message
func formatErrorEntries(entries []errorEntry) string {
	var lines []string

	for i, e := range entries {
		msgLines := strings.Split(e.message, "\n")
		head, indent := "    → ", "      "
		if i == 0 {
			head, indent = "Error: ", "       "
		} else if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}

		lines = append(lines, head+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}
		for _, kv := range e.metadata {
			lines = append(lines, indent+kv)
		}
	}

	return strings.Join(lines, "\n")
}

// FormatError renders err with its cause chain the way the pretty logger prints it.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	return formatErrorEntries(collectErrorEntries(err))
}
