package model

import "strings"

const (
	CodeownersPath          = "CODEOWNERS"
	CodeownersCommitMessage = "CODEOWNERS by newgit"
	codeownersMarker        = "# added by newgit"
)

// AppendCodeowners adds a "* handle" entry to existing CODEOWNERS content.
// Prior content is kept byte for byte and repeated calls add repeated entries.
func AppendCodeowners(existing, handle string) string {
	entry := codeownersMarker + "\n* " + handle
	if existing == "" {
		return entry
	}
	return existing + "\n" + entry
}

// CodeownersEntries returns the owners listed for the "*" pattern, in order.
func CodeownersEntries(content string) []string {
	var owners []string
	for _, line := range strings.Split(content, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 || fields[0] != "*" {
			continue
		}
		owners = append(owners, fields[1:]...)
	}
	return owners
}
