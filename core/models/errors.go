package models

import (
	"errors"
	"fmt"
)

// Audit record errors
var (
	ErrAuditKindRequired   = errors.New("audit record kind is required")
	ErrAuditDetailRequired = errors.New("audit record detail is required")
	ErrAuditRecordNotFound = errors.New("audit record not found")
)

// MalformedEntryError reports an override entry that does not match
// the id:host grammar. The offending entry is carried verbatim so an
// operator can fix the override without reading source code.
type MalformedEntryError struct {
	Entry string
}

func (e *MalformedEntryError) Error() string {
	return fmt.Sprintf("malformed topology entry %q: expected id:ipv4, e.g. 1:172.20.2.113", e.Entry)
}

// DuplicateIDError reports the same id mapped to two different hosts.
// Exact id:host repeats are tolerated and never produce this error.
type DuplicateIDError struct {
	ID          int
	Existing    string
	Conflicting string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate node id %d: already mapped to %s, conflicting entry maps it to %s", e.ID, e.Existing, e.Conflicting)
}

// InsufficientMembersError reports a topology below the configured
// minimum member count.
type InsufficientMembersError struct {
	Count   int
	Minimum int
}

func (e *InsufficientMembersError) Error() string {
	return fmt.Sprintf("topology has %d member(s), at least %d required", e.Count, e.Minimum)
}

// UnknownLocalIDError reports a render call for a node id that is not
// part of the resolved topology. Always a caller programming error.
type UnknownLocalIDError struct {
	LocalID int
}

func (e *UnknownLocalIDError) Error() string {
	return fmt.Sprintf("local node id %d is not a member of the topology", e.LocalID)
}
