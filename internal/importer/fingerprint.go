package importer

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
	"sync"
)

// fingerprintFields is the fixed subset of fields that identifies a batch.
var fingerprintFields = []Field{
	FieldFullName,
	FieldAddress,
	FieldMobile,
	FieldBadgeID,
	FieldAssignedTo,
	FieldBloodGroup,
}

// Fingerprint derives an order-insensitive digest for a batch of candidate
// records: per record, the normalized identifying values joined with "|";
// the per-record strings sorted and joined; the result hashed. Re-uploading
// the same logical data in a different row order produces the same
// fingerprint.
func Fingerprint(records []Record) string {
	keys := make([]string, 0, len(records))
	for _, record := range records {
		parts := make([]string, 0, len(fingerprintFields))
		for _, field := range fingerprintFields {
			parts = append(parts, strings.ToLower(strings.TrimSpace(record[field])))
		}
		keys = append(keys, strings.Join(parts, "|"))
	}
	sort.Strings(keys)

	sum := sha256.Sum256([]byte(strings.Join(keys, ";")))
	return hex.EncodeToString(sum[:])
}

// FingerprintSet is the session-scoped set of already-imported batch
// fingerprints. It is a convenience guard against accidental re-uploads
// within one server run, not a durable cross-restart dedup guarantee; it
// grows monotonically and is never pruned. The set is an explicit value
// owned by the import flow, not a package global, so it can be constructed
// fresh per test.
type FingerprintSet struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

// NewFingerprintSet creates an empty fingerprint set.
func NewFingerprintSet() *FingerprintSet {
	return &FingerprintSet{seen: make(map[string]struct{})}
}

// Contains reports whether a fingerprint has already been recorded.
func (s *FingerprintSet) Contains(fingerprint string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.seen[fingerprint]
	return ok
}

// Add records a fingerprint. Called only after the batch insert succeeded.
func (s *FingerprintSet) Add(fingerprint string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seen[fingerprint] = struct{}{}
}
