package types

import (
	"cosmossdk.io/math"
)

// LedgerEntry holds one investor's deposited amount together with the
// investor's position in the key sequence.
type LedgerEntry struct {
	Amount math.Int `json:"amount"`
	Index  int      `json:"index"`
}

// Ledger is an iterable map of investor address to deposited amount. It
// keeps a dense key slice next to the entry map so that insertion, point
// lookup, and removal are O(1) while the full set stays enumerable.
// Removal swaps the last key into the freed slot, so key order is not
// stable across removals.
type Ledger struct {
	Keys    []string                `json:"keys"`
	Entries map[string]*LedgerEntry `json:"entries"`
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		Keys:    []string{},
		Entries: make(map[string]*LedgerEntry),
	}
}

// Add inserts key with the given amount, or accumulates onto the existing
// entry. Bounds checking is the caller's responsibility.
func (l *Ledger) Add(key string, amount math.Int) {
	if entry, ok := l.Entries[key]; ok {
		entry.Amount = entry.Amount.Add(amount)
		return
	}
	l.Entries[key] = &LedgerEntry{
		Amount: amount,
		Index:  len(l.Keys),
	}
	l.Keys = append(l.Keys, key)
}

// Get returns the amount stored for key, or zero if absent. Never fails.
func (l *Ledger) Get(key string) math.Int {
	if entry, ok := l.Entries[key]; ok {
		return entry.Amount
	}
	return math.ZeroInt()
}

// Has reports whether key is present.
func (l *Ledger) Has(key string) bool {
	_, ok := l.Entries[key]
	return ok
}

// Remove deletes key. Absent keys are a no-op. The last key in the
// sequence is swapped into the freed slot and its index patched, keeping
// removal O(1).
func (l *Ledger) Remove(key string) {
	entry, ok := l.Entries[key]
	if !ok {
		return
	}
	last := len(l.Keys) - 1
	if entry.Index != last {
		moved := l.Keys[last]
		l.Keys[entry.Index] = moved
		l.Entries[moved].Index = entry.Index
	}
	l.Keys = l.Keys[:last]
	delete(l.Entries, key)
}

// RemoveAll clears every entry. Safe on an already-empty ledger.
func (l *Ledger) RemoveAll() {
	l.Keys = []string{}
	l.Entries = make(map[string]*LedgerEntry)
}

// Len returns the number of investors present.
func (l *Ledger) Len() int {
	return len(l.Keys)
}

// IsEmpty reports whether the ledger holds no investors.
func (l *Ledger) IsEmpty() bool {
	return len(l.Keys) == 0
}

// AllKeys returns a copy of the key sequence, safe to hold across
// mutations.
func (l *Ledger) AllKeys() []string {
	keys := make([]string, len(l.Keys))
	copy(keys, l.Keys)
	return keys
}

// KeyAt returns the key at index i, or false when i is out of range.
func (l *Ledger) KeyAt(i int) (string, bool) {
	if i < 0 || i >= len(l.Keys) {
		return "", false
	}
	return l.Keys[i], true
}

// AmountAt returns the amount at index i, or false when i is out of range.
func (l *Ledger) AmountAt(i int) (math.Int, bool) {
	key, ok := l.KeyAt(i)
	if !ok {
		return math.ZeroInt(), false
	}
	return l.Entries[key].Amount, true
}
