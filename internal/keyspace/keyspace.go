// Package keyspace composes partition keys for the single-table record layout.
package keyspace

import "fmt"

// RecordKey computes the storage key for one entity record.
// Records and index items share a table, so kinds namespace their ids.
func RecordKey(kind, id string) string {
	return fmt.Sprintf("%s#%s", kind, id)
}

// IndexKey computes the storage key for a kind's index record.
// The "index#" prefix cannot collide with RecordKey output because "index"
// is not a legal kind name (kind names never contain '#').
func IndexKey(kind string) string {
	return fmt.Sprintf("index#%s", kind)
}
