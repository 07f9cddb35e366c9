// Package keyset maintains the recognition alphabet for a client locale.
//
// The baseline key list is a plain text file of characters that only ever
// grows: each run reads it under an exclusive lock, appends characters seen in
// the new corpus, and writes the merged text back. Merge and Derive are pure
// so the accumulation rule can be tested without touching disk.
package keyset
