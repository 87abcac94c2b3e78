// Package minimizer computes winnowed minimizer sketches of sequences. A sketch is a compact, position-tagged set of canonical k-mer hashes, selected with the sliding-window winnowing algorithm used by MashMap.
package minimizer

import (
	"fmt"
	"math"

	"github.com/skmap-bio/skmap/src/seqio"
)

// NucleotideAlphabet is the alphabet size that activates reverse complement handling
const NucleotideAlphabet = 4

// ProteinAlphabet is the alphabet size used for amino acid sequences
const ProteinAlphabet = 20

// Strand indicates which orientation of a k-mer produced the minimal hash
type Strand uint8

const (
	// Forward means the k-mer as read from the sequence gave the minimal hash
	Forward Strand = iota

	// Reverse means the reverse complement gave the minimal hash
	Reverse
)

// String satisfies the Stringer interface for a Strand
func (strand Strand) String() string {
	if strand == Forward {
		return "+"
	}
	return "-"
}

// Record is a single minimizer: a canonical k-mer hash tagged with the sequence and window it came from
type Record struct {
	Hash     uint64 // canonical k-mer hash
	SeqID    int32  // caller-assigned identifier of the sequence that produced this record
	WindowID int32  // index of the first sliding window for which this record was the selected minimum
	Strand   Strand // orientation that produced the minimal hash
}

// Index is the append-only minimizer sink. It is owned by the caller; the sketching engine only ever appends to it
type Index struct {
	KmerSize   int
	WindowSize int
	Records    []Record
}

// NewIndex is the Index constructor
func NewIndex(kmerSize, windowSize int) *Index {
	return &Index{
		KmerSize:   kmerSize,
		WindowSize: windowSize,
	}
}

// Add appends a record to the index
func (index *Index) Add(record Record) {
	index.Records = append(index.Records, record)
}

// Size returns the number of records held by the index
func (index *Index) Size() int {
	return len(index.Records)
}

// Merge appends all the records from another index. The caller is responsible for supplying indices in SeqID order
func (index *Index) Merge(other *Index) error {
	if index.KmerSize != other.KmerSize || index.WindowSize != other.WindowSize {
		return fmt.Errorf("mismatched sketching parameters: (k=%d,w=%d) vs. (k=%d,w=%d)", index.KmerSize, index.WindowSize, other.KmerSize, other.WindowSize)
	}
	index.Records = append(index.Records, other.Records...)
	return nil
}

// Sketcher holds the winnowing parameters and the hash oracle used to sketch sequences
type Sketcher struct {
	kmerSize     int
	windowSize   int
	alphabetSize int
	hasher       Hasher
}

// NewSketcher is the Sketcher constructor. The alphabet size selects nucleotide (4) or non-nucleotide handling
func NewSketcher(kmerSize, windowSize, alphabetSize int) (*Sketcher, error) {
	if kmerSize < 1 {
		return nil, fmt.Errorf("k-mer size must be a positive integer, got %d", kmerSize)
	}
	if windowSize < 1 {
		return nil, fmt.Errorf("window size must be a positive integer, got %d", windowSize)
	}
	return &Sketcher{
		kmerSize:     kmerSize,
		windowSize:   windowSize,
		alphabetSize: alphabetSize,
		hasher:       getHash,
	}, nil
}

// AddMinimizers sketches one sequence and appends the selected minimizers to the supplied index.
// The sequence buffer is uppercased in place as a documented side effect.
// Sequences too short to fill a single window yield no records and no error.
func (sketcher *Sketcher) AddMinimizers(seq []byte, seqID int32, index *Index) error {
	if index == nil {
		return fmt.Errorf("no index sink provided")
	}

	// case folding happens even for degenerate inputs - callers must not assume the buffer is unchanged
	seqio.Uppercase(seq)

	// a sequence shorter than k never opens a window
	if len(seq) < sketcher.kmerSize {
		return nil
	}

	// grab the reverse complement scratch buffer (nucleotide data only)
	var seqRev []byte
	if sketcher.alphabetSize == NucleotideAlphabet {
		seqRev = seqio.ReverseComplement(seq)
	}

	winnower := newWinnower(sketcher.windowSize)

	for i := 0; i <= len(seq)-sketcher.kmerSize; i++ {

		// the serial number of the current sliding window - the first valid window appears at i = windowSize - 1
		currentWindowID := i - sketcher.windowSize + 1

		// hash the forward k-mer, and the mirrored window of the reverse complement for nucleotide data
		hashFwd := sketcher.hasher(seq[i : i+sketcher.kmerSize])
		hashBwd := uint64(math.MaxUint64)
		if sketcher.alphabetSize == NucleotideAlphabet {
			hashBwd = sketcher.hasher(seqRev[len(seq)-i-sketcher.kmerSize : len(seq)-i])
		}

		// self-symmetric k-mers carry no strand information and never enter the queue
		if hashFwd == hashBwd {
			continue
		}

		// the canonical k-mer is the smaller of the two hashes
		canonicalHash, strand := hashFwd, Forward
		if hashBwd < hashFwd {
			canonicalHash, strand = hashBwd, Reverse
		}

		winnower.push(canonicalHash, strand, i, currentWindowID, seqID, index)
	}
	return nil
}

// queueEntry pairs a candidate minimizer with the k-mer start offset used to test window expiry
type queueEntry struct {
	hash   uint64
	strand Strand
	offset int
}

// winnower is the sliding-window minimum engine. The queue is monotonic: hashes strictly increase from front to back, so the front is always the current window minimum
type winnower struct {
	windowSize int
	queue      []queueEntry

	// the (hash, strand) pair of the last emitted record - used to suppress re-emission while the same minimizer represents consecutive windows
	lastHash   uint64
	lastStrand Strand
	emitted    bool
}

// newWinnower is the winnower constructor
func newWinnower(windowSize int) *winnower {
	return &winnower{
		windowSize: windowSize,
	}
}

// push feeds one canonical k-mer to the engine and, once the first full window has been seen, appends the window minimum to the index if it differs from the previous emission
func (winnower *winnower) push(hash uint64, strand Strand, offset, currentWindowID int, seqID int32, index *Index) {

	// if the front minimum has fallen outside the current window, remove it
	for len(winnower.queue) > 0 && winnower.queue[0].offset <= offset-winnower.windowSize {
		winnower.queue = winnower.queue[1:]
	}

	// back entries hashing greater than or equal to the candidate can never again be the minimum while the candidate remains in range, so drop them (ties favour the newer entry)
	for len(winnower.queue) > 0 && winnower.queue[len(winnower.queue)-1].hash >= hash {
		winnower.queue = winnower.queue[:len(winnower.queue)-1]
	}

	winnower.queue = append(winnower.queue, queueEntry{hash: hash, strand: strand, offset: offset})

	// no emission until the first full window has been seen
	if currentWindowID < 0 {
		return
	}

	// the same minimizer represents consecutive windows without being re-emitted
	front := winnower.queue[0]
	if winnower.emitted && front.hash == winnower.lastHash && front.strand == winnower.lastStrand {
		return
	}

	// stamp the record with the first window it was selected for and append it
	index.Add(Record{
		Hash:     front.hash,
		SeqID:    seqID,
		WindowID: int32(currentWindowID),
		Strand:   front.strand,
	})
	winnower.lastHash = front.hash
	winnower.lastStrand = front.strand
	winnower.emitted = true
}
