/*
	the seqio package contains custom types and methods for holding and normalising sequence data
*/
package seqio

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/biogo/biogo/alphabet"
	bioseqio "github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// complementBases is the lookup table used during reverse complementation.
// only A<->T and C<->G are complemented - every other byte passes through unchanged, so ambiguity codes are kept as they are
var complementBases [256]byte

func init() {
	for i := range complementBases {
		complementBases[i] = byte(i)
	}
	complementBases['A'] = 'T'
	complementBases['T'] = 'A'
	complementBases['C'] = 'G'
	complementBases['G'] = 'C'
}

// Sequence is the base type for a reference sequence
type Sequence struct {
	ID  string
	Seq []byte
}

// Uppercase converts a sequence to upper case in place. It only touches bytes in the ASCII lowercase range and is idempotent
func Uppercase(seq []byte) {
	for i := range seq {
		if seq[i] > 96 && seq[i] < 123 {
			seq[i] -= 32
		}
	}
}

// ReverseComplement returns the reverse complement of a sequence in a freshly allocated buffer.
// It expects prior uppercasing; bytes outside {A,C,G,T} are copied through unchanged
func ReverseComplement(seq []byte) []byte {
	dest := make([]byte, len(seq))
	for i, base := range seq {
		dest[len(seq)-i-1] = complementBases[base]
	}
	return dest
}

// ReadFASTA loads all the sequences from a FASTA file (gzipped or not)
func ReadFASTA(path string, protein bool) ([]*Sequence, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	// handle gzipped input
	var r io.Reader = fh
	splitFilename := strings.Split(path, ".")
	if splitFilename[len(splitFilename)-1] == "gz" {
		gz, err := gzip.NewReader(fh)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		r = gz
	}

	// use the IUPAC nucleotide alphabet so that ambiguity codes survive the read
	var template *linear.Seq
	if protein {
		template = linear.NewSeq("", nil, alphabet.Protein)
	} else {
		template = linear.NewSeq("", nil, alphabet.DNAredundant)
	}

	sequences := []*Sequence{}
	scanner := bioseqio.NewScanner(fasta.NewReader(r, template))
	for scanner.Next() {
		s := scanner.Seq().(*linear.Seq)
		sequences = append(sequences, &Sequence{
			ID:  s.Name(),
			Seq: []byte(s.Seq.String()),
		})
	}
	if err := scanner.Error(); err != nil {
		return nil, err
	}
	if len(sequences) == 0 {
		return nil, fmt.Errorf("no sequences found in FASTA file: %v", path)
	}
	return sequences, nil
}
