package seqio

import (
	"bytes"
	"compress/gzip"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

// setup variables
var (
	mixedCase = []byte("acAGcaGGaaGGctTActGG")
	pureACGT  = []byte("ACTGCGTGCGTGAAACGTGC")
)

// test results
var (
	expectedUpperCase = []byte("ACAGCAGGAAGGCTTACTGG")
	expectedRevComp   = []byte("GCACGTTTCACGCACGCAGT")
)

func TestUppercase(t *testing.T) {
	seq := append([]byte(nil), mixedCase...)
	Uppercase(seq)
	if !bytes.Equal(seq, expectedUpperCase) {
		t.Errorf("Uppercase failed: %s", seq)
	}
	// the fold is idempotent
	Uppercase(seq)
	if !bytes.Equal(seq, expectedUpperCase) {
		t.Errorf("Uppercase is not idempotent: %s", seq)
	}
}

func TestReverseComplement(t *testing.T) {
	if rc := ReverseComplement(pureACGT); !bytes.Equal(rc, expectedRevComp) {
		t.Errorf("ReverseComplement failed: %s", rc)
	}
	// a double reverse complement reconstructs the uppercased input
	if roundTrip := ReverseComplement(ReverseComplement(pureACGT)); !bytes.Equal(roundTrip, pureACGT) {
		t.Errorf("reverse complement round trip failed: %s", roundTrip)
	}
	// bytes outside {A,C,G,T} are reversed but not complemented
	if rc := ReverseComplement([]byte("ACGNT")); !bytes.Equal(rc, []byte("ANCGT")) {
		t.Errorf("ambiguity codes should pass through unchanged: %s", rc)
	}
}

func TestReadFASTA(t *testing.T) {
	tmpDir, err := ioutil.TempDir("", "seqio-test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	fastaData := []byte(">seq1\nACTGcgtgnCGTG\nAAACGTGC\n>seq2\nacgtACGT\n")
	plainFile := filepath.Join(tmpDir, "refs.fasta")
	if err := ioutil.WriteFile(plainFile, fastaData, 0644); err != nil {
		t.Fatal(err)
	}

	sequences, err := ReadFASTA(plainFile, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(sequences) != 2 {
		t.Fatalf("expected 2 sequences, got %d", len(sequences))
	}
	if sequences[0].ID != "seq1" || sequences[1].ID != "seq2" {
		t.Errorf("sequence IDs not parsed: %v, %v", sequences[0].ID, sequences[1].ID)
	}
	if string(sequences[0].Seq) != "ACTGcgtgnCGTGAAACGTGC" {
		t.Errorf("multi-line sequence not assembled: %s", sequences[0].Seq)
	}
	if string(sequences[1].Seq) != "acgtACGT" {
		t.Errorf("unexpected sequence: %s", sequences[1].Seq)
	}

	// the reader must transparently handle gzipped input
	gzFile := filepath.Join(tmpDir, "refs.fasta.gz")
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write(fastaData); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
	if err := ioutil.WriteFile(gzFile, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	gzSequences, err := ReadFASTA(gzFile, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(gzSequences) != 2 || string(gzSequences[0].Seq) != string(sequences[0].Seq) {
		t.Errorf("gzipped FASTA was not read back identically")
	}

	// an empty file is an error, not an empty result
	emptyFile := filepath.Join(tmpDir, "empty.fasta")
	if err := ioutil.WriteFile(emptyFile, []byte(""), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadFASTA(emptyFile, false); err == nil {
		t.Error("expected an error for a FASTA file with no sequences")
	}
}
