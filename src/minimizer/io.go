package minimizer

import (
	"fmt"
	"io/ioutil"

	"gopkg.in/vmihailenco/msgpack.v2"
)

// Dump is a method to write the index to file
func (index *Index) Dump(path string) error {
	b, err := msgpack.Marshal(index)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, b, 0644)
}

// LoadIndex reads an index back from file
func LoadIndex(path string) (*Index, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	index := &Index{}
	if err := msgpack.Unmarshal(b, index); err != nil {
		return nil, err
	}
	if index.KmerSize < 1 || index.WindowSize < 1 {
		return nil, fmt.Errorf("index file is corrupted: %v", path)
	}
	return index, nil
}
