package store

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"

	. "src.graphcalc.dev/pkg/store/storedefs"
)

// NewFileStore returns a Store that appends records to a text file, one
// "<Type>|<Expr>" line per record. The file is opened for each operation and
// created when the first record is added.
func NewFileStore(path string) Store {
	return fileStore{path}
}

type fileStore struct{ path string }

func (s fileStore) Name() string { return s.path }

func (s fileStore) Close() error { return nil }

func (s fileStore) AddRecord(r Record) error {
	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(f, r)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	return err
}

// Records returns every line of the file. Lines that do not parse as records
// are kept verbatim in Expr with an empty Type, so that a log written by hand
// is still listed in full.
func (s fileStore) Records() ([]Record, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoRecords
	} else if err != nil {
		return nil, err
	}
	defer f.Close()

	var records []Record
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		r, err := ParseRecord(line)
		if err != nil {
			logger.Printf("%s: %v", s.path, err)
			r = Record{Expr: line}
		}
		records = append(records, r)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	return records, nil
}
