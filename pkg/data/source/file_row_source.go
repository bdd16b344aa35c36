package source

import (
	"compress/gzip"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/snappy"
	"github.com/pkg/errors"
)

// Header is the column layout every sensor log export starts with.
var Header = []string{"time", "site", "device", "metric", "unit", "value"}

const (
	errMissingHeaderFmt = "file %s: missing or short header row"
	errBadHeaderFmt     = "file %s: header column %d is '%s', want '%s'"
)

// FileRowSource reads tokenized rows from a CSV sensor log. Files ending in
// .gz or .sz are transparently decompressed (gzip and framed snappy). Reset
// re-opens the file, which makes the source restartable for a second pass.
type FileRowSource struct {
	path string

	file    *os.File
	decomp  io.Closer
	csv     *csv.Reader
	current []string
	rowNum  int
	err     error
}

// NewFileRowSource opens the file at path and validates its header row.
func NewFileRowSource(path string) (*FileRowSource, error) {
	f := &FileRowSource{path: path}
	if err := f.open(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *FileRowSource) open() error {
	file, err := os.Open(f.path)
	if err != nil {
		return errors.Wrap(err, "opening row source")
	}

	var r io.Reader = file
	switch strings.ToLower(filepath.Ext(f.path)) {
	case ".gz":
		gz, err := gzip.NewReader(file)
		if err != nil {
			file.Close()
			return errors.Wrap(err, "opening gzip row source")
		}
		f.decomp = gz
		r = gz
	case ".sz":
		r = snappy.NewReader(file)
	}

	cr := csv.NewReader(r)
	// Ragged rows are the parser's business (they are a fatal MalformedRow
	// there), so the csv layer must not reject them first.
	cr.FieldsPerRecord = -1

	f.file = file
	f.csv = cr
	f.current = nil
	f.rowNum = 0
	f.err = nil

	return f.checkHeader()
}

func (f *FileRowSource) checkHeader() error {
	header, err := f.csv.Read()
	if err != nil {
		return errors.Errorf(errMissingHeaderFmt, f.path)
	}
	if len(header) != len(Header) {
		return errors.Errorf(errMissingHeaderFmt, f.path)
	}
	for i, col := range header {
		if !strings.EqualFold(strings.TrimSpace(col), Header[i]) {
			return errors.Errorf(errBadHeaderFmt, f.path, i, col, Header[i])
		}
	}
	return nil
}

func (f *FileRowSource) Next() bool {
	if f.err != nil {
		return false
	}
	record, err := f.csv.Read()
	if err == io.EOF {
		return false
	}
	if err != nil {
		f.err = errors.Wrap(err, "reading row source")
		return false
	}
	f.current = record
	f.rowNum++
	return true
}

func (f *FileRowSource) Row() []string {
	return f.current
}

func (f *FileRowSource) RowNumber() int {
	return f.rowNum
}

func (f *FileRowSource) Err() error {
	return f.err
}

// Reset closes and re-opens the underlying file, rewinding to the first data
// row.
func (f *FileRowSource) Reset() error {
	if err := f.Close(); err != nil {
		return err
	}
	return f.open()
}

func (f *FileRowSource) Close() error {
	if f.decomp != nil {
		f.decomp.Close()
		f.decomp = nil
	}
	if f.file != nil {
		err := f.file.Close()
		f.file = nil
		return err
	}
	return nil
}
