package pcd

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// File is a point data file, transparently decompressed.
type File struct {
	io.Reader

	name    string
	closers []io.Closer
	digest  *xxhash.Digest
}

// Open opens the named file. Files with .gz, .zst and .lz4 extension
// are decompressed.
func Open(name string) (*File, error) {
	fp, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	f := &File{
		name:    name,
		closers: []io.Closer{fp},
		digest:  xxhash.New(),
	}

	var r io.Reader = fp
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		zr, err := gzip.NewReader(fp)
		if err != nil {
			fp.Close()
			return nil, err
		}
		f.closers = append(f.closers, zr)
		r = zr
	case ".zst":
		zr, err := zstd.NewReader(fp)
		if err != nil {
			fp.Close()
			return nil, err
		}
		rc := zr.IOReadCloser()
		f.closers = append(f.closers, rc)
		r = rc
	case ".lz4":
		r = lz4.NewReader(fp)
	}
	f.Reader = io.TeeReader(r, f.digest)
	return f, nil
}

// Format returns extension of the file without compression suffix.
func (f *File) Format() string {
	return Format(f.name)
}

// Sum64 returns xxhash digest of the decompressed data read so far.
func (f *File) Sum64() uint64 {
	return f.digest.Sum64()
}

func (f *File) Close() error {
	var err error
	for i := len(f.closers) - 1; i >= 0; i-- {
		if e := f.closers[i].Close(); e != nil && err == nil {
			err = e
		}
	}
	return err
}

// Format returns lower-cased extension of the name without compression suffix.
func Format(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".gz", ".zst", ".lz4":
		return strings.ToLower(filepath.Ext(strings.TrimSuffix(name, filepath.Ext(name))))
	}
	return ext
}
