// pkg/source/archive.go
package source

import (
	"archive/tar"
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// ListArchive returns the members of the tarball at path
func ListArchive(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening archive: %w", err)
	}
	defer f.Close()

	return ReadArchive(f, CompressionOf(path))
}

// ReadArchive lists the members of a tarball compressed with c
func ReadArchive(r io.Reader, c Compression) ([]Entry, error) {
	var tarReader *tar.Reader

	// Handle different compression formats
	switch c {
	case CompressionGzip:
		gzReader, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("creating gzip reader: %w", err)
		}
		defer gzReader.Close()
		tarReader = tar.NewReader(gzReader)
	case CompressionXz:
		xzReader, err := xz.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("creating xz reader: %w", err)
		}
		tarReader = tar.NewReader(xzReader)
	case CompressionZstd:
		zstdReader, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("creating zstd reader: %w", err)
		}
		defer zstdReader.Close()
		tarReader = tar.NewReader(zstdReader)
	case CompressionBzip:
		tarReader = tar.NewReader(bzip2.NewReader(r))
	default:
		tarReader = tar.NewReader(r)
	}

	var entries []Entry
	for {
		header, err := tarReader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading tar entry: %w", err)
		}

		name := strings.TrimSuffix(strings.TrimPrefix(header.Name, "./"), "/")
		if name == "" || name == "." {
			continue
		}

		entry := Entry{Name: name}
		switch header.Typeflag {
		case tar.TypeDir:
			entry.Dir = true
		case tar.TypeSymlink, tar.TypeLink:
			entry.Linkname = header.Linkname
		default:
			entry.Size = header.Size
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
