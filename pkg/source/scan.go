// pkg/source/scan.go
package source

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Scan lists the source package artifacts in dir. Files that do not look
// like source package parts are ignored.
func Scan(dir string) ([]Artifact, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	var artifacts []Artifact
	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(dir, name)

		if entry.IsDir() {
			// dpkg-source unpacks into <name>-<version>/ with a debian/ dir inside
			if _, err := os.Stat(filepath.Join(path, "debian", "control")); err == nil {
				artifacts = append(artifacts, Artifact{Name: name, Path: path, Kind: KindUnpacked})
			}
			continue
		}

		kind, ok := classify(name)
		if !ok {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		artifacts = append(artifacts, Artifact{Name: name, Path: path, Kind: kind, Size: info.Size()})
	}

	sort.Slice(artifacts, func(i, j int) bool {
		return artifacts[i].Name < artifacts[j].Name
	})
	return artifacts, nil
}

func classify(name string) (Kind, bool) {
	if strings.HasSuffix(name, ".asc") {
		return "", false
	}
	switch {
	case strings.HasSuffix(name, ".dsc"):
		return KindDsc, true
	case strings.HasSuffix(name, ".diff.gz"):
		return KindDiff, true
	case strings.Contains(name, ".orig.tar."), strings.Contains(name, ".orig-"):
		if strings.Contains(name, ".tar.") {
			return KindOrig, true
		}
	case strings.Contains(name, ".debian.tar."):
		return KindDebian, true
	case strings.Contains(name, ".tar."):
		return KindNative, true
	}
	return "", false
}

// CompressionOf infers tarball compression from the file name
func CompressionOf(name string) Compression {
	switch {
	case strings.HasSuffix(name, ".gz"):
		return CompressionGzip
	case strings.HasSuffix(name, ".xz"):
		return CompressionXz
	case strings.HasSuffix(name, ".zst"):
		return CompressionZstd
	case strings.HasSuffix(name, ".bz2"):
		return CompressionBzip
	}
	return CompressionNone
}
