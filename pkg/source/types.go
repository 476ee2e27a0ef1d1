// pkg/source/types.go
package source

// Kind classifies a file left behind by `apt-get source`
type Kind string

const (
	KindDsc      Kind = "dsc"      // Debian source control file
	KindOrig     Kind = "orig"     // Upstream tarball (*.orig.tar.*)
	KindDebian   Kind = "debian"   // Packaging tarball (*.debian.tar.*)
	KindDiff     Kind = "diff"     // Old-style packaging diff (*.diff.gz)
	KindNative   Kind = "native"   // Native package tarball (*.tar.*)
	KindUnpacked Kind = "unpacked" // Directory dpkg-source extracted
)

// Artifact is one source package file or directory
type Artifact struct {
	Name string // Base name
	Path string // Full path
	Kind Kind
	Size int64 // Zero for directories
}

// Compression of a tarball
type Compression string

const (
	CompressionNone Compression = ""
	CompressionGzip Compression = "gz"
	CompressionXz   Compression = "xz"
	CompressionZstd Compression = "zst"
	CompressionBzip Compression = "bz2"
)

// Entry is a member of a tarball
type Entry struct {
	Name     string
	Size     int64
	Dir      bool
	Linkname string // Symlink target, if any
}
