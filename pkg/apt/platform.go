// pkg/apt/platform.go
package apt

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// Platform describes the apt tooling available on this host
type Platform struct {
	OS         string // linux, darwin, windows
	Distro     string // ID from /etc/os-release (debian, ubuntu, ...)
	IDLike     []string
	CacheTool  string // Resolved path of the query tool, empty if missing
	SourceTool string // Resolved path of the source tool, empty if missing
}

// DetectPlatform inspects the host for the given tools
func DetectPlatform(cacheTool, sourceTool string) (*Platform, error) {
	if cacheTool == "" {
		cacheTool = DefaultCacheTool
	}
	if sourceTool == "" {
		sourceTool = DefaultSourceTool
	}

	p := &Platform{OS: runtime.GOOS}
	if path, err := exec.LookPath(cacheTool); err == nil {
		p.CacheTool = path
	}
	if path, err := exec.LookPath(sourceTool); err == nil {
		p.SourceTool = path
	}

	if p.OS != "linux" {
		return p, fmt.Errorf("apt only supports Linux, got: %s", p.OS)
	}

	data, err := os.ReadFile("/etc/os-release")
	if err == nil {
		p.Distro, p.IDLike = parseOSRelease(string(data))
	}

	return p, nil
}

// Debian reports whether the host is Debian or a derivative
func (p *Platform) Debian() bool {
	if p.Distro == "debian" {
		return true
	}
	for _, id := range p.IDLike {
		if id == "debian" {
			return true
		}
	}
	return false
}

// Ready reports whether both tools were found
func (p *Platform) Ready() bool {
	return p.CacheTool != "" && p.SourceTool != ""
}

// String returns a string representation of the platform
func (p *Platform) String() string {
	return fmt.Sprintf("%s/%s (cache tool: %q, source tool: %q)",
		p.OS, p.Distro, p.CacheTool, p.SourceTool)
}

func parseOSRelease(content string) (id string, idLike []string) {
	for _, line := range strings.Split(content, "\n") {
		key, value, ok := strings.Cut(strings.TrimSpace(line), "=")
		if !ok {
			continue
		}
		value = strings.Trim(value, `"'`)
		switch key {
		case "ID":
			id = strings.ToLower(value)
		case "ID_LIKE":
			idLike = strings.Fields(strings.ToLower(value))
		}
	}
	return id, idLike
}
