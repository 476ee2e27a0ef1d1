package apt

import (
	"reflect"
	"testing"
)

func TestParseOSRelease(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		wantID     string
		wantIDLike []string
	}{
		{
			name:    "debian",
			content: "PRETTY_NAME=\"Debian GNU/Linux 12 (bookworm)\"\nID=debian\nVERSION_ID=\"12\"\n",
			wantID:  "debian",
		},
		{
			name:       "ubuntu",
			content:    "NAME=\"Ubuntu\"\nID=ubuntu\nID_LIKE=debian\n",
			wantID:     "ubuntu",
			wantIDLike: []string{"debian"},
		},
		{
			name:       "mint quoted",
			content:    "ID=linuxmint\nID_LIKE=\"ubuntu debian\"\n",
			wantID:     "linuxmint",
			wantIDLike: []string{"ubuntu", "debian"},
		},
		{
			name: "empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, like := parseOSRelease(tt.content)
			if id != tt.wantID {
				t.Errorf("id = %q, want %q", id, tt.wantID)
			}
			if !reflect.DeepEqual(like, tt.wantIDLike) {
				t.Errorf("idLike = %v, want %v", like, tt.wantIDLike)
			}
		})
	}
}

func TestPlatformDebian(t *testing.T) {
	tests := []struct {
		p    Platform
		want bool
	}{
		{Platform{Distro: "debian"}, true},
		{Platform{Distro: "ubuntu", IDLike: []string{"debian"}}, true},
		{Platform{Distro: "fedora", IDLike: []string{"rhel"}}, false},
	}
	for _, tt := range tests {
		if got := tt.p.Debian(); got != tt.want {
			t.Errorf("%s.Debian() = %v, want %v", tt.p.Distro, got, tt.want)
		}
	}
}
