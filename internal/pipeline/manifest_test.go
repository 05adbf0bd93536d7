package pipeline

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseManifest(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []Requirement
		wantErr bool
	}{
		{
			name:  "exact pins",
			input: "aiohttp==3.11.11\nmashumaro==3.15\n",
			want: []Requirement{
				{Name: "aiohttp", Constraint: "==3.11.11"},
				{Name: "mashumaro", Constraint: "==3.15"},
			},
		},
		{
			name:  "bare name",
			input: "orjson\n",
			want:  []Requirement{{Name: "orjson", Constraint: ""}},
		},
		{
			name:  "range constraint",
			input: "zeroconf>=0.136.0,<1.0\n",
			want:  []Requirement{{Name: "zeroconf", Constraint: ">=0.136.0,<1.0"}},
		},
		{
			name:  "extras",
			input: "aiohttp[speedups]==3.11.11\n",
			want:  []Requirement{{Name: "aiohttp", Constraint: "[speedups]==3.11.11"}},
		},
		{
			name:  "environment marker",
			input: "uvloop==0.21.0; platform_system != \"Windows\"\n",
			want:  []Requirement{{Name: "uvloop", Constraint: "==0.21.0; platform_system != \"Windows\""}},
		},
		{
			name:  "comments and blanks",
			input: "# pinned by release tooling\n\naiohttp==3.11.11  # web stack\n",
			want:  []Requirement{{Name: "aiohttp", Constraint: "==3.11.11"}},
		},
		{
			name:  "empty manifest",
			input: "# nothing pinned yet\n",
			want:  nil,
		},
		{
			name:    "option line rejected",
			input:   "--index-url https://pypi.org/simple\naiohttp==3.11.11\n",
			wantErr: true,
		},
		{
			name:    "invalid name",
			input:   "not a package==1.0\n",
			wantErr: true,
		},
		{
			name:    "leading separator",
			input:   "-aiohttp==3.11.11\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseManifest(strings.NewReader(tt.input))
			if tt.wantErr {
				if !errors.Is(err, ErrManifest) {
					t.Fatalf("err = %v, want ErrManifest", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d\ngot: %v", len(got), len(tt.want), got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("req[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestStripComment(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"# full line", ""},
		{"aiohttp==3.11.11  # trailing", "aiohttp==3.11.11"},
		{"  aiohttp==3.11.11  ", "aiohttp==3.11.11"},
		{"pkg @ https://mirror/pkg.whl#sha256=abc", "pkg @ https://mirror/pkg.whl#sha256=abc"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := stripComment(tt.input); got != tt.want {
			t.Errorf("stripComment(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestLoadManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "requirements_all.txt")
	if err := os.WriteFile(path, []byte("aiohttp==3.11.11\n"), 0644); err != nil {
		t.Fatal(err)
	}

	reqs, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reqs) != 1 || reqs[0].Name != "aiohttp" {
		t.Fatalf("reqs = %v, want one aiohttp pin", reqs)
	}
}

func TestLoadManifestMissingFile(t *testing.T) {
	_, err := LoadManifest(filepath.Join(t.TempDir(), "absent.txt"))
	if !errors.Is(err, ErrManifest) {
		t.Fatalf("err = %v, want ErrManifest", err)
	}
}
