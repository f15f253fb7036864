package scenario

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeScenarioFile(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "appgate.yaml")
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatalf("write scenario: %v", err)
	}
	return p
}

func TestLoad_BothDirectiveForms(t *testing.T) {
	path := writeScenarioFile(t, `
main:
  directives:
    - name: root
      value: /opt/appgate
    - max_pool_size: "10"
virtual_hosts:
  - name: app.example.com
    directives:
      - rails_env: staging
    locations:
      - path: /blog
        directives:
          - enabled: "off"
`)
	sc, err := Load(path)
	if err != nil {
		t.Fatalf("Load err=%v", err)
	}
	if len(sc.Main.Directives) != 2 {
		t.Fatalf("main directives = %d, want 2", len(sc.Main.Directives))
	}
	if d := sc.Main.Directives[0]; d.Name != "root" || d.Value != "/opt/appgate" {
		t.Fatalf("long form parsed wrong: %+v", d)
	}
	if d := sc.Main.Directives[1]; d.Name != "max_pool_size" || d.Value != "10" {
		t.Fatalf("shorthand form parsed wrong: %+v", d)
	}
	if sc.VirtualHosts[0].Locations[0].Directives[0].Value != "off" {
		t.Fatalf("nested location directive parsed wrong")
	}
}

func TestLoad_Defaults(t *testing.T) {
	path := writeScenarioFile(t, `
virtual_hosts:
  - directives:
      - enabled: "on"
  - directives:
      - enabled: "off"
`)
	sc, err := Load(path)
	if err != nil {
		t.Fatalf("Load err=%v", err)
	}
	if sc.Main.Name != "main" {
		t.Fatalf("main name default = %q", sc.Main.Name)
	}
	if sc.VirtualHosts[0].Name != "vhost1" || sc.VirtualHosts[1].Name != "vhost2" {
		t.Fatalf("vhost name defaults wrong: %+v", sc.VirtualHosts)
	}
}

func TestLoad_DuplicateServerNames(t *testing.T) {
	path := writeScenarioFile(t, `
virtual_hosts:
  - name: a
  - name: a
`)
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "duplicate server name") {
		t.Fatalf("expected duplicate-name error, got %v", err)
	}
}

func TestLoad_LocationValidation(t *testing.T) {
	cases := []struct {
		yaml string
		want string
	}{
		{
			yaml: "main:\n  locations:\n    - path: \"\"\n",
			want: "empty path",
		},
		{
			yaml: "main:\n  locations:\n    - path: blog\n",
			want: "must start with '/'",
		},
		{
			yaml: "main:\n  locations:\n    - path: /a\n    - path: /a\n",
			want: "duplicate location path",
		},
	}
	for _, c := range cases {
		path := writeScenarioFile(t, c.yaml)
		if _, err := Load(path); err == nil || !strings.Contains(err.Error(), c.want) {
			t.Fatalf("yaml %q: expected error containing %q, got %v", c.yaml, c.want, err)
		}
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoad_EmptyDirectiveName(t *testing.T) {
	path := writeScenarioFile(t, `
main:
  directives:
    - name: ""
      value: x
`)
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "empty name") {
		t.Fatalf("expected empty-name error, got %v", err)
	}
}
