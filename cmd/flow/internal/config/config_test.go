package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/flow/pkg/flow"
	"github.com/go-drift/flow/pkg/layout"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestResolve_Defaults(t *testing.T) {
	got, err := Resolve(t.TempDir())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.Version != "v1" {
		t.Errorf("expected version v1, got %q", got.Version)
	}
	if got.HorizontalSpacing != 16 || got.VerticalSpacing != 8 {
		t.Errorf("expected default spacing 16/8, got %d/%d", got.HorizontalSpacing, got.VerticalSpacing)
	}
	if got.Convention != flow.TrailingSpacing {
		t.Errorf("expected trailing convention, got %v", got.Convention)
	}
	if got.Padding != (layout.EdgeInsets{}) {
		t.Errorf("expected no padding, got %+v", got.Padding)
	}
}

func TestResolve_File(t *testing.T) {
	dir := writeConfig(t, `
version: v1.2.0
density: 2
spacing:
  horizontal_dp: 4
  vertical_dp: 0
  convention: tight
padding:
  left: 1
  top: 2
  right: 3
  bottom: 4
debug: true
`)
	got, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.HorizontalSpacing != 8 || got.VerticalSpacing != 0 {
		t.Errorf("expected spacing 8/0, got %d/%d", got.HorizontalSpacing, got.VerticalSpacing)
	}
	if got.Convention != flow.TightSpacing {
		t.Errorf("expected tight convention, got %v", got.Convention)
	}
	if got.Padding != layout.EdgeInsetsOnly(1, 2, 3, 4) {
		t.Errorf("unexpected padding %+v", got.Padding)
	}

	f := got.NewFlow()
	if f.HorizontalSpacing != 8 || f.Convention != flow.TightSpacing || !f.Debug {
		t.Errorf("NewFlow did not carry settings: %+v", f)
	}
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"bad yaml", "spacing: [", "failed to parse flow.yaml"},
		{"not semver", "version: one", "semantic version"},
		{"future major", "version: v2.0.0", "unsupported config version v2"},
		{"negative density", "density: -1", "density must be positive"},
		{"negative spacing", "spacing: {horizontal_dp: -2}", "spacing must be non-negative"},
		{"unknown convention", "spacing: {convention: loose}", "unknown spacing convention"},
		{"negative padding", "padding: {left: -1}", "padding must be non-negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(writeConfig(t, tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should contain %q", err, tt.wantErr)
			}
		})
	}
}
