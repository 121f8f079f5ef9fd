package template

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

func TestRendererRender(t *testing.T) {
	t.Run("successful_render", func(t *testing.T) {
		fs := fstest.MapFS{
			"list.tmpl": &fstest.MapFile{
				Data: []byte("items = [\n  {{ join .Items \"\\n  \" }}\n];\n"),
			},
		}
		r := NewRenderer(fs)

		data := map[string][]string{
			"Items": {"a", "b"},
		}

		result, err := r.Render("list.tmpl", data)
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}

		expected := "items = [\n  a\n  b\n];\n"
		if string(result) != expected {
			t.Errorf("Render result = %q, want %q", string(result), expected)
		}
	})

	t.Run("missing_key_strict_mode", func(t *testing.T) {
		fs := fstest.MapFS{
			"test.tmpl": &fstest.MapFile{
				Data: []byte("Hello {{.Name}}, your role is {{.Role}}"),
			},
		}
		r := NewRenderer(fs)

		_, err := r.Render("test.tmpl", map[string]string{"Name": "nix"})
		if err == nil {
			t.Fatal("expected error for missing key")
		}
		if !errors.Is(err, ErrMissingTemplateKey) {
			t.Errorf("expected ErrMissingTemplateKey, got: %v", err)
		}
	})

	t.Run("missing_struct_field", func(t *testing.T) {
		fs := fstest.MapFS{
			"test.tmpl": &fstest.MapFile{Data: []byte("{{.Nope}}")},
		}
		_, err := NewRenderer(fs).Render("test.tmpl", Environment{})
		if !errors.Is(err, ErrMissingTemplateKey) {
			t.Errorf("expected ErrMissingTemplateKey, got: %v", err)
		}
	})

	t.Run("nonexistent_template", func(t *testing.T) {
		r := NewRenderer(fstest.MapFS{})

		_, err := r.Render("nonexistent.tmpl", nil)
		if !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("expected ErrTemplateNotFound, got: %v", err)
		}
	})

	t.Run("parse_error", func(t *testing.T) {
		fs := fstest.MapFS{
			"bad.tmpl": &fstest.MapFile{Data: []byte("{{ if }")},
		}
		_, err := NewRenderer(fs).Render("bad.tmpl", nil)
		if err == nil {
			t.Fatal("expected parse error")
		}
		if !strings.Contains(err.Error(), "template parse") {
			t.Errorf("error = %v, want template parse error", err)
		}
	})

	t.Run("unexpanded_token_in_data", func(t *testing.T) {
		fs := fstest.MapFS{
			"echo.tmpl": &fstest.MapFile{Data: []byte("{{.Value}}")},
		}
		_, err := NewRenderer(fs).Render("echo.tmpl", map[string]string{"Value": "{{.Leftover}}"})
		if !errors.Is(err, ErrUnexpandedToken) {
			t.Errorf("expected ErrUnexpandedToken, got: %v", err)
		}
	})

	t.Run("nix_interpolation_is_content", func(t *testing.T) {
		fs := fstest.MapFS{
			"echo.tmpl": &fstest.MapFile{Data: []byte("{{.Value}}")},
		}
		value := "export DOTNET_ROOT=${pkgs.dotnet-sdk} X=$HOME {}"
		got, err := NewRenderer(fs).Render("echo.tmpl", map[string]string{"Value": value})
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}
		if string(got) != value {
			t.Errorf("Render = %q, want %q", got, value)
		}
	})
}

func TestEmbeddedTemplates(t *testing.T) {
	fsys, err := EmbeddedTemplates()
	if err != nil {
		t.Fatalf("EmbeddedTemplates() error: %v", err)
	}
	if err := fstest.TestFS(fsys, EnvironmentTemplate); err != nil {
		t.Errorf("embedded filesystem: %v", err)
	}
}
