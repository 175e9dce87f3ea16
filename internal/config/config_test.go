package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("port: got %q", cfg.Port)
	}
	if cfg.Session.CookieName != "pss_session" {
		t.Fatalf("cookie name: got %q", cfg.Session.CookieName)
	}
	if cfg.Session.CookieSecure {
		t.Fatal("cookie_secure should default to false")
	}
	if cfg.Hashing.MemoryKiB != 19456 || cfg.Hashing.Iterations != 2 || cfg.Hashing.Parallelism != 1 {
		t.Fatalf("unexpected hashing defaults: %+v", cfg.Hashing)
	}
	if cfg.Hashing.Workers <= 0 {
		t.Fatalf("workers must be positive, got %d", cfg.Hashing.Workers)
	}
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	yml := []byte("port: 9090\ndb:\n  path: from-file.db\nsession:\n  cookie_same_site: Lax\n")
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), yml, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("WORDBOOK_DB_PATH", "from-env.db")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9090" {
		t.Fatalf("port: got %q, want 9090", cfg.Port)
	}
	if cfg.DB.Path != "from-env.db" {
		t.Fatalf("db.path: got %q, want env override", cfg.DB.Path)
	}
	if cfg.Session.CookieSameSite != "lax" {
		t.Fatalf("same_site: got %q, want lax", cfg.Session.CookieSameSite)
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
	}{
		{"bad same site", map[string]string{"WORDBOOK_SESSION_COOKIE_SAME_SITE": "sometimes"}},
		{"zero iterations", map[string]string{"WORDBOOK_HASHING_ITERATIONS": "0"}},
		{"tiny memory", map[string]string{"WORDBOOK_HASHING_MEMORY_KIB": "4"}},
		{"parallelism past uint8", map[string]string{"WORDBOOK_HASHING_PARALLELISM": "257", "WORDBOOK_HASHING_MEMORY_KIB": "65536"}},
		{"zero parallelism", map[string]string{"WORDBOOK_HASHING_PARALLELISM": "0"}},
		{"negative parallelism", map[string]string{"WORDBOOK_HASHING_PARALLELISM": "-1"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			if _, err := Load(t.TempDir()); err == nil {
				t.Fatal("expected validation error, got nil")
			}
		})
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte("port: [unclosed"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(dir); err == nil {
		t.Fatal("expected parse error, got nil")
	}
}

func TestLoad_ParallelismUpperBound(t *testing.T) {
	t.Setenv("WORDBOOK_HASHING_PARALLELISM", "255")
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Hashing.Parallelism != 255 {
		t.Fatalf("parallelism: got %d, want 255", cfg.Hashing.Parallelism)
	}
}
