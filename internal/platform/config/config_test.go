package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(context.Background(), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Fatalf("port = %q", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Fatalf("readTimeout = %v", cfg.Server.ReadTimeout)
	}
	if cfg.CMS.ProjectID != "" || cfg.CMS.Dataset != "" {
		t.Fatalf("cms should default unconfigured: %+v", cfg.CMS)
	}
	if !cfg.CMS.UseCDN {
		t.Fatal("useCdn should default true")
	}
	if cfg.Site.BaseURL != "http://localhost:8080" {
		t.Fatalf("baseURL = %q", cfg.Site.BaseURL)
	}
}

func TestLoadFromEnvMap(t *testing.T) {
	cfg, err := Load(context.Background(), WithoutSystemEnv(), WithEnvFile(""), WithEnvMap(map[string]string{
		"API_SERVER_PORT":     "9000",
		"API_SITE_BASE_URL":   "https://business-start.example/",
		"API_CMS_PROJECT_ID":  "demo",
		"API_CMS_DATASET":     "production",
		"API_CMS_USE_CDN":     "false",
		"API_BLOB_BUCKET":     "site-content",
		"API_BLOB_PUBLIC":     "no",
		"API_STUDIO_ADMIN_KEY": "hunter2",
	}))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "9000" {
		t.Fatalf("port = %q", cfg.Server.Port)
	}
	if cfg.Site.BaseURL != "https://business-start.example" {
		t.Fatalf("baseURL not trimmed: %q", cfg.Site.BaseURL)
	}
	if cfg.CMS.UseCDN {
		t.Fatal("useCdn override ignored")
	}
	if cfg.Blob.PublicObjects {
		t.Fatal("blob public override ignored")
	}
	if cfg.Studio.AdminKey != "hunter2" {
		t.Fatalf("adminKey = %q", cfg.Studio.AdminKey)
	}
}

func TestLoadRejectsHalfConfiguredCMS(t *testing.T) {
	_, err := Load(context.Background(), WithoutSystemEnv(), WithEnvFile(""), WithEnvMap(map[string]string{
		"API_CMS_PROJECT_ID": "demo",
	}))
	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestLoadResolvesSecretReferences(t *testing.T) {
	resolver := SecretResolverFunc(func(_ context.Context, ref string) (string, error) {
		if ref != "secret://projects/p/secrets/admin-key/versions/latest" {
			return "", errors.New("unexpected ref " + ref)
		}
		return "resolved-key", nil
	})
	cfg, err := Load(context.Background(), WithoutSystemEnv(), WithEnvFile(""), WithSecretResolver(resolver), WithEnvMap(map[string]string{
		"API_STUDIO_ADMIN_KEY": "sm://projects/p/secrets/admin-key/versions/latest",
	}))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Studio.AdminKey != "resolved-key" {
		t.Fatalf("adminKey = %q", cfg.Studio.AdminKey)
	}
}

func TestLoadSecretResolutionFailure(t *testing.T) {
	_, err := Load(context.Background(), WithoutSystemEnv(), WithEnvFile(""), WithEnvMap(map[string]string{
		"API_CMS_WRITE_TOKEN": "secret://projects/p/secrets/token/versions/1",
	}))
	var secretErr *SecretError
	if !errors.As(err, &secretErr) {
		t.Fatalf("err = %v, want SecretError", err)
	}
}

func TestLoadDotEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	contents := "# local overrides\nexport API_SERVER_PORT=7777\nAPI_SITE_BASE_URL=\"https://local.test\"\n"
	if err := os.WriteFile(envPath, []byte(contents), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	cfg, err := Load(context.Background(), WithoutSystemEnv(), WithEnvFile(envPath))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "7777" {
		t.Fatalf("port = %q", cfg.Server.Port)
	}
	if cfg.Site.BaseURL != "https://local.test" {
		t.Fatalf("baseURL = %q", cfg.Site.BaseURL)
	}
}
