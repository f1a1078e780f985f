package config

import (
	"strings"
	"testing"

	"github.com/conn-castle/valet-php/internal/templates"
)

func TestSetKeyReplacesInPlace(t *testing.T) {
	data, err := templates.Read("config.toml")
	if err != nil {
		t.Fatalf("read template: %v", err)
	}
	patched, err := SetKey(string(data), "default_version", "7.3")
	if err != nil {
		t.Fatalf("set key: %v", err)
	}
	if strings.Count(patched, "default_version = ") != 1 || !strings.Contains(patched, `default_version = "7.3"`) {
		t.Fatalf("unexpected patch:\n%s", patched)
	}
	if !strings.Contains(patched, "# Version installed when no supported PHP is present.") {
		t.Fatalf("expected comments to survive")
	}
	cfg, err := ParseConfig([]byte(patched), "patched")
	if err != nil {
		t.Fatalf("parse patched: %v", err)
	}
	if cfg.DefaultVersion != "7.3" {
		t.Fatalf("unexpected version %s", cfg.DefaultVersion)
	}
}

func TestSetKeyUncommentsAndInserts(t *testing.T) {
	content := "# group = \"admin\"\n\n[extensions]\ninstall = [\"xdebug\"]\n"
	patched, err := SetKey(content, "group", "wheel")
	if err != nil {
		t.Fatalf("set key: %v", err)
	}
	if !strings.HasPrefix(patched, "group = \"wheel\"\n") {
		t.Fatalf("expected uncommented key, got:\n%s", patched)
	}

	patched, err = SetKey(patched, "home", "/opt/valet")
	if err != nil {
		t.Fatalf("set key: %v", err)
	}
	home := strings.Index(patched, `home = "/opt/valet"`)
	section := strings.Index(patched, "[extensions]")
	if home < 0 || home > section {
		t.Fatalf("expected home before first section, got:\n%s", patched)
	}
}

func TestSetKeyRejects(t *testing.T) {
	if _, err := SetKey("", "extensions", "x"); err == nil {
		t.Fatalf("expected unknown key error")
	}
	if _, err := SetKey("home = ", "group", "staff"); err == nil {
		t.Fatalf("expected syntax error")
	}
	if _, err := SetKey("", "default_version", "9.9"); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestDefaultValue(t *testing.T) {
	value, err := DefaultValue("listen_mode")
	if err != nil {
		t.Fatalf("default value: %v", err)
	}
	if value != "0777" {
		t.Fatalf("unexpected default %q", value)
	}
	if _, err := DefaultValue("nope"); err == nil {
		t.Fatalf("expected unknown key error")
	}
}

func TestGetKey(t *testing.T) {
	value, err := GetKey("group = \"wheel\"\n", "group")
	if err != nil {
		t.Fatalf("get key: %v", err)
	}
	if value != "wheel" {
		t.Fatalf("unexpected value %q", value)
	}

	value, err = GetKey("# group = \"wheel\"\n", "default_version")
	if err != nil {
		t.Fatalf("get default: %v", err)
	}
	if value != "7.1" {
		t.Fatalf("expected embedded default, got %q", value)
	}

	if _, err := GetKey("", "extensions"); err == nil {
		t.Fatalf("expected unknown key error")
	}
	if _, err := GetKey("home = ", "home"); err == nil {
		t.Fatalf("expected syntax error")
	}
}
