package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ARTCLIP_THEME", "ARTCLIP_THEME_DIR", "ARTCLIP_DATE_FORMAT",
		"ARTCLIP_ACCOUNT", "ARTCLIP_CACHE_PATH",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadFromPath_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := loadFromPath(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("loadFromPath() error: %v", err)
	}

	if cfg.Theme.Name != DefaultTheme {
		t.Errorf("Theme.Name = %q, want %q", cfg.Theme.Name, DefaultTheme)
	}
	if cfg.Export.DateFormat != DefaultDateFormat {
		t.Errorf("Export.DateFormat = %q, want %q", cfg.Export.DateFormat, DefaultDateFormat)
	}
	if cfg.Cache.Days != DefaultCacheDays {
		t.Errorf("Cache.Days = %d, want %d", cfg.Cache.Days, DefaultCacheDays)
	}
	if cfg.Cache.Path == "" {
		t.Error("Cache.Path empty, want a default location")
	}
}

func TestLoadFromPath_File(t *testing.T) {
	clearEnv(t)

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	content := `theme:
  name: minimal
export:
  date_format: "2006-01-02"
cache:
  days: 3
accounts:
  - name: work
    id: id-work
    default: true
  - name: home
    id: id-home
active_account: home
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	cfg, err := loadFromPath(configPath)
	if err != nil {
		t.Fatalf("loadFromPath() error: %v", err)
	}

	if cfg.Theme.Name != "minimal" {
		t.Errorf("Theme.Name = %q, want minimal", cfg.Theme.Name)
	}
	if cfg.Export.DateFormat != "2006-01-02" {
		t.Errorf("Export.DateFormat = %q", cfg.Export.DateFormat)
	}
	if cfg.Cache.Days != 3 {
		t.Errorf("Cache.Days = %d, want 3", cfg.Cache.Days)
	}
	if len(cfg.Accounts) != 2 {
		t.Fatalf("len(Accounts) = %d, want 2", len(cfg.Accounts))
	}
	if got := cfg.ResolveAccount(); got.ID != "id-home" {
		t.Errorf("ResolveAccount() = %+v, want active account home", got)
	}
}

func TestLoadFromPath_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ARTCLIP_THEME", "minimal")
	t.Setenv("ARTCLIP_DATE_FORMAT", "Jan 2")

	cfg, err := loadFromPath(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("loadFromPath() error: %v", err)
	}

	if cfg.Theme.Name != "minimal" {
		t.Errorf("Theme.Name = %q, want env override", cfg.Theme.Name)
	}
	if cfg.Export.DateFormat != "Jan 2" {
		t.Errorf("Export.DateFormat = %q, want env override", cfg.Export.DateFormat)
	}
}

func TestResolveAccount_Precedence(t *testing.T) {
	cfg := &Config{
		Accounts: []Account{
			{Name: "work", ID: "id-work", Default: true},
			{Name: "home", ID: "id-home"},
		},
	}

	if got := cfg.ResolveAccount(); got.ID != "id-work" {
		t.Errorf("ResolveAccount() = %+v, want default account", got)
	}

	if err := cfg.SetActiveAccount("home"); err != nil {
		t.Fatalf("SetActiveAccount() error: %v", err)
	}
	if got := cfg.ResolveAccount(); got.ID != "id-home" {
		t.Errorf("ResolveAccount() = %+v, want active account", got)
	}
}

func TestResolveAccount_ImplicitLocal(t *testing.T) {
	cfg := &Config{}

	first := cfg.ResolveAccount()
	second := cfg.ResolveAccount()

	if first.Name != "local" {
		t.Errorf("ResolveAccount().Name = %q, want local", first.Name)
	}
	if first.ID == "" || first.ID != second.ID {
		t.Errorf("implicit account ID not stable: %q vs %q", first.ID, second.ID)
	}
}

func TestAddAccount(t *testing.T) {
	cfg := &Config{}

	if err := cfg.AddAccount(Account{Name: "work"}); err != nil {
		t.Fatalf("AddAccount() error: %v", err)
	}
	if cfg.Accounts[0].ID == "" {
		t.Error("AddAccount() did not generate an ID")
	}

	if err := cfg.AddAccount(Account{Name: "work"}); err == nil {
		t.Error("AddAccount() with duplicate name, want error")
	}
}

func TestRemoveAccount(t *testing.T) {
	cfg := &Config{
		Accounts:      []Account{{Name: "work", ID: "id-work"}},
		ActiveAccount: "work",
	}

	if err := cfg.RemoveAccount("work"); err == nil {
		t.Error("RemoveAccount(active) want error")
	}

	cfg.ActiveAccount = ""
	if err := cfg.RemoveAccount("work"); err != nil {
		t.Errorf("RemoveAccount() error: %v", err)
	}
	if len(cfg.Accounts) != 0 {
		t.Errorf("len(Accounts) = %d after removal, want 0", len(cfg.Accounts))
	}

	if err := cfg.RemoveAccount("ghost"); err == nil {
		t.Error("RemoveAccount(missing) want error")
	}
}

func TestAccountID_Deterministic(t *testing.T) {
	if accountID("work") != accountID("work") {
		t.Error("accountID not deterministic for same name")
	}
	if accountID("work") == accountID("home") {
		t.Error("accountID identical for different names")
	}
}
