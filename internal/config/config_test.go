package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	cfg "github.com/toeirei/keycalc/internal/config"
)

// isolate points the user config dir at a temp dir so real user files
// don't leak into the tests.
func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("HOME", tmp)
	return tmp
}

func TestLoadConfig_DefaultsWhenNoFile(t *testing.T) {
	isolate(t)

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected ConfigFileNotFoundError, got: %T %v", err, err)
	}
	if got.Language != "en" || !got.Clipboard || !got.AltScreen || got.LogFile != "" {
		t.Fatalf("unexpected defaults: %+v", got)
	}
}

func TestLoadConfig_ReadsExplicitFile(t *testing.T) {
	tmp := isolate(t)
	yaml := "language: de\nclipboard: false\nalt_screen: false\n"
	file := filepath.Join(tmp, "cfg.yaml")
	if err := os.WriteFile(file, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if got.Language != "de" {
		t.Fatalf("expected de, got %q", got.Language)
	}
	if got.Clipboard || got.AltScreen {
		t.Fatalf("expected clipboard and alt screen disabled, got %+v", got)
	}
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	tmp := isolate(t)
	file := filepath.Join(tmp, "cfg.yaml")
	if err := os.WriteFile(file, []byte("language: de\n"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	t.Setenv("KEYCALC_LANGUAGE", "es")

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if got.Language != "es" {
		t.Fatalf("expected es from env, got %q", got.Language)
	}
}

func TestLoadConfig_FlagsOverrideEverything(t *testing.T) {
	isolate(t)
	t.Setenv("KEYCALC_LANGUAGE", "es")

	cmd := &cobra.Command{}
	cmd.Flags().String("language", "en", "")
	cmd.Flags().String("log-file", "", "")
	if err := cmd.Flags().Set("language", "de"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	if err := cmd.Flags().Set("log-file", "/tmp/keycalc.log"); err != nil {
		t.Fatalf("set flag: %v", err)
	}

	got, _ := cfg.LoadConfig[cfg.Config](cmd, cfg.Defaults(), nil)
	if got.Language != "de" {
		t.Fatalf("expected flag value de, got %q", got.Language)
	}
	if got.LogFile != "/tmp/keycalc.log" {
		t.Fatalf("expected --log-file bound to log_file, got %q", got.LogFile)
	}
}

func TestWriteConfigFile_RoundTrip(t *testing.T) {
	isolate(t)

	c := cfg.Config{Language: "de", Clipboard: false, AltScreen: true}
	if err := cfg.WriteConfigFile(&c, false); err != nil {
		t.Fatalf("WriteConfigFile failed: %v", err)
	}

	path, err := cfg.GetConfigPath(false)
	if err != nil {
		t.Fatalf("GetConfigPath failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file at %s, stat error: %v", path, err)
	}

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if got != c {
		t.Fatalf("expected %+v after round trip, got %+v", c, got)
	}
}

func TestLoadConfig_MalformedExplicitFile(t *testing.T) {
	tmp := isolate(t)
	file := filepath.Join(tmp, "broken.yaml")
	if err := os.WriteFile(file, []byte("language: [unclosed\n"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	if _, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file); err == nil {
		t.Fatalf("expected parse error for malformed config")
	}
}
