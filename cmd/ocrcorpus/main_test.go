package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"ocrcorpus/internal/config"
	"ocrcorpus/internal/keyset"
	"ocrcorpus/internal/testsupport"
	"ocrcorpus/internal/wording"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeTestConfig(t *testing.T, cfg *config.Config) string {
	t.Helper()
	cfg.Logging.Level = "error"
	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	path := filepath.Join(testsupport.BaseDir(cfg), "ocrcorpus.toml")
	testsupport.WriteText(t, path, string(data))
	return path
}

func TestWordingCommandWritesArtifacts(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg := testsupport.NewConfig(t,
		testsupport.WithLocale("en_US"),
		testsupport.WithBaseline(""),
		testsupport.WithGoFont(),
		testsupport.WithTable("stage_table.json", "{\"name\": \"Überfall\", \"code\": \"1-7\"}\n"),
	)
	configPath := writeTestConfig(t, cfg)

	out, err := runCLI(t, "--config", configPath, "wording", "--json")
	if err != nil {
		t.Fatalf("wording failed: %v\n%s", err, out)
	}

	var report wording.Report
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("decode report %q: %v", out, err)
	}
	if report.Locale != "en_US" || report.Stats.Entries != 1 || report.Result.Long != 1 {
		t.Fatalf("unexpected report %+v", report)
	}

	outputDir := filepath.Join(cfg.Paths.OutputDir, "en_US")
	long := testsupport.ReadText(t, filepath.Join(outputDir, wording.LongFile))
	if long != "Überfall" {
		t.Fatalf("unexpected long wording %q", long)
	}
	keys := testsupport.ReadText(t, filepath.Join(outputDir, wording.KeysFile))
	if !strings.Contains(keys, "Ü\n") {
		t.Fatalf("expected Ü in keys, got %q", keys)
	}
}

func TestWordingCommandFlagsOverrideConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg := testsupport.NewConfig(t,
		testsupport.WithLocale("ko_KR"),
		testsupport.WithBaseline("가\n"),
		testsupport.WithTable("a.json", "\"a\": \"가\"\n"),
	)
	configPath := writeTestConfig(t, cfg)
	otherOut := filepath.Join(t.TempDir(), "elsewhere")

	out, err := runCLI(t, "--config", configPath, "wording", "-l", "ko_KR", "-o", otherOut, "--no-update-baseline")
	if err != nil {
		t.Fatalf("wording failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Corpus entries") {
		t.Fatalf("expected summary table, got %q", out)
	}
	if _, err := os.Stat(filepath.Join(otherOut, "ko_KR", wording.WordingFile)); err != nil {
		t.Fatalf("expected artifacts under flag output dir: %v", err)
	}
	baseline := testsupport.ReadText(t, filepath.Join(cfg.Paths.RawKeysDir, "ko_KR.txt"))
	if baseline != "가\n" {
		t.Fatalf("baseline must stay untouched with --no-update-baseline, got %q", baseline)
	}
}

func TestWordingCommandMissingBaseline(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg := testsupport.NewConfig(t, testsupport.WithTable("a.json", "\"a\": \"你好\"\n"))
	configPath := writeTestConfig(t, cfg)

	_, err := runCLI(t, "--config", configPath, "wording")
	if !errors.Is(err, keyset.ErrBaselineMissing) {
		t.Fatalf("expected ErrBaselineMissing, got %v", err)
	}
	if !strings.Contains(err.Error(), filepath.Join(cfg.Paths.RawKeysDir, "zh_CN.txt")) {
		t.Fatalf("error should name the missing path: %v", err)
	}
}

func TestWordingCommandRejectsUnknownLocale(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg := testsupport.NewConfig(t)
	configPath := writeTestConfig(t, cfg)

	if _, err := runCLI(t, "--config", configPath, "wording", "--lang", "fr_FR"); err == nil {
		t.Fatal("expected unsupported locale error")
	}
}

func TestLocalesCommand(t *testing.T) {
	out, err := runCLI(t, "locales", "--json")
	if err != nil {
		t.Fatalf("locales failed: %v", err)
	}
	var rows []localeRow
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("decode locales: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("expected 5 locales, got %d", len(rows))
	}
	for _, row := range rows {
		if row.Locale == "zh_TW" && (row.Tag != "zh-TW" || row.FontSubset != "TW") {
			t.Fatalf("unexpected zh_TW row %+v", row)
		}
	}
}

func TestConfigInitAndValidate(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	out, err := runCLI(t, "config", "init")
	if err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	target := filepath.Join(home, ".config", "ocrcorpus", "config.toml")
	if !strings.Contains(out, target) {
		t.Fatalf("expected init to report %s, got %q", target, out)
	}
	if _, err := runCLI(t, "config", "init"); err == nil {
		t.Fatal("expected second init without --overwrite to fail")
	}
	if _, err := runCLI(t, "config", "init", "--overwrite"); err != nil {
		t.Fatalf("config init --overwrite failed: %v", err)
	}

	out, err = runCLI(t, "config", "validate")
	if err != nil {
		t.Fatalf("config validate failed: %v", err)
	}
	if !strings.Contains(out, "Configuration valid") || !strings.Contains(out, "zh_CN") {
		t.Fatalf("unexpected validate output %q", out)
	}
	if !strings.Contains(out, "does not exist") {
		t.Fatalf("expected missing layout paths to be reported, got %q", out)
	}
	if _, err := runCLI(t, "config", "validate", "--strict"); err == nil {
		t.Fatal("expected --strict validate to fail with missing game tables")
	}
}

func TestConfigInitWithLocale(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	target := filepath.Join(t.TempDir(), "jp.toml")

	if _, err := runCLI(t, "config", "init", "--path", target, "--locale", "fr_FR"); err == nil {
		t.Fatal("expected unsupported locale to be rejected")
	}
	if _, err := os.Stat(target); err == nil {
		t.Fatal("rejected init must not write a file")
	}

	out, err := runCLI(t, "config", "init", "--path", target, "--locale", "ja_JP")
	if err != nil {
		t.Fatalf("config init failed: %v\n%s", err, out)
	}
	cfg, _, _, err := config.Load(target)
	if err != nil {
		t.Fatalf("load written config: %v", err)
	}
	if cfg.Corpus.Locale != "ja_JP" {
		t.Fatalf("expected ja_JP, got %q", cfg.Corpus.Locale)
	}
}
