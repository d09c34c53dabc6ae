// Copyright (c) 2026 Keymaster Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.
package i18n

import "testing"

func TestInitAndAvailableLocales(t *testing.T) {
	Init("en")
	if GetLang() != "en" {
		t.Fatalf("expected lang 'en', got %q", GetLang())
	}

	av := GetAvailableLocales()
	for _, k := range []string{"en", "de"} {
		if _, ok := av[k]; !ok {
			t.Fatalf("expected available locale %q to be present, got %v", k, av)
		}
	}
	if av["de"] != "Deutsch" {
		t.Fatalf("expected self name Deutsch for de, got %q", av["de"])
	}
}

func TestT_BasicAndFormatting(t *testing.T) {
	Init("en")

	if got := T("help.quit"); got != "quit" {
		t.Fatalf("expected 'quit', got %q", got)
	}
	if got := T("status.copied", "42"); got != "copied 42" {
		t.Fatalf("unexpected formatted translation: %q", got)
	}

	SetLang("de")
	if GetLang() != "de" {
		t.Fatalf("expected lang 'de', got %q", GetLang())
	}
	if got := T("help.quit"); got != "beenden" {
		t.Fatalf("expected German 'beenden', got %q", got)
	}
	if got := T("status.copied", "42"); got != "42 kopiert" {
		t.Fatalf("unexpected German formatted translation: %q", got)
	}
}

func TestT_UnknownIDAndLanguageFallback(t *testing.T) {
	Init("fr")
	if got := T("help.help"); got != "help" {
		t.Fatalf("expected English fallback, got %q", got)
	}
	if got := T("does.not.exist"); got != "does.not.exist" {
		t.Fatalf("expected message ID back, got %q", got)
	}
}

func TestIsSupported(t *testing.T) {
	Init("en")
	for _, l := range []string{"en", "de", "de-AT", "en-US"} {
		if !IsSupported(l) {
			t.Fatalf("expected %q to be supported", l)
		}
	}
	for _, l := range []string{"fr", "not a tag"} {
		if IsSupported(l) {
			t.Fatalf("expected %q to be unsupported", l)
		}
	}
}
