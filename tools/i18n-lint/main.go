// Copyright (c) 2026 Keymaster Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-lint checks that every translation key used in the source exists in
// the primary locale, that the other locales carry the same keys, and lists
// string literals that look like untranslated UI text.
//
// Usage:
//
//	go run ./tools/i18n-lint [--root .] [--locales internal/i18n/locales] [--primary en.yaml]
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Location stores the file and line number of a found string.
type Location struct {
	Filepath string
	Line     int
}

// Report is the outcome of one lint run.
type Report struct {
	// Undefined keys are used in code but missing from the primary locale.
	Undefined []string
	// Orphaned keys are defined in the primary locale but never used.
	Orphaned []string
	// Missing maps a secondary locale file to the primary keys it lacks.
	Missing map[string][]string
	// Untranslated maps suspicious literals to where they were found.
	Untranslated map[string][]Location
}

// Failed reports whether the run found errors. Orphaned keys and
// untranslated literals are only warnings.
func (r Report) Failed() bool {
	if len(r.Undefined) > 0 {
		return true
	}
	for _, keys := range r.Missing {
		if len(keys) > 0 {
			return true
		}
	}
	return false
}

func main() {
	root := pflag.String("root", ".", "project root to scan")
	locales := pflag.String("locales", "internal/i18n/locales", "directory holding the locale files")
	primary := pflag.String("primary", "en.yaml", "locale file that is the source of truth")
	pflag.Parse()

	report, err := lint(*root, *locales, *primary)
	if err != nil {
		fmt.Fprintf(os.Stderr, "i18n-lint: %v\n", err)
		os.Exit(2)
	}
	printReport(os.Stdout, report)
	if report.Failed() {
		os.Exit(1)
	}
}

func lint(root, localesDir, primary string) (Report, error) {
	report := Report{Missing: map[string][]string{}}

	usedKeys, err := findUsedKeys(root)
	if err != nil {
		return report, fmt.Errorf("finding used keys: %w", err)
	}

	primaryKeys, err := loadKeysFromLocale(filepath.Join(localesDir, primary))
	if err != nil {
		return report, fmt.Errorf("loading primary locale %s: %w", primary, err)
	}

	report.Undefined = difference(usedKeys, primaryKeys)
	report.Orphaned = difference(primaryKeys, usedKeys)

	localeFiles, err := filepath.Glob(filepath.Join(localesDir, "*.yaml"))
	if err != nil {
		return report, fmt.Errorf("finding locale files: %w", err)
	}
	for _, file := range localeFiles {
		if filepath.Base(file) == primary {
			continue
		}
		keys, err := loadKeysFromLocale(file)
		if err != nil {
			return report, fmt.Errorf("loading %s: %w", file, err)
		}
		report.Missing[filepath.Base(file)] = difference(primaryKeys, keys)
	}

	report.Untranslated, err = findUntranslatedStrings(root, primaryKeys)
	if err != nil {
		return report, fmt.Errorf("scanning literals: %w", err)
	}
	return report, nil
}

func printReport(w io.Writer, r Report) {
	section := func(title string, items []string) {
		fmt.Fprintf(w, "--- %s ---\n", title)
		if len(items) == 0 {
			fmt.Fprintln(w, "  none")
		}
		for _, item := range items {
			fmt.Fprintf(w, "  - %s\n", item)
		}
	}

	section("Undefined keys (used in code, not in primary locale)", r.Undefined)
	section("Orphaned keys (in primary locale, not used in code)", r.Orphaned)

	files := make([]string, 0, len(r.Missing))
	for file := range r.Missing {
		files = append(files, file)
	}
	slices.Sort(files)
	for _, file := range files {
		section("Missing keys in "+file, r.Missing[file])
	}

	literals := make([]string, 0, len(r.Untranslated))
	for literal, locs := range r.Untranslated {
		literals = append(literals, fmt.Sprintf("%q (%s:%d)", literal, locs[0].Filepath, locs[0].Line))
	}
	slices.Sort(literals)
	section("Potentially untranslated strings", literals)
}

// difference returns the sorted keys of a that are not in b.
func difference(a, b map[string]struct{}) []string {
	var out []string
	for key := range a {
		if _, ok := b[key]; !ok {
			out = append(out, key)
		}
	}
	slices.Sort(out)
	return out
}

var (
	usedKeyRe   = regexp.MustCompile(`i18n\.T\("([^"]+)"`)
	callRe      = regexp.MustCompile(`([a-zA-Z0-9_]+\.)?([a-zA-Z0-9_]+)\("([^"]+)"`)
	keyLikeRe   = regexp.MustCompile(`^[a-z_]+\.[a-z\._]+$`)
	allCapsRe   = regexp.MustCompile(`^[A-Z_]+$`)
	bindingLike = regexp.MustCompile(`^[a-z+]+(\+[a-z]+)?$`)
)

// ignoredCalls never produce user-facing text worth translating.
var ignoredCalls = map[string]struct{}{
	"Print": {}, "Println": {}, "Printf": {}, "Fprintf": {}, "Fprintln": {}, "Errorf": {},
	"Debugf": {}, "Infof": {}, "Warnf": {}, "Fatal": {}, "Fatalf": {},
	"WithKeys": {}, "Color": {}, "MustCompile": {}, "String": {}, "Bool": {},
}

// walkGoFiles calls fn for every non-test Go file below root, skipping the
// tools directory and hidden or underscore-prefixed directories.
func walkGoFiles(root string, fn func(path string, content []byte) error) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (name == "tools" || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return fn(path, content)
	})
}

// findUsedKeys collects the IDs passed to i18n.T.
func findUsedKeys(root string) (map[string]struct{}, error) {
	keys := make(map[string]struct{})
	err := walkGoFiles(root, func(_ string, content []byte) error {
		for _, match := range usedKeyRe.FindAllSubmatch(content, -1) {
			keys[string(match[1])] = struct{}{}
		}
		return nil
	})
	return keys, err
}

// findUntranslatedStrings flags literals passed to calls that look like
// prose rather than keys, key bindings or format strings.
func findUntranslatedStrings(root string, knownKeys map[string]struct{}) (map[string][]Location, error) {
	untranslated := make(map[string][]Location)
	err := walkGoFiles(root, func(path string, content []byte) error {
		for i, line := range strings.Split(string(content), "\n") {
			for _, match := range callRe.FindAllStringSubmatch(line, -1) {
				funcName, literal := match[2], match[3]
				if !looksUntranslated(funcName, literal, knownKeys) {
					continue
				}
				untranslated[literal] = append(untranslated[literal], Location{Filepath: path, Line: i + 1})
			}
		}
		return nil
	})
	return untranslated, err
}

func looksUntranslated(funcName, literal string, knownKeys map[string]struct{}) bool {
	if _, ignored := ignoredCalls[funcName]; ignored {
		return false
	}
	if _, known := knownKeys[literal]; known {
		return false
	}
	switch {
	case len(literal) < 4,
		keyLikeRe.MatchString(literal),
		allCapsRe.MatchString(literal),
		bindingLike.MatchString(literal),
		strings.HasPrefix(literal, "#"),
		strings.Contains(literal, "/") && !strings.Contains(literal, " "):
		return false
	}
	// prose has at least one space or starts with a capital letter
	return strings.Contains(literal, " ") || (literal[0] >= 'A' && literal[0] <= 'Z')
}

// loadKeysFromLocale reads a YAML file and returns a flat map of its keys.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}

	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

// flattenYAML turns nested maps into dot-separated keys, so "help: {quit: x}"
// and "help.quit: x" both yield help.quit.
func flattenYAML(prefix string, node any, keys map[string]struct{}) {
	switch v := node.(type) {
	case map[string]any:
		for k, val := range v {
			newPrefix := k
			if prefix != "" {
				newPrefix = prefix + "." + k
			}
			flattenYAML(newPrefix, val, keys)
		}
	case []any:
		for i, val := range v {
			flattenYAML(fmt.Sprintf("%s[%d]", prefix, i), val, keys)
		}
	default:
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
	}
}
