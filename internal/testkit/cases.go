// Package testkit loads golden program cases and checks structural
// invariants of parsed files.
package testkit

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Case is one program with its expected observable behaviour.
//
//	cases:
//	  - name: slice
//	    source: |
//	      let s = "hello";
//	      print s[1:3];
//	    stdout: |
//	      el
//
// Error, when set, is a diagnostic id (SEM3010) or a runtime code (VM1001);
// At is the "line:col" of its primary span.
type Case struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
	Stdout string `yaml:"stdout"`
	Error  string `yaml:"error,omitempty"`
	At     string `yaml:"at,omitempty"`
	Skip   string `yaml:"skip,omitempty"`

	File string `yaml:"-"` // файл, откуда загружен кейс
}

// CaseFile is the top-level document of a golden file.
type CaseFile struct {
	Cases []Case `yaml:"cases"`
}

// Position parses At into line and column.
func (c Case) Position() (line, col uint32, ok bool) {
	if c.At == "" {
		return 0, 0, false
	}
	ls, cs, found := strings.Cut(c.At, ":")
	if !found {
		return 0, 0, false
	}
	l, err1 := strconv.ParseUint(ls, 10, 32)
	cc, err2 := strconv.ParseUint(cs, 10, 32)
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return uint32(l), uint32(cc), true
}

// DecodeCases parses a golden document. Unknown keys are rejected so typos
// in expectations do not silently pass.
func DecodeCases(r io.Reader) ([]Case, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var cf CaseFile
	if err := dec.Decode(&cf); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	seen := make(map[string]struct{}, len(cf.Cases))
	for i, c := range cf.Cases {
		if c.Name == "" {
			return nil, fmt.Errorf("case #%d: missing name", i+1)
		}
		if _, dup := seen[c.Name]; dup {
			return nil, fmt.Errorf("case %q: duplicate name", c.Name)
		}
		seen[c.Name] = struct{}{}
		if c.At != "" {
			if _, _, ok := c.Position(); !ok {
				return nil, fmt.Errorf("case %q: bad position %q, want line:col", c.Name, c.At)
			}
		}
		if c.At != "" && c.Error == "" {
			return nil, fmt.Errorf("case %q: position given without error", c.Name)
		}
	}
	return cf.Cases, nil
}

// LoadCases reads every *.yaml file in dir, in name order.
func LoadCases(dir string) ([]Case, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	var all []Case
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		cases, err := DecodeCases(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", p, err)
		}
		for i := range cases {
			cases[i].File = filepath.Base(p)
		}
		all = append(all, cases...)
	}
	return all, nil
}
