package parser

import (
	"regexp"
	"strconv"
	"sync"

	"toytracker/internal/toy"
)

type fieldKind int

const (
	kindString fieldKind = iota
	kindBool
	kindInt
)

type patternKey struct {
	key  string
	kind fieldKind
}

var patterns sync.Map

func fieldPattern(key string, kind fieldKind) *regexp.Regexp {
	pk := patternKey{key: key, kind: kind}
	if re, ok := patterns.Load(pk); ok {
		return re.(*regexp.Regexp)
	}

	var value string
	switch kind {
	case kindBool:
		value = `(true|false)`
	case kindInt:
		value = `(\d+)`
	default:
		value = `"((?:\\.|[^"\\])*)"`
	}
	re := regexp.MustCompile(regexp.QuoteMeta(key) + `\s*=\s*` + value)
	actual, _ := patterns.LoadOrStore(pk, re)
	return actual.(*regexp.Regexp)
}

// String returns the first quoted value assigned to key, escapes left as
// written. Missing keys return "".
func String(block, key string) string {
	m := fieldPattern(key, kindString).FindStringSubmatch(block)
	if m == nil {
		return ""
	}
	return m[1]
}

// Bool returns OwnedAbsent when key is not assigned a true/false literal.
func Bool(block, key string) toy.Ownership {
	m := fieldPattern(key, kindBool).FindStringSubmatch(block)
	if m == nil {
		return toy.OwnedAbsent
	}
	if m[1] == "true" {
		return toy.OwnedTrue
	}
	return toy.OwnedFalse
}

func Int(block, key string) (int, bool) {
	m := fieldPattern(key, kindInt).FindStringSubmatch(block)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
