// Package appname decides which human-readable name the application goes by.
package appname

import (
	"github.com/mj1618/appname/internal/ns"
	"github.com/mj1618/appname/internal/objc"
)

// Source names where a resolved name came from.
type Source string

const (
	SourceDisplayName Source = "display-name"
	SourceBundleName  Source = "bundle-name"
	SourceProcessName Source = "process-name"
)

// Info.plist keys consulted, in order of preference.
const (
	KeyDisplayName = "CFBundleDisplayName"
	KeyBundleName  = "CFBundleName"
)

// Lookup is one link of a fallback chain.
type Lookup struct {
	Source Source
	Get    func() (string, bool)
}

// First returns the value of the first lookup that yields one. An empty
// but present value counts as found.
func First(lookups ...Lookup) (string, Source, bool) {
	for _, l := range lookups {
		if v, ok := l.Get(); ok {
			return v, l.Source, true
		}
	}
	return "", "", false
}

// Result is a resolved name and the source it came from.
type Result struct {
	Name   string `yaml:"name"   json:"name"`
	Source Source `yaml:"source" json:"source"`
}

// Resolve picks the display name override, then the bundle name, then the
// process name the OS reports. The last source is always present, so the
// result is always set.
func Resolve(b *objc.Binding) Result {
	bundle := ns.MainBundle(b)
	info := func(key string) func() (string, bool) {
		return func() (string, bool) {
			s, ok := bundle.ObjectForInfoDictionaryKey(key)
			if !ok {
				return "", false
			}
			return s.String(), true
		}
	}

	name, src, ok := First(
		Lookup{Source: SourceDisplayName, Get: info(KeyDisplayName)},
		Lookup{Source: SourceBundleName, Get: info(KeyBundleName)},
	)
	if ok {
		return Result{Name: name, Source: src}
	}
	return Result{
		Name:   ns.CurrentProcessInfo(b).ProcessName().String(),
		Source: SourceProcessName,
	}
}
