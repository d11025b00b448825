// Package funcdoc attaches structured, runtime-inert documentation to
// exported operations so external tooling can discover them. Nothing in
// here influences how an operation computes.
package funcdoc

import (
	"sort"

	"github.com/bytedance/sonic"
)

type Param struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Doc struct {
	Title   string  `json:"title"`
	Summary string  `json:"summary,omitempty"`
	Params  []Param `json:"params,omitempty"`
	Returns string  `json:"returns,omitempty"`
	Example string  `json:"example,omitempty"`
}

var registry = make(map[string]Doc)

// Register associates doc with an operation's exported name. Later
// registrations under the same name win. Intended for package init.
func Register(name string, doc Doc) {
	registry[name] = doc
}

func Lookup(name string) (Doc, bool) {
	doc, ok := registry[name]
	return doc, ok
}

// Names lists the registered operation names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ExportJSON serializes the whole registry for an external doc-tooling
// pass.
func ExportJSON() ([]byte, error) {
	return sonic.Marshal(registry)
}
