package main

import (
	"context"
	"sort"
	"testing"

	"github.com/epfl-lara/lean/doc"
	"github.com/epfl-lara/lean/env"
	"github.com/epfl-lara/lean/options"
	"github.com/epfl-lara/lean/pp"
	"github.com/epfl-lara/lean/typecheck"
)

func TestCatalogNamesSortedAndComplete(t *testing.T) {
	names := catalogNames()
	if len(names) != len(catalog) {
		t.Fatalf("catalogNames() has %d entries, catalog has %d", len(names), len(catalog))
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("catalogNames() = %v, want sorted", names)
	}
	for _, n := range names {
		if _, ok := catalog[n]; !ok {
			t.Errorf("catalogNames() produced %q which isn't a catalog key", n)
		}
	}
}

func TestEveryCatalogEntryPrintsNonEmpty(t *testing.T) {
	printer := pp.New(env.NewMapEnv(), typecheck.NullChecker{}, options.Default())
	for name, sample := range catalog {
		d := printer.Pretty(context.Background(), sample.term)
		rendered := doc.Render(d, 80)
		if rendered == "" {
			t.Errorf("catalog entry %q rendered empty output", name)
		}
	}
}
