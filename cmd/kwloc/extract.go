package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fwojciec/kwloc"
	"github.com/fwojciec/kwloc/csv"
	"github.com/fwojciec/kwloc/etree"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Extractor kwloc.Extractor
	Artifacts kwloc.ArtifactStore

	// Unchanged reports artifacts the store skipped rewriting. Optional.
	Unchanged func() []string

	// Sitemap is nil unless a site URL was configured.
	Sitemap *etree.SitemapRenderer

	Loaders []Loader
}

// Loader is a named destination for extracted cities.
type Loader struct {
	Name   string
	Cities kwloc.CityService
}

// ExtractCmd groups one CSV file and writes the artifacts.
type ExtractCmd struct {
	Path string
	Out  string
}

// Run reads the CSV, groups keywords by location, writes the artifacts and
// loads the distinct cities into every configured loader, reporting the
// stored row count for each state it touched.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	rows, err := csv.ReadFile(c.Path)
	if err != nil {
		return err
	}

	agg := kwloc.Group(rows, deps.Extractor)

	artifacts, err := kwloc.RenderArtifacts(agg)
	if err != nil {
		return err
	}
	if deps.Sitemap != nil {
		sitemap, err := deps.Sitemap.Render(agg)
		if err != nil {
			return err
		}
		artifacts = append(artifacts, sitemap)
	}

	if err := saveArtifacts(deps.Ctx, deps.Artifacts, artifacts); err != nil {
		return fmt.Errorf("failed to write artifacts: %w", err)
	}

	paths := make([]string, len(artifacts))
	for i, a := range artifacts {
		paths[i] = filepath.Join(c.Out, a.Name)
	}
	fmt.Fprintf(deps.Stdout, "Wrote %s\n", strings.Join(paths, ", "))
	if deps.Unchanged != nil {
		if names := deps.Unchanged(); len(names) > 0 {
			fmt.Fprintf(deps.Stdout, "Unchanged %s\n", strings.Join(names, ", "))
		}
	}
	fmt.Fprintf(deps.Stdout, "%d rows, %d keywords matched, %d states, %d places\n",
		len(rows), agg.KeywordCount(), len(agg.States()), len(agg.Places()))

	if len(deps.Loaders) == 0 {
		return nil
	}

	cities := agg.Cities()
	for _, l := range deps.Loaders {
		n, err := l.Cities.CreateCities(deps.Ctx, cities)
		if err != nil {
			return fmt.Errorf("failed to load cities into %s: %w", l.Name, err)
		}
		totals, err := stateTotals(deps.Ctx, l.Cities, agg)
		if err != nil {
			return fmt.Errorf("failed to count cities in %s: %w", l.Name, err)
		}
		fmt.Fprintf(deps.Stdout, "Loaded %d new cities into %s%s\n", n, l.Name, totals)
	}

	return nil
}

// stateTotals returns " (FL 3, TX 1)": the rows now stored for each state in
// the aggregate. It is empty when the aggregate has no states.
func stateTotals(ctx context.Context, svc kwloc.CityService, agg *kwloc.Aggregate) (string, error) {
	var totals []string
	for _, sg := range agg.SortedStates() {
		state := sg.State
		found, err := svc.FindCities(ctx, kwloc.CityFilter{State: &state})
		if err != nil {
			return "", err
		}
		totals = append(totals, fmt.Sprintf("%s %d", state, len(found)))
	}
	if len(totals) == 0 {
		return "", nil
	}
	return " (" + strings.Join(totals, ", ") + ")", nil
}

// saveArtifacts saves every artifact and commits them together. Nothing is
// committed if any save fails.
func saveArtifacts(ctx context.Context, store kwloc.ArtifactStore, artifacts []*kwloc.Artifact) error {
	for _, a := range artifacts {
		if err := store.Save(ctx, a); err != nil {
			return errors.Join(err, store.Abort())
		}
	}
	return store.Commit()
}
