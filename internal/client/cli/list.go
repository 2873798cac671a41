package cli

import (
	"context"
	"strings"

	"github.com/brainkeep/brainkeep/internal/client/derive"
	"github.com/brainkeep/brainkeep/internal/client/models"
)

// List renders the current filter selection applied to the cached
// collection. The cache is never fetched here; 'refresh' and the watcher
// keep it current.
func (a *App) List(ctx context.Context) error {
	snap := a.cache.Snapshot()

	if snap.Loading {
		a.notify.Infof("Refreshing...")
	}
	if snap.Err != nil && len(snap.Items) > 0 {
		a.notify.Failuref("last refresh failed, showing previous data")
	}
	if snap.Err != nil && len(snap.Items) == 0 {
		a.notifyFailure("loading content", snap.Err)
		return snap.Err
	}

	if !a.filter.IsDefault() {
		a.notify.Infof("Filter: %s", describeFilter(a.filter))
	}
	a.renderList(derive.ApplyFilter(snap.Items, a.filter))
	return nil
}

// Tags prints every tag in the collection, once, sorted.
func (a *App) Tags(ctx context.Context) error {
	snap := a.cache.Snapshot()
	tags := derive.UniqueTags(snap.Items)
	if len(tags) == 0 {
		a.notify.Infof("No tags yet")
		return nil
	}
	for _, t := range tags {
		a.notify.Printf("%s\n", a.notify.p.tag.Render("#"+t))
	}
	return nil
}

func (a *App) Counts(ctx context.Context) error {
	a.renderCounts(a.cache.Snapshot().Items)
	return nil
}

// Filter adjusts the browsing selection. Forms:
//
//	filter                  show the current selection
//	filter type <t>         select one content type (or "all")
//	filter tag add <name>   require a tag
//	filter tag rm <name>    drop a required tag
//	filter clear            back to the default selection
func (a *App) Filter(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.notify.Infof("Filter: %s", describeFilter(a.filter))
		return nil
	}

	switch args[0] {
	case "type":
		if len(args) < 2 {
			a.notify.Failuref("usage: filter type <video|post|document|file|all>")
			return nil
		}
		t, ok := models.ParseContentType(args[1])
		if !ok {
			a.notify.Failuref("unknown content type: %s", args[1])
			return nil
		}
		a.filter = a.filter.WithType(t)
	case "tag":
		if len(args) < 3 {
			a.notify.Failuref("usage: filter tag add|rm <name>")
			return nil
		}
		switch args[1] {
		case "add":
			a.filter = a.filter.AddTag(args[2])
		case "rm":
			a.filter = a.filter.RemoveTag(args[2])
		default:
			a.notify.Failuref("usage: filter tag add|rm <name>")
			return nil
		}
	case "clear":
		a.filter = models.NewFilterState()
	default:
		a.notify.Failuref("usage: filter [type <t> | tag add|rm <name> | clear]")
		return nil
	}

	a.notify.Successf("Filter: %s", describeFilter(a.filter))
	return nil
}

// RefreshNow forces a fetch and reports the outcome.
func (a *App) RefreshNow(ctx context.Context) error {
	if err := a.cache.Refresh(ctx); err != nil {
		a.notifyFailure("refresh", err)
		return err
	}
	a.notify.Successf("Refreshed, %d item(s)", len(a.cache.Snapshot().Items))
	return nil
}

func describeFilter(f models.FilterState) string {
	if f.IsDefault() {
		return "everything"
	}
	var parts []string
	if f.Type != models.ContentTypeAll && f.Type != "" {
		parts = append(parts, "type="+typeLabel(f.Type))
	}
	for _, t := range f.Tags {
		parts = append(parts, "#"+t)
	}
	return strings.Join(parts, " ")
}
