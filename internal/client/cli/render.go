package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/brainkeep/brainkeep/internal/client/derive"
	"github.com/brainkeep/brainkeep/internal/client/models"
)

func typeLabel(t models.ContentType) string {
	switch t {
	case models.ContentTypeVideo:
		return "video"
	case models.ContentTypeSocial:
		return "post"
	case models.ContentTypeDocument:
		return "document"
	case models.ContentTypeFile:
		return "file"
	}
	return strings.ToLower(string(t))
}

// renderItem draws one card. Known URL shapes get their extracted
// identifier shown next to the raw link; anything else shows the link
// alone.
func (a *App) renderItem(item models.ContentItem) string {
	p := a.notify.p

	var b strings.Builder
	b.WriteString(p.title.Render(item.Title))
	b.WriteString("\n")
	b.WriteString(p.faint.Render(fmt.Sprintf("%s · %s · %s",
		typeLabel(item.Type), item.ID, item.CreatedTime().Format("2006-01-02 15:04"))))
	b.WriteString("\n")
	b.WriteString(item.Link)

	switch item.Type {
	case models.ContentTypeVideo:
		if id := models.ExtractVideoID(item.Link); id != "" {
			b.WriteString(p.faint.Render("  [video id " + id + "]"))
		}
	case models.ContentTypeSocial:
		if id := models.ExtractPostID(item.Link); id != "" {
			b.WriteString(p.faint.Render("  [post id " + id + "]"))
		}
	}

	if len(item.Tags) > 0 {
		parts := make([]string, len(item.Tags))
		for i, tag := range item.Tags {
			parts[i] = p.tag.Render("#" + tag)
		}
		b.WriteString("\n")
		b.WriteString(strings.Join(parts, " "))
	}

	return p.card.Render(b.String())
}

func (a *App) renderList(items []models.ContentItem) {
	if len(items) == 0 {
		a.notify.Infof("Nothing here yet. Add more content to see it here.")
		return
	}
	for _, item := range items {
		a.notify.Printf("%s\n", a.renderItem(item))
	}
	a.notify.Printf("%d item(s)\n", len(items))
}

func (a *App) renderCounts(items []models.ContentItem) {
	counts := derive.CountByType(items)

	types := make([]models.ContentType, 0, len(counts))
	for t := range counts {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	for _, t := range types {
		a.notify.Printf("%-10s %d\n", typeLabel(t), counts[t])
	}
}
