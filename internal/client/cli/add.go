package cli

import (
	"context"

	"github.com/brainkeep/brainkeep/internal/client/models"
)

// Add walks the user through a new link entry: type, title, link, tags.
// On success the form is done with; nothing is kept around for a second
// submission.
func (a *App) Add(ctx context.Context) error {
	rawType, err := GetSimpleText(a.reader, "Type (video, post, document)", a.notify.w)
	if err != nil {
		return err
	}
	contentType, ok := models.ParseContentType(rawType)
	if !ok || contentType == models.ContentTypeAll {
		a.notify.Failuref("unknown content type: %s", rawType)
		return nil
	}

	title, err := GetSimpleText(a.reader, "Title", a.notify.w)
	if err != nil {
		return err
	}
	link, err := GetSimpleText(a.reader, "Link", a.notify.w)
	if err != nil {
		return err
	}
	tags, err := GetTags(a.reader, a.notify.w)
	if err != nil {
		return err
	}

	draft := models.ContentDraft{Type: contentType, Title: title, Link: link, Tags: tags}
	if err := a.content.Create(ctx, draft); err != nil {
		a.notifyFailure("adding content", err)
		return err
	}

	a.notify.Successf("Added %q", title)
	return nil
}

// AddFile is the file-backed variant. The REPL only routes here when
// uploads are enabled in configuration.
func (a *App) AddFile(ctx context.Context) error {
	path, err := GetSimpleText(a.reader, "File path", a.notify.w)
	if err != nil {
		return err
	}
	title, err := GetSimpleText(a.reader, "Title", a.notify.w)
	if err != nil {
		return err
	}
	tags, err := GetTags(a.reader, a.notify.w)
	if err != nil {
		return err
	}

	if err := a.content.Upload(ctx, path, title, tags); err != nil {
		a.notifyFailure("uploading file", err)
		return err
	}

	a.notify.Successf("Uploaded %q", title)
	return nil
}
