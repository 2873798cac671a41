package cli

import "context"

// Delete removes one item by id. The id can be given as an argument or
// entered at a prompt; it is the id shown on each card by 'list'.
func (a *App) Delete(ctx context.Context, args []string) error {
	var (
		id  string
		err error
	)
	if len(args) > 0 {
		id = args[0]
	} else {
		id, err = GetSimpleText(a.reader, "Content id", a.notify.w)
		if err != nil {
			return err
		}
	}

	if err := a.content.Remove(ctx, id); err != nil {
		a.notifyFailure("delete", err)
		return err
	}

	a.notify.Successf("Deleted")
	return nil
}
