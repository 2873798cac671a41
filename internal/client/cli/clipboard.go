package cli

import "github.com/atotto/clipboard"

// systemClipboard is the production services.Clipboard implementation.
type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}
