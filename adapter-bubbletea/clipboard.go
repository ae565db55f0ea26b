package adapter_bubbletea

import "github.com/atotto/clipboard"

type systemClipboard struct{}

func (c *systemClipboard) ReadText() (string, error) {
	return clipboard.ReadAll()
}

func (c *systemClipboard) WriteText(text string) error {
	return clipboard.WriteAll(text)
}
