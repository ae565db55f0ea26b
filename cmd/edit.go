package cmd

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	adapter "inkwell/adapter-bubbletea"
	"inkwell/storage"
)

var editCmd = &cobra.Command{
	Use:   "edit [file]",
	Short: "Open a file in the editor",
	Long: `Open a file in the editor. A name that does not exist yet opens an
empty document and is created on the first save. Without a file the
editor opens a scratch document that cannot be saved.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().BoolP("line-numbers", "n", true, "show line numbers")
	editCmd.Flags().BoolP("typewriter", "t", false, "start in typewriter mode")
	editCmd.Flags().Int("focus-radius", 0, "undimmed lines around the cursor in typewriter mode")

	viper.BindPFlag("editor.show_line_numbers", editCmd.Flags().Lookup("line-numbers"))
	viper.BindPFlag("editor.typewriter_mode", editCmd.Flags().Lookup("typewriter"))
	viper.BindPFlag("editor.focus_radius", editCmd.Flags().Lookup("focus-radius"))
}

func runEdit(cmd *cobra.Command, args []string) error {
	var filePath string
	var content string

	if len(args) > 0 {
		abs, err := filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("resolve %s: %w", args[0], err)
		}
		filePath = abs

		content, err = storage.Load(filePath)
		if err != nil {
			return err
		}
	}

	model := adapter.New(content, adapter.Options{
		FilePath:        filePath,
		Typewriter:      viper.GetBool("editor.typewriter_mode"),
		FocusRadius:     viper.GetInt("editor.focus_radius"),
		ShowLineNumbers: viper.GetBool("editor.show_line_numbers"),
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run editor: %w", err)
	}
	return nil
}
