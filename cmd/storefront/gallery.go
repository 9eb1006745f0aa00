package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/storefront/internal/config"
	"github.com/alexisbeaulieu97/storefront/internal/logger"
	"github.com/alexisbeaulieu97/storefront/internal/preview"
)

type galleryOptions struct {
	static bool
}

func newGalleryCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &galleryOptions{}

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Browse the configured buttons in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadApp(cmd, rootFlags, "gallery")
			if err != nil {
				return err
			}
			if !opts.static {
				opts.static = !isTerminal(cmd.OutOrStdout())
			}
			return runGallery(cmd, cfg, log, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.static, "static", false, "Print the gallery once instead of starting the interactive view")

	return cmd
}

func galleryItems(specs []config.ButtonSpec, log *logger.Logger) []preview.Item {
	items := make([]preview.Item, 0, len(specs))
	for _, spec := range specs {
		name := spec.Name
		cfg, warnings := spec.Button(func() {
			log.WithFields(map[string]any{"action": name}).Debug("control activated")
		})
		for _, w := range warnings {
			log.WithFields(map[string]any{"action": name}).Warn(w, "button spec adjusted")
		}
		items = append(items, preview.Item{Name: name, Config: cfg})
	}
	return items
}

func runGallery(cmd *cobra.Command, cfg *config.Config, log *logger.Logger, opts *galleryOptions) error {
	model := preview.NewModel(galleryItems(cfg.Gallery, log))

	if opts.static {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), model.StaticView())
		return err
	}

	if _, err := tea.NewProgram(model).Run(); err != nil {
		return newCommandError("gallery", "running the interactive view", err, "Retry with --static when the terminal does not support it.")
	}
	return nil
}

func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
