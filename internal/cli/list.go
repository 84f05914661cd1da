package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/five82/gallery/internal/app"
	"github.com/five82/gallery/internal/picsum"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

func newListCmd(root *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the image list without starting the TUI",
		Example: `
gallery list
gallery list --limit 5 --format json`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case formatTable, formatJSON, formatYAML:
				return nil
			}
			return fmt.Errorf("unknown format %q (want table, json or yaml)", format)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.ResolveConfig(root.appOptions())
			if err != nil {
				return err
			}
			images, err := app.FetchList(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			return writeImages(cmd.OutOrStdout(), format, images)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "o", formatTable, "output format: table, json or yaml")
	return cmd
}

func writeImages(w io.Writer, format string, images []picsum.Image) error {
	if images == nil {
		images = []picsum.Image{}
	}
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(images)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(images); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err := fmt.Fprintln(w, imageTable(images))
		return err
	}
}

func imageTable(images []picsum.Image) *uitable.Table {
	header := color.New(color.Bold, color.Underline).SprintFunc()

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 48
	tbl.AddRow(header("#"), header("ID"), header("AUTHOR"), header("SIZE"))
	for i, img := range images {
		tbl.AddRow(strconv.Itoa(i+1), img.ID, img.DisplayAuthor(), img.Dimensions())
	}
	return tbl
}
