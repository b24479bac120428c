package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/runrig-coop/farm-flow-board/style"
)

func stylesCmd(cfg *Config) *cobra.Command {
	var (
		format string
		vars   bool
	)
	cmd := &cobra.Command{
		Use:   "styles",
		Short: "Print the resolved style",
		Long: `styles prints the fully resolved style after applying the style file,
theme and flags. The output is a complete style file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if vars {
				theme := style.DefaultTheme()
				if cfg.Theme != "" {
					t, err := style.LoadTheme(cfg.Theme)
					if err != nil {
						return err
					}
					theme = t
				}
				for _, name := range theme.Names() {
					v, _ := theme.Lookup(name, cfg.Dark)
					fmt.Fprintf(w, "%s: %s\n", name, v)
				}
				return nil
			}

			var f style.Format
			switch strings.ToLower(format) {
			case "yaml", "yml":
				f = style.FormatYAML
			case "toml":
				f = style.FormatTOML
			default:
				return fmt.Errorf("unknown format %q (want yaml or toml)", format)
			}
			st, err := cfg.ResolveStyle()
			if err != nil {
				return err
			}
			out, err := style.Encode(st.Options(), f)
			if err != nil {
				return err
			}
			_, err = w.Write(out)
			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", "yaml", "Output format: yaml or toml")
	cmd.Flags().BoolVar(&vars, "vars", false, "List theme variables instead")
	return cmd
}
