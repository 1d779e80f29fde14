package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sleroq/zoho-to-joplin/internal/app/exporter"
	"github.com/sleroq/zoho-to-joplin/internal/infra/console"
)

// version is set at build time via ldflags.
var version = "dev"

// errReported marks failures that were already shown to the user.
var errReported = errors.New("export failed")

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "zoho-to-joplin <infolder> [outfolder]",
		Short: "Convert a Zoho Notebook HTML export to Markdown with front matter for Joplin",
		Long: `zoho-to-joplin reads the index.html of a Zoho Notebook HTML export and writes
one Markdown file per note to <outfolder>/export_data/<notebook>/. Each file
starts with a front matter block (title, created, updated and, for todos,
completed? and due). Attached files are copied next to the notes.

If outfolder is omitted the current folder is used.`,
		Args:          cobra.RangeArgs(1, 2),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd, v)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, v, args)
		},
	}

	cmd.Flags().Bool("nolinebreaks", false, "disable adding line breaks between divs (text lines may get merged into blocks)")
	cmd.Flags().BoolP("yes", "y", false, "do not ask for confirmation before writing")
	cmd.Flags().String("config", "", "config file (default: ./zoho-to-joplin.yaml or ~/.config/zoho-to-joplin/zoho-to-joplin.yaml)")
	return cmd
}

func loadConfig(cmd *cobra.Command, v *viper.Viper) error {
	for _, name := range []string{"nolinebreaks", "yes"} {
		if err := v.BindPFlag(name, cmd.Flags().Lookup(name)); err != nil {
			return err
		}
	}
	v.SetEnvPrefix("ZOHO_TO_JOPLIN")
	v.AutomaticEnv()

	cfgFile, _ := cmd.Flags().GetString("config")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", cfgFile, err)
		}
		return nil
	}

	v.SetConfigName("zoho-to-joplin")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "zoho-to-joplin"))
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

func runExport(cmd *cobra.Command, v *viper.Viper, args []string) error {
	input, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}
	output, err := os.Getwd()
	if err != nil {
		return err
	}
	if len(args) > 1 {
		if output, err = filepath.Abs(args[1]); err != nil {
			return err
		}
	}
	lineBreaks := !v.GetBool("nolinebreaks")

	out := console.New(cmd.OutOrStdout())
	out.Infof("HTML files from %s", input)
	out.Infof("will be exported to %s", filepath.Join(output, exporter.SaveFolder))
	out.Infof("Line breaks between <div>'s: %t", lineBreaks)

	if !v.GetBool("yes") {
		ok, err := confirm(cmd.InOrStdin(), cmd.OutOrStdout(), "Do you want to continue?")
		if err != nil {
			return fmt.Errorf("confirmation: %w", err)
		}
		if !ok {
			out.Infof("Nothing was written")
			return nil
		}
	}

	exp := exporter.Exporter{
		InputDir:          input,
		OutputDir:         output,
		DisableLineBreaks: !lineBreaks,
		Reporter:          out,
	}
	stats, err := exp.Run()
	if err != nil {
		out.Errorf("%v", err)
		return errReported
	}

	out.Infof("exported %d notes, copied %d files, skipped %d notes", stats.Notes, stats.Files, stats.Skipped)
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
