package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/sofmeright/badgen/src/badge"
	"github.com/sofmeright/badgen/src/config"
	"github.com/sofmeright/badgen/src/gitver"
)

var (
	gitLabel    string
	gitTemplate string
	gitOutput   string
	gitStyle    string
	gitColor    string
)

var gitCmd = &cobra.Command{
	Use:   "git [dir]",
	Short: "Generate a version badge from git",
	Long: `Generate a badge whose status is the version detected from git tags.

A semver tag on HEAD renders as a release; otherwise the latest tag gains
a -dev+<sha> suffix. The color reflects the release state unless
overridden with --color.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGit,
}

func init() {
	gitCmd.Flags().StringVar(&gitLabel, "label", "version", "badge label")
	gitCmd.Flags().StringVar(&gitTemplate, "template", "{version}", "status template")
	gitCmd.Flags().StringVar(&gitOutput, "output", "", "output file path (default: stdout)")
	gitCmd.Flags().StringVar(&gitStyle, "style", "", "badge style: classic or flat")
	gitCmd.Flags().StringVar(&gitColor, "color", "auto", "background color, \"auto\" picks by release state")

	rootCmd.AddCommand(gitCmd)
}

func runGit(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	info, err := gitver.Detect(dir)
	if err != nil {
		return fmt.Errorf("detecting version: %w", err)
	}

	item := config.BadgeItem{
		Name:   "version",
		Label:  gitLabel,
		Status: gitver.ResolveTemplate(gitTemplate, info),
		Style:  gitStyle,
	}

	style, err := item.ResolveStyle(cfg.Defaults)
	if err != nil {
		return err
	}
	if gitColor == "" || gitColor == "auto" {
		style.Background = gitver.VersionColor(info)
	} else {
		c, err := badge.ParseColor(gitColor)
		if err != nil {
			return err
		}
		style.Background = c
	}

	f, err := loadItemFont(&item)
	if err != nil {
		return fmt.Errorf("loading font: %w", err)
	}

	var out, scratch bytes.Buffer
	if err := badge.WriteBadgeWith(&out, &style, item.Status, item.Label, f, &scratch); err != nil {
		return err
	}

	if gitOutput == "" {
		_, err := os.Stdout.Write(out.Bytes())
		return err
	}
	if err := writeBadgeFile(gitOutput, out.Bytes()); err != nil {
		return err
	}
	fmt.Printf("  badge %s → %s\n", item.Status, gitOutput)
	return nil
}
