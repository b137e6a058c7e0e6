package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/sync/semaphore"

	"github.com/sofmeright/badgen/src/badge"
	"github.com/sofmeright/badgen/src/config"
	"github.com/sofmeright/badgen/src/font"
	"github.com/sofmeright/badgen/src/fonts"
	"github.com/sofmeright/badgen/src/gitver"
)

var (
	genLabel      string
	genStatus     string
	genColor      string
	genLabelColor string
	genStyle      string
	genOutput     string
	genFont       string
	genFontFile   string
	genPrecision  uint8
	genApprox     bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [name...]",
	Short: "Generate SVG badges from config or flags",
	Long: `Generate SVG badges defined in the config file.

Config-driven (no --status): generates every configured badge, or only the
named ones if names are given.
Ad-hoc (--status): generates a single badge from flags, written to --output
or stdout.

Status text may contain placeholders like {version}, {branch} or {sha},
resolved from the git repository in the working directory.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&genLabel, "label", "", "ad-hoc badge label (left side)")
	generateCmd.Flags().StringVar(&genStatus, "status", "", "ad-hoc badge status (right side)")
	generateCmd.Flags().StringVar(&genColor, "color", "auto", "background color name or hex, \"auto\" picks by status")
	generateCmd.Flags().StringVar(&genLabelColor, "label-color", "", "label background color name or hex")
	generateCmd.Flags().StringVar(&genStyle, "style", "", "badge style: classic or flat")
	generateCmd.Flags().StringVar(&genOutput, "output", "", "output file path (default: stdout)")
	generateCmd.Flags().StringVar(&genFont, "font", "", "built-in font name")
	generateCmd.Flags().StringVar(&genFontFile, "font-file", "", "path to a TTF/OTF font file")
	generateCmd.Flags().Uint8Var(&genPrecision, "precision", 0, "decimals kept in path coordinates")
	generateCmd.Flags().BoolVar(&genApprox, "approx", false, "emit <text> elements instead of glyph outlines")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if genStatus != "" {
		item := config.BadgeItem{
			Name:       "badge",
			Label:      genLabel,
			Status:     genStatus,
			Color:      genColor,
			LabelColor: genLabelColor,
			Style:      genStyle,
			Output:     genOutput,
			Font:       genFont,
			FontFile:   genFontFile,
		}
		if cmd.Flags().Changed("precision") {
			p := genPrecision
			item.Precision = &p
		}
		return generateAdHoc(&item)
	}
	return generateFromConfig(args)
}

func generateAdHoc(item *config.BadgeItem) error {
	status := resolveStatus(item.Status)

	style, err := item.ResolveStyle(cfg.Defaults)
	if err != nil {
		return err
	}
	if item.Color == "" || item.Color == "auto" {
		style.Background = badge.StatusColor(status)
	}

	var out bytes.Buffer
	if genApprox {
		metrics, err := loadItemMetrics(item)
		if err != nil {
			return fmt.Errorf("loading font: %w", err)
		}
		err = badge.WriteBadgeApprox(&out, &style, status, item.Label, metrics)
		if err != nil {
			return err
		}
	} else {
		f, err := loadItemFont(item)
		if err != nil {
			return fmt.Errorf("loading font: %w", err)
		}
		var scratch bytes.Buffer
		if err := badge.WriteBadgeWith(&out, &style, status, item.Label, f, &scratch); err != nil {
			return err
		}
	}

	if item.Output == "" {
		_, err := os.Stdout.Write(out.Bytes())
		return err
	}
	if err := writeBadgeFile(item.Output, out.Bytes()); err != nil {
		return err
	}
	fmt.Printf("  badge → %s\n", item.Output)
	return nil
}

func generateFromConfig(names []string) error {
	items := cfg.Badges
	if len(items) == 0 {
		return errors.New("no badges configured")
	}

	// Filter to named items if specified.
	if len(names) > 0 {
		nameSet := make(map[string]bool, len(names))
		for _, n := range names {
			nameSet[n] = true
		}
		var filtered []config.BadgeItem
		for _, item := range items {
			if nameSet[item.Name] {
				filtered = append(filtered, item)
			}
		}
		if len(filtered) == 0 {
			return fmt.Errorf("no matching badges for: %v", names)
		}
		items = filtered
	}

	// Resolve git info up front so the fan-out below never touches the
	// repository concurrently.
	for i := range items {
		if items[i].StatusTemplated() {
			detectGitInfo()
			break
		}
	}

	if verbose {
		fmt.Printf("  generating %d badge(s)\n", len(items))
	}

	var (
		mu   sync.Mutex
		wg   sync.WaitGroup
		errs []error
	)
	ctx := context.Background()
	sem := semaphore.NewWeighted(int64(runtime.NumCPU()))

	for i := range items {
		item := &items[i]
		wg.Add(1)
		sem.Acquire(ctx, 1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)
			if err := generateItem(item); err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("badge %s: %w", item.Name, err))
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	return errors.Join(errs...)
}

func generateItem(item *config.BadgeItem) error {
	status := resolveStatus(item.Status)

	style, err := item.ResolveStyle(cfg.Defaults)
	if err != nil {
		return err
	}
	if item.Color == "" || item.Color == "auto" {
		style.Background = badge.StatusColor(status)
	}

	f, err := loadItemFont(item)
	if err != nil {
		return fmt.Errorf("loading font: %w", err)
	}

	var out, scratch bytes.Buffer
	if err := badge.WriteBadgeWith(&out, &style, status, item.Label, f, &scratch); err != nil {
		return err
	}

	path := item.OutputPath(cfg.Defaults)
	if err := writeBadgeFile(path, out.Bytes()); err != nil {
		return err
	}
	fmt.Printf("  badge %s → %s\n", item.Name, path)
	return nil
}

// gitInfo caches git version detection across badge items. Detection
// failure is a warning, not an error: placeholders expand to "".
var gitInfo struct {
	once sync.Once
	info *gitver.Info
}

func detectGitInfo() *gitver.Info {
	gitInfo.once.Do(func() {
		info, err := gitver.Detect(".")
		if err != nil {
			fmt.Fprintf(os.Stderr, "  warning: version detection failed: %v\n", err)
			return
		}
		gitInfo.info = info
	})
	return gitInfo.info
}

func resolveStatus(status string) string {
	if !strings.Contains(status, "{") {
		return status
	}
	return gitver.ResolveTemplate(status, detectGitInfo())
}

func loadItemSfnt(item *config.BadgeItem) (*sfnt.Font, string, error) {
	name, file := item.ResolveFont(cfg.Defaults)
	if file != "" {
		return fonts.LoadFile(file)
	}
	f, err := fonts.Load(name)
	return f, name, err
}

func loadItemFont(item *config.BadgeItem) (font.Font, error) {
	sf, _, err := loadItemSfnt(item)
	if err != nil {
		return nil, err
	}
	return badge.NewFontPrecision(sf, item.ResolvePrecision(cfg.Defaults))
}

func loadItemMetrics(item *config.BadgeItem) (*font.Metrics, error) {
	sf, name, err := loadItemSfnt(item)
	if err != nil {
		return nil, err
	}
	return font.NewMetrics(sf, name, 11)
}

func writeBadgeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating badge directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing badge: %w", err)
	}
	return nil
}
