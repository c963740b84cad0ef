// Copyright (C) 2026 SCANOSS.COM
// SPDX-License-Identifier: GPL-2.0-only
//
// This program is free software; you can redistribute it and/or
// modify it under the terms of the GNU General Public License
// as published by the Free Software Foundation; version 2.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program; if not, write to the Free Software
// Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301, USA.

package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	api "github.com/scanoss/cbom-scanner/internal/api"
	"github.com/scanoss/cbom-scanner/internal/cache"
	"github.com/scanoss/cbom-scanner/internal/config"
	"github.com/scanoss/cbom-scanner/internal/engine"
	clierrors "github.com/scanoss/cbom-scanner/internal/errors"
	"github.com/scanoss/cbom-scanner/internal/output"
	"github.com/scanoss/cbom-scanner/internal/rules"
	"github.com/scanoss/cbom-scanner/internal/scanner"
	"github.com/scanoss/cbom-scanner/internal/skip"
	"github.com/scanoss/cbom-scanner/internal/utils"
	"github.com/scanoss/cbom-scanner/pkg/schema"
)

const (
	defaultFormat         = "cyclonedx"
	defaultTimeout        = "10m"
	defaultRulesetName    = "dca"
	defaultRulesetVersion = "latest"
)

// SupportedFormats lists the output formats supported by the tool.
var SupportedFormats = []string{"cbom", "cyclonedx"}

var (
	scanRules         []string
	scanRuleDirs      []string
	scanFormat        string
	scanOutput        string
	scanLanguages     []string
	scanIncludeTS     bool
	scanFailOnFind    bool
	scanTimeout       string
	scanNoRemoteRules bool
	scanNoCache       bool
	scanAPIKey        string
	scanAPIURL        string
	scanStrict        bool
	scanMaxStaleAge   string
)

var scanCmd = &cobra.Command{
	Use:   "scan [target]",
	Short: "Scan source code for cryptographic usage",
	Long: `Scan source code repositories for cryptographic algorithm usage.

	The scan command walks the target directory or file, matches cryptographic
	call sites against a rule catalogue (the bundled default catalogue, plus
	any --rules/--rules-dir or remote catalogue configured) via in-process AST
	analysis (regex fallback for languages without a grammar), and emits a
	Cryptographic Bill of Materials. By default, it outputs CycloneDX 1.5 JSON
	to stdout. Use --out to write to a file, or --format cbom for the
	tool's native CBOM JSON.

	Examples:
	  # Scan with default CycloneDX output to stdout
	  cbom-scanner scan --rules-dir ./rules /path/to/code

	  # Save output to a file
	  cbom-scanner scan --rules-dir ./rules --out results.json /path/to/code

	  # Pipe output to jq for processing
	  cbom-scanner scan --rules-dir ./rules /path/to/code | jq '.components | length'

	  # Scan with multiple rule files
	  cbom-scanner scan --rules rule1.yaml --rules rule2.yaml /path/to/code

	  # Restrict to specific languages
	  cbom-scanner scan --languages java,python --rules-dir ./rules/ /path/to/code

	  # Fail on findings (for CI/CD)
	  cbom-scanner scan --fail-on-findings --rules-dir ./rules/ /path/to/code`,
	Args: func(_ *cobra.Command, args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("you must specify a target directory to scan")
		}
		return nil
	},
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringArrayVarP(&scanRules, "rules", "r", []string{}, "Rule file path (repeatable)")
	scanCmd.Flags().StringArrayVar(&scanRuleDirs, "rules-dir", []string{}, "Rule directory path (repeatable)")
	scanCmd.Flags().StringVarP(&scanFormat, "format", "f", defaultFormat, "Output format: cbom, cyclonedx (default: cyclonedx)")
	scanCmd.Flags().StringVarP(&scanOutput, "out", "o", "", "Output file path, or - for stdout (default: stdout)")
	scanCmd.Flags().StringSliceVar(&scanLanguages, "languages", []string{}, "Restrict scan to these languages (comma-separated)")
	scanCmd.Flags().BoolVar(&scanIncludeTS, "include-ts", false, "Additionally scan TypeScript (.ts/.tsx) files under the node scanner")
	scanCmd.Flags().BoolVar(&scanFailOnFind, "fail-on-findings", false, "Exit with error if findings detected")
	scanCmd.Flags().StringVarP(&scanTimeout, "timeout", "t", defaultTimeout, "Scan timeout (e.g., 10m, 1h, 30d, 2w)")
	scanCmd.Flags().BoolVar(&scanNoRemoteRules, "no-remote-rules", false, "Disable default remote rule catalogue")
	scanCmd.Flags().BoolVar(&scanNoCache, "no-cache", false, "Force fresh download of the remote rule catalogue, bypass cache")
	scanCmd.Flags().StringVar(&scanAPIKey, "api-key", "", "rule catalogue registry API key")
	scanCmd.Flags().StringVar(&scanAPIURL, "api-url", "", "rule catalogue registry base URL")
	scanCmd.Flags().BoolVar(&scanStrict, "strict", false, "Fail if cache expired and API unreachable (no stale cache fallback)")
	scanCmd.Flags().StringVar(&scanMaxStaleAge, "max-stale-age", "30d", "Maximum age for stale cache fallback (e.g., 30d, 720h, 2w, max: 90d)")
}

//nolint:gocognit,gocyclo,funlen // Main scan orchestration function handles validation, cache management, scanner execution, and output formatting - splitting would reduce clarity
func runScan(_ *cobra.Command, args []string) error {
	target := args[0]

	if err := validateScanFlags(target); err != nil {
		return err
	}

	timeout, err := parseDuration(scanTimeout)
	if err != nil {
		return fmt.Errorf("invalid timeout format '%s': %w (use format like '10m', '1h', '30d', or '2w')", scanTimeout, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	targetDir := filepath.Dir(target)

	// Load skip patterns from multiple sources: our default list and an
	// optional scanoss.json; a custom source can be added by implementing
	// the PatternSource interface.
	skipPatternsSources := []skip.PatternSource{
		skip.NewDefaultsSource(),
		skip.NewScanossConfigSourceFromDir(targetDir),
	}
	multiSourceSkipPatterns := skip.NewMultiSource(skipPatternsSources...)
	skipPatterns, err := multiSourceSkipPatterns.Load()
	if err != nil {
		log.Warn().Err(err).Msgf("failed to load skip patterns from %s", multiSourceSkipPatterns.Name())
		skipPatterns = skip.DefaultSkippedDirs
	}

	if len(skipPatterns) > 0 {
		log.Info().Msgf("Using %d skip patterns from %s", len(skipPatterns), multiSourceSkipPatterns.Name())
	}

	skipMatcher := skip.NewGitIgnoreMatcher(skipPatterns)

	cfg := config.GetInstance()
	if err := cfg.Initialize(scanAPIKey, scanAPIURL); err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// The embedded catalogue is always the base source, so a scan never
	// depends on network access or explicit flags to have rules at all;
	// local and remote sources, when configured, override it per language.
	ruleSources := []rules.RuleSource{rules.NewEmbeddedSource()}

	if !scanNoRemoteRules {
		log.Info().
			Str("ruleset", defaultRulesetName).
			Str("version", defaultRulesetVersion).
			Bool("no-cache", scanNoCache).
			Msg("Remote rules enabled")

		apiClient := api.NewClient(cfg.GetAPIURL(), cfg.GetAPIKey())
		cacheManager, err := cache.NewManager(apiClient)
		if err != nil {
			return fmt.Errorf("failed to create cache manager: %w", err)
		}

		cacheManager.SetNoCache(scanNoCache)

		maxStaleAge, err := parseDuration(scanMaxStaleAge)
		if err != nil {
			return fmt.Errorf("invalid --max-stale-age format '%s': %w (use format like '30d', '720h', or '2w')", scanMaxStaleAge, err)
		}
		if maxStaleAge > config.MaxStaleCacheAge {
			return fmt.Errorf("--max-stale-age cannot exceed %s (got: %s)", config.MaxStaleCacheAge, maxStaleAge)
		}
		if scanStrict {
			// --strict disables the stale-cache fallback entirely: any
			// download failure on an expired cache entry is a hard error.
			maxStaleAge = 0
		}
		cacheManager.SetMaxStaleCacheAge(maxStaleAge)

		remoteSource := rules.NewRemoteSource(
			ctx,
			defaultRulesetName,
			defaultRulesetVersion,
			cacheManager,
		)
		ruleSources = append(ruleSources, remoteSource)
	}

	if len(scanRules) > 0 || len(scanRuleDirs) > 0 {
		localSource := rules.NewLocalSource(scanRules, scanRuleDirs)
		ruleSources = append(ruleSources, localSource)
		log.Info().Msgf("Local rules enabled: %s", localSource.Name())
	}

	var rulesManager *rules.Manager
	if len(ruleSources) == 1 {
		rulesManager = rules.NewManager(ruleSources[0])
		log.Info().Msgf("Rules manager configured with source: %s", ruleSources[0].Name())
	} else {
		multiSource := rules.NewMultiSource(ruleSources...)
		rulesManager = rules.NewManager(multiSource)
		log.Info().Msgf("Rules manager configured with %d sources", len(ruleSources))
	}

	scannerRegistry := scanner.NewRegistry()
	scannerRegistry.Register("node", scanner.NewGeneric(scanner.Node()))
	scannerRegistry.Register("go", scanner.NewGeneric(scanner.Go()))
	scannerRegistry.Register("rust", scanner.NewGeneric(scanner.Rust()))
	scannerRegistry.Register("c", scanner.NewGeneric(scanner.C()))
	scannerRegistry.Register("python", scanner.NewGeneric(scanner.Python()))
	scannerRegistry.Register("java", scanner.NewGeneric(scanner.Java()))
	scannerRegistry.Register("csharp", scanner.NewGeneric(scanner.CSharp()))

	orchestrator := engine.NewOrchestrator(rulesManager, scannerRegistry, skipMatcher)

	scanOpts := engine.ScanOptions{
		Target:            target,
		IncludeTypeScript: scanIncludeTS,
		Languages:         scanLanguages,
		Timeout:           timeout,
	}

	log.Info().Msgf("Starting scan of %s...", target)

	report, err := orchestrator.Scan(ctx, scanOpts)
	if err != nil {
		return clierrors.FormatError(fmt.Sprintf("scanning %s", target), err)
	}

	factory := output.NewWriterFactory()
	writer, err := factory.GetWriter(scanFormat)
	if err != nil {
		return fmt.Errorf("failed to get output writer: %w", err)
	}

	if err := writer.Write(report, scanOutput); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	findingsCount, filesCount := countFindings(report)

	if err := printScanSummary(filesCount, findingsCount); err != nil {
		log.Error().Err(err).Msg("Failed to render scan summary")
	}

	if scanFailOnFind && findingsCount > 0 {
		return fmt.Errorf("scan detected %d findings (--fail-on-findings enabled)", findingsCount)
	}

	return nil
}

func validateScanFlags(target string) error {
	if _, err := os.Stat(target); os.IsNotExist(err) {
		return fmt.Errorf("target path does not exist: %s", target)
	}

	for _, ruleDir := range scanRuleDirs {
		if err := utils.ValidateRuleDirNotEmpty(ruleDir); err != nil {
			return clierrors.WrapWithSuggestion(err, "check the --rules-dir path contains at least one .yaml rule file")
		}
	}

	if !slices.Contains(SupportedFormats, scanFormat) {
		return clierrors.FormatValidationError("--format", fmt.Sprintf("unsupported format '%s'", scanFormat),
			fmt.Sprintf("use one of: %v", SupportedFormats))
	}

	for i, lang := range scanLanguages {
		scanLanguages[i] = strings.ToLower(strings.TrimSpace(lang))
	}

	return nil
}

// countFindings returns the total number of findings and the number of
// distinct files they span.
func countFindings(report *schema.Report) (findings, files int) {
	if report == nil {
		return 0, 0
	}

	seen := make(map[string]struct{}, len(report.Findings))
	for _, f := range report.Findings {
		seen[f.Evidence.File] = struct{}{}
	}
	return len(report.Findings), len(seen)
}

// printScanSummary displays scan summary in a user-friendly format.
func printScanSummary(filesCount, findingsCount int) error {
	stats := make([]pterm.BulletListItem, 0, 3)
	stats = append(stats,
		pterm.BulletListItem{Level: 1, Text: fmt.Sprintf("Files with findings: %d", filesCount)},
		pterm.BulletListItem{Level: 1, Text: fmt.Sprintf("Total crypto assets: %d", findingsCount)},
	)

	var scanOutputLocation string
	if scanOutput != "" && scanOutput != "-" {
		scanOutputLocation = scanOutput
	} else {
		scanOutputLocation = "<stdout>"
	}

	stats = append(stats, pterm.BulletListItem{Level: 1, Text: fmt.Sprintf("Output: %s", scanOutputLocation)})

	pterm.DefaultSection.WithWriter(os.Stderr).Println("Scan Summary")
	err := pterm.DefaultBulletList.WithItems(stats).WithWriter(os.Stderr).Render()
	if err != nil {
		return fmt.Errorf("failed to render scan summary: %w", err)
	}

	return nil
}

// parseDuration parses a duration string supporting standard Go formats plus:
//   - "d" for days (e.g., "30d" = 720 hours)
//   - "w" for weeks (e.g., "2w" = 336 hours)
//
// Standard formats (ns, us, ms, s, m, h) are parsed by time.ParseDuration.
func parseDuration(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err == nil {
		return d, nil
	}

	if strings.HasSuffix(s, "d") {
		days := strings.TrimSuffix(s, "d")
		var value float64
		n, parseErr := fmt.Sscanf(days, "%f", &value)
		if parseErr != nil || n != 1 {
			return 0, fmt.Errorf("invalid duration format: %s", s)
		}
		return time.Duration(value*24) * time.Hour, nil
	}

	if strings.HasSuffix(s, "w") {
		weeks := strings.TrimSuffix(s, "w")
		var value float64
		n, parseErr := fmt.Sscanf(weeks, "%f", &value)
		if parseErr != nil || n != 1 {
			return 0, fmt.Errorf("invalid duration format: %s", s)
		}
		return time.Duration(value*24*7) * time.Hour, nil
	}

	return 0, fmt.Errorf("invalid duration format: %s", s)
}
