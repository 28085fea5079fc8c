package docsgen

import (
	"log/slog"
	"path/filepath"

	"aihub-apidocs/internal/docsgen/markdown"
	"aihub-apidocs/internal/docsgen/openapi"
)

// Options configures one generation run. The zero value generates every
// compiled-in subsystem through the provider registry into the default
// output directories.
type Options struct {
	Subsystems  []Subsystem  // nil means the compiled-in list
	Resolver    Resolver     // nil means a SafeResolver over the registry
	OutputDir   string       // per-subsystem artifacts, default DefaultOutputDir
	CombinedDir string       // combined artifacts, default DefaultCombinedDir
	MarkdownDir string       // markdown reference rendered from the combined document, empty disables
	Logger      *slog.Logger // nil means slog.Default
}

// Summary reports the outcome of one run.
type Summary struct {
	Succeeded int
	Total     int
	Combined  bool
	Markdown  bool
}

// Run executes one generation pass: per-subsystem documents in list order,
// then one combined document assembled from the subsystems whose document
// pair was written. Resolution, assembly, and write failures are logged and
// skip that subsystem; only a malformed subsystem list is fatal. Partial
// success is a normal terminal state.
func Run(opts Options) (Summary, error) {
	specs := opts.Subsystems
	if specs == nil {
		specs = Subsystems()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	resolver := opts.Resolver
	if resolver == nil {
		resolver = NewSafeResolver(nil, logger)
	}
	outputDir := opts.OutputDir
	if outputDir == "" {
		outputDir = DefaultOutputDir
	}
	combinedDir := opts.CombinedDir
	if combinedDir == "" {
		combinedDir = DefaultCombinedDir
	}

	if err := validateSubsystems(specs); err != nil {
		return Summary{Total: len(specs)}, err
	}

	logger.Info("generating subsystem documents", "count", len(specs), "dir", outputDir)

	resolved := make([]Entry, 0, len(specs))
	for _, spec := range specs {
		logger.Info("generating", "subsystem", spec.Name)
		routes, err := resolver.Resolve(spec)
		if err != nil {
			logger.Warn("skipping subsystem", "subsystem", spec.Name, "error", err)
			continue
		}
		doc, err := Assemble(
			[]Entry{{Spec: spec, Routes: routes}},
			subsystemTitle(spec.Name), subsystemDescription(spec.Name), SpecVersion,
		)
		if err != nil {
			logger.Warn("skipping subsystem", "subsystem", spec.Name, "error", err)
			continue
		}
		if err := openapi.Write(doc, outputDir, spec.Name); err != nil {
			logger.Warn("skipping subsystem", "subsystem", spec.Name, "error", err)
			continue
		}
		resolved = append(resolved, Entry{Spec: spec, Routes: routes})
	}

	sum := Summary{Succeeded: len(resolved), Total: len(specs)}
	if len(resolved) == 0 {
		logger.Warn("no subsystems resolved, skipping combined document")
		return sum, nil
	}

	logger.Info("generating combined document", "subsystems", len(resolved), "dir", combinedDir)
	doc, err := Assemble(resolved, combinedTitle, combinedDescription, SpecVersion)
	if err != nil {
		logger.Error("combined document failed", "error", err)
		return sum, nil
	}
	if err := openapi.Write(doc, combinedDir, CombinedStem); err != nil {
		logger.Error("combined document failed", "error", err)
		return sum, nil
	}
	sum.Combined = true

	if opts.MarkdownDir != "" {
		logger.Info("rendering markdown reference", "dir", opts.MarkdownDir)
		source := filepath.Join(combinedDir, CombinedStem+".json")
		if err := markdown.Generate(source, opts.MarkdownDir); err != nil {
			logger.Error("markdown reference failed", "error", err)
			return sum, nil
		}
		sum.Markdown = true
	}
	return sum, nil
}
