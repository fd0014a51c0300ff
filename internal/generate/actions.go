// Package generate implements the end-to-end report pipeline behind the
// generate command: config, discovery, conversion, RTL processing,
// assembly, run recording.
package generate

import (
	"context"
	"html/template"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"nbtabs/models"
	"nbtabs/pkg/convert"
	"nbtabs/pkg/db"
	"nbtabs/pkg/discovery"
	"nbtabs/pkg/inspect"
	"nbtabs/pkg/report"
	"nbtabs/pkg/rtl"
	"nbtabs/pkg/storage"
)

type generator struct {
	logger    *slog.Logger
	store     *storage.Storage
	converter *convert.Converter
	inspector *inspect.Inspector
	processor *rtl.Processor
	run       models.RunContext
	execute   bool
}

func Action(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(2)
	}
	if c.Bool("execute") {
		cfg.Execute = true
	}

	set := cfg.Notebooks
	if set.IsEmpty() {
		dir := cfg.NotebookDir
		if dir == "" {
			dir = "."
		}
		set, err = discovery.Discover(dir)
		if err != nil {
			logger.Error("notebook discovery failed", "dir", dir, "error", err)
			os.Exit(2)
		}
	}
	if set.IsEmpty() {
		logger.Info("no notebooks found, nothing to report", "notebook_dir", cfg.NotebookDir)
		return nil
	}

	run := models.NewRunContext(cfg.OutputFolder, time.Now())
	store := &storage.Storage{}
	if err := store.EnsureDir(run.OutputDir); err != nil {
		logger.Error("failed to create output folder", "error", err)
		os.Exit(2)
	}

	g := &generator{
		logger:    logger,
		store:     store,
		converter: convert.NewConverter(logger),
		inspector: inspect.NewInspector(),
		run:       run,
		execute:   cfg.Execute,
	}
	if cfg.RTL {
		g.processor = rtl.NewProcessor()
	}
	if cfg.Execute {
		logger.Info("executing and converting notebooks to HTML")
	} else {
		logger.Info("converting notebooks to HTML")
	}

	page, layout, results := g.buildReport(c.Context, cfg, set)

	success, failed := 0, 0
	for _, r := range results {
		if r.Status == "success" {
			success++
		} else {
			failed++
		}
	}

	reportPath := ""
	if page != "" {
		reportPath = report.Path(cfg.ReportTitle, run)
		if err := store.SaveFile(reportPath, []byte(page)); err != nil {
			logger.Error("failed to write report", "path", reportPath, "error", err)
			os.Exit(2)
		}
		logger.Info("report saved", "path", reportPath, "notebooks", success, "failed", failed)
	}

	recordRun(logger, db.Run{
		Title:         cfg.ReportTitle,
		Layout:        layout,
		NotebookCount: len(results),
		SuccessCount:  success,
		FailedCount:   failed,
		ReportPath:    reportPath,
	}, results)

	if failed == len(results) {
		os.Exit(2)
	}
	if failed > 0 {
		os.Exit(1)
	}
	return nil
}

// buildReport converts every notebook in the set and assembles the page
// for the set's layout. Notebooks that fail conversion are skipped; the
// page is empty when nothing converted.
func (g *generator) buildReport(ctx context.Context, cfg *models.Config, set models.NotebookSet) (page, layout string, results []db.NotebookResult) {
	assembler := report.NewAssembler()

	switch set.Kind {
	case models.SetSingle:
		layout = "single"
		frag, result := g.convertOne(ctx, set.Single, cfg.TabsNames.Single)
		results = append(results, result)
		if result.Status != "success" {
			return "", layout, results
		}
		out, err := assembler.RenderSingle(cfg.ReportTitle, g.run, frag)
		if err != nil {
			g.fatal("failed to assemble report", err)
		}
		return out, layout, results

	case models.SetFlat:
		layout = "flat"
		var frags []report.Fragment
		for i, notebook := range set.Flat {
			override := ""
			if i < len(cfg.TabsNames.Flat) {
				override = cfg.TabsNames.Flat[i]
			}
			frag, result := g.convertOne(ctx, notebook, override)
			results = append(results, result)
			if result.Status == "success" {
				frags = append(frags, frag)
			}
		}
		if len(frags) == 0 {
			return "", layout, results
		}
		out, err := assembler.RenderFlat(cfg.ReportTitle, g.run, frags)
		if err != nil {
			g.fatal("failed to assemble report", err)
		}
		return out, layout, results

	case models.SetNested:
		layout = "nested"
		var topics []report.TopicGroup
		for _, topic := range set.Nested {
			g.logger.Info("processing topic", "topic", topic.Label)
			group := report.TopicGroup{Name: topic.Label}
			if name, ok := cfg.TopicsNames[topic.Label]; ok {
				group.Name = name
			}
			overrides := cfg.TabsNames.Nested[topic.Label]
			for j, notebook := range topic.Notebooks {
				override := ""
				if j < len(overrides) {
					override = overrides[j]
				}
				frag, result := g.convertOne(ctx, notebook, override)
				results = append(results, result)
				if result.Status == "success" {
					group.Fragments = append(group.Fragments, frag)
				}
			}
			if len(group.Fragments) > 0 {
				topics = append(topics, group)
			}
		}
		if len(topics) == 0 {
			return "", layout, results
		}
		out, err := assembler.RenderNested(cfg.ReportTitle, g.run, topics)
		if err != nil {
			g.fatal("failed to assemble report", err)
		}
		return out, layout, results
	}

	return "", "", nil
}

// convertOne runs the conversion, RTL processing, and inspection for one
// notebook. Conversion failures are logged and reported back as a failed
// result; the batch continues.
func (g *generator) convertOne(ctx context.Context, notebook, nameOverride string) (report.Fragment, db.NotebookResult) {
	result := db.NotebookResult{NotebookPath: notebook, Status: "failed"}

	outPath, err := g.converter.Convert(ctx, notebook, g.run, g.execute)
	if err != nil {
		g.logger.Error("skipping notebook", "notebook", notebook, "error", err)
		result.ErrorMessage = err.Error()
		return report.Fragment{}, result
	}

	if !g.store.HasFile(outPath) {
		g.logger.Error("skipping notebook, nbconvert produced no output", "notebook", notebook, "path", outPath)
		result.ErrorMessage = "converted file missing: " + outPath
		return report.Fragment{}, result
	}
	data, err := g.store.ReadFile(outPath)
	if err != nil {
		g.logger.Error("skipping notebook, converted file unreadable", "notebook", notebook, "error", err)
		result.ErrorMessage = err.Error()
		return report.Fragment{}, result
	}

	html := string(data)
	if g.processor != nil {
		html = g.processor.Process(html)
		// Keep the standalone fragment file RTL-correct too.
		if err := g.store.SaveFile(outPath, []byte(html)); err != nil {
			g.logger.Warn("failed to rewrite processed fragment", "path", outPath, "error", err)
		}
	}

	meta := g.inspector.Inspect(html, discovery.NotebookLabel(notebook))
	name := nameOverride
	if name == "" {
		name = meta.Title
	}

	result.Status = "success"
	result.FragmentPath = outPath
	result.WordCount = meta.WordCount
	result.Language = meta.Language
	return report.Fragment{Name: name, Content: template.HTML(html)}, result
}

func (g *generator) fatal(msg string, err error) {
	g.logger.Error(msg, "error", err)
	os.Exit(2)
}

// recordRun stores the run in the history database. Recording failures are
// warnings, never fatal.
func recordRun(logger *slog.Logger, run db.Run, results []db.NotebookResult) {
	database, err := db.Open()
	if err != nil {
		logger.Warn("failed to open history database", "error", err)
		return
	}
	defer database.Close()

	if _, err := database.InsertRun(run, results); err != nil {
		logger.Warn("failed to record run", "error", err)
	}
}
