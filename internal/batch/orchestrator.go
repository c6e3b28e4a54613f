package batch

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/storesmith/listing-tools/internal/banner"
	"github.com/storesmith/listing-tools/internal/catalog"
	"github.com/storesmith/listing-tools/internal/config"
	"github.com/storesmith/listing-tools/internal/imagegen"
	"github.com/storesmith/listing-tools/internal/logging"
	"github.com/storesmith/listing-tools/internal/manifest"
	"github.com/storesmith/listing-tools/internal/notification"
	"github.com/storesmith/listing-tools/internal/schedule"
)

// ContentGenerator produces the four text fields of a listing.
type ContentGenerator interface {
	GenerateTitle(ctx context.Context, theme string) (string, error)
	GenerateDescription(ctx context.Context, theme, title string) (string, error)
	GenerateImagePrompt(ctx context.Context, theme string) (string, error)
	GenerateTags(ctx context.Context, theme string) (string, error)
}

// ImageGenerator produces one decoded image for a prompt.
type ImageGenerator interface {
	Generate(ctx context.Context, prompt string) (image.Image, error)
}

// Orchestrator drives a generation batch end to end: directory setup, input
// loading, the per-row pipeline, and result persistence.
//
// Text generation errors abort the batch. Image generation errors skip the
// row. Saving a generated image is an I/O operation and aborts on failure.
type Orchestrator struct {
	Config  *config.Config
	Content ContentGenerator
	Images  ImageGenerator

	session   string
	startTime time.Time
	inputPath string
	rows      []catalog.Row
	results   []catalog.ResultRecord
	skipped   []manifest.SkippedRow
}

// NewOrchestrator creates an orchestrator for cfg with the given backends.
func NewOrchestrator(cfg *config.Config, content ContentGenerator, images ImageGenerator) *Orchestrator {
	return &Orchestrator{Config: cfg, Content: content, Images: images}
}

// Run executes the batch. On failure the failure banner and notification
// fire before the error propagates to the caller.
func (o *Orchestrator) Run(ctx context.Context) error {
	o.startTime = time.Now()
	o.session = fmt.Sprintf("listing-%d", o.startTime.Unix())

	err := o.run(ctx)
	if err != nil {
		banner.PrintFailureBanner(err.Error())
		o.notify(notification.EventFailed, err.Error())
	}
	return err
}

func (o *Orchestrator) run(ctx context.Context) error {
	if err := o.phaseSetup(); err != nil {
		return err
	}
	if err := o.phaseDiscoverInput(); err != nil {
		return err
	}

	banner.PrintStartupBanner(o.session, o.Config.TextModel, o.Config.ImageModel, o.inputPath)

	if err := o.phaseReadInput(); err != nil {
		return err
	}
	if err := o.phaseScheduleWait(ctx); err != nil {
		return err
	}
	if err := o.phaseProcessRows(ctx); err != nil {
		return err
	}
	return o.phasePersist()
}

func (o *Orchestrator) phaseSetup() error {
	logging.Phase("Preparing directories")

	for _, dir := range []string{o.Config.InputDir, o.Config.OutputDir, o.imagesDir()} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}

func (o *Orchestrator) phaseDiscoverInput() error {
	path, err := catalog.DiscoverInputFile(o.Config.InputFile, o.Config.InputDir)
	if err != nil {
		return err
	}
	o.inputPath = path
	return nil
}

func (o *Orchestrator) phaseReadInput() error {
	logging.Phase("Loading input")

	rows, err := catalog.ReadInput(o.inputPath)
	if err != nil {
		return err
	}
	o.rows = rows

	logging.Info("Loaded %d rows from %s", len(rows), o.inputPath)
	return nil
}

func (o *Orchestrator) phaseScheduleWait(ctx context.Context) error {
	if o.Config.StartAt == "" {
		return nil
	}

	logging.Phase("Waiting for scheduled start")

	target, err := schedule.ParseStartTime(o.Config.StartAt)
	if err != nil {
		return err
	}
	if err := schedule.WaitUntil(ctx, target); err != nil {
		return fmt.Errorf("schedule wait: %w", err)
	}

	logging.Success("Start time reached")
	return nil
}

func (o *Orchestrator) phaseProcessRows(ctx context.Context) error {
	logging.Phase("Generating listings")

	for _, row := range o.rows {
		logging.Info("=== Row %d/%d: %s ===", row.Index+1, len(o.rows), row.Theme)
		if err := o.processRow(ctx, row); err != nil {
			return err
		}
	}
	return nil
}

func (o *Orchestrator) processRow(ctx context.Context, row catalog.Row) error {
	title, err := o.Content.GenerateTitle(ctx, row.Theme)
	if err != nil {
		return fmt.Errorf("row %d title generation: %w", row.Index, err)
	}

	description, err := o.Content.GenerateDescription(ctx, row.Theme, title)
	if err != nil {
		return fmt.Errorf("row %d description generation: %w", row.Index, err)
	}

	imagePrompt, err := o.Content.GenerateImagePrompt(ctx, row.Theme)
	if err != nil {
		return fmt.Errorf("row %d image prompt generation: %w", row.Index, err)
	}

	tags, err := o.Content.GenerateTags(ctx, row.Theme)
	if err != nil {
		return fmt.Errorf("row %d tag generation: %w", row.Index, err)
	}

	logging.Info("Generating image...")
	img, err := o.Images.Generate(ctx, imagePrompt)
	if err != nil {
		logging.Warn("Row %d image generation failed, skipping: %v", row.Index, err)
		o.skipped = append(o.skipped, manifest.SkippedRow{Index: row.Index, Theme: row.Theme})
		return nil
	}

	fileName := fmt.Sprintf("image_%d.png", row.Index)
	savePath := filepath.Join(o.imagesDir(), fileName)
	if err := imagegen.SavePNG(img, savePath); err != nil {
		return fmt.Errorf("row %d image save: %w", row.Index, err)
	}

	o.results = append(o.results, catalog.ResultRecord{
		FileName:    fileName,
		LocalPath:   savePath,
		Title:       title,
		Description: description,
		Tags:        tags,
	})
	logging.Success("Row %d complete: %s", row.Index, fileName)
	return nil
}

func (o *Orchestrator) phasePersist() error {
	logging.Phase("Writing results")

	outPath := o.outputFile()
	if err := catalog.WriteResults(outPath, o.results); err != nil {
		return err
	}

	duration := int(time.Since(o.startTime).Seconds())
	m := &manifest.RunManifest{
		SchemaVersion: manifest.SchemaVersion,
		SessionID:     o.session,
		StartedAt:     manifest.Timestamp(o.startTime),
		FinishedAt:    manifest.Timestamp(time.Now()),
		TotalRows:     len(o.rows),
		Persisted:     len(o.results),
		Skipped:       len(o.skipped),
		SkippedRows:   o.skipped,
		OutputFile:    outPath,
	}
	// The manifest is informational reporting, not a deliverable.
	if err := manifest.Write(m, o.Config.OutputDir); err != nil {
		logging.Warn("Failed to write run manifest: %v", err)
	}

	banner.PrintCompletionBanner(len(o.results), len(o.skipped), duration)
	o.notify(notification.EventCompleted, "")
	logging.Success("Results saved to %s", outPath)
	return nil
}

func (o *Orchestrator) imagesDir() string {
	return filepath.Join(o.Config.OutputDir, o.Config.ImagesDir)
}

func (o *Orchestrator) outputFile() string {
	return filepath.Join(o.Config.OutputDir, o.Config.OutputFile)
}

// notify sends a fire-and-forget notification for the given event.
func (o *Orchestrator) notify(event string, detail string) {
	msg := notification.FormatEvent(event, o.session, len(o.results), len(o.skipped), detail)
	notification.Send(o.Config.NotifyWebhook, notification.Payload{
		Event:     event,
		SessionID: o.session,
		Processed: len(o.results),
		Skipped:   len(o.skipped),
		Message:   msg,
	})
}
