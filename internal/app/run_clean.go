package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dev-tams/bucketsweep/internal/config"
	"github.com/dev-tams/bucketsweep/internal/match"
	s3store "github.com/dev-tams/bucketsweep/internal/storage/s3"
)

// previewLimit caps how many matched keys are shown before deletion.
const previewLimit = 20

const rule = "============================================================"

// Store is the storage surface the pipeline needs.
type Store interface {
	ListAllKeys(ctx context.Context, bucket, prefix string) ([]string, error)
	DeleteBatch(ctx context.Context, bucket string, keys []string) (s3store.BatchResult, error)
}

// CleanResult summarizes one run.
type CleanResult struct {
	TotalObjects int
	Matched      int
	Deleted      int
	Errored      int
	DryRun       bool
	Cancelled    bool
}

type matchedObject struct {
	key    string
	reason string
}

// Cleaner runs the scan/preview/confirm/delete pipeline. In and Out default
// to the process stdin/stdout when nil.
type Cleaner struct {
	Store Store
	In    io.Reader
	Out   io.Writer
}

// Run executes the pipeline once. Everything past configuration validation
// reports through Out and ends with a zero exit: an empty bucket, no
// matches, a dry run and a declined confirmation are all normal terminals.
func (c *Cleaner) Run(ctx context.Context, cfg *config.Config) (CleanResult, error) {
	if c.In == nil {
		c.In = os.Stdin
	}
	if c.Out == nil {
		c.Out = os.Stdout
	}

	res := CleanResult{DryRun: cfg.DryRun}

	fmt.Fprintf(c.Out, "Scanning bucket: %s\n", cfg.Bucket)
	if cfg.Prefix != "" {
		fmt.Fprintf(c.Out, "With prefix: %s\n", cfg.Prefix)
	}
	fmt.Fprintln(c.Out)

	keys, err := c.Store.ListAllKeys(ctx, cfg.Bucket, cfg.Prefix)
	if err != nil {
		// A failed listing is reported but otherwise handled like an empty
		// bucket, matching the tool's long-standing behavior.
		fmt.Fprintf(c.Out, "Error listing objects: %v\n", err)
		keys = nil
	}

	if len(keys) == 0 {
		fmt.Fprintln(c.Out, "No objects found in bucket.")
		return res, nil
	}
	res.TotalObjects = len(keys)

	fmt.Fprintf(c.Out, "Found %d total objects\n", len(keys))
	fmt.Fprintln(c.Out, "Filtering by:")
	if len(cfg.Extensions) > 0 {
		fmt.Fprintf(c.Out, "  Extensions: %s\n", strings.Join(cfg.Extensions, ", "))
	}
	if len(cfg.Patterns) > 0 {
		fmt.Fprintf(c.Out, "  Patterns: %s\n", strings.Join(cfg.Patterns, ", "))
	}
	fmt.Fprintln(c.Out)

	var matched []matchedObject
	for _, key := range keys {
		if ok, reason := match.Match(key, cfg.Extensions, cfg.Patterns); ok {
			matched = append(matched, matchedObject{key: key, reason: reason})
		}
	}

	if len(matched) == 0 {
		fmt.Fprintln(c.Out, "No matching files found.")
		return res, nil
	}
	res.Matched = len(matched)

	c.printPreview(matched)

	if cfg.DryRun {
		fmt.Fprintln(c.Out, "DRY RUN MODE - No files will be deleted")
		return res, nil
	}

	fmt.Fprintf(c.Out, "WARNING: This will permanently delete %d files!\n", len(matched))
	if !c.confirm() {
		fmt.Fprintln(c.Out, "Operation cancelled.")
		res.Cancelled = true
		return res, nil
	}

	c.deleteMatched(ctx, cfg.Bucket, matched, &res)

	fmt.Fprintf(c.Out, "\n%s\n", rule)
	fmt.Fprintln(c.Out, "Deletion complete!")
	fmt.Fprintf(c.Out, "Successfully deleted: %d files\n", res.Deleted)
	if res.Errored > 0 {
		fmt.Fprintf(c.Out, "Errors encountered: %d files\n", res.Errored)
	}
	fmt.Fprintln(c.Out, rule)

	return res, nil
}

func (c *Cleaner) printPreview(matched []matchedObject) {
	fmt.Fprintln(c.Out, rule)
	fmt.Fprintf(c.Out, "Found %d files to delete:\n", len(matched))
	fmt.Fprintf(c.Out, "%s\n\n", rule)

	shown := matched
	if len(shown) > previewLimit {
		shown = shown[:previewLimit]
	}
	for _, m := range shown {
		fmt.Fprintf(c.Out, "  %s (%s)\n", m.key, m.reason)
	}
	if rest := len(matched) - previewLimit; rest > 0 {
		fmt.Fprintf(c.Out, "\n  ... and %d more files\n", rest)
	}
	fmt.Fprintf(c.Out, "\n%s\n", rule)
}

// confirm reads one line and requires the exact literal DELETE. Anything
// else, including a closed stdin, declines.
func (c *Cleaner) confirm() bool {
	fmt.Fprint(c.Out, "Type 'DELETE' to confirm: ")

	scanner := bufio.NewScanner(c.In)
	if !scanner.Scan() {
		return false
	}
	return scanner.Text() == "DELETE"
}

func (c *Cleaner) deleteMatched(ctx context.Context, bucket string, matched []matchedObject, res *CleanResult) {
	fmt.Fprintf(c.Out, "\n%s\n", rule)
	fmt.Fprintln(c.Out, "Deleting files...")
	fmt.Fprintf(c.Out, "%s\n\n", rule)

	for start := 0; start < len(matched); start += s3store.MaxBatchSize {
		end := start + s3store.MaxBatchSize
		if end > len(matched) {
			end = len(matched)
		}

		batch := make([]string, 0, end-start)
		for _, m := range matched[start:end] {
			batch = append(batch, m.key)
		}

		out, err := c.Store.DeleteBatch(ctx, bucket, batch)
		if err != nil {
			// No retry; the whole batch counts as errored and the next
			// batch still runs.
			fmt.Fprintf(c.Out, "Error in batch deletion: %v\n", err)
			res.Errored += len(batch)
			continue
		}

		res.Deleted += len(out.Deleted)
		for _, key := range out.Deleted {
			fmt.Fprintf(c.Out, "  ✓ Deleted: %s\n", key)
		}

		res.Errored += len(out.Errors)
		for _, e := range out.Errors {
			fmt.Fprintf(c.Out, "  ✗ Error deleting %s: %s - %s\n", e.Key, e.Code, e.Message)
		}
	}
}
