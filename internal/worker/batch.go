package worker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mvoren/clauselens/internal/model"
)

// Analyzer defines the interface for analyzing a single document
type Analyzer interface {
	AnalyzeFile(ctx context.Context, path string, lang model.Language) (*model.AnalysisResult, error)
}

// AnalyzeJob represents one document analysis job
type AnalyzeJob struct {
	Path     string
	Language model.Language
	Analyzer Analyzer
}

// Execute executes the analysis job
func (j *AnalyzeJob) Execute(ctx context.Context) Result {
	result, err := j.Analyzer.AnalyzeFile(ctx, j.Path, j.Language)
	return &AnalyzeResult{
		Path:   j.Path,
		Result: result,
		Error:  err,
	}
}

// AnalyzeResult represents the result of an analysis job
type AnalyzeResult struct {
	Path   string
	Result *model.AnalysisResult
	Error  error
}

// GetError returns the error from the analysis result
func (r *AnalyzeResult) GetError() error {
	return r.Error
}

// BatchProcessor analyzes multiple documents concurrently
type BatchProcessor struct {
	analyzer    Analyzer
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(analyzer Analyzer, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		analyzer:    analyzer,
		concurrency: concurrency,
	}
}

// ProcessFiles analyzes the given files concurrently
func (b *BatchProcessor) ProcessFiles(ctx context.Context, paths []string, lang model.Language) []*AnalyzeResult {
	if len(paths) == 0 {
		return []*AnalyzeResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, path := range paths {
		pool.Submit(&AnalyzeJob{
			Path:     path,
			Language: lang,
			Analyzer: b.analyzer,
		})
	}

	results := pool.Wait()

	analyzeResults := make([]*AnalyzeResult, len(results))
	for i, result := range results {
		analyzeResults[i] = result.(*AnalyzeResult)
	}

	// Pool results arrive in completion order; report them in path order
	sort.Slice(analyzeResults, func(i, j int) bool {
		return analyzeResults[i].Path < analyzeResults[j].Path
	})

	return analyzeResults
}

// ProcessDir analyzes every supported document in a directory
func (b *BatchProcessor) ProcessDir(ctx context.Context, dir string, lang model.Language) ([]*AnalyzeResult, error) {
	paths, err := ListDocuments(dir)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	return b.ProcessFiles(ctx, paths, lang), nil
}

// ListDocuments returns the supported document files in a directory,
// sorted by name
func ListDocuments(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".pdf", ".html", ".htm", ".txt":
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}

	sort.Strings(paths)
	return paths, nil
}
