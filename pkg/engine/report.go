package engine

import (
	"github.com/arthur-debert/themer/pkg/logging"
	"github.com/arthur-debert/themer/pkg/types"
)

// Status is the outcome of one block
type Status string

const (
	// StatusWritten means the block was replaced and the file rewritten
	StatusWritten Status = "written"

	// StatusUnchanged means the rendered block already matched the file
	StatusUnchanged Status = "unchanged"

	// StatusWouldUpdate is reported instead of StatusWritten on dry runs
	StatusWouldUpdate Status = "would update"

	// StatusOK is reported by Check for a block that can be updated
	StatusOK Status = "ok"

	// StatusFailed means the block was skipped because of Err
	StatusFailed Status = "failed"

	// StatusSkipped marks blocks never reached because the run was aborted
	StatusSkipped Status = "skipped"
)

// BlockResult describes what happened to one block
type BlockResult struct {
	// File is the name of the file entry in the configuration
	File string

	// Path is the target path after home expansion
	Path string

	// Tag is empty for single-block files
	Tag string

	Status   Status
	Err      error
	Warnings []error
}

// Failed reports whether the block could not be processed
func (r BlockResult) Failed() bool {
	return r.Status == StatusFailed
}

// Report is the outcome of a Run
type Report struct {
	Theme   string
	DryRun  bool
	Results []BlockResult
}

// Failures returns the results of blocks that failed
func (r *Report) Failures() []BlockResult {
	var failed []BlockResult
	for _, res := range r.Results {
		if res.Failed() {
			failed = append(failed, res)
		}
	}
	return failed
}

// Count returns how many blocks ended with status
func (r *Report) Count(status Status) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == status {
			n++
		}
	}
	return n
}

// WarningCount returns the number of warnings across all blocks
func (r *Report) WarningCount() int {
	n := 0
	for _, res := range r.Results {
		n += len(res.Warnings)
	}
	return n
}

func (r *Report) summary() logging.RunSummary {
	return logging.RunSummary{
		Written:     r.Count(StatusWritten),
		WouldUpdate: r.Count(StatusWouldUpdate),
		Unchanged:   r.Count(StatusUnchanged),
		Failed:      r.Count(StatusFailed),
		Skipped:     r.Count(StatusSkipped),
	}
}

// unit is a block bound to its file entry and resolved path
type unit struct {
	file  string
	path  string
	block types.BlockConfig
}

func (u unit) result(status Status) BlockResult {
	return BlockResult{
		File:   u.file,
		Path:   u.path,
		Tag:    u.block.Tag,
		Status: status,
	}
}
