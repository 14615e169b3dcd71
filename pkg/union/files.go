package union

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sheetsmith/sheetsmith/pkg/errors"
	"github.com/sheetsmith/sheetsmith/pkg/logging"
	"github.com/sheetsmith/sheetsmith/pkg/tableio"
	"github.com/sheetsmith/sheetsmith/pkg/tables"
)

// Files unions CSV files into a single output CSV. Without a chunk size
// every input is loaded fully; with WithChunkSize each input is streamed
// and appended to the output incrementally.
//
// Deduplication under chunked mode is not memory-bounded: duplicates may
// span chunk and file boundaries, so after the append pass completes the
// entire output is reloaded, deduplicated, and atomically rewritten. The
// chunked mode bounds peak memory during concatenation only.
func Files(paths []string, output string, opts ...Option) error {
	u := newUnion(opts)

	if len(paths) == 0 {
		return errors.NewEmptyInputError("union")
	}

	headers, err := readHeaders(paths)
	if err != nil {
		return err
	}
	if u.strictColumns {
		reference := headers[0]
		for i, cols := range headers[1:] {
			if !equalColumns(reference, cols) {
				return errors.NewColumnMismatchError("", paths[0], reference, paths[i+1], cols)
			}
		}
	}

	logging.Info().Int("files", len(paths)).Str("output", output).Msg("Unioning CSV files")

	if u.chunkSize <= 0 {
		return u.filesInMemory(paths, output, opts)
	}
	return u.filesChunked(paths, output, headers)
}

// filesInMemory loads every input fully and delegates to Tables.
func (u *union) filesInMemory(paths []string, output string, opts []Option) error {
	tbls := make([]*tables.Table, 0, len(paths))
	for _, p := range paths {
		t, err := tableio.LoadCSV(p)
		if err != nil {
			return err
		}
		if u.progress {
			logging.Info().Str("file", p).Int("rows", t.NumRows()).Msg("Read CSV file")
		}
		tbls = append(tbls, t)
	}

	result, err := Tables(tbls, opts...)
	if err != nil {
		return err
	}
	if err := tableio.SaveCSV(result, output, tableio.Overwrite); err != nil {
		return err
	}
	logging.Info().Int("rows", result.NumRows()).Str("output", output).Msg("Wrote union result")
	return nil
}

// filesChunked streams each input in chunks, appending to the output.
// Chunks are reindexed to the union of all input headers so later files
// with extra columns still land in the right cells.
func (u *union) filesChunked(paths []string, output string, headers [][]string) error {
	logging.Info().Int("chunk_size", u.chunkSize).Msg("Using chunked processing")

	// Headers were validated by OpenCSV during readHeaders.
	headerTables := make([]*tables.Table, 0, len(headers))
	for _, h := range headers {
		headerTables = append(headerTables, tables.MustNew(h...))
	}
	cols := Columns(headerTables)

	first := true
	totalRows := 0
	for i, p := range paths {
		logging.Info().Str("file", p).Int("index", i+1).Int("total", len(paths)).Msg("Processing file")

		r, err := tableio.OpenCSV(p)
		if err != nil {
			return err
		}
		for {
			chunk, readErr := r.ReadChunk(u.chunkSize)
			if chunk != nil && chunk.NumRows() > 0 {
				mode := tableio.Append
				if first {
					mode = tableio.Overwrite
					first = false
				}
				aligned := chunk.Reindex(cols)
				if err := tableio.SaveCSV(aligned, output, mode); err != nil {
					_ = r.Close()
					return err
				}
				totalRows += aligned.NumRows()
				if u.progress {
					logging.Info().Str("file", filepath.Base(p)).Int("rows", aligned.NumRows()).Msg("Processed chunk")
				}
			}
			if readErr == io.EOF {
				break
			}
			if readErr != nil {
				_ = r.Close()
				return readErr
			}
		}
		if err := r.Close(); err != nil {
			return errors.WrapIO("close", p, err)
		}
	}

	// Header-only inputs emit no chunks. Still write the reconciled
	// header so the output matches in-memory mode.
	if first {
		if err := tableio.SaveCSV(tables.MustNew(cols...), output, tableio.Overwrite); err != nil {
			return err
		}
	}
	logging.Info().Int("rows", totalRows).Msg("Wrote rows before deduplication")

	if !u.dedupe {
		return nil
	}

	// Duplicates can span chunk and file boundaries, so the whole output
	// has to be reloaded. This breaks the chunked-mode memory bound for
	// the deduplication pass.
	logging.Warn().Str("output", output).Msg("Deduplicating requires reloading the full output")

	full, err := tableio.LoadCSV(output)
	if err != nil {
		return err
	}
	deduped, removed, err := Deduplicate(full, u.dedupeColumns)
	if err != nil {
		return err
	}
	logging.Info().Int("removed", removed).Msg("Removed duplicate rows")

	// Write to a temporary file and rename so an interrupted rewrite
	// leaves the pre-dedup output intact rather than a truncated file.
	tmp := output + ".dedup.tmp"
	if err := tableio.SaveCSV(deduped, tmp, tableio.Overwrite); err != nil {
		return err
	}
	if err := os.Rename(tmp, output); err != nil {
		return errors.WrapIO("rename", output, err)
	}
	return nil
}

// readHeaders reads just the header row of each file, verifying every
// input exists before any output is produced.
func readHeaders(paths []string) ([][]string, error) {
	headers := make([][]string, 0, len(paths))
	for _, p := range paths {
		r, err := tableio.OpenCSV(p)
		if err != nil {
			return nil, err
		}
		headers = append(headers, r.Columns())
		if err := r.Close(); err != nil {
			return nil, errors.WrapIO("close", p, err)
		}
	}
	return headers, nil
}
