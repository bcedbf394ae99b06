// Package exchange implements the Exchange component (C5): sharded
// export of words/patterns, line-oriented import with a failure
// callback, a progress-bar adapter, and humanized stats formatting
// (spec §4.5, §6).
package exchange

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gnames/gnfmt"
	"github.com/gnames/gnlib"

	"github.com/varnam/knownwords/pkg/config"
	"github.com/varnam/knownwords/pkg/store"
)

// WordsExportMarker is the fixed first line of an export_full words
// file (spec §6).
const WordsExportMarker = "words-export-metadata-marker"

// PatternsExportMarker is the fixed first line of an export_full
// patterns file (spec §6).
const PatternsExportMarker = "patterns-export-metadata-marker"

// ProgressFunc reports export/import progress: total items, items
// processed so far, and a human-readable label for the current item
// (e.g. the shard file name). It is the Go shape of spec §4.5's
// progress_cb.
type ProgressFunc func(total, processed int, item string)

// FailureFunc receives one raw, unparseable import line.
type FailureFunc func(rawLine string)

// Exchange implements C5 over a store.Store.
type Exchange struct {
	store store.Store
	log   *slog.Logger
}

// New creates an Exchange over s.
func New(s store.Store, log *slog.Logger) *Exchange {
	if log == nil {
		log = slog.Default()
	}
	return &Exchange{store: s, log: log}
}

// ExportLearned implements export_learned: streams {word, confidence}
// for words reachable by at least one learned=true pattern, ordered by
// confidence descending, sharded across outDir/0.txt, 1.txt, … with
// wordsPerFile lines each. Line format: "<word> <confidence>\n". No
// header.
func (e *Exchange) ExportLearned(ctx context.Context, wordsPerFile int, outDir string, progress ProgressFunc) error {
	if wordsPerFile <= 0 {
		return InvalidWordsPerFileError(wordsPerFile)
	}
	start := time.Now()

	words, err := e.store.LearnedWordsForExport(ctx)
	if err != nil {
		return err
	}

	lines := make([]string, len(words))
	for i, w := range words {
		lines[i] = fmt.Sprintf("%s %d", w.Text, w.Confidence)
	}

	if err := writeSharded(outDir, "", "%d.txt", wordsPerFile, lines, progress); err != nil {
		return err
	}
	e.log.Info("export_learned complete",
		"words", len(words),
		"duration", gnfmt.TimeString(time.Since(start).Seconds()),
	)
	return nil
}

// ExportFull implements export_full's two passes: a words pass to
// outDir/0.words.txt, … headed by WordsExportMarker, and a patterns
// pass to outDir/0.patterns.txt, … headed by PatternsExportMarker.
func (e *Exchange) ExportFull(ctx context.Context, wordsPerFile int, outDir string, progress ProgressFunc) error {
	if wordsPerFile <= 0 {
		return InvalidWordsPerFileError(wordsPerFile)
	}
	start := time.Now()

	words, err := e.store.AllWords(ctx)
	if err != nil {
		return err
	}
	wordLines := make([]string, len(words))
	for i, w := range words {
		wordLines[i] = fmt.Sprintf("%d %s %d", w.ID, w.Text, w.Confidence)
	}
	if err := writeSharded(outDir, WordsExportMarker, "%d.words.txt", wordsPerFile, wordLines, progress); err != nil {
		return err
	}

	patterns, err := e.store.AllPatterns(ctx)
	if err != nil {
		return err
	}
	patternLines := make([]string, len(patterns))
	for i, p := range patterns {
		learned := 0
		if p.Learned {
			learned = 1
		}
		patternLines[i] = fmt.Sprintf("%d %s %d", p.WordID, p.Text, learned)
	}
	if err := writeSharded(outDir, PatternsExportMarker, "%d.patterns.txt", wordsPerFile, patternLines, progress); err != nil {
		return err
	}
	e.log.Info("export_full complete",
		"words", len(words),
		"patterns", len(patterns),
		"duration", gnfmt.TimeString(time.Since(start).Seconds()),
	)
	return nil
}

// writeSharded writes lines across outDir/<n><nameFmt> files, perFile
// lines each, prefixing every file with header when header is
// non-empty. At least one (possibly empty) file is always produced,
// matching the source's behavior of writing "0.txt" even for zero
// learned words.
func writeSharded(outDir, header, nameFmt string, perFile int, lines []string, progress ProgressFunc) error {
	total := len(lines)
	processed := 0

	for shard := 0; processed < total || shard == 0; shard++ {
		name := fmt.Sprintf(nameFmt, shard)
		path := filepath.Join(outDir, name)

		end := min(processed+perFile, total)
		if err := writeShardFile(path, header, lines[processed:end]); err != nil {
			return err
		}

		processed = end
		if progress != nil {
			progress(total, processed, name)
		}
		if total == 0 {
			break
		}
	}
	return nil
}

func writeShardFile(path, header string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return WriteFileError(path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if header != "" {
		if _, err := fmt.Fprintf(w, "%s\n", header); err != nil {
			return WriteFileError(path, err)
		}
	}
	for _, line := range lines {
		if _, err := fmt.Fprintf(w, "%s\n", line); err != nil {
			return WriteFileError(path, err)
		}
	}
	return w.Flush()
}

// Import detects file's type by its header marker (first line) and
// inserts every well-formed subsequent line directly. Lines with other
// than 3 whitespace-separated fields invoke onFailure and are skipped.
// An unrecognized marker returns errcode.UnknownFileTypeError.
func (e *Exchange) Import(ctx context.Context, file string, onFailure FailureFunc) error {
	start := time.Now()
	imported := 0

	f, err := os.Open(file)
	if err != nil {
		return ReadFileError(file, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	buf := make([]byte, 0, config.ImportLineBuffer)
	scanner.Buffer(buf, config.ImportLineBuffer)

	if !scanner.Scan() {
		return nil
	}
	marker := strings.TrimSpace(scanner.Text())

	var importLine func(ctx context.Context, fields []string) error
	switch marker {
	case WordsExportMarker:
		importLine = e.importWordLine
	case PatternsExportMarker:
		importLine = e.importPatternLine
	default:
		return UnknownFileTypeError(marker)
	}

	for scanner.Scan() {
		raw := scanner.Text()
		fields := strings.Fields(raw)
		if len(fields) != 3 {
			if onFailure != nil {
				onFailure(raw)
			}
			continue
		}
		if err := importLine(ctx, fields); err != nil {
			return err
		}
		imported++
	}
	if err := scanner.Err(); err != nil {
		return ReadFileError(file, err)
	}
	e.log.Info("import complete",
		"file", file,
		"marker", marker,
		"lines", imported,
		"duration", gnfmt.TimeString(time.Since(start).Seconds()),
	)
	return nil
}

// importWordLine trims and UTF-8-repairs the imported word text (I5)
// before handing it to the store, since import files may originate
// from another process's export.
func (e *Exchange) importWordLine(ctx context.Context, fields []string) error {
	id, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return nil
	}
	confidence, err := strconv.Atoi(fields[2])
	if err != nil {
		return nil
	}
	text := gnlib.FixUtf8(strings.TrimSpace(fields[1]))
	return e.store.ImportWord(ctx, id, text, confidence)
}

func (e *Exchange) importPatternLine(ctx context.Context, fields []string) error {
	wordID, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return nil
	}
	learned := fields[2] == "1"
	pattern := gnlib.FixUtf8(strings.TrimSpace(fields[1]))
	return e.store.ImportPattern(ctx, wordID, pattern, learned)
}
