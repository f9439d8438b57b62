// Package fill implements "fill" command: stories from a file, a directory
// or a zip archive are filled with words from a single dictionary.
package fill

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/ianaindex"

	"madlibs/archive"
	"madlibs/config"
	"madlibs/dictionary"
	"madlibs/state"
	"madlibs/story"
	"madlibs/text"
)

// stdoutDestination requests filled stories to be written to standard output.
const stdoutDestination = "-"

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("fill")

	dictPath := cmd.String("dict")
	if len(dictPath) == 0 {
		return errors.New("no dictionary has been specified")
	}
	if dictPath, err = filepath.Abs(dictPath); err != nil {
		return err
	}

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	src, err = filepath.Abs(src)
	if err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	switch {
	case dst == stdoutDestination:
	case len(dst) == 0:
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	default:
		if dst, err = filepath.Abs(dst); err != nil {
			return err
		}
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	env.NoDirs, env.Overwrite = cmd.Bool("nodirs"), cmd.Bool("overwrite")

	// Since zip "standard" does not define file name encoding we may need to
	// force archaic code page for old archives
	cp := cmd.String("force-zip-cp")
	if len(cp) > 0 {
		env.CodePage, err = ianaindex.IANA.Encoding(cp)
		if err != nil || env.CodePage == nil {
			log.Warn("Unknown character set specification. Ignoring...", zap.String("charset", cp), zap.Error(err))
			env.CodePage = nil
		} else {
			n, _ := ianaindex.IANA.Name(env.CodePage)
			log.Debug("Forcefully converting all non UTF-8 file names in archives", zap.String("charset", n))
		}
	}

	if env.Dict, err = loadDictionary(dictPath, &env.Cfg.Dictionary, log); err != nil {
		return err
	}
	env.DictPath = dictPath
	reportDictionary(env, log)

	env.Splitter = text.NewSplitter(log)

	log.Info("Processing starting",
		zap.String("source", src), zap.String("destination", dst), zap.String("dictionary", dictPath), zap.Int("entries", env.Dict.Len()))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, log)
}

// loadDictionary reads complete dictionary file. Dictionary may have BOM,
// otherwise it is decoded using configured charset.
func loadDictionary(path string, cfg *config.DictionaryConfig, log *zap.Logger) (*dictionary.Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read dictionary: %w", err)
	}
	if data, err = decodeText(data, cfg.Charset); err != nil {
		return nil, fmt.Errorf("unable to decode dictionary (%s): %w", path, err)
	}
	d, err := dictionary.Load(bytes.NewReader(data), cfg.Unpaired, log)
	if err != nil {
		return nil, fmt.Errorf("unable to load dictionary (%s): %w", path, err)
	}
	if d.Len() == 0 {
		log.Warn("Dictionary is empty, placeholders will be left as is", zap.String("file", path))
	}
	return d, nil
}

// reportDictionary puts dictionary and its dump into debug report, if one
// was requested.
func reportDictionary(env *state.LocalEnv, log *zap.Logger) {
	if env.Rpt == nil {
		return
	}
	if err := env.Rpt.StoreCopy("dictionary"+filepath.Ext(env.DictPath), env.DictPath); err != nil {
		log.Warn("Unable to store dictionary in the report", zap.Error(err))
	}
	env.Rpt.StoreData("dictionary-dump.txt", []byte(env.Dict.String()))
}

// process handles the core logic independently of CLI framework. It
// determines the input type (directory, archive, or single file) and processes
// accordingly.
func process(ctx context.Context, src, dst string, log *zap.Logger) error {
	env := state.EnvFromContext(ctx)

	var head, tail string
	for head = src; len(head) != 0; head, tail = filepath.Split(head) {
		if err := ctx.Err(); err != nil {
			return err
		}

		head = strings.TrimSuffix(head, string(filepath.Separator))

		fi, err := os.Stat(head)
		if err != nil {
			// does not exists - probably path in archive
			continue
		}

		if fi.Mode().IsDir() {
			if len(tail) != 0 {
				// directory cannot have tail - it would be simple file
				return fmt.Errorf("input source was not found (%s) => (%s)", head, strings.TrimPrefix(src, head))
			}
			if err := processDir(ctx, head, dst, log); err != nil {
				return fmt.Errorf("unable to process directory: %w", err)
			}
			break
		}

		if !fi.Mode().IsRegular() {
			return fmt.Errorf("unexpected path mode for (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}

		archive, err := isArchiveFile(head)
		if err != nil {
			// checking format - but cannot open target file
			return fmt.Errorf("unable to check archive type: %w", err)
		}
		if archive {
			// we need to look inside to see if path makes sense
			tail = strings.TrimPrefix(strings.TrimPrefix(src, head), string(filepath.Separator))
			if err := processArchive(ctx, head, filepath.ToSlash(tail), "", dst, log); err != nil {
				return fmt.Errorf("unable to process archive: %w", err)
			}
			break
		}

		if len(tail) != 0 {
			return fmt.Errorf("input source was not found (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}
		if head == env.DictPath {
			return fmt.Errorf("input source is the dictionary itself (%s)", head)
		}

		// files specified directly are accepted regardless of extension
		isStory, enc, err := isStoryFile(head, nil)
		if err != nil {
			return fmt.Errorf("unable to check file type: %w", err)
		}
		if !isStory {
			return fmt.Errorf("input was not recognized as text story (%s)", head)
		}
		return processFile(ctx, head, filepath.Base(head), dst, enc, log)
	}
	if len(head) == 0 {
		return fmt.Errorf("input source was not found (%s)", src)
	}
	return nil
}

func processFile(ctx context.Context, path, src, dst string, enc srcEncoding, log *zap.Logger) (err error) {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, file.Close())
	}()
	return processStory(ctx, file, enc, src, path, dst, log)
}

// processDir walks directory tree finding stories and archives and processes
// them in natural order of their paths.
func processDir(ctx context.Context, dir, dst string, log *zap.Logger) error {
	env := state.EnvFromContext(ctx)

	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if path == env.DictPath {
			log.Debug("Skipping dictionary", zap.String("file", path))
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return err
	}
	sort.Sort(natural.StringSlice(paths))

	count := 0
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}

		archive, err := isArchiveFile(path)
		if err != nil {
			// checking format - but cannot open target file
			log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			continue
		}
		if archive {
			count++
			if err := processArchive(ctx, path, "", filepath.Dir(relPath(dir, path)), dst, log); err != nil {
				log.Error("Unable to process archive", zap.String("file", path), zap.Error(err))
			}
			continue
		}

		if isFilledStory(path, env.Cfg.Story.OutputExtension, env.Cfg.Story.Extensions) {
			log.Debug("Skipping file, result of earlier run", zap.String("file", path))
			continue
		}

		isStory, enc, err := isStoryFile(path, env.Cfg.Story.Extensions)
		if err != nil {
			log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			continue
		}
		if !isStory {
			log.Debug("Skipping file, not recognized as story or archive", zap.String("file", path))
			continue
		}

		count++
		if err := processFile(ctx, path, relPath(dir, path), dst, enc, log); err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
		}
	}
	if count == 0 {
		log.Debug("Nothing to process", zap.String("dir", dir))
	}
	return nil
}

func relPath(dir, path string) string {
	return strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator))
}

// processArchive walks all files inside archive, finds stories under
// "pathIn" and processes them.
func processArchive(ctx context.Context, path, pathIn, pathOut, dst string, log *zap.Logger) (err error) {
	env := state.EnvFromContext(ctx)

	count := 0
	defer func() {
		if err == nil && count == 0 {
			log.Debug("Nothing to process", zap.String("archive", path))
		}
	}()

	return archive.Walk(ctx, path, pathIn, func(archive string, f *zip.File) error {
		// single file requested by full path is accepted regardless of extension
		extensions := env.Cfg.Story.Extensions
		if pathIn != "" && f.FileHeader.Name == pathIn {
			extensions = nil
		} else if isFilledStory(f.FileHeader.Name, env.Cfg.Story.OutputExtension, extensions) {
			log.Debug("Skipping file, result of earlier run", zap.String("archive", archive), zap.String("file", f.FileHeader.Name))
			return nil
		}

		isStory, enc, err := isStoryInArchive(f, extensions)
		if err != nil {
			log.Warn("Skipping file in archive",
				zap.String("archive", archive), zap.String("path", f.FileHeader.Name), zap.Error(err))
			return nil
		}
		if !isStory {
			log.Debug("Skipping file, not recognized as story", zap.String("archive", archive), zap.String("file", f.FileHeader.Name))
			return nil
		}

		count++

		r, err := f.Open()
		if err != nil {
			log.Error("Unable to process file in archive",
				zap.String("archive", archive), zap.String("file", f.FileHeader.Name), zap.Error(err))
			return nil
		}
		defer r.Close()

		pathInArchive := f.FileHeader.Name
		if cp := env.CodePage; cp != nil && f.FileHeader.NonUTF8 {
			// forcing zip file name encoding
			if n, err := cp.NewDecoder().String(pathInArchive); err == nil {
				pathInArchive = n
			} else {
				n, _ = ianaindex.IANA.Name(cp)
				log.Warn("Unable to convert archive name from specified encoding",
					zap.String("charset", n), zap.String("path", pathInArchive), zap.Error(err))
			}
		}
		if err := processStory(ctx, r, enc, filepath.Join(pathOut, filepath.FromSlash(pathInArchive)), "", dst, log); err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			log.Error("Unable to process file in archive",
				zap.String("archive", archive), zap.String("file", f.FileHeader.Name), zap.Error(err))
		}
		return nil
	})
}

// processStory fills single story. "src" is part of the source path (always
// including file name) relative to the original path. When actual file was
// specified it will be just base file name without a path. When looking inside
// archive or directory it will be relative path inside archive or directory
// (including base file name). "origin" is the story file on disk, empty for
// stories from archives. "dst" is the destination directory or "-".
func processStory(ctx context.Context, r io.Reader, enc srcEncoding, src, origin, dst string, log *zap.Logger) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)

	runID, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("unable to generate run id: %w", err)
	}

	var outputName string

	log.Info("Filling starting", zap.String("from", src), zap.Stringer("run", runID))
	defer func(start time.Time) {
		log.Debug("Filling ended", zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.Stringer("run", runID))
	}(time.Now())

	in, err := selectReader(r, enc, env.Cfg.Story.Charset)
	if err != nil {
		return err
	}

	queue, snapshot := env.Dict.Start()
	lines, sum, err := story.Assemble(in, queue, snapshot, env.Cfg.Story.Spacing)
	if err != nil {
		return fmt.Errorf("unable to fill story (%s): %w", src, err)
	}

	var out strings.Builder
	if _, err := story.WriteLines(&out, lines); err != nil {
		return err
	}
	sum.Sentences = env.Splitter.Count(out.String())

	if dst == stdoutDestination {
		outputName = stdoutDestination
		if err := writeStdout(env, out.String()); err != nil {
			return fmt.Errorf("unable to write story: %w", err)
		}
		env.Rpt.StoreData(fmt.Sprintf("result-%s.txt", runID), []byte(out.String()))
	} else {
		outputName = buildOutputPath(src, dst, newValues(config.OutputNameTemplateFieldName, src, runID, sum), env)
		if err := writeOutput(outputName, origin, out.String(), env.Overwrite, log); err != nil {
			return err
		}
		env.Rpt.Store(fmt.Sprintf("result-%s%s", runID, filepath.Ext(outputName)), outputName)
	}

	if sum.Unresolved > 0 {
		log.Warn("Some placeholders were left without words", zap.String("from", src), zap.Int("unresolved", sum.Unresolved))
	}
	log.Info("Filling completed", zap.String("to", outputName), zap.Object("summary", sum))
	if env.Rpt != nil {
		env.Rpt.StoreData(fmt.Sprintf("summary-%s.txt", runID), []byte(src+"\n"+sum.String()))
	}
	return nil
}

func writeStdout(env *state.LocalEnv, filled string) error {
	// stories follow each other, separate them
	if env.StdoutUsed {
		filled = story.LineBreak + filled
	}
	env.StdoutUsed = true
	_, err := io.WriteString(env.Stdout, filled)
	return err
}

func writeOutput(outputName, origin, filled string, overwrite bool, log *zap.Logger) error {
	if origin != "" {
		if same, err := sameFile(outputName, origin); err != nil {
			return err
		} else if same {
			return fmt.Errorf("output file would replace the story: %s", outputName)
		}
	}

	// Check if output file already exists
	if _, err := os.Stat(outputName); err == nil {
		if !overwrite {
			return fmt.Errorf("output file already exists: %s", outputName)
		}
		log.Warn("Overwriting existing file", zap.String("file", outputName))
		if err = os.Remove(outputName); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(outputName), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	if err := os.WriteFile(outputName, []byte(filled), 0644); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}
	return nil
}

func sameFile(a, b string) (bool, error) {
	ia, err := os.Stat(a)
	if os.IsNotExist(err) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	ib, err := os.Stat(b)
	if err != nil {
		return false, err
	}
	return os.SameFile(ia, ib), nil
}
