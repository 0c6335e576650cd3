package driver

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"quill/internal/diag"
	"quill/internal/pipeline"
	"quill/internal/source"
)

// CheckOptions configure CheckFiles.
type CheckOptions struct {
	Options
	// Jobs limits concurrent files; <= 0 means GOMAXPROCS.
	Jobs  int
	Cache *DiskCache
}

// CheckResult is the outcome for one path. FileSet and Bag are set whenever
// the file could be read, including cache hits.
type CheckResult struct {
	Path    string
	FileSet *source.FileSet
	FileID  source.FileID
	Bag     *diag.Bag
	Cached  bool
	// Err is the first failure: *diag.Error for a broken program, a wrapped
	// ErrBadExtension or I/O error otherwise.
	Err error
	// Result is nil on cache hits and load failures.
	Result *DiagnoseResult
}

// Failed reports whether the file did not pass checking.
func (r CheckResult) Failed() bool {
	return r.Err != nil || (r.Bag != nil && r.Bag.HasErrors())
}

// CheckFiles type-checks every path concurrently. Results keep the order
// of paths; the returned error is only set on context cancellation.
func CheckFiles(ctx context.Context, paths []string, opts CheckOptions) ([]CheckResult, error) {
	results := make([]CheckResult, len(paths))
	if len(paths) == 0 {
		return results, nil
	}
	pipeline.EmitQueued(opts.Progress, paths)

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			// индекс i уникален, мьютекс не нужен
			results[i] = checkOne(gctx, path, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func checkOne(ctx context.Context, path string, opts CheckOptions) CheckResult {
	res := CheckResult{Path: path}
	fileOpts := opts.Options
	fileOpts.Display = path
	s := newSession(fileOpts, path)

	if err := checkExtension(path); err != nil {
		res.Bag = ioDiagnostic(diag.IOBadExtension, err)
		res.Err = err
		s.emit(pipeline.StageParse, pipeline.StatusError, err)
		return res
	}
	fset := source.NewFileSet()
	fileID, err := fset.Load(path)
	if err != nil {
		err = fmt.Errorf("load %s: %w", path, err)
		res.Bag = ioDiagnostic(diag.IOLoadFileError, err)
		res.Err = err
		s.emit(pipeline.StageParse, pipeline.StatusError, err)
		return res
	}
	res.FileSet = fset
	res.FileID = fileID
	hash := cacheKey(fset.Get(fileID).Hash, fileOpts)

	var cached CachePayload
	if ok, cacheErr := opts.Cache.Get(hash, &cached); cacheErr == nil && ok {
		res.Cached = true
		res.Bag = cacheToBag(cached.Diagnostics, fileID, opts.maxDiagnostics())
		if first, broken := res.Bag.FirstError(); broken {
			res.Err = diag.Fail(first)
			s.emit(pipeline.StageCheck, pipeline.StatusError, res.Err)
		} else {
			s.emit(pipeline.StageCheck, pipeline.StatusCached, nil)
		}
		return res
	}

	diagRes, err := s.diagnoseDone(ctx, fset, fileID)
	res.Result = diagRes
	res.Err = err
	if diagRes != nil {
		res.Bag = diagRes.Bag
	}
	var derr *diag.Error
	if err == nil || errors.As(err, &derr) {
		// сбой кеша не должен ломать проверку
		_ = opts.Cache.Put(hash, &CachePayload{
			Path:        path,
			Hash:        hash,
			Broken:      err != nil,
			Diagnostics: bagToCache(res.Bag),
		})
	}
	return res
}

// cacheKey mixes the options that change diagnostics into the content hash.
func cacheKey(content Digest, opts Options) Digest {
	h := sha256.New()
	h.Write(content[:])
	fmt.Fprintf(h, "comments=%t;max=%d", opts.Comments, opts.maxDiagnostics())
	var key Digest
	copy(key[:], h.Sum(nil))
	return key
}

func ioDiagnostic(code diag.Code, err error) *diag.Bag {
	bag := diag.NewBag(1)
	bag.Add(diag.NewError(code, source.Span{File: noFile}, err.Error()))
	return bag
}

// noFile never indexes a FileSet, so renderers print such diagnostics
// without a location.
const noFile = source.FileID(^uint32(0))

// ExpandPaths turns files and directories into a sorted, de-duplicated list
// of .ql files. Explicit file arguments are kept as given so a wrong
// extension is reported rather than silently skipped.
func ExpandPaths(args []string) ([]string, error) {
	seen := make(map[string]struct{})
	var out []string
	add := func(p string) {
		p = filepath.Clean(p)
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil || !info.IsDir() {
			add(arg)
			continue
		}
		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() && path != arg && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Strings(out)
	return out, nil
}
