package driver

import (
	"context"
	"strconv"
	"time"

	"quill/internal/ast"
	"quill/internal/diag"
	"quill/internal/observ"
	"quill/internal/pipeline"
	"quill/internal/sema"
	"quill/internal/source"
	"quill/internal/trace"
	"quill/internal/types"
)

// DiagnoseResult holds every front-end artefact of one file. Fields past the
// failing phase stay nil.
type DiagnoseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Builder *ast.Builder
	FileID  ast.FileID
	Bag     *diag.Bag
	Sema    *sema.Result
	Timing  observ.Report
}

// TypeLabel returns the checked type of id, "?" before sema ran.
func (r *DiagnoseResult) TypeLabel(id ast.ExprID) string {
	if r == nil || r.Sema == nil {
		return "?"
	}
	return types.Label(r.Sema.TypeInterner, r.Sema.TypeOf(id))
}

// Diagnose runs lexing, parsing and type checking on path. The first
// diagnostic error is returned as *diag.Error next to the partial result.
func Diagnose(ctx context.Context, path string, opts Options) (*DiagnoseResult, error) {
	fs, fileID, err := loadFile(path)
	if err != nil {
		return nil, err
	}
	return newSession(opts, path).diagnoseDone(ctx, fs, fileID)
}

// DiagnoseSource is Diagnose for in-memory content; name is only used in
// diagnostics and is not required to carry the .ql extension.
func DiagnoseSource(ctx context.Context, name string, src []byte, opts Options) (*DiagnoseResult, error) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, src)
	return newSession(opts, name).diagnoseDone(ctx, fs, fileID)
}

// session carries per-file state shared by the phases.
type session struct {
	opts    Options
	timer   *observ.Timer
	display string
	started time.Time
}

func newSession(opts Options, path string) *session {
	s := &session{opts: opts, display: opts.Display, started: time.Now()}
	if s.display == "" {
		s.display = path
	}
	if opts.Timings {
		s.timer = observ.NewTimer()
	}
	return s
}

func (s *session) emit(stage pipeline.Stage, status pipeline.Status, err error) {
	pipeline.Emit(s.opts.Progress, pipeline.Event{
		File:    s.display,
		Stage:   stage,
		Status:  status,
		Err:     err,
		Elapsed: time.Since(s.started),
	})
}

func (s *session) diagnoseDone(ctx context.Context, fs *source.FileSet, fileID source.FileID) (*DiagnoseResult, error) {
	res, err := s.diagnose(ctx, fs, fileID)
	if err == nil {
		s.emit(pipeline.StageCheck, pipeline.StatusDone, nil)
	}
	return res, err
}

func (s *session) diagnose(ctx context.Context, fs *source.FileSet, fileID source.FileID) (*DiagnoseResult, error) {
	span := trace.Begin(trace.FromContext(ctx), trace.ScopeFile, s.display, trace.ParentFromContext(ctx))
	defer span.End("")
	ctx = trace.WithParent(ctx, span.ID())

	s.emit(pipeline.StageParse, pipeline.StatusWorking, nil)
	idx := s.timer.Begin("parse")
	parsed, err := parseFile(ctx, fs, fileID, s.opts)
	if parsed == nil {
		s.timer.End(idx, "")
		s.emit(pipeline.StageParse, pipeline.StatusError, err)
		return nil, err
	}
	res := &DiagnoseResult{
		FileSet: parsed.FileSet,
		File:    parsed.File,
		Builder: parsed.Builder,
		FileID:  parsed.FileID,
		Bag:     parsed.Bag,
	}
	if err != nil {
		s.timer.End(idx, "")
		res.Timing = s.timer.Report()
		s.emit(pipeline.StageParse, pipeline.StatusError, err)
		return res, err
	}
	stmts := len(res.Builder.Files.Get(res.FileID).Stmts)
	s.timer.End(idx, "stmts="+strconv.Itoa(stmts))

	s.emit(pipeline.StageCheck, pipeline.StatusWorking, nil)
	idx = s.timer.Begin("check")
	checked, err := sema.Check(ctx, res.Builder, res.FileID, sema.Options{
		Reporter: &diag.BagReporter{Bag: res.Bag},
		Types:    types.NewInterner(),
	})
	res.Sema = &checked
	s.timer.End(idx, "exprs="+strconv.Itoa(len(checked.ExprTypes)))
	res.Timing = s.timer.Report()
	if err != nil {
		s.emit(pipeline.StageCheck, pipeline.StatusError, err)
		return res, err
	}
	return res, nil
}
