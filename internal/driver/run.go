package driver

import (
	"context"

	"quill/internal/pipeline"
	"quill/internal/source"
	"quill/internal/trace"
	"quill/internal/vm"
)

// Run diagnoses path and evaluates it, writing print output to opts.Stdout.
// Front-end failures come back as *diag.Error, runtime faults as *vm.VMError;
// output printed before a fault is kept.
func Run(ctx context.Context, path string, opts Options) (*DiagnoseResult, error) {
	fs, fileID, err := loadFile(path)
	if err != nil {
		return nil, err
	}
	return newSession(opts, path).run(ctx, fs, fileID)
}

// RunSource evaluates in-memory content registered under name.
func RunSource(ctx context.Context, name string, src []byte, opts Options) (*DiagnoseResult, error) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, src)
	return newSession(opts, name).run(ctx, fs, fileID)
}

func (s *session) run(ctx context.Context, fs *source.FileSet, fileID source.FileID) (*DiagnoseResult, error) {
	span := trace.Begin(trace.FromContext(ctx), trace.ScopeDriver, "run", trace.ParentFromContext(ctx))
	defer span.End("")
	ctx = trace.WithParent(ctx, span.ID())

	res, err := s.diagnose(ctx, fs, fileID)
	if err != nil {
		return res, err
	}

	s.emit(pipeline.StageRun, pipeline.StatusWorking, nil)
	idx := s.timer.Begin("eval")
	machine := vm.New(res.Builder, vm.Options{Out: s.opts.Stdout, Sema: res.Sema})
	err = machine.Run(ctx, res.FileID)
	s.timer.End(idx, "")
	res.Timing = s.timer.Report()
	if err != nil {
		span.WithExtra("error", err.Error())
		s.emit(pipeline.StageRun, pipeline.StatusError, err)
		return res, err
	}
	s.emit(pipeline.StageRun, pipeline.StatusDone, nil)
	return res, nil
}
