// Package app はアプリケーションのメインロジックを実装します
package app

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/mattn/go-colorable"

	"github.com/shiroemons/go-fcomp/internal/fcomp/codec"
	"github.com/shiroemons/go-fcomp/internal/fcomp/config"
	apperrors "github.com/shiroemons/go-fcomp/internal/fcomp/errors"
	"github.com/shiroemons/go-fcomp/internal/fcomp/fileutil"
	"github.com/shiroemons/go-fcomp/internal/fcomp/interfaces"
	"github.com/shiroemons/go-fcomp/internal/fcomp/models"
	"github.com/shiroemons/go-fcomp/internal/fcomp/prompt"
	"github.com/shiroemons/go-fcomp/pkg/rle"
)

// outputPerm は出力ファイルのパーミッション
const outputPerm = 0644

// App はアプリケーションのメインロジックを管理します
type App struct {
	config   *config.Config
	logger   interfaces.Logger
	out      io.Writer
	fs       interfaces.FileSystem
	codec    interfaces.Codec
	prompter interfaces.Prompter
}

// Options はAppの設定オプション
type Options struct {
	FileSystem interfaces.FileSystem
	Codec      interfaces.Codec
	Prompter   interfaces.Prompter
	Logger     interfaces.Logger
	Output     io.Writer
}

// New は新しいAppを作成します
func New(cfg *config.Config) (*App, error) {
	return NewWithOptions(cfg, Options{})
}

// NewWithOptions は新しいAppをオプション付きで作成します
func NewWithOptions(cfg *config.Config, opts Options) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	fs := opts.FileSystem
	if fs == nil {
		fs = fileutil.NewOSFileSystem()
	}

	c := opts.Codec
	if c == nil {
		policy, err := cfg.OverflowPolicy()
		if err != nil {
			return nil, err
		}
		c = codec.New(policy)
	}

	prompter := opts.Prompter
	if prompter == nil {
		prompter = prompt.New(cfg.Suffix, nil, nil)
	}

	logger := opts.Logger
	if logger == nil {
		logger = config.NewDebugLogger(cfg.Debug)
	}

	out := opts.Output
	if out == nil {
		out = colorable.NewColorableStdout()
	}

	return &App{
		config:   cfg,
		logger:   logger,
		out:      out,
		fs:       fs,
		codec:    c,
		prompter: prompter,
	}, nil
}

// RunInteractive は対話モードで Job を入力させてから実行します
func (a *App) RunInteractive(ctx context.Context) (models.Result, error) {
	job, err := a.prompter.Prompt()
	if err != nil {
		return models.Result{}, err
	}
	return a.Run(ctx, job)
}

// Run は Job を1つ実行します
func (a *App) Run(ctx context.Context, job models.Job) (models.Result, error) {
	// コンテキストのキャンセルチェック
	select {
	case <-ctx.Done():
		return models.Result{}, ctx.Err()
	default:
	}

	job, err := a.resolveJob(job)
	if err != nil {
		return models.Result{}, err
	}

	result := models.Result{
		Mode:       job.Mode,
		InputPath:  job.InputPath,
		OutputPath: job.OutputPath,
	}

	stats, err := a.process(ctx, job)
	result.Stats = stats
	if err != nil {
		return result, err
	}

	a.report(result)
	return result, nil
}

// resolveJob は処理の種類と出力ファイル名を確定します
func (a *App) resolveJob(job models.Job) (models.Job, error) {
	input, err := fileutil.ExpandPath(job.InputPath)
	if err != nil {
		return job, fmt.Errorf("%w: %w", apperrors.ErrOpenInput, err)
	}

	switch job.Mode {
	case models.ModeCompress, models.ModeDecompress:
	case models.ModeAuto:
		job.Mode = fileutil.DetectMode(input, a.config.Suffix)
		a.logger.Printf("%s を %s として処理します\n", input, job.Mode)
	default:
		return job, fmt.Errorf("%w: %s", apperrors.ErrInvalidMode, job.Mode)
	}

	output := job.OutputPath
	if output == "" {
		output = fileutil.GenerateOutputFilename(input, job.Mode, a.config.Suffix)
	} else if output, err = fileutil.ExpandPath(output); err != nil {
		return job, fmt.Errorf("%w: %w", apperrors.ErrCreateOutput, err)
	}

	if filepath.Clean(input) == filepath.Clean(output) || a.fs.SameFile(input, output) {
		return job, fmt.Errorf("%w: %s", apperrors.ErrSameFile, input)
	}
	if !a.config.Force && a.fs.FileExists(output) {
		return job, fmt.Errorf("%w: %s", apperrors.ErrOutputExists, output)
	}

	job.InputPath = input
	job.OutputPath = output
	return job, nil
}

// process は入力を開き、一時ファイルに書き込んでから出力ファイル名に置き換えます。
// 失敗した場合、出力ファイルは作成されません。
func (a *App) process(ctx context.Context, job models.Job) (rle.Stats, error) {
	src, err := a.fs.Open(job.InputPath)
	if err != nil {
		return rle.Stats{}, fmt.Errorf("%w: %w", apperrors.ErrOpenInput, apperrors.NewFileError("open", job.InputPath, err))
	}
	defer src.Close()
	a.logger.Printf("入力ファイル '%s' を開きました\n", job.InputPath)

	dir := filepath.Dir(job.OutputPath)
	tmp, err := a.fs.CreateTemp(dir, "."+filepath.Base(job.OutputPath)+".*.tmp")
	if err != nil {
		return rle.Stats{}, fmt.Errorf("%w: %w", apperrors.ErrCreateOutput, apperrors.NewFileError("create", job.OutputPath, err))
	}
	a.logger.Printf("一時ファイル '%s' を作成しました\n", tmp.Name())

	closed, committed := false, false
	defer func() {
		if !closed {
			tmp.Close()
		}
		if !committed {
			a.fs.Remove(tmp.Name())
		}
	}()

	select {
	case <-ctx.Done():
		return rle.Stats{}, ctx.Err()
	default:
	}

	in := &contextReader{ctx: ctx, r: src}
	var stats rle.Stats
	if job.Mode == models.ModeCompress {
		stats, err = a.codec.Compress(in, tmp)
	} else {
		stats, err = a.codec.Decompress(in, tmp)
	}
	if err != nil {
		return stats, fmt.Errorf("%w: %s: %w", apperrors.ErrCodec, job.InputPath, err)
	}

	closed = true
	if err := tmp.Close(); err != nil {
		return stats, fmt.Errorf("%w: %w", apperrors.ErrCreateOutput, apperrors.NewFileError("close", tmp.Name(), err))
	}
	if err := a.fs.Chmod(tmp.Name(), outputPerm); err != nil {
		return stats, fmt.Errorf("%w: %w", apperrors.ErrCreateOutput, apperrors.NewFileError("chmod", tmp.Name(), err))
	}
	if err := a.fs.Rename(tmp.Name(), job.OutputPath); err != nil {
		return stats, fmt.Errorf("%w: %w", apperrors.ErrCreateOutput, apperrors.NewFileError("rename", job.OutputPath, err))
	}
	committed = true

	return stats, nil
}

// contextReader は ctx がキャンセルされると以降の Read で ctx.Err() を返します。
// 処理の途中で Ctrl-C を受けた場合にコーデックを止めるために使います。
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

// report は処理結果を表示します
func (a *App) report(result models.Result) {
	a.logger.Printf("ユニット数: %d, ラン数: %d\n", result.Stats.Units, result.Stats.Runs)
	if a.config.Quiet {
		return
	}

	fmt.Fprintf(a.out, "入力ファイル '%s' を読み込みました\n", result.InputPath)
	fmt.Fprintf(a.out, "出力ファイル '%s' を書き込みました\n", result.OutputPath)
	if result.Mode == models.ModeCompress {
		fmt.Fprintln(a.out, "ランレングス圧縮が完了しました")
	} else {
		fmt.Fprintln(a.out, "ランレングス展開が完了しました")
	}
	fmt.Fprintf(a.out, "サイズ: %s -> %s (%.1f%%)\n",
		fileutil.FormatBytes(result.Stats.BytesRead),
		fileutil.FormatBytes(result.Stats.BytesWritten),
		result.Stats.Ratio()*100)
	fmt.Fprintf(a.out, "経過時間: %s\n", result.Stats.Elapsed)
}
