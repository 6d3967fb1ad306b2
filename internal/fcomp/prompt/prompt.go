// Package prompt は対話モードで処理内容を入力させます
package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/manifoldco/promptui"

	apperrors "github.com/shiroemons/go-fcomp/internal/fcomp/errors"
	"github.com/shiroemons/go-fcomp/internal/fcomp/fileutil"
	"github.com/shiroemons/go-fcomp/internal/fcomp/models"
)

// modeItem は選択肢1つ分
type modeItem struct {
	Label string
	Mode  models.Mode
}

var modeItems = []modeItem{
	{Label: "c: 圧縮 (compress)", Mode: models.ModeCompress},
	{Label: "u: 展開 (uncompress)", Mode: models.ModeDecompress},
}

// Prompter は promptui を使って対話的に Job を組み立てます
type Prompter struct {
	suffix string
	stdin  io.ReadCloser
	stdout io.WriteCloser
}

// New は新しいPrompterを作成します。stdin と stdout が nil の場合は端末を使います。
func New(suffix string, stdin io.ReadCloser, stdout io.WriteCloser) *Prompter {
	return &Prompter{suffix: suffix, stdin: stdin, stdout: stdout}
}

// Prompt は処理の種類、入力ファイル、出力ファイルを順に尋ねます
func (p *Prompter) Prompt() (models.Job, error) {
	sel := promptui.Select{
		Label:  "'c' で圧縮、'u' で展開",
		Items:  modeLabels(),
		Stdin:  p.stdin,
		Stdout: p.stdout,
	}
	idx, _, err := sel.Run()
	if err != nil {
		return models.Job{}, wrapPromptError(err)
	}
	mode := modeItems[idx].Mode

	in := promptui.Prompt{
		Label:    "入力ファイル",
		Validate: ValidatePath,
		Stdin:    p.stdin,
		Stdout:   p.stdout,
	}
	input, err := in.Run()
	if err != nil {
		return models.Job{}, wrapPromptError(err)
	}
	input = strings.TrimSpace(input)

	out := promptui.Prompt{
		Label:    "出力ファイル",
		Default:  fileutil.GenerateOutputFilename(input, mode, p.suffix),
		Validate: ValidatePath,
		Stdin:    p.stdin,
		Stdout:   p.stdout,
	}
	output, err := out.Run()
	if err != nil {
		return models.Job{}, wrapPromptError(err)
	}

	return models.Job{
		Mode:       mode,
		InputPath:  input,
		OutputPath: strings.TrimSpace(output),
	}, nil
}

// ValidatePath はファイル名の入力を検証します
func ValidatePath(s string) error {
	if strings.TrimSpace(s) == "" {
		return fileutil.ErrEmptyPath
	}
	return nil
}

func modeLabels() []string {
	labels := make([]string, len(modeItems))
	for i, item := range modeItems {
		labels[i] = item.Label
	}
	return labels
}

// wrapPromptError は Ctrl-C などによる中断を ErrCancelled に変換します
func wrapPromptError(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, promptui.ErrAbort) {
		return apperrors.ErrCancelled
	}
	return fmt.Errorf("%w: %w", apperrors.ErrCancelled, err)
}
