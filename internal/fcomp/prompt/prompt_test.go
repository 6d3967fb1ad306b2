package prompt

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/manifoldco/promptui"

	apperrors "github.com/shiroemons/go-fcomp/internal/fcomp/errors"
	"github.com/shiroemons/go-fcomp/internal/fcomp/fileutil"
	"github.com/shiroemons/go-fcomp/internal/fcomp/models"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"data.bin", false},
		{" ", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidatePath(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if tt.wantErr && !errors.Is(err, fileutil.ErrEmptyPath) {
			t.Errorf("ValidatePath(%q) error = %v, want ErrEmptyPath", tt.input, err)
		}
	}
}

func TestModeItems(t *testing.T) {
	labels := modeLabels()
	if len(labels) != 2 {
		t.Fatalf("len(modeLabels()) = %d, want 2", len(labels))
	}
	if modeItems[0].Mode != models.ModeCompress || modeItems[1].Mode != models.ModeDecompress {
		t.Errorf("modeItems = %+v", modeItems)
	}
}

func TestWrapPromptError(t *testing.T) {
	for _, err := range []error{promptui.ErrInterrupt, promptui.ErrEOF, promptui.ErrAbort, errors.New("tty")} {
		if got := wrapPromptError(err); !errors.Is(got, apperrors.ErrCancelled) {
			t.Errorf("wrapPromptError(%v) = %v, want ErrCancelled", err, got)
		}
	}
}

// discardCloser は出力を捨てる io.WriteCloser
type discardCloser struct{}

func (discardCloser) Write(p []byte) (int, error) { return len(p), nil }
func (discardCloser) Close() error                { return nil }

// keys はキー入力を1バイトずつ返す標準入力を作ります。
// プロンプトごとに読み込みが作り直されるため、先読みさせないようにします。
func keys(s string) io.ReadCloser {
	return io.NopCloser(iotest.OneByteReader(strings.NewReader(s)))
}

func TestPrompt(t *testing.T) {
	enter := "\r"
	next := string(promptui.KeyNext)

	tests := []struct {
		name     string
		input    string
		expected models.Job
	}{
		{
			name:  "圧縮で出力ファイル名は既定値",
			input: enter + "data.bin" + enter + enter,
			expected: models.Job{
				Mode:       models.ModeCompress,
				InputPath:  "data.bin",
				OutputPath: "data.bin.rle",
			},
		},
		{
			name:  "展開で出力ファイル名は既定値",
			input: next + enter + "data.bin.rle" + enter + enter,
			expected: models.Job{
				Mode:       models.ModeDecompress,
				InputPath:  "data.bin.rle",
				OutputPath: "data.bin",
			},
		},
		{
			name:  "出力ファイル名を入力",
			input: enter + "data.bin" + enter + "out.rle" + enter,
			expected: models.Job{
				Mode:       models.ModeCompress,
				InputPath:  "data.bin",
				OutputPath: "out.rle",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(".rle", keys(tt.input), discardCloser{})
			got, err := p.Prompt()
			if err != nil {
				t.Fatalf("Prompt() error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("Prompt() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestPrompt_Interrupted(t *testing.T) {
	// 入力ファイル名の途中で Ctrl-C
	p := New(".rle", keys("\r"+"data"+"\x03"), discardCloser{})
	_, err := p.Prompt()
	if !errors.Is(err, apperrors.ErrCancelled) {
		t.Errorf("Prompt() error = %v, want ErrCancelled", err)
	}
}
