package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/shiroemons/go-fcomp/internal/fcomp/app"
	"github.com/shiroemons/go-fcomp/internal/fcomp/config"
	apperrors "github.com/shiroemons/go-fcomp/internal/fcomp/errors"
	"github.com/shiroemons/go-fcomp/internal/fcomp/models"
)

var (
	errWriter io.Writer = colorable.NewColorableStderr()
	errColor            = isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
)

// rootOptions はすべてのサブコマンドで共通のフラグ
type rootOptions struct {
	cfgFile  string
	overflow string
	debug    bool
	force    bool
	quiet    bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		printError(errWriter, err, errColor)
		os.Exit(1)
	}
}

// printError はエラーを表示します。端末に出力する場合のみ色を付けます。
func printError(w io.Writer, err error, color bool) {
	if color {
		fmt.Fprintf(w, "\x1b[31mエラー:\x1b[0m %v\n", err)
		return
	}
	fmt.Fprintf(w, "エラー: %v\n", err)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "fcomp [c|u] <infile> [outfile]",
		Short: "ランレングス符号化によるファイル圧縮ツール",
		Long: `ランレングス符号化 (RLE) でファイルを圧縮・展開します。
引数を指定しない場合は対話モードで起動します。`,
		Version:       config.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			switch len(args) {
			case 0:
				return nil
			case 3:
				// 旧形式 "option infile outfile" で option が c/u 以外の場合
				if _, err := models.ParseMode(args[0]); err != nil {
					return fmt.Errorf("%w: %w", apperrors.ErrInvalidMode, err)
				}
			}
			return apperrors.ErrUsage
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(cmd)
			if err != nil {
				return err
			}
			_, err = a.RunInteractive(cmd.Context())
			return err
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.fcomp/config.yaml)")
	flags.StringVar(&opts.overflow, "overflow", "", "policy for runs longer than 65535 bytes: split, truncate or reject")
	flags.BoolVarP(&opts.debug, "debug", "d", false, "enable debug output")
	flags.BoolVarP(&opts.force, "force", "f", false, "overwrite the output file if it exists")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "suppress status output")

	cmd.AddCommand(
		newModeCmd(opts, models.ModeCompress, "compress", []string{"c"}, "ファイルを圧縮します"),
		newModeCmd(opts, models.ModeDecompress, "decompress", []string{"u", "d", "uncompress"}, "圧縮されたファイルを展開します"),
		newModeCmd(opts, models.ModeAuto, "auto", []string{"a"}, "拡張子から圧縮か展開かを判定して処理します"),
		newVersionCmd(),
	)

	return cmd
}

func newModeCmd(opts *rootOptions, mode models.Mode, use string, aliases []string, short string) *cobra.Command {
	return &cobra.Command{
		Use:     use + " <infile> [outfile]",
		Aliases: aliases,
		Short:   short,
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(cmd)
			if err != nil {
				return err
			}

			job := models.Job{Mode: mode, InputPath: args[0]}
			if len(args) == 2 {
				job.OutputPath = args[1]
			}
			_, err = a.Run(cmd.Context(), job)
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "バージョン情報を表示します",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "fcomp version %s\n", config.Version)
		},
	}
}

// newApp は設定ファイルを読み込み、指定されたフラグで上書きして App を作成します
func (o *rootOptions) newApp(cmd *cobra.Command) (*app.App, error) {
	cfg, err := config.ReadConfig(o.cfgFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("overflow") {
		cfg.Overflow = o.overflow
	}
	if flags.Changed("debug") {
		cfg.Debug = o.debug
	}
	if flags.Changed("force") {
		cfg.Force = o.force
	}
	if flags.Changed("quiet") {
		cfg.Quiet = o.quiet
	}

	out := cmd.OutOrStdout()
	if out == os.Stdout {
		out = colorable.NewColorableStdout()
	}
	logOut := cmd.ErrOrStderr()
	if logOut == os.Stderr {
		logOut = errWriter
	}

	return app.NewWithOptions(&cfg, app.Options{
		Logger: config.NewDebugLoggerWithWriter(cfg.Debug, logOut),
		Output: out,
	})
}
