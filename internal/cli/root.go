package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hbjs97/wd/internal/cmdexec"
	"github.com/hbjs97/wd/internal/config"
	"github.com/hbjs97/wd/internal/point"
	"github.com/hbjs97/wd/internal/setup"
	"github.com/hbjs97/wd/internal/store"
)

// Version은 릴리스 시점에 갱신한다.
const Version = "0.1.0"

// App은 명령 전반에서 공유하는 의존성을 담는다.
// 테스트에서는 Commander와 Forms에 가짜 구현을 주입한다.
type App struct {
	Commander cmdexec.Commander
	Forms     setup.FormRunner

	// CfgPath는 config.toml 경로다. 비어 있으면 기본 경로를 쓴다.
	CfgPath string

	warpfileFlag string
	quiet        bool
	force        bool
	showVersion  bool

	store  *store.Store
	points []point.Point
}

// NewRootCmd는 기본 의존성으로 루트 명령을 만든다.
func NewRootCmd() *cobra.Command {
	return (&App{}).NewRootCmd()
}

// NewRootCmd는 wd 루트 명령과 하위 명령을 조립한다.
//
// 루트 자체가 실행 가능한 명령이다. 하위 명령 이름과 겹치지 않는
// 첫 인자는 워프 포인트 이름으로 해석해 대상 경로를 stdout으로
// 내보낸다. 실제 cd는 셸 wrapper 함수가 수행한다.
func (a *App) NewRootCmd() *cobra.Command {
	if a.Commander == nil {
		a.Commander = &cmdexec.RealCommander{}
	}
	if a.Forms == nil {
		a.Forms = &setup.HuhFormRunner{}
	}
	if a.CfgPath == "" {
		a.CfgPath = config.DefaultPath()
	}

	var (
		addName  string
		rmName   string
		listFlag bool
		showFlag bool
	)

	cmd := &cobra.Command{
		Use:   "wd [flags] <point> [subdir]",
		Short: "Warp points for your shell",
		Long: `wd keeps a list of named warp points, one per directory.
Jump to a point with "wd <name>", or back up the directory
stack with "wd ..". Run "wd setup" once to install the shell
wrapper that performs the actual cd.`,
		// 워프 포인트 이름은 하위 명령이 아니므로 cobra의 기본
		// 인자 검증을 끈다.
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// -v는 버전만 찍고 나머지 처리를 계속한다.
			if a.showVersion {
				fmt.Fprintf(cmd.OutOrStdout(), "wd version %s\n", Version)
			}
			if a.quiet {
				cmd.Root().SilenceErrors = true
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case addName != "":
				return a.runAdd(cmd, addName, a.force)
			case rmName != "":
				return a.runRm(cmd, rmName)
			case listFlag:
				return a.runList(cmd)
			case showFlag:
				return a.runShow(cmd, "")
			}
			if len(args) == 0 {
				return cmd.Help()
			}
			if len(args) > 2 {
				return fmt.Errorf("cli: too many arguments")
			}
			subdir := ""
			if len(args) == 2 {
				subdir = args[1]
			}
			return a.runWarp(cmd, args[0], subdir)
		},
	}

	cmd.PersistentFlags().StringVarP(&a.warpfileFlag, "config", "c", "", "use an alternate warp point file")
	cmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "suppress all output")
	cmd.PersistentFlags().BoolVarP(&a.showVersion, "version", "v", false, "print version before running")
	cmd.PersistentFlags().BoolVarP(&a.force, "force", "f", false, "never prompt, overwrite when needed")

	cmd.Flags().StringVarP(&addName, "add", "a", "", "add a warp point for the current directory")
	cmd.Flags().StringVarP(&rmName, "rm", "r", "", "remove a warp point")
	cmd.Flags().BoolVarP(&listFlag, "ls", "l", false, "list all warp points")
	cmd.Flags().BoolVarP(&showFlag, "show", "s", false, "show warp points to the current directory")

	// 잘못된 플래그는 사용법만 보여주고 성공으로 끝낸다. 셸 wrapper가
	// wd의 실패를 cd 실패로 오인하지 않게 하기 위한 것이다.
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		if !a.quiet {
			fmt.Fprintf(c.ErrOrStderr(), "Error: %v\n", err)
			_ = c.Usage()
		}
		return nil
	})

	cmd.AddCommand(
		a.newAddCmd(),
		a.newAddForceCmd(),
		a.newRmCmd(),
		a.newListCmd(),
		a.newShowCmd(),
		a.newPathCmd(),
		a.newCleanCmd(),
		a.newHookCmd(),
		a.newSetupCmd(),
		a.newDoctorCmd(),
	)

	return cmd
}

// initStore는 워프 파일 경로를 결정하고 스토어를 연다.
//
// 우선순위는 --config 플래그, WD_CONFIG 환경 변수, config.toml의
// warpfile, 기본값 ~/.warprc 순이다. 파일이 없으면 만들고, 쓰기가
// 불가능하면 명령 로직에 들어가기 전에 실패시킨다.
func (a *App) initStore(cmd *cobra.Command) error {
	if a.store != nil {
		return nil
	}

	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return err
	}
	if cfg.IsQuiet() && !a.quiet {
		a.quiet = true
		cmd.Root().SilenceErrors = true
	}

	path := a.warpfileFlag
	if path == "" {
		path = os.Getenv("WD_CONFIG")
	}
	if path == "" {
		path = cfg.Warpfile
	}
	path = store.ExpandHome(path)

	s := store.New(path)
	s.NoLock = !cfg.IsLock()

	pts, err := s.Load()
	if err != nil {
		return err
	}
	if !s.Writable() {
		return fmt.Errorf("cli: %w: %s is not writable", store.ErrIO, path)
	}

	a.store = s
	a.points = pts
	return nil
}

// warpfilePath는 initStore와 같은 우선순위로 경로만 계산한다.
// 스토어 게이트를 거치지 않는 doctor와 setup에서 쓴다. 설정 파일이
// 깨져 있어도 기본값으로 계속 진행한다.
func (a *App) warpfilePath() string {
	if a.warpfileFlag != "" {
		return store.ExpandHome(a.warpfileFlag)
	}
	if env := os.Getenv("WD_CONFIG"); env != "" {
		return store.ExpandHome(env)
	}
	if cfg, err := config.Load(a.CfgPath); err == nil {
		return store.ExpandHome(cfg.Warpfile)
	}
	return store.ExpandHome(config.DefaultWarpfile())
}

// statusWriter는 상태 메시지가 향할 writer를 돌려준다. --quiet면 버린다.
func (a *App) statusWriter(cmd *cobra.Command) io.Writer {
	if a.quiet {
		return io.Discard
	}
	return cmd.ErrOrStderr()
}

// statusf는 진행 상황을 stderr로 알린다. stdout은 셸 wrapper가
// cd 대상으로 읽는 채널이라 비워 둔다.
func (a *App) statusf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(a.statusWriter(cmd), format+"\n", args...)
}
