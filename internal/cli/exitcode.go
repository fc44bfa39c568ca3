package cli

// ExitCode는 프로세스 종료 코드다.
type ExitCode int

// 셸 wrapper는 wd의 종료 코드를 그대로 돌려준다. 구분이 필요한 것은
// 성공이냐 아니냐뿐이므로 실패는 전부 1로 묶는다.
const (
	ExitSuccess ExitCode = 0
	ExitFailure ExitCode = 1
)

// MapExitCode는 에러를 종료 코드로 변환한다.
func MapExitCode(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	return ExitFailure
}
