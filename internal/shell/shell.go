package shell

// RC 파일에 설치되는 블록의 경계 마커. setup이 설치/제거에,
// doctor가 설치 여부 진단에 사용한다.
const (
	HookStartMarker = "# wd-hook-start"
	HookEndMarker   = "# wd-hook-end"
)

// Wrapper는 셸에서 eval할 wd 함수 본문을 반환한다.
//
// 예약어와 플래그로 시작하는 호출은 바이너리를 그대로 실행하고,
// 그 외(워프)는 stdout을 캡처해 cd한다. 역참조 토큰(-N)은 셸별
// 디렉터리 히스토리 이동으로 번역된다. 지원하지 않는 셸이면 빈 문자열.
func Wrapper(shellType string) string {
	switch shellType {
	case "zsh":
		return `# wd shell integration (zsh)
# Back-references (wd .., wd ...) walk the directory stack; set AUTO_PUSHD
# if you want every cd recorded there.
wd() {
  case "$1" in
    ""|-*|add|add!|rm|ls|list|show|path|clean|doctor|hook|setup|help|completion)
      command wd "$@"
      ;;
    *)
      local out
      out="$(command wd "$@")" || return $?
      case "$out" in
        -[0-9]*) builtin cd "$out" > /dev/null ;;
        ?*) builtin cd -- "$out" ;;
      esac
      ;;
  esac
}
`
	case "bash":
		return `# wd shell integration (bash)
wd() {
  case "$1" in
    ""|-*|add|add!|rm|ls|list|show|path|clean|doctor|hook|setup|help|completion)
      command wd "$@"
      ;;
    *)
      local out
      out="$(command wd "$@")" || return $?
      case "$out" in
        -1) builtin cd - > /dev/null ;;
        -[0-9]*) echo "wd: back-references beyond .. need zsh" >&2; return 1 ;;
        ?*) builtin cd -- "$out" ;;
      esac
      ;;
  esac
}
`
	case "fish":
		return `# wd shell integration (fish)
function wd
  switch "$argv[1]"
    case '' 'add' 'add!' 'rm' 'ls' 'list' 'show' 'path' 'clean' 'doctor' 'hook' 'setup' 'help' 'completion' '-*'
      command wd $argv
    case '*'
      set -l out (command wd $argv)
      or return $status
      switch "$out"
        case '-*'
          prevd (string sub --start 2 -- $out)
        case '*'
          builtin cd -- $out
      end
  end
end
`
	default:
		return ""
	}
}

// Hook은 RC 파일에 설치하는 마커 블록을 반환한다. 블록은 wd 바이너리가
// PATH에 있을 때만 wrapper를 로드한다.
func Hook(shellType string) string {
	switch shellType {
	case "zsh", "bash":
		return HookStartMarker + `
# Installed by wd; do not edit this block manually.
if command -v wd >/dev/null 2>&1; then
  eval "$(command wd hook ` + shellType + `)"
fi
` + HookEndMarker + "\n"
	case "fish":
		return HookStartMarker + `
# Installed by wd; do not edit this block manually.
if command -q wd
  command wd hook fish | source
end
` + HookEndMarker + "\n"
	default:
		return ""
	}
}
