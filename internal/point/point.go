package point

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Point는 하나의 워프 포인트다. Name은 레지스트리 안에서 유일하고,
// Path는 절대 경로를 축약 없이 그대로 담는다.
type Point struct {
	Name string
	Path string
}

// ErrInvalidName은 워프 포인트 이름이 명명 규칙을 위반할 때 반환된다.
var ErrInvalidName = errors.New("invalid warp point name")

// ValidateName은 이름 규칙을 검사한다. 규칙은 고정된 순서로 평가되며
// 첫 번째 위반만 보고한다.
func ValidateName(name string) error {
	switch {
	case name != "" && strings.Trim(name, ".") == "":
		return fmt.Errorf("point.ValidateName: %w: cannot be just dots", ErrInvalidName)
	case strings.ContainsFunc(name, unicode.IsSpace):
		return fmt.Errorf("point.ValidateName: %w: cannot contain whitespace", ErrInvalidName)
	case strings.Contains(name, ":"):
		return fmt.Errorf("point.ValidateName: %w: cannot contain a colon", ErrInvalidName)
	case name == "":
		return fmt.Errorf("point.ValidateName: %w: cannot be empty", ErrInvalidName)
	}
	return nil
}
