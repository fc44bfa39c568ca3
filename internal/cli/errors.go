package cli

import (
	"github.com/hbjs97/wd/internal/config"
	"github.com/hbjs97/wd/internal/point"
	"github.com/hbjs97/wd/internal/resolver"
	"github.com/hbjs97/wd/internal/store"
)

// 하위 패키지의 sentinel error를 CLI 경계에서 다시 내보낸다.
// main과 테스트가 내부 패키지를 직접 참조하지 않아도 errors.Is로
// 분기할 수 있다.
var (
	// ErrInvalidName은 워프 포인트 이름이 규칙을 어길 때 반환된다.
	ErrInvalidName = point.ErrInvalidName

	// ErrExists는 add가 이미 있는 이름과 충돌할 때 반환된다.
	ErrExists = store.ErrExists

	// ErrNotFound는 이름에 해당하는 워프 포인트가 없을 때 반환된다.
	ErrNotFound = store.ErrNotFound

	// ErrIO는 워프 파일을 읽거나 쓸 수 없을 때 반환된다.
	ErrIO = store.ErrIO

	// ErrNoOp는 현재 디렉터리로의 워프처럼 의미 없는 요청일 때 반환된다.
	ErrNoOp = resolver.ErrNoOp

	// ErrConfig는 config.toml이 깨져 있을 때 반환된다.
	ErrConfig = config.ErrConfig
)
