package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ErrConfig는 설정 파일이 존재하지만 해석할 수 없을 때 반환된다.
var ErrConfig = errors.New("invalid config file")

// Config는 wd 설정 파일(config.toml)의 최상위 구조체다.
// 워프 파일 자체의 경로는 플래그와 WD_CONFIG 환경변수가 우선한다.
type Config struct {
	Version  int    `toml:"version"`
	Warpfile string `toml:"warpfile"` // 워프 파일 경로, 선행 ~ 허용
	Quiet    *bool  `toml:"quiet"`    // 상태 메시지 억제 기본값
	Lock     *bool  `toml:"lock"`     // 변경 시 flock 사용 여부
}

// Load는 config.toml을 파싱하여 Config를 반환한다.
// 파일이 없으면 기본값으로 채운 Config를 반환한다 (graceful).
// 파일이 있는데 망가져 있으면 에러다. 사용자의 의도를 조용히
// 버리지 않기 위해서다.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			cfg = Config{}
			cfg.applyDefaults()
			return &cfg, nil
		}
		return nil, fmt.Errorf("config.Load: %w: %v", ErrConfig, err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Save는 Config를 TOML 파일로 저장한다 (0600 권한, 부모 디렉터리 생성).
func Save(path string, cfg *Config) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	return nil
}

// IsQuiet는 quiet 설정값을 반환한다 (기본 false).
func (c *Config) IsQuiet() bool {
	if c.Quiet == nil {
		return false
	}
	return *c.Quiet
}

// IsLock은 lock 설정값을 반환한다 (기본 true).
func (c *Config) IsLock() bool {
	if c.Lock == nil {
		return true
	}
	return *c.Lock
}

// DefaultPath는 기본 설정 파일 경로(~/.config/wd/config.toml)를 반환한다.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "wd", "config.toml")
	}
	return filepath.Join(home, ".config", "wd", "config.toml")
}

// DefaultWarpfile은 기본 워프 파일 경로(~/.warprc)를 반환한다.
func DefaultWarpfile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".warprc"
	}
	return filepath.Join(home, ".warprc")
}

func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.Warpfile == "" {
		c.Warpfile = "~/.warprc"
	}
}
