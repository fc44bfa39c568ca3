package store

import (
	"strings"

	"github.com/hbjs97/wd/internal/point"
)

// 워프 파일은 줄당 한 항목, escape(name):escape(path) 형식이다.
// 구분자와 충돌하는 문자는 백슬래시로 이스케이프해 임의의 이름/경로가
// 왕복 가능하다. 개행과 탭은 두 글자 시퀀스(\n, \t)로 적는다.

func escapeField(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case ':':
			b.WriteString(`\:`)
		case ' ':
			b.WriteString(`\ `)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func unescapeField(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	esc := false
	for _, r := range s {
		if !esc {
			if r == '\\' {
				esc = true
				continue
			}
			b.WriteRune(r)
			continue
		}
		esc = false
		switch r {
		case 't':
			b.WriteByte('\t')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		default:
			b.WriteRune(r) // \\, \:, \  및 알 수 없는 시퀀스는 문자 그대로
		}
	}
	return b.String()
}

func formatLine(p point.Point) string {
	return escapeField(p.Name) + ":" + escapeField(p.Path)
}

// parseLine은 첫 번째 이스케이프되지 않은 콜론에서 줄을 가른다.
// 콜론이 없거나 어느 한쪽 필드가 비면 망가진 줄로 본다.
func parseLine(line string) (point.Point, bool) {
	sep := -1
	esc := false
	for i, r := range line {
		if esc {
			esc = false
			continue
		}
		if r == '\\' {
			esc = true
			continue
		}
		if r == ':' {
			sep = i
			break
		}
	}
	if sep < 0 {
		return point.Point{}, false
	}
	name := unescapeField(line[:sep])
	path := unescapeField(line[sep+1:])
	if name == "" || path == "" {
		return point.Point{}, false
	}
	return point.Point{Name: name, Path: path}, true
}

func splitLines(data string) []string {
	if data == "" {
		return nil
	}
	data = strings.TrimSuffix(data, "\n")
	if data == "" {
		return nil
	}
	return strings.Split(data, "\n")
}

func blankLine(ln string) bool {
	return strings.TrimSpace(ln) == ""
}
