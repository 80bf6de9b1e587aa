package static

import (
	"embed"
	"io/fs"
)

// IndexFile 는 랜딩 페이지 파일 이름이다.
const IndexFile = "index.html"

//go:embed index.html script.js style.css
var files embed.FS

// FS 는 랜딩 페이지와 정적 자산을 담은 읽기 전용 파일 시스템이다.
func FS() fs.FS {
	return files
}
