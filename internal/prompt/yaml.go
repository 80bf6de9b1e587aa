package prompt

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// File 은 프롬프트 YAML 한 개의 필드 모음이다. 키는 system, user 같은 역할 이름이다.
type File map[string]string

// LoadFile: 최상위가 매핑이고 값이 모두 스칼라인 YAML 파일을 읽습니다.
// 중첩 매핑이나 시퀀스는 프롬프트로 쓸 수 없으므로 오류입니다. null 은 빈 문자열로 둡니다.
func LoadFile(fsys fs.FS, filePath string) (File, error) {
	data, err := fs.ReadFile(fsys, filePath)
	if err != nil {
		return nil, fmt.Errorf("read prompt file: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse prompt yaml %s: %w", filePath, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return File{}, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("prompt yaml %s: top level must be a mapping", filePath)
	}

	file := make(File, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("prompt yaml %s: field %q must be a string (line %d)", filePath, key.Value, value.Line)
		}
		if value.Tag == "!!null" {
			file[key.Value] = ""
			continue
		}
		file[key.Value] = value.Value
	}

	if system := file["system"]; strings.TrimSpace(system) != "" {
		if err := ValidateSystemStatic(filePath, system); err != nil {
			return nil, err
		}
	}
	return file, nil
}

// LoadDir 는 dir 바로 아래의 .yml/.yaml 파일을 확장자를 뗀 파일명으로 묶어 읽는다.
func LoadDir(fsys fs.FS, dir string) (map[string]File, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read prompt dir: %w", err)
	}

	files := make(map[string]File, len(entries))
	for _, entry := range entries {
		ext := path.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yml" && ext != ".yaml") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ext)
		if _, dup := files[name]; dup {
			return nil, fmt.Errorf("duplicate prompt name %q in %s", name, dir)
		}
		file, err := LoadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		files[name] = file
	}
	return files, nil
}
