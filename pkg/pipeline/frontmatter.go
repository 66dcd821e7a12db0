package pipeline

import (
	"bytes"

	"github.com/arthur-debert/spanwrap/pkg/errors"
	"gopkg.in/yaml.v3"
)

// SplitFrontMatter separates a leading YAML block delimited by "---" lines
// from the rest of src. The closing delimiter may also be "...". Sources
// without a complete block are returned unchanged with nil metadata.
func SplitFrontMatter(src []byte) (map[string]interface{}, []byte, error) {
	first, rest, ok := cutLine(src)
	if !ok || !isDelimiter(first, "---") {
		return nil, src, nil
	}

	var block []byte
	for ok {
		var line []byte
		line, rest, ok = cutLine(rest)
		if isDelimiter(line, "---") || isDelimiter(line, "...") {
			meta := map[string]interface{}{}
			if err := yaml.Unmarshal(block, &meta); err != nil {
				return nil, nil, errors.Wrap(err, errors.ErrParseFrontMatter, "invalid front matter")
			}
			return meta, rest, nil
		}
		block = append(block, line...)
		block = append(block, '\n')
	}

	return nil, src, nil
}

func isDelimiter(line []byte, delim string) bool {
	return string(bytes.TrimRight(line, " \t")) == delim
}

// cutLine splits off the first line without its line ending. ok is false
// when src has no newline, in which case line is all of src.
func cutLine(src []byte) (line, rest []byte, ok bool) {
	i := bytes.IndexByte(src, '\n')
	if i < 0 {
		return src, nil, false
	}
	return bytes.TrimSuffix(src[:i], []byte("\r")), src[i+1:], true
}
