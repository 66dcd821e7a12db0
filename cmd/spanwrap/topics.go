package spanwrap

import (
	"embed"
	"io/fs"
)

//go:embed topics/*.md
var topicsFS embed.FS

// helpTopics returns the embedded topic files rooted at the topics directory.
func helpTopics() fs.FS {
	sub, err := fs.Sub(topicsFS, "topics")
	if err != nil {
		panic("embedded help topics: " + err.Error())
	}
	return sub
}
