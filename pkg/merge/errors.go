package merge

import "errors"

// ErrInvalidFrontmatter indicates invalid YAML frontmatter.
var ErrInvalidFrontmatter = errors.New("invalid frontmatter")
