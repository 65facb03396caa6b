package document

import "errors"

// ErrRenderFailed indicates the rendering collaborator failed to produce a
// document. Row-scoped: the pipeline logs it and moves on.
var ErrRenderFailed = errors.New("failed to render document")
