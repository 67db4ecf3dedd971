package post

const (
	CodeInvalidInput   = "invalid_input"
	CodeNotFound       = "post_not_found"
	CodeForbidden      = "not_post_author"
	CodeAuthorNotFound = "author_not_found"
	CodeStorage        = "post_error"
)
