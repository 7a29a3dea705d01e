package model

type NoticeVariant string

const (
	NoticeSuccess NoticeVariant = "success"
	NoticeError   NoticeVariant = "error"
)

// Notice is a short user-facing message, rendered by clients as a toast.
type Notice struct {
	Variant NoticeVariant `json:"variant"`
	Title   string        `json:"title"`
	Message string        `json:"message"`
}
