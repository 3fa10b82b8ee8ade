//go:build cgo

package theme

type Typography struct {
	Title      int32
	Header     int32
	Body       int32
	Small      int32
	Log        int32
	LineFactor float32
}

var Type = Typography{
	Title:      34,
	Header:     22,
	Body:       19,
	Small:      16,
	Log:        17,
	LineFactor: 1.45,
}
