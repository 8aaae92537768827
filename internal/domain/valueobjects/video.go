package valueobjects

import "encoding/base64"

type VideoData struct {
	data     []byte
	mimeType string
}

func NewVideoData(data []byte, mimeType string) *VideoData {
	if mimeType == "" {
		mimeType = "video/mp4"
	}
	return &VideoData{data: data, mimeType: mimeType}
}

func (v *VideoData) Data() []byte {
	return v.data
}

func (v *VideoData) MimeType() string {
	return v.mimeType
}

func (v *VideoData) Size() int {
	return len(v.data)
}

func (v *VideoData) ToBase64() string {
	return base64.StdEncoding.EncodeToString(v.data)
}
