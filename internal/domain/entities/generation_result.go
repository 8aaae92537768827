package entities

import "github.com/alexdo83/Generate-videos-with-Veo-3/internal/domain/valueobjects"

type GenerationResult struct {
	requestID GenerationRequestID
	video     *valueobjects.VideoData
}

func NewGenerationResult(requestID GenerationRequestID, video *valueobjects.VideoData) *GenerationResult {
	return &GenerationResult{
		requestID: requestID,
		video:     video,
	}
}

func (r *GenerationResult) RequestID() GenerationRequestID {
	return r.requestID
}

func (r *GenerationResult) Video() *valueobjects.VideoData {
	return r.video
}

func (r *GenerationResult) HasVideo() bool {
	return r.video != nil && r.video.Size() > 0
}
