package entities

// GeneratedVideo describes one output of a completed operation. The URI is
// fetchable once the API key is appended as an access credential.
type GeneratedVideo struct {
	uri      string
	mimeType string
}

func NewGeneratedVideo(uri string, mimeType string) *GeneratedVideo {
	return &GeneratedVideo{uri: uri, mimeType: mimeType}
}

func (v *GeneratedVideo) URI() string {
	return v.uri
}

func (v *GeneratedVideo) MimeType() string {
	return v.mimeType
}

// GenerationOperation is the handle of an in-flight or completed remote job.
// The vendor handle is carried opaquely so it can be round-tripped to the
// status endpoint without the domain knowing the SDK types.
type GenerationOperation struct {
	handle any
	done   bool
	videos []*GeneratedVideo
}

func NewGenerationOperation(handle any, done bool, videos []*GeneratedVideo) *GenerationOperation {
	return &GenerationOperation{
		handle: handle,
		done:   done,
		videos: videos,
	}
}

func (o *GenerationOperation) Handle() any {
	return o.handle
}

func (o *GenerationOperation) Done() bool {
	return o.done
}

func (o *GenerationOperation) Videos() []*GeneratedVideo {
	return o.videos
}

func (o *GenerationOperation) HasVideos() bool {
	return len(o.videos) > 0
}
