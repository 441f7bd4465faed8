package gallery

import (
	"context"
	"time"

	"github.com/fhuszti/showcase-ms-go/internal/logger"
	"github.com/fhuszti/showcase-ms-go/internal/model"
	"github.com/fhuszti/showcase-ms-go/internal/port"
	"github.com/fhuszti/showcase-ms-go/internal/uuid"
)

type uploadLinkGeneratorSrv struct {
	repo          port.MediaRepository
	strg          port.Storage
	stagingBucket string
	genID         uuid.Gen
	now           func() time.Time
}

func NewUploadLinkGenerator(repo port.MediaRepository, strg port.Storage, stagingBucket string, genID uuid.Gen) port.UploadLinkGenerator {
	return &uploadLinkGeneratorSrv{repo: repo, strg: strg, stagingBucket: stagingBucket, genID: genID, now: time.Now}
}

// GenerateUploadLink registers a pending media and returns a presigned PUT
// link into the staging bucket. The object key is the media ID.
func (s *uploadLinkGeneratorSrv) GenerateUploadLink(ctx context.Context, in port.GenerateUploadLinkInput) (port.GenerateUploadLinkOutput, error) {
	id := s.genID()
	now := s.now().UTC()
	media := &model.Media{
		ID:               id,
		ObjectKey:        id.String(),
		Bucket:           s.stagingBucket,
		OriginalFilename: in.Name,
		Status:           model.MediaStatusPending,
		Metadata:         model.Metadata{},
		UploadedAt:       now,
		UpdatedAt:        now,
	}

	if err := s.repo.Create(ctx, media); err != nil {
		return port.GenerateUploadLinkOutput{}, err
	}

	url, err := s.strg.GeneratePresignedUploadURL(ctx, s.stagingBucket, media.ObjectKey, UploadLinkTTL)
	if err != nil {
		return port.GenerateUploadLinkOutput{}, err
	}
	logger.Infof(ctx, "upload link generated for media #%s", id)

	return port.GenerateUploadLinkOutput{
		ID:  media.ID,
		URL: url,
	}, nil
}
