package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"class-scheduling/config"
	"class-scheduling/internal/gateway"
	"class-scheduling/internal/model"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Archive keeps a JSON copy of every generated timetable in object storage,
// one object per solve, for audit and replay.
type Archive struct {
	client *minio.Client
	bucket string
}

func New(cfg *config.Config) (*Archive, error) {
	client, err := minio.New(cfg.MinIOEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIOAccessKey, cfg.MinIOSecretKey, ""),
		Secure: cfg.MinIOUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &Archive{client: client, bucket: cfg.MinIOBucket}, nil
}

// StoreSchedules uploads one timetable under a period-scoped, timestamped
// key and returns the object name.
func (archive *Archive) StoreSchedules(ctx context.Context, params gateway.FetchParams, schedules []model.Schedule) (string, error) {
	payload, err := json.Marshal(schedules)
	if err != nil {
		return "", err
	}

	objectName := fmt.Sprintf("schedules/%d/%d/%d/%d/%s.json",
		params.DepartmentID, params.CurriculumID, params.SemesterTypeID, params.AcademicPeriodID,
		time.Now().UTC().Format("20060102T150405Z"))

	_, err = archive.client.PutObject(ctx, archive.bucket, objectName,
		bytes.NewReader(payload), int64(len(payload)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}
	return objectName, nil
}
