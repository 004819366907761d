package services

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/kurs-wjo/wjo_api/dto"
	"github.com/kurs-wjo/wjo_api/shared"
)

// MediaService stores question illustrations in object storage. Diagrams
// (load charts, control panels) are the only media the bank carries.
type MediaService struct {
	context.DefaultService
	minioSvc *MinIOService
	baseURL  string
}

const MEDIA_SVC = "media_svc"

func (svc MediaService) Id() string {
	return MEDIA_SVC
}

func (svc *MediaService) Configure(ctx *context.Context) error {
	svc.baseURL = os.Getenv("BASE_URL")
	if svc.baseURL == "" {
		svc.baseURL = "http://localhost:8000"
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *MediaService) Start() error {
	svc.minioSvc = svc.Service(MINIO_SVC).(*MinIOService)
	return nil
}

// UploadQuestionImage validates and stores one question illustration,
// returning the URL to put on the question row.
func (svc *MediaService) UploadQuestionImage(questionID string, file *multipart.FileHeader) (*dto.MediaUploadResponse, error) {
	if !svc.isValidImageFile(file.Filename) {
		return nil, shared.NewBadRequestError(nil, "Invalid image file format. Supported: JPG, PNG, WEBP")
	}

	if file.Size > 5*1024*1024 {
		return nil, shared.NewBadRequestError(nil, "Image file too large. Maximum size: 5MB")
	}

	ext := filepath.Ext(file.Filename)
	fileName := fmt.Sprintf("%s_%d%s", questionID, time.Now().Unix(), ext)
	objectName := fmt.Sprintf("questions/%s", fileName)

	src, err := file.Open()
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to open uploaded file")
	}
	defer src.Close()

	uploadInfo, err := svc.minioSvc.UploadFile(objectName, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to upload file to storage")
	}

	// Question images are long lived; serve them via the public bucket path
	// rather than a short presigned URL.
	fileURL := fmt.Sprintf("%s/%s/%s", svc.baseURL, svc.minioSvc.GetBucketName(), objectName)

	log.Printf("Successfully uploaded file %s to MinIO: %s", fileName, uploadInfo.Key)

	return &dto.MediaUploadResponse{
		URL:      fileURL,
		FileName: fileName,
		FileType: "image",
		FileSize: file.Size,
	}, nil
}

func (svc *MediaService) isValidImageFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	validExts := []string{".jpg", ".jpeg", ".png", ".webp", ".gif"}

	for _, validExt := range validExts {
		if ext == validExt {
			return true
		}
	}
	return false
}
