package services

import (
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"filehub-api/internal/apperr"
	"filehub-api/internal/models"
	"filehub-api/internal/requests"
)

// FileService owns the file catalog: a forest of folders holding file
// and image records, plus the upload and content read paths built on
// top of it.
type FileService struct {
	db         *gorm.DB
	blobs      *BlobService
	queue      JobQueue
	pageSize   int
	thumbSizes []int
}

func NewFileService(db *gorm.DB, blobs *BlobService, queue JobQueue, pageSize int, thumbSizes []int) *FileService {
	return &FileService{db: db, blobs: blobs, queue: queue, pageSize: pageSize, thumbSizes: thumbSizes}
}

// Upload validates the request, persists the content for non-folder
// types, inserts the catalog record and, for images, enqueues a
// thumbnail job. The record insert happens before the enqueue so a
// dequeued job always references an existing record; an enqueue
// failure leaves the record in place with thumbnails to follow never.
func (s *FileService) Upload(ownerID uuid.UUID, req requests.UploadFileRequest) (*models.File, error) {
	if req.Name == "" {
		return nil, apperr.BadRequest("Missing name")
	}
	if !models.ValidType(req.Type) {
		return nil, apperr.BadRequest("Invalid type")
	}

	parentID := req.ParentID
	if parentID == "" {
		parentID = models.RootParentID
	}
	if parentID != models.RootParentID {
		parent, err := s.getByID(parentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.BadRequest("Parent not found")
			}
			return nil, apperr.Internal("Failed to fetch parent")
		}
		if !parent.IsFolder() {
			return nil, apperr.BadRequest("Parent is not a folder")
		}
	}

	var localPath string
	if req.Type != models.TypeFolder {
		if req.Data == "" {
			return nil, apperr.BadRequest("Missing data")
		}
		path, err := s.blobs.Write(req.Data)
		if err != nil {
			return nil, err
		}
		localPath = path
	}

	file := &models.File{
		UserID:    ownerID,
		Name:      req.Name,
		Type:      req.Type,
		ParentID:  parentID,
		IsPublic:  req.IsPublic,
		LocalPath: localPath,
	}
	if err := s.db.Create(file).Error; err != nil {
		return nil, apperr.Internal("Failed to create file")
	}

	if file.Type == models.TypeImage {
		if err := s.queue.EnqueueThumbnail(file.ID, ownerID); err != nil {
			log.Printf("failed to enqueue thumbnail job for file %s: %v", file.ID, err)
		}
	}

	return file, nil
}

func (s *FileService) getByID(id string) (*models.File, error) {
	fileID, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	var file models.File
	if err := s.db.First(&file, "id = ?", fileID).Error; err != nil {
		return nil, err
	}
	return &file, nil
}

// GetByID returns the record with the given id regardless of owner.
func (s *FileService) GetByID(id string) (*models.File, error) {
	file, err := s.getByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound()
		}
		return nil, apperr.Internal("Failed to fetch file")
	}
	return file, nil
}

// GetForOwner returns the record only if it belongs to ownerID, hiding
// other users' records behind a 404.
func (s *FileService) GetForOwner(ownerID uuid.UUID, id string) (*models.File, error) {
	fileID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperr.NotFound()
	}
	var file models.File
	if err := s.db.Where("id = ? AND user_id = ?", fileID, ownerID).First(&file).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound()
		}
		return nil, apperr.Internal("Failed to fetch file")
	}
	return &file, nil
}

// ListChildren returns every record of ownerID under parentID in
// insertion order.
func (s *FileService) ListChildren(ownerID uuid.UUID, parentID string) ([]models.File, error) {
	var files []models.File
	err := s.db.
		Where("user_id = ? AND parent_id = ?", ownerID, parentID).
		Order("created_at ASC").
		Find(&files).Error
	if err != nil {
		return nil, apperr.Internal("Failed to list files")
	}
	return files, nil
}

// ListChildrenPage returns the zero-based page of ListChildren with the
// configured fixed page size. Out-of-range pages yield an empty list.
func (s *FileService) ListChildrenPage(ownerID uuid.UUID, parentID string, page int) ([]models.File, error) {
	if page < 0 {
		page = 0
	}
	var files []models.File
	err := s.db.
		Where("user_id = ? AND parent_id = ?", ownerID, parentID).
		Order("created_at ASC").
		Offset(page * s.pageSize).
		Limit(s.pageSize).
		Find(&files).Error
	if err != nil {
		return nil, apperr.Internal("Failed to list files")
	}
	return files, nil
}

// SetVisibility flips the isPublic flag on one of ownerID's records and
// returns the updated record. The operation is idempotent.
func (s *FileService) SetVisibility(ownerID uuid.UUID, id string, isPublic bool) (*models.File, error) {
	file, err := s.GetForOwner(ownerID, id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(file).Update("is_public", isPublic).Error; err != nil {
		return nil, apperr.Internal("Failed to update file")
	}
	file.IsPublic = isPublic
	return file, nil
}

// Count returns the number of catalog records.
func (s *FileService) Count() (int64, error) {
	var count int64
	if err := s.db.Model(&models.File{}).Count(&count).Error; err != nil {
		return 0, apperr.Internal("Failed to count files")
	}
	return count, nil
}

// ReadContent resolves the record by id alone, authorizes the caller
// (nil callerID means anonymous) and returns the requested bytes. A
// size matching one of the thumbnail width classes selects the derived
// variant; any other size falls back to the original content.
func (s *FileService) ReadContent(callerID *uuid.UUID, id string, size int) ([]byte, *models.File, error) {
	file, err := s.GetByID(id)
	if err != nil {
		return nil, nil, err
	}

	if !file.IsPublic {
		if callerID == nil || callerID.String() != file.UserID.String() {
			return nil, nil, apperr.Forbidden()
		}
	}

	if file.IsFolder() {
		return nil, nil, apperr.BadRequest("A folder doesn't have content")
	}

	path := file.LocalPath
	for _, class := range s.thumbSizes {
		if size == class {
			path = s.blobs.VariantPath(path, size)
			break
		}
	}

	data, err := s.blobs.Read(path)
	if err != nil {
		if errors.Is(err, ErrBlobNotFound) {
			return nil, nil, apperr.NotFound()
		}
		return nil, nil, err
	}
	return data, file, nil
}
