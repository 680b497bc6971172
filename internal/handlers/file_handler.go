package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"filehub-api/internal/apperr"
	"filehub-api/internal/models"
	"filehub-api/internal/requests"
	"filehub-api/internal/services"
	"filehub-api/internal/utils"
)

// FileHandler handles file-related HTTP requests
type FileHandler struct {
	files    *services.FileService
	sessions *services.SessionService
}

func NewFileHandler(files *services.FileService, sessions *services.SessionService) *FileHandler {
	return &FileHandler{files: files, sessions: sessions}
}

// PostUpload creates a folder, file or image record for the caller.
func (h *FileHandler) PostUpload(c *fiber.Ctx) error {
	userID, err := resolveUser(h.sessions, c)
	if err != nil {
		return err
	}

	var input requests.UploadFileRequest
	if err := c.BodyParser(&input); err != nil {
		return apperr.BadRequest("Missing name")
	}

	file, err := h.files.Upload(userID, input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(file)
}

// GetShow returns one of the caller's records by id.
func (h *FileHandler) GetShow(c *fiber.Ctx) error {
	userID, err := resolveUser(h.sessions, c)
	if err != nil {
		return err
	}

	file, err := h.files.GetForOwner(userID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(file)
}

// GetIndex lists the caller's records under a parent folder, the whole
// listing by default or a single page when the page query is present.
func (h *FileHandler) GetIndex(c *fiber.Ctx) error {
	userID, err := resolveUser(h.sessions, c)
	if err != nil {
		return err
	}

	parentID := c.Query("parentId", models.RootParentID)

	if pageQuery := c.Query("page"); pageQuery != "" {
		page, err := strconv.Atoi(pageQuery)
		if err != nil {
			page = 0
		}
		files, err := h.files.ListChildrenPage(userID, parentID, page)
		if err != nil {
			return err
		}
		return c.JSON(files)
	}

	files, err := h.files.ListChildren(userID, parentID)
	if err != nil {
		return err
	}
	return c.JSON(files)
}

// PutPublish makes one of the caller's records public.
func (h *FileHandler) PutPublish(c *fiber.Ctx) error {
	return h.setVisibility(c, true)
}

// PutUnpublish makes one of the caller's records private again.
func (h *FileHandler) PutUnpublish(c *fiber.Ctx) error {
	return h.setVisibility(c, false)
}

func (h *FileHandler) setVisibility(c *fiber.Ctx, isPublic bool) error {
	userID, err := resolveUser(h.sessions, c)
	if err != nil {
		return err
	}

	file, err := h.files.SetVisibility(userID, c.Params("id"), isPublic)
	if err != nil {
		return err
	}
	return c.JSON(file)
}

// GetData serves the content of a record, or a resized variant when a
// known size is requested. The token is optional here: an invalid or
// missing token reads as an anonymous caller, who can still fetch
// public files.
func (h *FileHandler) GetData(c *fiber.Ctx) error {
	var callerID *uuid.UUID
	if token := c.Get(HeaderToken); token != "" {
		if userID, found, err := h.sessions.Resolve(token); err == nil && found {
			callerID = &userID
		}
	}

	size, err := strconv.Atoi(c.Query("size"))
	if err != nil {
		size = 0
	}

	data, file, err := h.files.ReadContent(callerID, c.Params("id"), size)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, utils.ContentTypeFor(file.Name))
	return c.Send(data)
}
