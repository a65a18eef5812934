package controller

import (
	"notes-be/internal/dto"
	"notes-be/internal/pkg/serverutils"
	"notes-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router, authRequired fiber.Handler)
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	SetPinned(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService service.INoteService
}

func NewNoteController(noteService service.INoteService) INoteController {
	return &noteController{
		noteService: noteService,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router, authRequired fiber.Handler) {
	r.Post("/add-note", authRequired, c.Create)
	r.Put("/edit-note/:noteId", authRequired, c.Update)
	r.Get("/get-all-notes/", authRequired, c.List)
	r.Delete("/delete-note/:noteId", authRequired, c.Delete)
	r.Put("/update-note-pinned/:noteId", authRequired, c.SetPinned)
	r.Get("/search-notes", authRequired, c.Search)
}

// callerUserId reads the account id the JWT middleware resolved.
func callerUserId(ctx *fiber.Ctx) (uuid.UUID, error) {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return uuid.Nil, serverutils.Unauthorized("Invalid token")
	}
	return userId, nil
}

// noteIdParam parses :noteId. An id that is not a UUID can never match an
// owned note, so it maps to not-found.
func noteIdParam(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("noteId"))
	if err != nil {
		return uuid.Nil, serverutils.NotFound("Note not found")
	}
	return id, nil
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	userId, err := callerUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Note added successfully", fiber.Map{
		"note": res,
	}))
}

func (c *noteController) Update(ctx *fiber.Ctx) error {
	userId, err := callerUserId(ctx)
	if err != nil {
		return err
	}

	noteId, err := noteIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body")
	}

	res, err := c.noteService.Update(ctx.Context(), userId, noteId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Note updated successfully", fiber.Map{
		"note": res,
	}))
}

func (c *noteController) List(ctx *fiber.Ctx) error {
	userId, err := callerUserId(ctx)
	if err != nil {
		return err
	}

	res, err := c.noteService.List(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("All notes retrieved successfully", fiber.Map{
		"notes": res,
	}))
}

func (c *noteController) SetPinned(ctx *fiber.Ctx) error {
	userId, err := callerUserId(ctx)
	if err != nil {
		return err
	}

	noteId, err := noteIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.SetPinnedRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.SetPinned(ctx.Context(), userId, noteId, *req.IsPinned)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Note updated successfully", fiber.Map{
		"note": res,
	}))
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	userId, err := callerUserId(ctx)
	if err != nil {
		return err
	}

	noteId, err := noteIdParam(ctx)
	if err != nil {
		return err
	}

	if err := c.noteService.Delete(ctx.Context(), userId, noteId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Note deleted successfully", nil))
}

func (c *noteController) Search(ctx *fiber.Ctx) error {
	userId, err := callerUserId(ctx)
	if err != nil {
		return err
	}

	queryText := ctx.Query("queryText", "")

	res, err := c.noteService.Search(ctx.Context(), userId, queryText)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Notes matching the search query retrieved successfully", fiber.Map{
		"notes": res,
	}))
}
