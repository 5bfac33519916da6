package handler

import (
	"errors"

	"profile-sync/internal/delivery/http/dto"
	"profile-sync/internal/delivery/http/middleware"
	"profile-sync/internal/pkg/response"
	"profile-sync/internal/usecase"
	ucprofile "profile-sync/internal/usecase/profile"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

// updateProfileRequest is the POST /api/users payload: skills already split
// into tokens, industryKey already composed by the client.
type updateProfileRequest struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	IndustryKey     *string  `json:"industryKey"`
	ExperienceYears *int     `json:"experienceYears"`
	Skills          []string `json:"skills"`
	Bio             *string  `json:"bio"`
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/users", h.GetProfile)
	r.Post("/users", h.UpdateProfile)
	r.Get("/industries", h.ListIndustries)
}

// GetProfile returns the caller's record, defaulted when none is stored yet.
// The body is the record itself; only errors use the response envelope.
func (h *ProfileHandler) GetProfile(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	rec, err := h.uc.GetProfile(c.Context(), userID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewProfileResponse(rec))
}

func (h *ProfileHandler) UpdateProfile(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req updateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	rec, err := h.uc.UpdateProfile(c.Context(), userID, ucprofile.UpdateInput{
		Name:            req.Name,
		Email:           req.Email,
		IndustryKey:     req.IndustryKey,
		ExperienceYears: req.ExperienceYears,
		Skills:          req.Skills,
		Bio:             req.Bio,
	})
	if err != nil {
		var verr *ucprofile.ValidationError
		if errors.As(err, &verr) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Validation failed", verr.Fields, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewProfileResponse(rec))
}

func (h *ProfileHandler) ListIndustries(c fiber.Ctx) error {
	table, err := h.uc.Industries(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return c.Status(fiber.StatusOK).JSON(table)
}
