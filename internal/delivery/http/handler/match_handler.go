package handler

import (
	"strconv"
	"strings"

	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/matching"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type MatchHandler struct {
	uc usecase.MatchUsecase
}

func NewMatchHandler(uc usecase.MatchUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) GetMatches(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	limit, err := queryInt(c, "limit", 20)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid limit", err)
	}
	offset, err := queryInt(c, "offset", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid offset", err)
	}
	minScore, err := queryFloat(c, "min_score", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid min_score", err)
	}

	page, err := h.uc.Rank(c.Context(), userID, usecase.MatchParams{
		Limit:    limit,
		Offset:   offset,
		MinScore: minScore,
	})
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, matchPageResponse(page))
}

func matchPageResponse(page usecase.MatchPage) dto.MatchPageResponse {
	out := dto.MatchPageResponse{
		Matches:  make([]dto.MatchItemResponse, 0, len(page.Matches)),
		Total:    page.Total,
		Fallback: page.Fallback,
	}
	for _, m := range page.Matches {
		out.Matches = append(out.Matches, matchItemResponse(m))
	}
	return out
}

func matchItemResponse(m matching.ScoredMatch) dto.MatchItemResponse {
	return dto.MatchItemResponse{
		Job: dto.JobResponse{
			ID:          m.Job.ID,
			Title:       m.Job.Title,
			Company:     m.Job.Company,
			Location:    m.Job.Location,
			Description: m.Job.Description,
			CreatedAt:   m.Job.CreatedAt,
		},
		Score: m.Score,
		Components: dto.MatchComponentsResponse{
			BM25:       m.Components.BM25,
			Semantic:   m.Components.Semantic,
			Skill:      m.Components.Skill,
			Location:   m.Components.Location,
			Experience: m.Components.Experience,
		},
		SkillMatched:    m.SkillMatched,
		LocationMatched: m.LocationMatched,
	}
}

func queryInt(c fiber.Ctx, key string, def int) (int, error) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return def, nil
	}
	return strconv.Atoi(s)
}

func queryFloat(c fiber.Ctx, key string, def float64) (float64, error) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return def, nil
	}
	return strconv.ParseFloat(s, 64)
}
