package server

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"

	"github.com/lgbarn/san-english-go/internal/english"
	"github.com/lgbarn/san-english-go/internal/errors"
	"github.com/lgbarn/san-english-go/internal/movetext"
	"github.com/lgbarn/san-english-go/internal/output"
	"github.com/lgbarn/san-english-go/internal/translate"
)

// TranslateRequest is the body of POST /api/translate.
type TranslateRequest struct {
	SAN  string `json:"san"`
	Mode string `json:"mode"`
}

// GameRequest is the body of POST /api/game.
type GameRequest struct {
	Movetext string `json:"movetext"`
	Mode     string `json:"mode"`
}

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) translateMove(c *fiber.Ctx) error {
	var req TranslateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	mode, err := s.mode(req.Mode)
	if err != nil {
		return badRequest(c, err.Error())
	}

	r := translate.Move(req.SAN, mode)
	if r.Err != nil {
		status := fiber.StatusUnprocessableEntity
		if stderrors.Is(r.Err, errors.ErrEmptyInput) {
			status = fiber.StatusBadRequest
		}
		s.logger.Debug("translate failed", "id", requestID(c), "san", r.SAN, "error", r.Err)
		return c.Status(status).JSON(fiber.Map{"error": r.Err.Error()})
	}
	return c.JSON(output.MoveToJSON(r))
}

func (s *Server) translateGame(c *fiber.Ctx) error {
	var req GameRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	mode, err := s.mode(req.Mode)
	if err != nil {
		return badRequest(c, err.Error())
	}

	results := translate.Batch(c.UserContext(), movetext.Split(req.Movetext), translate.Options{
		Mode:       mode,
		Workers:    s.cfg.Workers,
		BufferSize: s.cfg.BufferSize,
		Logger:     s.logger.With("id", requestID(c)),
	})
	return c.JSON(output.GameToJSON(results, mode))
}

// mode resolves a request mode, falling back to the configured default.
func (s *Server) mode(name string) (english.Mode, error) {
	if name == "" {
		return s.cfg.Mode, nil
	}
	return english.ParseMode(name)
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}
