package lessonhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bennettdavid04/simply-invest/internal/domain"
	"github.com/bennettdavid04/simply-invest/pkg/dto"
	"github.com/bennettdavid04/simply-invest/pkg/logger"
)

type lessonService interface {
	Lessons() []domain.Lesson
	Lesson(id int) (*domain.Lesson, error)
}

type LessonHandler struct {
	srv lessonService
}

func New(srv lessonService) *LessonHandler {
	return &LessonHandler{
		srv: srv,
	}
}

// Lessons lists the catalog without bodies; a lesson is fetched individually
// to read it.
func (h LessonHandler) Lessons(w http.ResponseWriter, r *http.Request) {
	lessons := h.srv.Lessons()

	dtos := make([]dto.Lesson, len(lessons))
	for i, lesson := range lessons {
		dtos[i] = dto.Lesson{
			ID:      lesson.ID,
			Title:   lesson.Title,
			Summary: lesson.Summary,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		logger.Log.Error("error while encoding lessons to JSON", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
}

func (h LessonHandler) Lesson(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		logger.Log.Warn("invalid lesson ID", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	lesson, err := h.srv.Lesson(id)
	if err != nil {
		if errors.Is(err, domain.ErrLessonNotFound) {
			http.Error(w, "lesson not found", http.StatusNotFound)
			return
		}
		logger.Log.Error("error while fetching lesson", logger.Int("id", id), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	resp := dto.Lesson{
		ID:      lesson.ID,
		Title:   lesson.Title,
		Summary: lesson.Summary,
		Body:    lesson.Body,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Log.Error("error while encoding lesson to JSON", logger.Int("id", id), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
}
