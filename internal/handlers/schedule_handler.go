// internal/handlers/schedule_handler.go

package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Ivan-49/FirstFullStak/internal/dateutil"
	"github.com/Ivan-49/FirstFullStak/internal/schedule"
	"github.com/Ivan-49/FirstFullStak/models"
)

// scheduleResponse собирает ответ вида
// {date, notes, lessons: [{id, lesson_number, subject, teacher, room, files}]}.
func (h *Handler) scheduleResponse(sd *models.ScheduleDate, lessons []models.Lesson) (gin.H, error) {
	out := make([]gin.H, 0, len(lessons))
	for _, l := range lessons {
		attached, err := h.Files.ListForLesson(l.ID)
		if err != nil {
			return nil, err
		}
		fileIDs := make([]uint, 0, len(attached))
		for _, f := range attached {
			fileIDs = append(fileIDs, f.ID)
		}
		out = append(out, gin.H{
			"id":            l.ID,
			"lesson_number": l.LessonNumber,
			"subject":       l.Subject,
			"teacher":       l.Teacher,
			"room":          l.Room,
			"files":         fileIDs,
		})
	}
	return gin.H{
		"date":    dateutil.Format(sd.Date),
		"notes":   sd.Notes,
		"lessons": out,
	}, nil
}

// GetSchedule возвращает расписание дня. Сама дата создаётся лениво,
// но пары здесь не материализуются — для нового дня список пуст.
func (h *Handler) GetSchedule(c *gin.Context) {
	date, err := dateutil.Parse(c.Param("date"))
	if err != nil {
		respondError(c, err)
		return
	}

	sd, err := h.Schedule.GetOrCreateDate(date)
	if err != nil {
		respondError(c, err)
		return
	}
	lessons, err := h.Schedule.GetLessons(sd.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp, err := h.scheduleResponse(sd, lessons)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateSchedule создаёт (или возвращает) день с полным набором из
// восьми пар-заготовок.
func (h *Handler) CreateSchedule(c *gin.Context) {
	date, err := dateutil.Parse(c.Param("date"))
	if err != nil {
		respondError(c, err)
		return
	}

	sd, lessons, err := h.Schedule.EnsureFullSchedule(date)
	if err != nil {
		respondError(c, err)
		return
	}

	resp, err := h.scheduleResponse(sd, lessons)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// NotesInput — новые заметки дня.
type NotesInput struct {
	Notes string `json:"notes" form:"notes"`
}

// UpdateNotes обновляет заметки дня расписания.
func (h *Handler) UpdateNotes(c *gin.Context) {
	date, err := dateutil.Parse(c.Param("date"))
	if err != nil {
		respondError(c, err)
		return
	}

	var in NotesInput
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректное тело запроса"})
		return
	}

	sd, err := h.Schedule.GetOrCreateDate(date)
	if err != nil {
		respondError(c, err)
		return
	}
	sd, err = h.Schedule.UpdateNotes(sd.ID, in.Notes)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"date": dateutil.Format(sd.Date), "notes": in.Notes})
}

// ListDates — последние даты расписания (по убыванию, не более limit).
func (h *Handler) ListDates(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	dates, err := h.Schedule.ListRecentDates(limit)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]gin.H, 0, len(dates))
	for _, d := range dates {
		out = append(out, gin.H{"date": dateutil.Format(d.Date), "notes": d.Notes})
	}
	c.JSON(http.StatusOK, out)
}

// UpdateLesson — частичное обновление пары: поле, отсутствующее в запросе,
// сохранённое значение не затирает.
func (h *Handler) UpdateLesson(c *gin.Context) {
	lessonID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный id пары"})
		return
	}

	var upd schedule.LessonUpdate
	if err := c.ShouldBind(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректное тело запроса"})
		return
	}

	lesson, err := h.Schedule.UpdateLesson(lessonID, upd)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":            lesson.ID,
		"lesson_number": lesson.LessonNumber,
		"subject":       lesson.Subject,
		"teacher":       lesson.Teacher,
		"room":          lesson.Room,
	})
}

// DeleteLesson удаляет пару вместе со всеми её файлами. Сначала каскад
// файлов (контракт «содержимое, потом запись»); если хоть один файл
// удалить не удалось — пара остаётся.
func (h *Handler) DeleteLesson(c *gin.Context) {
	lessonID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный id пары"})
		return
	}

	if _, err := h.Schedule.GetLesson(lessonID); err != nil {
		respondError(c, err)
		return
	}
	if err := h.Files.DeleteAllForLesson(lessonID); err != nil {
		respondError(c, err)
		return
	}
	if err := h.Schedule.DeleteLesson(lessonID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Пара и файлы удалены"})
}

func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	return uint(id), err
}
