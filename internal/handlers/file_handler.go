// internal/handlers/file_handler.go

package handlers

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"

	"github.com/Ivan-49/FirstFullStak/internal/middleware"
)

// maxUploadBytes — потолок размера загружаемого файла (32 МБ).
const maxUploadBytes = 32 << 20

// UploadLessonFile прикрепляет файл к конкретной паре.
func (h *Handler) UploadLessonFile(c *gin.Context) {
	lessonID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный id пары"})
		return
	}
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Неверный токен"})
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Файл не передан"})
		return
	}
	if fh.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Файл слишком большой"})
		return
	}

	src, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Не удалось прочитать файл"})
		return
	}
	defer src.Close()
	content, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Не удалось прочитать файл"})
		return
	}

	file, err := h.Files.Attach(userID, lessonID, fh.Filename, content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":        file.ID,
		"filename":  file.Filename,
		"filepath":  file.Filepath,
		"size":      file.SizeBytes,
		"lesson_id": file.LessonID,
		"message":   "Файл прикреплён к паре!",
	})
}

// ListLessonFiles — файлы пары, свежие первыми.
func (h *Handler) ListLessonFiles(c *gin.Context) {
	lessonID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный id пары"})
		return
	}
	if _, err := h.Schedule.GetLesson(lessonID); err != nil {
		respondError(c, err)
		return
	}

	list, err := h.Files.ListForLesson(lessonID)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]gin.H, 0, len(list))
	for _, f := range list {
		out = append(out, gin.H{
			"id":          f.ID,
			"filename":    f.Filename,
			"filepath":    f.Filepath,
			"size":        f.SizeBytes,
			"uploaded_at": f.UploadedAt,
		})
	}
	c.JSON(http.StatusOK, out)
}

// GetFileInfo возвращает метаданные файла.
func (h *Handler) GetFileInfo(c *gin.Context) {
	fileID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный id файла"})
		return
	}

	file, err := h.Files.Get(fileID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":           file.ID,
		"filename":     file.Filename,
		"filepath":     file.Filepath,
		"size":         file.SizeBytes,
		"download_url": fmt.Sprintf("/api/files/download/%d", file.ID),
	})
}

// DownloadFile отдаёт содержимое файла. Скачивать файл может только тот,
// кто его загрузил; чужим отвечаем 404, а не 403 — нечего подтверждать
// само существование файла.
func (h *Handler) DownloadFile(c *gin.Context) {
	fileID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный id файла"})
		return
	}
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Неверный токен"})
		return
	}

	file, err := h.Files.Get(fileID)
	if err != nil {
		respondError(c, err)
		return
	}
	if file.UserID != userID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Не найдено"})
		return
	}

	_, rc, err := h.Files.Open(fileID)
	if err != nil {
		respondError(c, err)
		return
	}
	defer rc.Close()

	c.DataFromReader(http.StatusOK, file.SizeBytes, "application/octet-stream", rc, map[string]string{
		// имя в заголовке должно остаться ASCII: кириллица ломает клиентов
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", asciiName(file.Filename)),
	})
}

// DeleteFile удаляет файл (содержимое, потом запись).
func (h *Handler) DeleteFile(c *gin.Context) {
	fileID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный id файла"})
		return
	}

	if err := h.Files.Delete(fileID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Файл удалён"})
}

// asciiName приводит имя файла к безопасному ASCII-виду,
// сохраняя расширение.
func asciiName(name string) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(filepath.Base(name), ext)

	cleaned := asciiOnly(base)
	if cleaned == "" {
		cleaned = "file"
	}
	if e := asciiOnly(strings.TrimPrefix(ext, ".")); e != "" {
		cleaned += "." + e
	}
	return cleaned
}

func asciiOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' || r == '.') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
