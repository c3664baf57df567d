// internal/handlers/export_handler.go

package handlers

import (
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/Ivan-49/FirstFullStak/internal/dateutil"
)

// ExportSchedule выгружает расписание дня в .xlsx.
func (h *Handler) ExportSchedule(c *gin.Context) {
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

	f := excelize.NewFile()
	sheetName := "Расписание"
	index, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	f.SetCellValue(sheetName, "A1", "Расписание на "+dateutil.Format(sd.Date))
	if sd.Notes != "" {
		f.SetCellValue(sheetName, "B1", sd.Notes)
	}

	headers := []string{"№ пары", "Предмет", "Преподаватель", "Аудитория"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		f.SetCellValue(sheetName, cell, header)
	}

	for i, l := range lessons {
		row := i + 3
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), l.LessonNumber)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), l.Subject)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), l.Teacher)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), l.Room)
	}

	fileName := fmt.Sprintf("raspisanie_%s.xlsx", dateutil.Format(sd.Date))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	if err := f.Write(c.Writer); err != nil {
		slog.Error("Не удалось записать xlsx в ответ", "error", err)
	}
}
