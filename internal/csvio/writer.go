package csvio

import (
	"io"
	"os"

	"class-scheduling/internal/model"

	"github.com/gocarina/gocsv"
)

type scheduleRow struct {
	ClassLecturerID   uint64 `csv:"classLecturerId"`
	RoomID            uint64 `csv:"roomId"`
	ScheduleDayID     uint64 `csv:"scheduleDayId"`
	ScheduleSessionID uint64 `csv:"scheduleSessionId"`
}

func scheduleRows(schedules []model.Schedule) []scheduleRow {
	rows := make([]scheduleRow, 0, len(schedules))
	for _, schedule := range schedules {
		rows = append(rows, scheduleRow{
			ClassLecturerID:   schedule.ClassLecturerID,
			RoomID:            schedule.RoomID,
			ScheduleDayID:     schedule.ScheduleDayID,
			ScheduleSessionID: schedule.ScheduleSessionID,
		})
	}
	return rows
}

// WriteSchedules renders a timetable as CSV.
func WriteSchedules(schedules []model.Schedule, out io.Writer) error {
	rows := scheduleRows(schedules)
	return gocsv.Marshal(&rows, out)
}

// ExportSchedules writes a timetable to a CSV file, replacing any previous
// export at the same path.
func ExportSchedules(schedules []model.Schedule, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteSchedules(schedules, file)
}
