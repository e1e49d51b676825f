package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"
	"time"

	"class-scheduling/internal/csvio"
	"class-scheduling/internal/milp"
	"class-scheduling/internal/model"

	"github.com/samber/lo"
)

var (
	validSolvers = []string{"glpk", "glpsol", "gophersat"}
	solvers      = map[string]func() milp.Solver{
		"glpk":      milp.NewGlpkSolver,
		"glpsol":    milp.NewGlpsolSolver,
		"gophersat": milp.NewGophersatSolver,
	}
)

func main() {
	// Define arguments
	filePathPtr := flag.String("file", "", "Path to a JSON dataset file")
	csvDirPtr := flag.String("csv", "", "Path to a directory holding the CSV dataset files; ignored when -file is set")
	solverPtr := flag.String("solver", "glpk", "MILP solver to use. Allowed values are: \"glpk\", \"glpsol\", \"gophersat\", where \"glpk\" is the default")
	timeoutPtr := flag.Uint("timeout", 120, "Solve timeout in seconds")
	outFilePathPtr := flag.String("out", "", "Path to the file where the timetable will be written as JSON; if empty, only the table is printed")
	flag.Parse()
	filePath := *filePathPtr
	csvDir := *csvDirPtr
	solverStr := strings.ToLower(*solverPtr)
	outFile := *outFilePathPtr

	// Validate arguments
	if !slices.Contains(validSolvers, solverStr) {
		log.Fatalf("%v is not a valid solver", solverStr)
	} else if filePath == "" && csvDir == "" {
		log.Fatal("an input file or a csv directory must be specified")
	}

	// Extract input
	var input model.RawDataset
	var err error
	if filePath != "" {
		input, err = model.InputFromFile(filePath)
	} else {
		input, err = csvio.LoadDataset(csvDir)
	}
	if err != nil {
		log.Fatalf("cannot parse input: %v", err)
	}

	data, err := model.NewNormalizer().Normalize(input)
	if err != nil {
		log.Fatalf("cannot normalize input: %v", err)
	}

	// Initialize engines
	solver := solvers[solverStr]()
	scheduler := model.NewScheduler(solver)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(*timeoutPtr)*time.Second)
	defer cancel()

	// Build timetable
	schedules, err := scheduler.Schedule(ctx, data)
	if errors.Is(err, model.ErrInfeasibleModel) {
		fmt.Println("The instance has no feasible timetable")
		os.Exit(20)
	} else if err != nil {
		log.Fatalf("an error occurred during timetable construction: %v", err)
	}

	// Verify timetable correctness
	if !scheduler.Verify(schedules, data) {
		log.Fatal("the produced timetable violates a scheduling rule")
	}

	printTimetable(schedules, data)

	if outFile != "" {
		payload, err := json.MarshalIndent(schedules, "", "  ")
		if err != nil {
			log.Fatalf("an error occurred while building output json: %v", err)
		}
		if strings.HasSuffix(outFile, ".csv") {
			err = csvio.ExportSchedules(schedules, outFile)
		} else {
			err = os.WriteFile(outFile, payload, 0666)
		}
		if err != nil {
			log.Fatalf("an error occurred while writing to the output file: %v", err)
		}
	}
}

func printTimetable(schedules []model.Schedule, data model.Dataset) {
	days := lo.KeyBy(data.Days, func(day model.Day) uint64 { return day.ID })
	sessions := lo.KeyBy(data.Sessions, func(session model.Session) uint64 { return session.ID })

	sorted := slices.Clone(schedules)
	slices.SortFunc(sorted, func(a, b model.Schedule) int {
		if a.ScheduleDayID != b.ScheduleDayID {
			return int(a.ScheduleDayID) - int(b.ScheduleDayID)
		}
		if a.ScheduleSessionID != b.ScheduleSessionID {
			return int(a.ScheduleSessionID) - int(b.ScheduleSessionID)
		}
		return int(a.RoomID) - int(b.RoomID)
	})

	fmt.Printf("%-12v %-8v %-8v %-8v\n", "Day", "Session", "Room", "Unit")
	for _, schedule := range sorted {
		fmt.Printf("%-12v %-8v %-8v %-8v\n",
			days[schedule.ScheduleDayID].Name,
			sessions[schedule.ScheduleSessionID].Number,
			schedule.RoomID,
			schedule.ClassLecturerID)
	}
}
