package model

import (
	"context"
	"testing"

	"class-scheduling/internal/milp"

	. "github.com/onsi/gomega"
)

func TestScheduleSingleUnit(t *testing.T) {
	g := NewWithT(t)

	// Arrange
	data := singleUnitDataset()
	scheduler := NewScheduler(milp.NewGlpkSolver())

	// Act
	schedules, err := scheduler.Schedule(context.Background(), data)

	// Assert: one record in the only admissible slot, wasting 10 seats
	space := NewVarSpace(data)
	problem := BuildProblem(space, data, DefaultRules())
	solution, solveErr := milp.NewGlpkSolver().Solve(context.Background(), problem)
	g.Expect(solveErr).NotTo(HaveOccurred())
	g.Expect(problem.ObjectiveValue(solution)).To(Equal(10.0))

	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(schedules).To(HaveLen(1))
	g.Expect(schedules[0].ID).To(BeNil())
	g.Expect(schedules[0].ClassLecturerID).To(Equal(uint64(1)))
	g.Expect(schedules[0].RoomID).To(Equal(uint64(1)))
	g.Expect(schedules[0].ScheduleDayID).To(Equal(uint64(1)))
	g.Expect(schedules[0].ScheduleSessionID).To(Equal(uint64(1)))
	g.Expect(scheduler.Verify(schedules, data)).To(BeTrue())
}

func TestScheduleMinimizesSeatWaste(t *testing.T) {
	g := NewWithT(t)

	// Arrange: the capacity 22 room wastes 2 seats, the capacity 30 room 10
	data := singleUnitDataset()
	data.Rooms = []Room{
		{ID: 1, Capacity: 30, Type: RoomKelas},
		{ID: 2, Capacity: 22, Type: RoomKelas},
	}
	space := NewVarSpace(data)
	problem := BuildProblem(space, data, DefaultRules())

	// Act
	solution, err := milp.NewGlpkSolver().Solve(context.Background(), problem)

	// Assert: the tighter room wins and the load indicators settle at zero
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(solution).NotTo(BeNil())
	g.Expect(problem.ObjectiveValue(solution)).To(Equal(2.0))
	g.Expect(solution.Value(space.AssignVar(0, 1, 0, 0))).To(BeNumerically("~", 1, 1e-9))
}

func TestSchedulePracticumPair(t *testing.T) {
	g := NewWithT(t)

	// Arrange: practicum twins of one class group with two Lab rooms
	data := singleUnitDataset()
	data.Rooms = []Room{
		{ID: 1, Capacity: 30, Type: RoomLab},
		{ID: 2, Capacity: 30, Type: RoomLab},
	}
	data.ClassLecturers = []ClassLecturer{
		practicumUnit(1, 4, 20, 1),
		practicumUnit(2, 4, 20, 1),
	}
	scheduler := NewScheduler(milp.NewGlpkSolver())

	// Act
	schedules, err := scheduler.Schedule(context.Background(), data)

	// Assert: same slot, distinct rooms
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(schedules).To(HaveLen(2))
	g.Expect(schedules[0].ScheduleDayID).To(Equal(schedules[1].ScheduleDayID))
	g.Expect(schedules[0].ScheduleSessionID).To(Equal(schedules[1].ScheduleSessionID))
	g.Expect(schedules[0].RoomID).NotTo(Equal(schedules[1].RoomID))
	g.Expect(scheduler.Verify(schedules, data)).To(BeTrue())
}

func TestSchedulePracticumPairSingleLab(t *testing.T) {
	g := NewWithT(t)

	// Arrange: twins need two distinct Lab rooms but only one exists
	data := singleUnitDataset()
	data.Rooms = []Room{{ID: 1, Capacity: 30, Type: RoomLab}}
	data.ClassLecturers = []ClassLecturer{
		practicumUnit(1, 4, 20, 1),
		practicumUnit(2, 4, 20, 1),
	}
	scheduler := NewScheduler(milp.NewGlpkSolver())

	// Act
	schedules, err := scheduler.Schedule(context.Background(), data)

	// Assert
	g.Expect(err).To(MatchError(ErrInfeasibleModel))
	g.Expect(schedules).To(BeNil())
}

func TestScheduleRequiredTheoryRejectsOnlineOnly(t *testing.T) {
	g := NewWithT(t)

	// Arrange: a mandatory Theory unit with nothing but a virtual room
	data := singleUnitDataset()
	data.Rooms = []Room{{ID: 1, Capacity: 30, Type: RoomOnline}}
	scheduler := NewScheduler(milp.NewGlpkSolver())

	// Act
	_, err := scheduler.Schedule(context.Background(), data)

	// Assert
	g.Expect(err).To(MatchError(ErrInfeasibleModel))
}

func TestScheduleFridayBlackout(t *testing.T) {
	g := NewWithT(t)

	// Arrange: Friday only, sessions 1 and 3
	data := singleUnitDataset()
	data.Days = []Day{{ID: 5, Name: "Jumat", Friday: true}}
	data.Sessions = []Session{{ID: 1, Number: 1}, {ID: 3, Number: 3}}
	scheduler := NewScheduler(milp.NewGlpkSolver())

	// Act
	schedules, err := scheduler.Schedule(context.Background(), data)

	// Assert: the unit dodges the blacked-out third session
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(schedules).To(HaveLen(1))
	g.Expect(schedules[0].ScheduleSessionID).To(Equal(uint64(1)))

	// With nothing but the third session left the instance is infeasible
	data.Sessions = []Session{{ID: 3, Number: 3}}
	_, err = scheduler.Schedule(context.Background(), data)
	g.Expect(err).To(MatchError(ErrInfeasibleModel))
}

func TestScheduleDailyTheoryCap(t *testing.T) {
	g := NewWithT(t)

	// Arrange: four Theory units of one lecturer, four sessions
	data := singleUnitDataset()
	data.Sessions = []Session{
		{ID: 1, Number: 1}, {ID: 2, Number: 2}, {ID: 3, Number: 3}, {ID: 4, Number: 4},
	}
	data.ClassLecturers = []ClassLecturer{
		theoryUnit(1, 11, 20, 1),
		theoryUnit(2, 12, 20, 1),
		theoryUnit(3, 13, 20, 1),
		theoryUnit(4, 14, 20, 1),
	}
	scheduler := NewScheduler(milp.NewGlpkSolver())

	// Act: one day caps the lecturer at three Theory sessions
	_, err := scheduler.Schedule(context.Background(), data)

	// Assert
	g.Expect(err).To(MatchError(ErrInfeasibleModel))

	// A second day absorbs the fourth unit
	data.Days = append(data.Days, Day{ID: 2, Name: "Selasa"})
	schedules, err := scheduler.Schedule(context.Background(), data)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(schedules).To(HaveLen(4))
	g.Expect(scheduler.Verify(schedules, data)).To(BeTrue())
}

func TestScheduleCancelledContext(t *testing.T) {
	g := NewWithT(t)

	// Arrange
	data := singleUnitDataset()
	scheduler := NewScheduler(milp.NewGlpkSolver())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Act
	_, err := scheduler.Schedule(ctx, data)

	// Assert: cancellation surfaces as a solver failure
	g.Expect(err).To(MatchError(ErrSolver))
	g.Expect(err).To(MatchError(context.Canceled))
}

func TestVerifyRejectsTamperedTimetables(t *testing.T) {
	g := NewWithT(t)

	// Arrange: a known-good single-unit timetable
	data := singleUnitDataset()
	scheduler := NewScheduler(milp.NewGlpkSolver())
	schedules, err := scheduler.Schedule(context.Background(), data)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(scheduler.Verify(schedules, data)).To(BeTrue())

	// Assert: each tampering is caught
	identity := uint64(99)
	withID := []Schedule{schedules[0]}
	withID[0].ID = &identity
	g.Expect(scheduler.Verify(withID, data)).To(BeFalse())

	duplicated := []Schedule{schedules[0], schedules[0]}
	g.Expect(scheduler.Verify(duplicated, data)).To(BeFalse())

	unknownRoom := []Schedule{schedules[0]}
	unknownRoom[0].RoomID = 42
	g.Expect(scheduler.Verify(unknownRoom, data)).To(BeFalse())

	g.Expect(scheduler.Verify(nil, data)).To(BeFalse()) // missing coverage
}

func TestVerifyRejectsIllegalRoomType(t *testing.T) {
	g := NewWithT(t)

	// Arrange: a Theory unit manually forced into the Lab room
	data := singleUnitDataset()
	data.Rooms = append(data.Rooms, Room{ID: 2, Capacity: 30, Type: RoomLab})
	scheduler := NewScheduler(milp.NewGlpkSolver())

	schedules := []Schedule{{
		ScheduleDayID:     1,
		ClassLecturerID:   1,
		ScheduleSessionID: 1,
		RoomID:            2,
	}}

	// Assert
	g.Expect(scheduler.Verify(schedules, data)).To(BeFalse())
}

func TestVerifyRejectsSplitClassGroup(t *testing.T) {
	g := NewWithT(t)

	// Arrange: two group twins placed in different sessions
	data := singleUnitDataset()
	data.Rooms = append(data.Rooms, Room{ID: 2, Capacity: 30, Type: RoomKelas})
	data.Sessions = append(data.Sessions, Session{ID: 2, Number: 2})
	data.ClassLecturers = []ClassLecturer{
		theoryUnit(1, 4, 20, 1),
		theoryUnit(2, 4, 20, 1),
	}
	scheduler := NewScheduler(milp.NewGlpkSolver())

	schedules := []Schedule{
		{ScheduleDayID: 1, ClassLecturerID: 1, ScheduleSessionID: 1, RoomID: 1},
		{ScheduleDayID: 1, ClassLecturerID: 2, ScheduleSessionID: 2, RoomID: 2},
	}

	// Assert
	g.Expect(scheduler.Verify(schedules, data)).To(BeFalse())
}
