package sched

import (
	"fmt"
	"strings"
)

// Valid ranges for task attributes. Anything outside a range is replaced
// by that attribute's fallback when the task is built.
const (
	DefaultTaskID = 100000
	MinTaskID     = 100001
	MaxTaskID     = 999999

	MinTemperature = 30 // lowest priority
	MaxTemperature = 110

	MinMoisture = 1 // highest priority
	MaxMoisture = 100
)

// TimeOfDay is the watering window a task was measured in. Morning is the
// most urgent window.
type TimeOfDay int

const (
	Morning TimeOfDay = iota
	Noon
	Afternoon
	Night
)

// PlantType ranks crops by their water requirement, Bean being the lowest.
type PlantType int

const (
	Bean PlantType = iota
	Melon
	Maize
	Sunflower
	Cotton
	Citrus
	Sugarcane
)

// Task represents one schedulable unit of watering work.
type Task struct {
	ID          int
	Temperature int // 30 - 110 F, hotter is more urgent
	Moisture    int // 1 - 100 %, drier is more urgent
	Time        TimeOfDay
	Type        PlantType
}

// NewTask creates a task, normalizing every attribute into its legal range.
// Construction never fails: an out of range value falls back to the
// attribute's default rather than being clamped to the nearest bound.
func NewTask(id, temperature, moisture, time, plantType int) Task {
	t := DefaultTask()
	if id >= MinTaskID && id <= MaxTaskID {
		t.ID = id
	}
	if temperature >= MinTemperature && temperature <= MaxTemperature {
		t.Temperature = temperature
	}
	if moisture >= MinMoisture && moisture <= MaxMoisture {
		t.Moisture = moisture
	}
	if time >= int(Morning) && time <= int(Night) {
		t.Time = TimeOfDay(time)
	}
	if plantType >= int(Bean) && plantType <= int(Sugarcane) {
		t.Type = PlantType(plantType)
	}
	return t
}

// DefaultTask returns a task with every attribute at its fallback value.
func DefaultTask() Task {
	return Task{
		ID:          DefaultTaskID,
		Temperature: MinTemperature,
		Moisture:    MaxMoisture,
		Time:        Night,
		Type:        Bean,
	}
}

func (t Task) String() string {
	return fmt.Sprintf("Task ID: %d, temperature: %d, soil moisture: %d%%, time: %s, plant type: %s",
		t.ID, t.Temperature, t.Moisture, t.Time, t.Type)
}

func (tod TimeOfDay) String() string {
	switch tod {
	case Morning:
		return "MORNING"
	case Noon:
		return "NOON"
	case Afternoon:
		return "AFTERNOON"
	case Night:
		return "NIGHT"
	default:
		return "UNKNOWN"
	}
}

func (pt PlantType) String() string {
	switch pt {
	case Bean:
		return "BEAN"
	case Melon:
		return "MELON"
	case Maize:
		return "MAIZE"
	case Sunflower:
		return "SUNFLOWER"
	case Cotton:
		return "COTTON"
	case Citrus:
		return "CITRUS"
	case Sugarcane:
		return "SUGARCANE"
	default:
		return "UNKNOWN"
	}
}

// ParseTimeOfDay maps a window name (case-insensitive) to its value.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	for tod := Morning; tod <= Night; tod++ {
		if strings.EqualFold(s, tod.String()) {
			return tod, nil
		}
	}
	return 0, fmt.Errorf("unknown time of day %q", s)
}

// ParsePlantType maps a plant name (case-insensitive) to its value.
func ParsePlantType(s string) (PlantType, error) {
	for pt := Bean; pt <= Sugarcane; pt++ {
		if strings.EqualFold(s, pt.String()) {
			return pt, nil
		}
	}
	return 0, fmt.Errorf("unknown plant type %q", s)
}
