package entity

import "strings"

// GeneratedTask is one task as produced by the external maintenance generation
// service. Every field arrives as free text and is validated before persisting.
type GeneratedTask struct {
	Task              string `json:"task,omitempty"`
	TaskName          string `json:"task_name,omitempty"`
	Description       string `json:"description"`
	Frequency         string `json:"frequency"`
	Priority          string `json:"priority"`
	EstimatedDuration string `json:"estimated_duration"`
	RequiredTools     string `json:"required_tools"`
	SafetyNotes       string `json:"safety_notes"`
	Category          string `json:"category,omitempty"`
	ComponentName     string `json:"component_name,omitempty"`
	MaintenanceType   string `json:"maintenance_type,omitempty"`
}

// Title prefers the "task" field over "task_name".
func (g *GeneratedTask) Title() string {
	if title := strings.TrimSpace(g.Task); title != "" {
		return title
	}

	return strings.TrimSpace(g.TaskName)
}

// MissingFields lists the required fields that are blank.
func (g *GeneratedTask) MissingFields() []string {
	var missing []string

	required := []struct {
		name  string
		value string
	}{
		{"task", g.Title()},
		{"frequency", g.Frequency},
		{"description", g.Description},
		{"priority", g.Priority},
		{"estimated_duration", g.EstimatedDuration},
		{"required_tools", g.RequiredTools},
		{"safety_notes", g.SafetyNotes},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}

	return missing
}

// DueTask is a maintenance task joined with its device and the user who has to act on it.
type DueTask struct {
	Task       *MaintenanceTask
	DeviceName string
	Assignee   *User // nil when neither the task nor the device has an assignee
}
